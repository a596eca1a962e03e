package main

import (
	"fmt"
	"log/slog"
	"os"
)

// Transport modes.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config holds server settings loaded from the environment.
type Config struct {
	// Transport selects how the MCP server is exposed: "stdio" or "http".
	Transport string

	// HTTPAddr is the listen address in http transport mode.
	HTTPAddr string

	// MetricsAddr, when set in stdio mode, serves /metrics and /healthz on
	// a separate listener. The http transport serves them inline.
	MetricsAddr string

	// LogLevel is the minimum slog level.
	LogLevel slog.Level
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	transport := os.Getenv("WORD_MCP_TRANSPORT")
	if transport == "" {
		transport = TransportStdio
	}
	if transport != TransportStdio && transport != TransportHTTP {
		return nil, fmt.Errorf("unknown WORD_MCP_TRANSPORT %q (valid: stdio, http)", transport)
	}

	httpAddr := os.Getenv("WORD_MCP_HTTP_ADDR")
	if httpAddr == "" {
		httpAddr = ":8765"
	}

	level := slog.LevelInfo
	switch os.Getenv("WORD_MCP_LOG_LEVEL") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	case "", "info":
	default:
		return nil, fmt.Errorf("unknown WORD_MCP_LOG_LEVEL %q (valid: debug, info, warn, error)", os.Getenv("WORD_MCP_LOG_LEVEL"))
	}

	return &Config{
		Transport:   transport,
		HTTPAddr:    httpAddr,
		MetricsAddr: os.Getenv("WORD_MCP_METRICS_ADDR"),
		LogLevel:    level,
	}, nil
}
