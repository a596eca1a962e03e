package main

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("WORD_MCP_TRANSPORT", "")
	t.Setenv("WORD_MCP_HTTP_ADDR", "")
	t.Setenv("WORD_MCP_METRICS_ADDR", "")
	t.Setenv("WORD_MCP_LOG_LEVEL", "")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Transport != TransportStdio {
		t.Errorf("Transport = %q, want %q", config.Transport, TransportStdio)
	}
	if config.HTTPAddr != ":8765" {
		t.Errorf("HTTPAddr = %q, want :8765", config.HTTPAddr)
	}
	if config.MetricsAddr != "" {
		t.Errorf("MetricsAddr = %q, want empty", config.MetricsAddr)
	}
	if config.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want %v", config.LogLevel, slog.LevelInfo)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("WORD_MCP_TRANSPORT", "http")
	t.Setenv("WORD_MCP_HTTP_ADDR", "127.0.0.1:9999")
	t.Setenv("WORD_MCP_METRICS_ADDR", ":9100")
	t.Setenv("WORD_MCP_LOG_LEVEL", "debug")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Transport != TransportHTTP {
		t.Errorf("Transport = %q, want %q", config.Transport, TransportHTTP)
	}
	if config.HTTPAddr != "127.0.0.1:9999" {
		t.Errorf("HTTPAddr = %q, want 127.0.0.1:9999", config.HTTPAddr)
	}
	if config.MetricsAddr != ":9100" {
		t.Errorf("MetricsAddr = %q, want :9100", config.MetricsAddr)
	}
	if config.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want %v", config.LogLevel, slog.LevelDebug)
	}
}

func TestLoadConfigLogLevels(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("WORD_MCP_TRANSPORT", "")
			t.Setenv("WORD_MCP_LOG_LEVEL", tt.value)

			config, err := LoadConfig()
			if err != nil {
				t.Fatalf("LoadConfig failed: %v", err)
			}
			if config.LogLevel != tt.want {
				t.Errorf("LogLevel = %v, want %v", config.LogLevel, tt.want)
			}
		})
	}
}

func TestLoadConfigInvalidTransport(t *testing.T) {
	t.Setenv("WORD_MCP_TRANSPORT", "grpc")

	if _, err := LoadConfig(); err == nil {
		t.Error("expected error for unknown transport")
	}
}

func TestLoadConfigInvalidLogLevel(t *testing.T) {
	t.Setenv("WORD_MCP_TRANSPORT", "")
	t.Setenv("WORD_MCP_LOG_LEVEL", "verbose")

	if _, err := LoadConfig(); err == nil {
		t.Error("expected error for unknown log level")
	}
}

func TestHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	healthz(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Body.String(); got != "ok" {
		t.Errorf("body = %q, want %q", got, "ok")
	}
}

func TestInstrumentHTTP(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := instrumentHTTP("/mcp", inner)

	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}

func TestStatusRecorderDefaultsToOK(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("hi"))
	})
	handler := instrumentHTTP("/mcp", inner)

	req := httptest.NewRequest(http.MethodGet, "/mcp", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
