// Word MCP Server - A Model Context Protocol server for Microsoft Word
// Drives a local Word instance through its automation object model and
// exposes document editing as MCP tools.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/officekit/word-mcp-server/internal/automation"
	"github.com/officekit/word-mcp-server/internal/cursor"
	"github.com/officekit/word-mcp-server/internal/document"
	"github.com/officekit/word-mcp-server/internal/headers"
	"github.com/officekit/word-mcp-server/internal/image"
	"github.com/officekit/word-mcp-server/internal/pagesetup"
	"github.com/officekit/word-mcp-server/internal/paragraph"
	"github.com/officekit/word-mcp-server/internal/table"
	"github.com/officekit/word-mcp-server/internal/text"
	"github.com/officekit/word-mcp-server/metrics"
	"github.com/officekit/word-mcp-server/tools"
	"github.com/officekit/word-mcp-server/tracing"
)

const (
	ServerName    = "word-mcp-server"
	ServerVersion = "1.0.0"
)

const serverInstructions = `Word MCP Server drives a local Microsoft Word instance for document automation.

The server keeps one Word application handle and operates on the ACTIVE document;
create or open a document before editing. Editing tools act at the current
selection, so position the cursor first (word_move_to_start, word_move_cursor,
word_select_paragraph, ...).

Typical flow:
1. word_create_document or word_open_document
2. word_insert_text / formatting and table tools
3. word_save_document or word_save_document_as
4. word_close_document, and word_quit when completely done

Indices (tables, rows, columns, paragraphs, inline shapes, sections) are 1-based.
Distances are in points (72 points = 1 inch).

Configure via environment variables:
- WORD_MCP_TRANSPORT: "stdio" (default) or "http"
- WORD_MCP_HTTP_ADDR: HTTP listen address (default :8765)
- WORD_MCP_METRICS_ADDR: optional metrics listener in stdio mode
- WORD_MCP_LOG_LEVEL: debug, info, warn, or error`

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	config, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.LogLevel,
	}))

	ctx := context.Background()

	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		logger.Warn("Tracing disabled", "error", err)
	} else {
		defer func() {
			if err := shutdownTracing(context.Background()); err != nil {
				logger.Warn("Tracing shutdown failed", "error", err)
			}
		}()
	}

	// One Word handle shared by all area clients.
	session := automation.NewSession(automation.NewCOMFactory(), logger)
	defer session.Quit()

	clients := tools.Clients{
		Document:  document.NewClient(session, logger),
		Text:      text.NewClient(session, logger),
		Paragraph: paragraph.NewClient(session, logger),
		Table:     table.NewClient(session, logger),
		Image:     image.NewClient(session, logger),
		Headers:   headers.NewClient(session, logger),
		PageSetup: pagesetup.NewClient(session, logger),
		Cursor:    cursor.NewClient(session, logger),
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: serverInstructions,
	})

	registry := tools.NewHandlerRegistry(clients, logger)
	registry.RegisterAll(server)

	logger.Info("Starting Word MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"transport", config.Transport,
	)

	switch config.Transport {
	case TransportStdio:
		if config.MetricsAddr != "" {
			go serveMetrics(config.MetricsAddr, logger)
		}
		if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case TransportHTTP:
		if err := serveHTTP(server, config.HTTPAddr, logger); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	default:
		log.Fatalf("Unknown transport %q", config.Transport)
	}
}

// serveHTTP exposes the MCP server over streamable HTTP on /mcp, with
// /metrics and /healthz alongside.
func serveHTTP(server *mcp.Server, addr string, logger *slog.Logger) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp", instrumentHTTP("/mcp", handler))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", healthz)

	logger.Info("Listening", "addr", addr)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return httpServer.ListenAndServe()
}

// serveMetrics runs the standalone metrics listener used in stdio mode.
func serveMetrics(addr string, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", healthz)

	logger.Info("Metrics listening", "addr", addr)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := httpServer.ListenAndServe(); err != nil {
		logger.Error("Metrics listener failed", "error", err)
	}
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// instrumentHTTP wraps a handler with request counting and latency metrics.
func instrumentHTTP(path string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}

// statusRecorder captures the response status code for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
