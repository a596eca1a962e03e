package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/officekit/word-mcp-server/internal/cursor"
	"github.com/officekit/word-mcp-server/internal/document"
	"github.com/officekit/word-mcp-server/internal/headers"
	"github.com/officekit/word-mcp-server/internal/image"
	"github.com/officekit/word-mcp-server/internal/pagesetup"
	"github.com/officekit/word-mcp-server/internal/paragraph"
	"github.com/officekit/word-mcp-server/internal/table"
	"github.com/officekit/word-mcp-server/internal/text"
	"github.com/officekit/word-mcp-server/metrics"
	"github.com/officekit/word-mcp-server/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Clients bundles the area clients the tools are dispatched to.
type Clients struct {
	Document  *document.Client
	Text      *text.Client
	Paragraph *paragraph.Client
	Table     *table.Client
	Image     *image.Client
	Headers   *headers.Client
	PageSetup *pagesetup.Client
	Cursor    *cursor.Client
}

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	clients Clients
	logger  *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(clients Clients, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{clients: clients, logger: logger}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	// Document lifecycle tools
	case "Create":
		h.register(server, tool, spec, h.clients.Document.CreateMCP)
	case "Open":
		h.register(server, tool, spec, h.clients.Document.OpenMCP)
	case "Save":
		h.register(server, tool, spec, h.clients.Document.SaveMCP)
	case "SaveAs":
		h.register(server, tool, spec, h.clients.Document.SaveAsMCP)
	case "Close":
		h.register(server, tool, spec, h.clients.Document.CloseMCP)
	case "Quit":
		h.register(server, tool, spec, h.clients.Document.QuitMCP)
	case "GetInfo":
		h.register(server, tool, spec, h.clients.Document.GetInfoMCP)

	// Text tools
	case "InsertText":
		h.register(server, tool, spec, h.clients.Text.InsertMCP)
	case "DeleteText":
		h.register(server, tool, spec, h.clients.Text.DeleteMCP)
	case "FindReplace":
		h.register(server, tool, spec, h.clients.Text.FindReplaceMCP)
	case "ToggleBold":
		h.register(server, tool, spec, h.clients.Text.ToggleBoldMCP)
	case "ToggleItalic":
		h.register(server, tool, spec, h.clients.Text.ToggleItalicMCP)
	case "ToggleUnderline":
		h.register(server, tool, spec, h.clients.Text.ToggleUnderlineMCP)
	case "SetFont":
		h.register(server, tool, spec, h.clients.Text.SetFontMCP)

	// Paragraph tools
	case "SetAlignment":
		h.register(server, tool, spec, h.clients.Paragraph.SetAlignmentMCP)
	case "SetIndent":
		h.register(server, tool, spec, h.clients.Paragraph.SetIndentMCP)
	case "SetSpacing":
		h.register(server, tool, spec, h.clients.Paragraph.SetSpacingMCP)
	case "SetLineSpacing":
		h.register(server, tool, spec, h.clients.Paragraph.SetLineSpacingMCP)

	// Table tools
	case "AddTable":
		h.register(server, tool, spec, h.clients.Table.AddMCP)
	case "SetCellText":
		h.register(server, tool, spec, h.clients.Table.SetCellTextMCP)
	case "InsertRow":
		h.register(server, tool, spec, h.clients.Table.InsertRowMCP)
	case "InsertColumn":
		h.register(server, tool, spec, h.clients.Table.InsertColumnMCP)
	case "ApplyTableStyle":
		h.register(server, tool, spec, h.clients.Table.ApplyStyleMCP)

	// Image tools
	case "InsertPicture":
		h.register(server, tool, spec, h.clients.Image.InsertPictureMCP)
	case "SetPictureSize":
		h.register(server, tool, spec, h.clients.Image.SetPictureSizeMCP)

	// Header and footer tools
	case "SetHeaderText":
		h.register(server, tool, spec, h.clients.Headers.SetHeaderTextMCP)
	case "SetFooterText":
		h.register(server, tool, spec, h.clients.Headers.SetFooterTextMCP)
	case "GetHeaderText":
		h.register(server, tool, spec, h.clients.Headers.GetHeaderTextMCP)
	case "GetFooterText":
		h.register(server, tool, spec, h.clients.Headers.GetFooterTextMCP)

	// Page setup tools
	case "SetMargins":
		h.register(server, tool, spec, h.clients.PageSetup.SetMarginsMCP)
	case "SetOrientation":
		h.register(server, tool, spec, h.clients.PageSetup.SetOrientationMCP)
	case "SetPaperSize":
		h.register(server, tool, spec, h.clients.PageSetup.SetPaperSizeMCP)

	// Cursor and selection tools
	case "MoveToStart":
		h.register(server, tool, spec, h.clients.Cursor.MoveToStartMCP)
	case "MoveToEnd":
		h.register(server, tool, spec, h.clients.Cursor.MoveToEndMCP)
	case "MoveCursor":
		h.register(server, tool, spec, h.clients.Cursor.MoveMCP)
	case "SelectAll":
		h.register(server, tool, spec, h.clients.Cursor.SelectAllMCP)
	case "SelectParagraph":
		h.register(server, tool, spec, h.clients.Cursor.SelectParagraphMCP)
	case "CollapseSelection":
		h.register(server, tool, spec, h.clients.Cursor.CollapseMCP)
	case "GetSelectionText":
		h.register(server, tool, spec, h.clients.Cursor.GetSelectionTextMCP)
	case "GetSelectionInfo":
		h.register(server, tool, spec, h.clients.Cursor.GetSelectionInfoMCP)

	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the client method with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		defer h.recoverPanic(spec.Name)

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.String("mcp.tool.area", spec.Area),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name, "area", spec.Area}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	case document.OpenArgs:
		attrs = append(attrs, "path", a.Path)
	case document.SaveAsArgs:
		attrs = append(attrs, "path", a.Path)
	case text.InsertArgs:
		attrs = append(attrs, "chars", len([]rune(a.Text)))
	case text.DeleteArgs:
		attrs = append(attrs, "count", a.Count)
	case text.FindReplaceArgs:
		attrs = append(attrs, "find", a.Find, "replace_all", a.ReplaceAll)
	case table.SetCellTextArgs:
		attrs = append(attrs, "table", a.TableIndex, "row", a.Row, "col", a.Col)
	case table.AddArgs:
		attrs = append(attrs, "rows", a.Rows, "cols", a.Cols)
	case image.InsertPictureArgs:
		attrs = append(attrs, "path", a.Path)
	case image.SetPictureSizeArgs:
		attrs = append(attrs, "shape", a.ShapeIndex)
	case cursor.SelectParagraphArgs:
		attrs = append(attrs, "paragraph", a.Index)
	}

	// Add extractable fields from result
	switch r := result.(type) {
	case document.CreateResult:
		attrs = append(attrs, "name", r.Name)
	case document.OpenResult:
		attrs = append(attrs, "name", r.Name)
	case document.InfoResult:
		attrs = append(attrs, "name", r.Name, "paragraphs", r.ParagraphCount)
	case text.FindReplaceResult:
		attrs = append(attrs, "found", r.Found)
	case table.AddResult:
		attrs = append(attrs, "table_index", r.TableIndex)
	case image.InsertPictureResult:
		attrs = append(attrs, "shape_index", r.ShapeIndex)
	case cursor.GetSelectionInfoResult:
		attrs = append(attrs, "start", r.Start, "end", r.End)
	}

	h.logger.Info("Tool executed", attrs...)
}

// Convenience function to call the generic register with method receiver
func (h *HandlerRegistry) register(server *mcp.Server, tool *mcp.Tool, spec ToolSpec, method any) {
	switch m := method.(type) {
	// Document lifecycle tools
	case func(context.Context, document.CreateArgs) (document.CreateResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, document.OpenArgs) (document.OpenResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, document.SaveArgs) (document.SaveResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, document.SaveAsArgs) (document.SaveAsResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, document.CloseArgs) (document.CloseResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, document.QuitArgs) (document.QuitResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, document.InfoArgs) (document.InfoResult, error):
		register(h, server, tool, spec, m)

	// Text tools
	case func(context.Context, text.InsertArgs) (text.InsertResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, text.DeleteArgs) (text.DeleteResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, text.FindReplaceArgs) (text.FindReplaceResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, text.ToggleArgs) (text.ToggleResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, text.ToggleUnderlineArgs) (text.ToggleUnderlineResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, text.SetFontArgs) (text.SetFontResult, error):
		register(h, server, tool, spec, m)

	// Paragraph tools
	case func(context.Context, paragraph.SetAlignmentArgs) (paragraph.SetAlignmentResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, paragraph.SetIndentArgs) (paragraph.SetIndentResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, paragraph.SetSpacingArgs) (paragraph.SetSpacingResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, paragraph.SetLineSpacingArgs) (paragraph.SetLineSpacingResult, error):
		register(h, server, tool, spec, m)

	// Table tools
	case func(context.Context, table.AddArgs) (table.AddResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, table.SetCellTextArgs) (table.SetCellTextResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, table.InsertRowArgs) (table.InsertRowResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, table.InsertColumnArgs) (table.InsertColumnResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, table.ApplyStyleArgs) (table.ApplyStyleResult, error):
		register(h, server, tool, spec, m)

	// Image tools
	case func(context.Context, image.InsertPictureArgs) (image.InsertPictureResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, image.SetPictureSizeArgs) (image.SetPictureSizeResult, error):
		register(h, server, tool, spec, m)

	// Header and footer tools
	case func(context.Context, headers.SetTextArgs) (headers.SetTextResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, headers.GetTextArgs) (headers.GetTextResult, error):
		register(h, server, tool, spec, m)

	// Page setup tools
	case func(context.Context, pagesetup.SetMarginsArgs) (pagesetup.SetMarginsResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, pagesetup.SetOrientationArgs) (pagesetup.SetOrientationResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, pagesetup.SetPaperSizeArgs) (pagesetup.SetPaperSizeResult, error):
		register(h, server, tool, spec, m)

	// Cursor and selection tools
	case func(context.Context, cursor.MoveToArgs) (cursor.MoveToResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, cursor.MoveArgs) (cursor.MoveResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, cursor.SelectAllArgs) (cursor.SelectAllResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, cursor.SelectParagraphArgs) (cursor.SelectParagraphResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, cursor.CollapseArgs) (cursor.CollapseResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, cursor.GetSelectionTextArgs) (cursor.GetSelectionTextResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, cursor.GetSelectionInfoArgs) (cursor.GetSelectionInfoResult, error):
		register(h, server, tool, spec, m)

	default:
		h.logger.Error("Unknown method type, tool not registered", "tool", spec.Name)
	}
}
