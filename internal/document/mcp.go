package document

import (
	"context"
	"fmt"
	"time"

	"github.com/officekit/word-mcp-server/internal/automation"
	"github.com/officekit/word-mcp-server/metrics"
)

// MCP Tool wrapper methods
// These methods wrap the client methods with Args/Result types for MCP
// integration and record automation metrics.

func (c *Client) record(op string, start time.Time, err error) {
	metrics.RecordAutomationCall("document", op, time.Since(start).Seconds(), err == nil)
}

// CreateMCP is the MCP wrapper for Create
func (c *Client) CreateMCP(ctx context.Context, args CreateArgs) (_ CreateResult, err error) {
	start := time.Now()
	defer func() { c.record("create", start, err) }()
	name, err := c.Create(ctx)
	if err != nil {
		return CreateResult{}, err
	}
	return CreateResult{
		Name:    name,
		Message: fmt.Sprintf("Created new document %q", name),
	}, nil
}

// OpenMCP is the MCP wrapper for Open
func (c *Client) OpenMCP(ctx context.Context, args OpenArgs) (_ OpenResult, err error) {
	start := time.Now()
	defer func() { c.record("open", start, err) }()
	name, err := c.Open(ctx, args.Path)
	if err != nil {
		return OpenResult{}, err
	}
	return OpenResult{
		Name:    name,
		Message: fmt.Sprintf("Opened document %q from %s", name, args.Path),
	}, nil
}

// SaveMCP is the MCP wrapper for Save
func (c *Client) SaveMCP(ctx context.Context, args SaveArgs) (_ SaveResult, err error) {
	start := time.Now()
	defer func() { c.record("save", start, err) }()
	if err = c.Save(ctx); err != nil {
		return SaveResult{}, err
	}
	return SaveResult{Message: "Saved active document"}, nil
}

// SaveAsMCP is the MCP wrapper for SaveAs
func (c *Client) SaveAsMCP(ctx context.Context, args SaveAsArgs) (_ SaveAsResult, err error) {
	start := time.Now()
	defer func() { c.record("save_as", start, err) }()
	format := automation.WdFormatDocumentDefault
	if args.Format != nil {
		format = *args.Format
	}
	if err = c.SaveAs(ctx, args.Path, format); err != nil {
		return SaveAsResult{}, err
	}
	formatName := automation.SaveFormatName(format)
	return SaveAsResult{
		Path:    args.Path,
		Format:  formatName,
		Message: fmt.Sprintf("Saved active document to %s (format: %s)", args.Path, formatName),
	}, nil
}

// CloseMCP is the MCP wrapper for Close
func (c *Client) CloseMCP(ctx context.Context, args CloseArgs) (_ CloseResult, err error) {
	start := time.Now()
	defer func() { c.record("close", start, err) }()
	saveOption := automation.WdDoNotSaveChanges
	if args.SaveOption != nil {
		saveOption = *args.SaveOption
	}
	closed, err := c.Close(ctx, saveOption)
	if err != nil {
		return CloseResult{}, err
	}
	if !closed {
		return CloseResult{Closed: false, Message: "No document open; nothing to close"}, nil
	}
	return CloseResult{Closed: true, Message: "Closed active document"}, nil
}

// QuitMCP is the MCP wrapper for Quit
func (c *Client) QuitMCP(ctx context.Context, args QuitArgs) (QuitResult, error) {
	defer c.record("quit", time.Now(), nil)
	c.Quit(ctx)
	return QuitResult{Message: "Word application shut down"}, nil
}

// GetInfoMCP is the MCP wrapper for GetInfo
func (c *Client) GetInfoMCP(ctx context.Context, args InfoArgs) (_ InfoResult, err error) {
	start := time.Now()
	defer func() { c.record("get_info", start, err) }()
	info, err := c.GetInfo(ctx)
	if err != nil {
		return InfoResult{}, err
	}
	return InfoResult{
		Name:             info.Name,
		FullName:         info.FullName,
		Saved:            info.Saved,
		ParagraphCount:   info.ParagraphCount,
		TableCount:       info.TableCount,
		InlineShapeCount: info.InlineShapeCount,
	}, nil
}
