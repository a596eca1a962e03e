package table

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
	metrics.RecordAutomationCall("table", op, time.Since(start).Seconds(), err == nil)
}

// AddMCP is the MCP wrapper for Add
func (c *Client) AddMCP(ctx context.Context, args AddArgs) (_ AddResult, err error) {
	start := time.Now()
	defer func() { c.record("add", start, err) }()
	index, err := c.Add(ctx, args.Rows, args.Cols)
	if err != nil {
		return AddResult{}, err
	}
	return AddResult{
		TableIndex: index,
		Message:    fmt.Sprintf("Added a %dx%d table as table %d", args.Rows, args.Cols, index),
	}, nil
}

// SetCellTextMCP is the MCP wrapper for SetCellText
func (c *Client) SetCellTextMCP(ctx context.Context, args SetCellTextArgs) (_ SetCellTextResult, err error) {
	start := time.Now()
	defer func() { c.record("set_cell_text", start, err) }()
	if err = c.SetCellText(ctx, args.TableIndex, args.Row, args.Col, args.Text); err != nil {
		return SetCellTextResult{}, err
	}
	return SetCellTextResult{
		Message: fmt.Sprintf("Set cell (%d,%d) of table %d", args.Row, args.Col, args.TableIndex),
	}, nil
}

// InsertRowMCP is the MCP wrapper for InsertRow
func (c *Client) InsertRowMCP(ctx context.Context, args InsertRowArgs) (_ InsertRowResult, err error) {
	start := time.Now()
	defer func() { c.record("insert_row", start, err) }()
	position, err := c.InsertRow(ctx, args.TableIndex, args.Before)
	if err != nil {
		return InsertRowResult{}, err
	}
	return InsertRowResult{
		Position: position,
		Message:  fmt.Sprintf("Inserted row %d into table %d", position, args.TableIndex),
	}, nil
}

// InsertColumnMCP is the MCP wrapper for InsertColumn
func (c *Client) InsertColumnMCP(ctx context.Context, args InsertColumnArgs) (_ InsertColumnResult, err error) {
	start := time.Now()
	defer func() { c.record("insert_column", start, err) }()
	position, err := c.InsertColumn(ctx, args.TableIndex, args.Before)
	if err != nil {
		return InsertColumnResult{}, err
	}
	return InsertColumnResult{
		Position: position,
		Message:  fmt.Sprintf("Inserted column %d into table %d", position, args.TableIndex),
	}, nil
}

// ApplyStyleMCP is the MCP wrapper for ApplyStyle
func (c *Client) ApplyStyleMCP(ctx context.Context, args ApplyStyleArgs) (_ ApplyStyleResult, err error) {
	start := time.Now()
	defer func() { c.record("apply_style", start, err) }()
	applyFlags := automation.DefaultTableFormatApply
	if args.ApplyFlags != nil {
		applyFlags = *args.ApplyFlags
	}
	if err = c.ApplyStyle(ctx, args.TableIndex, args.Style, applyFlags); err != nil {
		return ApplyStyleResult{}, err
	}
	return ApplyStyleResult{
		Message: fmt.Sprintf("Applied style %q to table %d", args.Style, args.TableIndex),
	}, nil
}
