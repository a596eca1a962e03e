// Package table implements table operations: creation, cell text, row and
// column insertion, and built-in styling.
package table

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/officekit/word-mcp-server/internal/automation"
)

// Client performs table operations against the Word session.
type Client struct {
	session *automation.Session
	logger  *slog.Logger
}

// NewClient creates a table client.
func NewClient(session *automation.Session, logger *slog.Logger) *Client {
	return &Client{session: session, logger: logger}
}

// Add inserts a rows-by-cols table at the current selection and returns the
// 1-based index of the new table in the document.
func (c *Client) Add(ctx context.Context, rows, cols int) (int, error) {
	if rows < 1 || cols < 1 {
		return 0, &automation.OpError{
			Op:  "add_table",
			Err: fmt.Errorf("table dimensions must be at least 1x1, got %dx%d", rows, cols),
		}
	}
	doc, err := c.session.ActiveDocument()
	if err != nil {
		return 0, err
	}
	sel, err := doc.Selection()
	if err != nil {
		return 0, &automation.OpError{Op: "add_table", Err: err}
	}
	at, err := sel.Range()
	if err != nil {
		return 0, &automation.OpError{Op: "add_table", Err: err}
	}
	tables, err := doc.Tables()
	if err != nil {
		return 0, &automation.OpError{Op: "add_table", Err: err}
	}
	if _, err := tables.Add(at, rows, cols); err != nil {
		return 0, &automation.OpError{Op: "add_table", Err: err}
	}
	count, err := tables.Count()
	if err != nil {
		return 0, &automation.OpError{Op: "add_table", Err: err}
	}
	return count, nil
}

// SetCellText writes text into one cell, addressed by 1-based table, row,
// and column indices. All indices are validated against the live collection
// counts before anything is written.
func (c *Client) SetCellText(ctx context.Context, tableIndex, row, col int, text string) error {
	table, err := c.table(tableIndex)
	if err != nil {
		return err
	}
	rows, err := table.Rows()
	if err != nil {
		return &automation.OpError{Op: "set_cell_text", Err: err}
	}
	rowCount, err := rows.Count()
	if err != nil {
		return &automation.OpError{Op: "set_cell_text", Err: err}
	}
	if row < 1 || row > rowCount {
		return &automation.OutOfRangeError{Kind: "Row", Index: row, Max: rowCount}
	}
	cols, err := table.Columns()
	if err != nil {
		return &automation.OpError{Op: "set_cell_text", Err: err}
	}
	colCount, err := cols.Count()
	if err != nil {
		return &automation.OpError{Op: "set_cell_text", Err: err}
	}
	if col < 1 || col > colCount {
		return &automation.OutOfRangeError{Kind: "Column", Index: col, Max: colCount}
	}
	cell, err := table.Cell(row, col)
	if err != nil {
		return &automation.OpError{Op: "set_cell_text", Err: err}
	}
	rng, err := cell.Range()
	if err != nil {
		return &automation.OpError{Op: "set_cell_text", Err: err}
	}
	if err := rng.SetText(text); err != nil {
		return &automation.OpError{Op: "set_cell_text", Err: err}
	}
	return nil
}

// InsertRow inserts a row into the table. before addresses the row the new
// one is inserted above, in [1, rowCount+1]; rowCount+1 and nil both append.
// Returns the 1-based position of the new row.
func (c *Client) InsertRow(ctx context.Context, tableIndex int, before *int) (int, error) {
	table, err := c.table(tableIndex)
	if err != nil {
		return 0, err
	}
	rows, err := table.Rows()
	if err != nil {
		return 0, &automation.OpError{Op: "insert_table_row", Err: err}
	}
	count, err := rows.Count()
	if err != nil {
		return 0, &automation.OpError{Op: "insert_table_row", Err: err}
	}
	if before != nil && (*before < 1 || *before > count+1) {
		return 0, &automation.OutOfRangeError{Kind: "Row", Index: *before, Max: count + 1}
	}
	if before == nil || *before == count+1 {
		if _, err := rows.Add(nil); err != nil {
			return 0, &automation.OpError{Op: "insert_table_row", Err: err}
		}
		return count + 1, nil
	}
	ref, err := rows.Item(*before)
	if err != nil {
		return 0, &automation.OpError{Op: "insert_table_row", Err: err}
	}
	if _, err := rows.Add(ref); err != nil {
		return 0, &automation.OpError{Op: "insert_table_row", Err: err}
	}
	return *before, nil
}

// InsertColumn inserts a column into the table; before works like
// InsertRow's. Returns the 1-based position of the new column.
func (c *Client) InsertColumn(ctx context.Context, tableIndex int, before *int) (int, error) {
	table, err := c.table(tableIndex)
	if err != nil {
		return 0, err
	}
	cols, err := table.Columns()
	if err != nil {
		return 0, &automation.OpError{Op: "insert_table_column", Err: err}
	}
	count, err := cols.Count()
	if err != nil {
		return 0, &automation.OpError{Op: "insert_table_column", Err: err}
	}
	if before != nil && (*before < 1 || *before > count+1) {
		return 0, &automation.OutOfRangeError{Kind: "Column", Index: *before, Max: count + 1}
	}
	if before == nil || *before == count+1 {
		if _, err := cols.Add(nil); err != nil {
			return 0, &automation.OpError{Op: "insert_table_column", Err: err}
		}
		return count + 1, nil
	}
	ref, err := cols.Item(*before)
	if err != nil {
		return 0, &automation.OpError{Op: "insert_table_column", Err: err}
	}
	if _, err := cols.Add(ref); err != nil {
		return 0, &automation.OpError{Op: "insert_table_column", Err: err}
	}
	return *before, nil
}

// ApplyStyle styles the table. A numeric style is treated as a
// WdTableFormat code and applied through AutoFormat with the given apply
// flags; anything else is treated as a named table style.
func (c *Client) ApplyStyle(ctx context.Context, tableIndex int, style string, applyFlags int) error {
	table, err := c.table(tableIndex)
	if err != nil {
		return err
	}
	if code, convErr := strconv.Atoi(style); convErr == nil {
		if err := table.AutoFormat(code, applyFlags); err != nil {
			return &automation.OpError{Op: "apply_table_style", Err: err}
		}
		return nil
	}
	if err := table.SetStyle(style); err != nil {
		return &automation.OpError{Op: "apply_table_style", Err: err}
	}
	return nil
}

// table resolves a 1-based table index against the active document.
func (c *Client) table(index int) (automation.Table, error) {
	doc, err := c.session.ActiveDocument()
	if err != nil {
		return nil, err
	}
	tables, err := doc.Tables()
	if err != nil {
		return nil, &automation.OpError{Op: "resolve_table", Err: err}
	}
	count, err := tables.Count()
	if err != nil {
		return nil, &automation.OpError{Op: "resolve_table", Err: err}
	}
	if index < 1 || index > count {
		return nil, &automation.OutOfRangeError{Kind: "Table", Index: index, Max: count}
	}
	table, err := tables.Item(index)
	if err != nil {
		return nil, &automation.OpError{Op: "resolve_table", Err: err}
	}
	return table, nil
}
