// Package cursor implements selection and caret operations: movement,
// paragraph selection, collapsing, and selection inspection.
package cursor

import (
	"context"
	"log/slog"

	"github.com/officekit/word-mcp-server/internal/automation"
)

// Client performs selection operations against the Word session.
type Client struct {
	session *automation.Session
	logger  *slog.Logger
}

// NewClient creates a cursor client.
func NewClient(session *automation.Session, logger *slog.Logger) *Client {
	return &Client{session: session, logger: logger}
}

// MoveToStart collapses the selection to the start of the document.
func (c *Client) MoveToStart(ctx context.Context) error {
	sel, err := c.session.Selection()
	if err != nil {
		return err
	}
	if err := sel.HomeKey(automation.WdStory, automation.WdMove); err != nil {
		return &automation.OpError{Op: "move_to_start", Err: err}
	}
	return nil
}

// MoveToEnd collapses the selection to the end of the document.
func (c *Client) MoveToEnd(ctx context.Context) error {
	sel, err := c.session.Selection()
	if err != nil {
		return err
	}
	if err := sel.EndKey(automation.WdStory, automation.WdMove); err != nil {
		return &automation.OpError{Op: "move_to_end", Err: err}
	}
	return nil
}

// Move moves the selection count units; positive moves right, negative
// left, zero does nothing. With extend the selection grows instead of
// moving.
func (c *Client) Move(ctx context.Context, unit, count int, extend bool) error {
	if count == 0 {
		return nil
	}
	sel, err := c.session.Selection()
	if err != nil {
		return err
	}
	extendCode := automation.WdMove
	if extend {
		extendCode = automation.WdExtend
	}
	if count > 0 {
		err = sel.MoveRight(unit, count, extendCode)
	} else {
		err = sel.MoveLeft(unit, -count, extendCode)
	}
	if err != nil {
		return &automation.OpError{Op: "move_cursor", Err: err}
	}
	return nil
}

// SelectAll extends the selection over the whole document.
func (c *Client) SelectAll(ctx context.Context) error {
	sel, err := c.session.Selection()
	if err != nil {
		return err
	}
	if err := sel.WholeStory(); err != nil {
		return &automation.OpError{Op: "select_all", Err: err}
	}
	return nil
}

// SelectParagraph selects the 1-based paragraph, validated against the live
// paragraph count.
func (c *Client) SelectParagraph(ctx context.Context, index int) error {
	doc, err := c.session.ActiveDocument()
	if err != nil {
		return err
	}
	paras, err := doc.Paragraphs()
	if err != nil {
		return &automation.OpError{Op: "select_paragraph", Err: err}
	}
	count, err := paras.Count()
	if err != nil {
		return &automation.OpError{Op: "select_paragraph", Err: err}
	}
	if index < 1 || index > count {
		return &automation.OutOfRangeError{Kind: "Paragraph", Index: index, Max: count}
	}
	para, err := paras.Item(index)
	if err != nil {
		return &automation.OpError{Op: "select_paragraph", Err: err}
	}
	rng, err := para.Range()
	if err != nil {
		return &automation.OpError{Op: "select_paragraph", Err: err}
	}
	if err := rng.Select(); err != nil {
		return &automation.OpError{Op: "select_paragraph", Err: err}
	}
	return nil
}

// Collapse collapses the selection to its start or end.
func (c *Client) Collapse(ctx context.Context, toStart bool) error {
	sel, err := c.session.Selection()
	if err != nil {
		return err
	}
	direction := automation.WdCollapseEnd
	if toStart {
		direction = automation.WdCollapseStart
	}
	if err := sel.Collapse(direction); err != nil {
		return &automation.OpError{Op: "collapse_selection", Err: err}
	}
	return nil
}

// GetSelectionText reads the selected text; an insertion point yields the
// empty string.
func (c *Client) GetSelectionText(ctx context.Context) (string, error) {
	sel, err := c.session.Selection()
	if err != nil {
		return "", err
	}
	text, err := sel.Text()
	if err != nil {
		return "", &automation.OpError{Op: "get_selection_text", Err: err}
	}
	return text, nil
}

// SelectionInfo describes the current selection.
type SelectionInfo struct {
	Text   string
	Start  int
	End    int
	Active bool // false when there is no selection at all
	Type   int  // raw WdSelectionType code
}

// GetSelectionInfo reports the selection's text, character offsets, and
// type.
func (c *Client) GetSelectionInfo(ctx context.Context) (SelectionInfo, error) {
	sel, err := c.session.Selection()
	if err != nil {
		return SelectionInfo{}, err
	}

	var info SelectionInfo
	op := func(err error) (SelectionInfo, error) {
		return SelectionInfo{}, &automation.OpError{Op: "get_selection_info", Err: err}
	}
	if info.Text, err = sel.Text(); err != nil {
		return op(err)
	}
	if info.Start, err = sel.Start(); err != nil {
		return op(err)
	}
	if info.End, err = sel.End(); err != nil {
		return op(err)
	}
	if info.Type, err = sel.Type(); err != nil {
		return op(err)
	}
	info.Active = info.Type != automation.WdNoSelection
	return info, nil
}
