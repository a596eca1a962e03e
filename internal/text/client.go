// Package text implements text editing at the selection: insertion,
// deletion, find/replace, and character formatting.
package text

import (
	"context"
	"log/slog"

	"github.com/officekit/word-mcp-server/internal/automation"
)

// Client performs text operations against the Word session.
type Client struct {
	session *automation.Session
	logger  *slog.Logger
}

// NewClient creates a text client.
func NewClient(session *automation.Session, logger *slog.Logger) *Client {
	return &Client{session: session, logger: logger}
}

// Insert types text at the current selection, replacing it if non-empty.
// The selection collapses after the inserted text.
func (c *Client) Insert(ctx context.Context, text string) error {
	sel, err := c.session.Selection()
	if err != nil {
		return err
	}
	if err := sel.TypeText(text); err != nil {
		return &automation.OpError{Op: "insert_text", Err: err}
	}
	return nil
}

// Delete removes count units at the selection. A positive count deletes
// forward from the selection, a negative count extends the selection start
// backwards by |count| units first, and zero is a no-op.
func (c *Client) Delete(ctx context.Context, count, unit int) error {
	if count == 0 {
		return nil
	}
	sel, err := c.session.Selection()
	if err != nil {
		return err
	}
	if count < 0 {
		if err := sel.MoveStart(unit, count); err != nil {
			return &automation.OpError{Op: "delete_text", Err: err}
		}
		count = -count
	}
	if err := sel.Delete(unit, count); err != nil {
		return &automation.OpError{Op: "delete_text", Err: err}
	}
	return nil
}

// FindAndReplace searches forward from the selection with wraparound.
// Formatting carried by a previous find or replacement is cleared first.
// Replacing all occurrences when nothing matches returns a NoMatchError;
// a single replace simply reports found=false.
func (c *Client) FindAndReplace(ctx context.Context, find, replace string, matchCase, matchWholeWord, replaceAll bool) (bool, error) {
	sel, err := c.session.Selection()
	if err != nil {
		return false, err
	}
	finder, err := sel.Find()
	if err != nil {
		return false, &automation.OpError{Op: "find_and_replace", Err: err}
	}
	if err := finder.ClearFormatting(); err != nil {
		return false, &automation.OpError{Op: "find_and_replace", Err: err}
	}
	replacement, err := finder.Replacement()
	if err != nil {
		return false, &automation.OpError{Op: "find_and_replace", Err: err}
	}
	if err := replacement.ClearFormatting(); err != nil {
		return false, &automation.OpError{Op: "find_and_replace", Err: err}
	}

	replaceCode := automation.WdReplaceOne
	if replaceAll {
		replaceCode = automation.WdReplaceAll
	}
	found, err := finder.Execute(find, matchCase, matchWholeWord, automation.WdFindContinue, replace, replaceCode)
	if err != nil {
		return false, &automation.OpError{Op: "find_and_replace", Err: err}
	}
	if !found && replaceAll {
		return false, &automation.NoMatchError{Text: find}
	}
	return found, nil
}

// ToggleBold flips bold at the selection and reports the new state. A mixed
// selection counts as bold, so toggling it turns bold off everywhere.
func (c *Client) ToggleBold(ctx context.Context) (bool, error) {
	font, err := c.selectionFont()
	if err != nil {
		return false, err
	}
	current, err := font.Bold()
	if err != nil {
		return false, &automation.OpError{Op: "toggle_bold", Err: err}
	}
	enabled := current != 0
	next := 1
	if enabled {
		next = 0
	}
	if err := font.SetBold(next); err != nil {
		return false, &automation.OpError{Op: "toggle_bold", Err: err}
	}
	return !enabled, nil
}

// ToggleItalic flips italic at the selection and reports the new state.
// Mixed selections behave as in ToggleBold.
func (c *Client) ToggleItalic(ctx context.Context) (bool, error) {
	font, err := c.selectionFont()
	if err != nil {
		return false, err
	}
	current, err := font.Italic()
	if err != nil {
		return false, &automation.OpError{Op: "toggle_italic", Err: err}
	}
	enabled := current != 0
	next := 1
	if enabled {
		next = 0
	}
	if err := font.SetItalic(next); err != nil {
		return false, &automation.OpError{Op: "toggle_italic", Err: err}
	}
	return !enabled, nil
}

// ToggleUnderline applies the given WdUnderline style to the selection, or
// removes underlining when the selection already carries that exact style.
// Returns the style now in effect.
func (c *Client) ToggleUnderline(ctx context.Context, style int) (int, error) {
	font, err := c.selectionFont()
	if err != nil {
		return 0, err
	}
	current, err := font.Underline()
	if err != nil {
		return 0, &automation.OpError{Op: "toggle_underline", Err: err}
	}
	next := style
	if current == style {
		next = automation.WdUnderlineNone
	}
	if err := font.SetUnderline(next); err != nil {
		return 0, &automation.OpError{Op: "toggle_underline", Err: err}
	}
	return next, nil
}

// SetFont applies a font name and/or size to the selection. An empty name
// or non-positive size leaves that property alone.
func (c *Client) SetFont(ctx context.Context, name string, size float64) error {
	font, err := c.selectionFont()
	if err != nil {
		return err
	}
	if name != "" {
		if err := font.SetName(name); err != nil {
			return &automation.OpError{Op: "set_font", Err: err}
		}
	}
	if size > 0 {
		if err := font.SetSize(size); err != nil {
			return &automation.OpError{Op: "set_font", Err: err}
		}
	}
	return nil
}

func (c *Client) selectionFont() (automation.Font, error) {
	sel, err := c.session.Selection()
	if err != nil {
		return nil, err
	}
	font, err := sel.Font()
	if err != nil {
		return nil, &automation.OpError{Op: "selection_font", Err: err}
	}
	return font, nil
}
