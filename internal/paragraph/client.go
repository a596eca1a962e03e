// Package paragraph implements paragraph formatting at the selection:
// alignment, indentation, spacing, and line spacing.
package paragraph

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/officekit/word-mcp-server/internal/automation"
)

// Client performs paragraph formatting operations against the Word session.
type Client struct {
	session *automation.Session
	logger  *slog.Logger
}

// NewClient creates a paragraph client.
func NewClient(session *automation.Session, logger *slog.Logger) *Client {
	return &Client{session: session, logger: logger}
}

// SetAlignment applies a WdParagraphAlignment code to the selected
// paragraphs.
func (c *Client) SetAlignment(ctx context.Context, alignment int) error {
	if alignment < automation.WdAlignParagraphLeft || alignment > automation.WdAlignParagraphJustify {
		return &automation.OpError{
			Op:  "set_alignment",
			Err: fmt.Errorf("unknown alignment code %d", alignment),
		}
	}
	format, err := c.selectionFormat()
	if err != nil {
		return err
	}
	if err := format.SetAlignment(alignment); err != nil {
		return &automation.OpError{Op: "set_alignment", Err: err}
	}
	return nil
}

// SetIndent applies indentation in points to the selected paragraphs. Nil
// values leave the corresponding indent unchanged.
func (c *Client) SetIndent(ctx context.Context, left, right, firstLine *float64) error {
	format, err := c.selectionFormat()
	if err != nil {
		return err
	}
	if left != nil {
		if err := format.SetLeftIndent(*left); err != nil {
			return &automation.OpError{Op: "set_indent", Err: err}
		}
	}
	if right != nil {
		if err := format.SetRightIndent(*right); err != nil {
			return &automation.OpError{Op: "set_indent", Err: err}
		}
	}
	if firstLine != nil {
		if err := format.SetFirstLineIndent(*firstLine); err != nil {
			return &automation.OpError{Op: "set_indent", Err: err}
		}
	}
	return nil
}

// SetSpacing applies space before and after the selected paragraphs, in
// points. Nil values leave the corresponding spacing unchanged.
func (c *Client) SetSpacing(ctx context.Context, before, after *float64) error {
	format, err := c.selectionFormat()
	if err != nil {
		return err
	}
	if before != nil {
		if err := format.SetSpaceBefore(*before); err != nil {
			return &automation.OpError{Op: "set_spacing", Err: err}
		}
	}
	if after != nil {
		if err := format.SetSpaceAfter(*after); err != nil {
			return &automation.OpError{Op: "set_spacing", Err: err}
		}
	}
	return nil
}

// SetLineSpacing applies a WdLineSpacing rule to the selected paragraphs.
// Rules coded 3 and above (at least, exactly, multiple) take an explicit
// value; fixed rules ignore it.
func (c *Client) SetLineSpacing(ctx context.Context, rule int, value float64) error {
	if rule < automation.WdLineSpaceSingle || rule > automation.WdLineSpaceMultiple {
		return &automation.OpError{
			Op:  "set_line_spacing",
			Err: fmt.Errorf("unknown line spacing rule %d", rule),
		}
	}
	if rule >= automation.WdLineSpaceAtLeast && value <= 0 {
		return &automation.OpError{
			Op:  "set_line_spacing",
			Err: fmt.Errorf("rule %q requires a positive value", automation.LineSpacingName(rule)),
		}
	}
	format, err := c.selectionFormat()
	if err != nil {
		return err
	}
	if err := format.SetLineSpacingRule(rule); err != nil {
		return &automation.OpError{Op: "set_line_spacing", Err: err}
	}
	if rule >= automation.WdLineSpaceAtLeast {
		if err := format.SetLineSpacing(value); err != nil {
			return &automation.OpError{Op: "set_line_spacing", Err: err}
		}
	}
	return nil
}

func (c *Client) selectionFormat() (automation.ParagraphFormat, error) {
	sel, err := c.session.Selection()
	if err != nil {
		return nil, err
	}
	format, err := sel.ParagraphFormat()
	if err != nil {
		return nil, &automation.OpError{Op: "selection_paragraph_format", Err: err}
	}
	return format, nil
}
