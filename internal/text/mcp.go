package text

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
	metrics.RecordAutomationCall("text", op, time.Since(start).Seconds(), err == nil)
}

// InsertMCP is the MCP wrapper for Insert
func (c *Client) InsertMCP(ctx context.Context, args InsertArgs) (_ InsertResult, err error) {
	start := time.Now()
	defer func() { c.record("insert", start, err) }()
	if err = c.Insert(ctx, args.Text); err != nil {
		return InsertResult{}, err
	}
	return InsertResult{
		Message: fmt.Sprintf("Inserted %d characters at the selection", len([]rune(args.Text))),
	}, nil
}

// DeleteMCP is the MCP wrapper for Delete
func (c *Client) DeleteMCP(ctx context.Context, args DeleteArgs) (_ DeleteResult, err error) {
	start := time.Now()
	defer func() { c.record("delete", start, err) }()
	unit := automation.WdCharacter
	if args.Unit != nil {
		unit = *args.Unit
	}
	if err = c.Delete(ctx, args.Count, unit); err != nil {
		return DeleteResult{}, err
	}
	if args.Count == 0 {
		return DeleteResult{Message: "Nothing to delete (count was 0)"}, nil
	}
	direction := "forward"
	count := args.Count
	if count < 0 {
		direction = "backward"
		count = -count
	}
	return DeleteResult{
		Message: fmt.Sprintf("Deleted %d %s unit(s) %s", count, automation.UnitName(unit), direction),
	}, nil
}

// FindReplaceMCP is the MCP wrapper for FindAndReplace
func (c *Client) FindReplaceMCP(ctx context.Context, args FindReplaceArgs) (_ FindReplaceResult, err error) {
	start := time.Now()
	defer func() { c.record("find_replace", start, err) }()
	found, err := c.FindAndReplace(ctx, args.Find, args.Replace, args.MatchCase, args.MatchWholeWord, args.ReplaceAll)
	if err != nil {
		return FindReplaceResult{}, err
	}
	if !found {
		return FindReplaceResult{
			Found:   false,
			Message: fmt.Sprintf("No occurrences of %q found", args.Find),
		}, nil
	}
	scope := "the first occurrence"
	if args.ReplaceAll {
		scope = "all occurrences"
	}
	return FindReplaceResult{
		Found:   true,
		Message: fmt.Sprintf("Replaced %s of %q with %q", scope, args.Find, args.Replace),
	}, nil
}

// ToggleBoldMCP is the MCP wrapper for ToggleBold
func (c *Client) ToggleBoldMCP(ctx context.Context, args ToggleArgs) (_ ToggleResult, err error) {
	start := time.Now()
	defer func() { c.record("toggle_bold", start, err) }()
	enabled, err := c.ToggleBold(ctx)
	if err != nil {
		return ToggleResult{}, err
	}
	return ToggleResult{
		Enabled: enabled,
		Message: fmt.Sprintf("Bold is now %s", onOff(enabled)),
	}, nil
}

// ToggleItalicMCP is the MCP wrapper for ToggleItalic
func (c *Client) ToggleItalicMCP(ctx context.Context, args ToggleArgs) (_ ToggleResult, err error) {
	start := time.Now()
	defer func() { c.record("toggle_italic", start, err) }()
	enabled, err := c.ToggleItalic(ctx)
	if err != nil {
		return ToggleResult{}, err
	}
	return ToggleResult{
		Enabled: enabled,
		Message: fmt.Sprintf("Italic is now %s", onOff(enabled)),
	}, nil
}

// ToggleUnderlineMCP is the MCP wrapper for ToggleUnderline
func (c *Client) ToggleUnderlineMCP(ctx context.Context, args ToggleUnderlineArgs) (_ ToggleUnderlineResult, err error) {
	start := time.Now()
	defer func() { c.record("toggle_underline", start, err) }()
	style := automation.WdUnderlineSingle
	if args.Style != nil {
		style = *args.Style
	}
	applied, err := c.ToggleUnderline(ctx, style)
	if err != nil {
		return ToggleUnderlineResult{}, err
	}
	name := automation.UnderlineName(applied)
	return ToggleUnderlineResult{
		Style:   name,
		Message: fmt.Sprintf("Underline style is now %s", name),
	}, nil
}

// SetFontMCP is the MCP wrapper for SetFont
func (c *Client) SetFontMCP(ctx context.Context, args SetFontArgs) (_ SetFontResult, err error) {
	start := time.Now()
	defer func() { c.record("set_font", start, err) }()
	if err = c.SetFont(ctx, args.Name, args.Size); err != nil {
		return SetFontResult{}, err
	}
	switch {
	case args.Name != "" && args.Size > 0:
		return SetFontResult{Message: fmt.Sprintf("Set font to %s at %.1fpt", args.Name, args.Size)}, nil
	case args.Name != "":
		return SetFontResult{Message: fmt.Sprintf("Set font name to %s", args.Name)}, nil
	case args.Size > 0:
		return SetFontResult{Message: fmt.Sprintf("Set font size to %.1fpt", args.Size)}, nil
	}
	return SetFontResult{Message: "No font change requested"}, nil
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
