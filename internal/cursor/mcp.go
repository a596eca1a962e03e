package cursor

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
	metrics.RecordAutomationCall("cursor", op, time.Since(start).Seconds(), err == nil)
}

// MoveToStartMCP is the MCP wrapper for MoveToStart
func (c *Client) MoveToStartMCP(ctx context.Context, args MoveToArgs) (_ MoveToResult, err error) {
	start := time.Now()
	defer func() { c.record("move_to_start", start, err) }()
	if err = c.MoveToStart(ctx); err != nil {
		return MoveToResult{}, err
	}
	return MoveToResult{Message: "Moved cursor to the start of the document"}, nil
}

// MoveToEndMCP is the MCP wrapper for MoveToEnd
func (c *Client) MoveToEndMCP(ctx context.Context, args MoveToArgs) (_ MoveToResult, err error) {
	start := time.Now()
	defer func() { c.record("move_to_end", start, err) }()
	if err = c.MoveToEnd(ctx); err != nil {
		return MoveToResult{}, err
	}
	return MoveToResult{Message: "Moved cursor to the end of the document"}, nil
}

// MoveMCP is the MCP wrapper for Move
func (c *Client) MoveMCP(ctx context.Context, args MoveArgs) (_ MoveResult, err error) {
	start := time.Now()
	defer func() { c.record("move", start, err) }()
	unit := automation.WdCharacter
	if args.Unit != nil {
		unit = *args.Unit
	}
	if err = c.Move(ctx, unit, args.Count, args.Extend); err != nil {
		return MoveResult{}, err
	}
	if args.Count == 0 {
		return MoveResult{Message: "Cursor not moved (count was 0)"}, nil
	}
	direction := "right"
	count := args.Count
	if count < 0 {
		direction = "left"
		count = -count
	}
	verb := "Moved cursor"
	if args.Extend {
		verb = "Extended selection"
	}
	return MoveResult{
		Message: fmt.Sprintf("%s %d %s unit(s) %s", verb, count, automation.UnitName(unit), direction),
	}, nil
}

// SelectAllMCP is the MCP wrapper for SelectAll
func (c *Client) SelectAllMCP(ctx context.Context, args SelectAllArgs) (_ SelectAllResult, err error) {
	start := time.Now()
	defer func() { c.record("select_all", start, err) }()
	if err = c.SelectAll(ctx); err != nil {
		return SelectAllResult{}, err
	}
	return SelectAllResult{Message: "Selected the whole document"}, nil
}

// SelectParagraphMCP is the MCP wrapper for SelectParagraph
func (c *Client) SelectParagraphMCP(ctx context.Context, args SelectParagraphArgs) (_ SelectParagraphResult, err error) {
	start := time.Now()
	defer func() { c.record("select_paragraph", start, err) }()
	if err = c.SelectParagraph(ctx, args.Index); err != nil {
		return SelectParagraphResult{}, err
	}
	return SelectParagraphResult{
		Message: fmt.Sprintf("Selected paragraph %d", args.Index),
	}, nil
}

// CollapseMCP is the MCP wrapper for Collapse
func (c *Client) CollapseMCP(ctx context.Context, args CollapseArgs) (_ CollapseResult, err error) {
	start := time.Now()
	defer func() { c.record("collapse", start, err) }()
	if err = c.Collapse(ctx, args.ToStart); err != nil {
		return CollapseResult{}, err
	}
	endpoint := "end"
	if args.ToStart {
		endpoint = "start"
	}
	return CollapseResult{
		Message: fmt.Sprintf("Collapsed selection to its %s", endpoint),
	}, nil
}

// GetSelectionTextMCP is the MCP wrapper for GetSelectionText
func (c *Client) GetSelectionTextMCP(ctx context.Context, args GetSelectionTextArgs) (_ GetSelectionTextResult, err error) {
	start := time.Now()
	defer func() { c.record("get_selection_text", start, err) }()
	text, err := c.GetSelectionText(ctx)
	if err != nil {
		return GetSelectionTextResult{}, err
	}
	message := fmt.Sprintf("Selection contains %d characters", len([]rune(text)))
	if text == "" {
		message = "Selection is empty (insertion point)"
	}
	return GetSelectionTextResult{Text: text, Message: message}, nil
}

// GetSelectionInfoMCP is the MCP wrapper for GetSelectionInfo
func (c *Client) GetSelectionInfoMCP(ctx context.Context, args GetSelectionInfoArgs) (_ GetSelectionInfoResult, err error) {
	start := time.Now()
	defer func() { c.record("get_selection_info", start, err) }()
	info, err := c.GetSelectionInfo(ctx)
	if err != nil {
		return GetSelectionInfoResult{}, err
	}
	return GetSelectionInfoResult{
		Text:   info.Text,
		Start:  info.Start,
		End:    info.End,
		Active: info.Active,
		Type:   info.Type,
	}, nil
}
