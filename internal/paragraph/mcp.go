package paragraph

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/officekit/word-mcp-server/internal/automation"
	"github.com/officekit/word-mcp-server/metrics"
)

// MCP Tool wrapper methods
// These methods wrap the client methods with Args/Result types for MCP
// integration and record automation metrics.

func (c *Client) record(op string, start time.Time, err error) {
	metrics.RecordAutomationCall("paragraph", op, time.Since(start).Seconds(), err == nil)
}

// SetAlignmentMCP is the MCP wrapper for SetAlignment
func (c *Client) SetAlignmentMCP(ctx context.Context, args SetAlignmentArgs) (_ SetAlignmentResult, err error) {
	start := time.Now()
	defer func() { c.record("set_alignment", start, err) }()
	if err = c.SetAlignment(ctx, args.Alignment); err != nil {
		return SetAlignmentResult{}, err
	}
	name := automation.AlignmentName(args.Alignment)
	return SetAlignmentResult{
		Alignment: name,
		Message:   fmt.Sprintf("Set paragraph alignment to %s", name),
	}, nil
}

// SetIndentMCP is the MCP wrapper for SetIndent
func (c *Client) SetIndentMCP(ctx context.Context, args SetIndentArgs) (_ SetIndentResult, err error) {
	start := time.Now()
	defer func() { c.record("set_indent", start, err) }()
	if err = c.SetIndent(ctx, args.Left, args.Right, args.FirstLine); err != nil {
		return SetIndentResult{}, err
	}
	var parts []string
	if args.Left != nil {
		parts = append(parts, fmt.Sprintf("left=%.1fpt", *args.Left))
	}
	if args.Right != nil {
		parts = append(parts, fmt.Sprintf("right=%.1fpt", *args.Right))
	}
	if args.FirstLine != nil {
		parts = append(parts, fmt.Sprintf("first line=%.1fpt", *args.FirstLine))
	}
	if len(parts) == 0 {
		return SetIndentResult{Message: "No indent change requested"}, nil
	}
	return SetIndentResult{
		Message: fmt.Sprintf("Set paragraph indent (%s)", strings.Join(parts, ", ")),
	}, nil
}

// SetSpacingMCP is the MCP wrapper for SetSpacing
func (c *Client) SetSpacingMCP(ctx context.Context, args SetSpacingArgs) (_ SetSpacingResult, err error) {
	start := time.Now()
	defer func() { c.record("set_spacing", start, err) }()
	if err = c.SetSpacing(ctx, args.Before, args.After); err != nil {
		return SetSpacingResult{}, err
	}
	var parts []string
	if args.Before != nil {
		parts = append(parts, fmt.Sprintf("before=%.1fpt", *args.Before))
	}
	if args.After != nil {
		parts = append(parts, fmt.Sprintf("after=%.1fpt", *args.After))
	}
	if len(parts) == 0 {
		return SetSpacingResult{Message: "No spacing change requested"}, nil
	}
	return SetSpacingResult{
		Message: fmt.Sprintf("Set paragraph spacing (%s)", strings.Join(parts, ", ")),
	}, nil
}

// SetLineSpacingMCP is the MCP wrapper for SetLineSpacing
func (c *Client) SetLineSpacingMCP(ctx context.Context, args SetLineSpacingArgs) (_ SetLineSpacingResult, err error) {
	start := time.Now()
	defer func() { c.record("set_line_spacing", start, err) }()
	if err = c.SetLineSpacing(ctx, args.Rule, args.Value); err != nil {
		return SetLineSpacingResult{}, err
	}
	name := automation.LineSpacingName(args.Rule)
	message := fmt.Sprintf("Set line spacing to %s", name)
	if args.Rule >= automation.WdLineSpaceAtLeast {
		message = fmt.Sprintf("Set line spacing to %s (%.2f)", name, args.Value)
	}
	return SetLineSpacingResult{Rule: name, Message: message}, nil
}
