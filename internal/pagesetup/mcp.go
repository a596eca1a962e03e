package pagesetup

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
	metrics.RecordAutomationCall("pagesetup", op, time.Since(start).Seconds(), err == nil)
}

// SetMarginsMCP is the MCP wrapper for SetMargins
func (c *Client) SetMarginsMCP(ctx context.Context, args SetMarginsArgs) (_ SetMarginsResult, err error) {
	start := time.Now()
	defer func() { c.record("set_margins", start, err) }()
	if err = c.SetMargins(ctx, args.Top, args.Bottom, args.Left, args.Right); err != nil {
		return SetMarginsResult{}, err
	}
	var parts []string
	for _, m := range []struct {
		name  string
		value *float64
	}{
		{"top", args.Top}, {"bottom", args.Bottom}, {"left", args.Left}, {"right", args.Right},
	} {
		if m.value != nil {
			parts = append(parts, fmt.Sprintf("%s=%.1fpt", m.name, *m.value))
		}
	}
	if len(parts) == 0 {
		return SetMarginsResult{Message: "No margin change requested"}, nil
	}
	return SetMarginsResult{
		Message: fmt.Sprintf("Set page margins (%s)", strings.Join(parts, ", ")),
	}, nil
}

// SetOrientationMCP is the MCP wrapper for SetOrientation
func (c *Client) SetOrientationMCP(ctx context.Context, args SetOrientationArgs) (_ SetOrientationResult, err error) {
	start := time.Now()
	defer func() { c.record("set_orientation", start, err) }()
	if err = c.SetOrientation(ctx, args.Orientation); err != nil {
		return SetOrientationResult{}, err
	}
	name := automation.OrientationName(args.Orientation)
	return SetOrientationResult{
		Orientation: name,
		Message:     fmt.Sprintf("Set page orientation to %s", name),
	}, nil
}

// SetPaperSizeMCP is the MCP wrapper for SetPaperSize
func (c *Client) SetPaperSizeMCP(ctx context.Context, args SetPaperSizeArgs) (_ SetPaperSizeResult, err error) {
	start := time.Now()
	defer func() { c.record("set_paper_size", start, err) }()
	if err = c.SetPaperSize(ctx, args.PaperSize); err != nil {
		return SetPaperSizeResult{}, err
	}
	name := automation.PaperSizeName(args.PaperSize)
	return SetPaperSizeResult{
		PaperSize: name,
		Message:   fmt.Sprintf("Set paper size to %s", name),
	}, nil
}
