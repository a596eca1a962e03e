package headers

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
	metrics.RecordAutomationCall("headers", op, time.Since(start).Seconds(), err == nil)
}

func defaults(section, variant *int) (int, int) {
	s, v := 1, automation.WdHeaderFooterPrimary
	if section != nil {
		s = *section
	}
	if variant != nil {
		v = *variant
	}
	return s, v
}

// SetHeaderTextMCP is the MCP wrapper for SetHeaderText
func (c *Client) SetHeaderTextMCP(ctx context.Context, args SetTextArgs) (_ SetTextResult, err error) {
	start := time.Now()
	defer func() { c.record("set_header_text", start, err) }()
	section, variant := defaults(args.Section, args.Variant)
	if err = c.SetHeaderText(ctx, section, variant, args.Text); err != nil {
		return SetTextResult{}, err
	}
	return SetTextResult{
		Message: fmt.Sprintf("Set %s header of section %d",
			automation.HeaderFooterVariantName(variant), section),
	}, nil
}

// SetFooterTextMCP is the MCP wrapper for SetFooterText
func (c *Client) SetFooterTextMCP(ctx context.Context, args SetTextArgs) (_ SetTextResult, err error) {
	start := time.Now()
	defer func() { c.record("set_footer_text", start, err) }()
	section, variant := defaults(args.Section, args.Variant)
	if err = c.SetFooterText(ctx, section, variant, args.Text); err != nil {
		return SetTextResult{}, err
	}
	return SetTextResult{
		Message: fmt.Sprintf("Set %s footer of section %d",
			automation.HeaderFooterVariantName(variant), section),
	}, nil
}

// GetHeaderTextMCP is the MCP wrapper for GetHeaderText
func (c *Client) GetHeaderTextMCP(ctx context.Context, args GetTextArgs) (_ GetTextResult, err error) {
	start := time.Now()
	defer func() { c.record("get_header_text", start, err) }()
	section, variant := defaults(args.Section, args.Variant)
	text, err := c.GetHeaderText(ctx, section, variant)
	if err != nil {
		return GetTextResult{}, err
	}
	return GetTextResult{
		Text: text,
		Message: fmt.Sprintf("Read %s header of section %d",
			automation.HeaderFooterVariantName(variant), section),
	}, nil
}

// GetFooterTextMCP is the MCP wrapper for GetFooterText
func (c *Client) GetFooterTextMCP(ctx context.Context, args GetTextArgs) (_ GetTextResult, err error) {
	start := time.Now()
	defer func() { c.record("get_footer_text", start, err) }()
	section, variant := defaults(args.Section, args.Variant)
	text, err := c.GetFooterText(ctx, section, variant)
	if err != nil {
		return GetTextResult{}, err
	}
	return GetTextResult{
		Text: text,
		Message: fmt.Sprintf("Read %s footer of section %d",
			automation.HeaderFooterVariantName(variant), section),
	}, nil
}
