// Package headers implements header and footer text operations, addressed
// by section and WdHeaderFooterIndex variant.
package headers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/officekit/word-mcp-server/internal/automation"
)

// Client performs header and footer operations against the Word session.
type Client struct {
	session *automation.Session
	logger  *slog.Logger
}

// NewClient creates a headers client.
func NewClient(session *automation.Session, logger *slog.Logger) *Client {
	return &Client{session: session, logger: logger}
}

// SetHeaderText overwrites the text of a header variant in a section.
func (c *Client) SetHeaderText(ctx context.Context, section, variant int, text string) error {
	rng, err := c.resolve("header", section, variant)
	if err != nil {
		return err
	}
	if err := rng.SetText(text); err != nil {
		return &automation.OpError{Op: "set_header_text", Err: err}
	}
	return nil
}

// SetFooterText overwrites the text of a footer variant in a section.
func (c *Client) SetFooterText(ctx context.Context, section, variant int, text string) error {
	rng, err := c.resolve("footer", section, variant)
	if err != nil {
		return err
	}
	if err := rng.SetText(text); err != nil {
		return &automation.OpError{Op: "set_footer_text", Err: err}
	}
	return nil
}

// GetHeaderText reads the text of a header variant in a section.
func (c *Client) GetHeaderText(ctx context.Context, section, variant int) (string, error) {
	rng, err := c.resolve("header", section, variant)
	if err != nil {
		return "", err
	}
	text, err := rng.Text()
	if err != nil {
		return "", &automation.OpError{Op: "get_header_text", Err: err}
	}
	return text, nil
}

// GetFooterText reads the text of a footer variant in a section.
func (c *Client) GetFooterText(ctx context.Context, section, variant int) (string, error) {
	rng, err := c.resolve("footer", section, variant)
	if err != nil {
		return "", err
	}
	text, err := rng.Text()
	if err != nil {
		return "", &automation.OpError{Op: "get_footer_text", Err: err}
	}
	return text, nil
}

// resolve walks section -> headers/footers -> variant and returns the
// variant's range. The section index is validated against the live count;
// a variant whose page setup option is off yields
// HeaderFooterNotFoundError.
func (c *Client) resolve(kind string, section, variant int) (automation.Range, error) {
	if !automation.ValidHeaderFooterVariant(variant) {
		return nil, &automation.OpError{
			Op:  "resolve_" + kind,
			Err: fmt.Errorf("unknown %s variant %d (valid: 1=primary, 2=first page, 3=even pages)", kind, variant),
		}
	}
	doc, err := c.session.ActiveDocument()
	if err != nil {
		return nil, err
	}
	sections, err := doc.Sections()
	if err != nil {
		return nil, &automation.OpError{Op: "resolve_" + kind, Err: err}
	}
	count, err := sections.Count()
	if err != nil {
		return nil, &automation.OpError{Op: "resolve_" + kind, Err: err}
	}
	if section < 1 || section > count {
		return nil, &automation.OutOfRangeError{Kind: "Section", Index: section, Max: count}
	}
	sect, err := sections.Item(section)
	if err != nil {
		return nil, &automation.OpError{Op: "resolve_" + kind, Err: err}
	}

	var coll automation.HeadersFooters
	if kind == "header" {
		coll, err = sect.Headers()
	} else {
		coll, err = sect.Footers()
	}
	if err != nil {
		return nil, &automation.OpError{Op: "resolve_" + kind, Err: err}
	}
	item, err := coll.Item(variant)
	if err != nil {
		return nil, &automation.OpError{Op: "resolve_" + kind, Err: err}
	}
	exists, err := item.Exists()
	if err != nil {
		return nil, &automation.OpError{Op: "resolve_" + kind, Err: err}
	}
	if !exists {
		return nil, &automation.HeaderFooterNotFoundError{Kind: kind, Variant: variant, Section: section}
	}
	rng, err := item.Range()
	if err != nil {
		return nil, &automation.OpError{Op: "resolve_" + kind, Err: err}
	}
	return rng, nil
}
