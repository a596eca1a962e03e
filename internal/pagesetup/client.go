// Package pagesetup implements page layout operations: margins,
// orientation, and paper size.
package pagesetup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/officekit/word-mcp-server/internal/automation"
)

// Client performs page setup operations against the Word session.
type Client struct {
	session *automation.Session
	logger  *slog.Logger
}

// NewClient creates a page setup client.
func NewClient(session *automation.Session, logger *slog.Logger) *Client {
	return &Client{session: session, logger: logger}
}

// SetMargins applies page margins in points. Nil values leave the
// corresponding margin unchanged.
func (c *Client) SetMargins(ctx context.Context, top, bottom, left, right *float64) error {
	setup, err := c.pageSetup()
	if err != nil {
		return err
	}
	if top != nil {
		if err := setup.SetTopMargin(*top); err != nil {
			return &automation.OpError{Op: "set_margins", Err: err}
		}
	}
	if bottom != nil {
		if err := setup.SetBottomMargin(*bottom); err != nil {
			return &automation.OpError{Op: "set_margins", Err: err}
		}
	}
	if left != nil {
		if err := setup.SetLeftMargin(*left); err != nil {
			return &automation.OpError{Op: "set_margins", Err: err}
		}
	}
	if right != nil {
		if err := setup.SetRightMargin(*right); err != nil {
			return &automation.OpError{Op: "set_margins", Err: err}
		}
	}
	return nil
}

// SetOrientation applies a WdOrientation code to the document.
func (c *Client) SetOrientation(ctx context.Context, orientation int) error {
	if orientation != automation.WdOrientPortrait && orientation != automation.WdOrientLandscape {
		return &automation.OpError{
			Op:  "set_orientation",
			Err: fmt.Errorf("unknown orientation code %d (0=portrait, 1=landscape)", orientation),
		}
	}
	setup, err := c.pageSetup()
	if err != nil {
		return err
	}
	if err := setup.SetOrientation(orientation); err != nil {
		return &automation.OpError{Op: "set_orientation", Err: err}
	}
	return nil
}

// SetPaperSize applies a WdPaperSize code to the document.
func (c *Client) SetPaperSize(ctx context.Context, paperSize int) error {
	switch paperSize {
	case automation.WdPaperLetter, automation.WdPaperLegal,
		automation.WdPaperA3, automation.WdPaperA4, automation.WdPaperA5:
	default:
		return &automation.OpError{
			Op:  "set_paper_size",
			Err: fmt.Errorf("unknown paper size code %d (2=letter, 4=legal, 6=A3, 7=A4, 8=A5)", paperSize),
		}
	}
	setup, err := c.pageSetup()
	if err != nil {
		return err
	}
	if err := setup.SetPaperSize(paperSize); err != nil {
		return &automation.OpError{Op: "set_paper_size", Err: err}
	}
	return nil
}

func (c *Client) pageSetup() (automation.PageSetup, error) {
	doc, err := c.session.ActiveDocument()
	if err != nil {
		return nil, err
	}
	setup, err := doc.PageSetup()
	if err != nil {
		return nil, &automation.OpError{Op: "page_setup", Err: err}
	}
	return setup, nil
}
