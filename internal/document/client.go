// Package document implements document lifecycle operations: create, open,
// save, close, and application shutdown.
package document

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/officekit/word-mcp-server/internal/automation"
)

// Client performs document lifecycle operations against the Word session.
type Client struct {
	session *automation.Session
	logger  *slog.Logger
}

// NewClient creates a document client.
func NewClient(session *automation.Session, logger *slog.Logger) *Client {
	return &Client{session: session, logger: logger}
}

// Create adds a new blank document and returns its name. The new document
// becomes the active document.
func (c *Client) Create(ctx context.Context) (string, error) {
	app, err := c.session.Acquire()
	if err != nil {
		return "", err
	}
	docs, err := app.Documents()
	if err != nil {
		return "", &automation.OpError{Op: "create_document", Err: err}
	}
	doc, err := docs.Add()
	if err != nil {
		return "", &automation.OpError{Op: "create_document", Err: err}
	}
	name, err := doc.Name()
	if err != nil {
		return "", &automation.OpError{Op: "create_document", Err: err}
	}
	return name, nil
}

// Open opens the document at path. The path must resolve to a readable file
// before Word is asked to open it.
func (c *Client) Open(ctx context.Context, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", &automation.DocumentOpenError{Path: path, Err: err}
	}
	if info.IsDir() {
		return "", &automation.DocumentOpenError{Path: path, Err: fmt.Errorf("path is a directory")}
	}

	app, err := c.session.Acquire()
	if err != nil {
		return "", err
	}
	docs, err := app.Documents()
	if err != nil {
		return "", &automation.OpError{Op: "open_document", Err: err}
	}
	doc, err := docs.Open(path)
	if err != nil {
		return "", &automation.DocumentOpenError{Path: path, Err: err}
	}
	name, err := doc.Name()
	if err != nil {
		return "", &automation.OpError{Op: "open_document", Err: err}
	}
	return name, nil
}

// Save saves the active document in place.
func (c *Client) Save(ctx context.Context) error {
	doc, err := c.session.ActiveDocument()
	if err != nil {
		return err
	}
	if err := doc.Save(); err != nil {
		return &automation.OpError{Op: "save_document", Err: err}
	}
	return nil
}

// SaveAs saves the active document to path in the given WdSaveFormat.
func (c *Client) SaveAs(ctx context.Context, path string, format int) error {
	doc, err := c.session.ActiveDocument()
	if err != nil {
		return err
	}
	if err := doc.SaveAs(path, format); err != nil {
		return &automation.OpError{Op: "save_document_as", Err: err}
	}
	return nil
}

// Close closes the active document with the given WdSaveOptions code.
// Returns false without error when no document is open: close is the one
// operation for which a missing document means "nothing to do", not a
// failure.
func (c *Client) Close(ctx context.Context, saveOption int) (bool, error) {
	doc, err := c.session.ActiveDocument()
	if err != nil {
		if automation.IsNoActiveDocument(err) {
			return false, nil
		}
		return false, err
	}
	if err := doc.Close(saveOption); err != nil {
		// The document may already be gone; degrade to a warning.
		c.logger.Warn("Close reported an error", "error", err)
		return false, nil
	}
	return true, nil
}

// Quit shuts Word down without saving. Never fails.
func (c *Client) Quit(ctx context.Context) {
	c.session.Quit()
}

// Info describes the active document.
type Info struct {
	Name             string
	FullName         string
	Saved            bool
	ParagraphCount   int
	TableCount       int
	InlineShapeCount int
}

// GetInfo reports the active document's name, path, saved state, and
// collection counts.
func (c *Client) GetInfo(ctx context.Context) (Info, error) {
	doc, err := c.session.ActiveDocument()
	if err != nil {
		return Info{}, err
	}

	var info Info
	op := func(err error) (Info, error) {
		return Info{}, &automation.OpError{Op: "get_document_info", Err: err}
	}
	if info.Name, err = doc.Name(); err != nil {
		return op(err)
	}
	if info.FullName, err = doc.FullName(); err != nil {
		return op(err)
	}
	if info.Saved, err = doc.Saved(); err != nil {
		return op(err)
	}
	paras, err := doc.Paragraphs()
	if err != nil {
		return op(err)
	}
	if info.ParagraphCount, err = paras.Count(); err != nil {
		return op(err)
	}
	tables, err := doc.Tables()
	if err != nil {
		return op(err)
	}
	if info.TableCount, err = tables.Count(); err != nil {
		return op(err)
	}
	shapes, err := doc.InlineShapes()
	if err != nil {
		return op(err)
	}
	if info.InlineShapeCount, err = shapes.Count(); err != nil {
		return op(err)
	}
	return info, nil
}
