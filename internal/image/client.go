// Package image implements inline picture operations: insertion and
// resizing.
package image

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/officekit/word-mcp-server/internal/automation"
)

// Client performs inline picture operations against the Word session.
type Client struct {
	session *automation.Session
	logger  *slog.Logger
}

// NewClient creates an image client.
func NewClient(session *automation.Session, logger *slog.Logger) *Client {
	return &Client{session: session, logger: logger}
}

// InsertPicture adds the picture at path as an inline shape at the current
// selection and returns its 1-based index in the document. The path must
// resolve to a readable file before Word is asked to load it.
func (c *Client) InsertPicture(ctx context.Context, path string, linkToFile, saveWithDocument bool) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, &automation.OpError{Op: "insert_picture", Err: fmt.Errorf("picture file %q: %w", path, err)}
	}
	if info.IsDir() {
		return 0, &automation.OpError{Op: "insert_picture", Err: fmt.Errorf("picture path %q is a directory", path)}
	}

	doc, err := c.session.ActiveDocument()
	if err != nil {
		return 0, err
	}
	sel, err := doc.Selection()
	if err != nil {
		return 0, &automation.OpError{Op: "insert_picture", Err: err}
	}
	at, err := sel.Range()
	if err != nil {
		return 0, &automation.OpError{Op: "insert_picture", Err: err}
	}
	shapes, err := doc.InlineShapes()
	if err != nil {
		return 0, &automation.OpError{Op: "insert_picture", Err: err}
	}
	if _, err := shapes.AddPicture(path, linkToFile, saveWithDocument, at); err != nil {
		return 0, &automation.OpError{Op: "insert_picture", Err: err}
	}
	count, err := shapes.Count()
	if err != nil {
		return 0, &automation.OpError{Op: "insert_picture", Err: err}
	}
	return count, nil
}

// Size is an inline shape's dimensions in points.
type Size struct {
	Height float64
	Width  float64
}

// SetPictureSize resizes the 1-based inline shape. Non-positive dimensions
// are left unchanged. With the aspect ratio locked and both dimensions
// given, the dimension that scales the picture more wins and the other
// follows the original aspect ratio.
func (c *Client) SetPictureSize(ctx context.Context, index int, height, width float64, lockAspectRatio bool) (Size, error) {
	doc, err := c.session.ActiveDocument()
	if err != nil {
		return Size{}, err
	}
	shapes, err := doc.InlineShapes()
	if err != nil {
		return Size{}, &automation.OpError{Op: "set_picture_size", Err: err}
	}
	count, err := shapes.Count()
	if err != nil {
		return Size{}, &automation.OpError{Op: "set_picture_size", Err: err}
	}
	if index < 1 || index > count {
		return Size{}, &automation.OutOfRangeError{Kind: "Inline shape", Index: index, Max: count}
	}
	shape, err := shapes.Item(index)
	if err != nil {
		return Size{}, &automation.OpError{Op: "set_picture_size", Err: err}
	}
	if err := shape.SetLockAspectRatio(lockAspectRatio); err != nil {
		return Size{}, &automation.OpError{Op: "set_picture_size", Err: err}
	}

	currentHeight, err := shape.Height()
	if err != nil {
		return Size{}, &automation.OpError{Op: "set_picture_size", Err: err}
	}
	currentWidth, err := shape.Width()
	if err != nil {
		return Size{}, &automation.OpError{Op: "set_picture_size", Err: err}
	}

	setHeight := height > 0
	setWidth := width > 0
	if setHeight && setWidth && lockAspectRatio {
		// Only one dimension can be honored under a locked ratio; the one
		// that scales the picture more wins and Word derives the other.
		if height/currentHeight >= width/currentWidth {
			setWidth = false
		} else {
			setHeight = false
		}
	}
	if setHeight {
		if err := shape.SetHeight(height); err != nil {
			return Size{}, &automation.OpError{Op: "set_picture_size", Err: err}
		}
	}
	if setWidth {
		if err := shape.SetWidth(width); err != nil {
			return Size{}, &automation.OpError{Op: "set_picture_size", Err: err}
		}
	}

	var size Size
	if size.Height, err = shape.Height(); err != nil {
		return Size{}, &automation.OpError{Op: "set_picture_size", Err: err}
	}
	if size.Width, err = shape.Width(); err != nil {
		return Size{}, &automation.OpError{Op: "set_picture_size", Err: err}
	}
	return size, nil
}
