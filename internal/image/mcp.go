package image

import (
	"context"
	"fmt"
	"time"

	"github.com/officekit/word-mcp-server/metrics"
)

// MCP Tool wrapper methods
// These methods wrap the client methods with Args/Result types for MCP
// integration and record automation metrics.

func (c *Client) record(op string, start time.Time, err error) {
	metrics.RecordAutomationCall("image", op, time.Since(start).Seconds(), err == nil)
}

// InsertPictureMCP is the MCP wrapper for InsertPicture
func (c *Client) InsertPictureMCP(ctx context.Context, args InsertPictureArgs) (_ InsertPictureResult, err error) {
	start := time.Now()
	defer func() { c.record("insert_picture", start, err) }()
	saveWithDocument := true
	if args.SaveWithDocument != nil {
		saveWithDocument = *args.SaveWithDocument
	}
	index, err := c.InsertPicture(ctx, args.Path, args.LinkToFile, saveWithDocument)
	if err != nil {
		return InsertPictureResult{}, err
	}
	return InsertPictureResult{
		ShapeIndex: index,
		Message:    fmt.Sprintf("Inserted picture from %s as inline shape %d", args.Path, index),
	}, nil
}

// SetPictureSizeMCP is the MCP wrapper for SetPictureSize
func (c *Client) SetPictureSizeMCP(ctx context.Context, args SetPictureSizeArgs) (_ SetPictureSizeResult, err error) {
	start := time.Now()
	defer func() { c.record("set_picture_size", start, err) }()
	size, err := c.SetPictureSize(ctx, args.ShapeIndex, args.Height, args.Width, args.LockAspectRatio)
	if err != nil {
		return SetPictureSizeResult{}, err
	}
	return SetPictureSizeResult{
		Height: size.Height,
		Width:  size.Width,
		Message: fmt.Sprintf("Inline shape %d is now %.1f x %.1f points",
			args.ShapeIndex, size.Height, size.Width),
	}, nil
}
