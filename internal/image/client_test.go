package image

import (
	"context"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/officekit/word-mcp-server/internal/automation"
	"github.com/officekit/word-mcp-server/internal/automation/automationtest"
)

func newTestClient(t *testing.T) (*Client, *automationtest.Factory) {
	t.Helper()
	factory := automationtest.NewFactory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	session := automation.NewSession(factory, logger)
	client := NewClient(session, logger)
	app, err := session.Acquire()
	if err != nil {
		t.Fatal(err)
	}
	docs, _ := app.Documents()
	if _, err := docs.Add(); err != nil {
		t.Fatal(err)
	}
	return client, factory
}

func writePicture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logo.png")
	if err := os.WriteFile(path, []byte("png bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func approx(a, b float64) bool { return math.Abs(a-b) < 0.01 }

func TestInsertPicture(t *testing.T) {
	client, factory := newTestClient(t)
	path := writePicture(t)

	index, err := client.InsertPicture(context.Background(), path, false, true)
	if err != nil {
		t.Fatalf("InsertPicture failed: %v", err)
	}
	if index != 1 {
		t.Errorf("index = %d", index)
	}
	shape := factory.App().ActiveDoc().ShapeList[0]
	if shape.Path != path || shape.Linked || !shape.SavedWith {
		t.Errorf("shape = %+v", shape)
	}
}

func TestInsertPictureMissingFile(t *testing.T) {
	client, factory := newTestClient(t)

	_, err := client.InsertPicture(context.Background(), filepath.Join(t.TempDir(), "absent.png"), false, true)
	if err == nil {
		t.Fatal("expected an error for a missing picture file")
	}
	if got := len(factory.App().ActiveDoc().ShapeList); got != 0 {
		t.Errorf("shape count = %d", got)
	}
}

func TestSetPictureSizeBothUnlocked(t *testing.T) {
	client, _ := newTestClient(t)
	path := writePicture(t)
	ctx := context.Background()

	if _, err := client.InsertPicture(ctx, path, false, true); err != nil {
		t.Fatal(err)
	}

	size, err := client.SetPictureSize(ctx, 1, 200, 50, false)
	if err != nil {
		t.Fatalf("SetPictureSize failed: %v", err)
	}
	if !approx(size.Height, 200) || !approx(size.Width, 50) {
		t.Errorf("size = %.1fx%.1f", size.Height, size.Width)
	}
}

func TestSetPictureSizeLockedLargerRatioWins(t *testing.T) {
	// Natural size is 100x150; height 300 asks for 3x, width 300 asks for
	// 2x, so height wins and width follows the ratio: 150*3 = 450.
	client, _ := newTestClient(t)
	ctx := context.Background()

	if _, err := client.InsertPicture(ctx, writePicture(t), false, true); err != nil {
		t.Fatal(err)
	}

	size, err := client.SetPictureSize(ctx, 1, 300, 300, true)
	if err != nil {
		t.Fatalf("SetPictureSize failed: %v", err)
	}
	if !approx(size.Height, 300) || !approx(size.Width, 450) {
		t.Errorf("size = %.1fx%.1f, want 300x450", size.Height, size.Width)
	}
}

func TestSetPictureSizeLockedSingleDimension(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	if _, err := client.InsertPicture(ctx, writePicture(t), false, true); err != nil {
		t.Fatal(err)
	}

	size, err := client.SetPictureSize(ctx, 1, 0, 300, true)
	if err != nil {
		t.Fatalf("SetPictureSize failed: %v", err)
	}
	if !approx(size.Width, 300) || !approx(size.Height, 200) {
		t.Errorf("size = %.1fx%.1f, want 200x300", size.Height, size.Width)
	}
}

func TestSetPictureSizeNoDimensionsIsNoOp(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	if _, err := client.InsertPicture(ctx, writePicture(t), false, true); err != nil {
		t.Fatal(err)
	}

	size, err := client.SetPictureSize(ctx, 1, 0, 0, false)
	if err != nil {
		t.Fatalf("SetPictureSize failed: %v", err)
	}
	if !approx(size.Height, 100) || !approx(size.Width, 150) {
		t.Errorf("size = %.1fx%.1f, want natural 100x150", size.Height, size.Width)
	}
}

func TestSetPictureSizeValidatesIndex(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.SetPictureSize(context.Background(), 1, 100, 100, false)
	if !automation.IsOutOfRange(err) {
		t.Fatalf("expected OutOfRangeError, got %v", err)
	}
}
