package headers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/officekit/word-mcp-server/internal/automation"
	"github.com/officekit/word-mcp-server/internal/automation/automationtest"
)

func newTestClient(t *testing.T) (*Client, *automationtest.Document) {
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
	return client, factory.App().ActiveDoc()
}

func TestSetAndGetHeaderText(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	if err := client.SetHeaderText(ctx, 1, automation.WdHeaderFooterPrimary, "Annual Report"); err != nil {
		t.Fatalf("SetHeaderText failed: %v", err)
	}
	text, err := client.GetHeaderText(ctx, 1, automation.WdHeaderFooterPrimary)
	if err != nil {
		t.Fatalf("GetHeaderText failed: %v", err)
	}
	if text != "Annual Report" {
		t.Errorf("header = %q", text)
	}
}

func TestSetAndGetFooterText(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	if err := client.SetFooterText(ctx, 1, automation.WdHeaderFooterPrimary, "Page 1"); err != nil {
		t.Fatalf("SetFooterText failed: %v", err)
	}
	text, err := client.GetFooterText(ctx, 1, automation.WdHeaderFooterPrimary)
	if err != nil {
		t.Fatalf("GetFooterText failed: %v", err)
	}
	if text != "Page 1" {
		t.Errorf("footer = %q", text)
	}
}

func TestHeadersAndFootersAreIndependent(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	if err := client.SetHeaderText(ctx, 1, automation.WdHeaderFooterPrimary, "top"); err != nil {
		t.Fatal(err)
	}
	text, err := client.GetFooterText(ctx, 1, automation.WdHeaderFooterPrimary)
	if err != nil {
		t.Fatal(err)
	}
	if text != "" {
		t.Errorf("footer unexpectedly %q", text)
	}
}

func TestFirstPageVariantRequiresPageSetup(t *testing.T) {
	client, doc := newTestClient(t)
	ctx := context.Background()

	err := client.SetHeaderText(ctx, 1, automation.WdHeaderFooterFirstPage, "cover")
	var notFound *automation.HeaderFooterNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected HeaderFooterNotFoundError, got %v", err)
	}

	doc.DifferentFirstPage = true
	if err := client.SetHeaderText(ctx, 1, automation.WdHeaderFooterFirstPage, "cover"); err != nil {
		t.Fatalf("SetHeaderText failed with first page enabled: %v", err)
	}
}

func TestEvenPagesVariantRequiresPageSetup(t *testing.T) {
	client, doc := newTestClient(t)
	ctx := context.Background()

	_, err := client.GetFooterText(ctx, 1, automation.WdHeaderFooterEvenPages)
	var notFound *automation.HeaderFooterNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected HeaderFooterNotFoundError, got %v", err)
	}

	doc.OddEvenPages = true
	if _, err := client.GetFooterText(ctx, 1, automation.WdHeaderFooterEvenPages); err != nil {
		t.Fatalf("GetFooterText failed with odd/even enabled: %v", err)
	}
}

func TestSectionIndexIsValidated(t *testing.T) {
	client, _ := newTestClient(t)

	err := client.SetHeaderText(context.Background(), 2, automation.WdHeaderFooterPrimary, "x")
	if !automation.IsOutOfRange(err) {
		t.Fatalf("expected OutOfRangeError, got %v", err)
	}
}

func TestUnknownVariantIsRejected(t *testing.T) {
	client, _ := newTestClient(t)

	err := client.SetHeaderText(context.Background(), 1, 9, "x")
	if err == nil || automation.IsOutOfRange(err) {
		t.Fatalf("expected a variant error, got %v", err)
	}
}

func TestHeaderWithoutDocument(t *testing.T) {
	factory := automationtest.NewFactory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := NewClient(automation.NewSession(factory, logger), logger)

	err := client.SetHeaderText(context.Background(), 1, automation.WdHeaderFooterPrimary, "x")
	if !automation.IsNoActiveDocument(err) {
		t.Fatalf("expected ErrNoActiveDocument, got %v", err)
	}
}
