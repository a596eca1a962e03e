package table

import (
	"context"
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

func ptr(v int) *int { return &v }

func TestAddTable(t *testing.T) {
	client, doc := newTestClient(t)

	index, err := client.Add(context.Background(), 2, 3)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if index != 1 {
		t.Errorf("index = %d", index)
	}
	if len(doc.TableList) != 1 {
		t.Fatalf("table count = %d", len(doc.TableList))
	}
	grid := doc.TableList[0].CellText
	if len(grid) != 2 || len(grid[0]) != 3 {
		t.Errorf("grid = %dx%d", len(grid), len(grid[0]))
	}
}

func TestAddTableRejectsZeroDimensions(t *testing.T) {
	client, _ := newTestClient(t)

	if _, err := client.Add(context.Background(), 0, 3); err == nil {
		t.Fatal("expected an error for 0 rows")
	}
}

func TestSetCellText(t *testing.T) {
	client, doc := newTestClient(t)
	ctx := context.Background()

	if _, err := client.Add(ctx, 2, 2); err != nil {
		t.Fatal(err)
	}
	if err := client.SetCellText(ctx, 1, 2, 1, "total"); err != nil {
		t.Fatalf("SetCellText failed: %v", err)
	}
	if got := doc.TableList[0].CellText[1][0]; got != "total" {
		t.Errorf("cell = %q", got)
	}
}

func TestSetCellTextValidatesIndices(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	if _, err := client.Add(ctx, 2, 2); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name            string
		table, row, col int
	}{
		{"table too high", 2, 1, 1},
		{"table zero", 0, 1, 1},
		{"row too high", 1, 3, 1},
		{"col too high", 1, 1, 3},
		{"row zero", 1, 0, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := client.SetCellText(ctx, tc.table, tc.row, tc.col, "x")
			if !automation.IsOutOfRange(err) {
				t.Fatalf("expected OutOfRangeError, got %v", err)
			}
		})
	}
}

func TestSetCellTextWithoutDocument(t *testing.T) {
	factory := automationtest.NewFactory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := NewClient(automation.NewSession(factory, logger), logger)

	err := client.SetCellText(context.Background(), 1, 1, 1, "x")
	if !automation.IsNoActiveDocument(err) {
		t.Fatalf("expected ErrNoActiveDocument, got %v", err)
	}
}

func TestInsertRowBefore(t *testing.T) {
	client, doc := newTestClient(t)
	ctx := context.Background()

	if _, err := client.Add(ctx, 2, 2); err != nil {
		t.Fatal(err)
	}
	doc.TableList[0].CellText[0] = []string{"a", "b"}
	doc.TableList[0].CellText[1] = []string{"c", "d"}

	position, err := client.InsertRow(ctx, 1, ptr(2))
	if err != nil {
		t.Fatalf("InsertRow failed: %v", err)
	}
	if position != 2 {
		t.Errorf("position = %d", position)
	}
	grid := doc.TableList[0].CellText
	if len(grid) != 3 || grid[1][0] != "" || grid[2][0] != "c" {
		t.Errorf("grid after insert = %v", grid)
	}
}

func TestInsertRowAtCountPlusOneAppends(t *testing.T) {
	client, doc := newTestClient(t)
	ctx := context.Background()

	if _, err := client.Add(ctx, 2, 2); err != nil {
		t.Fatal(err)
	}

	position, err := client.InsertRow(ctx, 1, ptr(3))
	if err != nil {
		t.Fatalf("InsertRow failed: %v", err)
	}
	if position != 3 {
		t.Errorf("position = %d", position)
	}
	if got := len(doc.TableList[0].CellText); got != 3 {
		t.Errorf("row count = %d", got)
	}
}

func TestInsertRowOmittedAppends(t *testing.T) {
	client, doc := newTestClient(t)
	ctx := context.Background()

	if _, err := client.Add(ctx, 2, 2); err != nil {
		t.Fatal(err)
	}

	position, err := client.InsertRow(ctx, 1, nil)
	if err != nil {
		t.Fatalf("InsertRow failed: %v", err)
	}
	if position != 3 {
		t.Errorf("position = %d", position)
	}
	if got := len(doc.TableList[0].CellText); got != 3 {
		t.Errorf("row count = %d, want 3", got)
	}
}

func TestInsertRowRejectsOutOfRangePosition(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	if _, err := client.Add(ctx, 2, 2); err != nil {
		t.Fatal(err)
	}

	for _, before := range []int{0, 4} {
		if _, err := client.InsertRow(ctx, 1, ptr(before)); !automation.IsOutOfRange(err) {
			t.Errorf("before=%d: expected OutOfRangeError, got %v", before, err)
		}
	}
}

func TestInsertColumnBefore(t *testing.T) {
	client, doc := newTestClient(t)
	ctx := context.Background()

	if _, err := client.Add(ctx, 1, 2); err != nil {
		t.Fatal(err)
	}
	doc.TableList[0].CellText[0] = []string{"a", "b"}

	position, err := client.InsertColumn(ctx, 1, ptr(1))
	if err != nil {
		t.Fatalf("InsertColumn failed: %v", err)
	}
	if position != 1 {
		t.Errorf("position = %d", position)
	}
	if row := doc.TableList[0].CellText[0]; row[0] != "" || row[1] != "a" {
		t.Errorf("row after insert = %v", row)
	}
}

func TestInsertColumnAppends(t *testing.T) {
	client, doc := newTestClient(t)
	ctx := context.Background()

	if _, err := client.Add(ctx, 1, 2); err != nil {
		t.Fatal(err)
	}

	position, err := client.InsertColumn(ctx, 1, nil)
	if err != nil {
		t.Fatalf("InsertColumn failed: %v", err)
	}
	if position != 3 {
		t.Errorf("position = %d", position)
	}
	if got := len(doc.TableList[0].CellText[0]); got != 3 {
		t.Errorf("column count = %d", got)
	}
}

func TestApplyStyleNumericCode(t *testing.T) {
	client, doc := newTestClient(t)
	ctx := context.Background()

	if _, err := client.Add(ctx, 2, 2); err != nil {
		t.Fatal(err)
	}
	if err := client.ApplyStyle(ctx, 1, "16", automation.DefaultTableFormatApply); err != nil {
		t.Fatalf("ApplyStyle failed: %v", err)
	}
	table := doc.TableList[0]
	if table.Format != automation.WdTableFormatGrid1 {
		t.Errorf("format = %d", table.Format)
	}
	if table.ApplyFlags != automation.DefaultTableFormatApply {
		t.Errorf("apply flags = %d", table.ApplyFlags)
	}
}

func TestApplyStyleByName(t *testing.T) {
	client, doc := newTestClient(t)
	ctx := context.Background()

	if _, err := client.Add(ctx, 2, 2); err != nil {
		t.Fatal(err)
	}
	if err := client.ApplyStyle(ctx, 1, "Table Grid", automation.DefaultTableFormatApply); err != nil {
		t.Fatalf("ApplyStyle failed: %v", err)
	}
	if got := doc.TableList[0].StyleName; got != "Table Grid" {
		t.Errorf("style = %q", got)
	}
}

func TestApplyStyleValidatesTableIndex(t *testing.T) {
	client, _ := newTestClient(t)

	err := client.ApplyStyle(context.Background(), 1, "16", automation.DefaultTableFormatApply)
	if !automation.IsOutOfRange(err) {
		t.Fatalf("expected OutOfRangeError, got %v", err)
	}
}
