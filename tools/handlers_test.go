package tools

import (
	"log/slog"
	"os"
	"testing"

	"github.com/officekit/word-mcp-server/internal/automation"
	"github.com/officekit/word-mcp-server/internal/automation/automationtest"
	"github.com/officekit/word-mcp-server/internal/cursor"
	"github.com/officekit/word-mcp-server/internal/document"
	"github.com/officekit/word-mcp-server/internal/headers"
	"github.com/officekit/word-mcp-server/internal/image"
	"github.com/officekit/word-mcp-server/internal/pagesetup"
	"github.com/officekit/word-mcp-server/internal/paragraph"
	"github.com/officekit/word-mcp-server/internal/table"
	"github.com/officekit/word-mcp-server/internal/text"
)

func testRegistry(t *testing.T) *HandlerRegistry {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	session := automation.NewSession(automationtest.NewFactory(), logger)
	clients := Clients{
		Document:  document.NewClient(session, logger),
		Text:      text.NewClient(session, logger),
		Paragraph: paragraph.NewClient(session, logger),
		Table:     table.NewClient(session, logger),
		Image:     image.NewClient(session, logger),
		Headers:   headers.NewClient(session, logger),
		PageSetup: pagesetup.NewClient(session, logger),
		Cursor:    cursor.NewClient(session, logger),
	}
	return NewHandlerRegistry(clients, logger)
}

func TestNewHandlerRegistry(t *testing.T) {
	registry := testRegistry(t)

	if registry == nil {
		t.Fatal("Expected non-nil registry")
	}
	if registry.clients.Document == nil || registry.clients.Cursor == nil {
		t.Error("Registry should hold the area client references")
	}
	if registry.logger == nil {
		t.Error("Registry should hold the logger reference")
	}
}

func TestBuildTool(t *testing.T) {
	registry := testRegistry(t)

	tests := []struct {
		name      string
		spec      ToolSpec
		wantName  string
		wantDesc  string
		wantRO    bool
		wantIdem  bool
		wantDestr bool
		wantOpen  bool
	}{
		{
			name: "read-only tool",
			spec: ToolSpec{
				Name:        "word_get_selection_text",
				Title:       "Get Selection Text",
				Description: "Read the selected text",
				Method:      "GetSelectionText",
				Area:        "cursor",
				ReadOnly:    true,
				Idempotent:  true,
			},
			wantName:  "word_get_selection_text",
			wantDesc:  "Read the selected text",
			wantRO:    true,
			wantIdem:  true,
			wantDestr: false,
			wantOpen:  false,
		},
		{
			name: "destructive open world tool",
			spec: ToolSpec{
				Name:        "word_delete_text",
				Title:       "Delete Text",
				Description: "Delete text at the cursor",
				Method:      "DeleteText",
				Area:        "text",
				Destructive: true,
				OpenWorld:   true,
			},
			wantName:  "word_delete_text",
			wantDesc:  "Delete text at the cursor",
			wantDestr: true,
			wantOpen:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := registry.buildTool(tt.spec)

			if tool.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", tool.Name, tt.wantName)
			}
			if tool.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", tool.Description, tt.wantDesc)
			}
			if tool.Annotations == nil {
				t.Fatal("Expected annotations")
			}
			if tool.Annotations.ReadOnlyHint != tt.wantRO {
				t.Errorf("ReadOnlyHint = %v, want %v", tool.Annotations.ReadOnlyHint, tt.wantRO)
			}
			if tool.Annotations.IdempotentHint != tt.wantIdem {
				t.Errorf("IdempotentHint = %v, want %v", tool.Annotations.IdempotentHint, tt.wantIdem)
			}
			if tt.wantDestr && (tool.Annotations.DestructiveHint == nil || !*tool.Annotations.DestructiveHint) {
				t.Error("Expected DestructiveHint to be true")
			}
			if tt.wantOpen && (tool.Annotations.OpenWorldHint == nil || !*tool.Annotations.OpenWorldHint) {
				t.Error("Expected OpenWorldHint to be true")
			}
		})
	}
}

func TestRecoverPanic(t *testing.T) {
	registry := testRegistry(t)

	// Test that recoverPanic doesn't panic itself
	func() {
		defer registry.recoverPanic("test_tool")
		panic("test panic")
	}()

	// If we get here, panic was recovered successfully
}

func TestLogExecution(t *testing.T) {
	registry := testRegistry(t)
	spec := ToolSpec{Name: "test_tool", Area: "text"}

	registry.logExecution(spec,
		text.FindReplaceArgs{Find: "cat", ReplaceAll: true},
		text.FindReplaceResult{Found: true})

	registry.logExecution(spec,
		document.OpenArgs{Path: "C:\\docs\\report.docx"},
		document.OpenResult{Name: "report.docx"})

	registry.logExecution(spec,
		table.AddArgs{Rows: 2, Cols: 3},
		table.AddResult{TableIndex: 1})

	registry.logExecution(spec,
		cursor.GetSelectionInfoArgs{},
		cursor.GetSelectionInfoResult{Start: 0, End: 5})
}

func TestAllToolsNotEmpty(t *testing.T) {
	if len(AllTools) == 0 {
		t.Error("AllTools should not be empty")
	}

	// Verify each tool has required fields
	for i, spec := range AllTools {
		if spec.Name == "" {
			t.Errorf("Tool %d has empty Name", i)
		}
		if spec.Method == "" {
			t.Errorf("Tool %s has empty Method", spec.Name)
		}
		if spec.Description == "" {
			t.Errorf("Tool %s has empty Description", spec.Name)
		}
		if spec.Area == "" {
			t.Errorf("Tool %s has empty Area", spec.Name)
		}
	}
}

func TestToolNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, spec := range AllTools {
		if seen[spec.Name] {
			t.Errorf("Duplicate tool name %s", spec.Name)
		}
		seen[spec.Name] = true
	}
}

func TestToolSpecMethods(t *testing.T) {
	knownMethods := map[string]bool{
		// Document lifecycle tools
		"Create":  true,
		"Open":    true,
		"Save":    true,
		"SaveAs":  true,
		"Close":   true,
		"Quit":    true,
		"GetInfo": true,
		// Text tools
		"InsertText":      true,
		"DeleteText":      true,
		"FindReplace":     true,
		"ToggleBold":      true,
		"ToggleItalic":    true,
		"ToggleUnderline": true,
		"SetFont":         true,
		// Paragraph tools
		"SetAlignment":   true,
		"SetIndent":      true,
		"SetSpacing":     true,
		"SetLineSpacing": true,
		// Table tools
		"AddTable":        true,
		"SetCellText":     true,
		"InsertRow":       true,
		"InsertColumn":    true,
		"ApplyTableStyle": true,
		// Image tools
		"InsertPicture":  true,
		"SetPictureSize": true,
		// Header and footer tools
		"SetHeaderText": true,
		"SetFooterText": true,
		"GetHeaderText": true,
		"GetFooterText": true,
		// Page setup tools
		"SetMargins":     true,
		"SetOrientation": true,
		"SetPaperSize":   true,
		// Cursor and selection tools
		"MoveToStart":       true,
		"MoveToEnd":         true,
		"MoveCursor":        true,
		"SelectAll":         true,
		"SelectParagraph":   true,
		"CollapseSelection": true,
		"GetSelectionText":  true,
		"GetSelectionInfo":  true,
	}

	for _, spec := range AllTools {
		if !knownMethods[spec.Method] {
			t.Errorf("Tool %s has unknown method: %s", spec.Name, spec.Method)
		}
	}
}

func TestToolsByArea(t *testing.T) {
	for _, area := range []string{"document", "text", "paragraph", "table", "image", "headers", "pagesetup", "cursor"} {
		tools := ToolsByArea(area)
		if len(tools) == 0 {
			t.Errorf("Expected tools for area %s", area)
		}
		for _, tool := range tools {
			if tool.Area != area {
				t.Errorf("Tool %s has area %s, expected %s", tool.Name, tool.Area, area)
			}
		}
	}

	// Non-existent area should return empty
	if unknown := ToolsByArea("unknown"); len(unknown) != 0 {
		t.Errorf("Expected 0 tools for unknown area, got %d", len(unknown))
	}
}

func TestToolsByCategory(t *testing.T) {
	readTools := ToolsByCategory("read")
	if len(readTools) == 0 {
		t.Error("Expected read tools")
	}
	for _, tool := range readTools {
		if tool.Category != "read" {
			t.Errorf("Tool %s has category %s, expected read", tool.Name, tool.Category)
		}
		if !tool.ReadOnly {
			t.Errorf("Tool %s is in the read category but not marked read-only", tool.Name)
		}
	}
}
