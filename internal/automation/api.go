// Package automation defines narrow capability interfaces over the Word COM
// object model. Each interface exposes only the properties and methods the
// server actually touches, so the production COM binding and the in-memory
// test fake are interchangeable.
package automation

// Factory attaches to a running Word instance or launches a new one.
type Factory interface {
	Dispatch() (Application, error)
}

// Application is the process's handle to the Word application object.
type Application interface {
	Visible() (bool, error)
	SetVisible(visible bool) error
	Documents() (Documents, error)
	// ActiveDocument returns the document currently focused in the
	// application window. Returns an error when no document is open.
	ActiveDocument() (Document, error)
	Quit(saveOption int) error
}

// Documents is the application's open-document collection.
type Documents interface {
	Count() (int, error)
	Add() (Document, error)
	Open(path string) (Document, error)
}

// Document is one open document. Selections, tables, shapes and sections are
// re-fetched through it on every operation, never cached.
type Document interface {
	Name() (string, error)
	FullName() (string, error)
	Saved() (bool, error)
	Save() error
	SaveAs(path string, format int) error
	Close(saveOption int) error
	Selection() (Selection, error)
	Content() (Range, error)
	Paragraphs() (Paragraphs, error)
	Tables() (Tables, error)
	InlineShapes() (InlineShapes, error)
	Sections() (Sections, error)
	PageSetup() (PageSetup, error)
}

// Selection is the caret or highlighted range in the document's window.
type Selection interface {
	Text() (string, error)
	TypeText(text string) error
	Start() (int, error)
	End() (int, error)
	// Type reports the wdSelectionType code.
	Type() (int, error)
	// Delete removes count units forward from the selection.
	Delete(unit, count int) error
	// MoveStart shifts the selection start by count units (negative = back).
	MoveStart(unit, count int) error
	// MoveRight and MoveLeft relocate the insertion point, or grow the
	// selection when extend is WdExtend.
	MoveRight(unit, count, extend int) error
	MoveLeft(unit, count, extend int) error
	// HomeKey and EndKey jump to the start or end of the given unit
	// (WdStory for the whole document flow).
	HomeKey(unit, extend int) error
	EndKey(unit, extend int) error
	WholeStory() error
	Collapse(direction int) error
	Range() (Range, error)
	Font() (Font, error)
	ParagraphFormat() (ParagraphFormat, error)
	Find() (Find, error)
}

// Range is a contiguous region of document content.
type Range interface {
	Text() (string, error)
	SetText(text string) error
	Select() error
}

// Font is the character formatting of a selection. Bold and Italic are
// tri-state ints: 0 (off), 1 (on), or WdUndefined for a mixed selection.
type Font interface {
	Bold() (int, error)
	SetBold(value int) error
	Italic() (int, error)
	SetItalic(value int) error
	Underline() (int, error)
	SetUnderline(style int) error
	SetName(name string) error
	SetSize(points float64) error
}

// ParagraphFormat is the paragraph formatting of a selection. Distances are
// in points.
type ParagraphFormat interface {
	SetAlignment(alignment int) error
	SetLeftIndent(points float64) error
	SetRightIndent(points float64) error
	SetFirstLineIndent(points float64) error
	SetSpaceBefore(points float64) error
	SetSpaceAfter(points float64) error
	SetLineSpacingRule(rule int) error
	SetLineSpacing(value float64) error
}

// Find is the selection's find/replace state machine.
type Find interface {
	ClearFormatting() error
	Replacement() (Replacement, error)
	// Execute runs a forward search with the given parameters and reports
	// whether a match was found. replace is a WdReplace code.
	Execute(findText string, matchCase, matchWholeWord bool, wrap int, replaceWith string, replace int) (bool, error)
}

// Replacement is the replace half of the find state machine.
type Replacement interface {
	ClearFormatting() error
}

// Paragraphs is the document's paragraph collection (1-based).
type Paragraphs interface {
	Count() (int, error)
	Item(index int) (Paragraph, error)
}

// Paragraph is a single paragraph.
type Paragraph interface {
	Range() (Range, error)
}

// Tables is the document's table collection (1-based).
type Tables interface {
	Count() (int, error)
	Item(index int) (Table, error)
	Add(at Range, rows, cols int) (Table, error)
}

// Table is one table in the document.
type Table interface {
	Cell(row, col int) (Cell, error)
	Rows() (Rows, error)
	Columns() (Columns, error)
	// AutoFormat applies a WdTableFormat style with a bitmask of
	// WdTableFormatApply* aspects.
	AutoFormat(format, applyFlags int) error
	SetStyle(name string) error
}

// Rows is a table's row collection (1-based).
type Rows interface {
	Count() (int, error)
	Item(index int) (Row, error)
	// Add inserts a row before the given row; a nil before appends.
	Add(before Row) (Row, error)
}

// Row is a single table row.
type Row interface{}

// Columns is a table's column collection (1-based).
type Columns interface {
	Count() (int, error)
	Item(index int) (Column, error)
	// Add inserts a column before the given column; a nil before appends.
	Add(before Column) (Column, error)
}

// Column is a single table column.
type Column interface{}

// Cell is a single table cell.
type Cell interface {
	Range() (Range, error)
}

// InlineShapes is the document's inline image collection (1-based).
type InlineShapes interface {
	Count() (int, error)
	Item(index int) (InlineShape, error)
	AddPicture(path string, linkToFile, saveWithDocument bool, at Range) (InlineShape, error)
}

// InlineShape is an image anchored in the text flow. Dimensions are in
// points.
type InlineShape interface {
	Height() (float64, error)
	SetHeight(points float64) error
	Width() (float64, error)
	SetWidth(points float64) error
	SetLockAspectRatio(locked bool) error
}

// Sections is the document's section collection (1-based).
type Sections interface {
	Count() (int, error)
	Item(index int) (Section, error)
}

// Section is one document section.
type Section interface {
	Headers() (HeadersFooters, error)
	Footers() (HeadersFooters, error)
}

// HeadersFooters is a section's header or footer collection, indexed by
// WdHeaderFooterIndex variant codes.
type HeadersFooters interface {
	Item(variant int) (HeaderFooter, error)
}

// HeaderFooter is one header or footer variant. Exists is false when the
// matching page-setup option (different first page, odd/even) is off.
type HeaderFooter interface {
	Exists() (bool, error)
	Range() (Range, error)
}

// PageSetup is the document's page layout. Margins are in points.
type PageSetup interface {
	SetTopMargin(points float64) error
	SetBottomMargin(points float64) error
	SetLeftMargin(points float64) error
	SetRightMargin(points float64) error
	SetOrientation(orientation int) error
	SetPaperSize(size int) error
}
