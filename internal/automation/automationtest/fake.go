// Package automationtest provides a scripted in-memory implementation of the
// automation capability interfaces. Documents are rune buffers, tables are
// cell grids, and saved files live in an in-memory table so save/open round
// trips are testable without Word.
//
// Movement and deletion units are approximated as characters; tests that
// exercise unit arithmetic use WdCharacter.
package automationtest

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/officekit/word-mcp-server/internal/automation"
)

// Factory creates fake applications. Every Dispatch returns a fresh
// Application so tests can verify handle-replacement behavior.
type Factory struct {
	// DispatchErr, when set, makes Dispatch fail.
	DispatchErr error

	// Apps records every application handed out, in order.
	Apps []*Application

	// Files maps a path to saved document text.
	Files map[string]string

	// PictureHeight and PictureWidth are the natural dimensions given to
	// pictures inserted through AddPicture.
	PictureHeight float64
	PictureWidth  float64
}

// NewFactory returns a factory with an empty file table.
func NewFactory() *Factory {
	return &Factory{
		Files:         make(map[string]string),
		PictureHeight: 100,
		PictureWidth:  150,
	}
}

// Dispatch implements automation.Factory.
func (f *Factory) Dispatch() (automation.Application, error) {
	if f.DispatchErr != nil {
		return nil, f.DispatchErr
	}
	app := &Application{factory: f}
	app.docs = &Documents{app: app}
	f.Apps = append(f.Apps, app)
	return app, nil
}

// App returns the most recently dispatched application, or nil.
func (f *Factory) App() *Application {
	if len(f.Apps) == 0 {
		return nil
	}
	return f.Apps[len(f.Apps)-1]
}

// Application is a fake Word application.
type Application struct {
	factory *Factory
	docs    *Documents

	// VisibleFlag mirrors the Visible property.
	VisibleFlag bool

	// ProbeErr, when set, is returned by Visible to simulate a stale
	// handle (Word crashed or was closed).
	ProbeErr error

	// QuitCalls counts Quit invocations; QuitSaveOption records the last
	// save option passed.
	QuitCalls      int
	QuitSaveOption int
}

func (a *Application) Visible() (bool, error) {
	if a.ProbeErr != nil {
		return false, a.ProbeErr
	}
	return a.VisibleFlag, nil
}

func (a *Application) SetVisible(v bool) error {
	a.VisibleFlag = v
	return nil
}

func (a *Application) Documents() (automation.Documents, error) { return a.docs, nil }

func (a *Application) ActiveDocument() (automation.Document, error) {
	if a.docs.active == nil {
		return nil, errors.New("no document is open")
	}
	return a.docs.active, nil
}

func (a *Application) Quit(saveOption int) error {
	a.QuitCalls++
	a.QuitSaveOption = saveOption
	return nil
}

// ActiveDoc returns the active fake document for assertions, or nil.
func (a *Application) ActiveDoc() *Document { return a.docs.active }

// Docs returns the fake document collection.
func (a *Application) Docs() *Documents { return a.docs }

// Documents is a fake open-document collection.
type Documents struct {
	app    *Application
	List   []*Document
	active *Document
	seq    int
}

func (d *Documents) Count() (int, error) { return len(d.List), nil }

func (d *Documents) Add() (automation.Document, error) {
	d.seq++
	doc := newDocument(d, fmt.Sprintf("Document%d", d.seq))
	d.List = append(d.List, doc)
	d.active = doc
	return doc, nil
}

func (d *Documents) Open(path string) (automation.Document, error) {
	text, ok := d.app.factory.Files[path]
	if !ok {
		return nil, fmt.Errorf("file %q not found", path)
	}
	doc := newDocument(d, filepath.Base(path))
	doc.Path = path
	doc.SavedFlag = true
	doc.SetContent(text)
	d.List = append(d.List, doc)
	d.active = doc
	return doc, nil
}

// Document is a fake open document.
type Document struct {
	docs *Documents

	DocName   string
	Path      string
	SavedFlag bool
	Format    int

	content  []rune
	SelStart int
	SelEnd   int

	// Character formatting applied at the selection.
	Bold      int
	Italic    int
	Underline int
	FontName  string
	FontSize  float64

	// Paragraph formatting applied at the selection.
	Alignment       int
	LeftIndent      float64
	RightIndent     float64
	FirstLineIndent float64
	SpaceBefore     float64
	SpaceAfter      float64
	LineSpacingRule int
	LineSpacingVal  float64

	TableList []*Table
	ShapeList []*InlineShape
	SectList  []*Section

	// DifferentFirstPage and OddEvenPages control which header/footer
	// variants report Exists=true.
	DifferentFirstPage bool
	OddEvenPages       bool

	// Page setup state.
	TopMargin, BottomMargin, LeftMargin, RightMargin float64
	Orientation, PaperSize                           int
}

func newDocument(docs *Documents, name string) *Document {
	doc := &Document{docs: docs, DocName: name}
	doc.SectList = []*Section{newSection(doc)}
	return doc
}

// SetContent replaces the document text and collapses the selection to the
// start.
func (d *Document) SetContent(text string) {
	d.content = []rune(text)
	d.SelStart, d.SelEnd = 0, 0
}

// ContentString returns the full document text.
func (d *Document) ContentString() string { return string(d.content) }

func (d *Document) Name() (string, error)     { return d.DocName, nil }
func (d *Document) FullName() (string, error) {
	if d.Path != "" {
		return d.Path, nil
	}
	return d.DocName, nil
}
func (d *Document) Saved() (bool, error) { return d.SavedFlag, nil }

func (d *Document) Save() error {
	if d.Path == "" {
		return errors.New("document has never been saved; use SaveAs")
	}
	d.docs.app.factory.Files[d.Path] = string(d.content)
	d.SavedFlag = true
	return nil
}

func (d *Document) SaveAs(path string, format int) error {
	d.Path = path
	d.Format = format
	d.docs.app.factory.Files[path] = string(d.content)
	d.SavedFlag = true
	return nil
}

func (d *Document) Close(saveOption int) error {
	if saveOption == automation.WdSaveChanges && d.Path != "" {
		d.docs.app.factory.Files[d.Path] = string(d.content)
	}
	list := d.docs.List
	for i, doc := range list {
		if doc == d {
			d.docs.List = append(list[:i], list[i+1:]...)
			break
		}
	}
	if d.docs.active == d {
		if n := len(d.docs.List); n > 0 {
			d.docs.active = d.docs.List[n-1]
		} else {
			d.docs.active = nil
		}
	}
	return nil
}

func (d *Document) Selection() (automation.Selection, error) {
	return &Selection{doc: d}, nil
}

func (d *Document) Content() (automation.Range, error) {
	return &Range{
		TextFn: func() (string, error) { return string(d.content), nil },
		SetTextFn: func(text string) error {
			d.SetContent(text)
			return nil
		},
	}, nil
}

func (d *Document) Paragraphs() (automation.Paragraphs, error) {
	return &Paragraphs{doc: d}, nil
}

func (d *Document) Tables() (automation.Tables, error) {
	return &Tables{doc: d}, nil
}

func (d *Document) InlineShapes() (automation.InlineShapes, error) {
	return &InlineShapes{doc: d}, nil
}

func (d *Document) Sections() (automation.Sections, error) {
	return &Sections{doc: d}, nil
}

func (d *Document) PageSetup() (automation.PageSetup, error) {
	return &PageSetup{doc: d}, nil
}

func (d *Document) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(d.content) {
		return len(d.content)
	}
	return pos
}

// Selection is a fake selection; Start/End offsets live on the document.
type Selection struct {
	doc *Document
}

func (s *Selection) Text() (string, error) {
	return string(s.doc.content[s.doc.SelStart:s.doc.SelEnd]), nil
}

func (s *Selection) TypeText(text string) error {
	d := s.doc
	insert := []rune(text)
	rest := append([]rune{}, d.content[d.SelEnd:]...)
	d.content = append(d.content[:d.SelStart], append(insert, rest...)...)
	d.SelStart += len(insert)
	d.SelEnd = d.SelStart
	d.SavedFlag = false
	return nil
}

func (s *Selection) Start() (int, error) { return s.doc.SelStart, nil }
func (s *Selection) End() (int, error)   { return s.doc.SelEnd, nil }

func (s *Selection) Type() (int, error) {
	if s.doc.SelStart == s.doc.SelEnd {
		return automation.WdSelectionIP, nil
	}
	return automation.WdSelectionNormal, nil
}

func (s *Selection) Delete(unit, count int) error {
	d := s.doc
	if d.SelStart != d.SelEnd {
		d.content = append(d.content[:d.SelStart], d.content[d.SelEnd:]...)
		d.SelEnd = d.SelStart
		d.SavedFlag = false
		return nil
	}
	end := d.clamp(d.SelStart + count)
	d.content = append(d.content[:d.SelStart], d.content[end:]...)
	d.SelEnd = d.SelStart
	d.SavedFlag = false
	return nil
}

func (s *Selection) MoveStart(unit, count int) error {
	d := s.doc
	d.SelStart = d.clamp(d.SelStart + count)
	if d.SelStart > d.SelEnd {
		d.SelEnd = d.SelStart
	}
	return nil
}

func (s *Selection) MoveRight(unit, count, extend int) error {
	d := s.doc
	if extend == automation.WdExtend {
		d.SelEnd = d.clamp(d.SelEnd + count)
		return nil
	}
	pos := d.clamp(d.SelEnd + count)
	d.SelStart, d.SelEnd = pos, pos
	return nil
}

func (s *Selection) MoveLeft(unit, count, extend int) error {
	d := s.doc
	if extend == automation.WdExtend {
		d.SelStart = d.clamp(d.SelStart - count)
		return nil
	}
	pos := d.clamp(d.SelStart - count)
	d.SelStart, d.SelEnd = pos, pos
	return nil
}

func (s *Selection) HomeKey(unit, extend int) error {
	d := s.doc
	d.SelStart = 0
	if extend != automation.WdExtend {
		d.SelEnd = 0
	}
	return nil
}

func (s *Selection) EndKey(unit, extend int) error {
	d := s.doc
	d.SelEnd = len(d.content)
	if extend != automation.WdExtend {
		d.SelStart = d.SelEnd
	}
	return nil
}

func (s *Selection) WholeStory() error {
	s.doc.SelStart, s.doc.SelEnd = 0, len(s.doc.content)
	return nil
}

func (s *Selection) Collapse(direction int) error {
	if direction == automation.WdCollapseStart {
		s.doc.SelEnd = s.doc.SelStart
	} else {
		s.doc.SelStart = s.doc.SelEnd
	}
	return nil
}

func (s *Selection) Range() (automation.Range, error) {
	return &Range{
		TextFn: s.Text,
		SetTextFn: func(text string) error {
			return s.TypeText(text)
		},
	}, nil
}

func (s *Selection) Font() (automation.Font, error) {
	return &Font{doc: s.doc}, nil
}

func (s *Selection) ParagraphFormat() (automation.ParagraphFormat, error) {
	return &ParagraphFormat{doc: s.doc}, nil
}

func (s *Selection) Find() (automation.Find, error) {
	return &Find{doc: s.doc}, nil
}

// Range is a scripted range; unset functions report an error.
type Range struct {
	TextFn    func() (string, error)
	SetTextFn func(string) error
	SelectFn  func() error
}

func (r *Range) Text() (string, error) {
	if r.TextFn == nil {
		return "", errors.New("range does not support Text")
	}
	return r.TextFn()
}

func (r *Range) SetText(text string) error {
	if r.SetTextFn == nil {
		return errors.New("range does not support SetText")
	}
	return r.SetTextFn(text)
}

func (r *Range) Select() error {
	if r.SelectFn == nil {
		return errors.New("range does not support Select")
	}
	return r.SelectFn()
}

// Font applies character formatting to the document's formatting state.
type Font struct {
	doc *Document
}

func (f *Font) Bold() (int, error)      { return f.doc.Bold, nil }
func (f *Font) SetBold(v int) error     { f.doc.Bold = v; return nil }
func (f *Font) Italic() (int, error)    { return f.doc.Italic, nil }
func (f *Font) SetItalic(v int) error   { f.doc.Italic = v; return nil }
func (f *Font) Underline() (int, error) { return f.doc.Underline, nil }
func (f *Font) SetUnderline(v int) error {
	f.doc.Underline = v
	return nil
}
func (f *Font) SetName(name string) error    { f.doc.FontName = name; return nil }
func (f *Font) SetSize(points float64) error { f.doc.FontSize = points; return nil }

// ParagraphFormat applies paragraph formatting to the document's state.
type ParagraphFormat struct {
	doc *Document
}

func (p *ParagraphFormat) SetAlignment(a int) error           { p.doc.Alignment = a; return nil }
func (p *ParagraphFormat) SetLeftIndent(v float64) error      { p.doc.LeftIndent = v; return nil }
func (p *ParagraphFormat) SetRightIndent(v float64) error     { p.doc.RightIndent = v; return nil }
func (p *ParagraphFormat) SetFirstLineIndent(v float64) error { p.doc.FirstLineIndent = v; return nil }
func (p *ParagraphFormat) SetSpaceBefore(v float64) error     { p.doc.SpaceBefore = v; return nil }
func (p *ParagraphFormat) SetSpaceAfter(v float64) error      { p.doc.SpaceAfter = v; return nil }
func (p *ParagraphFormat) SetLineSpacingRule(r int) error     { p.doc.LineSpacingRule = r; return nil }
func (p *ParagraphFormat) SetLineSpacing(v float64) error     { p.doc.LineSpacingVal = v; return nil }

// Find is a fake find/replace state machine operating on the document text.
type Find struct {
	doc        *Document
	ClearCalls int
	repl       *Replacement

	// LastWrap and LastReplace record the codes from the last Execute.
	LastWrap    int
	LastReplace int
}

func (f *Find) ClearFormatting() error {
	f.ClearCalls++
	return nil
}

func (f *Find) Replacement() (automation.Replacement, error) {
	if f.repl == nil {
		f.repl = &Replacement{}
	}
	return f.repl, nil
}

func (f *Find) Execute(findText string, matchCase, matchWholeWord bool, wrap int, replaceWith string, replace int) (bool, error) {
	f.LastWrap = wrap
	f.LastReplace = replace

	pattern := regexp.QuoteMeta(findText)
	if matchWholeWord {
		pattern = `\b` + pattern + `\b`
	}
	if !matchCase {
		pattern = `(?i)` + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, err
	}

	content := string(f.doc.content)
	switch replace {
	case automation.WdReplaceAll:
		if !re.MatchString(content) {
			return false, nil
		}
		f.doc.SetContent(re.ReplaceAllLiteralString(content, replaceWith))
		return true, nil
	case automation.WdReplaceOne:
		loc := re.FindStringIndex(content)
		if loc == nil {
			return false, nil
		}
		f.doc.SetContent(content[:loc[0]] + replaceWith + content[loc[1]:])
		return true, nil
	default:
		return re.MatchString(content), nil
	}
}

// Replacement records formatting clears.
type Replacement struct {
	ClearCalls int
}

func (r *Replacement) ClearFormatting() error {
	r.ClearCalls++
	return nil
}

// Paragraphs splits the document text on newlines.
type Paragraphs struct {
	doc *Document
}

func (p *Paragraphs) segments() []string {
	return strings.Split(string(p.doc.content), "\n")
}

func (p *Paragraphs) Count() (int, error) { return len(p.segments()), nil }

func (p *Paragraphs) Item(index int) (automation.Paragraph, error) {
	segs := p.segments()
	if index < 1 || index > len(segs) {
		return nil, fmt.Errorf("paragraph %d does not exist", index)
	}
	return &Paragraph{doc: p.doc, index: index}, nil
}

// Paragraph is one newline-delimited segment.
type Paragraph struct {
	doc   *Document
	index int
}

func (p *Paragraph) bounds() (int, int) {
	segs := strings.Split(string(p.doc.content), "\n")
	start := 0
	for i := 0; i < p.index-1; i++ {
		start += len([]rune(segs[i])) + 1
	}
	return start, start + len([]rune(segs[p.index-1]))
}

func (p *Paragraph) Range() (automation.Range, error) {
	return &Range{
		TextFn: func() (string, error) {
			start, end := p.bounds()
			return string(p.doc.content[start:end]), nil
		},
		SelectFn: func() error {
			p.doc.SelStart, p.doc.SelEnd = p.bounds()
			return nil
		},
	}, nil
}

// Tables is a fake table collection.
type Tables struct {
	doc *Document
}

func (t *Tables) Count() (int, error) { return len(t.doc.TableList), nil }

func (t *Tables) Item(index int) (automation.Table, error) {
	if index < 1 || index > len(t.doc.TableList) {
		return nil, fmt.Errorf("table %d does not exist", index)
	}
	return t.doc.TableList[index-1], nil
}

func (t *Tables) Add(at automation.Range, rows, cols int) (automation.Table, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("invalid table dimensions %dx%d", rows, cols)
	}
	table := &Table{}
	for i := 0; i < rows; i++ {
		table.CellText = append(table.CellText, make([]string, cols))
	}
	t.doc.TableList = append(t.doc.TableList, table)
	return table, nil
}

// Table is a fake table: a grid of cell strings.
type Table struct {
	CellText   [][]string
	Format     int
	ApplyFlags int
	StyleName  string
}

func (t *Table) rows() int { return len(t.CellText) }
func (t *Table) cols() int {
	if len(t.CellText) == 0 {
		return 0
	}
	return len(t.CellText[0])
}

func (t *Table) Cell(row, col int) (automation.Cell, error) {
	if row < 1 || row > t.rows() || col < 1 || col > t.cols() {
		return nil, fmt.Errorf("cell (%d,%d) does not exist", row, col)
	}
	return &Cell{table: t, row: row, col: col}, nil
}

func (t *Table) Rows() (automation.Rows, error)       { return &Rows{table: t}, nil }
func (t *Table) Columns() (automation.Columns, error) { return &Columns{table: t}, nil }

func (t *Table) AutoFormat(format, applyFlags int) error {
	t.Format = format
	t.ApplyFlags = applyFlags
	return nil
}

func (t *Table) SetStyle(name string) error {
	t.StyleName = name
	return nil
}

// Cell addresses one table cell.
type Cell struct {
	table    *Table
	row, col int
}

func (c *Cell) Range() (automation.Range, error) {
	return &Range{
		TextFn: func() (string, error) {
			return c.table.CellText[c.row-1][c.col-1], nil
		},
		SetTextFn: func(text string) error {
			c.table.CellText[c.row-1][c.col-1] = text
			return nil
		},
	}, nil
}

// Rows is a fake row collection.
type Rows struct {
	table *Table
}

func (r *Rows) Count() (int, error) { return r.table.rows(), nil }

func (r *Rows) Item(index int) (automation.Row, error) {
	if index < 1 || index > r.table.rows() {
		return nil, fmt.Errorf("row %d does not exist", index)
	}
	return &RowRef{table: r.table, index: index}, nil
}

func (r *Rows) Add(before automation.Row) (automation.Row, error) {
	t := r.table
	newRow := make([]string, t.cols())
	if before == nil {
		t.CellText = append(t.CellText, newRow)
		return &RowRef{table: t, index: t.rows()}, nil
	}
	ref, ok := before.(*RowRef)
	if !ok {
		return nil, errors.New("row is not a fake row")
	}
	i := ref.index - 1
	t.CellText = append(t.CellText[:i], append([][]string{newRow}, t.CellText[i:]...)...)
	return &RowRef{table: t, index: ref.index}, nil
}

// RowRef addresses a row by 1-based index.
type RowRef struct {
	table *Table
	index int
}

// Columns is a fake column collection.
type Columns struct {
	table *Table
}

func (c *Columns) Count() (int, error) { return c.table.cols(), nil }

func (c *Columns) Item(index int) (automation.Column, error) {
	if index < 1 || index > c.table.cols() {
		return nil, fmt.Errorf("column %d does not exist", index)
	}
	return &ColumnRef{table: c.table, index: index}, nil
}

func (c *Columns) Add(before automation.Column) (automation.Column, error) {
	t := c.table
	insertAt := t.cols() // append position
	if before != nil {
		ref, ok := before.(*ColumnRef)
		if !ok {
			return nil, errors.New("column is not a fake column")
		}
		insertAt = ref.index - 1
	}
	for i, row := range t.CellText {
		t.CellText[i] = append(row[:insertAt], append([]string{""}, row[insertAt:]...)...)
	}
	return &ColumnRef{table: t, index: insertAt + 1}, nil
}

// ColumnRef addresses a column by 1-based index.
type ColumnRef struct {
	table *Table
	index int
}

// InlineShapes is a fake inline image collection.
type InlineShapes struct {
	doc *Document
}

func (s *InlineShapes) Count() (int, error) { return len(s.doc.ShapeList), nil }

func (s *InlineShapes) Item(index int) (automation.InlineShape, error) {
	if index < 1 || index > len(s.doc.ShapeList) {
		return nil, fmt.Errorf("inline shape %d does not exist", index)
	}
	return s.doc.ShapeList[index-1], nil
}

func (s *InlineShapes) AddPicture(path string, linkToFile, saveWithDocument bool, at automation.Range) (automation.InlineShape, error) {
	factory := s.doc.docs.app.factory
	shape := &InlineShape{
		Path:       path,
		Linked:     linkToFile,
		SavedWith:  saveWithDocument,
		H:          factory.PictureHeight,
		W:          factory.PictureWidth,
		NaturalH:   factory.PictureHeight,
		NaturalW:   factory.PictureWidth,
		AspectLock: false,
	}
	s.doc.ShapeList = append(s.doc.ShapeList, shape)
	return shape, nil
}

// InlineShape is a fake inline picture. When AspectLock is set, assigning
// one dimension auto-adjusts the other from the natural aspect ratio, the
// way Word does.
type InlineShape struct {
	Path      string
	Linked    bool
	SavedWith bool

	H, W               float64
	NaturalH, NaturalW float64
	AspectLock         bool
}

func (s *InlineShape) Height() (float64, error) { return s.H, nil }
func (s *InlineShape) Width() (float64, error)  { return s.W, nil }

func (s *InlineShape) SetHeight(points float64) error {
	s.H = points
	if s.AspectLock && s.NaturalH > 0 {
		s.W = s.NaturalW * points / s.NaturalH
	}
	return nil
}

func (s *InlineShape) SetWidth(points float64) error {
	s.W = points
	if s.AspectLock && s.NaturalW > 0 {
		s.H = s.NaturalH * points / s.NaturalW
	}
	return nil
}

func (s *InlineShape) SetLockAspectRatio(locked bool) error {
	s.AspectLock = locked
	return nil
}

// Sections is a fake section collection.
type Sections struct {
	doc *Document
}

func (s *Sections) Count() (int, error) { return len(s.doc.SectList), nil }

func (s *Sections) Item(index int) (automation.Section, error) {
	if index < 1 || index > len(s.doc.SectList) {
		return nil, fmt.Errorf("section %d does not exist", index)
	}
	return s.doc.SectList[index-1], nil
}

// Section is a fake document section with per-variant header/footer text.
type Section struct {
	doc *Document

	HeaderText map[int]string
	FooterText map[int]string
}

func newSection(doc *Document) *Section {
	return &Section{
		doc:        doc,
		HeaderText: make(map[int]string),
		FooterText: make(map[int]string),
	}
}

func (s *Section) Headers() (automation.HeadersFooters, error) {
	return &HeadersFooters{section: s, texts: s.HeaderText}, nil
}

func (s *Section) Footers() (automation.HeadersFooters, error) {
	return &HeadersFooters{section: s, texts: s.FooterText}, nil
}

// HeadersFooters is a fake header or footer collection.
type HeadersFooters struct {
	section *Section
	texts   map[int]string
}

func (h *HeadersFooters) Item(variant int) (automation.HeaderFooter, error) {
	if !automation.ValidHeaderFooterVariant(variant) {
		return nil, fmt.Errorf("invalid header/footer variant %d", variant)
	}
	return &HeaderFooter{coll: h, variant: variant}, nil
}

// HeaderFooter is a fake header or footer variant.
type HeaderFooter struct {
	coll    *HeadersFooters
	variant int
}

func (h *HeaderFooter) Exists() (bool, error) {
	doc := h.coll.section.doc
	switch h.variant {
	case automation.WdHeaderFooterPrimary:
		return true, nil
	case automation.WdHeaderFooterFirstPage:
		return doc.DifferentFirstPage, nil
	case automation.WdHeaderFooterEvenPages:
		return doc.OddEvenPages, nil
	}
	return false, nil
}

func (h *HeaderFooter) Range() (automation.Range, error) {
	return &Range{
		TextFn: func() (string, error) {
			return h.coll.texts[h.variant], nil
		},
		SetTextFn: func(text string) error {
			h.coll.texts[h.variant] = text
			return nil
		},
	}, nil
}

// PageSetup writes page layout to the document's state.
type PageSetup struct {
	doc *Document
}

func (p *PageSetup) SetTopMargin(v float64) error    { p.doc.TopMargin = v; return nil }
func (p *PageSetup) SetBottomMargin(v float64) error { p.doc.BottomMargin = v; return nil }
func (p *PageSetup) SetLeftMargin(v float64) error   { p.doc.LeftMargin = v; return nil }
func (p *PageSetup) SetRightMargin(v float64) error  { p.doc.RightMargin = v; return nil }
func (p *PageSetup) SetOrientation(o int) error      { p.doc.Orientation = o; return nil }
func (p *PageSetup) SetPaperSize(s int) error        { p.doc.PaperSize = s; return nil }
