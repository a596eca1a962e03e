//go:build windows

package automation

import (
	"fmt"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// comFactory binds the capability interfaces to a live Word.Application COM
// object via go-ole. Attach-or-create: a running instance is reused, else a
// new one is launched.
type comFactory struct{}

// NewCOMFactory returns the production Word COM factory.
func NewCOMFactory() Factory { return comFactory{} }

const wordProgID = "Word.Application"

// msoTriState values used by inline shape properties.
const (
	msoTrue  = -1
	msoFalse = 0
)

func (comFactory) Dispatch() (Application, error) {
	// S_FALSE from a repeated init on the same thread is not a failure.
	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		if oleErr, ok := err.(*ole.OleError); !ok || oleErr.Code() != 1 {
			return nil, fmt.Errorf("COM initialization failed: %w", err)
		}
	}

	var unknown *ole.IUnknown
	clsid, err := ole.ClassIDFrom(wordProgID)
	if err != nil {
		return nil, fmt.Errorf("Word is not registered on this system: %w", err)
	}
	if unknown, err = ole.GetActiveObject(clsid, ole.IID_IUnknown); err != nil {
		unknown, err = oleutil.CreateObject(wordProgID)
		if err != nil {
			return nil, fmt.Errorf("cannot launch Word: %w", err)
		}
	}

	disp, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return nil, fmt.Errorf("Word object does not support automation: %w", err)
	}
	return newComApplication(disp), nil
}

// comObject provides typed accessors over an IDispatch.
type comObject struct {
	obj *ole.IDispatch
}

func (o comObject) getInt(name string) (int, error) {
	v, err := oleutil.GetProperty(o.obj, name)
	if err != nil {
		return 0, err
	}
	return int(v.Val), nil
}

func (o comObject) getFloat(name string) (float64, error) {
	v, err := oleutil.GetProperty(o.obj, name)
	if err != nil {
		return 0, err
	}
	switch val := v.Value().(type) {
	case float64:
		return val, nil
	case float32:
		return float64(val), nil
	case int64:
		return float64(val), nil
	}
	return 0, fmt.Errorf("property %s is not numeric", name)
}

func (o comObject) getBool(name string) (bool, error) {
	v, err := oleutil.GetProperty(o.obj, name)
	if err != nil {
		return false, err
	}
	b, ok := v.Value().(bool)
	if !ok {
		// VARIANT_BOOL sometimes surfaces as an int.
		return v.Val != 0, nil
	}
	return b, nil
}

func (o comObject) getString(name string) (string, error) {
	v, err := oleutil.GetProperty(o.obj, name)
	if err != nil {
		return "", err
	}
	return v.ToString(), nil
}

func (o comObject) getDispatch(name string, params ...interface{}) (*ole.IDispatch, error) {
	v, err := oleutil.GetProperty(o.obj, name, params...)
	if err != nil {
		return nil, err
	}
	disp := v.ToIDispatch()
	if disp == nil {
		return nil, fmt.Errorf("property %s is not an object", name)
	}
	return disp, nil
}

func (o comObject) put(name string, value interface{}) error {
	_, err := oleutil.PutProperty(o.obj, name, value)
	return err
}

func (o comObject) call(name string, params ...interface{}) error {
	_, err := oleutil.CallMethod(o.obj, name, params...)
	return err
}

type comApplication struct{ comObject }

func newComApplication(disp *ole.IDispatch) *comApplication {
	return &comApplication{comObject{obj: disp}}
}

func (a *comApplication) Visible() (bool, error)       { return a.getBool("Visible") }
func (a *comApplication) SetVisible(v bool) error      { return a.put("Visible", v) }
func (a *comApplication) Quit(saveOption int) error    { return a.call("Quit", saveOption) }

func (a *comApplication) Documents() (Documents, error) {
	disp, err := a.getDispatch("Documents")
	if err != nil {
		return nil, err
	}
	return &comDocuments{comObject{obj: disp}}, nil
}

func (a *comApplication) ActiveDocument() (Document, error) {
	disp, err := a.getDispatch("ActiveDocument")
	if err != nil {
		return nil, err
	}
	return &comDocument{comObject{obj: disp}}, nil
}

type comDocuments struct{ comObject }

func (d *comDocuments) Count() (int, error) { return d.getInt("Count") }

func (d *comDocuments) Add() (Document, error) {
	v, err := oleutil.CallMethod(d.obj, "Add")
	if err != nil {
		return nil, err
	}
	return &comDocument{comObject{obj: v.ToIDispatch()}}, nil
}

func (d *comDocuments) Open(path string) (Document, error) {
	v, err := oleutil.CallMethod(d.obj, "Open", path)
	if err != nil {
		return nil, err
	}
	return &comDocument{comObject{obj: v.ToIDispatch()}}, nil
}

type comDocument struct{ comObject }

func (d *comDocument) Name() (string, error)     { return d.getString("Name") }
func (d *comDocument) FullName() (string, error) { return d.getString("FullName") }
func (d *comDocument) Saved() (bool, error)      { return d.getBool("Saved") }
func (d *comDocument) Save() error               { return d.call("Save") }
func (d *comDocument) SaveAs(path string, format int) error {
	return d.call("SaveAs2", path, format)
}
func (d *comDocument) Close(saveOption int) error { return d.call("Close", saveOption) }

func (d *comDocument) Selection() (Selection, error) {
	win, err := d.getDispatch("ActiveWindow")
	if err != nil {
		return nil, err
	}
	sel, err := comObject{obj: win}.getDispatch("Selection")
	if err != nil {
		return nil, err
	}
	return &comSelection{comObject{obj: sel}}, nil
}

func (d *comDocument) Content() (Range, error) {
	disp, err := d.getDispatch("Content")
	if err != nil {
		return nil, err
	}
	return &comRange{comObject{obj: disp}}, nil
}

func (d *comDocument) Paragraphs() (Paragraphs, error) {
	disp, err := d.getDispatch("Paragraphs")
	if err != nil {
		return nil, err
	}
	return &comParagraphs{comObject{obj: disp}}, nil
}

func (d *comDocument) Tables() (Tables, error) {
	disp, err := d.getDispatch("Tables")
	if err != nil {
		return nil, err
	}
	return &comTables{comObject{obj: disp}}, nil
}

func (d *comDocument) InlineShapes() (InlineShapes, error) {
	disp, err := d.getDispatch("InlineShapes")
	if err != nil {
		return nil, err
	}
	return &comInlineShapes{comObject{obj: disp}}, nil
}

func (d *comDocument) Sections() (Sections, error) {
	disp, err := d.getDispatch("Sections")
	if err != nil {
		return nil, err
	}
	return &comSections{comObject{obj: disp}}, nil
}

func (d *comDocument) PageSetup() (PageSetup, error) {
	disp, err := d.getDispatch("PageSetup")
	if err != nil {
		return nil, err
	}
	return &comPageSetup{comObject{obj: disp}}, nil
}

type comSelection struct{ comObject }

func (s *comSelection) Text() (string, error)     { return s.getString("Text") }
func (s *comSelection) TypeText(text string) error { return s.call("TypeText", text) }
func (s *comSelection) Start() (int, error)       { return s.getInt("Start") }
func (s *comSelection) End() (int, error)         { return s.getInt("End") }
func (s *comSelection) Type() (int, error)        { return s.getInt("Type") }

func (s *comSelection) Delete(unit, count int) error {
	return s.call("Delete", unit, count)
}

func (s *comSelection) MoveStart(unit, count int) error {
	return s.call("MoveStart", unit, count)
}

func (s *comSelection) MoveRight(unit, count, extend int) error {
	return s.call("MoveRight", unit, count, extend)
}

func (s *comSelection) MoveLeft(unit, count, extend int) error {
	return s.call("MoveLeft", unit, count, extend)
}

func (s *comSelection) HomeKey(unit, extend int) error {
	return s.call("HomeKey", unit, extend)
}

func (s *comSelection) EndKey(unit, extend int) error {
	return s.call("EndKey", unit, extend)
}

func (s *comSelection) WholeStory() error { return s.call("WholeStory") }

func (s *comSelection) Collapse(direction int) error {
	return s.call("Collapse", direction)
}

func (s *comSelection) Range() (Range, error) {
	disp, err := s.getDispatch("Range")
	if err != nil {
		return nil, err
	}
	return &comRange{comObject{obj: disp}}, nil
}

func (s *comSelection) Font() (Font, error) {
	disp, err := s.getDispatch("Font")
	if err != nil {
		return nil, err
	}
	return &comFont{comObject{obj: disp}}, nil
}

func (s *comSelection) ParagraphFormat() (ParagraphFormat, error) {
	disp, err := s.getDispatch("ParagraphFormat")
	if err != nil {
		return nil, err
	}
	return &comParagraphFormat{comObject{obj: disp}}, nil
}

func (s *comSelection) Find() (Find, error) {
	disp, err := s.getDispatch("Find")
	if err != nil {
		return nil, err
	}
	return &comFind{comObject{obj: disp}}, nil
}

type comRange struct{ comObject }

func (r *comRange) Text() (string, error)      { return r.getString("Text") }
func (r *comRange) SetText(text string) error  { return r.put("Text", text) }
func (r *comRange) Select() error              { return r.call("Select") }

type comFont struct{ comObject }

func (f *comFont) Bold() (int, error)          { return f.getInt("Bold") }
func (f *comFont) SetBold(v int) error         { return f.put("Bold", v) }
func (f *comFont) Italic() (int, error)        { return f.getInt("Italic") }
func (f *comFont) SetItalic(v int) error       { return f.put("Italic", v) }
func (f *comFont) Underline() (int, error)     { return f.getInt("Underline") }
func (f *comFont) SetUnderline(style int) error { return f.put("Underline", style) }
func (f *comFont) SetName(name string) error   { return f.put("Name", name) }
func (f *comFont) SetSize(points float64) error { return f.put("Size", points) }

type comParagraphFormat struct{ comObject }

func (p *comParagraphFormat) SetAlignment(a int) error          { return p.put("Alignment", a) }
func (p *comParagraphFormat) SetLeftIndent(v float64) error     { return p.put("LeftIndent", v) }
func (p *comParagraphFormat) SetRightIndent(v float64) error    { return p.put("RightIndent", v) }
func (p *comParagraphFormat) SetFirstLineIndent(v float64) error { return p.put("FirstLineIndent", v) }
func (p *comParagraphFormat) SetSpaceBefore(v float64) error    { return p.put("SpaceBefore", v) }
func (p *comParagraphFormat) SetSpaceAfter(v float64) error     { return p.put("SpaceAfter", v) }
func (p *comParagraphFormat) SetLineSpacingRule(r int) error    { return p.put("LineSpacingRule", r) }
func (p *comParagraphFormat) SetLineSpacing(v float64) error    { return p.put("LineSpacing", v) }

type comFind struct{ comObject }

func (f *comFind) ClearFormatting() error { return f.call("ClearFormatting") }

func (f *comFind) Replacement() (Replacement, error) {
	disp, err := f.getDispatch("Replacement")
	if err != nil {
		return nil, err
	}
	return &comReplacement{comObject{obj: disp}}, nil
}

func (f *comFind) Execute(findText string, matchCase, matchWholeWord bool, wrap int, replaceWith string, replace int) (bool, error) {
	// Positional per the object model: FindText, MatchCase, MatchWholeWord,
	// MatchWildcards, MatchSoundsLike, MatchAllWordForms, Forward, Wrap,
	// Format, ReplaceWith, Replace.
	v, err := oleutil.CallMethod(f.obj, "Execute",
		findText, matchCase, matchWholeWord, false, false, false, true, wrap, false, replaceWith, replace)
	if err != nil {
		return false, err
	}
	found, ok := v.Value().(bool)
	if !ok {
		found = v.Val != 0
	}
	return found, nil
}

type comReplacement struct{ comObject }

func (r *comReplacement) ClearFormatting() error { return r.call("ClearFormatting") }

type comParagraphs struct{ comObject }

func (p *comParagraphs) Count() (int, error) { return p.getInt("Count") }

func (p *comParagraphs) Item(index int) (Paragraph, error) {
	disp, err := p.getDispatch("Item", index)
	if err != nil {
		return nil, err
	}
	return &comParagraph{comObject{obj: disp}}, nil
}

type comParagraph struct{ comObject }

func (p *comParagraph) Range() (Range, error) {
	disp, err := p.getDispatch("Range")
	if err != nil {
		return nil, err
	}
	return &comRange{comObject{obj: disp}}, nil
}

type comTables struct{ comObject }

func (t *comTables) Count() (int, error) { return t.getInt("Count") }

func (t *comTables) Item(index int) (Table, error) {
	disp, err := t.getDispatch("Item", index)
	if err != nil {
		return nil, err
	}
	return &comTable{comObject{obj: disp}}, nil
}

func (t *comTables) Add(at Range, rows, cols int) (Table, error) {
	rng, ok := at.(*comRange)
	if !ok {
		return nil, fmt.Errorf("range is not a COM range")
	}
	v, err := oleutil.CallMethod(t.obj, "Add", rng.obj, rows, cols)
	if err != nil {
		return nil, err
	}
	return &comTable{comObject{obj: v.ToIDispatch()}}, nil
}

type comTable struct{ comObject }

func (t *comTable) Cell(row, col int) (Cell, error) {
	v, err := oleutil.CallMethod(t.obj, "Cell", row, col)
	if err != nil {
		return nil, err
	}
	return &comCell{comObject{obj: v.ToIDispatch()}}, nil
}

func (t *comTable) Rows() (Rows, error) {
	disp, err := t.getDispatch("Rows")
	if err != nil {
		return nil, err
	}
	return &comRows{comObject{obj: disp}}, nil
}

func (t *comTable) Columns() (Columns, error) {
	disp, err := t.getDispatch("Columns")
	if err != nil {
		return nil, err
	}
	return &comColumns{comObject{obj: disp}}, nil
}

func (t *comTable) AutoFormat(format, applyFlags int) error {
	flag := func(bit int) bool { return applyFlags&bit != 0 }
	return t.call("AutoFormat", format,
		flag(WdTableFormatApplyBorders),
		flag(WdTableFormatApplyShading),
		flag(WdTableFormatApplyFont),
		flag(WdTableFormatApplyColor),
		flag(WdTableFormatApplyHeadingRows),
		flag(WdTableFormatApplyLastRow),
		flag(WdTableFormatApplyFirstColumn),
		flag(WdTableFormatApplyLastColumn),
		flag(WdTableFormatApplyAutoFit))
}

func (t *comTable) SetStyle(name string) error { return t.put("Style", name) }

type comRows struct{ comObject }

func (r *comRows) Count() (int, error) { return r.getInt("Count") }

func (r *comRows) Item(index int) (Row, error) {
	disp, err := r.getDispatch("Item", index)
	if err != nil {
		return nil, err
	}
	return &comRow{comObject{obj: disp}}, nil
}

func (r *comRows) Add(before Row) (Row, error) {
	var v *ole.VARIANT
	var err error
	if before == nil {
		v, err = oleutil.CallMethod(r.obj, "Add")
	} else {
		ref, ok := before.(*comRow)
		if !ok {
			return nil, fmt.Errorf("row is not a COM row")
		}
		v, err = oleutil.CallMethod(r.obj, "Add", ref.obj)
	}
	if err != nil {
		return nil, err
	}
	return &comRow{comObject{obj: v.ToIDispatch()}}, nil
}

type comRow struct{ comObject }

type comColumns struct{ comObject }

func (c *comColumns) Count() (int, error) { return c.getInt("Count") }

func (c *comColumns) Item(index int) (Column, error) {
	disp, err := c.getDispatch("Item", index)
	if err != nil {
		return nil, err
	}
	return &comColumn{comObject{obj: disp}}, nil
}

func (c *comColumns) Add(before Column) (Column, error) {
	var v *ole.VARIANT
	var err error
	if before == nil {
		v, err = oleutil.CallMethod(c.obj, "Add")
	} else {
		ref, ok := before.(*comColumn)
		if !ok {
			return nil, fmt.Errorf("column is not a COM column")
		}
		v, err = oleutil.CallMethod(c.obj, "Add", ref.obj)
	}
	if err != nil {
		return nil, err
	}
	return &comColumn{comObject{obj: v.ToIDispatch()}}, nil
}

type comColumn struct{ comObject }

type comCell struct{ comObject }

func (c *comCell) Range() (Range, error) {
	disp, err := c.getDispatch("Range")
	if err != nil {
		return nil, err
	}
	return &comRange{comObject{obj: disp}}, nil
}

type comInlineShapes struct{ comObject }

func (s *comInlineShapes) Count() (int, error) { return s.getInt("Count") }

func (s *comInlineShapes) Item(index int) (InlineShape, error) {
	disp, err := s.getDispatch("Item", index)
	if err != nil {
		return nil, err
	}
	return &comInlineShape{comObject{obj: disp}}, nil
}

func (s *comInlineShapes) AddPicture(path string, linkToFile, saveWithDocument bool, at Range) (InlineShape, error) {
	rng, ok := at.(*comRange)
	if !ok {
		return nil, fmt.Errorf("range is not a COM range")
	}
	v, err := oleutil.CallMethod(s.obj, "AddPicture", path, linkToFile, saveWithDocument, rng.obj)
	if err != nil {
		return nil, err
	}
	return &comInlineShape{comObject{obj: v.ToIDispatch()}}, nil
}

type comInlineShape struct{ comObject }

func (s *comInlineShape) Height() (float64, error)      { return s.getFloat("Height") }
func (s *comInlineShape) SetHeight(v float64) error     { return s.put("Height", v) }
func (s *comInlineShape) Width() (float64, error)       { return s.getFloat("Width") }
func (s *comInlineShape) SetWidth(v float64) error      { return s.put("Width", v) }

func (s *comInlineShape) SetLockAspectRatio(locked bool) error {
	state := msoFalse
	if locked {
		state = msoTrue
	}
	return s.put("LockAspectRatio", state)
}

type comSections struct{ comObject }

func (s *comSections) Count() (int, error) { return s.getInt("Count") }

func (s *comSections) Item(index int) (Section, error) {
	disp, err := s.getDispatch("Item", index)
	if err != nil {
		return nil, err
	}
	return &comSection{comObject{obj: disp}}, nil
}

type comSection struct{ comObject }

func (s *comSection) Headers() (HeadersFooters, error) {
	disp, err := s.getDispatch("Headers")
	if err != nil {
		return nil, err
	}
	return &comHeadersFooters{comObject{obj: disp}}, nil
}

func (s *comSection) Footers() (HeadersFooters, error) {
	disp, err := s.getDispatch("Footers")
	if err != nil {
		return nil, err
	}
	return &comHeadersFooters{comObject{obj: disp}}, nil
}

type comHeadersFooters struct{ comObject }

func (h *comHeadersFooters) Item(variant int) (HeaderFooter, error) {
	disp, err := h.getDispatch("Item", variant)
	if err != nil {
		return nil, err
	}
	return &comHeaderFooter{comObject{obj: disp}}, nil
}

type comHeaderFooter struct{ comObject }

func (h *comHeaderFooter) Exists() (bool, error) { return h.getBool("Exists") }

func (h *comHeaderFooter) Range() (Range, error) {
	disp, err := h.getDispatch("Range")
	if err != nil {
		return nil, err
	}
	return &comRange{comObject{obj: disp}}, nil
}

type comPageSetup struct{ comObject }

func (p *comPageSetup) SetTopMargin(v float64) error    { return p.put("TopMargin", v) }
func (p *comPageSetup) SetBottomMargin(v float64) error { return p.put("BottomMargin", v) }
func (p *comPageSetup) SetLeftMargin(v float64) error   { return p.put("LeftMargin", v) }
func (p *comPageSetup) SetRightMargin(v float64) error  { return p.put("RightMargin", v) }
func (p *comPageSetup) SetOrientation(o int) error      { return p.put("Orientation", o) }
func (p *comPageSetup) SetPaperSize(s int) error        { return p.put("PaperSize", s) }
