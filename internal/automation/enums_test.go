package automation

import "testing"

func TestEnumNames(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"alignment left", AlignmentName(WdAlignParagraphLeft), "left"},
		{"alignment justify", AlignmentName(WdAlignParagraphJustify), "justify"},
		{"alignment unknown", AlignmentName(42), "unknown"},
		{"underline single", UnderlineName(WdUnderlineSingle), "single"},
		{"underline none", UnderlineName(WdUnderlineNone), "none"},
		{"unit word", UnitName(WdWord), "word"},
		{"line spacing exactly", LineSpacingName(WdLineSpaceExactly), "exactly"},
		{"orientation landscape", OrientationName(WdOrientLandscape), "landscape"},
		{"paper a4", PaperSizeName(WdPaperA4), "A4"},
		{"header variant first page", HeaderFooterVariantName(WdHeaderFooterFirstPage), "first page"},
		{"save format docx", SaveFormatName(WdFormatDocumentDefault), "docx"},
		{"save format pdf", SaveFormatName(WdFormatPDF), "pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestValidHeaderFooterVariant(t *testing.T) {
	for _, code := range []int{WdHeaderFooterPrimary, WdHeaderFooterFirstPage, WdHeaderFooterEvenPages} {
		if !ValidHeaderFooterVariant(code) {
			t.Errorf("variant %d should be valid", code)
		}
	}
	for _, code := range []int{0, 4, -1} {
		if ValidHeaderFooterVariant(code) {
			t.Errorf("variant %d should be invalid", code)
		}
	}
}

func TestDefaultTableFormatApply(t *testing.T) {
	// The default mask applies the common aspects but not the edge-row and
	// edge-column emphasis.
	if DefaultTableFormatApply&WdTableFormatApplyBorders == 0 {
		t.Error("default mask should apply borders")
	}
	if DefaultTableFormatApply&WdTableFormatApplyHeadingRows == 0 {
		t.Error("default mask should apply heading rows")
	}
	if DefaultTableFormatApply&WdTableFormatApplyLastRow != 0 {
		t.Error("default mask should not apply last-row emphasis")
	}
	if DefaultTableFormatApply != 63 {
		t.Errorf("default mask = %d, want 63", DefaultTableFormatApply)
	}
}

func TestErrorMessages(t *testing.T) {
	oor := &OutOfRangeError{Kind: "Table", Index: 3, Max: 1}
	if got, want := oor.Error(), "Table index 3 is out of bounds (valid range 1-1)"; got != want {
		t.Errorf("OutOfRangeError = %q, want %q", got, want)
	}

	hf := &HeaderFooterNotFoundError{Kind: "footer", Variant: WdHeaderFooterFirstPage, Section: 2}
	if got := hf.Error(); got != "footer (first page) not found in section 2: the matching page setup option is off" {
		t.Errorf("unexpected HeaderFooterNotFoundError message: %q", got)
	}

	if !IsOutOfRange(oor) {
		t.Error("IsOutOfRange should match OutOfRangeError")
	}
	if IsOutOfRange(hf) {
		t.Error("IsOutOfRange should not match HeaderFooterNotFoundError")
	}
}
