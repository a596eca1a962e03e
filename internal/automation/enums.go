package automation

// Numeric enumerations borrowed from the Word object model. The codes are
// Word's own documented values; do not invent new ones — callers pass them
// on the wire and Word interprets them directly.

// WdConstants sentinels.
const (
	// WdToggle flips a tri-state property relative to its current value.
	// The server resolves toggles itself (see text.Client), so this value
	// is never written; it is documented here because Word reports it.
	WdToggle = 9999998
	// WdUndefined is reported for mixed formatting across a selection.
	WdUndefined = 9999999
)

// WdSaveOptions: what to do with unsaved changes on close/quit.
const (
	WdDoNotSaveChanges    = 0
	WdSaveChanges         = -1
	WdPromptToSaveChanges = -2
)

// WdSaveFormat: file formats for SaveAs.
const (
	WdFormatDocument        = 0  // .doc
	WdFormatText            = 2  // .txt
	WdFormatRTF             = 6  // .rtf
	WdFormatUnicodeText     = 7
	WdFormatDocumentDefault = 16 // .docx
	WdFormatPDF             = 17
)

// WdParagraphAlignment.
const (
	WdAlignParagraphLeft    = 0
	WdAlignParagraphCenter  = 1
	WdAlignParagraphRight   = 2
	WdAlignParagraphJustify = 3
)

// WdUnderline styles.
const (
	WdUnderlineNone       = 0
	WdUnderlineSingle     = 1
	WdUnderlineWords      = 2
	WdUnderlineDouble     = 3
	WdUnderlineDotted     = 4
	WdUnderlineThick      = 6
	WdUnderlineDash       = 7
	WdUnderlineDotDash    = 9
	WdUnderlineDotDotDash = 10
	WdUnderlineWavy       = 11
)

// WdUnits: movement and deletion units.
const (
	WdCharacter = 1
	WdWord      = 2
	WdSentence  = 3
	WdParagraph = 4
	WdLine      = 5
	WdStory     = 6
)

// WdMovementType.
const (
	WdMove   = 0
	WdExtend = 1
)

// WdCollapseDirection.
const (
	WdCollapseEnd   = 0
	WdCollapseStart = 1
)

// WdSelectionType.
const (
	WdNoSelection     = 0
	WdSelectionIP     = 1
	WdSelectionNormal = 2
)

// WdLineSpacing rules. Rules coded 3 and above take an explicit numeric
// value; the others derive spacing from the font.
const (
	WdLineSpaceSingle   = 0
	WdLineSpace1pt5     = 1
	WdLineSpaceDouble   = 2
	WdLineSpaceAtLeast  = 3
	WdLineSpaceExactly  = 4
	WdLineSpaceMultiple = 5
)

// WdOrientation.
const (
	WdOrientPortrait  = 0
	WdOrientLandscape = 1
)

// WdPaperSize (common subset).
const (
	WdPaperLetter = 2
	WdPaperLegal  = 4
	WdPaperA3     = 6
	WdPaperA4     = 7
	WdPaperA5     = 8
)

// WdHeaderFooterIndex.
const (
	WdHeaderFooterPrimary   = 1
	WdHeaderFooterFirstPage = 2
	WdHeaderFooterEvenPages = 3
)

// WdFindWrap.
const (
	WdFindStop     = 0
	WdFindContinue = 1
)

// WdReplace.
const (
	WdReplaceNone = 0
	WdReplaceOne  = 1
	WdReplaceAll  = 2
)

// WdTableFormat (common subset of Word's built-in table styles).
const (
	WdTableFormatNone         = 0
	WdTableFormatSimple1      = 1
	WdTableFormatClassic1     = 4
	WdTableFormatColorful1    = 8
	WdTableFormatGrid1        = 16
	WdTableFormatList1        = 24
	WdTableFormatContemporary = 35
	WdTableFormatElegant      = 36
	WdTableFormatProfessional = 37
	WdTableFormatWeb1         = 40
)

// WdTableFormatApply bitmask: which visual aspects AutoFormat applies.
const (
	WdTableFormatApplyBorders     = 1
	WdTableFormatApplyShading     = 2
	WdTableFormatApplyFont        = 4
	WdTableFormatApplyColor       = 8
	WdTableFormatApplyAutoFit     = 16
	WdTableFormatApplyHeadingRows = 32
	WdTableFormatApplyLastRow     = 64
	WdTableFormatApplyFirstColumn = 128
	WdTableFormatApplyLastColumn  = 256
)

// DefaultTableFormatApply is the "apply everything common" mask used when a
// caller does not supply apply flags.
const DefaultTableFormatApply = WdTableFormatApplyBorders |
	WdTableFormatApplyShading |
	WdTableFormatApplyFont |
	WdTableFormatApplyColor |
	WdTableFormatApplyAutoFit |
	WdTableFormatApplyHeadingRows

var alignmentNames = map[int]string{
	WdAlignParagraphLeft:    "left",
	WdAlignParagraphCenter:  "center",
	WdAlignParagraphRight:   "right",
	WdAlignParagraphJustify: "justify",
}

var underlineNames = map[int]string{
	WdUnderlineNone:       "none",
	WdUnderlineSingle:     "single",
	WdUnderlineWords:      "words",
	WdUnderlineDouble:     "double",
	WdUnderlineDotted:     "dotted",
	WdUnderlineThick:      "thick",
	WdUnderlineDash:       "dash",
	WdUnderlineDotDash:    "dot-dash",
	WdUnderlineDotDotDash: "dot-dot-dash",
	WdUnderlineWavy:       "wavy",
}

var unitNames = map[int]string{
	WdCharacter: "character",
	WdWord:      "word",
	WdSentence:  "sentence",
	WdParagraph: "paragraph",
	WdLine:      "line",
	WdStory:     "story",
}

var lineSpacingNames = map[int]string{
	WdLineSpaceSingle:   "single",
	WdLineSpace1pt5:     "1.5 lines",
	WdLineSpaceDouble:   "double",
	WdLineSpaceAtLeast:  "at least",
	WdLineSpaceExactly:  "exactly",
	WdLineSpaceMultiple: "multiple",
}

var orientationNames = map[int]string{
	WdOrientPortrait:  "portrait",
	WdOrientLandscape: "landscape",
}

var paperSizeNames = map[int]string{
	WdPaperLetter: "letter",
	WdPaperLegal:  "legal",
	WdPaperA3:     "A3",
	WdPaperA4:     "A4",
	WdPaperA5:     "A5",
}

var headerFooterVariantNames = map[int]string{
	WdHeaderFooterPrimary:   "primary",
	WdHeaderFooterFirstPage: "first page",
	WdHeaderFooterEvenPages: "even pages",
}

var saveFormatNames = map[int]string{
	WdFormatDocument:        "doc",
	WdFormatText:            "txt",
	WdFormatRTF:             "rtf",
	WdFormatUnicodeText:     "unicode text",
	WdFormatDocumentDefault: "docx",
	WdFormatPDF:             "pdf",
}

func lookupName(names map[int]string, code int) string {
	if name, ok := names[code]; ok {
		return name
	}
	return "unknown"
}

// AlignmentName resolves a WdParagraphAlignment code to a human name.
func AlignmentName(code int) string { return lookupName(alignmentNames, code) }

// UnderlineName resolves a WdUnderline code to a human name.
func UnderlineName(code int) string { return lookupName(underlineNames, code) }

// UnitName resolves a WdUnits code to a human name.
func UnitName(code int) string { return lookupName(unitNames, code) }

// LineSpacingName resolves a WdLineSpacing rule code to a human name.
func LineSpacingName(code int) string { return lookupName(lineSpacingNames, code) }

// OrientationName resolves a WdOrientation code to a human name.
func OrientationName(code int) string { return lookupName(orientationNames, code) }

// PaperSizeName resolves a WdPaperSize code to a human name.
func PaperSizeName(code int) string { return lookupName(paperSizeNames, code) }

// HeaderFooterVariantName resolves a WdHeaderFooterIndex code to a human name.
func HeaderFooterVariantName(code int) string {
	return lookupName(headerFooterVariantNames, code)
}

// SaveFormatName resolves a WdSaveFormat code to a human name.
func SaveFormatName(code int) string { return lookupName(saveFormatNames, code) }

// ValidHeaderFooterVariant reports whether code is a known variant.
func ValidHeaderFooterVariant(code int) bool {
	_, ok := headerFooterVariantNames[code]
	return ok
}
