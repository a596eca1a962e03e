package tools

// AllTools contains all tool specifications for the Word MCP server.
// Tools are organized by area for easier maintenance.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// DOCUMENT LIFECYCLE TOOLS
	// ==========================================================================
	{
		Name:     "word_create_document",
		Method:   "Create",
		Title:    "Create Document",
		Category: "lifecycle",
		Area:     "document",
		Description: `Create a new blank Word document and make it the active document.

USE WHEN: User says "create a new document", "start a blank document", "open Word with a fresh file".

NOT FOR: Opening an existing file (use word_open_document instead).

PARAMETERS: None.

RETURNS: The name Word assigned to the new document (e.g. "Document1").`,
		OpenWorld: true,
	},
	{
		Name:     "word_open_document",
		Method:   "Open",
		Title:    "Open Document",
		Category: "lifecycle",
		Area:     "document",
		Description: `Open an existing Word document from disk and make it the active document.

USE WHEN: User says "open report.docx", "load the file at C:\docs\plan.docx".

NOT FOR: Creating a new empty document (use word_create_document instead).

PARAMETERS:
- path: Absolute path of the document (required). The file must exist.

RETURNS: The opened document's name.`,
		OpenWorld: true,
	},
	{
		Name:     "word_save_document",
		Method:   "Save",
		Title:    "Save Document",
		Category: "lifecycle",
		Area:     "document",
		Description: `Save the active document in place.

USE WHEN: User says "save", "save the document", "persist my changes".

NOT FOR: Saving under a new name or format (use word_save_document_as instead).

PARAMETERS: None.

RETURNS: Confirmation that the document was saved.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "word_save_document_as",
		Method:   "SaveAs",
		Title:    "Save Document As",
		Category: "lifecycle",
		Area:     "document",
		Description: `Save the active document to a new path, optionally converting the format.

USE WHEN: User says "save as PDF", "save this to C:\out\report.docx", "export to rtf".

NOT FOR: Saving in place under the current name (use word_save_document instead).

PARAMETERS:
- path: Absolute target path (required)
- format: Word save format code (0=doc, 2=txt, 6=rtf, 16=docx, 17=pdf; default 16)

RETURNS: The path and format the document was saved with.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "word_close_document",
		Method:   "Close",
		Title:    "Close Document",
		Category: "lifecycle",
		Area:     "document",
		Description: `Close the active document. Closing when no document is open succeeds with nothing to do.

USE WHEN: User says "close the document", "we're done with this file".

NOT FOR: Shutting down Word entirely (use word_quit instead).

PARAMETERS:
- save_option: Word save option code (0=do not save, -1=save changes, -2=prompt; default 0)

RETURNS: Whether a document was actually closed.`,
		Destructive: true,
		OpenWorld:   true,
	},
	{
		Name:     "word_quit",
		Method:   "Quit",
		Title:    "Quit Word",
		Category: "lifecycle",
		Area:     "document",
		Description: `Shut down the Word application without saving. Unsaved changes are discarded.

USE WHEN: User says "quit Word", "close the application", "shut it all down".

NOT FOR: Closing a single document (use word_close_document instead).

PARAMETERS: None.

RETURNS: Confirmation that Word was shut down.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:     "word_get_document_info",
		Method:   "GetInfo",
		Title:    "Get Document Info",
		Category: "read",
		Area:     "document",
		Description: `Describe the active document: name, full path, saved state, and paragraph/table/picture counts.

USE WHEN: User asks "what document is open", "how many tables are in the document", "is it saved".

NOT FOR: Reading document text (use word_get_selection_text after selecting).

PARAMETERS: None.

RETURNS: Document name, full path, saved flag, and collection counts.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// TEXT TOOLS
	// ==========================================================================
	{
		Name:     "word_insert_text",
		Method:   "InsertText",
		Title:    "Insert Text",
		Category: "editing",
		Area:     "text",
		Description: `Type text at the current cursor position, replacing the selection if one exists.

USE WHEN: User says "write X", "insert the following paragraph", "type hello world".

NOT FOR: Replacing text elsewhere in the document (use word_find_and_replace instead).

PARAMETERS:
- text: Text to insert (required)

RETURNS: Confirmation with the number of characters inserted.`,
		OpenWorld: true,
	},
	{
		Name:     "word_delete_text",
		Method:   "DeleteText",
		Title:    "Delete Text",
		Category: "editing",
		Area:     "text",
		Description: `Delete text relative to the cursor. Positive counts delete forward, negative counts delete backward, zero does nothing.

USE WHEN: User says "delete the next two words", "remove the last 5 characters".

NOT FOR: Removing specific text by content (use word_find_and_replace with an empty replacement).

PARAMETERS:
- count: Units to delete; sign sets the direction (required)
- unit: Movement unit code (1=character, 2=word, 3=sentence, 4=paragraph, 5=line; default 1)

RETURNS: Confirmation of what was deleted.`,
		Destructive: true,
		OpenWorld:   true,
	},
	{
		Name:     "word_find_and_replace",
		Method:   "FindReplace",
		Title:    "Find and Replace",
		Category: "editing",
		Area:     "text",
		Description: `Search the document for text and replace it, with wraparound from the cursor.

USE WHEN: User says "replace X with Y", "change every occurrence of X", "fix the typo X".

NOT FOR: Inserting new text at the cursor (use word_insert_text instead).

PARAMETERS:
- find: Text to search for (required)
- replace: Replacement text; empty deletes the match
- match_case: Match letter case exactly (default false)
- match_whole_word: Match whole words only (default false)
- replace_all: Replace every occurrence, not just the first (default false). Replacing all with no matches is reported as an error.

RETURNS: Whether a match was found and what was replaced.`,
		Destructive: true,
		OpenWorld:   true,
	},
	{
		Name:     "word_toggle_bold",
		Method:   "ToggleBold",
		Title:    "Toggle Bold",
		Category: "formatting",
		Area:     "text",
		Description: `Flip bold formatting on the current selection. A selection with mixed formatting counts as bold, so toggling turns bold off everywhere.

USE WHEN: User says "make this bold", "unbold the selection", "toggle bold".

NOT FOR: Underline or italic (use word_toggle_underline / word_toggle_italic).

PARAMETERS: None.

RETURNS: The new bold state.`,
		OpenWorld: true,
	},
	{
		Name:     "word_toggle_italic",
		Method:   "ToggleItalic",
		Title:    "Toggle Italic",
		Category: "formatting",
		Area:     "text",
		Description: `Flip italic formatting on the current selection. Mixed formatting counts as italic.

USE WHEN: User says "italicize this", "remove the italics", "toggle italic".

NOT FOR: Bold or underline (use word_toggle_bold / word_toggle_underline).

PARAMETERS: None.

RETURNS: The new italic state.`,
		OpenWorld: true,
	},
	{
		Name:     "word_toggle_underline",
		Method:   "ToggleUnderline",
		Title:    "Toggle Underline",
		Category: "formatting",
		Area:     "text",
		Description: `Apply an underline style to the selection, or remove underlining when the selection already carries that exact style.

USE WHEN: User says "underline this", "double underline the heading", "remove the underline".

NOT FOR: Bold or italic (use word_toggle_bold / word_toggle_italic).

PARAMETERS:
- style: Underline style code (0=none, 1=single, 2=words, 3=double, 4=dotted, 6=thick, 7=dash, 9=dot-dash, 10=dot-dot-dash, 11=wavy; default 1)

RETURNS: The underline style now in effect.`,
		OpenWorld: true,
	},
	{
		Name:     "word_set_font",
		Method:   "SetFont",
		Title:    "Set Font",
		Category: "formatting",
		Area:     "text",
		Description: `Change the font family and/or size of the current selection.

USE WHEN: User says "use Calibri", "make the text 14 point", "switch to Times New Roman 12".

NOT FOR: Bold/italic/underline (use the toggle tools).

PARAMETERS:
- name: Font family name; empty leaves it unchanged
- size: Size in points; zero leaves it unchanged

RETURNS: Confirmation of the applied font settings.`,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// PARAGRAPH TOOLS
	// ==========================================================================
	{
		Name:     "word_set_alignment",
		Method:   "SetAlignment",
		Title:    "Set Alignment",
		Category: "formatting",
		Area:     "paragraph",
		Description: `Set the alignment of the selected paragraphs.

USE WHEN: User says "center this", "right-align the heading", "justify the paragraph".

NOT FOR: Indentation (use word_set_paragraph_indent instead).

PARAMETERS:
- alignment: Alignment code (0=left, 1=center, 2=right, 3=justify) (required)

RETURNS: The alignment applied.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "word_set_paragraph_indent",
		Method:   "SetIndent",
		Title:    "Set Paragraph Indent",
		Category: "formatting",
		Area:     "paragraph",
		Description: `Set left, right, and/or first-line indentation of the selected paragraphs, in points.

USE WHEN: User says "indent this paragraph", "add a half-inch first line indent" (36 points).

NOT FOR: Alignment or spacing (use word_set_alignment / word_set_paragraph_spacing).

PARAMETERS:
- left / right / first_line: Indents in points; omitted values stay unchanged

RETURNS: Confirmation of the indents applied.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "word_set_paragraph_spacing",
		Method:   "SetSpacing",
		Title:    "Set Paragraph Spacing",
		Category: "formatting",
		Area:     "paragraph",
		Description: `Set the space before and/or after the selected paragraphs, in points.

USE WHEN: User says "add 12 points after each paragraph", "remove the space before".

NOT FOR: Spacing between lines within a paragraph (use word_set_line_spacing).

PARAMETERS:
- before / after: Spacing in points; omitted values stay unchanged

RETURNS: Confirmation of the spacing applied.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "word_set_line_spacing",
		Method:   "SetLineSpacing",
		Title:    "Set Line Spacing",
		Category: "formatting",
		Area:     "paragraph",
		Description: `Set the line spacing rule of the selected paragraphs.

USE WHEN: User says "double space this", "use 1.5 line spacing", "exactly 14 points between lines".

NOT FOR: Space between paragraphs (use word_set_paragraph_spacing).

PARAMETERS:
- rule: Spacing rule (0=single, 1=1.5 lines, 2=double, 3=at least, 4=exactly, 5=multiple) (required)
- value: Required for rules 3-5 (points for 'at least'/'exactly', line multiple for 'multiple')

RETURNS: The line spacing applied.`,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// TABLE TOOLS
	// ==========================================================================
	{
		Name:     "word_add_table",
		Method:   "AddTable",
		Title:    "Add Table",
		Category: "tables",
		Area:     "table",
		Description: `Insert a table with the given dimensions at the cursor.

USE WHEN: User says "add a 3x4 table", "insert a table with two columns".

NOT FOR: Adding rows or columns to an existing table (use word_insert_table_row / word_insert_table_column).

PARAMETERS:
- rows: Row count, at least 1 (required)
- cols: Column count, at least 1 (required)

RETURNS: The 1-based index of the new table in the document.`,
		OpenWorld: true,
	},
	{
		Name:     "word_set_cell_text",
		Method:   "SetCellText",
		Title:    "Set Cell Text",
		Category: "tables",
		Area:     "table",
		Description: `Write text into one table cell. All indices are 1-based and validated against the table's size.

USE WHEN: User says "put 'Total' in row 2 column 1", "fill the first cell of the table".

NOT FOR: Inserting free text outside tables (use word_insert_text).

PARAMETERS:
- table_index: Which table in the document (required)
- row / col: Cell address (required)
- text: Cell content; empty clears the cell

RETURNS: Confirmation of the cell written.`,
		OpenWorld: true,
	},
	{
		Name:     "word_insert_table_row",
		Method:   "InsertRow",
		Title:    "Insert Table Row",
		Category: "tables",
		Area:     "table",
		Description: `Insert a row into an existing table, above a given row or appended at the end.

USE WHEN: User says "add a row to the table", "insert a row above row 2".

NOT FOR: Creating a new table (use word_add_table).

PARAMETERS:
- table_index: Which table in the document (required)
- before: 1-based row to insert above, up to row count + 1; omitted or row count + 1 appends

RETURNS: The position of the new row.`,
		OpenWorld: true,
	},
	{
		Name:     "word_insert_table_column",
		Method:   "InsertColumn",
		Title:    "Insert Table Column",
		Category: "tables",
		Area:     "table",
		Description: `Insert a column into an existing table, left of a given column or appended at the right.

USE WHEN: User says "add a column", "insert a column before the second one".

NOT FOR: Creating a new table (use word_add_table).

PARAMETERS:
- table_index: Which table in the document (required)
- before: 1-based column to insert left of, up to column count + 1; omitted or column count + 1 appends

RETURNS: The position of the new column.`,
		OpenWorld: true,
	},
	{
		Name:     "word_apply_table_style",
		Method:   "ApplyTableStyle",
		Title:    "Apply Table Style",
		Category: "tables",
		Area:     "table",
		Description: `Style a table with a built-in table format code or a named table style.

USE WHEN: User says "make the table look nice", "apply the Table Grid style", "use format 16".

NOT FOR: Formatting individual cells or text.

PARAMETERS:
- table_index: Which table in the document (required)
- style: Numeric built-in format code (e.g. "16") or a style name (e.g. "Table Grid") (required)
- apply_flags: Bitmask of aspects a format code applies (default 63: borders, shading, font, color, autofit, heading rows)

RETURNS: Confirmation of the style applied.`,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// IMAGE TOOLS
	// ==========================================================================
	{
		Name:     "word_insert_picture",
		Method:   "InsertPicture",
		Title:    "Insert Picture",
		Category: "images",
		Area:     "image",
		Description: `Insert an image file as an inline picture at the cursor.

USE WHEN: User says "insert the logo", "add the chart image at C:\img\chart.png".

NOT FOR: Resizing an existing picture (use word_set_picture_size).

PARAMETERS:
- path: Absolute path of the image file (required). The file must exist.
- link_to_file: Link instead of embedding (default false)
- save_with_document: Store the image inside the document (default true)

RETURNS: The 1-based index of the new inline shape.`,
		OpenWorld: true,
	},
	{
		Name:     "word_set_picture_size",
		Method:   "SetPictureSize",
		Title:    "Set Picture Size",
		Category: "images",
		Area:     "image",
		Description: `Resize an inline picture. With the aspect ratio locked and both dimensions given, the dimension that scales the picture more wins and the other follows the original ratio.

USE WHEN: User says "make the picture 200 points wide", "shrink the image, keep proportions".

NOT FOR: Inserting a new picture (use word_insert_picture).

PARAMETERS:
- shape_index: Which inline shape in the document (required)
- height / width: Target size in points; zero leaves the dimension unchanged
- lock_aspect_ratio: Preserve the original proportions (default false)

RETURNS: The picture's resulting height and width.`,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// HEADER AND FOOTER TOOLS
	// ==========================================================================
	{
		Name:     "word_set_header_text",
		Method:   "SetHeaderText",
		Title:    "Set Header Text",
		Category: "headers",
		Area:     "headers",
		Description: `Overwrite the text of a header. The first-page and even-pages variants require the matching page setup option to be on.

USE WHEN: User says "put the company name in the header", "set the header to X".

NOT FOR: Footers (use word_set_footer_text).

PARAMETERS:
- text: Header text; empty clears it (required)
- section: 1-based section index (default 1)
- variant: 1=primary, 2=first page, 3=even pages (default 1)

RETURNS: Confirmation of the header written.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "word_set_footer_text",
		Method:   "SetFooterText",
		Title:    "Set Footer Text",
		Category: "headers",
		Area:     "headers",
		Description: `Overwrite the text of a footer. The first-page and even-pages variants require the matching page setup option to be on.

USE WHEN: User says "add a footer", "put the date in the footer".

NOT FOR: Headers (use word_set_header_text).

PARAMETERS:
- text: Footer text; empty clears it (required)
- section: 1-based section index (default 1)
- variant: 1=primary, 2=first page, 3=even pages (default 1)

RETURNS: Confirmation of the footer written.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "word_get_header_text",
		Method:   "GetHeaderText",
		Title:    "Get Header Text",
		Category: "read",
		Area:     "headers",
		Description: `Read the current text of a header.

USE WHEN: User asks "what does the header say".

NOT FOR: Footers (use word_get_footer_text).

PARAMETERS:
- section: 1-based section index (default 1)
- variant: 1=primary, 2=first page, 3=even pages (default 1)

RETURNS: The header text.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "word_get_footer_text",
		Method:   "GetFooterText",
		Title:    "Get Footer Text",
		Category: "read",
		Area:     "headers",
		Description: `Read the current text of a footer.

USE WHEN: User asks "what does the footer say".

NOT FOR: Headers (use word_get_header_text).

PARAMETERS:
- section: 1-based section index (default 1)
- variant: 1=primary, 2=first page, 3=even pages (default 1)

RETURNS: The footer text.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// PAGE SETUP TOOLS
	// ==========================================================================
	{
		Name:     "word_set_margins",
		Method:   "SetMargins",
		Title:    "Set Margins",
		Category: "pagesetup",
		Area:     "pagesetup",
		Description: `Set the page margins of the active document, in points (72 points = 1 inch).

USE WHEN: User says "set one-inch margins" (72 points), "narrow the left margin".

NOT FOR: Paragraph indentation (use word_set_paragraph_indent).

PARAMETERS:
- top / bottom / left / right: Margins in points; omitted values stay unchanged

RETURNS: Confirmation of the margins applied.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "word_set_orientation",
		Method:   "SetOrientation",
		Title:    "Set Orientation",
		Category: "pagesetup",
		Area:     "pagesetup",
		Description: `Set the page orientation of the active document.

USE WHEN: User says "switch to landscape", "make it portrait".

PARAMETERS:
- orientation: 0=portrait, 1=landscape (required)

RETURNS: The orientation applied.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "word_set_paper_size",
		Method:   "SetPaperSize",
		Title:    "Set Paper Size",
		Category: "pagesetup",
		Area:     "pagesetup",
		Description: `Set the paper size of the active document.

USE WHEN: User says "use A4", "switch to letter paper".

PARAMETERS:
- paper_size: 2=letter, 4=legal, 6=A3, 7=A4, 8=A5 (required)

RETURNS: The paper size applied.`,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// CURSOR AND SELECTION TOOLS
	// ==========================================================================
	{
		Name:     "word_move_to_start",
		Method:   "MoveToStart",
		Title:    "Move to Start",
		Category: "cursor",
		Area:     "cursor",
		Description: `Move the cursor to the very start of the document, collapsing any selection.

USE WHEN: User says "go to the top", "jump to the beginning".

NOT FOR: Moving a relative distance (use word_move_cursor).

PARAMETERS: None.

RETURNS: Confirmation of the move.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "word_move_to_end",
		Method:   "MoveToEnd",
		Title:    "Move to End",
		Category: "cursor",
		Area:     "cursor",
		Description: `Move the cursor to the very end of the document, collapsing any selection.

USE WHEN: User says "go to the end", "jump to the bottom", often before appending text.

NOT FOR: Moving a relative distance (use word_move_cursor).

PARAMETERS: None.

RETURNS: Confirmation of the move.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "word_move_cursor",
		Method:   "MoveCursor",
		Title:    "Move Cursor",
		Category: "cursor",
		Area:     "cursor",
		Description: `Move the cursor a relative distance, or extend the selection by that distance.

USE WHEN: User says "move right two words", "go back 5 characters", "select the next sentence" (with extend).

NOT FOR: Jumping to the document edges (use word_move_to_start / word_move_to_end).

PARAMETERS:
- count: Units to move; positive right, negative left, zero no-op (required)
- unit: Movement unit code (1=character, 2=word, 3=sentence, 4=paragraph, 5=line; default 1)
- extend: Grow the selection instead of moving the insertion point (default false)

RETURNS: Confirmation of the move.`,
		OpenWorld: true,
	},
	{
		Name:     "word_select_all",
		Method:   "SelectAll",
		Title:    "Select All",
		Category: "cursor",
		Area:     "cursor",
		Description: `Select the entire document.

USE WHEN: User says "select everything", often before a document-wide formatting change.

NOT FOR: Selecting one paragraph (use word_select_paragraph).

PARAMETERS: None.

RETURNS: Confirmation of the selection.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "word_select_paragraph",
		Method:   "SelectParagraph",
		Title:    "Select Paragraph",
		Category: "cursor",
		Area:     "cursor",
		Description: `Select one paragraph by its 1-based position in the document.

USE WHEN: User says "select the third paragraph", often before formatting it.

NOT FOR: Selecting the whole document (use word_select_all).

PARAMETERS:
- index: 1-based paragraph index, validated against the document (required)

RETURNS: Confirmation of the selection.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "word_collapse_selection",
		Method:   "CollapseSelection",
		Title:    "Collapse Selection",
		Category: "cursor",
		Area:     "cursor",
		Description: `Collapse the selection to an insertion point at its start or end.

USE WHEN: User wants to deselect, or position the cursor right before/after the selection.

PARAMETERS:
- to_start: Collapse to the start instead of the end (default false)

RETURNS: Confirmation of the collapse.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "word_get_selection_text",
		Method:   "GetSelectionText",
		Title:    "Get Selection Text",
		Category: "read",
		Area:     "cursor",
		Description: `Read the currently selected text. An insertion point yields an empty string.

USE WHEN: User asks "what is selected", "read the highlighted text".

NOT FOR: Selection offsets and type (use word_get_selection_info).

PARAMETERS: None.

RETURNS: The selected text.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "word_get_selection_info",
		Method:   "GetSelectionInfo",
		Title:    "Get Selection Info",
		Category: "read",
		Area:     "cursor",
		Description: `Describe the current selection: text, character offsets, whether a selection is active, and the raw selection type code.

USE WHEN: User asks "where is the cursor", or a tool needs the selection boundaries.

NOT FOR: Just the text (use word_get_selection_text).

PARAMETERS: None.

RETURNS: Text, start and end offsets, active flag, and type code.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}

// ToolsByArea returns the tools driving one area of the document object
// model.
func ToolsByArea(area string) []ToolSpec {
	var specs []ToolSpec
	for _, spec := range AllTools {
		if spec.Area == area {
			specs = append(specs, spec)
		}
	}
	return specs
}

// ToolsByCategory returns the tools in one logical category.
func ToolsByCategory(category string) []ToolSpec {
	var specs []ToolSpec
	for _, spec := range AllTools {
		if spec.Category == category {
			specs = append(specs, spec)
		}
	}
	return specs
}
