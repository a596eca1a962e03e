package cursor

// MoveToArgs contains parameters for jumping to the document start or end.
type MoveToArgs struct {
	// No parameters needed
}

// MoveToResult is the MCP response for jumping to the start or end.
type MoveToResult struct {
	Message string `json:"message"`
}

// MoveArgs contains parameters for moving the cursor.
type MoveArgs struct {
	Count  int  `json:"count" jsonschema:"required" jsonschema_description:"Number of units to move; positive moves right, negative left, zero does nothing"`
	Unit   *int `json:"unit,omitempty" jsonschema_description:"Word movement unit code (1=character, 2=word, 3=sentence, 4=paragraph, 5=line); default 1 (character)"`
	Extend bool `json:"extend,omitempty" jsonschema_description:"Extend the selection instead of moving the insertion point; default false"`
}

// MoveResult is the MCP response for moving the cursor.
type MoveResult struct {
	Message string `json:"message"`
}

// SelectAllArgs contains parameters for selecting the whole document.
type SelectAllArgs struct {
	// No parameters needed
}

// SelectAllResult is the MCP response for selecting the whole document.
type SelectAllResult struct {
	Message string `json:"message"`
}

// SelectParagraphArgs contains parameters for selecting a paragraph.
type SelectParagraphArgs struct {
	Index int `json:"index" jsonschema:"required" jsonschema_description:"1-based paragraph index in the document"`
}

// SelectParagraphResult is the MCP response for selecting a paragraph.
type SelectParagraphResult struct {
	Message string `json:"message"`
}

// CollapseArgs contains parameters for collapsing the selection.
type CollapseArgs struct {
	ToStart bool `json:"to_start,omitempty" jsonschema_description:"Collapse to the selection start instead of the end; default false"`
}

// CollapseResult is the MCP response for collapsing the selection.
type CollapseResult struct {
	Message string `json:"message"`
}

// GetSelectionTextArgs contains parameters for reading the selection text.
type GetSelectionTextArgs struct {
	// No parameters needed
}

// GetSelectionTextResult is the MCP response with the selected text.
type GetSelectionTextResult struct {
	Text    string `json:"text"`
	Message string `json:"message"`
}

// GetSelectionInfoArgs contains parameters for inspecting the selection.
type GetSelectionInfoArgs struct {
	// No parameters needed
}

// GetSelectionInfoResult is the MCP response describing the selection.
type GetSelectionInfoResult struct {
	Text   string `json:"text"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Active bool   `json:"active"`
	Type   int    `json:"type"`
}
