package paragraph

// SetAlignmentArgs contains parameters for setting paragraph alignment.
type SetAlignmentArgs struct {
	Alignment int `json:"alignment" jsonschema:"required" jsonschema_description:"Word alignment code (0=left, 1=center, 2=right, 3=justify)"`
}

// SetAlignmentResult is the MCP response for setting alignment.
type SetAlignmentResult struct {
	Alignment string `json:"alignment"`
	Message   string `json:"message"`
}

// SetIndentArgs contains parameters for setting paragraph indentation.
type SetIndentArgs struct {
	Left      *float64 `json:"left,omitempty" jsonschema_description:"Left indent in points; omit to leave unchanged"`
	Right     *float64 `json:"right,omitempty" jsonschema_description:"Right indent in points; omit to leave unchanged"`
	FirstLine *float64 `json:"first_line,omitempty" jsonschema_description:"First line indent in points; omit to leave unchanged"`
}

// SetIndentResult is the MCP response for setting indentation.
type SetIndentResult struct {
	Message string `json:"message"`
}

// SetSpacingArgs contains parameters for setting paragraph spacing.
type SetSpacingArgs struct {
	Before *float64 `json:"before,omitempty" jsonschema_description:"Space before the paragraph in points; omit to leave unchanged"`
	After  *float64 `json:"after,omitempty" jsonschema_description:"Space after the paragraph in points; omit to leave unchanged"`
}

// SetSpacingResult is the MCP response for setting spacing.
type SetSpacingResult struct {
	Message string `json:"message"`
}

// SetLineSpacingArgs contains parameters for setting line spacing.
type SetLineSpacingArgs struct {
	Rule  int     `json:"rule" jsonschema:"required" jsonschema_description:"Word line spacing rule (0=single, 1=1.5 lines, 2=double, 3=at least, 4=exactly, 5=multiple)"`
	Value float64 `json:"value,omitempty" jsonschema_description:"Spacing value; required for rules 3-5 (points for 'at least'/'exactly', line multiple for 'multiple')"`
}

// SetLineSpacingResult is the MCP response for setting line spacing.
type SetLineSpacingResult struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}
