package headers

// SetTextArgs contains parameters for writing a header or footer.
type SetTextArgs struct {
	Text    string `json:"text" jsonschema:"required" jsonschema_description:"Text to place in the header or footer; empty clears it"`
	Section *int   `json:"section,omitempty" jsonschema_description:"1-based section index; default 1"`
	Variant *int   `json:"variant,omitempty" jsonschema_description:"Header/footer variant (1=primary, 2=first page, 3=even pages); default 1"`
}

// SetTextResult is the MCP response for writing a header or footer.
type SetTextResult struct {
	Message string `json:"message"`
}

// GetTextArgs contains parameters for reading a header or footer.
type GetTextArgs struct {
	Section *int `json:"section,omitempty" jsonschema_description:"1-based section index; default 1"`
	Variant *int `json:"variant,omitempty" jsonschema_description:"Header/footer variant (1=primary, 2=first page, 3=even pages); default 1"`
}

// GetTextResult is the MCP response for reading a header or footer.
type GetTextResult struct {
	Text    string `json:"text"`
	Message string `json:"message"`
}
