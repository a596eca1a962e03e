package text

// InsertArgs contains parameters for inserting text.
type InsertArgs struct {
	Text string `json:"text" jsonschema:"required" jsonschema_description:"Text to type at the current selection"`
}

// InsertResult is the MCP response for inserting text.
type InsertResult struct {
	Message string `json:"message"`
}

// DeleteArgs contains parameters for deleting text.
type DeleteArgs struct {
	Count int  `json:"count" jsonschema:"required" jsonschema_description:"Number of units to delete; positive deletes forward, negative deletes backward, zero does nothing"`
	Unit  *int `json:"unit,omitempty" jsonschema_description:"Word movement unit code (1=character, 2=word, 3=sentence, 4=paragraph, 5=line); default 1 (character)"`
}

// DeleteResult is the MCP response for deleting text.
type DeleteResult struct {
	Message string `json:"message"`
}

// FindReplaceArgs contains parameters for find and replace.
type FindReplaceArgs struct {
	Find           string `json:"find" jsonschema:"required" jsonschema_description:"Text to search for"`
	Replace        string `json:"replace" jsonschema_description:"Replacement text; empty string deletes the match"`
	MatchCase      bool   `json:"match_case,omitempty" jsonschema_description:"Match letter case exactly; default false"`
	MatchWholeWord bool   `json:"match_whole_word,omitempty" jsonschema_description:"Match whole words only; default false"`
	ReplaceAll     bool   `json:"replace_all,omitempty" jsonschema_description:"Replace every occurrence instead of just the first; default false"`
}

// FindReplaceResult is the MCP response for find and replace.
type FindReplaceResult struct {
	Found   bool   `json:"found"`
	Message string `json:"message"`
}

// ToggleArgs contains parameters for toggling bold or italic.
type ToggleArgs struct {
	// No parameters needed
}

// ToggleResult is the MCP response for toggling bold or italic.
type ToggleResult struct {
	Enabled bool   `json:"enabled"`
	Message string `json:"message"`
}

// ToggleUnderlineArgs contains parameters for toggling underline.
type ToggleUnderlineArgs struct {
	Style *int `json:"style,omitempty" jsonschema_description:"Word underline style code (0=none, 1=single, 2=words, 3=double, 4=dotted, 6=thick, 7=dash, 9=dot-dash, 10=dot-dot-dash, 11=wavy); default 1 (single)"`
}

// ToggleUnderlineResult is the MCP response for toggling underline.
type ToggleUnderlineResult struct {
	Style   string `json:"style"`
	Message string `json:"message"`
}

// SetFontArgs contains parameters for setting the selection font.
type SetFontArgs struct {
	Name string  `json:"name,omitempty" jsonschema_description:"Font family name, e.g. 'Calibri'; empty leaves the name unchanged"`
	Size float64 `json:"size,omitempty" jsonschema_description:"Font size in points; zero or negative leaves the size unchanged"`
}

// SetFontResult is the MCP response for setting the font.
type SetFontResult struct {
	Message string `json:"message"`
}
