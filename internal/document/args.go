package document

// CreateArgs contains parameters for creating a document.
type CreateArgs struct {
	// No parameters needed
}

// CreateResult is the MCP response for creating a document.
type CreateResult struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// OpenArgs contains parameters for opening a document.
type OpenArgs struct {
	Path string `json:"path" jsonschema:"required" jsonschema_description:"Absolute path of the document to open"`
}

// OpenResult is the MCP response for opening a document.
type OpenResult struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// SaveArgs contains parameters for saving the active document.
type SaveArgs struct {
	// No parameters needed
}

// SaveResult is the MCP response for saving.
type SaveResult struct {
	Message string `json:"message"`
}

// SaveAsArgs contains parameters for saving under a new path.
type SaveAsArgs struct {
	Path   string `json:"path" jsonschema:"required" jsonschema_description:"Absolute path to save the document to"`
	Format *int   `json:"format,omitempty" jsonschema_description:"Word save format code (0=doc, 2=txt, 6=rtf, 16=docx, 17=pdf); default 16 (docx)"`
}

// SaveAsResult is the MCP response for save-as.
type SaveAsResult struct {
	Path    string `json:"path"`
	Format  string `json:"format"`
	Message string `json:"message"`
}

// CloseArgs contains parameters for closing the active document.
type CloseArgs struct {
	SaveOption *int `json:"save_option,omitempty" jsonschema_description:"Word save option code (0=do not save, -1=save changes, -2=prompt); default 0"`
}

// CloseResult is the MCP response for closing.
type CloseResult struct {
	Closed  bool   `json:"closed"`
	Message string `json:"message"`
}

// QuitArgs contains parameters for quitting Word.
type QuitArgs struct {
	// No parameters needed
}

// QuitResult is the MCP response for quitting.
type QuitResult struct {
	Message string `json:"message"`
}

// InfoArgs contains parameters for the document info request.
type InfoArgs struct {
	// No parameters needed
}

// InfoResult is the MCP response describing the active document.
type InfoResult struct {
	Name             string `json:"name"`
	FullName         string `json:"full_name"`
	Saved            bool   `json:"saved"`
	ParagraphCount   int    `json:"paragraph_count"`
	TableCount       int    `json:"table_count"`
	InlineShapeCount int    `json:"inline_shape_count"`
}
