package table

// AddArgs contains parameters for adding a table.
type AddArgs struct {
	Rows int `json:"rows" jsonschema:"required" jsonschema_description:"Number of rows, at least 1"`
	Cols int `json:"cols" jsonschema:"required" jsonschema_description:"Number of columns, at least 1"`
}

// AddResult is the MCP response for adding a table.
type AddResult struct {
	TableIndex int    `json:"table_index"`
	Message    string `json:"message"`
}

// SetCellTextArgs contains parameters for writing one table cell.
type SetCellTextArgs struct {
	TableIndex int    `json:"table_index" jsonschema:"required" jsonschema_description:"1-based table index in the document"`
	Row        int    `json:"row" jsonschema:"required" jsonschema_description:"1-based row index"`
	Col        int    `json:"col" jsonschema:"required" jsonschema_description:"1-based column index"`
	Text       string `json:"text" jsonschema_description:"Text to place in the cell; empty clears it"`
}

// SetCellTextResult is the MCP response for writing a cell.
type SetCellTextResult struct {
	Message string `json:"message"`
}

// InsertRowArgs contains parameters for inserting a table row.
type InsertRowArgs struct {
	TableIndex int  `json:"table_index" jsonschema:"required" jsonschema_description:"1-based table index in the document"`
	Before     *int `json:"before,omitempty" jsonschema_description:"1-based row to insert above, up to row count + 1; omitted or row count + 1 appends"`
}

// InsertRowResult is the MCP response for inserting a row.
type InsertRowResult struct {
	Position int    `json:"position"`
	Message  string `json:"message"`
}

// InsertColumnArgs contains parameters for inserting a table column.
type InsertColumnArgs struct {
	TableIndex int  `json:"table_index" jsonschema:"required" jsonschema_description:"1-based table index in the document"`
	Before     *int `json:"before,omitempty" jsonschema_description:"1-based column to insert left of, up to column count + 1; omitted or column count + 1 appends"`
}

// InsertColumnResult is the MCP response for inserting a column.
type InsertColumnResult struct {
	Position int    `json:"position"`
	Message  string `json:"message"`
}

// ApplyStyleArgs contains parameters for styling a table.
type ApplyStyleArgs struct {
	TableIndex int    `json:"table_index" jsonschema:"required" jsonschema_description:"1-based table index in the document"`
	Style      string `json:"style" jsonschema:"required" jsonschema_description:"Built-in table format code (e.g. '16' for Grid 1) or a named table style (e.g. 'Table Grid')"`
	ApplyFlags *int   `json:"apply_flags,omitempty" jsonschema_description:"Bitmask of aspects a format code applies (1=borders, 2=shading, 4=font, 8=color, 16=autofit, 32=heading rows, 64=last row, 128=first column, 256=last column); default 63"`
}

// ApplyStyleResult is the MCP response for styling a table.
type ApplyStyleResult struct {
	Message string `json:"message"`
}
