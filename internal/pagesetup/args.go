package pagesetup

// SetMarginsArgs contains parameters for setting page margins.
type SetMarginsArgs struct {
	Top    *float64 `json:"top,omitempty" jsonschema_description:"Top margin in points; omit to leave unchanged"`
	Bottom *float64 `json:"bottom,omitempty" jsonschema_description:"Bottom margin in points; omit to leave unchanged"`
	Left   *float64 `json:"left,omitempty" jsonschema_description:"Left margin in points; omit to leave unchanged"`
	Right  *float64 `json:"right,omitempty" jsonschema_description:"Right margin in points; omit to leave unchanged"`
}

// SetMarginsResult is the MCP response for setting margins.
type SetMarginsResult struct {
	Message string `json:"message"`
}

// SetOrientationArgs contains parameters for setting page orientation.
type SetOrientationArgs struct {
	Orientation int `json:"orientation" jsonschema:"required" jsonschema_description:"Word orientation code (0=portrait, 1=landscape)"`
}

// SetOrientationResult is the MCP response for setting orientation.
type SetOrientationResult struct {
	Orientation string `json:"orientation"`
	Message     string `json:"message"`
}

// SetPaperSizeArgs contains parameters for setting the paper size.
type SetPaperSizeArgs struct {
	PaperSize int `json:"paper_size" jsonschema:"required" jsonschema_description:"Word paper size code (2=letter, 4=legal, 6=A3, 7=A4, 8=A5)"`
}

// SetPaperSizeResult is the MCP response for setting the paper size.
type SetPaperSizeResult struct {
	PaperSize string `json:"paper_size"`
	Message   string `json:"message"`
}
