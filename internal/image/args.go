package image

// InsertPictureArgs contains parameters for inserting a picture.
type InsertPictureArgs struct {
	Path             string `json:"path" jsonschema:"required" jsonschema_description:"Absolute path of the image file to insert"`
	LinkToFile       bool   `json:"link_to_file,omitempty" jsonschema_description:"Link to the file instead of embedding it; default false"`
	SaveWithDocument *bool  `json:"save_with_document,omitempty" jsonschema_description:"Store the image inside the document; default true"`
}

// InsertPictureResult is the MCP response for inserting a picture.
type InsertPictureResult struct {
	ShapeIndex int    `json:"shape_index"`
	Message    string `json:"message"`
}

// SetPictureSizeArgs contains parameters for resizing an inline picture.
type SetPictureSizeArgs struct {
	ShapeIndex      int     `json:"shape_index" jsonschema:"required" jsonschema_description:"1-based inline shape index in the document"`
	Height          float64 `json:"height,omitempty" jsonschema_description:"Target height in points; zero or negative leaves the height unchanged"`
	Width           float64 `json:"width,omitempty" jsonschema_description:"Target width in points; zero or negative leaves the width unchanged"`
	LockAspectRatio bool    `json:"lock_aspect_ratio,omitempty" jsonschema_description:"Preserve the original aspect ratio; with both dimensions given, the one that scales the picture more wins"`
}

// SetPictureSizeResult is the MCP response for resizing a picture.
type SetPictureSizeResult struct {
	Height  float64 `json:"height"`
	Width   float64 `json:"width"`
	Message string  `json:"message"`
}
