package response

// ForwardResponse is the raw model reply of the forwarder.
type ForwardResponse struct {
	Response string `json:"response"`
}

// VisualizationResponse is the visualizer answer. Visualization stays null
// for the guidance message and column listings.
type VisualizationResponse struct {
	Visualization *string `json:"visualization"`
	Description   string  `json:"description"`
}

// UploadResponse lists the uploaded columns and a preview of the first rows.
type UploadResponse struct {
	Columns []string         `json:"columns"`
	Sample  []map[string]any `json:"sample"`
}
