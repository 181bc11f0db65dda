package response

type APIError struct {
	Message string      `json:"message"`
	Kind    string      `json:"kind,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Message is the landing payload when no static client is bundled.
type Message struct {
	Message string `json:"message"`
}
