package request

// QueryRequest carries a free-form prompt. No length or content constraint
// is enforced.
type QueryRequest struct {
	Prompt string `json:"prompt"`
}
