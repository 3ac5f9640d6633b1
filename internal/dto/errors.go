package dto

// ErrorResponse is the body of every failed request.
// Reason and Line are set when a journal entry broke a double-entry rule.
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
	Line   int    `json:"line,omitempty"`
}
