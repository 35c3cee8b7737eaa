package utils

// ErrorResponse is the JSON error envelope returned by handlers that need
// to carry both a user-facing message and the underlying error.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
