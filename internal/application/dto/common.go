package dto

// ErrorResponse is the HTTP error body: a machine code plus a human message
// under "error", which is what the frontend surfaces inline.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"error"`
}
