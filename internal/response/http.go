package response

// APIResponse is the envelope every reporting endpoint returns: core rows,
// invoice rows, change order rows and sync history all share it.
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
