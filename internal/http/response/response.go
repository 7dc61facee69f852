// Package response contains the JSON bodies shared by the HTTP handlers.
// Successful reads answer with the bare record or list; only errors and
// service status use an envelope.
package response

// ErrorResponse is the structured error body, e.g. {"error": "Marathon not
// found"}. Detail beyond the message stays in the server log.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error builds an error body with the given message.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// StatusResponse is the health/status body.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// OK builds a status body with an optional human-readable message.
func OK(msg string) StatusResponse {
	return StatusResponse{Status: "ok", Message: msg}
}
