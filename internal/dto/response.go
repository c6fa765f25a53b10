package dto

import "time"

// Response is the uniform envelope wrapping every API response.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Errors     []string    `json:"errors,omitempty"`
	StatusCode int         `json:"statusCode"`
	Timestamp  time.Time   `json:"timestamp"`
}

// NewSuccessResponse builds a success envelope.
func NewSuccessResponse(statusCode int, message string, data interface{}) Response {
	return Response{
		Success:    true,
		Message:    message,
		Data:       data,
		StatusCode: statusCode,
		Timestamp:  time.Now().UTC(),
	}
}

// NewErrorResponse builds a failure envelope with optional field-level
// error messages.
func NewErrorResponse(statusCode int, message string, errs ...string) Response {
	return Response{
		Success:    false,
		Message:    message,
		Errors:     errs,
		StatusCode: statusCode,
		Timestamp:  time.Now().UTC(),
	}
}
