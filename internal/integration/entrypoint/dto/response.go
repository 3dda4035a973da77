// Package dto defines data transfer objects for API requests and responses.
package dto

// dateLayout is the calendar date format used in responses.
const dateLayout = "2006-01-02"

// Response is the envelope of every successful API response.
type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}
