package client

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError represents an error returned by the API
type APIError struct {
	StatusCode int             `json:"-"`
	Message    string          `json:"error"`
	Details    json.RawMessage `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %s (status: %d)", e.Message, e.StatusCode)
}

// FieldErrors decodes validation details, if any
func (e *APIError) FieldErrors() []FieldError {
	var out []FieldError
	if len(e.Details) > 0 {
		_ = json.Unmarshal(e.Details, &out)
	}
	return out
}

// IsInvalidRequest returns true for 400 responses such as an unknown action
func (e *APIError) IsInvalidRequest() bool {
	return e.StatusCode == http.StatusBadRequest
}

// IsNotFound returns true if the error is a 404 not found error
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsRateLimited returns true if the client exceeded its request budget
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// IsServerError returns true if the error is a 5xx server error
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}
