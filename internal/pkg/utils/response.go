package utils

import (
	"encoding/json"
	"net/http"

	"github.com/afrihackbox/mssp/internal/pkg/errors"
)

// ActionResponse is the acknowledgment body for accepted actions
type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ScanID  string `json:"scanId,omitempty"`
}

// ErrorResponse represents an error API response
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// WriteError writes an error JSON response from AppError
func WriteError(w http.ResponseWriter, err *errors.AppError) error {
	return WriteJSON(w, err.StatusCode, ErrorResponse{
		Error:   err.Message,
		Details: err.Details,
	})
}

// WriteErrorMessage writes a simple error message
func WriteErrorMessage(w http.ResponseWriter, status int, message string) error {
	return WriteJSON(w, status, ErrorResponse{Error: message})
}
