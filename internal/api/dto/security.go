package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ActionRequest represents a POST /api/security body
type ActionRequest struct {
	Action string          `json:"action" example:"quarantine"`
	Data   json.RawMessage `json:"data,omitempty" swaggertype:"object"`
}

// QuarantineData is the payload of a quarantine action
type QuarantineData struct {
	ThreatID ID `json:"threatId" validate:"notblank" example:"42"`
}

// ResolveAlertData is the payload of a resolve_alert action
type ResolveAlertData struct {
	AlertID ID `json:"alertId" validate:"notblank" example:"2"`
}

// ID is a record identifier sent either as a JSON string or a JSON number
type ID string

// UnmarshalJSON accepts "42" and 42 alike
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// ActionResponseDTO acknowledges an accepted action
type ActionResponseDTO struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Security scan initiated"`
	ScanID  string `json:"scanId,omitempty" example:"scan_6f1c9a52-2d0b-4d8e-9a57-0c1f8e3b7a41"`
}
