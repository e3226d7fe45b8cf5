package handlers

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/afrihackbox/mssp/internal/api/dto"
	"github.com/afrihackbox/mssp/internal/domain/security"
	"github.com/afrihackbox/mssp/internal/pkg/errors"
	"github.com/afrihackbox/mssp/internal/pkg/logger"
	"github.com/afrihackbox/mssp/internal/pkg/metrics"
	"github.com/afrihackbox/mssp/internal/pkg/utils"
	"github.com/afrihackbox/mssp/internal/pkg/validator"
)

// SecurityHandler serves the dashboard's security data and actions
type SecurityHandler struct {
	service   security.Service
	logger    *logger.Logger
	validator *validator.Validator
}

// NewSecurityHandler creates a new security handler
func NewSecurityHandler(service security.Service, log *logger.Logger, val *validator.Validator) *SecurityHandler {
	return &SecurityHandler{service: service, logger: log, validator: val}
}

// Get returns security telemetry
// @Summary Get security data
// @Description Returns metrics, threats, alerts or a combination. Unknown or missing type returns metrics with the first 5 threats and alerts.
// @Tags Security
// @Produce json
// @Param type query string false "View: metrics, threats, alerts or all"
// @Param limit query int false "Maximum threats or alerts returned (default: 10, ignored for all)"
// @Success 200 {object} security.Bundle "Security data; metrics returns security.Metrics, threats and alerts return lists"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /security [get]
func (h *SecurityHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := security.Query{
		View:  security.View(r.URL.Query().Get("type")),
		Limit: utils.ParseLimit(r, "limit", security.DefaultListLimit),
	}

	result, err := h.service.Query(r.Context(), q)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, result.Body())
}

// Post acknowledges a security action
// @Summary Perform security action
// @Description Acknowledges scan, quarantine or resolve_alert. Nothing is executed and the dataset is unchanged.
// @Tags Security
// @Accept json
// @Produce json
// @Param request body dto.ActionRequest true "Action and its data"
// @Success 200 {object} dto.ActionResponseDTO "Action acknowledged"
// @Failure 400 {object} utils.ErrorResponse "Invalid action"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /security [post]
func (h *SecurityHandler) Post(w http.ResponseWriter, r *http.Request) {
	req, err := decodeActionRequest(r.Body)
	if err != nil {
		var typeErr *json.UnmarshalTypeError
		if stderrors.As(err, &typeErr) && (typeErr.Field == "" || typeErr.Field == "action") {
			h.reject(w, "unknown", errors.InvalidRequest("Invalid action"))
			return
		}
		h.logger.ErrorWithErr(err, "Failed to parse security action")
		respondError(w, errors.Internal(err))
		return
	}

	action, appErr := h.decodeAction(req)
	if appErr != nil {
		name := req.Action
		if !security.ActionName(name).Valid() {
			name = "unknown"
		}
		h.reject(w, name, appErr)
		return
	}

	result, err := h.service.Dispatch(r.Context(), action)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, dto.ActionResponseDTO{
		Success: true,
		Message: result.Message,
		ScanID:  result.ScanID,
	})
}

// decodeActionRequest reads exactly one JSON object. A JSON null or trailing
// content after the object is a parse failure.
func decodeActionRequest(body io.Reader) (dto.ActionRequest, error) {
	var req dto.ActionRequest
	raw, err := io.ReadAll(body)
	if err != nil {
		return req, err
	}
	if string(bytes.TrimSpace(raw)) == "null" {
		return req, stderrors.New("request body is null")
	}
	err = json.Unmarshal(raw, &req)
	return req, err
}

func (h *SecurityHandler) reject(w http.ResponseWriter, action string, err *errors.AppError) {
	metrics.RecordAction(action, "rejected")
	respondError(w, err)
}

// Modules returns the security module catalog
// @Summary List security modules
// @Description Returns the protection modules shown on the dashboard in catalog order
// @Tags Security
// @Produce json
// @Success 200 {array} security.Module "Security modules"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /security/modules [get]
func (h *SecurityHandler) Modules(w http.ResponseWriter, r *http.Request) {
	modules, err := h.service.Modules(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if modules == nil {
		modules = []security.Module{}
	}

	utils.WriteJSON(w, http.StatusOK, modules)
}

// decodeAction turns a request into one of the known actions
func (h *SecurityHandler) decodeAction(req dto.ActionRequest) (security.Action, *errors.AppError) {
	switch security.ActionName(req.Action) {
	case security.ActionScan:
		return security.ScanAction{}, nil
	case security.ActionQuarantine:
		var data dto.QuarantineData
		if err := h.decodeData(req.Data, &data); err != nil {
			return nil, err
		}
		return security.QuarantineAction{ThreatID: string(data.ThreatID)}, nil
	case security.ActionResolveAlert:
		var data dto.ResolveAlertData
		if err := h.decodeData(req.Data, &data); err != nil {
			return nil, err
		}
		return security.ResolveAlertAction{AlertID: string(data.AlertID)}, nil
	default:
		return nil, errors.InvalidRequest("Invalid action")
	}
}

func (h *SecurityHandler) decodeData(raw json.RawMessage, v interface{}) *errors.AppError {
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, v); err != nil {
			return errors.InvalidRequest("Invalid action data")
		}
	}
	if errs := h.validator.Validate(v); len(errs) > 0 {
		return errors.ValidationError("Invalid action data", errs)
	}
	return nil
}
