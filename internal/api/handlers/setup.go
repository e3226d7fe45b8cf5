package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/afrihackbox/mssp/internal/api/dto"
	"github.com/afrihackbox/mssp/internal/domain/setup"
	"github.com/afrihackbox/mssp/internal/pkg/errors"
	"github.com/afrihackbox/mssp/internal/pkg/logger"
	"github.com/afrihackbox/mssp/internal/pkg/metrics"
	"github.com/afrihackbox/mssp/internal/pkg/utils"
	"github.com/afrihackbox/mssp/internal/pkg/validator"
)

// SetupHandler validates organization onboarding submissions
type SetupHandler struct {
	service   setup.Service
	logger    *logger.Logger
	validator *validator.Validator
}

// NewSetupHandler creates a new setup handler
func NewSetupHandler(service setup.Service, log *logger.Logger, val *validator.Validator) *SetupHandler {
	return &SetupHandler{service: service, logger: log, validator: val}
}

// Organization validates the organization setup form
// @Summary Validate organization setup
// @Description Validates the setup wizard submission and acknowledges it. Nothing is stored.
// @Tags Setup
// @Accept json
// @Produce json
// @Param request body dto.OrganizationSetupRequest true "Organization details"
// @Success 200 {object} dto.OrganizationSetupResponse "Setup validated"
// @Failure 400 {object} utils.ErrorResponse "Validation failed"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /setup/organization [post]
func (h *SetupHandler) Organization(w http.ResponseWriter, r *http.Request) {
	var req dto.OrganizationSetupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RecordSetupSubmission("rejected")
		respondError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		metrics.RecordSetupSubmission("rejected")
		respondError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	receipt, err := h.service.Submit(r.Context(), toOrganization(req))
	if err != nil {
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, dto.OrganizationSetupResponse{
		Success:        true,
		Message:        receipt.Message,
		SetupID:        receipt.SetupID,
		EnabledModules: receipt.EnabledModules,
	})
}

func toOrganization(req dto.OrganizationSetupRequest) setup.Organization {
	modules := setup.DefaultModuleToggles()
	if m := req.SecurityModules; m != nil {
		modules = setup.ModuleToggles{
			EndpointProtection: m.EndpointProtection,
			EmailSecurity:      m.EmailSecurity,
			WebSecurity:        m.WebSecurity,
			BackupRecovery:     m.BackupRecovery,
		}
	}

	return setup.Organization{
		Name:                   req.OrganizationName,
		Domain:                 req.Domain,
		Industry:               req.Industry,
		EmployeeCount:          req.EmployeeCount,
		ComplianceRequirements: req.ComplianceRequirements,
		SecurityModules:        modules,
	}
}
