package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/afrihackbox/mssp/internal/api/dto"
	"github.com/afrihackbox/mssp/internal/domain/security"
	"github.com/afrihackbox/mssp/internal/pkg/logger"
	"github.com/afrihackbox/mssp/internal/pkg/utils"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	security security.Service
	logger   *logger.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(securityService security.Service, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		security: securityService,
		logger:   log,
	}
}

// Healthz handles liveness probe
// @Summary Liveness probe
// @Description Check if the application is alive
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Application is alive"
// @Router /health [get]
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// Readyz handles readiness probe
// @Summary Readiness probe
// @Description Check that the security dataset is loaded
// @Tags Health
// @Produce json
// @Success 200 {object} dto.ReadinessResponse "Application is ready"
// @Failure 503 {object} utils.ErrorResponse "Service unavailable"
// @Router /readyz [get]
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	counts, err := h.security.Ready(ctx)
	if err != nil {
		h.logger.ErrorWithErr(err, "Readiness check failed")
		utils.WriteErrorMessage(w, http.StatusServiceUnavailable, "Security dataset not loaded")
		return
	}

	utils.WriteJSON(w, http.StatusOK, dto.ReadinessResponse{
		Status:  "ready",
		Records: counts,
	})
}
