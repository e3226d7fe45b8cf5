package router

import (
	"net/http"

	_ "github.com/afrihackbox/mssp/docs"
	"github.com/afrihackbox/mssp/internal/api/handlers"
	"github.com/afrihackbox/mssp/internal/api/middleware"
	"github.com/afrihackbox/mssp/internal/config"
	"github.com/afrihackbox/mssp/internal/pkg/errors"
	"github.com/afrihackbox/mssp/internal/pkg/logger"
	"github.com/afrihackbox/mssp/internal/pkg/metrics"
	"github.com/afrihackbox/mssp/internal/pkg/utils"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Handlers groups the HTTP handlers mounted by New
type Handlers struct {
	Health   *handlers.HealthHandler
	Security *handlers.SecurityHandler
	Setup    *handlers.SetupHandler
}

// New builds the HTTP routes. A nil limiter disables rate limiting.
func New(cfg *config.Config, log *logger.Logger, h *Handlers, limiter *middleware.RateLimiter) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	if cfg.Features.MetricsEnabled {
		r.Use(metrics.Middleware)
	}
	r.Use(middleware.SecurityHeaders(cfg.Server.IsProduction()))
	r.Use(middleware.DefaultCORS(cfg.Server.FrontendURL))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, errors.NotFound("Route"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, errors.MethodNotAllowed(r.Method))
	})

	// Operational routes are never rate limited
	r.Get("/health", h.Health.Healthz)
	r.Get("/healthz", h.Health.Healthz)
	r.Get("/readyz", h.Health.Readyz)

	if cfg.Features.MetricsEnabled {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}
	if cfg.Features.SwaggerEnabled {
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	r.Route("/api", func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware())
		}

		r.Route("/security", func(r chi.Router) {
			r.Get("/", h.Security.Get)
			r.Post("/", h.Security.Post)
			r.Get("/modules", h.Security.Modules)
		})

		r.Post("/setup/organization", h.Setup.Organization)
	})

	return r
}
