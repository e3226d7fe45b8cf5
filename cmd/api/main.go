package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/afrihackbox/mssp/internal/api/handlers"
	"github.com/afrihackbox/mssp/internal/api/middleware"
	"github.com/afrihackbox/mssp/internal/api/router"
	"github.com/afrihackbox/mssp/internal/config"
	"github.com/afrihackbox/mssp/internal/domain/security"
	"github.com/afrihackbox/mssp/internal/pkg/logger"
	"github.com/afrihackbox/mssp/internal/pkg/metrics"
	"github.com/afrihackbox/mssp/internal/pkg/validator"
	"github.com/afrihackbox/mssp/internal/repository/fixture"
	"github.com/afrihackbox/mssp/internal/repository/memory"
	"github.com/afrihackbox/mssp/internal/services"
)

// @title MSSP Security API
// @version 1.0
// @description Mock security telemetry and action acknowledgments for the MSSP dashboard.
// @BasePath /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		OutputPath: cfg.Logging.OutputPath,
	})

	if err := run(cfg, log); err != nil {
		log.ErrorWithErr(err, "Server exited with error")
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	dataset, err := loadDataset(cfg.Dataset, log)
	if err != nil {
		return err
	}
	for collection, n := range dataset.Counts() {
		metrics.SetDatasetRecords(collection, n)
	}

	securityRepo := memory.NewSecurityRepository(dataset)
	securityService := services.NewSecurityService(securityRepo, log)
	setupService := services.NewSetupService(log)

	val := validator.New()
	h := &router.Handlers{
		Health:   handlers.NewHealthHandler(securityService, log),
		Security: handlers.NewSecurityHandler(securityService, log, val),
		Setup:    handlers.NewSetupHandler(setupService, log, val),
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	if err := limiter.StartCleanup(cfg.RateLimit.CleanupSchedule, log); err != nil {
		return err
	}
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.New(cfg, log, h, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(map[string]interface{}{
			"addr":        srv.Addr,
			"environment": cfg.Server.Environment,
		}).Info("Starting MSSP security API")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}

func loadDataset(cfg config.DatasetConfig, log *logger.Logger) (*security.Dataset, error) {
	now := time.Now()
	if cfg.FixturePath == "" {
		log.Info("Using built-in security dataset")
		return security.Seed(now), nil
	}

	dataset, err := fixture.LoadFile(cfg.FixturePath, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset fixture: %w", err)
	}
	log.With("path", cfg.FixturePath).Info("Loaded security dataset fixture")
	return dataset, nil
}
