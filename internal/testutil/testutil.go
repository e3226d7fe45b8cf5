package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/afrihackbox/mssp/internal/domain/security"
	"github.com/afrihackbox/mssp/internal/pkg/logger"
)

// FixedNow is the clock reading used by test datasets
var FixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// NewLogger returns a logger that only emits errors, as JSON
func NewLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: "json"})
}

// NewSeedDataset returns the built-in seed data at FixedNow
func NewSeedDataset() *security.Dataset {
	return security.Seed(FixedNow)
}

// NewLargeDataset returns a dataset with n threats and n alerts, ids "1".."n"
func NewLargeDataset(n int) *security.Dataset {
	threats := make([]security.Threat, n)
	alerts := make([]security.Alert, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("%d", i+1)
		threats[i] = security.Threat{
			ID:          id,
			Type:        security.ThreatIntrusion,
			Severity:    security.SeverityLow,
			Source:      fmt.Sprintf("10.0.0.%d", i+1),
			Target:      "Gateway",
			Timestamp:   FixedNow.Add(-time.Duration(i) * time.Minute),
			Status:      security.ThreatInvestigating,
			Description: "Port scan",
		}
		alerts[i] = security.Alert{
			ID:        id,
			Title:     "Port scan",
			Message:   "Repeated connection attempts",
			Severity:  security.AlertWarning,
			Timestamp: FixedNow.Add(-time.Duration(i) * time.Minute),
			Module:    "Web Security",
		}
	}
	metrics := security.Metrics{
		TotalThreatsBlocked: n,
		ActiveProtections:   4,
		DevicesProtected:    n,
		LastScanTime:        FixedNow,
		ThreatTrend:         security.TrendIncreasing,
		ComplianceScore:     50,
	}
	return security.NewDataset(metrics, threats, alerts, nil)
}

// SequenceIDs returns an id generator yielding "id-1", "id-2", ...
func SequenceIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// FailingSecurityRepository fails every call with Err
type FailingSecurityRepository struct {
	Err error
}

// NewFailingSecurityRepository creates a repository that always returns err
func NewFailingSecurityRepository(err error) *FailingSecurityRepository {
	return &FailingSecurityRepository{Err: err}
}

func (r *FailingSecurityRepository) GetMetrics(ctx context.Context) (security.Metrics, error) {
	return security.Metrics{}, r.Err
}

func (r *FailingSecurityRepository) ListThreats(ctx context.Context, limit int) ([]security.Threat, error) {
	return nil, r.Err
}

func (r *FailingSecurityRepository) ListAlerts(ctx context.Context, limit int) ([]security.Alert, error) {
	return nil, r.Err
}

func (r *FailingSecurityRepository) ListModules(ctx context.Context) ([]security.Module, error) {
	return nil, r.Err
}

func (r *FailingSecurityRepository) Counts(ctx context.Context) (map[string]int, error) {
	return nil, r.Err
}
