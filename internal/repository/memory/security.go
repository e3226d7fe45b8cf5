package memory

import (
	"context"

	"github.com/afrihackbox/mssp/internal/domain/security"
)

// SecurityRepository serves a fixed dataset from memory. It holds no lock:
// the dataset is immutable and every read returns copies.
type SecurityRepository struct {
	dataset *security.Dataset
}

// NewSecurityRepository creates a repository over dataset
func NewSecurityRepository(dataset *security.Dataset) security.Repository {
	return &SecurityRepository{dataset: dataset}
}

// GetMetrics returns the aggregate counters
func (r *SecurityRepository) GetMetrics(ctx context.Context) (security.Metrics, error) {
	if err := r.check(ctx); err != nil {
		return security.Metrics{}, err
	}
	return r.dataset.Metrics(), nil
}

// ListThreats returns the first limit threats
func (r *SecurityRepository) ListThreats(ctx context.Context, limit int) ([]security.Threat, error) {
	if err := r.check(ctx); err != nil {
		return nil, err
	}
	return r.dataset.Threats(limit), nil
}

// ListAlerts returns the first limit alerts
func (r *SecurityRepository) ListAlerts(ctx context.Context, limit int) ([]security.Alert, error) {
	if err := r.check(ctx); err != nil {
		return nil, err
	}
	return r.dataset.Alerts(limit), nil
}

// ListModules returns the module catalog
func (r *SecurityRepository) ListModules(ctx context.Context) ([]security.Module, error) {
	if err := r.check(ctx); err != nil {
		return nil, err
	}
	return r.dataset.Modules(), nil
}

// Counts returns the size of each collection
func (r *SecurityRepository) Counts(ctx context.Context) (map[string]int, error) {
	if err := r.check(ctx); err != nil {
		return nil, err
	}
	return r.dataset.Counts(), nil
}

func (r *SecurityRepository) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.dataset == nil {
		return security.ErrDatasetNotLoaded
	}
	return nil
}
