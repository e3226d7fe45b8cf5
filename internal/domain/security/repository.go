package security

import "context"

// Repository defines read access to the telemetry dataset
type Repository interface {
	// GetMetrics returns the aggregate counters
	GetMetrics(ctx context.Context) (Metrics, error)

	// ListThreats returns the first limit threats; limit < 1 returns all
	ListThreats(ctx context.Context, limit int) ([]Threat, error)

	// ListAlerts returns the first limit alerts; limit < 1 returns all
	ListAlerts(ctx context.Context, limit int) ([]Alert, error)

	// ListModules returns the security module catalog
	ListModules(ctx context.Context) ([]Module, error)

	// Counts returns the size of each collection
	Counts(ctx context.Context) (map[string]int, error)
}
