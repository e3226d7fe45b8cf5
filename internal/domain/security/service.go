package security

import "context"

// Service defines the responder's operations
type Service interface {
	// Query returns the records selected by q. It has no side effects.
	Query(ctx context.Context, q Query) (QueryResult, error)

	// Dispatch acknowledges an action without touching the dataset
	Dispatch(ctx context.Context, a Action) (ActionResult, error)

	// Modules returns the security module catalog
	Modules(ctx context.Context) ([]Module, error)

	// Ready reports whether the dataset is loaded, with collection sizes
	Ready(ctx context.Context) (map[string]int, error)
}
