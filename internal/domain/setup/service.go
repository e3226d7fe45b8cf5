package setup

import "context"

// Service defines organization setup operations
type Service interface {
	// Submit acknowledges a validated organization submission
	Submit(ctx context.Context, org Organization) (Receipt, error)
}
