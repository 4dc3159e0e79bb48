package billing

import (
	"context"
)

// BillRepository defines the interface for bill persistence
type BillRepository interface {
	// Create persists a bill together with its line items
	Create(ctx context.Context, bill *Bill) error

	// FindAll returns all bills ordered by bill date descending,
	// each with its nested line items
	FindAll(ctx context.Context) ([]Bill, error)
}
