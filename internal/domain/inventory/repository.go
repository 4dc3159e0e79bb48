package inventory

import (
	"context"

	"github.com/google/uuid"
)

// StockBatchRepository defines the interface for stock batch persistence
type StockBatchRepository interface {
	// FindByID finds a batch by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*StockBatch, error)

	// FindByProductAndNumber finds a batch by product and batch number
	FindByProductAndNumber(ctx context.Context, productID uuid.UUID, batchNumber string) (*StockBatch, error)

	// FindByProduct returns a product's batches in ascending insertion order
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]StockBatch, error)

	// FindByProductLocked returns a product's batches in ascending insertion
	// order, locking the rows for the duration of the enclosing transaction
	FindByProductLocked(ctx context.Context, productID uuid.UUID) ([]StockBatch, error)

	// FindAll returns all batches in ascending insertion order
	FindAll(ctx context.Context) ([]StockBatch, error)

	// Save creates or updates a batch
	Save(ctx context.Context, batch *StockBatch) error

	// UpdateQuantity sets a batch's quantity
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int64) error

	// Delete removes a batch
	Delete(ctx context.Context, id uuid.UUID) error
}
