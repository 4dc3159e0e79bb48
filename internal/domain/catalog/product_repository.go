package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByName finds a product by its unique name
	FindByName(ctx context.Context, name string) (*Product, error)

	// FindAll returns all products ordered by creation time
	FindAll(ctx context.Context) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product; the product's inventory batches are
	// removed by the storage-level cascade
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByName checks whether a product with the given name exists
	ExistsByName(ctx context.Context, name string) (bool, error)
}
