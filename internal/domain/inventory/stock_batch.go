package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/stockbill/backend/internal/domain/shared"
)

// StockBatch represents a discrete lot of stock for one product.
// Batches are consumed in ascending insertion order (FIFO); a batch whose
// quantity reaches zero is deleted rather than kept as a zero-row.
type StockBatch struct {
	shared.BaseEntity
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_batch_product_number,priority:1"`
	BatchNumber string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_batch_product_number,priority:2"`
	Quantity    int64     `gorm:"not null"`
	Sequence    int64     `gorm:"autoIncrement;uniqueIndex"` // Insertion order, drives FIFO consumption
}

// TableName returns the table name for GORM
func (StockBatch) TableName() string {
	return "inventory"
}

// NewStockBatch creates a new stock batch
func NewStockBatch(productID uuid.UUID, batchNumber string, quantity int64) (*StockBatch, error) {
	if batchNumber == "" {
		return nil, shared.NewDomainError("INVALID_BATCH_NUMBER", "Batch number cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be a positive integer")
	}

	return &StockBatch{
		BaseEntity:  shared.NewBaseEntity(),
		ProductID:   productID,
		BatchNumber: batchNumber,
		Quantity:    quantity,
	}, nil
}

// Add increases the batch quantity (merging a restock into an existing lot)
func (b *StockBatch) Add(quantity int64) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be a positive integer")
	}
	b.Quantity += quantity
	b.UpdatedAt = time.Now()
	return nil
}

// HasStock returns true if the batch has available quantity
func (b *StockBatch) HasStock() bool {
	return b.Quantity > 0
}
