package inventory

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddBatchRequest is the input for adding or merging a stock batch
type AddBatchRequest struct {
	ProductID   uuid.UUID `json:"product_id" binding:"required"`
	BatchNumber string    `json:"batch_number" binding:"required,max=100"`
	Quantity    int64     `json:"quantity" binding:"required,gt=0"`
}

// BatchResponse represents a stock batch joined with its product data
type BatchResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	BatchNumber string          `json:"batch_number"`
	Quantity    int64           `json:"quantity"`
}

// AddBatchResponse reports whether a batch was created or merged
type AddBatchResponse struct {
	Batch  BatchResponse `json:"batch"`
	Merged bool          `json:"merged"`
}
