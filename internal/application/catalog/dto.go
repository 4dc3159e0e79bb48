package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockbill/backend/internal/domain/catalog"
)

// CreateProductRequest is the input for product creation
type CreateProductRequest struct {
	Name            string  `json:"name" binding:"required,max=200"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" binding:"gte=0"`
	InitialQuantity int64   `json:"initial_quantity" binding:"gte=0"`
}

// UpdateProductRequest is the input for product updates
type UpdateProductRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	InitialQuantity int64           `json:"initial_quantity"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToProductResponse maps a domain product to its response shape
func ToProductResponse(product *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:              product.ID,
		Name:            product.Name,
		Description:     product.Description,
		Price:           product.Price,
		InitialQuantity: product.InitialQuantity,
		CreatedAt:       product.CreatedAt,
		UpdatedAt:       product.UpdatedAt,
	}
}

// ToProductResponses maps a slice of domain products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, ToProductResponse(&products[i]))
	}
	return responses
}
