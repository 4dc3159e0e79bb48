package catalog

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stockbill/backend/internal/domain/shared"
)

// Product represents a sellable product in the catalog.
// It is the aggregate root for product-related operations.
type Product struct {
	shared.BaseEntity
	Name            string          `gorm:"type:varchar(200);not null;uniqueIndex"`
	Description     string          `gorm:"type:text"`
	Price           decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	InitialQuantity int64           `gorm:"not null;default:0"` // Creation-time hint only; stock lives in batches
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name, description string, price decimal.Decimal, initialQuantity int64) (*Product, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if initialQuantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Initial quantity cannot be negative")
	}

	return &Product{
		BaseEntity:      shared.NewBaseEntity(),
		Name:            name,
		Description:     description,
		Price:           price,
		InitialQuantity: initialQuantity,
	}, nil
}

// Update updates the product's name, description and price
func (p *Product) Update(name, description string, price decimal.Decimal) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := validatePrice(price); err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.Price = price
	p.UpdatedAt = time.Now()

	return nil
}

// validateName validates the product name
func validateName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

// validatePrice validates the unit price
func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	return nil
}
