package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockbill/backend/internal/domain/shared"
)

// Bill is an immutable record of a completed sale. Bills are only ever
// created and read.
type Bill struct {
	shared.BaseEntity
	CustomerName string          `gorm:"type:varchar(200);not null"`
	BillDate     time.Time       `gorm:"not null;index"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Final total after discount and tax
	Discount     decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0"`
	Tax          decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0"`
	Items        []BillItem      `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Bill) TableName() string {
	return "bills"
}

// BillItem is one line of a bill. It snapshots the unit price and the
// product's display data at sale time, so bill history survives later
// catalog changes and product deletion. There is intentionally no
// foreign key back to products.
type BillItem struct {
	shared.BaseEntity
	BillID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID          uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName        string          `gorm:"type:varchar(200);not null"`
	ProductDescription string          `gorm:"type:text"`
	Quantity           int64           `gorm:"not null"`
	PriceAtPurchase    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (BillItem) TableName() string {
	return "bill_items"
}

// NewBill creates a bill for the given customer with the current timestamp.
// Discount and tax are accepted as-is; no range is enforced, so a discount
// above 1 produces a negative total.
func NewBill(customerName string, discount, tax decimal.Decimal) (*Bill, error) {
	if customerName == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer name cannot be empty")
	}

	return &Bill{
		BaseEntity:   shared.NewBaseEntity(),
		CustomerName: customerName,
		BillDate:     time.Now(),
		TotalAmount:  decimal.Zero,
		Discount:     discount,
		Tax:          tax,
	}, nil
}

// AddItem appends a line item with a price snapshot of the product
func (b *Bill) AddItem(productID uuid.UUID, productName, productDescription string, quantity int64, priceAtPurchase decimal.Decimal) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be a positive integer")
	}

	b.Items = append(b.Items, BillItem{
		BaseEntity:         shared.NewBaseEntity(),
		BillID:             b.ID,
		ProductID:          productID,
		ProductName:        productName,
		ProductDescription: productDescription,
		Quantity:           quantity,
		PriceAtPurchase:    priceAtPurchase,
	})

	return nil
}

// Subtotal returns the sum of price * quantity across all items
func (b *Bill) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range b.Items {
		subtotal = subtotal.Add(item.PriceAtPurchase.Mul(decimal.NewFromInt(item.Quantity)))
	}
	return subtotal
}

// Finalize computes the final total from the current items:
// subtotal * (1 - discount) * (1 + tax)
func (b *Bill) Finalize() {
	one := decimal.NewFromInt(1)
	afterDiscount := b.Subtotal().Mul(one.Sub(b.Discount))
	b.TotalAmount = afterDiscount.Mul(one.Add(b.Tax))
}
