package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockbill/backend/internal/domain/billing"
)

// BillLineRequest is one requested line of a bill
type BillLineRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int64     `json:"quantity" binding:"required"`
}

// GenerateBillRequest is the input for bill generation
type GenerateBillRequest struct {
	CustomerName string            `json:"customer_name" binding:"required"`
	Items        []BillLineRequest `json:"items" binding:"required,min=1,dive"`
	Discount     float64           `json:"discount"`
	TaxRate      float64           `json:"tax_rate"`
}

// GenerateBillResponse is returned after a successful bill generation
type GenerateBillResponse struct {
	BillID      uuid.UUID       `json:"bill_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// BillItemResponse is one line item of a stored bill
type BillItemResponse struct {
	Quantity        int64           `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase"`
	ProductName     string          `json:"product_name"`
	Description     string          `json:"description"`
}

// BillResponse is a stored bill with its nested line items
type BillResponse struct {
	ID           uuid.UUID          `json:"id"`
	CustomerName string             `json:"customer_name"`
	BillDate     time.Time          `json:"bill_date"`
	TotalAmount  decimal.Decimal    `json:"total_amount"`
	Discount     decimal.Decimal    `json:"discount"`
	Tax          decimal.Decimal    `json:"tax"`
	Items        []BillItemResponse `json:"items"`
}

// ToBillResponse maps a domain bill to its response shape
func ToBillResponse(bill *billing.Bill) BillResponse {
	items := make([]BillItemResponse, 0, len(bill.Items))
	for _, item := range bill.Items {
		items = append(items, BillItemResponse{
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase,
			ProductName:     item.ProductName,
			Description:     item.ProductDescription,
		})
	}

	return BillResponse{
		ID:           bill.ID,
		CustomerName: bill.CustomerName,
		BillDate:     bill.BillDate,
		TotalAmount:  bill.TotalAmount,
		Discount:     bill.Discount,
		Tax:          bill.Tax,
		Items:        items,
	}
}

// ToBillResponses maps a slice of domain bills
func ToBillResponses(bills []billing.Bill) []BillResponse {
	responses := make([]BillResponse, 0, len(bills))
	for i := range bills {
		responses = append(responses, ToBillResponse(&bills[i]))
	}
	return responses
}
