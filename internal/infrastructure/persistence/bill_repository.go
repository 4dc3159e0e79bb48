package persistence

import (
	"context"

	"github.com/stockbill/backend/internal/domain/billing"
	"gorm.io/gorm"
)

// GormBillRepository implements billing.BillRepository using GORM
type GormBillRepository struct {
	db *gorm.DB
}

// NewGormBillRepository creates a new GORM-based bill repository
func NewGormBillRepository(db *gorm.DB) *GormBillRepository {
	return &GormBillRepository{db: db}
}

// Create persists a bill together with its line items
func (r *GormBillRepository) Create(ctx context.Context, bill *billing.Bill) error {
	return r.db.WithContext(ctx).Create(bill).Error
}

// FindAll returns all bills ordered by bill date descending, each with
// its nested line items
func (r *GormBillRepository) FindAll(ctx context.Context) ([]billing.Bill, error) {
	var bills []billing.Bill
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("bill_date DESC").
		Find(&bills).Error
	if err != nil {
		return nil, err
	}
	return bills, nil
}
