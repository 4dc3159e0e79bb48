package persistence

import (
	"context"

	appbilling "github.com/stockbill/backend/internal/application/billing"
	"github.com/stockbill/backend/internal/domain/billing"
	"github.com/stockbill/backend/internal/domain/catalog"
	"github.com/stockbill/backend/internal/domain/inventory"
	"gorm.io/gorm"
)

// BillingTransactionScope implements appbilling.TransactionScope backed
// by a GORM transaction.
type BillingTransactionScope struct {
	db *Database
}

// NewBillingTransactionScope creates a new transaction scope for billing operations
func NewBillingTransactionScope(db *Database) *BillingTransactionScope {
	return &BillingTransactionScope{db: db}
}

// Execute runs fn within a single database transaction. All repositories
// handed to fn share the transaction; an error from fn rolls back every
// write made through them.
func (s *BillingTransactionScope) Execute(ctx context.Context, fn func(repos appbilling.TransactionalRepositories) error) error {
	return s.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&transactionalRepositories{tx: tx})
	})
}

// transactionalRepositories provides repositories scoped to one transaction
type transactionalRepositories struct {
	tx *gorm.DB
}

func (r *transactionalRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *transactionalRepositories) BatchRepo() inventory.StockBatchRepository {
	return NewGormStockBatchRepository(r.tx)
}

func (r *transactionalRepositories) BillRepo() billing.BillRepository {
	return NewGormBillRepository(r.tx)
}
