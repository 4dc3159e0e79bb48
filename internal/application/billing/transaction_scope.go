package billing

import (
	"context"

	"github.com/stockbill/backend/internal/domain/billing"
	"github.com/stockbill/backend/internal/domain/catalog"
	"github.com/stockbill/backend/internal/domain/inventory"
)

// TransactionScope provides transactional access to the repositories a
// bill generation touches. Everything executed inside one scope, from
// the reads that inform the deduction plan to the final write, commits
// or rolls back as a single unit.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the billing-relevant
// repositories within a transaction. All repositories returned share the
// same underlying database transaction.
type TransactionalRepositories interface {
	// ProductRepo returns the product repository scoped to the current transaction
	ProductRepo() catalog.ProductRepository
	// BatchRepo returns the stock batch repository scoped to the current transaction
	BatchRepo() inventory.StockBatchRepository
	// BillRepo returns the bill repository scoped to the current transaction
	BillRepo() billing.BillRepository
}
