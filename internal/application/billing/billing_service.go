package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stockbill/backend/internal/domain/billing"
	"github.com/stockbill/backend/internal/domain/inventory"
	"github.com/stockbill/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// BillingService owns the transition that creates bills and consumes
// stock. No other component mutates batches as part of a sale.
type BillingService struct {
	scope  TransactionScope
	logger *zap.Logger
}

// NewBillingService creates a new BillingService
func NewBillingService(scope TransactionScope, logger *zap.Logger) *BillingService {
	return &BillingService{
		scope:  scope,
		logger: logger,
	}
}

// GenerateBill validates the requested items, plans FIFO deductions per
// product, computes the discounted and taxed total, and persists the bill
// with its line items and every batch mutation in one transaction. Any
// failure leaves inventory and the bill ledger untouched.
func (s *BillingService) GenerateBill(ctx context.Context, req GenerateBillRequest) (*GenerateBillResponse, error) {
	if req.CustomerName == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer name and items are required for billing")
	}
	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("INVALID_ITEMS", "Items must be a non-empty list")
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_QUANTITY",
				fmt.Sprintf("Invalid quantity for product %s", item.ProductID))
		}
	}

	bill, err := billing.NewBill(req.CustomerName, decimal.NewFromFloat(req.Discount), decimal.NewFromFloat(req.TaxRate))
	if err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		for _, item := range req.Items {
			product, err := repos.ProductRepo().FindByID(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					return shared.NewDomainError("PRODUCT_NOT_FOUND",
						fmt.Sprintf("Product with ID %s not found", item.ProductID))
				}
				return err
			}

			// Row locks hold until commit, so concurrent bills cannot
			// deduct from the same batches twice.
			batches, err := repos.BatchRepo().FindByProductLocked(ctx, item.ProductID)
			if err != nil {
				return err
			}

			plan, err := inventory.PlanFIFODeduction(item.Quantity, batches)
			if err != nil {
				return err
			}
			if !plan.FullyFulfilled() {
				return shared.NewDomainError("INSUFFICIENT_STOCK",
					fmt.Sprintf("Insufficient stock for product %s", product.Name))
			}

			for _, deduction := range plan.Deductions {
				if deduction.FullyConsumed {
					if err := repos.BatchRepo().Delete(ctx, deduction.BatchID); err != nil {
						return err
					}
				} else {
					if err := repos.BatchRepo().UpdateQuantity(ctx, deduction.BatchID, deduction.NewQuantity); err != nil {
						return err
					}
				}
			}

			if err := bill.AddItem(product.ID, product.Name, product.Description, item.Quantity, product.Price); err != nil {
				return err
			}
		}

		bill.Finalize()

		return repos.BillRepo().Create(ctx, bill)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Bill generated",
		zap.String("bill_id", bill.ID.String()),
		zap.String("customer", bill.CustomerName),
		zap.Int("items", len(bill.Items)),
		zap.String("total", bill.TotalAmount.String()),
	)

	return &GenerateBillResponse{
		BillID:      bill.ID,
		TotalAmount: bill.TotalAmount,
	}, nil
}

// ListBills returns all bills newest-first with their nested line items
func (s *BillingService) ListBills(ctx context.Context) ([]BillResponse, error) {
	var bills []billing.Bill

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		bills, err = repos.BillRepo().FindAll(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return ToBillResponses(bills), nil
}
