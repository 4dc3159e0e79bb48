package inventory

import (
	"sort"

	"github.com/google/uuid"
	"github.com/stockbill/backend/internal/domain/shared"
)

// BatchDeduction records the planned effect of a FIFO walk on one batch.
// A fully consumed batch is deleted on apply; a partially consumed batch
// keeps NewQuantity.
type BatchDeduction struct {
	BatchID       uuid.UUID
	BatchNumber   string
	Deducted      int64
	NewQuantity   int64
	FullyConsumed bool
}

// DeductionPlan is the complete result of planning a FIFO deduction for
// one requested quantity across a product's batches.
type DeductionPlan struct {
	Deductions    []BatchDeduction
	TotalDeducted int64
	Remaining     int64 // Quantity that could not be covered
}

// FullyFulfilled reports whether the plan covers the entire request
func (p *DeductionPlan) FullyFulfilled() bool {
	return p.Remaining == 0
}

// PlanFIFODeduction walks the given batches in ascending insertion order
// and plans how the requested quantity is taken from them: a batch that
// covers the remaining need is reduced and the walk stops; a smaller
// batch is consumed entirely and the remainder carries forward. The plan
// only describes mutations; nothing is applied here.
func PlanFIFODeduction(requested int64, batches []StockBatch) (*DeductionPlan, error) {
	if requested <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Requested quantity must be positive")
	}

	sorted := make([]StockBatch, len(batches))
	copy(sorted, batches)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Sequence < sorted[j].Sequence
	})

	plan := &DeductionPlan{
		Deductions: make([]BatchDeduction, 0, len(sorted)),
		Remaining:  requested,
	}

	for _, batch := range sorted {
		if plan.Remaining == 0 {
			break
		}
		if batch.Quantity <= 0 {
			continue
		}

		if batch.Quantity >= plan.Remaining {
			deducted := plan.Remaining
			plan.Deductions = append(plan.Deductions, BatchDeduction{
				BatchID:       batch.ID,
				BatchNumber:   batch.BatchNumber,
				Deducted:      deducted,
				NewQuantity:   batch.Quantity - deducted,
				FullyConsumed: batch.Quantity == deducted,
			})
			plan.TotalDeducted += deducted
			plan.Remaining = 0
		} else {
			plan.Deductions = append(plan.Deductions, BatchDeduction{
				BatchID:       batch.ID,
				BatchNumber:   batch.BatchNumber,
				Deducted:      batch.Quantity,
				NewQuantity:   0,
				FullyConsumed: true,
			})
			plan.TotalDeducted += batch.Quantity
			plan.Remaining -= batch.Quantity
		}
	}

	return plan, nil
}

// TotalAvailable sums the quantity across the given batches
func TotalAvailable(batches []StockBatch) int64 {
	var total int64
	for _, batch := range batches {
		if batch.Quantity > 0 {
			total += batch.Quantity
		}
	}
	return total
}
