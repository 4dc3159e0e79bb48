package inventory

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stockbill/backend/internal/domain/catalog"
	"github.com/stockbill/backend/internal/domain/inventory"
	"github.com/stockbill/backend/internal/domain/shared"
)

// InventoryService handles direct batch management outside of billing.
// Billing-driven batch mutation goes through the billing transaction
// scope, never through this service.
type InventoryService struct {
	batchRepo   inventory.StockBatchRepository
	productRepo catalog.ProductRepository
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(batchRepo inventory.StockBatchRepository, productRepo catalog.ProductRepository) *InventoryService {
	return &InventoryService{
		batchRepo:   batchRepo,
		productRepo: productRepo,
	}
}

// List returns all batches joined with their product's display data,
// in ascending insertion order
func (s *InventoryService) List(ctx context.Context) ([]BatchResponse, error) {
	batches, err := s.batchRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	productsByID := make(map[uuid.UUID]*catalog.Product, len(products))
	for i := range products {
		productsByID[products[i].ID] = &products[i]
	}

	responses := make([]BatchResponse, 0, len(batches))
	for _, batch := range batches {
		response := BatchResponse{
			ID:          batch.ID,
			ProductID:   batch.ProductID,
			BatchNumber: batch.BatchNumber,
			Quantity:    batch.Quantity,
		}
		if product, ok := productsByID[batch.ProductID]; ok {
			response.ProductName = product.Name
			response.Description = product.Description
			response.Price = product.Price
		}
		responses = append(responses, response)
	}

	return responses, nil
}

// AddOrMerge adds a new batch for a product or, when a batch with the
// same number already exists, adds the quantity to it
func (s *InventoryService) AddOrMerge(ctx context.Context, req AddBatchRequest) (*AddBatchResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	existing, err := s.batchRepo.FindByProductAndNumber(ctx, req.ProductID, req.BatchNumber)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	var (
		batch  *inventory.StockBatch
		merged bool
	)
	if existing != nil {
		if err := existing.Add(req.Quantity); err != nil {
			return nil, err
		}
		batch = existing
		merged = true
	} else {
		batch, err = inventory.NewStockBatch(req.ProductID, req.BatchNumber, req.Quantity)
		if err != nil {
			return nil, err
		}
	}

	if err := s.batchRepo.Save(ctx, batch); err != nil {
		return nil, err
	}

	return &AddBatchResponse{
		Batch: BatchResponse{
			ID:          batch.ID,
			ProductID:   batch.ProductID,
			ProductName: product.Name,
			Description: product.Description,
			Price:       product.Price,
			BatchNumber: batch.BatchNumber,
			Quantity:    batch.Quantity,
		},
		Merged: merged,
	}, nil
}

// Delete removes a batch by its ID
func (s *InventoryService) Delete(ctx context.Context, batchID uuid.UUID) error {
	return s.batchRepo.Delete(ctx, batchID)
}
