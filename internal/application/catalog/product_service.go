package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockbill/backend/internal/domain/catalog"
	"github.com/stockbill/backend/internal/domain/inventory"
	"github.com/stockbill/backend/internal/domain/shared"
)

// ProductService handles product catalog operations
type ProductService struct {
	productRepo catalog.ProductRepository
	batchRepo   inventory.StockBatchRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, batchRepo inventory.StockBatchRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		batchRepo:   batchRepo,
	}
}

// Create creates a new product. When the initial-quantity hint is
// positive, an INITIAL batch is seeded for the product (merged additively
// if a batch with that label already exists).
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	exists, err := s.productRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this name already exists")
	}

	product, err := catalog.NewProduct(req.Name, req.Description, decimal.NewFromFloat(req.Price), req.InitialQuantity)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	if req.InitialQuantity > 0 {
		batchNumber := fmt.Sprintf("INITIAL-%s", product.ID)
		if err := s.addOrMergeBatch(ctx, product.ID, batchNumber, req.InitialQuantity); err != nil {
			return nil, err
		}
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetPrice returns a product's current unit price
func (s *ProductService) GetPrice(ctx context.Context, productID uuid.UUID) (decimal.Decimal, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return decimal.Zero, err
	}
	return product.Price, nil
}

// List returns all products
func (s *ProductService) List(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// Update updates a product's name, description and price
func (s *ProductService) Update(ctx context.Context, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != product.Name {
		exists, err := s.productRepo.ExistsByName(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this name already exists")
		}
	}

	if err := product.Update(req.Name, req.Description, decimal.NewFromFloat(req.Price)); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete deletes a product. Its inventory batches are removed by the
// storage-level cascade; historical bill line items keep their snapshots.
func (s *ProductService) Delete(ctx context.Context, productID uuid.UUID) error {
	return s.productRepo.Delete(ctx, productID)
}

// addOrMergeBatch creates a batch or adds to one with the same label
func (s *ProductService) addOrMergeBatch(ctx context.Context, productID uuid.UUID, batchNumber string, quantity int64) error {
	existing, err := s.batchRepo.FindByProductAndNumber(ctx, productID, batchNumber)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		batch, err := inventory.NewStockBatch(productID, batchNumber, quantity)
		if err != nil {
			return err
		}
		return s.batchRepo.Save(ctx, batch)
	}

	if err := existing.Add(quantity); err != nil {
		return err
	}
	return s.batchRepo.Save(ctx, existing)
}
