package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockbill/backend/internal/domain/catalog"
	"github.com/stockbill/backend/internal/domain/inventory"
	"github.com/stockbill/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	products map[uuid.UUID]catalog.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]catalog.Product)}
}

func (r *fakeProductRepo) add(t *testing.T, name string, price int64) uuid.UUID {
	t.Helper()
	product, err := catalog.NewProduct(name, "", decimal.NewFromInt(price), 0)
	require.NoError(t, err)
	r.products[product.ID] = *product
	return product.ID
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	if p, ok := r.products[id]; ok {
		return &p, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeProductRepo) FindByName(_ context.Context, name string) (*catalog.Product, error) {
	for _, p := range r.products {
		if p.Name == name {
			return &p, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeProductRepo) FindAll(_ context.Context) ([]catalog.Product, error) {
	all := make([]catalog.Product, 0, len(r.products))
	for _, p := range r.products {
		all = append(all, p)
	}
	return all, nil
}

func (r *fakeProductRepo) Save(_ context.Context, product *catalog.Product) error {
	r.products[product.ID] = *product
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	_, err := r.FindByName(ctx, name)
	return err == nil, nil
}

type fakeBatchRepo struct {
	batches map[uuid.UUID]inventory.StockBatch
	nextSeq int64
}

func newFakeBatchRepo() *fakeBatchRepo {
	return &fakeBatchRepo{batches: make(map[uuid.UUID]inventory.StockBatch), nextSeq: 1}
}

func (r *fakeBatchRepo) FindByID(_ context.Context, id uuid.UUID) (*inventory.StockBatch, error) {
	if b, ok := r.batches[id]; ok {
		return &b, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeBatchRepo) FindByProductAndNumber(_ context.Context, productID uuid.UUID, number string) (*inventory.StockBatch, error) {
	for _, b := range r.batches {
		if b.ProductID == productID && b.BatchNumber == number {
			return &b, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeBatchRepo) FindByProduct(_ context.Context, productID uuid.UUID) ([]inventory.StockBatch, error) {
	batches := make([]inventory.StockBatch, 0)
	for _, b := range r.batches {
		if b.ProductID == productID {
			batches = append(batches, b)
		}
	}
	return batches, nil
}

func (r *fakeBatchRepo) FindByProductLocked(ctx context.Context, productID uuid.UUID) ([]inventory.StockBatch, error) {
	return r.FindByProduct(ctx, productID)
}

func (r *fakeBatchRepo) FindAll(_ context.Context) ([]inventory.StockBatch, error) {
	all := make([]inventory.StockBatch, 0, len(r.batches))
	for _, b := range r.batches {
		all = append(all, b)
	}
	return all, nil
}

func (r *fakeBatchRepo) Save(_ context.Context, batch *inventory.StockBatch) error {
	if batch.Sequence == 0 {
		batch.Sequence = r.nextSeq
		r.nextSeq++
	}
	r.batches[batch.ID] = *batch
	return nil
}

func (r *fakeBatchRepo) UpdateQuantity(_ context.Context, id uuid.UUID, quantity int64) error {
	b, ok := r.batches[id]
	if !ok {
		return shared.ErrNotFound
	}
	b.Quantity = quantity
	r.batches[id] = b
	return nil
}

func (r *fakeBatchRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.batches[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.batches, id)
	return nil
}

func TestInventoryServiceAddOrMerge(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a new batch", func(t *testing.T) {
		productRepo := newFakeProductRepo()
		batchRepo := newFakeBatchRepo()
		productID := productRepo.add(t, "Widget", 10)
		svc := NewInventoryService(batchRepo, productRepo)

		resp, err := svc.AddOrMerge(ctx, AddBatchRequest{
			ProductID:   productID,
			BatchNumber: "LOT-1",
			Quantity:    5,
		})
		require.NoError(t, err)

		assert.False(t, resp.Merged)
		assert.Equal(t, int64(5), resp.Batch.Quantity)
		assert.Equal(t, "Widget", resp.Batch.ProductName)
	})

	t.Run("merges into an existing batch with the same number", func(t *testing.T) {
		productRepo := newFakeProductRepo()
		batchRepo := newFakeBatchRepo()
		productID := productRepo.add(t, "Widget", 10)
		svc := NewInventoryService(batchRepo, productRepo)

		_, err := svc.AddOrMerge(ctx, AddBatchRequest{ProductID: productID, BatchNumber: "LOT-1", Quantity: 5})
		require.NoError(t, err)

		resp, err := svc.AddOrMerge(ctx, AddBatchRequest{ProductID: productID, BatchNumber: "LOT-1", Quantity: 3})
		require.NoError(t, err)

		assert.True(t, resp.Merged)
		assert.Equal(t, int64(8), resp.Batch.Quantity)
		assert.Len(t, batchRepo.batches, 1)
	})

	t.Run("same batch number on another product stays separate", func(t *testing.T) {
		productRepo := newFakeProductRepo()
		batchRepo := newFakeBatchRepo()
		firstID := productRepo.add(t, "Widget", 10)
		secondID := productRepo.add(t, "Gadget", 5)
		svc := NewInventoryService(batchRepo, productRepo)

		_, err := svc.AddOrMerge(ctx, AddBatchRequest{ProductID: firstID, BatchNumber: "LOT-1", Quantity: 5})
		require.NoError(t, err)
		resp, err := svc.AddOrMerge(ctx, AddBatchRequest{ProductID: secondID, BatchNumber: "LOT-1", Quantity: 7})
		require.NoError(t, err)

		assert.False(t, resp.Merged)
		assert.Len(t, batchRepo.batches, 2)
	})

	t.Run("rejects unknown product", func(t *testing.T) {
		svc := NewInventoryService(newFakeBatchRepo(), newFakeProductRepo())

		_, err := svc.AddOrMerge(ctx, AddBatchRequest{
			ProductID:   uuid.New(),
			BatchNumber: "LOT-1",
			Quantity:    5,
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestInventoryServiceList(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo()
	batchRepo := newFakeBatchRepo()
	productID := productRepo.add(t, "Widget", 10)
	svc := NewInventoryService(batchRepo, productRepo)

	_, err := svc.AddOrMerge(ctx, AddBatchRequest{ProductID: productID, BatchNumber: "LOT-1", Quantity: 5})
	require.NoError(t, err)

	batches, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, batches, 1)

	assert.Equal(t, "Widget", batches[0].ProductName)
	assert.True(t, batches[0].Price.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, int64(5), batches[0].Quantity)
}

func TestInventoryServiceDelete(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo()
	batchRepo := newFakeBatchRepo()
	productID := productRepo.add(t, "Widget", 10)
	svc := NewInventoryService(batchRepo, productRepo)

	resp, err := svc.AddOrMerge(ctx, AddBatchRequest{ProductID: productID, BatchNumber: "LOT-1", Quantity: 5})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, resp.Batch.ID))
	assert.ErrorIs(t, svc.Delete(ctx, resp.Batch.ID), shared.ErrNotFound)
}
