package billing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBill(t *testing.T) {
	t.Run("creates bill with customer and timestamp", func(t *testing.T) {
		bill, err := NewBill("Alice", decimal.Zero, decimal.Zero)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, bill.ID)
		assert.Equal(t, "Alice", bill.CustomerName)
		assert.False(t, bill.BillDate.IsZero())
		assert.True(t, bill.TotalAmount.IsZero())
	})

	t.Run("rejects empty customer name", func(t *testing.T) {
		_, err := NewBill("", decimal.Zero, decimal.Zero)
		assert.Error(t, err)
	})
}

func TestBillAddItem(t *testing.T) {
	bill, err := NewBill("Alice", decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	productID := uuid.New()
	require.NoError(t, bill.AddItem(productID, "Widget", "A widget", 2, decimal.NewFromInt(10)))

	require.Len(t, bill.Items, 1)
	item := bill.Items[0]
	assert.Equal(t, bill.ID, item.BillID)
	assert.Equal(t, productID, item.ProductID)
	assert.Equal(t, "Widget", item.ProductName)
	assert.Equal(t, int64(2), item.Quantity)
	assert.True(t, item.PriceAtPurchase.Equal(decimal.NewFromInt(10)))

	assert.Error(t, bill.AddItem(productID, "Widget", "", 0, decimal.NewFromInt(10)))
}

func TestBillFinalize(t *testing.T) {
	t.Run("total is subtotal with no discount or tax", func(t *testing.T) {
		bill, err := NewBill("Alice", decimal.Zero, decimal.Zero)
		require.NoError(t, err)

		require.NoError(t, bill.AddItem(uuid.New(), "Widget", "", 5, decimal.NewFromInt(10)))
		bill.Finalize()

		assert.True(t, bill.TotalAmount.Equal(decimal.NewFromInt(50)),
			"got %s", bill.TotalAmount)
	})

	t.Run("applies discount then tax", func(t *testing.T) {
		// 100 * (1 - 0.1) * (1 + 0.2) = 108
		discount := decimal.NewFromFloat(0.1)
		tax := decimal.NewFromFloat(0.2)
		bill, err := NewBill("Alice", discount, tax)
		require.NoError(t, err)

		require.NoError(t, bill.AddItem(uuid.New(), "Widget", "", 10, decimal.NewFromInt(10)))
		bill.Finalize()

		assert.True(t, bill.TotalAmount.Equal(decimal.NewFromInt(108)),
			"got %s", bill.TotalAmount)
	})

	t.Run("sums multiple line items", func(t *testing.T) {
		bill, err := NewBill("Alice", decimal.Zero, decimal.Zero)
		require.NoError(t, err)

		require.NoError(t, bill.AddItem(uuid.New(), "Widget", "", 2, decimal.NewFromFloat(2.5)))
		require.NoError(t, bill.AddItem(uuid.New(), "Gadget", "", 3, decimal.NewFromInt(4)))

		assert.True(t, bill.Subtotal().Equal(decimal.NewFromInt(17)))
	})

	t.Run("discount above one yields a negative total", func(t *testing.T) {
		bill, err := NewBill("Alice", decimal.NewFromInt(2), decimal.Zero)
		require.NoError(t, err)

		require.NoError(t, bill.AddItem(uuid.New(), "Widget", "", 1, decimal.NewFromInt(10)))
		bill.Finalize()

		assert.True(t, bill.TotalAmount.IsNegative())
	})

	t.Run("no items yields zero total", func(t *testing.T) {
		bill, err := NewBill("Alice", decimal.NewFromFloat(0.5), decimal.NewFromFloat(0.1))
		require.NoError(t, err)

		bill.Finalize()
		assert.True(t, bill.TotalAmount.IsZero())
	})
}
