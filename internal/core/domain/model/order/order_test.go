package order_test

import (
	"testing"
	"time"

	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/core/domain/model/order"
	"pathorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []order.Item {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), "Americano", 4500, 2, []order.Option{
		{Name: "Extra shot", Price: 500},
	})
	require.NoError(t, err)

	return []order.Item{item}
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		testItems(t),
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in Pending status", func(t *testing.T) {
		id := kernel.NewUUID()
		storeID := kernel.NewUUID()
		customerID := kernel.NewUUID()
		createdAt := time.Now()
		items := testItems(t)

		o, err := order.NewOrder(id, storeID, customerID, items, createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, id, o.ID())
		assert.Equal(t, storeID, o.StoreID())
		assert.Equal(t, customerID, o.CustomerID())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, order.Pending, o.Status())
		assert.Len(t, o.Items(), 1)
	})

	t.Run("should reject empty line items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unconstructed line items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{{}},
			time.Now(),
		)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})

	t.Run("should reject invalid identifiers", func(t *testing.T) {
		var zeroID kernel.UUID

		_, err := order.NewOrder(zeroID, kernel.NewUUID(), kernel.NewUUID(), testItems(t), time.Now())
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), zeroID, kernel.NewUUID(), testItems(t), time.Now())
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), zeroID, testItems(t), time.Now())
		require.Error(t, err)
	})

	t.Run("should reject zero creation timestamp", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), testItems(t), time.Time{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero value order", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order with persisted status", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			testItems(t), order.Prepared, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.Prepared, o.Status())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			testItems(t), order.Unknown, time.Now())

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}

func TestOrder_Advance(t *testing.T) {
	t.Run("should walk the full pipeline one step at a time", func(t *testing.T) {
		o := newTestOrder(t)

		require.True(t, o.Advance())
		assert.Equal(t, order.Preparing, o.Status())

		require.True(t, o.Advance())
		assert.Equal(t, order.Prepared, o.Status())

		require.True(t, o.Advance())
		assert.Equal(t, order.Served, o.Status())
	})

	t.Run("should be a no-op for served order", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			testItems(t), order.Served, time.Now())
		require.NoError(t, err)

		assert.False(t, o.Advance())
		assert.Equal(t, order.Served, o.Status())
	})

	t.Run("should be a no-op for confirmed order", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			testItems(t), order.Confirmed, time.Now())
		require.NoError(t, err)

		assert.False(t, o.Advance())
		assert.Equal(t, order.Confirmed, o.Status())
	})
}

func TestOrder_Confirm(t *testing.T) {
	t.Run("should confirm served order", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			testItems(t), order.Served, time.Now())
		require.NoError(t, err)

		require.NoError(t, o.Confirm())
		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("should reject confirmation of pending order", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Confirm()

		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_Ownership(t *testing.T) {
	t.Run("should match owning store and customer", func(t *testing.T) {
		storeID := kernel.NewUUID()
		customerID := kernel.NewUUID()
		o, err := order.NewOrder(kernel.NewUUID(), storeID, customerID, testItems(t), time.Now())
		require.NoError(t, err)

		assert.True(t, o.BelongsToStore(storeID))
		assert.True(t, o.BelongsToCustomer(customerID))
		assert.False(t, o.BelongsToStore(kernel.NewUUID()))
		assert.False(t, o.BelongsToCustomer(kernel.NewUUID()))
	})
}

func TestOrder_Total(t *testing.T) {
	t.Run("should sum line item subtotals", func(t *testing.T) {
		item1, err := order.NewItem(kernel.NewUUID(), "Americano", 4500, 2, []order.Option{
			{Name: "Extra shot", Price: 500},
		})
		require.NoError(t, err)
		item2, err := order.NewItem(kernel.NewUUID(), "Croissant", 3800, 1, nil)
		require.NoError(t, err)

		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{item1, item2}, time.Now())
		require.NoError(t, err)

		// (4500+500)*2 + 3800
		assert.Equal(t, 13800, o.Total())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	t.Run("should compare orders by identifier", func(t *testing.T) {
		id := kernel.NewUUID()
		o1, err := order.NewOrder(id, kernel.NewUUID(), kernel.NewUUID(), testItems(t), time.Now())
		require.NoError(t, err)
		o2, err := order.NewOrder(id, kernel.NewUUID(), kernel.NewUUID(), testItems(t), time.Now())
		require.NoError(t, err)

		assert.True(t, o1.IsEqual(o2))
		assert.False(t, o1.IsEqual(newTestOrder(t)))
		assert.False(t, o1.IsEqual(nil))
	})
}
