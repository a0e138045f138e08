package order_test

import (
	"strings"
	"testing"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPrice(t *testing.T, s string) kernel.Price {
	t.Helper()
	p, err := kernel.PriceFromString(s)
	require.NoError(t, err)
	return p
}

func TestNewItem(t *testing.T) {
	validID := kernel.NewUUID()
	validPrice := mustPrice(t, "49.99")

	t.Run("creates valid item", func(t *testing.T) {
		item, err := order.NewItem(validID, "Mouse", "Electronics", "Wireless mouse", 1200, validPrice, 2)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ID().IsEqual(validID))
		assert.Equal(t, "Mouse", item.Name())
		assert.Equal(t, "Electronics", item.Category())
		assert.Equal(t, "Wireless mouse", item.Description())
		assert.Equal(t, int64(1200), item.ProductID())
		assert.Equal(t, 2, item.Quantity())
		lineTotal, err := item.LineTotal()
		require.NoError(t, err)
		assert.Equal(t, int64(9998), lineTotal.Cents())
		require.Error(t, item.OrderID().Validate(), "new item must be detached")
	})

	t.Run("description is optional", func(t *testing.T) {
		item, err := order.NewItem(validID, "Mouse", "Electronics", "", 1200, validPrice, 1)

		require.NoError(t, err)
		assert.Empty(t, item.Description())
	})

	t.Run("fails with invalid id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewItem(invalidID, "Mouse", "Electronics", "", 1200, validPrice, 1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("fails with missing name", func(t *testing.T) {
		_, err := order.NewItem(validID, "", "Electronics", "", 1200, validPrice, 1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("fails with overlong name", func(t *testing.T) {
		_, err := order.NewItem(validID, strings.Repeat("x", 64), "Electronics", "", 1200, validPrice, 1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("fails with missing category", func(t *testing.T) {
		_, err := order.NewItem(validID, "Mouse", "", "", 1200, validPrice, 1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("fails with overlong description", func(t *testing.T) {
		_, err := order.NewItem(validID, "Mouse", "Electronics", strings.Repeat("x", 1024), 1200, validPrice, 1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("fails with non-positive product id", func(t *testing.T) {
		for _, productID := range []int64{0, -5} {
			_, err := order.NewItem(validID, "Mouse", "Electronics", "", productID, validPrice, 1)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("fails with unconstructed price", func(t *testing.T) {
		var invalidPrice kernel.Price

		_, err := order.NewItem(validID, "Mouse", "Electronics", "", 1200, invalidPrice, 1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("fails with non-positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := order.NewItem(validID, "Mouse", "Electronics", "", 1200, validPrice, quantity)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("fails with quantity above the upper bound", func(t *testing.T) {
		_, err := order.NewItem(validID, "Mouse", "Electronics", "", 1200, validPrice, 1000001)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("aggregates multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID
		var invalidPrice kernel.Price

		_, err := order.NewItem(invalidID, "", "", "", 0, invalidPrice, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "category")
		assert.Contains(t, err.Error(), "product_id")
		assert.Contains(t, err.Error(), "quantity")
	})
}

func TestRestoreItem(t *testing.T) {
	t.Run("restores attachment to the owning order", func(t *testing.T) {
		itemID := kernel.NewUUID()
		orderID := kernel.NewUUID()

		item, err := order.RestoreItem(itemID, orderID, "Mouse", "Electronics", "", 1200, mustPrice(t, "49.99"), 1)

		require.NoError(t, err)
		assert.True(t, item.OrderID().IsEqual(orderID))
	})

	t.Run("fails with invalid order id", func(t *testing.T) {
		var invalidOrderID kernel.UUID

		_, err := order.RestoreItem(
			kernel.NewUUID(), invalidOrderID, "Mouse", "Electronics", "", 1200, mustPrice(t, "49.99"), 1)

		require.Error(t, err)
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var item order.Item

		require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})

	t.Run("nil is invalid", func(t *testing.T) {
		var item *order.Item

		require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})
}

func TestItem_LineTotal(t *testing.T) {
	t.Run("multiplies price by quantity", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), "Cable", "Electronics", "", 7, mustPrice(t, "3.33"), 3)
		require.NoError(t, err)

		lineTotal, err := item.LineTotal()

		require.NoError(t, err)
		assert.Equal(t, "9.99", lineTotal.String())
	})

	t.Run("rejects products that overflow cents", func(t *testing.T) {
		item, err := order.NewItem(
			kernel.NewUUID(), "Bullion", "Metals", "", 7, mustPrice(t, "999999999999.99"), 100000)
		require.NoError(t, err)

		_, err = item.LineTotal()

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
