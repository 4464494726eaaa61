package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storekit/svc/cart"
)

func TestLineKey(t *testing.T) {
	assert.Equal(t, "prod-1", cart.LineKey("prod-1", ""))
	assert.Equal(t, "prod-1:vanilla", cart.LineKey("prod-1", "vanilla"))
}

func TestCart_SetItem(t *testing.T) {
	t.Run("one line per key", func(t *testing.T) {
		c := cart.New()

		require.NoError(t, c.SetItem(cart.LineItem{ProductID: "prod-1", Quantity: 1}))
		require.NoError(t, c.SetItem(cart.LineItem{ProductID: "prod-1", Quantity: 3}))

		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Quantity)
	})

	t.Run("variants of the same product stay distinct", func(t *testing.T) {
		c := cart.New()

		require.NoError(t, c.SetItem(cart.LineItem{ProductID: "prod-1", Variant: "vanilla", Quantity: 1}))
		require.NoError(t, c.SetItem(cart.LineItem{ProductID: "prod-1", Variant: "chocolate", Quantity: 1}))

		assert.Equal(t, 2, c.Len())
	})

	t.Run("zero quantity removes the line", func(t *testing.T) {
		c := cart.New()

		require.NoError(t, c.SetItem(cart.LineItem{ProductID: "prod-1", Quantity: 2}))
		require.NoError(t, c.SetItem(cart.LineItem{ProductID: "prod-1", Quantity: 0}))

		assert.Equal(t, 0, c.Len())
	})

	t.Run("missing key rejected", func(t *testing.T) {
		c := cart.New()
		assert.ErrorIs(t, c.SetItem(cart.LineItem{Quantity: 1}), cart.ErrMissingKey)
	})
}

func TestCart_UpdateQuantity(t *testing.T) {
	t.Run("update existing", func(t *testing.T) {
		c := cart.New()
		require.NoError(t, c.SetItem(cart.LineItem{ProductID: "prod-1", Quantity: 1}))

		c.UpdateQuantity("prod-1", 5)

		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Quantity)
	})

	t.Run("zero removes, unknown key is a no-op", func(t *testing.T) {
		c := cart.New()
		require.NoError(t, c.SetItem(cart.LineItem{ProductID: "prod-1", Quantity: 1}))

		c.UpdateQuantity("prod-1", 0)
		c.UpdateQuantity("ghost", 4)

		assert.Equal(t, 0, c.Len())
	})
}

func TestCart_SetSubscription(t *testing.T) {
	t.Run("flag and unflag", func(t *testing.T) {
		c := cart.New()
		require.NoError(t, c.SetItem(cart.LineItem{ProductID: "prod-1", Quantity: 1}))

		c.SetSubscription("prod-1", true, "3")
		flagged := c.Flagged()
		require.Len(t, flagged, 1)
		assert.Equal(t, "3", flagged[0].Interval)

		c.SetSubscription("prod-1", false, "")
		assert.Empty(t, c.Flagged())

		items := c.Items()
		require.Len(t, items, 1)
		assert.Empty(t, items[0].Interval)
	})

	t.Run("flagged preserves insertion order", func(t *testing.T) {
		c := cart.New()
		require.NoError(t, c.SetItem(cart.LineItem{ProductID: "a", Quantity: 1}))
		require.NoError(t, c.SetItem(cart.LineItem{ProductID: "b", Quantity: 1}))
		require.NoError(t, c.SetItem(cart.LineItem{ProductID: "c", Quantity: 1}))

		c.SetSubscription("c", true, "1")
		c.SetSubscription("a", true, "2")

		flagged := c.Flagged()
		require.Len(t, flagged, 2)
		assert.Equal(t, "a", flagged[0].Key)
		assert.Equal(t, "c", flagged[1].Key)
	})
}

func TestCart_Keys(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.SetItem(cart.LineItem{ProductID: "a", Quantity: 1}))
	require.NoError(t, c.SetItem(cart.LineItem{ProductID: "b", Variant: "x", Quantity: 1}))

	assert.Equal(t, []string{"a", "b:x"}, c.Keys())
}
