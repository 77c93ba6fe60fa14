package trade

import (
	"testing"

	"github.com/boutique/storefront/internal/domain/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, name, price string) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(name, catalog.CategoryJewelry, decimal.RequireFromString(price))
	require.NoError(t, err)
	return product
}

func TestCart_AddItem(t *testing.T) {
	t.Run("adds a snapshot line with quantity 1", func(t *testing.T) {
		cart := NewCart()
		product := newTestProduct(t, "Collier", "69.90")

		cart.AddItem(*product)

		line, ok := cart.Line(product.ID)
		require.True(t, ok)
		assert.Equal(t, 1, line.Quantity)
		assert.Equal(t, "Collier", line.Name)
		assert.True(t, line.Price.Equal(decimal.RequireFromString("69.90")))
	})

	t.Run("merges repeated adds into one line", func(t *testing.T) {
		cart := NewCart()
		product := newTestProduct(t, "Collier", "69.90")

		cart.AddItem(*product)
		cart.AddItem(*product)
		cart.AddItem(*product)

		assert.Len(t, cart.Lines(), 1)
		line, _ := cart.Line(product.ID)
		assert.Equal(t, 3, line.Quantity)
		assert.Equal(t, 3, cart.ItemCount())
	})

	t.Run("keeps insertion order across products", func(t *testing.T) {
		cart := NewCart()
		first := newTestProduct(t, "Collier", "69.90")
		second := newTestProduct(t, "Bracelet", "85.00")

		cart.AddItem(*first)
		cart.AddItem(*second)
		cart.AddItem(*first)

		lines := cart.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, first.ID, lines[0].ProductID)
		assert.Equal(t, second.ID, lines[1].ProductID)
	})

	t.Run("snapshot is frozen against later catalog changes", func(t *testing.T) {
		cart := NewCart()
		product := newTestProduct(t, "Collier", "69.90")

		cart.AddItem(*product)
		require.NoError(t, product.SetPrice(decimal.RequireFromString("99.99")))

		assert.True(t, cart.Subtotal().Equal(decimal.RequireFromString("69.90")))
	})
}

func TestCart_SetQuantity(t *testing.T) {
	t.Run("replaces the line quantity", func(t *testing.T) {
		cart := NewCart()
		product := newTestProduct(t, "Collier", "69.90")
		cart.AddItem(*product)

		cart.SetQuantity(product.ID, 5)

		line, _ := cart.Line(product.ID)
		assert.Equal(t, 5, line.Quantity)
	})

	t.Run("quantity zero removes the line like RemoveItem", func(t *testing.T) {
		product := newTestProduct(t, "Collier", "69.90")

		viaSet := NewCart()
		viaSet.AddItem(*product)
		viaSet.SetQuantity(product.ID, 0)

		viaRemove := NewCart()
		viaRemove.AddItem(*product)
		viaRemove.RemoveItem(product.ID)

		assert.Equal(t, viaRemove.Lines(), viaSet.Lines())
		assert.True(t, viaSet.IsEmpty())
	})

	t.Run("negative quantity removes the line", func(t *testing.T) {
		cart := NewCart()
		product := newTestProduct(t, "Collier", "69.90")
		cart.AddItem(*product)

		cart.SetQuantity(product.ID, -3)

		assert.True(t, cart.IsEmpty())
	})

	t.Run("unknown product is a no-op", func(t *testing.T) {
		cart := NewCart()
		product := newTestProduct(t, "Collier", "69.90")
		other := newTestProduct(t, "Bracelet", "85.00")
		cart.AddItem(*product)

		cart.SetQuantity(other.ID, 4)

		assert.Equal(t, 1, cart.ItemCount())
	})
}

func TestCart_Subtotal(t *testing.T) {
	t.Run("sums effective prices times quantities", func(t *testing.T) {
		cart := NewCart()
		plain := newTestProduct(t, "Collier", "69.90")
		onSale := newTestProduct(t, "Boucles", "55.00")
		require.NoError(t, onSale.StartSale(decimal.RequireFromString("44.90")))

		cart.AddItem(*plain)
		cart.AddItem(*onSale)
		cart.SetQuantity(onSale.ID, 2)

		// 69.90 + 2 * 44.90
		assert.True(t, cart.Subtotal().Equal(decimal.RequireFromString("159.70")))
	})

	t.Run("empty cart has zero subtotal", func(t *testing.T) {
		cart := NewCart()
		assert.True(t, cart.Subtotal().IsZero())
		assert.Equal(t, 0, cart.ItemCount())
	})
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	cart.AddItem(*newTestProduct(t, "Collier", "69.90"))
	cart.AddItem(*newTestProduct(t, "Bracelet", "85.00"))

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Empty(t, cart.Lines())
}

func TestNewOrder(t *testing.T) {
	customer := CustomerInfo{
		FirstName: "Sophie", LastName: "L.", Phone: "54123456",
		Email: "sophie@example.com", Address: "1 rue des Fleurs", City: "Sfax",
	}

	t.Run("snapshots lines and computes total", func(t *testing.T) {
		cart := NewCart()
		product := newTestProduct(t, "Collier", "69.90")
		cart.AddItem(*product)
		cart.SetQuantity(product.ID, 2)

		order, err := NewOrder(customer, cart.Lines())

		require.NoError(t, err)
		assert.True(t, order.Total.Equal(decimal.RequireFromString("139.80")))
		assert.Equal(t, 2, order.ItemCount())
		assert.Equal(t, "Sophie L.", order.Customer.FullName())
	})

	t.Run("rejects an empty cart", func(t *testing.T) {
		_, err := NewOrder(customer, nil)
		assert.Error(t, err)
	})

	t.Run("order lines do not alias the cart", func(t *testing.T) {
		cart := NewCart()
		product := newTestProduct(t, "Collier", "69.90")
		cart.AddItem(*product)

		order, err := NewOrder(customer, cart.Lines())
		require.NoError(t, err)

		cart.SetQuantity(product.ID, 10)
		cart.Clear()

		assert.Equal(t, 1, order.ItemCount())
		assert.True(t, order.Total.Equal(decimal.RequireFromString("69.90")))
	})
}
