package catalog

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates a product with identity", func(t *testing.T) {
		product, err := NewProduct("Collier", CategoryJewelry, decimal.RequireFromString("69.90"))

		require.NoError(t, err)
		assert.NotEqual(t, [16]byte{}, [16]byte(product.ID))
		assert.Equal(t, CategoryJewelry, product.Category)
		assert.False(t, product.IsOnSale)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewProduct("", CategoryJewelry, decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects name over 200 characters", func(t *testing.T) {
		_, err := NewProduct(strings.Repeat("a", 201), CategoryJewelry, decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := NewProduct("Collier", Category("gadgets"), decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewProduct("Collier", CategoryJewelry, decimal.RequireFromString("-1"))
		assert.Error(t, err)
	})
}

func TestProduct_EffectivePrice(t *testing.T) {
	t.Run("base price when not on sale", func(t *testing.T) {
		product, err := NewProduct("Collier", CategoryJewelry, decimal.RequireFromString("69.90"))
		require.NoError(t, err)

		assert.True(t, product.EffectivePrice().Equal(decimal.RequireFromString("69.90")))
	})

	t.Run("sale price while on sale", func(t *testing.T) {
		product, err := NewProduct("Boucles", CategoryJewelry, decimal.RequireFromString("55.00"))
		require.NoError(t, err)
		require.NoError(t, product.StartSale(decimal.RequireFromString("44.90")))

		assert.True(t, product.EffectivePrice().Equal(decimal.RequireFromString("44.90")))
	})

	t.Run("falls back to base price when sale price missing", func(t *testing.T) {
		product, err := NewProduct("Boucles", CategoryJewelry, decimal.RequireFromString("55.00"))
		require.NoError(t, err)
		product.IsOnSale = true // flag set without a price

		assert.True(t, product.EffectivePrice().Equal(decimal.RequireFromString("55.00")))
	})

	t.Run("EndSale clears the sale price", func(t *testing.T) {
		product, err := NewProduct("Boucles", CategoryJewelry, decimal.RequireFromString("55.00"))
		require.NoError(t, err)
		require.NoError(t, product.StartSale(decimal.RequireFromString("44.90")))

		product.EndSale()

		assert.False(t, product.IsOnSale)
		assert.False(t, product.SalePrice.Valid)
		assert.True(t, product.EffectivePrice().Equal(decimal.RequireFromString("55.00")))
	})
}

func TestProduct_SetDisplayRating(t *testing.T) {
	product, err := NewProduct("Collier", CategoryJewelry, decimal.RequireFromString("69.90"))
	require.NoError(t, err)

	t.Run("accepts a rating in range", func(t *testing.T) {
		require.NoError(t, product.SetDisplayRating(4.8, 112))
		assert.Equal(t, 4.8, product.Rating)
		assert.Equal(t, 112, product.ReviewCount)
	})

	t.Run("rejects out-of-range rating", func(t *testing.T) {
		assert.Error(t, product.SetDisplayRating(5.1, 10))
		assert.Error(t, product.SetDisplayRating(-0.1, 10))
	})

	t.Run("rejects negative review count", func(t *testing.T) {
		assert.Error(t, product.SetDisplayRating(4.0, -1))
	})
}

func TestNewReview(t *testing.T) {
	product, err := NewProduct("Collier", CategoryJewelry, decimal.RequireFromString("69.90"))
	require.NoError(t, err)

	t.Run("creates a valid review", func(t *testing.T) {
		review, err := NewReview(product.ID, "Sophie L.", 5, "Magnifique !")
		require.NoError(t, err)
		assert.Equal(t, product.ID, review.ProductID)
		assert.Equal(t, 5, review.Rating)
	})

	t.Run("rejects empty author and comment", func(t *testing.T) {
		_, err := NewReview(product.ID, "", 5, "Magnifique !")
		assert.Error(t, err)
		_, err = NewReview(product.ID, "Sophie L.", 5, "")
		assert.Error(t, err)
	})

	t.Run("rejects rating outside 1..5", func(t *testing.T) {
		_, err := NewReview(product.ID, "Sophie L.", 0, "Bof")
		assert.Error(t, err)
		_, err = NewReview(product.ID, "Sophie L.", 6, "Trop bien")
		assert.Error(t, err)
	})
}
