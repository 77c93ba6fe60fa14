package trade

import (
	"context"
	"errors"
	"testing"

	"github.com/boutique/storefront/internal/domain/catalog"
	"github.com/boutique/storefront/internal/domain/shared"
	"github.com/boutique/storefront/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func validCheckoutRequest() PlaceOrderRequest {
	return PlaceOrderRequest{
		FirstName: "Sophie",
		LastName:  "L.",
		Phone:     "54123456",
		Email:     "sophie@example.com",
		Address:   "1 rue des Fleurs",
		City:      "Sfax",
	}
}

func seedCart(t *testing.T, cart *trade.Cart) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct("Collier", catalog.CategoryJewelry, decimal.RequireFromString("69.90"))
	require.NoError(t, err)
	cart.AddItem(*product)
	return product
}

func TestCheckoutService_PlaceOrder(t *testing.T) {
	t.Run("places the order and clears the cart", func(t *testing.T) {
		orders := new(MockOrderRepository)
		notifier := new(MockOrderNotifier)
		cart := trade.NewCart()
		seedCart(t, cart)
		svc := NewCheckoutService(orders, cart, notifier, zap.NewNop())

		orders.On("Append", mock.Anything, mock.AnythingOfType("*trade.Order")).Return(nil)
		notifier.On("OrderPlaced", mock.AnythingOfType("*trade.Order")).Return()

		order, err := svc.PlaceOrder(context.Background(), validCheckoutRequest())

		require.NoError(t, err)
		assert.True(t, order.Total.Equal(decimal.RequireFromString("69.90")))
		assert.True(t, cart.IsEmpty())
		orders.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("rejects an empty cart", func(t *testing.T) {
		orders := new(MockOrderRepository)
		notifier := new(MockOrderNotifier)
		svc := NewCheckoutService(orders, trade.NewCart(), notifier, zap.NewNop())

		_, err := svc.PlaceOrder(context.Background(), validCheckoutRequest())

		assert.True(t, errors.Is(err, shared.ErrInvalidState))
		orders.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("rejects an incomplete form and keeps the cart", func(t *testing.T) {
		orders := new(MockOrderRepository)
		notifier := new(MockOrderNotifier)
		cart := trade.NewCart()
		seedCart(t, cart)
		svc := NewCheckoutService(orders, cart, notifier, zap.NewNop())

		req := validCheckoutRequest()
		req.Email = "not-an-email"
		_, err := svc.PlaceOrder(context.Background(), req)

		assert.Error(t, err)
		assert.False(t, cart.IsEmpty())
		orders.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("keeps the cart when the ledger append fails", func(t *testing.T) {
		orders := new(MockOrderRepository)
		notifier := new(MockOrderNotifier)
		cart := trade.NewCart()
		seedCart(t, cart)
		svc := NewCheckoutService(orders, cart, notifier, zap.NewNop())

		orders.On("Append", mock.Anything, mock.AnythingOfType("*trade.Order")).Return(errors.New("db down"))

		_, err := svc.PlaceOrder(context.Background(), validCheckoutRequest())

		assert.Error(t, err)
		assert.False(t, cart.IsEmpty())
		notifier.AssertNotCalled(t, "OrderPlaced", mock.Anything)
	})
}

func TestCheckoutService_Summary(t *testing.T) {
	orders := new(MockOrderRepository)
	svc := NewCheckoutService(orders, trade.NewCart(), new(MockOrderNotifier), zap.NewNop())

	lines := []trade.CartLine{{Name: "Collier", Price: decimal.RequireFromString("69.90"), Quantity: 2}}
	first, err := trade.NewOrder(trade.CustomerInfo{FirstName: "A", LastName: "B"}, lines)
	require.NoError(t, err)
	second, err := trade.NewOrder(trade.CustomerInfo{FirstName: "C", LastName: "D"}, lines[:1])
	require.NoError(t, err)

	orders.On("FindAll", mock.Anything).Return([]trade.Order{*first, *second}, nil)

	summary, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Count)
	assert.True(t, summary.Revenue.Equal(first.Total.Add(second.Total)))
}

func TestCartService(t *testing.T) {
	t.Run("AddItem snapshots the catalog product", func(t *testing.T) {
		products := new(MockProductRepository)
		svc := NewCartService(products, zap.NewNop())

		product, err := catalog.NewProduct("Collier", catalog.CategoryJewelry, decimal.RequireFromString("69.90"))
		require.NoError(t, err)
		products.On("FindByID", mock.Anything, product.ID).Return(product, nil)

		require.NoError(t, svc.AddItem(context.Background(), product.ID))
		require.NoError(t, svc.AddItem(context.Background(), product.ID))

		assert.Equal(t, 2, svc.ItemCount())
		assert.Len(t, svc.Lines(), 1)
		assert.True(t, svc.Subtotal().Equal(decimal.RequireFromString("139.80")))
	})

	t.Run("AddItem surfaces missing products", func(t *testing.T) {
		products := new(MockProductRepository)
		svc := NewCartService(products, zap.NewNop())

		product, err := catalog.NewProduct("Collier", catalog.CategoryJewelry, decimal.Zero)
		require.NoError(t, err)
		products.On("FindByID", mock.Anything, product.ID).Return(nil, shared.ErrNotFound)

		err = svc.AddItem(context.Background(), product.ID)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
		assert.True(t, svc.IsEmpty())
	})

	t.Run("SetQuantity below one removes the line", func(t *testing.T) {
		products := new(MockProductRepository)
		svc := NewCartService(products, zap.NewNop())

		product, err := catalog.NewProduct("Collier", catalog.CategoryJewelry, decimal.RequireFromString("69.90"))
		require.NoError(t, err)
		products.On("FindByID", mock.Anything, product.ID).Return(product, nil)

		require.NoError(t, svc.AddItem(context.Background(), product.ID))
		svc.SetQuantity(product.ID, 0)

		assert.True(t, svc.IsEmpty())
	})
}
