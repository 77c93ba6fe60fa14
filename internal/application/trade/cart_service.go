package trade

import (
	"context"

	"github.com/boutique/storefront/internal/domain/catalog"
	"github.com/boutique/storefront/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CartService owns the session cart and resolves products out of the catalog
// when items are added. Cart operations are total: they never fail, an
// out-of-range quantity removes the line.
type CartService struct {
	cart     *trade.Cart
	products catalog.ProductRepository
	logger   *zap.Logger
}

// NewCartService creates a CartService around an empty cart
func NewCartService(products catalog.ProductRepository, logger *zap.Logger) *CartService {
	return &CartService{
		cart:     trade.NewCart(),
		products: products,
		logger:   logger,
	}
}

// AddItem snapshots the current catalog state of the product into the cart,
// merging with an existing line for the same product
func (s *CartService) AddItem(ctx context.Context, productID uuid.UUID) error {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	s.cart.AddItem(*product)
	s.logger.Debug("cart item added", zap.String("product_id", productID.String()))
	return nil
}

// SetQuantity sets a line's quantity; below 1 removes the line
func (s *CartService) SetQuantity(productID uuid.UUID, quantity int) {
	s.cart.SetQuantity(productID, quantity)
}

// RemoveItem removes a line if present
func (s *CartService) RemoveItem(productID uuid.UUID) {
	s.cart.RemoveItem(productID)
}

// Lines returns the cart lines in insertion order
func (s *CartService) Lines() []trade.CartLine {
	return s.cart.Lines()
}

// Subtotal returns the cart subtotal
func (s *CartService) Subtotal() decimal.Decimal {
	return s.cart.Subtotal()
}

// ItemCount returns the total quantity across lines (the header badge)
func (s *CartService) ItemCount() int {
	return s.cart.ItemCount()
}

// IsEmpty returns true if the cart has no lines
func (s *CartService) IsEmpty() bool {
	return s.cart.IsEmpty()
}

// Cart exposes the underlying cart for checkout
func (s *CartService) Cart() *trade.Cart {
	return s.cart
}
