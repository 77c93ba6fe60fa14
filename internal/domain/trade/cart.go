package trade

import (
	"github.com/boutique/storefront/internal/domain/catalog"
	"github.com/boutique/storefront/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is a snapshot of a product at the time it was added, plus a
// quantity. Later catalog changes do not affect existing lines.
type CartLine struct {
	ProductID uuid.UUID           `json:"productId"`
	Name      string              `json:"name"`
	Category  catalog.Category    `json:"category"`
	Price     decimal.Decimal     `json:"price"`
	SalePrice decimal.NullDecimal `json:"salePrice"`
	IsOnSale  bool                `json:"isOnSale"`
	ImageURL  string              `json:"imageUrl"`
	Quantity  int                 `json:"quantity"`
}

// NewCartLine snapshots a product into a line with quantity 1
func NewCartLine(product catalog.Product) CartLine {
	return CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Category:  product.Category,
		Price:     product.Price,
		SalePrice: product.SalePrice,
		IsOnSale:  product.IsOnSale,
		ImageURL:  product.ImageURL,
		Quantity:  1,
	}
}

// EffectivePrice returns the stored sale price when the line was on sale at
// add time, otherwise the stored base price
func (l CartLine) EffectivePrice() decimal.Decimal {
	if l.IsOnSale && l.SalePrice.Valid {
		return l.SalePrice.Decimal
	}
	return l.Price
}

// Total returns the line total (effective price times quantity)
func (l CartLine) Total() decimal.Decimal {
	return l.EffectivePrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the shopping cart. It lives only in process memory and holds at
// most one line per product id; a line never stores a quantity below 1.
type Cart struct {
	lines []CartLine
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{}
}

// AddItem merges the product into the cart: an existing line's quantity is
// incremented, otherwise a new snapshot line is appended with quantity 1
func (c *Cart) AddItem(product catalog.Product) {
	for i := range c.lines {
		if c.lines[i].ProductID == product.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, NewCartLine(product))
}

// SetQuantity sets the quantity for a product's line. A quantity below 1
// removes the line instead of storing it.
func (c *Cart) SetQuantity(productID uuid.UUID, quantity int) {
	if quantity < 1 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the line for the product if present; no-op otherwise
func (c *Cart) RemoveItem(productID uuid.UUID) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Line returns the line for a product id, if present
func (c *Cart) Line(productID uuid.UUID) (CartLine, bool) {
	for _, l := range c.lines {
		if l.ProductID == productID {
			return l, true
		}
	}
	return CartLine{}, false
}

// Lines returns a copy of the cart lines in insertion order
func (c *Cart) Lines() []CartLine {
	return append([]CartLine(nil), c.lines...)
}

// Subtotal returns the sum of line totals
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.Total())
	}
	return sum
}

// SubtotalMoney returns the subtotal as a Money value object
func (c *Cart) SubtotalMoney() valueobject.Money {
	return valueobject.NewMoneyTND(c.Subtotal())
}

// ItemCount returns the total quantity across all lines
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// IsEmpty returns true if the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clear removes all lines
func (c *Cart) Clear() {
	c.lines = nil
}
