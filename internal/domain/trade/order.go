package trade

import (
	"github.com/boutique/storefront/internal/domain/shared"
	"github.com/boutique/storefront/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// CustomerInfo is the contact and delivery information captured at checkout
type CustomerInfo struct {
	FirstName string `gorm:"type:varchar(100);not null"`
	LastName  string `gorm:"type:varchar(100);not null"`
	Phone     string `gorm:"type:varchar(50);not null"`
	Email     string `gorm:"type:varchar(200);not null"`
	Address   string `gorm:"type:text;not null"`
	City      string `gorm:"type:varchar(100);not null"`
	Zip       string `gorm:"type:varchar(20)"`
}

// FullName returns the customer's display name
func (c CustomerInfo) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Order is an immutable record of a placed order: a snapshot of the cart
// lines at checkout time plus the customer info and computed total. Orders
// are only ever created by checkout and never mutated or deleted.
type Order struct {
	shared.BaseEntity
	Customer CustomerInfo    `gorm:"embedded;embeddedPrefix:customer_"`
	Lines    []CartLine      `gorm:"serializer:json;type:text"`
	Total    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Seq      int64           `gorm:"not null;index"` // ledger position, assigned by the repository
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder snapshots the given cart lines into an order. The cart must be
// non-empty; an empty cart must never reach order creation.
func NewOrder(customer CustomerInfo, lines []CartLine) (*Order, error) {
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_CART", "Cannot place an order with an empty cart")
	}

	snapshot := append([]CartLine(nil), lines...)
	total := decimal.Zero
	for _, l := range snapshot {
		total = total.Add(l.Total())
	}

	return &Order{
		BaseEntity: shared.NewBaseEntity(),
		Customer:   customer,
		Lines:      snapshot,
		Total:      total,
	}, nil
}

// ItemCount returns the total quantity across all order lines
func (o *Order) ItemCount() int {
	count := 0
	for _, l := range o.Lines {
		count += l.Quantity
	}
	return count
}

// TotalMoney returns the order total as a Money value object
func (o *Order) TotalMoney() valueobject.Money {
	return valueobject.NewMoneyTND(o.Total)
}
