package trade

import "github.com/shopspring/decimal"

// PlaceOrderRequest carries the checkout form
type PlaceOrderRequest struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Phone     string `validate:"required"`
	Email     string `validate:"required,email"`
	Address   string `validate:"required"`
	City      string `validate:"required"`
	Zip       string // optional
}

// OrderSummary aggregates the ledger for the admin dashboard
type OrderSummary struct {
	Count   int64
	Revenue decimal.Decimal
}
