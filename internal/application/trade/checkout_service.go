package trade

import (
	"context"

	"github.com/boutique/storefront/internal/domain/shared"
	"github.com/boutique/storefront/internal/domain/trade"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CheckoutService turns the cart into an immutable order. Appending the
// order and clearing the cart happen in the same synchronous step with no
// fallible operation between them, so the caller never observes a placed
// order alongside a non-empty cart.
type CheckoutService struct {
	orders   trade.OrderRepository
	cart     *trade.Cart
	notifier OrderNotifier
	validate *validator.Validate
	logger   *zap.Logger
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(orders trade.OrderRepository, cart *trade.Cart, notifier OrderNotifier, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		orders:   orders,
		cart:     cart,
		notifier: notifier,
		validate: validator.New(),
		logger:   logger,
	}
}

// PlaceOrder validates the checkout form, snapshots the cart into an order,
// appends it to the ledger, fires the best-effort notification and clears
// the cart. Navigating to the confirmation view is the caller's follow-up.
func (s *CheckoutService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*trade.Order, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}
	if s.cart.IsEmpty() {
		return nil, shared.ErrInvalidState
	}

	order, err := trade.NewOrder(trade.CustomerInfo{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		City:      req.City,
		Zip:       req.Zip,
	}, s.cart.Lines())
	if err != nil {
		return nil, err
	}

	if err := s.orders.Append(ctx, order); err != nil {
		return nil, err
	}

	// Fire-and-forget; a lost notification never fails the order
	s.notifier.OrderPlaced(order)
	s.cart.Clear()

	s.logger.Info("order placed",
		zap.String("id", order.ID.String()),
		zap.String("customer", order.Customer.FullName()),
		zap.String("total", order.Total.StringFixed(2)),
	)
	return order, nil
}

// Get retrieves an order by ID
func (s *CheckoutService) Get(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	return s.orders.FindByID(ctx, id)
}

// Orders returns the full ledger in placement order
func (s *CheckoutService) Orders(ctx context.Context) ([]trade.Order, error) {
	return s.orders.FindAll(ctx)
}

// Summary aggregates order count and revenue for the admin dashboard
func (s *CheckoutService) Summary(ctx context.Context) (OrderSummary, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return OrderSummary{}, err
	}
	revenue := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(o.Total)
	}
	return OrderSummary{Count: int64(len(orders)), Revenue: revenue}, nil
}
