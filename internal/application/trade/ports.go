package trade

import "github.com/boutique/storefront/internal/domain/trade"

// OrderNotifier receives a fully-formed order at placement time. Delivery is
// fire-and-forget: no acknowledgment, no retry.
type OrderNotifier interface {
	OrderPlaced(order *trade.Order)
}
