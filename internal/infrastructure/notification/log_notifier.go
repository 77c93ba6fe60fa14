package notification

import (
	"fmt"

	"github.com/boutique/storefront/internal/domain/trade"
	"go.uber.org/zap"
)

// LogNotifier simulates the order confirmation email by writing it to the
// log. Losing a notification never affects the placed order.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a new LogNotifier
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.Named("mail")}
}

// OrderPlaced logs the simulated confirmation email
func (n *LogNotifier) OrderPlaced(order *trade.Order) {
	lines := make([]string, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, fmt.Sprintf("%s x%d = %s", line.Name, line.Quantity, line.Total().StringFixed(2)))
	}

	n.logger.Info("order confirmation",
		zap.String("order_id", order.ID.String()),
		zap.Time("placed_at", order.CreatedAt),
		zap.String("customer", order.Customer.FullName()),
		zap.String("email", order.Customer.Email),
		zap.Strings("lines", lines),
		zap.String("total", order.Total.StringFixed(2)),
	)
}
