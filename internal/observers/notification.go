// Package observers provides the engine's stock observer variants: a
// customer notification formatter, an inventory tracker, and a statistics
// aggregator. They are interchangeable and additively composable; none is
// required for the engine's correctness.
package observers

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/techbuild/orderflow/internal/orders/domain"
)

// Notification formats a customer-facing message for each lifecycle event.
// Delivery here means logging; a real mailer would sit behind the same
// Update signature.
type Notification struct {
	logger zerolog.Logger
	sent   []string
}

func NewNotification(logger zerolog.Logger) *Notification {
	return &Notification{logger: logger.With().Str("observer", "notifications").Logger()}
}

func (n *Notification) Update(order domain.Order, event domain.EventType) {
	msg := formatMessage(order, event)
	n.sent = append(n.sent, msg)
	n.logger.Info().
		Str("event", event.String()).
		Str("order_id", order.ID).
		Str("email", order.CustomerEmail).
		Msg(msg)
}

func (n *Notification) Name() string {
	return "Customer Notification Service"
}

// Sent returns every message produced so far, oldest first.
func (n *Notification) Sent() []string {
	out := make([]string, len(n.sent))
	copy(out, n.sent)
	return out
}

func formatMessage(order domain.Order, event domain.EventType) string {
	switch event {
	case domain.EventOrderCreated:
		return fmt.Sprintf("Your order %s has been created! Total: $%s", order.ID, order.FinalPrice.StringFixed(2))
	case domain.EventOrderConfirmed:
		return fmt.Sprintf("Order %s confirmed! We're preparing your %s.", order.ID, order.Product.Name)
	case domain.EventOrderProcessing:
		return fmt.Sprintf("Order %s is being assembled!", order.ID)
	case domain.EventOrderShipped:
		return fmt.Sprintf("Order %s has been shipped! Track your delivery.", order.ID)
	case domain.EventOrderDelivered:
		return fmt.Sprintf("Order %s delivered! Enjoy your new %s!", order.ID, order.Product.Name)
	case domain.EventOrderCancelled:
		return fmt.Sprintf("Order %s has been cancelled. Refund initiated.", order.ID)
	default:
		return fmt.Sprintf("Order %s status update.", order.ID)
	}
}
