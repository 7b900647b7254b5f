// Package registry owns the canonical order map and enforces the lifecycle
// state machine. Every accepted mutation is followed, synchronously and
// before the call returns, by a fan-out of the mutated order snapshot on the
// event bus. Rejected operations mutate nothing and fire nothing.
package registry

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/techbuild/orderflow/internal/orders/domain"
	"github.com/techbuild/orderflow/internal/orders/eventbus"
)

// Registry is the single writer for every order it holds. Reference usage is
// single-threaded, but the map is mutex-guarded so concurrent callers cannot
// break the transition invariants.
type Registry struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
	bus    *eventbus.Bus
	logger zerolog.Logger
}

func New(bus *eventbus.Bus, logger zerolog.Logger) *Registry {
	return &Registry{
		orders: make(map[string]*domain.Order),
		bus:    bus,
		logger: logger.With().Str("component", "registry").Logger(),
	}
}

// RegisterObserver subscribes obs to this registry's lifecycle events.
func (r *Registry) RegisterObserver(obs eventbus.Observer) {
	r.bus.Register(obs)
}

// RemoveObserver unsubscribes obs.
func (r *Registry) RemoveObserver(obs eventbus.Observer) {
	r.bus.Remove(obs)
}

// CreateOrder allocates a new order in Created status, priced at the
// product's base price, and fires ORDER_CREATED. It always succeeds.
func (r *Registry) CreateOrder(customerName, customerEmail string, product domain.Product) domain.Order {
	order := domain.NewOrder(customerName, customerEmail, product)

	r.mu.Lock()
	r.orders[order.ID] = order
	snapshot := *order
	r.mu.Unlock()

	r.logger.Info().
		Str("order_id", order.ID).
		Str("customer", customerName).
		Str("product", product.Name).
		Str("base_price", product.BasePrice.String()).
		Msg("order created")

	r.bus.Notify(snapshot, domain.EventOrderCreated)
	return snapshot
}

// ConfirmOrder moves an order from Created to Confirmed.
func (r *Registry) ConfirmOrder(orderID string) error {
	return r.advance(orderID, domain.StatusConfirmed, domain.EventOrderConfirmed)
}

// ProcessOrder moves an order from Confirmed to Processing.
func (r *Registry) ProcessOrder(orderID string) error {
	return r.advance(orderID, domain.StatusProcessing, domain.EventOrderProcessing)
}

// ShipOrder moves an order from Processing to Shipped.
func (r *Registry) ShipOrder(orderID string) error {
	return r.advance(orderID, domain.StatusShipped, domain.EventOrderShipped)
}

// DeliverOrder moves an order from Shipped to Delivered.
func (r *Registry) DeliverOrder(orderID string) error {
	return r.advance(orderID, domain.StatusDelivered, domain.EventOrderDelivered)
}

// CancelOrder moves an order to Cancelled. Orders that already shipped or
// were delivered cannot be cancelled.
func (r *Registry) CancelOrder(orderID string) error {
	return r.advance(orderID, domain.StatusCancelled, domain.EventOrderCancelled)
}

// GetOrder returns a snapshot copy of the order, or ErrOrderNotFound.
func (r *Registry) GetOrder(orderID string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[orderID]
	if !ok {
		return domain.Order{}, errors.Wrapf(domain.ErrOrderNotFound, "order %s", orderID)
	}
	return *order, nil
}

// Orders returns snapshot copies of every order the registry holds.
func (r *Registry) Orders() []domain.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		out = append(out, *order)
	}
	return out
}

// UpdatePricing writes the final price and discount label atomically and
// refreshes UpdatedAt. It is the only write path for pricing results; no
// event is fired.
func (r *Registry) UpdatePricing(orderID string, price decimal.Decimal, label string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok {
		return errors.Wrapf(domain.ErrOrderNotFound, "price order %s", orderID)
	}

	order.FinalPrice = price
	order.DiscountLabel = label
	order.UpdatedAt = nowFunc()

	r.logger.Info().
		Str("order_id", orderID).
		Str("final_price", price.String()).
		Str("discount", label).
		Msg("pricing applied")
	return nil
}

// RestoreStatus sets the status directly, bypassing the transition table.
// It exists solely for command undo, which must be able to walk an order
// backwards; no event is fired.
func (r *Registry) RestoreStatus(orderID string, status domain.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok {
		return errors.Wrapf(domain.ErrOrderNotFound, "restore order %s", orderID)
	}

	previous := order.Status
	order.Status = status
	order.UpdatedAt = nowFunc()

	r.logger.Info().
		Str("order_id", orderID).
		Str("from", previous.String()).
		Str("to", status.String()).
		Msg("status restored")
	return nil
}

// advance performs one guarded transition: check existence, check the table,
// mutate, then fan out the new snapshot. The lock is released before Notify
// so observers can read back through GetOrder.
func (r *Registry) advance(orderID string, next domain.Status, event domain.EventType) error {
	r.mu.Lock()

	order, ok := r.orders[orderID]
	if !ok {
		r.mu.Unlock()
		r.logger.Warn().Str("order_id", orderID).Str("target", next.String()).Msg("order not found")
		return errors.Wrapf(domain.ErrOrderNotFound, "order %s", orderID)
	}

	current := order.Status
	if !current.CanTransitionTo(next) {
		r.mu.Unlock()
		r.logger.Warn().
			Str("order_id", orderID).
			Str("from", current.String()).
			Str("to", next.String()).
			Msg("transition rejected")
		return errors.Wrapf(domain.ErrIllegalTransition, "order %s: %s -> %s", orderID, current, next)
	}

	order.Status = next
	order.UpdatedAt = nowFunc()
	snapshot := *order
	r.mu.Unlock()

	r.logger.Info().
		Str("order_id", orderID).
		Str("from", current.String()).
		Str("to", next.String()).
		Msg("order status changed")

	r.bus.Notify(snapshot, event)
	return nil
}
