// Package pricing implements the pluggable pricing algorithms and the
// context that applies them to orders. Strategies are pure: they compute a
// price from an order snapshot and never write anything themselves. The
// context writes the result back through the order store, so swapping
// strategies at runtime touches no registry or command code.
package pricing

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/techbuild/orderflow/internal/orders/domain"
)

// Strategy computes a final price and describes the discount it applies.
type Strategy interface {
	CalculatePrice(order domain.Order) decimal.Decimal
	Name() string
	DiscountDescription() string
}

// OrderStore is the slice of the registry the pricing context needs: read a
// snapshot, write the result back atomically.
type OrderStore interface {
	GetOrder(orderID string) (domain.Order, error)
	UpdatePricing(orderID string, price decimal.Decimal, label string) error
}

// Context holds the currently selected strategy. The zero strategy is
// Regular, so a fresh context prices orders at their base price.
type Context struct {
	strategy Strategy
	logger   zerolog.Logger
}

func NewContext(logger zerolog.Logger) *Context {
	return &Context{
		strategy: Regular{},
		logger:   logger.With().Str("component", "pricing").Logger(),
	}
}

// SetStrategy swaps the pricing algorithm for subsequent applications.
func (c *Context) SetStrategy(s Strategy) {
	c.strategy = s
	c.logger.Info().Str("strategy", s.Name()).Msg("pricing strategy changed")
}

// Strategy returns the currently selected strategy.
func (c *Context) Strategy() Strategy {
	return c.strategy
}

// ExecuteStrategy computes the final price for the order and writes price
// and discount label back through the store in one step, returning the
// computed price.
func (c *Context) ExecuteStrategy(store OrderStore, orderID string) (decimal.Decimal, error) {
	order, err := store.GetOrder(orderID)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "apply pricing")
	}

	price := c.strategy.CalculatePrice(order)
	label := c.strategy.DiscountDescription()

	if err := store.UpdatePricing(orderID, price, label); err != nil {
		return decimal.Zero, errors.Wrap(err, "apply pricing")
	}

	c.logger.Info().
		Str("order_id", orderID).
		Str("strategy", c.strategy.Name()).
		Str("final_price", price.String()).
		Msg("pricing strategy applied")
	return price, nil
}
