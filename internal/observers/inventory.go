package observers

import (
	"github.com/rs/zerolog"

	"github.com/techbuild/orderflow/internal/orders/domain"
)

// Inventory tracks stock levels per product name, reserving a unit when an
// order is confirmed and restoring it when an order is cancelled.
type Inventory struct {
	logger zerolog.Logger
	stock  map[string]int
}

// NewInventory seeds the tracker with initial stock levels. The map is
// copied so the caller cannot mutate tracker state afterwards.
func NewInventory(logger zerolog.Logger, initial map[string]int) *Inventory {
	stock := make(map[string]int, len(initial))
	for name, units := range initial {
		stock[name] = units
	}
	return &Inventory{
		logger: logger.With().Str("observer", "inventory").Logger(),
		stock:  stock,
	}
}

func (inv *Inventory) Update(order domain.Order, event domain.EventType) {
	product := order.Product.Name

	switch event {
	case domain.EventOrderConfirmed:
		if inv.stock[product] <= 0 {
			inv.logger.Warn().Str("product", product).Msg("out of stock")
			return
		}
		inv.stock[product]--
		inv.logger.Info().
			Str("product", product).
			Int("remaining", inv.stock[product]).
			Msg("unit reserved")
	case domain.EventOrderCancelled:
		inv.stock[product]++
		inv.logger.Info().
			Str("product", product).
			Int("remaining", inv.stock[product]).
			Msg("unit restored")
	case domain.EventOrderShipped:
		inv.logger.Info().
			Str("product", product).
			Str("order_id", order.ID).
			Msg("unit shipped")
	}
}

func (inv *Inventory) Name() string {
	return "Inventory Management System"
}

// Stock reports the units on hand for a product name.
func (inv *Inventory) Stock(product string) int {
	return inv.stock[product]
}
