package command

import (
	"github.com/pkg/errors"

	"github.com/techbuild/orderflow/internal/orders/domain"
	"github.com/techbuild/orderflow/internal/orders/pricing"
	"github.com/techbuild/orderflow/internal/orders/registry"
)

// PlaceOrder creates an order, applies the pricing context to it, and
// confirms it, all in one command. Undo cancels the created order.
type PlaceOrder struct {
	registry       *registry.Registry
	pricingContext *pricing.Context
	customerName   string
	customerEmail  string
	product        domain.Product

	createdID string
}

func NewPlaceOrder(
	reg *registry.Registry,
	pc *pricing.Context,
	customerName, customerEmail string,
	product domain.Product,
) *PlaceOrder {
	return &PlaceOrder{
		registry:       reg,
		pricingContext: pc,
		customerName:   customerName,
		customerEmail:  customerEmail,
		product:        product,
	}
}

func (c *PlaceOrder) Execute() error {
	order := c.registry.CreateOrder(c.customerName, c.customerEmail, c.product)
	c.createdID = order.ID

	if _, err := c.pricingContext.ExecuteStrategy(c.registry, order.ID); err != nil {
		return errors.Wrapf(err, "place order %s", order.ID)
	}

	if err := c.registry.ConfirmOrder(order.ID); err != nil {
		return errors.Wrapf(err, "place order %s", order.ID)
	}
	return nil
}

func (c *PlaceOrder) Undo() error {
	if c.createdID == "" {
		return nil
	}
	return errors.Wrapf(c.registry.CancelOrder(c.createdID), "undo place order")
}

func (c *PlaceOrder) Name() string {
	return "Place Order"
}

func (c *PlaceOrder) IsReversible() bool {
	return true
}

func (c *PlaceOrder) mutated() bool {
	return c.createdID != ""
}

// CreatedOrderID returns the ID of the order created by Execute, so
// downstream commands can reference it. Empty before Execute runs.
func (c *PlaceOrder) CreatedOrderID() string {
	return c.createdID
}
