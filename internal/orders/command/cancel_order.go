package command

import (
	"github.com/pkg/errors"

	"github.com/techbuild/orderflow/internal/orders/domain"
	"github.com/techbuild/orderflow/internal/orders/registry"
)

// Cancel cancels an order if its status still permits it. The previous
// status is recorded only when the cancellation actually went through, so
// Undo after a rejected cancel is a no-op.
type Cancel struct {
	registry *registry.Registry
	orderID  string

	previous domain.Status
	recorded bool
}

func NewCancel(reg *registry.Registry, orderID string) *Cancel {
	return &Cancel{registry: reg, orderID: orderID}
}

func (c *Cancel) Execute() error {
	order, err := c.registry.GetOrder(c.orderID)
	if err != nil {
		return errors.Wrap(err, "cancel order")
	}

	if err := c.registry.CancelOrder(c.orderID); err != nil {
		return errors.Wrap(err, "cancel order")
	}

	c.previous = order.Status
	c.recorded = true
	return nil
}

func (c *Cancel) Undo() error {
	if !c.recorded {
		return nil
	}
	return errors.Wrapf(c.registry.RestoreStatus(c.orderID, c.previous), "undo cancel")
}

func (c *Cancel) Name() string {
	return "Cancel Order"
}

func (c *Cancel) IsReversible() bool {
	return true
}

func (c *Cancel) mutated() bool {
	return c.recorded
}
