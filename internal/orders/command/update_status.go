package command

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/techbuild/orderflow/internal/orders/domain"
	"github.com/techbuild/orderflow/internal/orders/registry"
)

// UpdateStatus dispatches to the matching registry transition for the target
// status and records the pre-transition status so Undo can restore it.
// Delivery is the exception: a delivered order can never be un-delivered.
type UpdateStatus struct {
	registry *registry.Registry
	logger   zerolog.Logger
	orderID  string
	target   domain.Status

	previous domain.Status
	recorded bool
}

func NewUpdateStatus(reg *registry.Registry, logger zerolog.Logger, orderID string, target domain.Status) *UpdateStatus {
	return &UpdateStatus{
		registry: reg,
		logger:   logger.With().Str("component", "command").Logger(),
		orderID:  orderID,
		target:   target,
	}
}

func (c *UpdateStatus) Execute() error {
	order, err := c.registry.GetOrder(c.orderID)
	if err != nil {
		return errors.Wrap(err, "update order status")
	}

	switch c.target {
	case domain.StatusProcessing:
		err = c.registry.ProcessOrder(c.orderID)
	case domain.StatusShipped:
		err = c.registry.ShipOrder(c.orderID)
	case domain.StatusDelivered:
		err = c.registry.DeliverOrder(c.orderID)
	case domain.StatusCancelled:
		err = c.registry.CancelOrder(c.orderID)
	default:
		// Created and Confirmed are not reachable through this command;
		// upstream behaviour is a logged no-op rather than an error.
		c.logger.Warn().
			Str("order_id", c.orderID).
			Str("target", c.target.String()).
			Msg("status change not supported via command")
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "update order status")
	}

	c.previous = order.Status
	c.recorded = true
	return nil
}

func (c *UpdateStatus) Undo() error {
	if !c.recorded {
		return nil
	}
	if c.target == domain.StatusDelivered {
		return errors.Wrap(ErrIrreversible, "delivery cannot be undone")
	}
	return errors.Wrapf(c.registry.RestoreStatus(c.orderID, c.previous), "undo status update")
}

func (c *UpdateStatus) Name() string {
	return fmt.Sprintf("Update Order Status to %s", c.target)
}

func (c *UpdateStatus) IsReversible() bool {
	return c.target != domain.StatusDelivered
}

func (c *UpdateStatus) mutated() bool {
	return c.recorded
}
