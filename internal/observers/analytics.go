package observers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/techbuild/orderflow/internal/orders/domain"
)

// Analytics aggregates running order statistics and exports them as
// prometheus collectors on the injected registerer. Revenue is recognised
// on delivery, matching when the money is actually earned.
type Analytics struct {
	logger zerolog.Logger

	created   int
	delivered int
	cancelled int
	revenue   decimal.Decimal

	eventsTotal     *prometheus.CounterVec
	ordersCreated   prometheus.Counter
	ordersDelivered prometheus.Counter
	ordersCancelled prometheus.Counter
	revenueTotal    prometheus.Counter
}

func NewAnalytics(logger zerolog.Logger, reg prometheus.Registerer) *Analytics {
	a := &Analytics{
		logger:  logger.With().Str("observer", "analytics").Logger(),
		revenue: decimal.Zero,
		eventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orderflow_events_total",
			Help: "Lifecycle events observed, by event type.",
		}, []string{"event"}),
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orderflow_orders_created_total",
			Help: "Orders created.",
		}),
		ordersDelivered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orderflow_orders_delivered_total",
			Help: "Orders delivered.",
		}),
		ordersCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orderflow_orders_cancelled_total",
			Help: "Orders cancelled.",
		}),
		revenueTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orderflow_revenue_dollars_total",
			Help: "Revenue recognised on delivery, in dollars.",
		}),
	}

	reg.MustRegister(a.eventsTotal, a.ordersCreated, a.ordersDelivered, a.ordersCancelled, a.revenueTotal)
	return a
}

func (a *Analytics) Update(order domain.Order, event domain.EventType) {
	a.eventsTotal.WithLabelValues(event.String()).Inc()

	switch event {
	case domain.EventOrderCreated:
		a.created++
		a.ordersCreated.Inc()
		a.logger.Info().Int("total_orders", a.created).Msg("order recorded")
	case domain.EventOrderDelivered:
		a.delivered++
		a.ordersDelivered.Inc()
		a.revenue = a.revenue.Add(order.FinalPrice)
		a.revenueTotal.Add(order.FinalPrice.InexactFloat64())
		a.logger.Info().Str("revenue", a.revenue.String()).Msg("order completed")
	case domain.EventOrderCancelled:
		a.cancelled++
		a.ordersCancelled.Inc()
		a.logger.Info().Float64("cancellation_rate", a.CancellationRate()).Msg("order cancelled")
	}
}

func (a *Analytics) Name() string {
	return "Analytics & Reporting System"
}

// OrdersCreated reports how many orders have been created.
func (a *Analytics) OrdersCreated() int { return a.created }

// OrdersDelivered reports how many orders reached Delivered.
func (a *Analytics) OrdersDelivered() int { return a.delivered }

// OrdersCancelled reports how many orders were cancelled.
func (a *Analytics) OrdersCancelled() int { return a.cancelled }

// Revenue is the sum of final prices across delivered orders.
func (a *Analytics) Revenue() decimal.Decimal { return a.revenue }

// CancellationRate is cancelled orders as a fraction of created orders,
// zero when nothing has been created yet.
func (a *Analytics) CancellationRate() float64 {
	if a.created == 0 {
		return 0
	}
	return float64(a.cancelled) / float64(a.created)
}
