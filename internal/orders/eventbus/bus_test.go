package eventbus_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techbuild/orderflow/internal/orders/domain"
	"github.com/techbuild/orderflow/internal/orders/eventbus"
	"github.com/techbuild/orderflow/internal/pkg/telemetry"
)

type recordingObserver struct {
	name   string
	events []domain.EventType
	seen   *[]string
}

func (r *recordingObserver) Update(_ domain.Order, event domain.EventType) {
	r.events = append(r.events, event)
	if r.seen != nil {
		*r.seen = append(*r.seen, r.name)
	}
}

func (r *recordingObserver) Name() string { return r.name }

type panickyObserver struct{}

func (panickyObserver) Update(domain.Order, domain.EventType) { panic("boom") }
func (panickyObserver) Name() string                          { return "panicky" }

func sampleOrder() domain.Order {
	return *domain.NewOrder("Ann", "a@x.com", domain.Product{
		Name:      "Gaming Beast",
		BasePrice: decimal.NewFromInt(1500),
	})
}

func TestNotifyInRegistrationOrder(t *testing.T) {
	bus := eventbus.New(telemetry.Nop())

	var seen []string
	a := &recordingObserver{name: "A", seen: &seen}
	b := &recordingObserver{name: "B", seen: &seen}
	c := &recordingObserver{name: "C", seen: &seen}
	bus.Register(a)
	bus.Register(b)
	bus.Register(c)

	bus.Notify(sampleOrder(), domain.EventOrderCreated)
	bus.Notify(sampleOrder(), domain.EventOrderConfirmed)

	assert.Equal(t, []string{"A", "B", "C", "A", "B", "C"}, seen)
}

func TestDuplicateRegistrationIsIdempotent(t *testing.T) {
	bus := eventbus.New(telemetry.Nop())

	obs := &recordingObserver{name: "dup"}
	bus.Register(obs)
	bus.Register(obs)
	require.Equal(t, 1, bus.Len())

	bus.Notify(sampleOrder(), domain.EventOrderCreated)
	assert.Len(t, obs.events, 1)
}

func TestRemoveObserver(t *testing.T) {
	bus := eventbus.New(telemetry.Nop())

	a := &recordingObserver{name: "A"}
	b := &recordingObserver{name: "B"}
	bus.Register(a)
	bus.Register(b)

	bus.Remove(a)
	bus.Notify(sampleOrder(), domain.EventOrderShipped)

	assert.Empty(t, a.events)
	assert.Equal(t, []domain.EventType{domain.EventOrderShipped}, b.events)

	// Removing an unknown observer is harmless.
	bus.Remove(a)
	assert.Equal(t, 1, bus.Len())
}

func TestPanickingObserverDoesNotStopFanOut(t *testing.T) {
	bus := eventbus.New(telemetry.Nop())

	after := &recordingObserver{name: "after"}
	bus.Register(panickyObserver{})
	bus.Register(after)

	require.NotPanics(t, func() {
		bus.Notify(sampleOrder(), domain.EventOrderCreated)
	})
	assert.Len(t, after.events, 1)
}
