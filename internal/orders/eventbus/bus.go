// Package eventbus delivers order lifecycle events to registered observers.
//
// Dispatch is synchronous and strictly in registration order: all observers
// have seen event N before the registry accepts the mutation that produces
// event N+1. The bus never rolls back the mutation that triggered an event;
// from the registry's perspective delivery is fire-and-forget.
package eventbus

import (
	"github.com/rs/zerolog"

	"github.com/techbuild/orderflow/internal/orders/domain"
)

// Observer receives lifecycle events. The order handed to Update is a value
// copy: observers may keep it, but writing to it never reaches the registry.
type Observer interface {
	Update(order domain.Order, event domain.EventType)
	Name() string
}

// Bus holds the ordered observer list for one registry instance.
type Bus struct {
	logger    zerolog.Logger
	observers []Observer
}

func New(logger zerolog.Logger) *Bus {
	return &Bus{logger: logger.With().Str("component", "eventbus").Logger()}
}

// Register appends obs to the dispatch list. Registering the same instance
// twice is a no-op, so an observer never receives an event more than once.
func (b *Bus) Register(obs Observer) {
	for _, existing := range b.observers {
		if existing == obs {
			b.logger.Debug().Str("observer", obs.Name()).Msg("observer already registered")
			return
		}
	}
	b.observers = append(b.observers, obs)
	b.logger.Debug().Str("observer", obs.Name()).Msg("observer registered")
}

// Remove drops obs from the dispatch list, comparing by identity.
func (b *Bus) Remove(obs Observer) {
	for i, existing := range b.observers {
		if existing == obs {
			b.observers = append(b.observers[:i], b.observers[i+1:]...)
			b.logger.Debug().Str("observer", obs.Name()).Msg("observer removed")
			return
		}
	}
}

// Notify invokes Update on every registered observer, in registration order.
// A panicking observer is isolated so the remaining observers still run.
func (b *Bus) Notify(order domain.Order, event domain.EventType) {
	b.logger.Debug().
		Str("event", event.String()).
		Str("order_id", order.ID).
		Int("observers", len(b.observers)).
		Msg("dispatching event")

	for _, obs := range b.observers {
		b.dispatch(obs, order, event)
	}
}

func (b *Bus) dispatch(obs Observer, order domain.Order, event domain.EventType) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error().
				Str("observer", obs.Name()).
				Str("event", event.String()).
				Str("order_id", order.ID).
				Interface("panic", r).
				Msg("observer panicked during update")
		}
	}()
	obs.Update(order, event)
}

// Len reports how many observers are registered.
func (b *Bus) Len() int {
	return len(b.observers)
}
