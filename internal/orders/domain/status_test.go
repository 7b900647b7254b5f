package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techbuild/orderflow/internal/orders/domain"
)

func TestTransitionTableTotality(t *testing.T) {
	legal := map[domain.Status][]domain.Status{
		domain.StatusCreated:    {domain.StatusConfirmed, domain.StatusCancelled},
		domain.StatusConfirmed:  {domain.StatusProcessing, domain.StatusCancelled},
		domain.StatusProcessing: {domain.StatusShipped, domain.StatusCancelled},
		domain.StatusShipped:    {domain.StatusDelivered},
		domain.StatusDelivered:  nil,
		domain.StatusCancelled:  nil,
	}

	for _, from := range domain.Statuses() {
		for _, to := range domain.Statuses() {
			want := false
			for _, allowed := range legal[from] {
				if allowed == to {
					want = true
				}
			}
			assert.Equalf(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, domain.StatusDelivered.Terminal())
	assert.True(t, domain.StatusCancelled.Terminal())

	for _, s := range []domain.Status{
		domain.StatusCreated, domain.StatusConfirmed, domain.StatusProcessing, domain.StatusShipped,
	} {
		assert.Falsef(t, s.Terminal(), "%s should not be terminal", s)
	}
}

func TestNewOrderDefaults(t *testing.T) {
	product := domain.Product{Name: "Gaming Beast", BasePrice: decimal.NewFromInt(1500)}
	order := domain.NewOrder("Ann", "a@x.com", product)

	require.NotNil(t, order)
	assert.Regexp(t, `^ORD-[0-9A-F]{8}$`, order.ID)
	assert.Equal(t, domain.StatusCreated, order.Status)
	assert.True(t, order.FinalPrice.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, domain.NoDiscount, order.DiscountLabel)
	assert.Equal(t, "Ann", order.CustomerName)
	assert.Equal(t, "a@x.com", order.CustomerEmail)
	assert.False(t, order.CreatedAt.IsZero())
	assert.Equal(t, order.CreatedAt, order.UpdatedAt)
}

func TestOrderIDsAreUnique(t *testing.T) {
	product := domain.Product{Name: "Office PC", BasePrice: decimal.NewFromInt(500)}
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := domain.NewOrder("x", "x@x.com", product).ID
		require.False(t, seen[id], "duplicate order ID %s", id)
		seen[id] = true
	}
}
