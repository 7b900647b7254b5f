package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techbuild/orderflow/internal/orders/domain"
	"github.com/techbuild/orderflow/internal/orders/eventbus"
	"github.com/techbuild/orderflow/internal/orders/pricing"
	"github.com/techbuild/orderflow/internal/orders/registry"
	"github.com/techbuild/orderflow/internal/pkg/telemetry"
)

func orderWithBase(base int64) domain.Order {
	return *domain.NewOrder("Test", "test@email.com", domain.Product{
		Name:      "Test Machine",
		BasePrice: decimal.NewFromInt(base),
	})
}

func TestRegularPricing(t *testing.T) {
	order := orderWithBase(1500)
	price := pricing.Regular{}.CalculatePrice(order)

	assert.True(t, price.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, "No discount applied", pricing.Regular{}.DiscountDescription())
}

func TestStudentDiscount(t *testing.T) {
	order := orderWithBase(900)
	strat := pricing.Student{}

	price := strat.CalculatePrice(order)
	assert.Equal(t, "765.00", price.StringFixed(2))
	assert.Contains(t, strat.DiscountDescription(), "15%")
}

func TestBulkOrderTiers(t *testing.T) {
	order := orderWithBase(1000)

	cases := []struct {
		quantity int
		want     string
		rate     string
	}{
		{quantity: 2, want: "2000", rate: "0%"},
		{quantity: 3, want: "2850", rate: "5%"},
		{quantity: 4, want: "3800", rate: "5%"},
		{quantity: 5, want: "4500", rate: "10%"},
		{quantity: 9, want: "8100", rate: "10%"},
		{quantity: 10, want: "8000", rate: "20%"},
		{quantity: 25, want: "20000", rate: "20%"},
	}

	for _, tc := range cases {
		strat := pricing.NewBulk(tc.quantity)
		price := strat.CalculatePrice(order)
		assert.Truef(t, price.Equal(decimal.RequireFromString(tc.want)),
			"quantity %d: got %s, want %s", tc.quantity, price, tc.want)
		assert.Contains(t, strat.DiscountDescription(), tc.rate)
	}
}

func TestHolidayPresets(t *testing.T) {
	order := orderWithBase(1000)

	cases := []struct {
		strat pricing.Holiday
		want  string
		rate  string
		name  string
	}{
		{strat: pricing.BlackFriday(), want: "750", rate: "25%", name: "Black Friday"},
		{strat: pricing.CyberMonday(), want: "800", rate: "20%", name: "Cyber Monday"},
		{strat: pricing.ChristmasSale(), want: "850", rate: "15%", name: "Christmas"},
		{strat: pricing.NewYearSale(), want: "820", rate: "18%", name: "New Year"},
	}

	for _, tc := range cases {
		price := tc.strat.CalculatePrice(order)
		assert.Truef(t, price.Equal(decimal.RequireFromString(tc.want)),
			"%s: got %s, want %s", tc.name, price, tc.want)
		assert.Contains(t, tc.strat.DiscountDescription(), tc.rate)
		assert.Contains(t, tc.strat.DiscountDescription(), tc.name)
	}
}

func TestContextDefaultsToRegular(t *testing.T) {
	ctx := pricing.NewContext(telemetry.Nop())
	assert.Equal(t, "Regular Pricing", ctx.Strategy().Name())
}

func TestExecuteStrategyWritesBack(t *testing.T) {
	bus := eventbus.New(telemetry.Nop())
	reg := registry.New(bus, telemetry.Nop())
	order := reg.CreateOrder("Ann", "a@x.com", domain.Product{
		Name:      "Gaming Beast",
		BasePrice: decimal.NewFromInt(1500),
	})

	ctx := pricing.NewContext(telemetry.Nop())
	ctx.SetStrategy(pricing.BlackFriday())

	price, err := ctx.ExecuteStrategy(reg, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "1125.00", price.StringFixed(2))

	got, err := reg.GetOrder(order.ID)
	require.NoError(t, err)
	assert.True(t, got.FinalPrice.Equal(price))
	assert.Contains(t, got.DiscountLabel, "25%")
	assert.Contains(t, got.DiscountLabel, "Black Friday")
}

func TestExecuteStrategyUnknownOrder(t *testing.T) {
	bus := eventbus.New(telemetry.Nop())
	reg := registry.New(bus, telemetry.Nop())

	ctx := pricing.NewContext(telemetry.Nop())
	_, err := ctx.ExecuteStrategy(reg, "ORD-MISSING1")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

// Swapping strategies at runtime must not require any registry changes:
// the same registry instance serves applications of different strategies.
func TestRuntimeStrategySwap(t *testing.T) {
	bus := eventbus.New(telemetry.Nop())
	reg := registry.New(bus, telemetry.Nop())
	order := reg.CreateOrder("Ann", "a@x.com", domain.Product{
		Name:      "Budget Gaming PC",
		BasePrice: decimal.NewFromInt(900),
	})

	ctx := pricing.NewContext(telemetry.Nop())

	price, err := ctx.ExecuteStrategy(reg, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "900.00", price.StringFixed(2))

	ctx.SetStrategy(pricing.Student{})
	price, err = ctx.ExecuteStrategy(reg, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "765.00", price.StringFixed(2))

	got, err := reg.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "15% Student Discount", got.DiscountLabel)
}
