package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/techbuild/orderflow/internal/orders/domain"
)

// Bulk applies a tiered discount on the total for a quantity of units.
// The computed price is the discounted total, not a per-unit price.
type Bulk struct {
	Quantity int
}

func NewBulk(quantity int) Bulk {
	return Bulk{Quantity: quantity}
}

// rate returns the discount tier for the configured quantity:
// 10+ units 20%, 5-9 units 10%, 3-4 units 5%, fewer than 3 no discount.
func (b Bulk) rate() decimal.Decimal {
	switch {
	case b.Quantity >= 10:
		return decimal.NewFromFloat(0.20)
	case b.Quantity >= 5:
		return decimal.NewFromFloat(0.10)
	case b.Quantity >= 3:
		return decimal.NewFromFloat(0.05)
	default:
		return decimal.Zero
	}
}

func (b Bulk) CalculatePrice(order domain.Order) decimal.Decimal {
	total := order.Product.BasePrice.Mul(decimal.NewFromInt(int64(b.Quantity)))
	return total.Sub(total.Mul(b.rate()))
}

func (b Bulk) Name() string {
	return "Bulk Order Discount"
}

func (b Bulk) DiscountDescription() string {
	percent := b.rate().Mul(decimal.NewFromInt(100))
	return fmt.Sprintf("%s%% Bulk Discount for %d units", percent.String(), b.Quantity)
}
