package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/techbuild/orderflow/internal/orders/domain"
)

// Regular charges the base price with no discount.
type Regular struct{}

func (Regular) CalculatePrice(order domain.Order) decimal.Decimal {
	return order.Product.BasePrice
}

func (Regular) Name() string {
	return "Regular Pricing"
}

func (Regular) DiscountDescription() string {
	return "No discount applied"
}
