package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/techbuild/orderflow/internal/orders/domain"
)

var studentRate = decimal.NewFromFloat(0.15)

// Student applies a flat 15% discount on the base price.
type Student struct{}

func (Student) CalculatePrice(order domain.Order) decimal.Decimal {
	base := order.Product.BasePrice
	return base.Sub(base.Mul(studentRate))
}

func (Student) Name() string {
	return "Student Discount"
}

func (Student) DiscountDescription() string {
	return "15% Student Discount"
}
