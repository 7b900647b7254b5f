package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/techbuild/orderflow/internal/orders/domain"
)

// Holiday applies a flat seasonal discount on the base price.
type Holiday struct {
	HolidayName string
	Rate        decimal.Decimal
}

func NewHoliday(name string, rate decimal.Decimal) Holiday {
	return Holiday{HolidayName: name, Rate: rate}
}

// Named seasonal presets.
func BlackFriday() Holiday {
	return NewHoliday("Black Friday", decimal.NewFromFloat(0.25))
}

func CyberMonday() Holiday {
	return NewHoliday("Cyber Monday", decimal.NewFromFloat(0.20))
}

func ChristmasSale() Holiday {
	return NewHoliday("Christmas", decimal.NewFromFloat(0.15))
}

func NewYearSale() Holiday {
	return NewHoliday("New Year", decimal.NewFromFloat(0.18))
}

func (h Holiday) CalculatePrice(order domain.Order) decimal.Decimal {
	base := order.Product.BasePrice
	return base.Sub(base.Mul(h.Rate))
}

func (h Holiday) Name() string {
	return h.HolidayName + " Sale"
}

func (h Holiday) DiscountDescription() string {
	percent := h.Rate.Mul(decimal.NewFromInt(100))
	return fmt.Sprintf("%s%% %s Discount", percent.String(), h.HolidayName)
}
