package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NoDiscount is the label an order carries before any pricing strategy
// has been applied to it.
const NoDiscount = "none"

// Product is an opaque reference to the item being purchased. It is supplied
// by an external catalog collaborator; the engine only reads its name and
// base price.
type Product struct {
	Name      string
	BasePrice decimal.Decimal
}

// Order is a single purchase attempt tracked through a fixed lifecycle.
//
// Orders are created and mutated exclusively by the registry; every other
// component works on value copies. FinalPrice and DiscountLabel are written
// atomically together by exactly one pricing application.
type Order struct {
	ID            string
	CustomerName  string
	CustomerEmail string
	Product       Product
	Status        Status
	FinalPrice    decimal.Decimal
	DiscountLabel string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewOrder builds an order in Created status priced at the product's base
// price. The ID format (ORD- plus eight uppercase hex chars) matches what
// downstream systems already parse.
func NewOrder(customerName, customerEmail string, product Product) *Order {
	now := time.Now()
	return &Order{
		ID:            newOrderID(),
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Product:       product,
		Status:        StatusCreated,
		FinalPrice:    product.BasePrice,
		DiscountLabel: NoDiscount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func newOrderID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "ORD-" + strings.ToUpper(raw[:8])
}
