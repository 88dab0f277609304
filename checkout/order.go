package checkout

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/f-coded/omotanwa-aesthetics-glow/pricing"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type OrderStatus string

const (
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// Address is where an order ships.
type Address struct {
	FullName      string `json:"fullName"`
	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zipCode"`
	Country       string `json:"country"`
	Phone         string `json:"phone"`
}

// OrderItem is a line item frozen at checkout time.
type OrderItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// Order is a placed order.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	Number          string          `json:"number"`
	Items           []OrderItem     `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Shipping        decimal.Decimal `json:"shipping"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
	ShippingAddress Address         `json:"shippingAddress"`
	Email           string          `json:"email"`
	Region          pricing.Region  `json:"region"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	OrderStatus     OrderStatus     `json:"orderStatus"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// Quote returns the amounts of the order as a Quote.
func (o *Order) Quote() Quote {
	return Quote{Subtotal: o.Subtotal, Shipping: o.Shipping, Tax: o.Tax, Total: o.Total}
}

// NumberGenerator produces customer-facing order numbers.
type NumberGenerator func() string

// RandomOrderNumber returns "OMA-" followed by six digits.
func RandomOrderNumber() string {
	return fmt.Sprintf("OMA-%d", 100000+rand.IntN(900000))
}
