package storefront

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/f-coded/omotanwa-aesthetics-glow/cart/logic"
	"github.com/f-coded/omotanwa-aesthetics-glow/catalog"
	"github.com/f-coded/omotanwa-aesthetics-glow/checkout"
	"github.com/f-coded/omotanwa-aesthetics-glow/pricing"
)

// Views pair raw base-currency amounts with strings formatted for the
// session's region.

type SessionView struct {
	ID        uuid.UUID      `json:"id"`
	Region    pricing.Region `json:"region"`
	CreatedAt time.Time      `json:"createdAt"`
}

type ProductView struct {
	catalog.Product
	FormattedPrice string `json:"formattedPrice"`
	Availability   string `json:"availability"`
}

type LineItemView struct {
	ProductID          string          `json:"productId"`
	Name               string          `json:"name"`
	Image              string          `json:"image,omitempty"`
	Category           string          `json:"category"`
	Stock              int             `json:"stock"`
	Quantity           int             `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unitPrice"`
	LineTotal          decimal.Decimal `json:"lineTotal"`
	FormattedUnitPrice string          `json:"formattedUnitPrice"`
	FormattedLineTotal string          `json:"formattedLineTotal"`
}

type CartView struct {
	SessionID         uuid.UUID       `json:"sessionId"`
	Region            pricing.Region  `json:"region"`
	Items             []LineItemView  `json:"items"`
	ItemCount         int             `json:"itemCount"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	FormattedSubtotal string          `json:"formattedSubtotal"`
}

type RegionView struct {
	Region       pricing.Region  `json:"region"`
	Symbol       string          `json:"symbol"`
	Currency     string          `json:"currency"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
}

type QuoteView struct {
	checkout.Quote
	Region            pricing.Region `json:"region"`
	FormattedSubtotal string         `json:"formattedSubtotal"`
	FormattedShipping string         `json:"formattedShipping"`
	FormattedTax      string         `json:"formattedTax"`
	FormattedTotal    string         `json:"formattedTotal"`
}

type OrderView struct {
	*checkout.Order
	FormattedSubtotal string `json:"formattedSubtotal"`
	FormattedShipping string `json:"formattedShipping"`
	FormattedTax      string `json:"formattedTax"`
	FormattedTotal    string `json:"formattedTotal"`
}

type PriceView struct {
	Amount    decimal.Decimal `json:"amount"`
	Converted decimal.Decimal `json:"converted"`
	Formatted string          `json:"formatted"`
	Region    pricing.Region  `json:"region"`
}

// Availability is the stock label shown on the product page.
func Availability(stock int) string {
	switch {
	case stock > 10:
		return "In Stock"
	case stock > 0:
		return fmt.Sprintf("Only %d left in stock", stock)
	default:
		return "Out of Stock"
	}
}

func productView(p catalog.Product, snap pricing.Snapshot) ProductView {
	return ProductView{
		Product:        p,
		FormattedPrice: snap.Format(p.Price),
		Availability:   Availability(p.Stock),
	}
}

func lineItemView(item logic.LineItem, snap pricing.Snapshot) LineItemView {
	v := LineItemView{
		ProductID:          item.Product.ID,
		Name:               item.Product.Name,
		Category:           item.Product.Category,
		Stock:              item.Product.Stock,
		Quantity:           item.Quantity,
		UnitPrice:          item.Product.Price,
		LineTotal:          item.LineTotal(),
		FormattedUnitPrice: snap.Format(item.Product.Price),
		FormattedLineTotal: snap.Format(item.LineTotal()),
	}
	if len(item.Product.Images) > 0 {
		v.Image = item.Product.Images[0]
	}
	return v
}

func quoteView(q checkout.Quote, snap pricing.Snapshot) QuoteView {
	return QuoteView{
		Quote:             q,
		Region:            snap.Region,
		FormattedSubtotal: snap.Format(q.Subtotal),
		FormattedShipping: snap.Format(q.Shipping),
		FormattedTax:      snap.Format(q.Tax),
		FormattedTotal:    snap.Format(q.Total),
	}
}

func regionView(snap pricing.Snapshot) RegionView {
	return RegionView{
		Region:       snap.Region,
		Symbol:       snap.Region.Symbol(),
		Currency:     snap.Region.Currency(),
		ExchangeRate: snap.Rate,
	}
}

// orderView formats the amounts in the region the order was placed in.
func orderView(o *checkout.Order, rate decimal.Decimal) OrderView {
	snap := pricing.Snapshot{Region: o.Region, Rate: rate}
	q := o.Quote()
	return OrderView{
		Order:             o,
		FormattedSubtotal: snap.Format(q.Subtotal),
		FormattedShipping: snap.Format(q.Shipping),
		FormattedTax:      snap.Format(q.Tax),
		FormattedTotal:    snap.Format(q.Total),
	}
}
