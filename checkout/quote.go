package checkout

import "github.com/shopspring/decimal"

var (
	// FlatShipping is charged on any non-empty order, in USD.
	FlatShipping = decimal.NewFromInt(10)
	// TaxRate applies to the subtotal.
	TaxRate = decimal.RequireFromString("0.05")
)

// Quote is the order summary shown beside the checkout form. Amounts are in
// the base currency.
type Quote struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// NewQuote computes shipping, tax and total for a subtotal.
func NewQuote(subtotal decimal.Decimal) Quote {
	shipping := decimal.Zero
	if subtotal.IsPositive() {
		shipping = FlatShipping
	}
	tax := subtotal.Mul(TaxRate)
	return Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}
