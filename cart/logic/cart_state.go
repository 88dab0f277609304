package logic

import (
	"github.com/shopspring/decimal"

	"github.com/f-coded/omotanwa-aesthetics-glow/catalog"
)

// LineItem is one product in the cart together with its quantity.
type LineItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// LineTotal returns price × quantity.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.Product.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// CartState holds line items in insertion order, one per product.
type CartState struct {
	Items []LineItem
}

// Find returns the index of the line item for productID.
func (s *CartState) Find(productID string) (int, bool) {
	for i, item := range s.Items {
		if item.Product.ID == productID {
			return i, true
		}
	}
	return -1, false
}

// Snapshot returns a copy of the line items.
func (s *CartState) Snapshot() []LineItem {
	out := make([]LineItem, len(s.Items))
	for i, item := range s.Items {
		out[i] = LineItem{Product: item.Product.Clone(), Quantity: item.Quantity}
	}
	return out
}

// ItemCount sums the quantities of items.
func ItemCount(items []LineItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// Subtotal sums price × quantity over items.
func Subtotal(items []LineItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	return subtotal
}

func EmptyState() CartState {
	return CartState{Items: []LineItem{}}
}
