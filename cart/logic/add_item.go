package logic

import "github.com/f-coded/omotanwa-aesthetics-glow/catalog"

// HandleAddItem always produces an event. Stock is not checked here.
func (l *DefaultCartLogic) HandleAddItem(state *CartState, product catalog.Product, quantity int) *ItemAdded {
	return &ItemAdded{Product: product.Clone(), Quantity: quantity}
}

func applyItemAdded(state *CartState, e *ItemAdded) {
	if i, ok := state.Find(e.Product.ID); ok {
		state.Items[i].Quantity += e.Quantity
		return
	}
	state.Items = append(state.Items, LineItem{Product: e.Product.Clone(), Quantity: e.Quantity})
}
