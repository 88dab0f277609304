package logic

// HandleRemoveItem returns nil when the product is not in the cart.
func (l *DefaultCartLogic) HandleRemoveItem(state *CartState, productID string) *ItemRemoved {
	i, ok := state.Find(productID)
	if !ok {
		return nil
	}
	return &ItemRemoved{ProductID: productID, Quantity: state.Items[i].Quantity}
}

func applyItemRemoved(state *CartState, e *ItemRemoved) {
	if i, ok := state.Find(e.ProductID); ok {
		state.Items = append(state.Items[:i:i], state.Items[i+1:]...)
	}
}
