package logic

// HandleUpdateQuantity returns nil when the product is not in the cart.
// No floor is enforced on newQuantity.
func (l *DefaultCartLogic) HandleUpdateQuantity(state *CartState, productID string, newQuantity int) *QuantityUpdated {
	i, ok := state.Find(productID)
	if !ok {
		return nil
	}
	return &QuantityUpdated{
		ProductID:   productID,
		OldQuantity: state.Items[i].Quantity,
		NewQuantity: newQuantity,
	}
}

func applyQuantityUpdated(state *CartState, e *QuantityUpdated) {
	if i, ok := state.Find(e.ProductID); ok {
		state.Items[i].Quantity = e.NewQuantity
	}
}
