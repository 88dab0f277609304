package logic

func (l *DefaultCartLogic) HandleClearCart(state *CartState) *CartCleared {
	return &CartCleared{ItemCount: ItemCount(state.Items)}
}

func applyCartCleared(state *CartState, _ *CartCleared) {
	state.Items = []LineItem{}
}
