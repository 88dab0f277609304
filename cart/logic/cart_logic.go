// Package logic decides and applies cart events.
//
// Handlers are total: they never reject a command. A handler that has
// nothing to record returns nil and the store appends nothing.
package logic

import (
	"github.com/f-coded/omotanwa-aesthetics-glow/catalog"
	"github.com/f-coded/omotanwa-aesthetics-glow/common"
)

// Domain is the event log domain name of the cart aggregate.
const Domain = "cart"

type CartLogic interface {
	RebuildState(book *common.EventBook) CartState
	Apply(state *CartState, event common.Event)
	HandleAddItem(state *CartState, product catalog.Product, quantity int) *ItemAdded
	HandleRemoveItem(state *CartState, productID string) *ItemRemoved
	HandleUpdateQuantity(state *CartState, productID string, newQuantity int) *QuantityUpdated
	HandleClearCart(state *CartState) *CartCleared
}

type DefaultCartLogic struct {
	builder *common.StateBuilder[CartState]
}

func NewCartLogic() CartLogic {
	return &DefaultCartLogic{builder: newStateBuilder()}
}

func newStateBuilder() *common.StateBuilder[CartState] {
	return common.NewStateBuilder(EmptyState).
		On(EventItemAdded, common.Applier(applyItemAdded)).
		On(EventItemRemoved, common.Applier(applyItemRemoved)).
		On(EventQuantityUpdated, common.Applier(applyQuantityUpdated)).
		On(EventCartCleared, common.Applier(applyCartCleared))
}

func (l *DefaultCartLogic) RebuildState(book *common.EventBook) CartState {
	return l.builder.Rebuild(book)
}

// Apply folds a newly decided event into state.
func (l *DefaultCartLogic) Apply(state *CartState, event common.Event) {
	l.builder.Apply(state, event)
}
