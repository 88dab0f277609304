package logic

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/f-coded/omotanwa-aesthetics-glow/catalog"
	"github.com/f-coded/omotanwa-aesthetics-glow/common"
)

func product(id string, price int64) catalog.Product {
	return catalog.Product{ID: id, Name: id, Price: decimal.NewFromInt(price), Stock: 10}
}

func bookOf(events ...common.Event) *common.EventBook {
	book := common.NewEventBook(Domain, uuid.New())
	common.PackEvents(book, events...)
	return book
}

func TestRebuildState_NilEventBook(t *testing.T) {
	logic := NewCartLogic()
	state := logic.RebuildState(nil)

	if len(state.Items) != 0 {
		t.Errorf("expected empty cart, got %d items", len(state.Items))
	}
}

func TestRebuildState_MergesRepeatedAdds(t *testing.T) {
	logic := NewCartLogic()
	p := product("liquid-tribe", 28)

	state := logic.RebuildState(bookOf(
		&ItemAdded{Product: p, Quantity: 1},
		&ItemAdded{Product: p, Quantity: 2},
	))

	if len(state.Items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(state.Items))
	}
	if state.Items[0].Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", state.Items[0].Quantity)
	}
	if got := Subtotal(state.Items); !got.Equal(decimal.NewFromInt(84)) {
		t.Errorf("expected subtotal 84, got %s", got)
	}
}

func TestRebuildState_KeepsInsertionOrder(t *testing.T) {
	logic := NewCartLogic()

	state := logic.RebuildState(bookOf(
		&ItemAdded{Product: product("b", 30), Quantity: 1},
		&ItemAdded{Product: product("a", 45), Quantity: 1},
		&ItemAdded{Product: product("c", 10), Quantity: 1},
		&ItemRemoved{ProductID: "a"},
	))

	if len(state.Items) != 2 || state.Items[0].Product.ID != "b" || state.Items[1].Product.ID != "c" {
		t.Errorf("expected [b c], got %+v", state.Items)
	}
}

func TestRebuildState_UpdateAndClear(t *testing.T) {
	logic := NewCartLogic()

	state := logic.RebuildState(bookOf(
		&ItemAdded{Product: product("a", 45), Quantity: 1},
		&QuantityUpdated{ProductID: "a", OldQuantity: 1, NewQuantity: 5},
	))
	if ItemCount(state.Items) != 5 {
		t.Errorf("expected item count 5, got %d", ItemCount(state.Items))
	}

	state = logic.RebuildState(bookOf(
		&ItemAdded{Product: product("a", 45), Quantity: 1},
		&CartCleared{ItemCount: 1},
	))
	if ItemCount(state.Items) != 0 || !Subtotal(state.Items).IsZero() {
		t.Errorf("expected empty cart after clear, got %+v", state.Items)
	}
}

func TestHandleAddItem_AlwaysProducesEvent(t *testing.T) {
	logic := NewCartLogic()
	state := EmptyState()

	event := logic.HandleAddItem(&state, product("a", 45), 100)
	if event == nil {
		t.Fatal("expected ItemAdded event")
	}
	if event.Quantity != 100 {
		t.Errorf("expected quantity 100, got %d", event.Quantity)
	}
}

func TestHandleRemoveItem_Absent(t *testing.T) {
	logic := NewCartLogic()
	state := EmptyState()

	if event := logic.HandleRemoveItem(&state, "missing"); event != nil {
		t.Errorf("expected no event, got %+v", event)
	}
}

func TestHandleUpdateQuantity(t *testing.T) {
	logic := NewCartLogic()
	state := logic.RebuildState(bookOf(&ItemAdded{Product: product("a", 45), Quantity: 2}))

	event := logic.HandleUpdateQuantity(&state, "a", 0)
	if event == nil {
		t.Fatal("expected QuantityUpdated event")
	}
	if event.OldQuantity != 2 || event.NewQuantity != 0 {
		t.Errorf("expected 2 -> 0, got %d -> %d", event.OldQuantity, event.NewQuantity)
	}

	if event := logic.HandleUpdateQuantity(&state, "missing", 3); event != nil {
		t.Errorf("expected no event for absent item, got %+v", event)
	}
}

func TestHandleClearCart_RecordsCount(t *testing.T) {
	logic := NewCartLogic()
	state := logic.RebuildState(bookOf(
		&ItemAdded{Product: product("a", 45), Quantity: 2},
		&ItemAdded{Product: product("b", 30), Quantity: 3},
	))

	event := logic.HandleClearCart(&state)
	if event.ItemCount != 5 {
		t.Errorf("expected item count 5, got %d", event.ItemCount)
	}
}

func TestSnapshot_IsIndependent(t *testing.T) {
	logic := NewCartLogic()
	state := logic.RebuildState(bookOf(&ItemAdded{Product: product("a", 45), Quantity: 2}))

	snap := state.Snapshot()
	snap[0].Quantity = 99
	if state.Items[0].Quantity != 2 {
		t.Errorf("snapshot mutation leaked into state: %d", state.Items[0].Quantity)
	}
}

func TestEventFields(t *testing.T) {
	fields := common.EventFields(&QuantityUpdated{ProductID: "a", OldQuantity: 1, NewQuantity: 4})

	if fields["product_id"] != "a" {
		t.Errorf("expected product_id %q, got %v", "a", fields["product_id"])
	}
	if fields["new_quantity"] != 4 {
		t.Errorf("expected new_quantity 4, got %v", fields["new_quantity"])
	}
}
