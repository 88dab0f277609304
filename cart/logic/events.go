package logic

import (
	"go.uber.org/zap/zapcore"

	"github.com/f-coded/omotanwa-aesthetics-glow/catalog"
)

// Event type names recorded in the cart event log.
const (
	EventItemAdded       = "cart.ItemAdded"
	EventItemRemoved     = "cart.ItemRemoved"
	EventQuantityUpdated = "cart.QuantityUpdated"
	EventCartCleared     = "cart.CartCleared"
)

// ItemAdded records a product added to the cart. When the product is
// already present the quantity is merged into the existing line item.
type ItemAdded struct {
	Product  catalog.Product
	Quantity int
}

func (*ItemAdded) EventType() string { return EventItemAdded }

func (e *ItemAdded) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("product_id", e.Product.ID)
	enc.AddString("name", e.Product.Name)
	enc.AddString("price", e.Product.Price.String())
	enc.AddInt("quantity", e.Quantity)
	return nil
}

// ItemRemoved records a line item removed from the cart.
type ItemRemoved struct {
	ProductID string
	Quantity  int
}

func (*ItemRemoved) EventType() string { return EventItemRemoved }

func (e *ItemRemoved) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("product_id", e.ProductID)
	enc.AddInt("quantity", e.Quantity)
	return nil
}

// QuantityUpdated records a replaced line item quantity.
type QuantityUpdated struct {
	ProductID   string
	OldQuantity int
	NewQuantity int
}

func (*QuantityUpdated) EventType() string { return EventQuantityUpdated }

func (e *QuantityUpdated) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("product_id", e.ProductID)
	enc.AddInt("old_quantity", e.OldQuantity)
	enc.AddInt("new_quantity", e.NewQuantity)
	return nil
}

// CartCleared records that every line item was dropped.
type CartCleared struct {
	ItemCount int
}

func (*CartCleared) EventType() string { return EventCartCleared }

func (e *CartCleared) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("item_count", e.ItemCount)
	return nil
}
