// Package cart is the session's shopping cart: a mutex-guarded store over
// the event-sourced cart aggregate in cart/logic.
package cart

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/f-coded/omotanwa-aesthetics-glow/cart/logic"
	"github.com/f-coded/omotanwa-aesthetics-glow/catalog"
	"github.com/f-coded/omotanwa-aesthetics-glow/common"
)

const errNilStore = "cart: method called on nil *Store"

// Option configures a Store.
type Option func(*Store)

// WithProjector registers a projector that sees every recorded event page.
func WithProjector(p common.Projector) Option {
	return func(s *Store) {
		s.projectors = append(s.projectors, p)
	}
}

// WithLogic overrides the aggregate logic.
func WithLogic(l logic.CartLogic) Option {
	return func(s *Store) {
		s.logic = l
	}
}

// Store holds one cart. All operations are total.
type Store struct {
	mu         sync.Mutex
	logic      logic.CartLogic
	book       *common.EventBook
	state      logic.CartState
	projectors []common.Projector
}

// NewStore creates an empty cart identified by root.
func NewStore(root uuid.UUID, opts ...Option) *Store {
	s := &Store{
		logic: logic.NewCartLogic(),
		book:  common.NewEventBook(logic.Domain, root),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = s.logic.RebuildState(s.book)
	return s
}

// Root returns the aggregate root of the cart.
func (s *Store) Root() uuid.UUID {
	s.lock()
	defer s.mu.Unlock()
	return s.book.Root
}

// AddToCart merges quantity into the product's line item, appending a new
// line item when the product is not yet in the cart.
func (s *Store) AddToCart(product catalog.Product, quantity int) {
	s.lock()
	defer s.mu.Unlock()
	s.record(s.logic.HandleAddItem(&s.state, product, quantity))
}

// RemoveFromCart drops the product's line item. Absent products are a no-op.
func (s *Store) RemoveFromCart(productID string) {
	s.lock()
	defer s.mu.Unlock()
	if event := s.logic.HandleRemoveItem(&s.state, productID); event != nil {
		s.record(event)
	}
}

// UpdateQuantity replaces the product's quantity. Absent products are a
// no-op. Callers clamp newQuantity; no floor is enforced here.
func (s *Store) UpdateQuantity(productID string, newQuantity int) {
	s.lock()
	defer s.mu.Unlock()
	if event := s.logic.HandleUpdateQuantity(&s.state, productID, newQuantity); event != nil {
		s.record(event)
	}
}

// ClearCart empties the cart.
func (s *Store) ClearCart() {
	s.lock()
	defer s.mu.Unlock()
	s.record(s.logic.HandleClearCart(&s.state))
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []logic.LineItem {
	s.lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}

// Quantity returns the quantity held for productID, or 0.
func (s *Store) Quantity(productID string) int {
	s.lock()
	defer s.mu.Unlock()
	if i, ok := s.state.Find(productID); ok {
		return s.state.Items[i].Quantity
	}
	return 0
}

// ItemCount sums quantities across line items.
func (s *Store) ItemCount() int {
	s.lock()
	defer s.mu.Unlock()
	return logic.ItemCount(s.state.Items)
}

// Subtotal sums price × quantity across line items.
func (s *Store) Subtotal() decimal.Decimal {
	s.lock()
	defer s.mu.Unlock()
	return logic.Subtotal(s.state.Items)
}

// Events returns a copy of the cart's event log.
func (s *Store) Events() []common.EventPage {
	s.lock()
	defer s.mu.Unlock()
	return append([]common.EventPage(nil), s.book.Pages...)
}

func (s *Store) lock() {
	if s == nil {
		panic(errNilStore)
	}
	s.mu.Lock()
}

// record appends event to the log, folds it into state and notifies
// projectors. Caller holds s.mu.
func (s *Store) record(event common.Event) {
	page := common.PackEvent(s.book, event)
	s.logic.Apply(&s.state, event)
	for _, p := range s.projectors {
		p.Project(s.book.Domain, s.book.Root, page)
	}
}
