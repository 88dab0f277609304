// Package storefront is the application layer shared by the gRPC and HTTP
// transports. It applies the rules the shop pages enforce before touching
// the stores and renders views priced for the session's region.
package storefront

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/f-coded/omotanwa-aesthetics-glow/cart/logic"
	"github.com/f-coded/omotanwa-aesthetics-glow/catalog"
	"github.com/f-coded/omotanwa-aesthetics-glow/checkout"
	"github.com/f-coded/omotanwa-aesthetics-glow/common"
	"github.com/f-coded/omotanwa-aesthetics-glow/pricing"
	"github.com/f-coded/omotanwa-aesthetics-glow/session"
)

// Error message constants for the application layer.
const (
	ErrMsgSessionIDInvalid = "Invalid session ID"
	ErrMsgProductIDMissing = "Product ID is required"
	ErrMsgQuantityPositive = "Quantity must be at least 1"
	ErrMsgOutOfStock       = "Product is out of stock"
	ErrMsgItemNotInCart    = "Item not in cart"
	ErrMsgAmountInvalid    = "Amount must be a decimal number"
)

// App wires the catalog, sessions and checkout together.
type App struct {
	catalog  *catalog.Catalog
	sessions *session.Registry
	checkout *checkout.Service
	logger   *zap.Logger
}

// New creates an App.
func New(cat *catalog.Catalog, sessions *session.Registry, svc *checkout.Service, logger *zap.Logger) *App {
	return &App{catalog: cat, sessions: sessions, checkout: svc, logger: logger}
}

// ParseSessionID parses a transport-supplied session ID.
func ParseSessionID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, common.NewInvalidArgument(ErrMsgSessionIDInvalid)
	}
	return id, nil
}

// ParseAmount parses a base-currency amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, common.NewInvalidArgument(ErrMsgAmountInvalid)
	}
	return amount, nil
}

// OpenSession starts a shopping session.
func (a *App) OpenSession() SessionView {
	s := a.sessions.Open()
	return SessionView{ID: s.ID, Region: s.Pricing.Country(), CreatedAt: s.CreatedAt}
}

// CloseSession discards a session and its cart.
func (a *App) CloseSession(id uuid.UUID) error {
	if !a.sessions.Close(id) {
		return common.NewNotFound(session.ErrMsgSessionNotFound)
	}
	return nil
}

// Products searches the catalog. A nil session ID prices in the base region.
func (a *App) Products(id uuid.UUID, q catalog.Query) ([]ProductView, error) {
	snap, err := a.pricingFor(id)
	if err != nil {
		return nil, err
	}
	products, err := a.catalog.Search(q)
	if err != nil {
		return nil, err
	}
	views := make([]ProductView, len(products))
	for i, p := range products {
		views[i] = productView(p, snap)
	}
	return views, nil
}

// Product returns one product. A nil session ID prices in the base region.
func (a *App) Product(id uuid.UUID, productID string) (ProductView, error) {
	snap, err := a.pricingFor(id)
	if err != nil {
		return ProductView{}, err
	}
	p, err := a.catalog.Get(productID)
	if err != nil {
		return ProductView{}, err
	}
	return productView(p, snap), nil
}

// Featured returns the home page's featured products.
func (a *App) Featured(id uuid.UUID) ([]ProductView, error) {
	return a.productViews(id, a.catalog.Featured)
}

// NewArrivals returns the products flagged as new.
func (a *App) NewArrivals(id uuid.UUID) ([]ProductView, error) {
	return a.productViews(id, a.catalog.NewArrivals)
}

func (a *App) productViews(id uuid.UUID, list func() []catalog.Product) ([]ProductView, error) {
	snap, err := a.pricingFor(id)
	if err != nil {
		return nil, err
	}
	products := list()
	views := make([]ProductView, len(products))
	for i, p := range products {
		views[i] = productView(p, snap)
	}
	return views, nil
}

// Categories lists the shop categories, "all" first.
func (a *App) Categories() []string {
	return a.catalog.Categories()
}

// AddProduct adds an admin upload to the catalog.
func (a *App) AddProduct(np catalog.NewProduct) (ProductView, error) {
	p, err := a.catalog.Add(np)
	if err != nil {
		return ProductView{}, err
	}
	a.logger.Info("product added", zap.String("product_id", p.ID), zap.String("category", p.Category))
	return productView(p, pricing.NewStore().Snapshot()), nil
}

// AddItem adds a product to the session cart. The requested quantity is
// clamped to the product's stock.
func (a *App) AddItem(id uuid.UUID, productID string, quantity int) (CartView, error) {
	if err := common.FirstError(
		common.RequirePresent(productID, ErrMsgProductIDMissing),
		common.RequirePositive(quantity, ErrMsgQuantityPositive),
	); err != nil {
		return CartView{}, err
	}
	s, err := a.sessions.Get(id)
	if err != nil {
		return CartView{}, err
	}
	p, err := a.catalog.Get(productID)
	if err != nil {
		return CartView{}, err
	}
	if !p.InStock() {
		return CartView{}, common.NewFailedPrecondition(ErrMsgOutOfStock)
	}
	s.Cart.AddToCart(p, min(quantity, p.Stock))
	return cartView(s), nil
}

// RemoveItem drops a product from the session cart. Absent products are
// not an error.
func (a *App) RemoveItem(id uuid.UUID, productID string) (CartView, error) {
	s, err := a.sessions.Get(id)
	if err != nil {
		return CartView{}, err
	}
	s.Cart.RemoveFromCart(productID)
	return cartView(s), nil
}

// UpdateQuantity sets the quantity of a product already in the cart.
func (a *App) UpdateQuantity(id uuid.UUID, productID string, quantity int) (CartView, error) {
	if err := common.RequirePositive(quantity, ErrMsgQuantityPositive); err != nil {
		return CartView{}, err
	}
	s, err := a.sessions.Get(id)
	if err != nil {
		return CartView{}, err
	}
	if s.Cart.Quantity(productID) == 0 {
		return CartView{}, common.NewFailedPrecondition(ErrMsgItemNotInCart)
	}
	s.Cart.UpdateQuantity(productID, quantity)
	return cartView(s), nil
}

// ClearCart empties the session cart.
func (a *App) ClearCart(id uuid.UUID) (CartView, error) {
	s, err := a.sessions.Get(id)
	if err != nil {
		return CartView{}, err
	}
	s.Cart.ClearCart()
	return cartView(s), nil
}

// Cart returns the session cart.
func (a *App) Cart(id uuid.UUID) (CartView, error) {
	s, err := a.sessions.Get(id)
	if err != nil {
		return CartView{}, err
	}
	return cartView(s), nil
}

// SetRegion switches the session region. region may be a code or a
// country name.
func (a *App) SetRegion(id uuid.UUID, region string) (RegionView, error) {
	r, err := pricing.ParseRegion(region)
	if err != nil {
		return RegionView{}, err
	}
	s, err := a.sessions.Get(id)
	if err != nil {
		return RegionView{}, err
	}
	s.Pricing.SetCountry(r)
	return regionView(s.Pricing.Snapshot()), nil
}

// Region returns the session region.
func (a *App) Region(id uuid.UUID) (RegionView, error) {
	s, err := a.sessions.Get(id)
	if err != nil {
		return RegionView{}, err
	}
	return regionView(s.Pricing.Snapshot()), nil
}

// FormatPrice formats a base-currency amount for the session region.
func (a *App) FormatPrice(id uuid.UUID, amount decimal.Decimal) (PriceView, error) {
	s, err := a.sessions.Get(id)
	if err != nil {
		return PriceView{}, err
	}
	snap := s.Pricing.Snapshot()
	return PriceView{
		Amount:    amount,
		Converted: snap.Convert(amount),
		Formatted: snap.Format(amount),
		Region:    snap.Region,
	}, nil
}

// Quote returns the order summary for the session cart.
func (a *App) Quote(id uuid.UUID) (QuoteView, error) {
	s, err := a.sessions.Get(id)
	if err != nil {
		return QuoteView{}, err
	}
	return quoteView(checkout.NewQuote(s.Cart.Subtotal()), s.Pricing.Snapshot()), nil
}

// PlaceOrder checks out the session cart. It blocks while payment is
// processed and returns early if ctx is done.
func (a *App) PlaceOrder(ctx context.Context, id uuid.UUID, form checkout.Form) (OrderView, error) {
	s, err := a.sessions.Get(id)
	if err != nil {
		return OrderView{}, err
	}
	order, err := a.checkout.PlaceOrder(ctx, s.Cart, s.Pricing.Country(), form)
	if err != nil {
		return OrderView{}, err
	}
	s.RecordOrder(order)
	return orderView(order, s.Pricing.ExchangeRate()), nil
}

// Orders lists the orders placed in the session, oldest first.
func (a *App) Orders(id uuid.UUID) ([]OrderView, error) {
	s, err := a.sessions.Get(id)
	if err != nil {
		return nil, err
	}
	orders := s.Orders()
	views := make([]OrderView, len(orders))
	for i, o := range orders {
		views[i] = orderView(o, s.Pricing.ExchangeRate())
	}
	return views, nil
}

func (a *App) pricingFor(id uuid.UUID) (pricing.Snapshot, error) {
	if id == uuid.Nil {
		return pricing.NewStore().Snapshot(), nil
	}
	s, err := a.sessions.Get(id)
	if err != nil {
		return pricing.Snapshot{}, err
	}
	return s.Pricing.Snapshot(), nil
}

// cartView renders one snapshot of the cart so totals match the items.
func cartView(s *session.Session) CartView {
	items := s.Cart.Items()
	snap := s.Pricing.Snapshot()
	views := make([]LineItemView, len(items))
	for i, item := range items {
		views[i] = lineItemView(item, snap)
	}
	subtotal := logic.Subtotal(items)
	return CartView{
		SessionID:         s.ID,
		Region:            snap.Region,
		Items:             views,
		ItemCount:         logic.ItemCount(items),
		Subtotal:          subtotal,
		FormattedSubtotal: snap.Format(subtotal),
	}
}
