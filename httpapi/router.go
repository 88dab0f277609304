// Package httpapi serves the storefront as a JSON HTTP API.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/f-coded/omotanwa-aesthetics-glow/catalog"
	"github.com/f-coded/omotanwa-aesthetics-glow/checkout"
	"github.com/f-coded/omotanwa-aesthetics-glow/common"
	"github.com/f-coded/omotanwa-aesthetics-glow/storefront"
)

const ErrMsgPriceFilterInvalid = "Price filters must be decimal numbers"

type handler struct {
	app    *storefront.App
	logger *zap.Logger
}

type itemBody struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type quantityBody struct {
	Quantity int `json:"quantity"`
}

type regionBody struct {
	Region string `json:"region"`
}

// NewRouter builds the HTTP API. checkoutLimiter may be nil.
func NewRouter(app *storefront.App, logger *zap.Logger, checkoutLimiter *IPLimiter) http.Handler {
	h := &handler{app: app, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "SERVING"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", h.listProducts)
		r.Get("/products/featured", h.listFeatured)
		r.Get("/products/new-arrivals", h.listNewArrivals)
		r.Get("/products/{productID}", h.getProduct)
		r.Get("/categories", h.listCategories)
		r.Post("/admin/products", h.addProduct)

		r.Post("/sessions", h.openSession)
		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Delete("/", h.closeSession)

			r.Get("/cart", h.getCart)
			r.Delete("/cart", h.clearCart)
			r.Post("/cart/items", h.addItem)
			r.Patch("/cart/items/{productID}", h.updateQuantity)
			r.Delete("/cart/items/{productID}", h.removeItem)

			r.Get("/region", h.getRegion)
			r.Put("/region", h.setRegion)
			r.Get("/price", h.formatPrice)

			r.Get("/checkout/quote", h.getQuote)
			r.Group(func(r chi.Router) {
				if checkoutLimiter != nil {
					r.Use(checkoutLimiter.Middleware)
				}
				r.Post("/checkout", h.placeOrder)
			})
			r.Get("/orders", h.listOrders)
		})
	})
	return r
}

func sessionID(r *http.Request) (uuid.UUID, error) {
	return storefront.ParseSessionID(chi.URLParam(r, "sessionID"))
}

func decimalParam(r *http.Request, name string) (decimal.Decimal, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, common.NewInvalidArgument(ErrMsgPriceFilterInvalid)
	}
	return d, nil
}

// querySession reads the optional ?session= parameter. Without it, prices
// are rendered in the base region.
func querySession(r *http.Request) (uuid.UUID, error) {
	s := r.URL.Query().Get("session")
	if s == "" {
		return uuid.Nil, nil
	}
	return storefront.ParseSessionID(s)
}

func (h *handler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	id, err := querySession(r)
	if err != nil {
		writeError(w, err)
		return
	}
	minPrice, err := decimalParam(r, "minPrice")
	if err != nil {
		writeError(w, err)
		return
	}
	maxPrice, err := decimalParam(r, "maxPrice")
	if err != nil {
		writeError(w, err)
		return
	}
	products, err := h.app.Products(id, catalog.Query{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Sort:     catalog.SortOrder(q.Get("sort")),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

func (h *handler) listFeatured(w http.ResponseWriter, r *http.Request) {
	h.listWith(w, r, h.app.Featured)
}

func (h *handler) listNewArrivals(w http.ResponseWriter, r *http.Request) {
	h.listWith(w, r, h.app.NewArrivals)
}

func (h *handler) listWith(w http.ResponseWriter, r *http.Request, list func(uuid.UUID) ([]storefront.ProductView, error)) {
	id, err := querySession(r)
	if err != nil {
		writeError(w, err)
		return
	}
	products, err := list(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

func (h *handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := querySession(r)
	if err != nil {
		writeError(w, err)
		return
	}
	view, err := h.app.Product(id, chi.URLParam(r, "productID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *handler) listCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"categories": h.app.Categories()})
}

func (h *handler) addProduct(w http.ResponseWriter, r *http.Request) {
	var np catalog.NewProduct
	if err := decodeJSON(r, &np); err != nil {
		writeError(w, err)
		return
	}
	view, err := h.app.AddProduct(np)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *handler) openSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, h.app.OpenSession())
}

func (h *handler) closeSession(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.app.CloseSession(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// respond runs call against the path session and writes its result.
func respond[T any](w http.ResponseWriter, r *http.Request, call func(uuid.UUID) (T, error)) {
	id, err := sessionID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	v, err := call(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *handler) getCart(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.app.Cart)
}

func (h *handler) clearCart(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.app.ClearCart)
}

func (h *handler) addItem(w http.ResponseWriter, r *http.Request) {
	var body itemBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}
	respond(w, r, func(id uuid.UUID) (storefront.CartView, error) {
		return h.app.AddItem(id, body.ProductID, body.Quantity)
	})
}

func (h *handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var body quantityBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}
	productID := chi.URLParam(r, "productID")
	respond(w, r, func(id uuid.UUID) (storefront.CartView, error) {
		return h.app.UpdateQuantity(id, productID, body.Quantity)
	})
}

func (h *handler) removeItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	respond(w, r, func(id uuid.UUID) (storefront.CartView, error) {
		return h.app.RemoveItem(id, productID)
	})
}

func (h *handler) getRegion(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.app.Region)
}

func (h *handler) setRegion(w http.ResponseWriter, r *http.Request) {
	var body regionBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}
	respond(w, r, func(id uuid.UUID) (storefront.RegionView, error) {
		return h.app.SetRegion(id, body.Region)
	})
}

func (h *handler) formatPrice(w http.ResponseWriter, r *http.Request) {
	amount, err := storefront.ParseAmount(r.URL.Query().Get("amount"))
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, r, func(id uuid.UUID) (storefront.PriceView, error) {
		return h.app.FormatPrice(id, amount)
	})
}

func (h *handler) getQuote(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.app.Quote)
}

func (h *handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var form checkout.Form
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, err)
		return
	}
	id, err := sessionID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	order, err := h.app.PlaceOrder(r.Context(), id, form)
	if err != nil {
		writeError(w, err)
		return
	}
	h.logger.Info("order placed",
		zap.String("session_id", id.String()),
		zap.String("order_number", order.Number),
		zap.String("remote_ip", remoteIP(r)),
	)
	writeJSON(w, http.StatusCreated, order)
}

func (h *handler) listOrders(w http.ResponseWriter, r *http.Request) {
	respond(w, r, func(id uuid.UUID) (map[string]interface{}, error) {
		orders, err := h.app.Orders(id)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"orders": orders}, nil
	})
}
