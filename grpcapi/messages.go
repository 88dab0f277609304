package grpcapi

import (
	"github.com/shopspring/decimal"

	"github.com/f-coded/omotanwa-aesthetics-glow/catalog"
	"github.com/f-coded/omotanwa-aesthetics-glow/checkout"
	"github.com/f-coded/omotanwa-aesthetics-glow/storefront"
)

// Request and response messages. They travel as JSON over gRPC.

type Empty struct{}

type SessionRequest struct {
	SessionID string `json:"sessionId"`
}

type ListProductsRequest struct {
	SessionID string          `json:"sessionId,omitempty"`
	Search    string          `json:"search,omitempty"`
	Category  string          `json:"category,omitempty"`
	MinPrice  decimal.Decimal `json:"minPrice"`
	MaxPrice  decimal.Decimal `json:"maxPrice"`
	Sort      string          `json:"sort,omitempty"`
}

type ListProductsResponse struct {
	Products []storefront.ProductView `json:"products"`
}

type GetProductRequest struct {
	SessionID string `json:"sessionId,omitempty"`
	ProductID string `json:"productId"`
}

type ListCategoriesResponse struct {
	Categories []string `json:"categories"`
}

type AddProductRequest struct {
	Product catalog.NewProduct `json:"product"`
}

type ItemRequest struct {
	SessionID string `json:"sessionId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity,omitempty"`
}

type SetRegionRequest struct {
	SessionID string `json:"sessionId"`
	Region    string `json:"region"`
}

type FormatPriceRequest struct {
	SessionID string          `json:"sessionId"`
	Amount    decimal.Decimal `json:"amount"`
}

type PlaceOrderRequest struct {
	SessionID string        `json:"sessionId"`
	Form      checkout.Form `json:"form"`
}

type ListOrdersResponse struct {
	Orders []storefront.OrderView `json:"orders"`
}
