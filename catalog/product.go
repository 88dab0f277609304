// Package catalog holds the in-memory product catalog: the fixture the
// storefront ships with, shop-page queries, and the admin upload mock.
package catalog

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Review is a customer review attached to a product.
type Review struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	UserName string    `json:"userName"`
	Rating   int       `json:"rating"`
	Comment  string    `json:"comment"`
	Date     time.Time `json:"date"`
}

// Product is a catalog entry. Price is in the base currency (USD).
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images"`
	Category    string          `json:"category"`
	Tags        []string        `json:"tags"`
	Stock       int             `json:"stock"`
	Rating      float64         `json:"rating"`
	Reviews     []Review        `json:"reviews"`
	Featured    bool            `json:"featured"`
	NewArrival  bool            `json:"newArrival"`
	Ingredients string          `json:"ingredients,omitempty"`
	HowToUse    string          `json:"howToUse,omitempty"`
	Benefits    string          `json:"benefits,omitempty"`
}

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	out := p
	out.Images = slices.Clone(p.Images)
	out.Tags = slices.Clone(p.Tags)
	out.Reviews = slices.Clone(p.Reviews)
	return out
}
