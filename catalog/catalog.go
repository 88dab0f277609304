package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/f-coded/omotanwa-aesthetics-glow/common"
)

// CategoryAll is the pseudo-category that disables category filtering.
const CategoryAll = "all"

//go:embed products.json
var fixture []byte

// Catalog is the in-memory product list. Products keep fixture order.
type Catalog struct {
	mu       sync.RWMutex
	products []Product
	byID     map[string]int
}

// New creates a catalog from products. Duplicate IDs are rejected.
func New(products []Product) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]int, len(products))}
	for _, p := range products {
		if err := common.RequirePresent(p.ID, "Product ID is required"); err != nil {
			return nil, err
		}
		if _, ok := c.byID[p.ID]; ok {
			return nil, common.NewFailedPreconditionf("%s: %s", ErrMsgProductExists, p.ID)
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p.Clone())
	}
	return c, nil
}

// Default loads the catalog the storefront ships with.
func Default() (*Catalog, error) {
	var products []Product
	if err := json.Unmarshal(fixture, &products); err != nil {
		return nil, fmt.Errorf("decode product fixture: %w", err)
	}
	return New(products)
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}

// Get returns the product with the given ID.
func (c *Catalog) Get(id string) (Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.byID[id]
	if !ok {
		return Product{}, common.NewNotFound(ErrMsgProductNotFound)
	}
	return c.products[i].Clone(), nil
}

// All returns every product in catalog order.
func (c *Catalog) All() []Product {
	return c.filter(func(Product) bool { return true })
}

// Featured returns the products flagged for the home page.
func (c *Catalog) Featured() []Product {
	return c.filter(func(p Product) bool { return p.Featured })
}

// NewArrivals returns the products flagged as new.
func (c *Catalog) NewArrivals() []Product {
	return c.filter(func(p Product) bool { return p.NewArrival })
}

// Categories returns the distinct categories sorted, with CategoryAll first.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	seen := make(map[string]struct{})
	for _, p := range c.products {
		seen[p.Category] = struct{}{}
	}
	c.mu.RUnlock()

	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return append([]string{CategoryAll}, categories...)
}

func (c *Catalog) filter(keep func(Product) bool) []Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if keep(p) {
			result = append(result, p.Clone())
		}
	}
	return result
}
