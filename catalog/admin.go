package catalog

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/f-coded/omotanwa-aesthetics-glow/common"
)

// DefaultCategory is used when an upload leaves the category blank.
const DefaultCategory = "cleansers"

// DefaultRating is the rating a freshly uploaded product starts with.
const DefaultRating = 5.0

// NewProduct is the admin upload form.
type NewProduct struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	Featured    bool            `json:"featured"`
	NewArrival  bool            `json:"newArrival"`
	Rating      *float64        `json:"rating,omitempty"`
	Tags        []string        `json:"tags"`
	Images      []string        `json:"images"`
	Ingredients string          `json:"ingredients,omitempty"`
	HowToUse    string          `json:"howToUse,omitempty"`
	Benefits    string          `json:"benefits,omitempty"`
}

// Slug derives a product ID from a display name: "Glow Oil (50ml)" becomes
// "glow-oil-50ml".
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Add validates an upload and appends it to the catalog.
func (c *Catalog) Add(np NewProduct) (Product, error) {
	name := strings.TrimSpace(np.Name)
	rating := DefaultRating
	if np.Rating != nil {
		rating = *np.Rating
	}
	if err := common.FirstError(
		common.RequirePresent(Slug(name), ErrMsgNameRequired),
		common.RequireNonNegative(np.Stock, ErrMsgStockNegative),
	); err != nil {
		return Product{}, err
	}
	if np.Price.IsNegative() {
		return Product{}, common.NewInvalidArgument(ErrMsgPriceNegative)
	}
	if rating < 0 || rating > 5 {
		return Product{}, common.NewInvalidArgument(ErrMsgRatingRange)
	}
	if len(np.Images) == 0 {
		return Product{}, common.NewInvalidArgument(ErrMsgImageRequired)
	}

	category := strings.TrimSpace(np.Category)
	if category == "" {
		category = DefaultCategory
	}
	tags := make([]string, 0, len(np.Tags))
	for _, tag := range np.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	p := Product{
		ID:          Slug(name),
		Name:        name,
		Description: np.Description,
		Price:       np.Price,
		Images:      append([]string(nil), np.Images...),
		Category:    category,
		Tags:        tags,
		Stock:       np.Stock,
		Rating:      rating,
		Reviews:     []Review{},
		Featured:    np.Featured,
		NewArrival:  np.NewArrival,
		Ingredients: np.Ingredients,
		HowToUse:    np.HowToUse,
		Benefits:    np.Benefits,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.byID[p.ID]; ok {
		return Product{}, common.NewFailedPreconditionf("%s: %s", ErrMsgProductExists, p.ID)
	}
	c.byID[p.ID] = len(c.products)
	c.products = append(c.products, p)
	return p.Clone(), nil
}
