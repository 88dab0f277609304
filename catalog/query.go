package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/f-coded/omotanwa-aesthetics-glow/common"
)

// SortOrder selects the ordering of shop-page results.
type SortOrder string

const (
	SortFeatured  SortOrder = "featured"
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
	SortNameAsc   SortOrder = "name-asc"
	SortNameDesc  SortOrder = "name-desc"
	SortRating    SortOrder = "rating"
)

// SortOrders lists the accepted orderings in display order.
var SortOrders = []SortOrder{SortFeatured, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc, SortRating}

// ParseSortOrder validates s. The empty string means SortFeatured.
func ParseSortOrder(s string) (SortOrder, error) {
	if s == "" {
		return SortFeatured, nil
	}
	for _, o := range SortOrders {
		if string(o) == s {
			return o, nil
		}
	}
	return "", common.NewInvalidArgumentf("%s: %q", ErrMsgUnknownSort, s)
}

// Query describes a shop-page search. A zero MaxPrice means no upper bound.
type Query struct {
	Search   string
	Category string
	MinPrice decimal.Decimal
	MaxPrice decimal.Decimal
	Sort     SortOrder
}

// Search filters and orders the catalog.
func (c *Catalog) Search(q Query) ([]Product, error) {
	order, err := ParseSortOrder(string(q.Sort))
	if err != nil {
		return nil, err
	}
	if q.MinPrice.IsNegative() || q.MaxPrice.IsNegative() {
		return nil, common.NewInvalidArgument(ErrMsgPriceNegative)
	}
	if !q.MaxPrice.IsZero() && q.MinPrice.GreaterThan(q.MaxPrice) {
		return nil, common.NewInvalidArgument(ErrMsgPriceRangeInvalid)
	}

	term := strings.ToLower(strings.TrimSpace(q.Search))
	result := c.filter(func(p Product) bool {
		if term != "" && !matchesTerm(p, term) {
			return false
		}
		if q.Category != "" && q.Category != CategoryAll && p.Category != q.Category {
			return false
		}
		if p.Price.LessThan(q.MinPrice) {
			return false
		}
		if !q.MaxPrice.IsZero() && p.Price.GreaterThan(q.MaxPrice) {
			return false
		}
		return true
	})

	sortProducts(result, order)
	return result, nil
}

func matchesTerm(p Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.Category), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func sortProducts(products []Product, order SortOrder) {
	switch order {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	case SortNameAsc, SortNameDesc:
		// Collator is not safe for concurrent use.
		col := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(products, func(i, j int) bool {
			cmp := col.CompareString(products[i].Name, products[j].Name)
			if order == SortNameDesc {
				return cmp > 0
			}
			return cmp < 0
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Featured && !products[j].Featured
		})
	}
}
