package catalog

import (
	"fmt"
	"sort"
	"strings"

	"rosegold_back_end/internal/models"
)

// DefaultMaxPrice is the top of the shop's price slider.
const DefaultMaxPrice = 50000

// AllCollections selects every collection.
const AllCollections = "all"

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
)

// ParseSortKey maps unknown or empty keys to SortFeatured.
func ParseSortKey(raw string) SortKey {
	switch k := SortKey(raw); k {
	case SortPriceLow, SortPriceHigh, SortRating:
		return k
	default:
		return SortFeatured
	}
}

// Criteria are the shop filters. Empty sets and an empty or "all"
// collection do not filter; MaxPrice nil means no upper bound.
type Criteria struct {
	Collection string
	Categories []string
	Styles     []string
	MaxPrice   *int
}

// Matches reports whether p passes every active filter.
func (c Criteria) Matches(p models.Product) bool {
	if c.Collection != "" && c.Collection != AllCollections && string(p.Collection) != c.Collection {
		return false
	}
	if len(c.Categories) > 0 && !contains(c.Categories, p.Category) {
		return false
	}
	if len(c.Styles) > 0 && !contains(c.Styles, p.Style) {
		return false
	}
	if c.MaxPrice != nil && p.Price > *c.MaxPrice {
		return false
	}
	return true
}

// Title is the shop page heading for these criteria.
func (c Criteria) Title() string {
	if c.Collection != "" && c.Collection != AllCollections {
		return fmt.Sprintf("%s's Collection", capitalize(c.Collection))
	}
	if len(c.Categories) == 1 {
		return fmt.Sprintf("Shop %ss", c.Categories[0])
	}
	return "All Jewelry"
}

// Query filters products by c and orders the result by key. It never
// modifies products and always returns a fresh slice. Every ordering is
// stable: entries with equal keys keep their input order.
func Query(products []models.Product, c Criteria, key SortKey) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if c.Matches(p) {
			out = append(out, p)
		}
	}

	switch key {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	default:
		// best sellers first, nothing else
		sort.SliceStable(out, func(i, j int) bool { return out[i].IsBestSeller && !out[j].IsBestSeller })
	}
	return out
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
