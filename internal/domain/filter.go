package domain

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

var ErrInvalidSortKey = errors.New("invalid sort key")

// SortKey selects the ordering of the visible products
type SortKey string

const (
	SortFeatured         SortKey = "featured"
	SortPriceAscending   SortKey = "price-ascending"
	SortPriceDescending  SortKey = "price-descending"
	SortRatingDescending SortKey = "rating-descending"
)

// sortAliases maps the short storefront identifiers onto sort keys
var sortAliases = map[string]SortKey{
	"price-low":  SortPriceAscending,
	"price-high": SortPriceDescending,
	"rating":     SortRatingDescending,
}

// ParseSortKey parses a sort key or one of its aliases. Empty input means SortFeatured.
func ParseSortKey(s string) (SortKey, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch SortKey(s) {
	case "":
		return SortFeatured, nil
	case SortFeatured, SortPriceAscending, SortPriceDescending, SortRatingDescending:
		return SortKey(s), nil
	}
	if key, ok := sortAliases[s]; ok {
		return key, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
}

// FilterState is the view's search, category and sort selection
type FilterState struct {
	Search   string
	Category Category
	Sort     SortKey
}

// DefaultFilterState matches every product in catalog order
func DefaultFilterState() FilterState {
	return FilterState{Category: CategoryAll, Sort: SortFeatured}
}

// Matches reports whether p passes both the search and the category predicate
func (f FilterState) Matches(p Product) bool {
	return f.matches(cases.Fold(), p)
}

func (f FilterState) matches(fold cases.Caser, p Product) bool {
	if f.Category != "" && f.Category != CategoryAll && f.Category != p.Category {
		return false
	}
	if f.Search == "" {
		return true
	}
	return strings.Contains(fold.String(p.Name), fold.String(f.Search))
}

// VisibleProducts derives the displayed products from the catalog. The result
// is never nil, and ties in the selected ordering keep catalog order.
func VisibleProducts(catalog []Product, f FilterState) []Product {
	fold := cases.Fold()
	visible := make([]Product, 0, len(catalog))
	for _, p := range catalog {
		if f.matches(fold, p) {
			visible = append(visible, p)
		}
	}

	switch f.Sort {
	case SortPriceAscending:
		slices.SortStableFunc(visible, func(a, b Product) int {
			return a.Price.Cmp(b.Price)
		})
	case SortPriceDescending:
		slices.SortStableFunc(visible, func(a, b Product) int {
			return b.Price.Cmp(a.Price)
		})
	case SortRatingDescending:
		slices.SortStableFunc(visible, func(a, b Product) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	}

	return visible
}
