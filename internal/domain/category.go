package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidCategory = errors.New("invalid category")

// Category is a product category, or CategoryAll when used as a filter
type Category string

const (
	CategoryAll         Category = "all"
	CategoryElectronics Category = "electronics"
	CategoryFashion     Category = "fashion"
	CategoryHome        Category = "home"
)

// CategoryInfo pairs a category with its display name and icon glyph
type CategoryInfo struct {
	ID   Category
	Name string
	Icon string
}

var categories = []CategoryInfo{
	{ID: CategoryAll, Name: "All Products", Icon: "🛍️"},
	{ID: CategoryElectronics, Name: "Electronics", Icon: "📱"},
	{ID: CategoryFashion, Name: "Fashion", Icon: "👕"},
	{ID: CategoryHome, Name: "Home & Living", Icon: "🏠"},
}

// Categories returns the filterable categories in display order, "all" first
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory parses a filter category. Empty input means CategoryAll.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return CategoryAll, nil
	}
	for _, c := range categories {
		if string(c.ID) == s {
			return c.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// IsProductCategory reports whether a product may belong to c
func (c Category) IsProductCategory() bool {
	return c != CategoryAll && c.known()
}

// DisplayName returns the heading shown for the category
func (c Category) DisplayName() string {
	for _, info := range categories {
		if info.ID == c {
			return info.Name
		}
	}
	return string(c)
}

func (c Category) known() bool {
	for _, info := range categories {
		if info.ID == c {
			return true
		}
	}
	return false
}
