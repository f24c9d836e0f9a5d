package domain

import (
	"maps"
	"slices"
)

// Wishlist is an immutable set of favourited product ids
type Wishlist struct {
	ids map[string]struct{}
}

// NewWishlist returns an empty wishlist
func NewWishlist() Wishlist {
	return Wishlist{}
}

// Toggle adds productID when absent and removes it when present
func (w Wishlist) Toggle(productID string) Wishlist {
	ids := maps.Clone(w.ids)
	if ids == nil {
		ids = make(map[string]struct{}, 1)
	}
	if _, ok := ids[productID]; ok {
		delete(ids, productID)
	} else {
		ids[productID] = struct{}{}
	}
	return Wishlist{ids: ids}
}

func (w Wishlist) Contains(productID string) bool {
	_, ok := w.ids[productID]
	return ok
}

func (w Wishlist) Len() int {
	return len(w.ids)
}

// IDs returns the members sorted ascending
func (w Wishlist) IDs() []string {
	ids := slices.AppendSeq(make([]string, 0, len(w.ids)), maps.Keys(w.ids))
	slices.Sort(ids)
	return ids
}
