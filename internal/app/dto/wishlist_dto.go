package dto

import "github.com/mrops-br/shopwave-api/internal/domain"

// WishlistResponse lists the favourited product ids
type WishlistResponse struct {
	ProductIDs []string `json:"product_ids"`
	Count      int      `json:"count"`
}

// WishlistStatusResponse reports whether one product is favourited
type WishlistStatusResponse struct {
	ProductID  string `json:"product_id"`
	Wishlisted bool   `json:"wishlisted"`
}

// ToggleWishlistResponse reports the membership after a toggle
type ToggleWishlistResponse struct {
	ProductID  string            `json:"product_id"`
	Wishlisted bool              `json:"wishlisted"`
	Wishlist   *WishlistResponse `json:"wishlist"`
}

func ToWishlistResponse(w domain.Wishlist) *WishlistResponse {
	return &WishlistResponse{
		ProductIDs: w.IDs(),
		Count:      w.Len(),
	}
}
