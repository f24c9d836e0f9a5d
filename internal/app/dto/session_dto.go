package dto

import (
	"time"

	"github.com/mrops-br/shopwave-api/internal/app/session"
)

// SessionResponse summarises the shopper's session
type SessionResponse struct {
	ID            string    `json:"id"`
	StartedAt     time.Time `json:"started_at"`
	CartItemCount int       `json:"cart_item_count"`
	WishlistCount int       `json:"wishlist_count"`
}

func ToSessionResponse(s session.State) *SessionResponse {
	return &SessionResponse{
		ID:            s.ID.String(),
		StartedAt:     s.StartedAt,
		CartItemCount: s.Cart.ItemCount(),
		WishlistCount: s.Wishlist.Len(),
	}
}
