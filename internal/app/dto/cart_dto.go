package dto

import (
	"github.com/mrops-br/shopwave-api/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// AddToCartRequest represents the request to add one unit of a product
type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required,max=64"`
}

// UpdateQuantityRequest sets a cart line's quantity; zero or less removes the line.
// The lte bound mirrors domain.MaxLineQuantity.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,lte=999"`
}

// CartLineResponse represents one cart line
type CartLineResponse struct {
	ProductID       string          `json:"product_id"`
	Name            string          `json:"name"`
	Image           string          `json:"image"`
	Price           decimal.Decimal `json:"price"`
	Quantity        int             `json:"quantity"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	SubtotalDisplay string          `json:"subtotal_display"`
}

// CartResponse represents the cart and its derived totals
type CartResponse struct {
	Lines        []*CartLineResponse `json:"lines"`
	ItemCount    int                 `json:"item_count"`
	Total        decimal.Decimal     `json:"total"`
	TotalDisplay string              `json:"total_display"`
	Empty        bool                `json:"empty"`
}

// ToCartResponse converts a domain Cart to CartResponse
func ToCartResponse(c domain.Cart, unit currency.Unit) *CartResponse {
	lines := c.Lines()
	resp := &CartResponse{
		Lines:        make([]*CartLineResponse, len(lines)),
		ItemCount:    c.ItemCount(),
		Total:        c.Total(),
		TotalDisplay: domain.Money{Amount: c.Total(), Currency: unit}.String(),
		Empty:        c.IsEmpty(),
	}
	for i, l := range lines {
		resp.Lines[i] = &CartLineResponse{
			ProductID:       l.Product.ID,
			Name:            l.Product.Name,
			Image:           l.Product.Image,
			Price:           l.Product.Price,
			Quantity:        l.Quantity,
			Subtotal:        l.Subtotal(),
			SubtotalDisplay: domain.Money{Amount: l.Subtotal(), Currency: unit}.String(),
		}
	}
	return resp
}
