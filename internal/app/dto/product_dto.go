package dto

import (
	"github.com/mrops-br/shopwave-api/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// BrowseProductsRequest carries the view's filter selection
type BrowseProductsRequest struct {
	Search   string `query:"search" validate:"max=100"`
	Category string `query:"category" validate:"max=32"`
	Sort     string `query:"sort" validate:"max=32"`
}

// CategoryResponse represents a selectable category
type CategoryResponse struct {
	ID   domain.Category `json:"id"`
	Name string          `json:"name"`
	Icon string          `json:"icon"`
}

// ProductResponse represents a product card
type ProductResponse struct {
	ID                   string              `json:"id"`
	Name                 string              `json:"name"`
	Description          string              `json:"description"`
	Image                string              `json:"image"`
	Category             domain.Category     `json:"category"`
	Price                decimal.Decimal     `json:"price"`
	PriceDisplay         string              `json:"price_display"`
	OriginalPrice        decimal.NullDecimal `json:"original_price"`
	OriginalPriceDisplay string              `json:"original_price_display,omitempty"`
	Savings              decimal.NullDecimal `json:"savings"`
	SavingsDisplay       string              `json:"savings_display,omitempty"`
	Rating               float64             `json:"rating"`
	Reviews              int                 `json:"reviews"`
	FullStars            int                 `json:"full_stars"`
	InStock              bool                `json:"in_stock"`
	OnSale               bool                `json:"on_sale"`
	Wishlisted           bool                `json:"wishlisted"`
}

// ProductListResponse is the derived view for one filter selection
type ProductListResponse struct {
	Heading  string             `json:"heading"`
	Search   string             `json:"search"`
	Category domain.Category    `json:"category"`
	Sort     domain.SortKey     `json:"sort"`
	Count    int                `json:"count"`
	Empty    bool               `json:"empty"`
	Products []*ProductResponse `json:"products"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p domain.Product, unit currency.Unit, wishlist domain.Wishlist) *ProductResponse {
	resp := &ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Image:         p.Image,
		Category:      p.Category,
		Price:         p.Price,
		PriceDisplay:  domain.Money{Amount: p.Price, Currency: unit}.String(),
		OriginalPrice: p.OriginalPrice,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
		FullStars:     p.FullStars(),
		InStock:       p.InStock,
		OnSale:        p.OnSale,
		Wishlisted:    wishlist.Contains(p.ID),
	}
	if p.OriginalPrice.Valid {
		resp.OriginalPriceDisplay = domain.Money{Amount: p.OriginalPrice.Decimal, Currency: unit}.String()
	}
	if savings, ok := p.Savings(); ok {
		resp.Savings = decimal.NewNullDecimal(savings)
		resp.SavingsDisplay = domain.Money{Amount: savings, Currency: unit}.String()
	}
	return resp
}

// ToProductResponseList converts a list of domain Products to ProductResponse list
func ToProductResponseList(products []domain.Product, unit currency.Unit, wishlist domain.Wishlist) []*ProductResponse {
	responses := make([]*ProductResponse, len(products))
	for i, p := range products {
		responses[i] = ToProductResponse(p, unit, wishlist)
	}
	return responses
}
