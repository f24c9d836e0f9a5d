package memory

import (
	"github.com/mrops-br/shopwave-api/internal/domain"
	"github.com/shopspring/decimal"
)

// SeedProducts returns the compiled-in storefront catalog in featured order
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:            "1",
			Name:          "Wireless Headphones Pro",
			Price:         decimal.RequireFromString("299.99"),
			OriginalPrice: original("399.99"),
			Category:      domain.CategoryElectronics,
			Rating:        4.8,
			Reviews:       124,
			Image:         "🎧",
			Description:   "Premium noise-canceling wireless headphones with 30-hour battery life.",
			InStock:       true,
			OnSale:        true,
		},
		{
			ID:          "2",
			Name:        "Smart Watch Series X",
			Price:       decimal.RequireFromString("449.99"),
			Category:    domain.CategoryElectronics,
			Rating:      4.6,
			Reviews:     89,
			Image:       "⌚",
			Description: "Advanced fitness tracking with heart rate monitor and GPS.",
			InStock:     true,
		},
		{
			ID:            "3",
			Name:          "Designer Sneakers",
			Price:         decimal.RequireFromString("189.99"),
			OriginalPrice: original("249.99"),
			Category:      domain.CategoryFashion,
			Rating:        4.9,
			Reviews:       203,
			Image:         "👟",
			Description:   "Premium comfort sneakers with sustainable materials.",
			InStock:       true,
			OnSale:        true,
		},
		{
			ID:          "4",
			Name:        "Coffee Maker Deluxe",
			Price:       decimal.RequireFromString("129.99"),
			Category:    domain.CategoryHome,
			Rating:      4.5,
			Reviews:     76,
			Image:       "☕",
			Description: "Programmable coffee maker with built-in grinder.",
		},
		{
			ID:            "5",
			Name:          "Leather Laptop Bag",
			Price:         decimal.RequireFromString("79.99"),
			OriginalPrice: original("99.99"),
			Category:      domain.CategoryFashion,
			Rating:        4.7,
			Reviews:       156,
			Image:         "💼",
			Description:   "Handcrafted leather bag perfect for professionals.",
			InStock:       true,
			OnSale:        true,
		},
		{
			ID:          "6",
			Name:        "Bluetooth Speaker",
			Price:       decimal.RequireFromString("89.99"),
			Category:    domain.CategoryElectronics,
			Rating:      4.4,
			Reviews:     92,
			Image:       "🔊",
			Description: "Portable speaker with 360-degree sound and waterproof design.",
			InStock:     true,
		},
	}
}

func original(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}
