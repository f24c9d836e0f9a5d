package domain

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidProductID            = errors.New("product id is required")
	ErrInvalidProductName          = errors.New("product name is required")
	ErrInvalidProductPrice         = errors.New("product price must not be negative")
	ErrInvalidProductOriginalPrice = errors.New("product original price must be greater than price and only set on sale")
	ErrInvalidProductRating        = errors.New("product rating must be between 0 and 5")
	ErrInvalidProductReviews       = errors.New("product review count must not be negative")
)

// MaxRating is the upper bound of a product rating
const MaxRating = 5.0

// Product represents an immutable catalog entry
type Product struct {
	ID            string
	Name          string
	Price         decimal.Decimal
	OriginalPrice decimal.NullDecimal
	Category      Category
	Rating        float64
	Reviews       int
	Image         string
	Description   string
	InStock       bool
	OnSale        bool
}

// Validate performs business validation on the product
func (p Product) Validate() error {
	if p.ID == "" {
		return ErrInvalidProductID
	}
	if p.Name == "" {
		return ErrInvalidProductName
	}
	if p.Price.IsNegative() {
		return ErrInvalidProductPrice
	}
	if p.OriginalPrice.Valid && (!p.OnSale || p.OriginalPrice.Decimal.LessThanOrEqual(p.Price)) {
		return ErrInvalidProductOriginalPrice
	}
	if !p.Category.IsProductCategory() {
		return ErrInvalidCategory
	}
	if math.IsNaN(p.Rating) || p.Rating < 0 || p.Rating > MaxRating {
		return ErrInvalidProductRating
	}
	if p.Reviews < 0 {
		return ErrInvalidProductReviews
	}
	return nil
}

// FullStars is the number of filled stars shown for the rating.
func (p Product) FullStars() int {
	return int(math.Floor(p.Rating))
}

// Savings returns how much cheaper the product is than its original price,
// and false when the product carries no original price.
func (p Product) Savings() (decimal.Decimal, bool) {
	if !p.OriginalPrice.Valid {
		return decimal.Zero, false
	}
	return p.OriginalPrice.Decimal.Sub(p.Price), true
}
