package domain_test

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/mrops-br/shopwave-api/internal/domain"
	"github.com/shopspring/decimal"
)

var productCategories = []domain.Category{
	domain.CategoryElectronics,
	domain.CategoryFashion,
	domain.CategoryHome,
}

var decimalComparer = cmp.Comparer(func(x, y decimal.Decimal) bool {
	return x.Equal(y)
})

func randomProduct() domain.Product {
	p := domain.Product{
		ID:          gofakeit.UUID(),
		Name:        gofakeit.ProductName(),
		Price:       randomPrice(),
		Category:    productCategories[gofakeit.IntRange(0, len(productCategories)-1)],
		Rating:      float64(gofakeit.IntRange(0, 50)) / 10,
		Reviews:     gofakeit.IntRange(0, 500),
		Image:       gofakeit.Emoji(),
		Description: gofakeit.ProductDescription(),
		InStock:     gofakeit.Bool(),
	}
	if gofakeit.Bool() {
		p.OnSale = true
		p.OriginalPrice = decimal.NewNullDecimal(p.Price.Add(decimal.NewFromInt(int64(gofakeit.IntRange(1, 100)))))
	}
	return p
}

func randomCatalog(n int) []domain.Product {
	products := make([]domain.Product, n)
	for i := range products {
		products[i] = randomProduct()
	}
	return products
}

func randomPrice() decimal.Decimal {
	return decimal.NewFromFloat(gofakeit.Price(1, 500)).Round(2)
}

func product(id, name string, price string, category domain.Category, rating float64, inStock bool) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Category: category,
		Rating:   rating,
		InStock:  inStock,
	}
}

func ids(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}
