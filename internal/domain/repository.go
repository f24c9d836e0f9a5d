package domain

import (
	"context"
	"errors"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// CatalogRepository defines the contract for the read-only product catalog
type CatalogRepository interface {
	FindByID(ctx context.Context, id string) (Product, error)
	// FindAll returns the products in catalog order
	FindAll(ctx context.Context) ([]Product, error)
}
