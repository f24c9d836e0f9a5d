package memory

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/mrops-br/shopwave-api/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// CatalogRepository is an in-memory, read-only implementation of domain.CatalogRepository.
// Products are fixed at construction, so no locking is needed.
type CatalogRepository struct {
	products []domain.Product
	index    map[string]int
	tracer   trace.Tracer
	logger   *slog.Logger
}

// NewCatalogRepository creates a catalog holding products in the given order.
// Every product must be valid and ids must be unique.
func NewCatalogRepository(products []domain.Product, tracer trace.Tracer, logger *slog.Logger) (*CatalogRepository, error) {
	index := make(map[string]int, len(products))
	for i, p := range products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("product[%s]: %w", p.ID, err)
		}
		if _, dup := index[p.ID]; dup {
			return nil, fmt.Errorf("product[%s]: duplicate id", p.ID)
		}
		index[p.ID] = i
	}

	return &CatalogRepository{
		products: slices.Clone(products),
		index:    index,
		tracer:   tracer,
		logger:   logger,
	}, nil
}

// FindByID retrieves a product by ID
func (r *CatalogRepository) FindByID(ctx context.Context, id string) (domain.Product, error) {
	ctx, span := r.tracer.Start(ctx, "CatalogRepository.FindByID")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", id))

	i, exists := r.index[id]
	if !exists {
		span.RecordError(domain.ErrProductNotFound)
		span.SetStatus(codes.Error, "Product not found")
		r.logger.WarnContext(ctx, "Product not found",
			slog.String("product_id", id),
		)
		return domain.Product{}, domain.ErrProductNotFound
	}

	product := r.products[i]
	r.logger.DebugContext(ctx, "Product found in catalog",
		slog.String("product_id", id),
		slog.String("product_name", product.Name),
	)

	span.SetStatus(codes.Ok, "Product found")
	return product, nil
}

// FindAll retrieves all products in catalog order
func (r *CatalogRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	ctx, span := r.tracer.Start(ctx, "CatalogRepository.FindAll")
	defer span.End()

	products := slices.Clone(r.products)

	span.SetAttributes(attribute.Int("product.count", len(products)))

	r.logger.DebugContext(ctx, "Products retrieved from catalog",
		slog.Int("count", len(products)),
	)

	span.SetStatus(codes.Ok, "Products retrieved successfully")
	return products, nil
}
