package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mrops-br/shopwave-api/internal/app/dto"
	"github.com/mrops-br/shopwave-api/internal/app/session"
	"github.com/mrops-br/shopwave-api/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/currency"
)

// CatalogService handles catalog browsing use cases
type CatalogService struct {
	repo              domain.CatalogRepository
	session           *session.Session
	currency          currency.Unit
	tracer            trace.Tracer
	logger            *slog.Logger
	catalogOperations metric.Int64Counter
	emptyResults      metric.Int64Counter
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	repo domain.CatalogRepository,
	sess *session.Session,
	unit currency.Unit,
	tracer trace.Tracer,
	meter metric.Meter,
	logger *slog.Logger,
) *CatalogService {
	catalogOperations, _ := meter.Int64Counter(
		"storefront.catalog.operations",
		metric.WithDescription("Total number of catalog operations"),
	)

	emptyResults, _ := meter.Int64Counter(
		"storefront.catalog.empty_results",
		metric.WithDescription("Browse requests that matched no product"),
	)

	return &CatalogService{
		repo:              repo,
		session:           sess,
		currency:          unit,
		tracer:            tracer,
		logger:            logger,
		catalogOperations: catalogOperations,
		emptyResults:      emptyResults,
	}
}

// ListCategories returns the filterable categories, "all" first
func (s *CatalogService) ListCategories(ctx context.Context) []*dto.CategoryResponse {
	_, span := s.tracer.Start(ctx, "CatalogService.ListCategories")
	defer span.End()

	categories := domain.Categories()
	responses := make([]*dto.CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = &dto.CategoryResponse{ID: c.ID, Name: c.Name, Icon: c.Icon}
	}

	recordOperation(ctx, s.catalogOperations, "categories", resultSuccess)
	return responses
}

// BrowseProducts derives the visible products for the requested filter selection
func (s *CatalogService) BrowseProducts(ctx context.Context, req *dto.BrowseProductsRequest) (*dto.ProductListResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.BrowseProducts")
	defer span.End()

	span.SetAttributes(
		attribute.String("filter.search", req.Search),
		attribute.String("filter.category", req.Category),
		attribute.String("filter.sort", req.Sort),
	)

	filter, err := parseFilter(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid filter")
		s.logger.WarnContext(ctx, "Invalid browse filter",
			slog.String("error", err.Error()),
		)
		recordOperation(ctx, s.catalogOperations, "browse", resultInvalidArg)
		return nil, err
	}

	products, err := s.repo.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to retrieve products")
		s.logger.ErrorContext(ctx, "Failed to list products",
			slog.String("error", err.Error()),
		)
		recordOperation(ctx, s.catalogOperations, "browse", resultFailure)
		return nil, fmt.Errorf("repo.FindAll: %w", err)
	}

	visible := domain.VisibleProducts(products, filter)
	wishlist := s.session.Snapshot().Wishlist

	span.SetAttributes(attribute.Int("product.count", len(visible)))
	if len(visible) == 0 {
		s.emptyResults.Add(ctx, 1)
	}
	recordOperation(ctx, s.catalogOperations, "browse", resultSuccess)

	s.logger.InfoContext(ctx, "Products browsed",
		slog.String("search", filter.Search),
		slog.String("category", string(filter.Category)),
		slog.String("sort", string(filter.Sort)),
		slog.Int("count", len(visible)),
	)

	span.SetStatus(codes.Ok, "Products browsed successfully")
	return &dto.ProductListResponse{
		Heading:  filter.Category.DisplayName(),
		Search:   filter.Search,
		Category: filter.Category,
		Sort:     filter.Sort,
		Count:    len(visible),
		Empty:    len(visible) == 0,
		Products: dto.ToProductResponseList(visible, s.currency, wishlist),
	}, nil
}

// GetProduct retrieves a product by ID
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.GetProduct")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", id))

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Product not found")
		result := resultFailure
		if errors.Is(err, domain.ErrProductNotFound) {
			result = resultNotFound
		}
		recordOperation(ctx, s.catalogOperations, "read", result)
		return nil, fmt.Errorf("repo.FindByID: %w", err)
	}

	recordOperation(ctx, s.catalogOperations, "read", resultSuccess)

	span.SetStatus(codes.Ok, "Product retrieved successfully")
	return dto.ToProductResponse(product, s.currency, s.session.Snapshot().Wishlist), nil
}

func parseFilter(req *dto.BrowseProductsRequest) (domain.FilterState, error) {
	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return domain.FilterState{}, err
	}
	sortKey, err := domain.ParseSortKey(req.Sort)
	if err != nil {
		return domain.FilterState{}, err
	}
	return domain.FilterState{
		Search:   req.Search,
		Category: category,
		Sort:     sortKey,
	}, nil
}
