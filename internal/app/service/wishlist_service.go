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
)

// WishlistService handles wishlist use cases for the session
type WishlistService struct {
	repo               domain.CatalogRepository
	session            *session.Session
	tracer             trace.Tracer
	logger             *slog.Logger
	wishlistOperations metric.Int64Counter
}

// NewWishlistService creates a new wishlist service
func NewWishlistService(
	repo domain.CatalogRepository,
	sess *session.Session,
	tracer trace.Tracer,
	meter metric.Meter,
	logger *slog.Logger,
) *WishlistService {
	wishlistOperations, _ := meter.Int64Counter(
		"storefront.wishlist.operations",
		metric.WithDescription("Total number of wishlist operations"),
	)

	return &WishlistService{
		repo:               repo,
		session:            sess,
		tracer:             tracer,
		logger:             logger,
		wishlistOperations: wishlistOperations,
	}
}

// GetWishlist returns the favourited product ids
func (s *WishlistService) GetWishlist(ctx context.Context) *dto.WishlistResponse {
	_, span := s.tracer.Start(ctx, "WishlistService.GetWishlist")
	defer span.End()

	recordOperation(ctx, s.wishlistOperations, "read", resultSuccess)
	return dto.ToWishlistResponse(s.session.Snapshot().Wishlist)
}

// IsWishlisted reports whether the product is currently favourited.
// Ids outside the catalog are never members.
func (s *WishlistService) IsWishlisted(ctx context.Context, productID string) bool {
	ctx, span := s.tracer.Start(ctx, "WishlistService.IsWishlisted")
	defer span.End()

	wishlisted := s.session.Snapshot().Wishlist.Contains(productID)
	span.SetAttributes(
		attribute.String("product.id", productID),
		attribute.Bool("product.wishlisted", wishlisted),
	)

	recordOperation(ctx, s.wishlistOperations, "contains", resultSuccess)
	return wishlisted
}

// ToggleWishlist adds the product when absent and removes it when present.
// Only catalog products can be toggled.
func (s *WishlistService) ToggleWishlist(ctx context.Context, productID string) (*dto.ToggleWishlistResponse, error) {
	ctx, span := s.tracer.Start(ctx, "WishlistService.ToggleWishlist")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", productID))

	if _, err := s.repo.FindByID(ctx, productID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Product lookup failed")
		result := resultFailure
		if errors.Is(err, domain.ErrProductNotFound) {
			result = resultNotFound
		}
		recordOperation(ctx, s.wishlistOperations, "toggle", result)
		return nil, fmt.Errorf("repo.FindByID: %w", err)
	}

	state := s.session.UpdateWishlist(func(w domain.Wishlist) domain.Wishlist {
		return w.Toggle(productID)
	})
	wishlisted := state.Wishlist.Contains(productID)

	recordOperation(ctx, s.wishlistOperations, "toggle", resultSuccess)
	span.SetAttributes(attribute.Bool("product.wishlisted", wishlisted))

	s.logger.InfoContext(ctx, "Wishlist toggled",
		slog.String("product_id", productID),
		slog.Bool("wishlisted", wishlisted),
	)

	span.SetStatus(codes.Ok, "Wishlist toggled")
	return &dto.ToggleWishlistResponse{
		ProductID:  productID,
		Wishlisted: wishlisted,
		Wishlist:   dto.ToWishlistResponse(state.Wishlist),
	}, nil
}
