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

// CartService handles cart use cases for the session
type CartService struct {
	repo           domain.CatalogRepository
	session        *session.Session
	currency       currency.Unit
	tracer         trace.Tracer
	logger         *slog.Logger
	cartOperations metric.Int64Counter
	cartItems      metric.Int64Gauge
}

// NewCartService creates a new cart service
func NewCartService(
	repo domain.CatalogRepository,
	sess *session.Session,
	unit currency.Unit,
	tracer trace.Tracer,
	meter metric.Meter,
	logger *slog.Logger,
) *CartService {
	cartOperations, _ := meter.Int64Counter(
		"storefront.cart.operations",
		metric.WithDescription("Total number of cart operations"),
	)

	cartItems, _ := meter.Int64Gauge(
		"storefront.cart.items",
		metric.WithDescription("Units currently in the cart"),
		metric.WithUnit("{item}"),
	)

	return &CartService{
		repo:           repo,
		session:        sess,
		currency:       unit,
		tracer:         tracer,
		logger:         logger,
		cartOperations: cartOperations,
		cartItems:      cartItems,
	}
}

// GetCart returns the current cart
func (s *CartService) GetCart(ctx context.Context) *dto.CartResponse {
	_, span := s.tracer.Start(ctx, "CartService.GetCart")
	defer span.End()

	cart := s.session.Snapshot().Cart
	span.SetAttributes(attribute.Int("cart.item_count", cart.ItemCount()))

	recordOperation(ctx, s.cartOperations, "read", resultSuccess)
	return dto.ToCartResponse(cart, s.currency)
}

// AddToCart puts one unit of the product into the cart
func (s *CartService) AddToCart(ctx context.Context, productID string) (*dto.CartResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.AddToCart")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", productID))

	s.logger.InfoContext(ctx, "Adding product to cart",
		slog.String("product_id", productID),
	)

	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Product lookup failed")
		result := resultFailure
		if errors.Is(err, domain.ErrProductNotFound) {
			result = resultNotFound
		}
		recordOperation(ctx, s.cartOperations, "add", result)
		return nil, fmt.Errorf("repo.FindByID: %w", err)
	}

	state, err := s.session.UpdateCart(func(c domain.Cart) (domain.Cart, error) {
		return c.Add(product)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Add rejected")
		s.logger.WarnContext(ctx, "Product not added to cart",
			slog.String("product_id", productID),
			slog.String("error", err.Error()),
		)
		recordOperation(ctx, s.cartOperations, "add", resultRejected)
		return nil, fmt.Errorf("cart.Add: %w", err)
	}

	s.observe(ctx, state.Cart)
	recordOperation(ctx, s.cartOperations, "add", resultSuccess)

	line, _ := state.Cart.Line(productID)
	s.logger.InfoContext(ctx, "Product added to cart",
		slog.String("product_id", productID),
		slog.Int("quantity", line.Quantity),
		slog.Int("item_count", state.Cart.ItemCount()),
	)

	span.SetStatus(codes.Ok, "Product added to cart")
	return dto.ToCartResponse(state.Cart, s.currency), nil
}

// RemoveFromCart deletes the product's line; absent lines are left alone
func (s *CartService) RemoveFromCart(ctx context.Context, productID string) *dto.CartResponse {
	ctx, span := s.tracer.Start(ctx, "CartService.RemoveFromCart")
	defer span.End()

	span.SetAttributes(attribute.String("product.id", productID))

	var removed bool
	state, _ := s.session.UpdateCart(func(c domain.Cart) (domain.Cart, error) {
		_, removed = c.Line(productID)
		return c.Remove(productID), nil
	})

	result := resultSuccess
	if !removed {
		result = resultNoop
	}
	s.observe(ctx, state.Cart)
	recordOperation(ctx, s.cartOperations, "remove", result)

	s.logger.InfoContext(ctx, "Product removed from cart",
		slog.String("product_id", productID),
		slog.Bool("removed", removed),
	)

	span.SetStatus(codes.Ok, "Cart updated")
	return dto.ToCartResponse(state.Cart, s.currency)
}

// UpdateQuantity sets the line quantity; zero or less removes the line
func (s *CartService) UpdateQuantity(ctx context.Context, productID string, quantity int) *dto.CartResponse {
	ctx, span := s.tracer.Start(ctx, "CartService.UpdateQuantity")
	defer span.End()

	span.SetAttributes(
		attribute.String("product.id", productID),
		attribute.Int("cart.quantity", quantity),
	)

	var present bool
	state, _ := s.session.UpdateCart(func(c domain.Cart) (domain.Cart, error) {
		_, present = c.Line(productID)
		return c.UpdateQuantity(productID, quantity), nil
	})

	result := resultSuccess
	if !present {
		result = resultNoop
	}
	s.observe(ctx, state.Cart)
	recordOperation(ctx, s.cartOperations, "update_quantity", result)

	s.logger.InfoContext(ctx, "Cart quantity updated",
		slog.String("product_id", productID),
		slog.Int("quantity", quantity),
		slog.Bool("line_present", present),
	)

	span.SetStatus(codes.Ok, "Cart updated")
	return dto.ToCartResponse(state.Cart, s.currency)
}

func (s *CartService) observe(ctx context.Context, cart domain.Cart) {
	s.cartItems.Record(ctx, int64(cart.ItemCount()))
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("cart.item_count", cart.ItemCount()),
		attribute.String("cart.total", cart.Total().String()),
	)
}
