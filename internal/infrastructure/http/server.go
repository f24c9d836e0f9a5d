package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mrops-br/shopwave-api/internal/infrastructure/config"
	"github.com/mrops-br/shopwave-api/internal/infrastructure/http/handler"
	"github.com/mrops-br/shopwave-api/internal/infrastructure/http/middleware"
	"github.com/mrops-br/shopwave-api/internal/infrastructure/telemetry"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Handlers groups the route handlers served by the storefront API
type Handlers struct {
	Catalog  *handler.CatalogHandler
	Cart     *handler.CartHandler
	Wishlist *handler.WishlistHandler
	Session  *handler.SessionHandler
}

// Server represents the HTTP server
type Server struct {
	router     *chi.Mux
	config     *config.ServerConfig
	handlers   Handlers
	logger     *slog.Logger
	telemetry  *telemetry.Telemetry
	httpServer *http.Server
}

// NewServer creates a new HTTP server
func NewServer(
	cfg *config.ServerConfig,
	handlers Handlers,
	logger *slog.Logger,
	telem *telemetry.Telemetry,
) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		config:    cfg,
		handlers:  handlers,
		logger:    logger,
		telemetry: telem,
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:    net.JoinHostPort(cfg.Host, cfg.Port),
		Handler: s.instrument(s.router),
	}

	return s
}

// setupMiddleware configures the middleware chain
func (s *Server) setupMiddleware() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(middleware.StructuredLogger(s.logger))
	s.router.Use(chimiddleware.Recoverer)

	meter := s.telemetry.MeterProvider.Meter(s.meterName())
	s.router.Use(middleware.ActiveRequestsMiddleware(meter))
	if s.config.DurationMsMetric {
		s.router.Use(middleware.DurationMillisecondsMiddleware(meter))
	}
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	s.router.Group(func(r chi.Router) {
		// Group middleware wraps each endpoint, so the full pattern is resolved here.
		// Mounting sub-routers would only expose the mount pattern.
		r.Use(middleware.HTTPRouteContext())

		r.Get("/categories", s.handlers.Catalog.ListCategories)

		r.Get("/products", s.handlers.Catalog.BrowseProducts)
		r.Get("/products/{id}", s.handlers.Catalog.GetProduct)

		r.Get("/cart", s.handlers.Cart.GetCart)
		r.Post("/cart/items", s.handlers.Cart.AddItem)
		r.Patch("/cart/items/{id}", s.handlers.Cart.UpdateItem)
		r.Delete("/cart/items/{id}", s.handlers.Cart.RemoveItem)

		r.Get("/wishlist", s.handlers.Wishlist.GetWishlist)
		r.Get("/wishlist/{id}", s.handlers.Wishlist.GetStatus)
		r.Post("/wishlist/{id}/toggle", s.handlers.Wishlist.Toggle)

		r.Get("/session", s.handlers.Session.GetSession)
		r.Post("/session/reset", s.handlers.Session.Reset)
	})

	// Health check endpoint
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Prometheus metrics endpoint - exposes OpenTelemetry metrics
	s.router.Get("/metrics", promhttp.HandlerFor(s.telemetry.Registry, promhttp.HandlerOpts{}).ServeHTTP)
}

// instrument wraps the router with otelhttp for the standard HTTP server metrics and spans.
// The route pattern is only known after chi has routed, so HTTPRouteContext renames
// the span and labels the metrics; unrouted requests keep the method-only name.
func (s *Server) instrument(h http.Handler) http.Handler {
	return otelhttp.NewHandler(h, "http-server",
		otelhttp.WithSpanNameFormatter(func(operation string, r *http.Request) string {
			return r.Method
		}),
		otelhttp.WithTracerProvider(s.telemetry.TracerProvider),
		otelhttp.WithMeterProvider(s.telemetry.MeterProvider),
	)
}

func (s *Server) meterName() string {
	return "shopwave-api"
}

// Handler returns the fully instrumented handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until Shutdown is called. A clean shutdown returns nil.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		slog.String("address", s.httpServer.Addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer.ListenAndServe: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
