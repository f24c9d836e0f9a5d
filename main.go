package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mrops-br/shopwave-api/internal/app/service"
	"github.com/mrops-br/shopwave-api/internal/app/session"
	"github.com/mrops-br/shopwave-api/internal/infrastructure/config"
	"github.com/mrops-br/shopwave-api/internal/infrastructure/http"
	"github.com/mrops-br/shopwave-api/internal/infrastructure/http/handler"
	"github.com/mrops-br/shopwave-api/internal/infrastructure/http/request"
	"github.com/mrops-br/shopwave-api/internal/infrastructure/repository/memory"
	"github.com/mrops-br/shopwave-api/internal/infrastructure/telemetry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize OpenTelemetry
	var telem *telemetry.Telemetry
	if cfg.OTLP.Enabled {
		telem, err = telemetry.NewTelemetry(&cfg.OTLP, &cfg.Log)
	} else {
		telem, err = telemetry.NewNoOpTelemetry(&cfg.OTLP, &cfg.Log)
	}
	if err != nil {
		log.Fatalf("Failed to initialize telemetry: %v", err)
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Ensure telemetry is shutdown on exit
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()
		if err := telem.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	tracer := telem.TracerProvider.Tracer(cfg.OTLP.ServiceName)
	meter := telem.MeterProvider.Meter(cfg.OTLP.ServiceName)
	logger := telem.Logger

	logger.Info("Starting ShopWave storefront API",
		slog.String("currency", cfg.Store.Currency.String()),
	)

	// Catalog is compiled in; an invalid seed is a programming error
	repo, err := memory.NewCatalogRepository(memory.SeedProducts(), tracer, logger)
	if err != nil {
		logger.Error("Invalid catalog", slog.String("error", err.Error()))
		return
	}

	sess := session.New()
	logger.Info("Session started", slog.String("session_id", sess.Snapshot().ID.String()))

	catalogService := service.NewCatalogService(repo, sess, cfg.Store.Currency, tracer, meter, logger)
	cartService := service.NewCartService(repo, sess, cfg.Store.Currency, tracer, meter, logger)
	wishlistService := service.NewWishlistService(repo, sess, tracer, meter, logger)
	sessionService := service.NewSessionService(sess, tracer, meter, logger)

	validator := request.NewValidator()
	server := http.NewServer(&cfg.Server, http.Handlers{
		Catalog:  handler.NewCatalogHandler(catalogService, validator, logger),
		Cart:     handler.NewCartHandler(cartService, validator, logger),
		Wishlist: handler.NewWishlistHandler(wishlistService),
		Session:  handler.NewSessionHandler(sessionService),
	}, logger, telem)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.Error("Server error", "error", err.Error())
			cancel()
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		logger.Info("Shutting down server...")
	case <-ctx.Done():
		logger.Info("Context cancelled, shutting down...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", slog.String("error", err.Error()))
	}

	logger.Info("Server stopped")
}
