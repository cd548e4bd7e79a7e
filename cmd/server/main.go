// Package main is the entry point for the destination catalog service.
//
//	@title			Destination Catalog API
//	@version		1.0.0
//	@description	Browse, filter and book travel destinations. Search state is encoded in shareable deep links.
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	// Registers the API description served at /swagger/*
	_ "github.com/travelbanza/destination-catalog/docs"

	cataloghttp "github.com/travelbanza/destination-catalog/internal/adapter/http"
	"github.com/travelbanza/destination-catalog/internal/adapter/http/middleware"
	"github.com/travelbanza/destination-catalog/internal/catalog"
	"github.com/travelbanza/destination-catalog/internal/config"
	"github.com/travelbanza/destination-catalog/internal/infrastructure/logger"
	"github.com/travelbanza/destination-catalog/internal/infrastructure/timeutil"
	"github.com/travelbanza/destination-catalog/internal/usecase"
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	store, err := loadCatalog(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load catalog")
	}

	log.Info().
		Int("destinations", store.Len()).
		Float64("max_price", store.MaxPrice()).
		Msg("Catalog loaded")

	e := cataloghttp.NewServer(cataloghttp.ServerOptions{
		Logger: log,
		Middleware: middleware.Config{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			BodyLimit:      cfg.Server.BodyLimit,
			Recovery: middleware.RecoveryConfig{
				DisablePrintStack: cfg.IsProduction(),
			},
		},
		Handlers: setupHandlers(cfg, store, log),
		Swagger:  !cfg.IsProduction(),
	})

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, cfg, log)
}

// setupLogger builds the service logger from config and installs it globally.
func setupLogger(cfg *config.Config) zerolog.Logger {
	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Caller:      cfg.Logging.Caller,
		Environment: cfg.App.Env,
	})
	logger.SetGlobal(log)
	return log
}

// loadCatalog returns the catalog from CATALOG_PATH, or the embedded one.
func loadCatalog(cfg *config.Config) (*catalog.Store, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(cfg.Catalog.Path)
}

// setupHandlers wires the use cases and HTTP handlers.
func setupHandlers(cfg *config.Config, store *catalog.Store, log zerolog.Logger) cataloghttp.Handlers {
	destinationUseCase := usecase.NewDestinationUseCase(store, logger.Component(log, "catalog"))

	bookingUseCase := usecase.NewBookingUseCase(store, timeutil.NewRealClock(), &usecase.BookingConfig{
		ProcessingDelay: cfg.Booking.ProcessingDelay,
		Timeout:         cfg.Booking.Timeout,
		Location:        timeutil.MustGetLocation(cfg.Booking.Timezone),
	}, logger.Component(log, "booking"))

	return cataloghttp.Handlers{
		Destinations: cataloghttp.NewDestinationHandler(destinationUseCase),
		Bookings:     cataloghttp.NewBookingHandler(bookingUseCase),
		Contact:      cataloghttp.NewContactHandler(logger.Component(log, "contact")),
	}
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, cfg *config.Config, log zerolog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
