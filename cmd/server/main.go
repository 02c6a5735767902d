// Package main is the entry point for the booking wizard service.
//
//	@title						Booking Wizard API
//	@version					1.0.0
//	@description				Backend-for-frontend that drives the flight booking wizard: passenger forms, card payment and booking against the travel backend.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-search/booking-wizard/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-search/booking-wizard/docs"

	// Application layers
	"github.com/flight-search/booking-wizard/internal/adapter/backend"
	wizardhttp "github.com/flight-search/booking-wizard/internal/adapter/http"
	"github.com/flight-search/booking-wizard/internal/adapter/http/middleware"
	"github.com/flight-search/booking-wizard/internal/adapter/payment"
	"github.com/flight-search/booking-wizard/internal/adapter/receipt"
	"github.com/flight-search/booking-wizard/internal/config"
	"github.com/flight-search/booking-wizard/internal/infrastructure/logger"
	"github.com/flight-search/booking-wizard/internal/infrastructure/retry"
	"github.com/flight-search/booking-wizard/internal/session"
	"github.com/flight-search/booking-wizard/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second

	// stripeNetworkRetries is passed to stripe-go, which retries network
	// errors and 409/5xx responses with its own backoff.
	stripeNetworkRetries = 2

	rateLimitCleanupInterval = 5 * time.Minute
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("backend", cfg.Backend.BaseURL).
		Msg("Configuration loaded")

	// Background workers stop with this context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, logger.Global.Logger)

	// Setup routes
	setupRoutes(ctx, e, cfg)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, cancel)
}

// setupLogger configures the global loggers based on config.
func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	logger.Init(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: logger.DefaultConfig().ServiceName,
	})

	// zerolog's global logger is used by main and config
	log.Logger = logger.Global.Logger
}

// setupRoutes wires the application layers and configures the HTTP routes.
func setupRoutes(ctx context.Context, e *echo.Echo, cfg *config.Config) {
	// Travel backend; only payment-intent creation is retried
	backendClient := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.HTTPTimeout,
		backend.WithRetryConfig(retry.BackendConfig.WithMaxAttempts(cfg.Backend.IntentMaxAttempts)),
	)

	widget := payment.NewStripeWidget(payment.Config{
		SecretKey:         cfg.Payment.StripeSecretKey,
		APIURL:            cfg.Payment.StripeAPIURL,
		MaxNetworkRetries: stripeNetworkRetries,
	})
	if !widget.Ready() {
		log.Warn().Msg("STRIPE_SECRET_KEY is not set, submissions will be rejected")
	}

	// Wizard sessions expire after inactivity
	store := session.NewStore(cfg.Session.TTL, nil)
	go store.Run(ctx, cfg.Session.SweepInterval)

	// Initialize use case with config
	ucConfig := &usecase.Config{
		Location: cfg.Location(),
	}
	wizardUseCase := usecase.NewBookingWizardUseCase(store, backendClient, widget, receipt.NewPDFRenderer(), ucConfig)

	// Initialize handler
	wizardHandler := wizardhttp.NewBookingWizardHandler(wizardUseCase, cfg.Display.TripsPath)

	// Submissions are rate limited per client IP
	submitLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		PerMinute: cfg.RateLimit.SubmitPerMinute,
		Burst:     cfg.RateLimit.SubmitBurst,
	})
	go submitLimiter.Run(ctx, rateLimitCleanupInterval)

	wizardhttp.RegisterRoutes(e, wizardHandler, submitLimiter.Middleware(logger.Global.Logger))

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, stopWorkers context.CancelFunc) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}
	stopWorkers()

	log.Info().Msg("Server stopped")
}
