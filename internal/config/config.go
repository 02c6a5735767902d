// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/flight-search/booking-wizard/internal/infrastructure/timeutil"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Backend   BackendConfig
	Payment   PaymentConfig
	Session   SessionConfig
	RateLimit RateLimitConfig
	Display   DisplayConfig
	Logging   LoggingConfig
	App       AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
}

// BackendConfig holds settings for the travel backend API.
type BackendConfig struct {
	BaseURL           string        `env:"API_BASE_URL" envDefault:"http://localhost:4000"`
	HTTPTimeout       time.Duration `env:"BACKEND_HTTP_TIMEOUT" envDefault:"30s"`
	IntentMaxAttempts int           `env:"BACKEND_INTENT_MAX_ATTEMPTS" envDefault:"3"`
}

// PaymentConfig holds card payment settings.
type PaymentConfig struct {
	StripeSecretKey string `env:"STRIPE_SECRET_KEY"`
	StripeAPIURL    string `env:"STRIPE_API_URL"`
}

// SessionConfig holds wizard session lifecycle settings.
type SessionConfig struct {
	TTL           time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
}

// RateLimitConfig limits booking submissions per client IP.
type RateLimitConfig struct {
	SubmitPerMinute int `env:"SUBMIT_RATE_PER_MINUTE" envDefault:"10"`
	SubmitBurst     int `env:"SUBMIT_RATE_BURST" envDefault:"3"`
}

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	Timezone  string `env:"DISPLAY_TIMEZONE" envDefault:"UTC"`
	TripsPath string `env:"TRIPS_PATH" envDefault:"/trips"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if err := validateBaseURL("API_BASE_URL", cfg.Backend.BaseURL); err != nil {
		return err
	}
	if cfg.Backend.HTTPTimeout <= 0 {
		return fmt.Errorf("BACKEND_HTTP_TIMEOUT must be positive")
	}
	if cfg.Backend.IntentMaxAttempts < 1 {
		return fmt.Errorf("BACKEND_INTENT_MAX_ATTEMPTS must be at least 1, got %d", cfg.Backend.IntentMaxAttempts)
	}

	if cfg.Payment.StripeAPIURL != "" {
		if err := validateBaseURL("STRIPE_API_URL", cfg.Payment.StripeAPIURL); err != nil {
			return err
		}
	}

	if cfg.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if cfg.Session.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive")
	}
	if cfg.Session.SweepInterval > cfg.Session.TTL {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL (%s) should not exceed SESSION_TTL (%s)",
			cfg.Session.SweepInterval, cfg.Session.TTL)
	}

	if cfg.RateLimit.SubmitPerMinute < 1 {
		return fmt.Errorf("SUBMIT_RATE_PER_MINUTE must be at least 1, got %d", cfg.RateLimit.SubmitPerMinute)
	}
	if cfg.RateLimit.SubmitBurst < 1 {
		return fmt.Errorf("SUBMIT_RATE_BURST must be at least 1, got %d", cfg.RateLimit.SubmitBurst)
	}

	if _, err := timeutil.GetLocation(cfg.Display.Timezone); err != nil {
		return fmt.Errorf("DISPLAY_TIMEZONE: %w", err)
	}
	if !strings.HasPrefix(cfg.Display.TripsPath, "/") {
		return fmt.Errorf("TRIPS_PATH must be an absolute path, got %q", cfg.Display.TripsPath)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

func validateBaseURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https, got %q", name, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s must include a host, got %q", name, raw)
	}
	return nil
}

// Location returns the display time zone. It is validated by Load.
func (c *Config) Location() *time.Location {
	loc, err := timeutil.GetLocation(c.Display.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
