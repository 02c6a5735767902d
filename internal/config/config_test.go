package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests that all default values load correctly without any env vars.
func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port, "default server port")
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout, "default read timeout")
	assert.Equal(t, time.Minute, cfg.Server.WriteTimeout, "default write timeout")

	assert.Equal(t, "http://localhost:4000", cfg.Backend.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Backend.HTTPTimeout)
	assert.Equal(t, 3, cfg.Backend.IntentMaxAttempts)

	assert.Empty(t, cfg.Payment.StripeSecretKey)
	assert.Empty(t, cfg.Payment.StripeAPIURL)

	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, time.Minute, cfg.Session.SweepInterval)

	assert.Equal(t, 10, cfg.RateLimit.SubmitPerMinute)
	assert.Equal(t, 3, cfg.RateLimit.SubmitBurst)

	assert.Equal(t, "UTC", cfg.Display.Timezone)
	assert.Equal(t, "/trips", cfg.Display.TripsPath)

	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
	assert.Equal(t, "json", cfg.Logging.Format, "default log format")
	assert.Equal(t, "development", cfg.App.Env, "default app environment")
}

// TestLoad_EnvironmentOverrides tests that environment variables override defaults.
func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)

	setEnvVars(t, map[string]string{
		"SERVER_PORT":                 "3000",
		"API_BASE_URL":                "https://api.example.com/v2",
		"BACKEND_HTTP_TIMEOUT":        "5s",
		"BACKEND_INTENT_MAX_ATTEMPTS": "1",
		"STRIPE_SECRET_KEY":           "sk_test_123",
		"STRIPE_API_URL":              "http://127.0.0.1:12111",
		"SESSION_TTL":                 "1h",
		"SESSION_SWEEP_INTERVAL":      "30s",
		"SUBMIT_RATE_PER_MINUTE":      "60",
		"SUBMIT_RATE_BURST":           "5",
		"DISPLAY_TIMEZONE":            "Asia/Jakarta",
		"TRIPS_PATH":                  "/my/trips",
		"LOG_LEVEL":                   "debug",
		"LOG_FORMAT":                  "console",
		"APP_ENV":                     "production",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "https://api.example.com/v2", cfg.Backend.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Backend.HTTPTimeout)
	assert.Equal(t, 1, cfg.Backend.IntentMaxAttempts)
	assert.Equal(t, "sk_test_123", cfg.Payment.StripeSecretKey)
	assert.Equal(t, "http://127.0.0.1:12111", cfg.Payment.StripeAPIURL)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, 30*time.Second, cfg.Session.SweepInterval)
	assert.Equal(t, 60, cfg.RateLimit.SubmitPerMinute)
	assert.Equal(t, 5, cfg.RateLimit.SubmitBurst)
	assert.Equal(t, "Asia/Jakarta", cfg.Location().String())
	assert.Equal(t, "/my/trips", cfg.Display.TripsPath)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.IsProduction())
}

// TestLoad_Validation_PortRange tests port validation boundaries.
func TestLoad_Validation_PortRange(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		wantErr bool
	}{
		{"valid port 1", "1", false},
		{"valid port 65535", "65535", false},
		{"invalid port 0", "0", true},
		{"invalid port too high", "65536", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"SERVER_PORT": tt.port})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "SERVER_PORT must be between 1 and 65535")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_Rejects tests that invalid single values fail validation.
func TestLoad_Validation_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
		errMsg string
	}{
		{"zero read timeout", "SERVER_READ_TIMEOUT", "0s", "SERVER_READ_TIMEOUT must be positive"},
		{"negative write timeout", "SERVER_WRITE_TIMEOUT", "-1s", "SERVER_WRITE_TIMEOUT must be positive"},
		{"base url without scheme", "API_BASE_URL", "localhost:4000", "API_BASE_URL"},
		{"base url ftp scheme", "API_BASE_URL", "ftp://files.example.com", "API_BASE_URL must use http or https"},
		{"base url without host", "API_BASE_URL", "http://", "API_BASE_URL must include a host"},
		{"zero backend timeout", "BACKEND_HTTP_TIMEOUT", "0s", "BACKEND_HTTP_TIMEOUT must be positive"},
		{"zero intent attempts", "BACKEND_INTENT_MAX_ATTEMPTS", "0", "BACKEND_INTENT_MAX_ATTEMPTS must be at least 1"},
		{"bad stripe url", "STRIPE_API_URL", "not a url", "STRIPE_API_URL"},
		{"zero session ttl", "SESSION_TTL", "0s", "SESSION_TTL must be positive"},
		{"zero sweep interval", "SESSION_SWEEP_INTERVAL", "0s", "SESSION_SWEEP_INTERVAL must be positive"},
		{"zero submit rate", "SUBMIT_RATE_PER_MINUTE", "0", "SUBMIT_RATE_PER_MINUTE must be at least 1"},
		{"zero submit burst", "SUBMIT_RATE_BURST", "0", "SUBMIT_RATE_BURST must be at least 1"},
		{"unknown timezone", "DISPLAY_TIMEZONE", "Mars/Olympus", "DISPLAY_TIMEZONE"},
		{"relative trips path", "TRIPS_PATH", "trips", "TRIPS_PATH must be an absolute path"},
		{"invalid log level", "LOG_LEVEL", "trace", "LOG_LEVEL must be one of"},
		{"invalid log format", "LOG_FORMAT", "text", "LOG_FORMAT must be one of"},
		{"invalid app env", "APP_ENV", "local", "APP_ENV must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{tt.envVar: tt.value})

			cfg, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, cfg)
		})
	}
}

// TestLoad_Validation_SweepWithinTTL tests that the sweep interval may not exceed the TTL.
func TestLoad_Validation_SweepWithinTTL(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		"SESSION_TTL":            "1m",
		"SESSION_SWEEP_INTERVAL": "2m",
	})

	cfg, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "should not exceed SESSION_TTL")
	assert.Nil(t, cfg)
}

// TestMustLoad_Success tests MustLoad with valid config.
func TestMustLoad_Success(t *testing.T) {
	clearEnvVars(t)

	assert.NotPanics(t, func() {
		cfg := MustLoad()
		assert.NotNil(t, cfg)
	})
}

// TestMustLoad_Panic tests MustLoad panics on invalid config.
func TestMustLoad_Panic(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"SERVER_PORT": "0"})

	assert.Panics(t, func() {
		MustLoad()
	})
}

// TestConfig_Environment tests the IsDevelopment and IsProduction helpers.
func TestConfig_Environment(t *testing.T) {
	tests := []struct {
		env         string
		development bool
		production  bool
	}{
		{"development", true, false},
		{"staging", false, false},
		{"production", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.development, cfg.IsDevelopment())
			assert.Equal(t, tt.production, cfg.IsProduction())
		})
	}
}

// Helper functions

var configEnvVars = []string{
	"SERVER_PORT",
	"SERVER_READ_TIMEOUT",
	"SERVER_WRITE_TIMEOUT",
	"API_BASE_URL",
	"BACKEND_HTTP_TIMEOUT",
	"BACKEND_INTENT_MAX_ATTEMPTS",
	"STRIPE_SECRET_KEY",
	"STRIPE_API_URL",
	"SESSION_TTL",
	"SESSION_SWEEP_INTERVAL",
	"SUBMIT_RATE_PER_MINUTE",
	"SUBMIT_RATE_BURST",
	"DISPLAY_TIMEZONE",
	"TRIPS_PATH",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"APP_ENV",
}

// clearEnvVars clears all config-related environment variables.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, v := range configEnvVars {
		os.Unsetenv(v)
	}
}

// setEnvVars sets multiple environment variables for the duration of the test.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
