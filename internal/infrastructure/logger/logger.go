// Package logger provides structured logging using zerolog.
// It supports JSON and console output formats with configurable log levels,
// and carries request-scoped loggers through context.Context.
package logger

import (
	"context"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// Config holds the logger configuration options.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error, fatal, panic)
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format is the output format (json, console)
	Format string `env:"LOG_FORMAT" envDefault:"json"`

	// EnableCaller adds caller information to log entries
	EnableCaller bool `env:"LOG_CALLER" envDefault:"false"`

	// ServiceName is the name of the service for log context
	ServiceName string `env:"SERVICE_NAME" envDefault:"booking-wizard"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "booking-wizard",
	}
}

// Logger wraps zerolog.Logger with additional context.
type Logger struct {
	zerolog.Logger
}

// New creates a new Logger with the given configuration.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a new Logger with custom output writer.
// This is useful for testing.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var writer io.Writer = output
	if cfg.Format == "console" {
		writer = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	ctx := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName)

	if cfg.EnableCaller {
		ctx = ctx.Caller()
	}

	return &Logger{
		Logger: ctx.Logger(),
	}
}

// WithField returns a new logger with an additional string field.
func (l *Logger) WithField(key, value string) *Logger {
	return &Logger{
		Logger: l.With().Str(key, value).Logger(),
	}
}

// WithRequestID returns a logger with request ID context.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.WithField("request_id", requestID)
}

// WithSession returns a logger with wizard session context.
func (l *Logger) WithSession(sessionID string) *Logger {
	return l.WithField("session_id", sessionID)
}

// WithTrip returns a logger with trip context.
func (l *Logger) WithTrip(tripID int64) *Logger {
	return l.WithField("trip_id", strconv.FormatInt(tripID, 10))
}

// Nop returns a disabled logger that produces no output.
// Useful for testing when logs are not needed.
func Nop() *Logger {
	return &Logger{
		Logger: zerolog.Nop(),
	}
}

// Global is the global logger instance.
// It should be initialized at application startup.
var Global *Logger

// Init initializes the global logger with the given configuration.
func Init(cfg Config) {
	Global = New(cfg)
}

// SetGlobal sets a custom logger as the global logger.
func SetGlobal(l *Logger) {
	Global = l
}

func global() *Logger {
	if Global == nil {
		Init(DefaultConfig())
	}
	return Global
}

type requestIDKey struct{}

// ContextWithRequestID returns a copy of ctx carrying the request ID.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request ID stored in ctx, if any.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// IntoContext returns a copy of ctx carrying l.
func IntoContext(ctx context.Context, l *Logger) context.Context {
	return l.Logger.WithContext(ctx)
}

// Ctx returns the logger stored in ctx, or the global logger.
func Ctx(ctx context.Context) *Logger {
	if ctx != nil {
		if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
			return &Logger{Logger: *l}
		}
	}
	return global()
}

// Info returns an info level event from the global logger.
func Info() *zerolog.Event {
	return global().Info()
}

// Error returns an error level event from the global logger.
func Error() *zerolog.Event {
	return global().Error()
}

// Debug returns a debug level event from the global logger.
func Debug() *zerolog.Event {
	return global().Debug()
}

// Warn returns a warn level event from the global logger.
func Warn() *zerolog.Event {
	return global().Warn()
}
