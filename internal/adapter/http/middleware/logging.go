package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-search/booking-wizard/internal/infrastructure/logger"
)

// RequestLogger returns middleware that logs HTTP requests.
// It logs on request completion with method, path, status, duration, and client info.
// A logger scoped to the request ID is stored in the request context for
// handlers and use cases (see logger.Ctx).
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// Get request ID from context (set by RequestID middleware)
			reqID := GetRequestID(c)

			scoped := (&logger.Logger{Logger: log}).WithRequestID(reqID)
			req := c.Request()
			c.SetRequest(req.WithContext(logger.IntoContext(req.Context(), scoped)))

			// Process request through handler chain
			err := next(c)
			if err != nil {
				// Let Echo's error handler process the error
				c.Error(err)
			}

			// Calculate duration after request completes
			duration := time.Since(start)

			res := c.Response()

			// Determine log level based on status code
			var event *zerolog.Event
			status := res.Status
			switch {
			case status >= 500:
				event = log.Error()
			case status >= 400:
				event = log.Warn()
			default:
				event = log.Info()
			}

			if id := c.Param("id"); id != "" {
				event = event.Str("session_id", id)
			}

			// Log the request with all relevant fields
			event.
				Str("request_id", reqID).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("route", c.Path()).
				Int("status", status).
				Int64("duration_ms", duration.Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			// Return nil since we already handled the error via c.Error()
			return nil
		}
	}
}
