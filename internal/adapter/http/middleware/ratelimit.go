package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/flight-search/booking-wizard/internal/adapter/http/response"
)

// RateLimitConfig configures the per-client rate limiter.
type RateLimitConfig struct {
	// PerMinute is the sustained number of requests allowed per client per minute
	PerMinute int

	// Burst is the number of requests a client may make at once
	Burst int

	// IdleTTL is how long an unused client limiter is kept
	IdleTTL time.Duration
}

// DefaultRateLimitConfig returns the default submit rate limit.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		PerMinute: 10,
		Burst:     3,
		IdleTTL:   10 * time.Minute,
	}
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limits requests per client IP with a token bucket per client.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
	now     func() time.Time
}

// NewRateLimiter creates a RateLimiter. Non-positive values fall back to
// DefaultRateLimitConfig.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	def := DefaultRateLimitConfig()
	if cfg.PerMinute <= 0 {
		cfg.PerMinute = def.PerMinute
	}
	if cfg.Burst <= 0 {
		cfg.Burst = def.Burst
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = def.IdleTTL
	}

	return &RateLimiter{
		clients: make(map[string]*clientLimiter),
		limit:   rate.Every(time.Minute / time.Duration(cfg.PerMinute)),
		burst:   cfg.Burst,
		idleTTL: cfg.IdleTTL,
		now:     time.Now,
	}
}

// Allow reports whether the client identified by key may make a request now.
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cl, ok := l.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

// Cleanup removes limiters idle for longer than the configured TTL and
// returns how many were removed.
func (l *RateLimiter) Cleanup() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.idleTTL)
	removed := 0
	for key, cl := range l.clients {
		if cl.lastSeen.Before(cutoff) {
			delete(l.clients, key)
			removed++
		}
	}
	return removed
}

// Run calls Cleanup every interval until ctx is done.
func (l *RateLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Cleanup()
		}
	}
}

// Middleware returns echo middleware that answers 429 once a client IP
// exceeds its rate.
func (l *RateLimiter) Middleware(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if !l.Allow(ip) {
				log.Warn().
					Str("request_id", GetRequestID(c)).
					Str("client_ip", ip).
					Str("path", c.Request().URL.Path).
					Msg("Rate limit exceeded")
				return response.TooManyRequests(c)
			}
			return next(c)
		}
	}
}
