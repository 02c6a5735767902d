// Package retry provides a generic retry mechanism with exponential backoff.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Config holds the retry configuration options.
type Config struct {
	// MaxAttempts is the maximum number of attempts, including the first one.
	MaxAttempts int

	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the delay between retries.
	MaxDelay time.Duration

	// Multiplier is the factor by which the delay grows after each retry.
	Multiplier float64

	// JitterFactor adds up to this fraction of the delay as random jitter.
	JitterFactor float64

	// RetryIf decides whether an error is retryable. Nil retries every error.
	RetryIf func(error) bool

	// OnRetry, when set, is called before sleeping ahead of the next attempt.
	OnRetry func(attempt int, err error, wait time.Duration)
}

// DefaultConfig provides sensible defaults for retry behavior.
var DefaultConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 100 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.1,
}

// BackendConfig is tuned for idempotent calls to the travel backend.
// Errors wrapped with NewPermanent are returned immediately.
var BackendConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     3 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.2,
	RetryIf:      SkipPermanent,
}

// Do executes fn with retry logic.
// It returns nil if fn succeeds, or the last error if all attempts fail.
func Do(ctx context.Context, fn func() error, cfg Config) error {
	_, err := DoWithResult(ctx, func() (struct{}, error) {
		return struct{}{}, fn()
	}, cfg)
	return err
}

// DoWithResult executes a function that returns a value with retry logic.
func DoWithResult[T any](ctx context.Context, fn func() (T, error), cfg Config) (T, error) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	var result T
	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result, lastErr = fn()
		if lastErr == nil {
			return result, nil
		}

		if cfg.RetryIf != nil && !cfg.RetryIf(lastErr) {
			return result, lastErr
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		sleepTime := calculateSleepTime(delay, cfg.MaxDelay, cfg.JitterFactor)
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, lastErr, sleepTime)
		}

		timer := time.NewTimer(sleepTime)
		select {
		case <-ctx.Done():
			timer.Stop()
			return result, ctx.Err()
		case <-timer.C:
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
	}

	return result, lastErr
}

// calculateSleepTime computes the sleep duration with jitter and max cap.
func calculateSleepTime(delay, maxDelay time.Duration, jitterFactor float64) time.Duration {
	jitter := time.Duration(rand.Float64() * float64(delay) * jitterFactor)
	sleepTime := delay + jitter

	if maxDelay > 0 && sleepTime > maxDelay {
		sleepTime = maxDelay
	}

	return sleepTime
}

// Permanent wraps an error to indicate it should not be retried.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string {
	if p.Err == nil {
		return "permanent error"
	}
	return p.Err.Error()
}

func (p *Permanent) Unwrap() error {
	return p.Err
}

// NewPermanent creates a permanent (non-retryable) error.
func NewPermanent(err error) error {
	if err == nil {
		return nil
	}
	return &Permanent{Err: err}
}

// IsPermanent checks if an error is permanent (non-retryable).
func IsPermanent(err error) bool {
	var permanent *Permanent
	return errors.As(err, &permanent)
}

// SkipPermanent is a RetryIf predicate that skips permanent errors.
func SkipPermanent(err error) bool {
	return !IsPermanent(err)
}

// WithMaxAttempts returns a new config with the given max attempts.
func (c Config) WithMaxAttempts(n int) Config {
	c.MaxAttempts = n
	return c
}

// WithInitialDelay returns a new config with the given initial delay.
func (c Config) WithInitialDelay(d time.Duration) Config {
	c.InitialDelay = d
	return c
}

// WithOnRetry returns a new config that reports each retry to fn.
func (c Config) WithOnRetry(fn func(attempt int, err error, wait time.Duration)) Config {
	c.OnRetry = fn
	return c
}
