// Package backend implements domain.TravelBackend over the travel backend's
// JSON HTTP API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/flight-search/booking-wizard/internal/domain"
	"github.com/flight-search/booking-wizard/internal/infrastructure/logger"
	"github.com/flight-search/booking-wizard/internal/infrastructure/retry"
)

const (
	paymentIntentPath = "/payments/create-payment-intent"
	bookFlightPath    = "/flights/book"

	opCreatePaymentIntent = "create payment intent"
	opBookFlight          = "book flight"

	requestIDHeader = "X-Request-ID"

	// maxResponseBytes bounds how much of a response body is read.
	maxResponseBytes = 1 << 20
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithRetryConfig sets the retry policy for payment-intent creation.
func WithRetryConfig(cfg retry.Config) Option {
	return func(c *Client) {
		c.retry = cfg
	}
}

// Client calls the travel backend.
type Client struct {
	baseURL string
	http    *http.Client
	retry   retry.Config
}

// Ensure Client implements domain.TravelBackend.
var _ domain.TravelBackend = (*Client)(nil)

// NewClient creates a Client for the backend at baseURL.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		retry:   retry.BackendConfig,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreatePaymentIntent implements domain.TravelBackend.
// Transport errors and 5xx responses are retried; other failures are not.
func (c *Client) CreatePaymentIntent(ctx context.Context, req domain.PaymentIntentRequest) (*domain.PaymentIntent, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &domain.BackendError{Op: opCreatePaymentIntent, Err: err}
	}

	log := logger.Ctx(ctx)
	cfg := c.retry
	if cfg.RetryIf == nil {
		cfg.RetryIf = retry.SkipPermanent
	}
	cfg.OnRetry = func(attempt int, err error, wait time.Duration) {
		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Dur("wait", wait).
			Msg("Retrying payment intent creation")
	}

	intent, err := retry.DoWithResult(ctx, func() (*domain.PaymentIntent, error) {
		var out domain.PaymentIntent
		status, err := c.post(ctx, paymentIntentPath, body, nil, &out)
		if err != nil {
			berr := &domain.BackendError{Op: opCreatePaymentIntent, StatusCode: status, Message: errorMessage(err), Err: err}
			if status != 0 && status < http.StatusInternalServerError {
				return nil, retry.NewPermanent(berr)
			}
			return nil, berr
		}
		return &out, nil
	}, cfg)
	if err != nil {
		var berr *domain.BackendError
		if errors.As(err, &berr) {
			return nil, berr
		}
		return nil, &domain.BackendError{Op: opCreatePaymentIntent, Err: err}
	}
	return intent, nil
}

// BookFlight implements domain.TravelBackend. It is never retried.
// A 2xx response without "success": true and a booking id is an error.
func (c *Client) BookFlight(ctx context.Context, req domain.BookingRequest, creds domain.Credentials) (*domain.BookingConfirmation, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &domain.BackendError{Op: opBookFlight, Err: err}
	}

	headers := http.Header{}
	if creds.Cookie != "" {
		headers.Set("Cookie", creds.Cookie)
	}
	if creds.Authorization != "" {
		headers.Set("Authorization", creds.Authorization)
	}

	var envelope bookingEnvelope
	status, err := c.post(ctx, bookFlightPath, body, headers, &envelope)
	if err != nil {
		return nil, &domain.BackendError{Op: opBookFlight, StatusCode: status, Message: errorMessage(err), Err: err}
	}
	if envelope.Success != nil && !*envelope.Success {
		msg := envelope.Error
		if msg == "" {
			msg = envelope.Message
		}
		return nil, &domain.BackendError{Op: opBookFlight, StatusCode: status, Message: msg}
	}

	conf := envelope.confirmation()
	if envelope.Success == nil || conf.BookingID == "" {
		logger.Ctx(ctx).Warn().
			Int("status", status).
			Bool("success_field", envelope.Success != nil).
			Msg("Booking response carries no confirmation")
		return nil, &domain.BackendError{Op: opBookFlight, StatusCode: status}
	}
	return &conf, nil
}

// post sends body to path and decodes a 2xx JSON response into out.
// It returns the HTTP status, or 0 when no response was received.
func (c *Client) post(ctx context.Context, path string, body []byte, headers http.Header, out interface{}) (int, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	for k, vs := range headers {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	if reqID := logger.RequestIDFromContext(ctx); reqID != "" {
		httpReq.Header.Set(requestIDHeader, reqID)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	logger.Ctx(ctx).Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("Backend call completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, &statusError{status: resp.StatusCode, message: parseErrorMessage(respBody)}
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return resp.StatusCode, nil
}

// statusError is a non-2xx backend response.
type statusError struct {
	status  int
	message string
}

func (e *statusError) Error() string {
	if e.message != "" {
		return e.message
	}
	return fmt.Sprintf("unexpected status %d", e.status)
}

// errorMessage returns the backend-provided message carried by err, if any.
func errorMessage(err error) string {
	var se *statusError
	if errors.As(err, &se) {
		return se.message
	}
	return ""
}

// parseErrorMessage extracts the message from an error body. The backend
// answers with {"error": "..."}, sometimes {"message": "..."} or
// {"error": {"message": "..."}}.
func parseErrorMessage(body []byte) string {
	var payload struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	if len(payload.Error) > 0 {
		var s string
		if err := json.Unmarshal(payload.Error, &s); err == nil && s != "" {
			return s
		}
		var nested struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(payload.Error, &nested); err == nil && nested.Message != "" {
			return nested.Message
		}
	}
	return payload.Message
}

// bookingEnvelope is the book-flight response:
// {"success": true, "data": {"data": {"pnr": ..., "ticketNo": ..., "bookingId": ...}}}.
// Flatter data shapes are accepted as well. Only "success": true with a
// booking id is a confirmation.
type bookingEnvelope struct {
	Success *bool           `json:"success"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`

	domain.BookingConfirmation
}

func (e bookingEnvelope) confirmation() domain.BookingConfirmation {
	if len(e.Data) > 0 {
		var outer struct {
			Data *domain.BookingConfirmation `json:"data"`
			domain.BookingConfirmation
		}
		if err := json.Unmarshal(e.Data, &outer); err == nil {
			if outer.Data != nil {
				return *outer.Data
			}
			return outer.BookingConfirmation
		}
	}
	return e.BookingConfirmation
}
