// Package payment implements domain.PaymentWidget on top of Stripe.
package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/flight-search/booking-wizard/internal/domain"
	"github.com/flight-search/booking-wizard/internal/infrastructure/logger"
)

// clientSecretMarker separates the PaymentIntent id from the secret part
// of a client secret (pi_123_secret_abc).
const clientSecretMarker = "_secret_"

// ErrMalformedClientSecret is returned for client secrets that carry no
// PaymentIntent id.
var ErrMalformedClientSecret = errors.New("malformed payment client secret")

// Config configures the Stripe widget.
type Config struct {
	// SecretKey is the Stripe API key. An empty key leaves the widget not ready.
	SecretKey string

	// APIURL overrides the Stripe API base URL.
	APIURL string

	// HTTPClient is used for Stripe API calls when set.
	HTTPClient *http.Client

	// MaxNetworkRetries is the number of retries stripe-go performs on
	// network errors and 409/5xx responses.
	MaxNetworkRetries int64
}

// StripeWidget confirms card payments through the Stripe API.
type StripeWidget struct {
	api *client.API
}

// Ensure StripeWidget implements domain.PaymentWidget.
var _ domain.PaymentWidget = (*StripeWidget)(nil)

// NewStripeWidget creates a widget from cfg.
func NewStripeWidget(cfg Config) *StripeWidget {
	if cfg.SecretKey == "" {
		return &StripeWidget{}
	}

	// GetBackendWithConfig fills in defaults on the config it is given,
	// so every backend gets its own.
	backendConfig := func() *stripe.BackendConfig {
		bc := &stripe.BackendConfig{
			LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
			MaxNetworkRetries: stripe.Int64(cfg.MaxNetworkRetries),
			HTTPClient:        cfg.HTTPClient,
		}
		if cfg.APIURL != "" {
			bc.URL = stripe.String(strings.TrimRight(cfg.APIURL, "/"))
		}
		return bc
	}

	backends := &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig()),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, backendConfig()),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, backendConfig()),
	}

	return &StripeWidget{api: client.New(cfg.SecretKey, backends)}
}

// Ready implements domain.PaymentWidget.
func (w *StripeWidget) Ready() bool {
	return w != nil && w.api != nil
}

// ConfirmCardPayment implements domain.PaymentWidget.
func (w *StripeWidget) ConfirmCardPayment(ctx context.Context, clientSecret string, card domain.Card) (*domain.PaymentConfirmation, error) {
	if !w.Ready() {
		return nil, &domain.PaymentError{Code: "not_ready", Message: "Payment client is not ready", Err: domain.ErrPaymentNotReady}
	}

	intentID, err := IntentIDFromClientSecret(clientSecret)
	if err != nil {
		return nil, &domain.PaymentError{Code: "invalid_client_secret", Message: "Invalid payment session", Err: err}
	}

	params := &stripe.PaymentIntentConfirmParams{
		PaymentMethod: stripe.String(card.PaymentMethodID),
	}
	params.Context = ctx

	pi, err := w.api.PaymentIntents.Confirm(intentID, params)
	if err != nil {
		return nil, toPaymentError(err)
	}

	logger.Ctx(ctx).Info().
		Str("payment_intent", pi.ID).
		Str("status", string(pi.Status)).
		Msg("Card payment confirmed")

	return &domain.PaymentConfirmation{
		IntentID: pi.ID,
		Status:   domain.PaymentStatus(pi.Status),
	}, nil
}

// IntentIDFromClientSecret extracts the PaymentIntent id from a client secret.
func IntentIDFromClientSecret(clientSecret string) (string, error) {
	idx := strings.Index(clientSecret, clientSecretMarker)
	if idx <= 0 || !strings.HasPrefix(clientSecret, "pi_") {
		return "", fmt.Errorf("%w: %q", ErrMalformedClientSecret, redact(clientSecret))
	}
	return clientSecret[:idx], nil
}

func toPaymentError(err error) *domain.PaymentError {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		msg := stripeErr.Msg
		if msg == "" {
			msg = "Payment failed"
		}
		code := string(stripeErr.Code)
		if code == "" {
			code = string(stripeErr.Type)
		}
		return &domain.PaymentError{Code: code, Message: msg, Err: err}
	}
	return &domain.PaymentError{Code: "network_error", Message: err.Error(), Err: err}
}

// redact keeps only the non-secret prefix of a client secret for error text.
func redact(clientSecret string) string {
	if idx := strings.Index(clientSecret, clientSecretMarker); idx >= 0 {
		return clientSecret[:idx] + clientSecretMarker + "***"
	}
	if len(clientSecret) > 8 {
		return clientSecret[:8] + "***"
	}
	return clientSecret
}
