// Package mock provides test doubles for the booking wizard.
// The doubles are real HTTP servers so integration tests exercise the
// production clients end to end, with configurable failures and delays.
package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/booking-wizard/internal/domain"
)

// Backend is a configurable fake of the travel backend.
// It serves the payment-intent and book-flight endpoints and records
// every request it receives.
type Backend struct {
	mu sync.Mutex

	clientSecret string
	confirmation domain.BookingConfirmation

	intentFailures int
	intentStatus   int
	intentMessage  string

	bookStatus  int
	bookMessage string
	bookBody    string
	bookDelay   time.Duration

	intentCalls int
	bookCalls   int

	intents  []domain.PaymentIntentRequest
	bookings []json.RawMessage
	headers  []http.Header

	server *httptest.Server
}

// NewBackend creates a fake backend that succeeds by default.
// The backend is configured using the builder pattern methods and
// started with Start.
func NewBackend() *Backend {
	return &Backend{
		clientSecret: "pi_test_123_secret_abc",
		confirmation: domain.BookingConfirmation{
			PNR:       "ABC123",
			TicketNo:  "1234567890",
			BookingID: "987",
		},
	}
}

// WithClientSecret configures the client secret returned for payment intents.
func (b *Backend) WithClientSecret(secret string) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clientSecret = secret
	return b
}

// WithConfirmation configures the booking confirmation.
func (b *Backend) WithConfirmation(conf domain.BookingConfirmation) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.confirmation = conf
	return b
}

// WithIntentFailures makes the first n payment-intent calls answer with
// status and message.
func (b *Backend) WithIntentFailures(n, status int, message string) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.intentFailures = n
	b.intentStatus = status
	b.intentMessage = message
	return b
}

// WithBookingError makes every book-flight call answer with status and message.
func (b *Backend) WithBookingError(status int, message string) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bookStatus = status
	b.bookMessage = message
	return b
}

// WithBookingBody makes every book-flight call answer 200 with body as is.
func (b *Backend) WithBookingBody(body string) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bookBody = body
	return b
}

// WithBookingDelay holds every book-flight call for d.
func (b *Backend) WithBookingDelay(d time.Duration) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bookDelay = d
	return b
}

// Start serves the backend until the test ends.
func (b *Backend) Start(t *testing.T) *Backend {
	t.Helper()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.POST("/payments/create-payment-intent", b.createPaymentIntent)
	e.POST("/flights/book", b.bookFlight)

	b.server = httptest.NewServer(e)
	t.Cleanup(b.server.Close)
	return b
}

// URL returns the base URL of a started backend.
func (b *Backend) URL() string {
	return b.server.URL
}

func (b *Backend) createPaymentIntent(c echo.Context) error {
	var req domain.PaymentIntentRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}

	b.mu.Lock()
	b.intentCalls++
	b.intents = append(b.intents, req)
	b.headers = append(b.headers, c.Request().Header.Clone())
	fail := b.intentFailures > 0
	if fail {
		b.intentFailures--
	}
	status, message, secret := b.intentStatus, b.intentMessage, b.clientSecret
	b.mu.Unlock()

	if fail {
		return c.JSON(status, map[string]string{"error": message})
	}
	return c.JSON(http.StatusOK, domain.PaymentIntent{ClientSecret: secret})
}

func (b *Backend) bookFlight(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}

	b.mu.Lock()
	b.bookCalls++
	b.bookings = append(b.bookings, json.RawMessage(body))
	b.headers = append(b.headers, c.Request().Header.Clone())
	status, message, raw, delay, conf := b.bookStatus, b.bookMessage, b.bookBody, b.bookDelay, b.confirmation
	b.mu.Unlock()

	if delay > 0 {
		select {
		case <-c.Request().Context().Done():
			return c.Request().Context().Err()
		case <-time.After(delay):
		}
	}

	if status != 0 {
		return c.JSON(status, map[string]interface{}{"success": false, "error": message})
	}
	if raw != "" {
		return c.JSONBlob(http.StatusOK, []byte(raw))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    map[string]interface{}{"data": conf},
	})
}

// IntentCalls returns the number of payment-intent calls received.
func (b *Backend) IntentCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.intentCalls
}

// BookCalls returns the number of book-flight calls received.
func (b *Backend) BookCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bookCalls
}

// LastIntent returns the most recent payment-intent request.
func (b *Backend) LastIntent() (domain.PaymentIntentRequest, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.intents) == 0 {
		return domain.PaymentIntentRequest{}, false
	}
	return b.intents[len(b.intents)-1], true
}

// LastBooking returns the raw body of the most recent book-flight request.
func (b *Backend) LastBooking() (json.RawMessage, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.bookings) == 0 {
		return nil, false
	}
	return b.bookings[len(b.bookings)-1], true
}

// LastHeaders returns the headers of the most recent request.
func (b *Backend) LastHeaders() http.Header {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.headers) == 0 {
		return nil
	}
	return b.headers[len(b.headers)-1]
}

// Reset clears recorded calls.
func (b *Backend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.intentCalls = 0
	b.bookCalls = 0
	b.intents = nil
	b.bookings = nil
	b.headers = nil
}
