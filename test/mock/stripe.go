package mock

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
)

// Stripe is a fake of the Stripe PaymentIntents confirm endpoint.
type Stripe struct {
	mu sync.Mutex

	status string

	errStatus  int
	errType    string
	errCode    string
	errMessage string

	calls          int
	paymentMethods []string

	server *httptest.Server
}

// NewStripe creates a fake that confirms every intent as succeeded.
func NewStripe() *Stripe {
	return &Stripe{status: "succeeded"}
}

// WithStatus configures the status of confirmed intents.
func (s *Stripe) WithStatus(status string) *Stripe {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	return s
}

// WithCardError makes every confirmation fail with a card error.
func (s *Stripe) WithCardError(code, message string) *Stripe {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errStatus = http.StatusPaymentRequired
	s.errType = "card_error"
	s.errCode = code
	s.errMessage = message
	return s
}

// Start serves the fake until the test ends.
func (s *Stripe) Start(t *testing.T) *Stripe {
	t.Helper()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.POST("/v1/payment_intents/:id/confirm", s.confirm)

	s.server = httptest.NewServer(e)
	t.Cleanup(s.server.Close)
	return s
}

// URL returns the base URL of a started fake.
func (s *Stripe) URL() string {
	return s.server.URL
}

func (s *Stripe) confirm(c echo.Context) error {
	id := c.Param("id")
	pm := c.FormValue("payment_method")

	s.mu.Lock()
	s.calls++
	s.paymentMethods = append(s.paymentMethods, pm)
	status := s.status
	errStatus, errType, errCode, errMessage := s.errStatus, s.errType, s.errCode, s.errMessage
	s.mu.Unlock()

	if errStatus != 0 {
		return c.JSON(errStatus, map[string]interface{}{
			"error": map[string]string{
				"type":    errType,
				"code":    errCode,
				"message": errMessage,
			},
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"id":     id,
		"object": "payment_intent",
		"status": status,
	})
}

// CallCount returns the number of confirm calls received.
func (s *Stripe) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// PaymentMethods returns the payment methods sent with each confirmation.
func (s *Stripe) PaymentMethods() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.paymentMethods))
	copy(out, s.paymentMethods)
	return out
}
