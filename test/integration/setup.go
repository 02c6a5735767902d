// Package integration provides helpers and integration tests for the booking wizard.
// Integration tests run the full HTTP stack against fake travel backend and
// Stripe servers, so the real clients, use case and handlers work together.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-search/booking-wizard/internal/adapter/backend"
	httpAdapter "github.com/flight-search/booking-wizard/internal/adapter/http"
	"github.com/flight-search/booking-wizard/internal/adapter/http/middleware"
	"github.com/flight-search/booking-wizard/internal/adapter/payment"
	"github.com/flight-search/booking-wizard/internal/adapter/receipt"
	"github.com/flight-search/booking-wizard/internal/infrastructure/retry"
	"github.com/flight-search/booking-wizard/internal/session"
	"github.com/flight-search/booking-wizard/internal/usecase"
	"github.com/flight-search/booking-wizard/test/mock"
	"github.com/flight-search/booking-wizard/test/testutil"
)

const wizardPath = "/api/v1/bookings/wizard"

// TestServer wraps an Echo instance wired like the production server.
type TestServer struct {
	Echo    *echo.Echo
	Backend *mock.Backend
	Stripe  *mock.Stripe
	Store   *session.Store
}

// ServerOption customizes a TestServer.
type ServerOption func(*serverOptions)

type serverOptions struct {
	stripeKey        string
	submitMiddleware []echo.MiddlewareFunc
}

// WithoutPaymentKey leaves the payment widget unconfigured.
func WithoutPaymentKey() ServerOption {
	return func(o *serverOptions) {
		o.stripeKey = ""
	}
}

// WithSubmitMiddleware adds middleware to the submit route.
func WithSubmitMiddleware(mw ...echo.MiddlewareFunc) ServerOption {
	return func(o *serverOptions) {
		o.submitMiddleware = append(o.submitMiddleware, mw...)
	}
}

// NewTestServer creates a test server talking to the given fakes.
// Both fakes must be started.
func NewTestServer(t *testing.T, b *mock.Backend, s *mock.Stripe, opts ...ServerOption) *TestServer {
	t.Helper()

	o := serverOptions{stripeKey: "sk_test_integration"}
	for _, opt := range opts {
		opt(&o)
	}

	client := backend.NewClient(b.URL(), 5*time.Second,
		backend.WithRetryConfig(retry.BackendConfig.WithInitialDelay(5*time.Millisecond)),
	)
	widget := payment.NewStripeWidget(payment.Config{
		SecretKey:  o.stripeKey,
		APIURL:     s.URL(),
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	})
	store := session.NewStore(30*time.Minute, nil)
	uc := usecase.NewBookingWizardUseCase(store, client, widget, receipt.NewPDFRenderer(), nil)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.Setup(e, zerolog.Nop())

	handler := httpAdapter.NewBookingWizardHandler(uc, httpAdapter.DefaultTripsPath)
	httpAdapter.RegisterRoutes(e, handler, o.submitMiddleware...)

	return &TestServer{
		Echo:    e,
		Backend: b,
		Stripe:  s,
		Store:   store,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	return ts.DoWithContext(context.Background(), req)
}

// DoWithContext executes a test request carrying ctx.
func (ts *TestServer) DoWithContext(ctx context.Context, req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader).WithContext(ctx)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// StartBody builds a start request from an offer fixture. The offer is
// sent as its raw fixture bytes so unknown fields reach the backend.
func StartBody(t *testing.T, offerFile string, tripID int64, adults, children, infants int) map[string]interface{} {
	t.Helper()
	return map[string]interface{}{
		"flight":       json.RawMessage(testutil.LoadTestJSON(t, offerFile)),
		"tripId":       tripID,
		"searchParams": testutil.SearchParams(adults, children, infants),
	}
}

// Start opens a wizard.
func (ts *TestServer) Start(body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: wizardPath, Body: body})
}

// Get fetches a wizard view.
func (ts *TestServer) Get(id string) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: wizardPath + "/" + id})
}

// UpdatePassenger patches one passenger form.
func (ts *TestServer) UpdatePassenger(id string, index int, body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPut, Path: fmt.Sprintf("%s/%s/passengers/%d", wizardPath, id, index), Body: body})
}

// Next advances the wizard.
func (ts *TestServer) Next(id string) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: wizardPath + "/" + id + "/next"})
}

// Back retreats the wizard.
func (ts *TestServer) Back(id string) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: wizardPath + "/" + id + "/back"})
}

// Card reports the card input state.
func (ts *TestServer) Card(id string, body interface{}) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: wizardPath + "/" + id + "/card", Body: body})
}

// Submit runs payment and booking with the given request headers.
func (ts *TestServer) Submit(id string, headers map[string]string) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: wizardPath + "/" + id + "/submit", Headers: headers})
}

// Acknowledge acknowledges a confirmed booking.
func (ts *TestServer) Acknowledge(id string) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: wizardPath + "/" + id + "/acknowledge"})
}

// Cancel discards a wizard.
func (ts *TestServer) Cancel(id string) Response {
	return ts.Do(Request{Method: http.MethodDelete, Path: wizardPath + "/" + id})
}

// Receipt downloads the receipt of a confirmed booking.
func (ts *TestServer) Receipt(id string) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: wizardPath + "/" + id + "/receipt"})
}

// ParseView parses the response body as a wizard view.
func (r *Response) ParseView() (*httpAdapter.WizardViewDTO, error) {
	var view httpAdapter.WizardViewDTO
	if err := json.Unmarshal(r.Body, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// ValidCard is a card state that passes every submission precondition.
func ValidCard() httpAdapter.CardStateRequest {
	return httpAdapter.CardStateRequest{Complete: true, PaymentMethodID: "pm_card_visa"}
}

// StartedWizard opens a wizard for offerFile and returns its session id.
func (ts *TestServer) StartedWizard(t *testing.T, offerFile string, adults, children, infants int) string {
	t.Helper()

	resp := ts.Start(StartBody(t, offerFile, 42, adults, children, infants))
	if resp.Code != http.StatusCreated {
		t.Fatalf("start wizard: status %d: %s", resp.Code, resp.Body)
	}
	view, err := resp.ParseView()
	if err != nil {
		t.Fatalf("start wizard: %v", err)
	}
	return view.SessionID
}

// ReadyToSubmit fills every passenger, walks to the payment step and
// reports a valid card. It returns the session id.
func (ts *TestServer) ReadyToSubmit(t *testing.T, offerFile string, adults, children, infants int) string {
	t.Helper()

	id := ts.StartedWizard(t, offerFile, adults, children, infants)
	for i := 0; i < adults+children; i++ {
		if resp := ts.UpdatePassenger(id, i, testutil.CompletePassenger(fmt.Sprintf("Passenger%d", i+1))); resp.Code != http.StatusOK {
			t.Fatalf("update passenger %d: status %d: %s", i, resp.Code, resp.Body)
		}
		if resp := ts.Next(id); resp.Code != http.StatusOK {
			t.Fatalf("next from %d: status %d: %s", i, resp.Code, resp.Body)
		}
	}
	if resp := ts.Card(id, ValidCard()); resp.Code != http.StatusOK {
		t.Fatalf("report card: status %d: %s", resp.Code, resp.Body)
	}
	return id
}
