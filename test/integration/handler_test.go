package integration

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/booking-wizard/internal/adapter/receipt"
	"github.com/flight-search/booking-wizard/internal/wizard"
	"github.com/flight-search/booking-wizard/test/mock"
	"github.com/flight-search/booking-wizard/test/testutil"
)

func newServer(t *testing.T, opts ...ServerOption) *TestServer {
	t.Helper()
	return NewTestServer(t, mock.NewBackend().Start(t), mock.NewStripe().Start(t), opts...)
}

// TestBookingFlow_Success walks the wizard from start to acknowledgement.
func TestBookingFlow_Success(t *testing.T) {
	// Arrange
	ts := newServer(t)
	id := ts.ReadyToSubmit(t, "offer_direct.json", 1, 1, 1)

	// Act
	resp := ts.Submit(id, map[string]string{
		"Cookie":        "session=abc",
		"Authorization": "Bearer token-123",
		"X-Request-ID":  "req-flow-1",
	})

	// Assert
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	view, err := resp.ParseView()
	require.NoError(t, err)
	assert.Equal(t, string(wizard.StateConfirmed), view.State)
	assert.False(t, view.Busy)
	assert.Empty(t, view.Error)
	require.NotNil(t, view.Confirmation)
	assert.Equal(t, "ABC123", view.Confirmation.PNR)
	assert.Equal(t, "1234567890", view.Confirmation.TicketNo)
	assert.Equal(t, "987", view.Confirmation.BookingID)
	assert.Equal(t, "/trips/42/flights/987", view.Confirmation.Redirect)

	intent, ok := ts.Backend.LastIntent()
	require.True(t, ok)
	assert.Equal(t, int64(125000000), intent.Amount)
	assert.Equal(t, "idr", intent.Currency)

	assert.Equal(t, []string{"pm_card_visa"}, ts.Stripe.PaymentMethods())

	headers := ts.Backend.LastHeaders()
	assert.Equal(t, "session=abc", headers.Get("Cookie"))
	assert.Equal(t, "Bearer token-123", headers.Get("Authorization"))
	assert.Equal(t, "req-flow-1", headers.Get("X-Request-ID"))
}

// TestBookingFlow_BookingRequestBody verifies what the backend receives.
func TestBookingFlow_BookingRequestBody(t *testing.T) {
	ts := newServer(t)
	id := ts.ReadyToSubmit(t, "offer_direct.json", 1, 1, 1)

	resp := ts.Submit(id, nil)
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))

	raw, ok := ts.Backend.LastBooking()
	require.True(t, ok)

	var body struct {
		TripID          int64                    `json:"tripId"`
		FlightOfferInfo map[string]interface{}   `json:"flightOfferInfo"`
		PassengerInfo   []map[string]interface{} `json:"passengerInfo"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, int64(42), body.TripID)
	assert.Equal(t, "YOWID", body.FlightOfferInfo["fareBasis"], "unknown offer fields are forwarded")
	assert.Equal(t, "GA-410-20251215", body.FlightOfferInfo["offerRef"])

	require.Len(t, body.PassengerInfo, 2, "infants get no passenger record")
	assert.Equal(t, "ADT", body.PassengerInfo[0]["travelerType"])
	assert.Equal(t, "CHD", body.PassengerInfo[1]["travelerType"])
	assert.Equal(t, "1990/04/12", body.PassengerInfo[0]["dateOfBirth"])
	assert.Equal(t, "Passenger1", body.PassengerInfo[0]["firstName"])
}

// TestBookingFlow_ReceiptAndAcknowledge downloads the receipt and closes the wizard.
func TestBookingFlow_ReceiptAndAcknowledge(t *testing.T) {
	ts := newServer(t)
	id := ts.ReadyToSubmit(t, "offer_transit.json", 2, 0, 0)

	require.Equal(t, http.StatusOK, ts.Submit(id, nil).Code)

	rec := ts.Receipt(id)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, receipt.ContentTypePDF, rec.Headers.Get("Content-Type"))
	assert.Contains(t, rec.Headers.Get("Content-Disposition"), "booking-receipt-"+id+".pdf")
	assert.True(t, strings.HasPrefix(string(rec.Body), "%PDF"))

	ack := ts.Acknowledge(id)
	assert.Equal(t, http.StatusSeeOther, ack.Code)
	assert.Equal(t, "/trips/42/flights/987", ack.Headers.Get("Location"))

	assert.Equal(t, http.StatusNotFound, ts.Get(id).Code)
	assert.Equal(t, 0, ts.Store.Len())
}

func TestBookingFlow_MissingInputRedirectsToTrips(t *testing.T) {
	ts := newServer(t)

	tests := []struct {
		name string
		body interface{}
	}{
		{name: "empty body", body: nil},
		{name: "no flight", body: map[string]interface{}{"tripId": 42, "searchParams": map[string]int{"adults": 1}}},
		{name: "no search params", body: map[string]interface{}{
			"flight": json.RawMessage(`{"airline":{"name":"X"},"flights":[],"totalPrice":1,"currency":"USD"}`),
			"tripId": 42,
		}},
		{name: "no ticketed passengers", body: StartBody(t, "offer_direct.json", 42, 0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.Start(tt.body)

			assert.Equal(t, http.StatusSeeOther, resp.Code)
			assert.Equal(t, "/trips", resp.Headers.Get("Location"))
		})
	}
	assert.Equal(t, 0, ts.Store.Len())
}

func TestBookingFlow_StartBuildsPassengersAndSummary(t *testing.T) {
	ts := newServer(t)

	resp := ts.Start(StartBody(t, "offer_transit.json", 7, 2, 1, 3))

	require.Equal(t, http.StatusCreated, resp.Code)
	view, err := resp.ParseView()
	require.NoError(t, err)

	assert.NotEmpty(t, view.SessionID)
	assert.Equal(t, int64(7), view.TripID)
	assert.Equal(t, string(wizard.StateCollectingPassenger), view.State)
	assert.Equal(t, 0, view.Step)
	require.Len(t, view.Passengers, 3)
	assert.Equal(t, "ADT", view.Passengers[0].TravelerType)
	assert.Equal(t, "ADT", view.Passengers[1].TravelerType)
	assert.Equal(t, "CHD", view.Passengers[2].TravelerType)
	assert.Equal(t, "Passenger 3 (Child)", view.Steps[2])

	assert.Equal(t, "Lion Air", view.Summary.Airline)
	assert.Equal(t, "1 stop", view.Summary.StopLabel)
	assert.Contains(t, view.Summary.Transit, "SUB")
	assert.Equal(t, int64(19999), view.Summary.Charge.Amount)
	assert.Equal(t, "usd", view.Summary.Charge.Currency)
}

func TestBookingFlow_TripIDFromSearchParams(t *testing.T) {
	ts := newServer(t)

	params := testutil.SearchParams(1, 0, 0)
	params.TripID = 11
	resp := ts.Start(map[string]interface{}{
		"flight":       json.RawMessage(testutil.LoadTestJSON(t, "offer_direct.json")),
		"searchParams": params,
	})

	require.Equal(t, http.StatusCreated, resp.Code, string(resp.Body))
	view, err := resp.ParseView()
	require.NoError(t, err)
	assert.Equal(t, int64(11), view.TripID)
}

func TestBookingFlow_IncompletePassengerCannotAdvance(t *testing.T) {
	ts := newServer(t)
	id := ts.StartedWizard(t, "offer_direct.json", 1, 0, 0)

	resp := ts.UpdatePassenger(id, 0, map[string]string{"firstName": "Dewi"})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.Next(id)
	require.Equal(t, http.StatusOK, resp.Code)
	view, err := resp.ParseView()
	require.NoError(t, err)

	assert.Equal(t, 0, view.Step)
	assert.False(t, view.CanAdvance)
	assert.False(t, view.IsPaymentStep)
	assert.Equal(t, "Dewi", view.Passengers[0].FirstName)
}

func TestBookingFlow_BackKeepsEnteredData(t *testing.T) {
	ts := newServer(t)
	id := ts.ReadyToSubmit(t, "offer_direct.json", 2, 0, 0)

	resp := ts.Back(id)
	require.Equal(t, http.StatusOK, resp.Code)
	view, err := resp.ParseView()
	require.NoError(t, err)

	assert.Equal(t, 1, view.Step)
	assert.Equal(t, string(wizard.StateCollectingPassenger), view.State)
	assert.Equal(t, "Passenger2", view.Passengers[1].FirstName)
	assert.True(t, view.CanAdvance)
}

func TestBookingFlow_InvalidPassengerInput(t *testing.T) {
	ts := newServer(t)
	id := ts.StartedWizard(t, "offer_direct.json", 1, 0, 0)

	tests := []struct {
		name  string
		index string
		body  map[string]string
	}{
		{name: "bad email", index: "0", body: map[string]string{"email": "not-an-email"}},
		{name: "bad date", index: "0", body: map[string]string{"dateOfBirth": "12/04/1990"}},
		{name: "bad gender", index: "0", body: map[string]string{"gender": "Other"}},
		{name: "index out of range", index: "5", body: map[string]string{"firstName": "X"}},
		{name: "negative index", index: "-1", body: map[string]string{"firstName": "X"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.Do(Request{
				Method: http.MethodPut,
				Path:   wizardPath + "/" + id + "/passengers/" + tt.index,
				Body:   tt.body,
			})
			assert.Equal(t, http.StatusBadRequest, resp.Code, string(resp.Body))
		})
	}
}

func TestBookingFlow_PaymentDeclined(t *testing.T) {
	b := mock.NewBackend().Start(t)
	s := mock.NewStripe().WithCardError("card_declined", "Your card was declined.").Start(t)
	ts := NewTestServer(t, b, s)
	id := ts.ReadyToSubmit(t, "offer_direct.json", 1, 0, 0)

	resp := ts.Submit(id, nil)

	assert.Equal(t, http.StatusPaymentRequired, resp.Code)
	view, err := resp.ParseView()
	require.NoError(t, err)
	assert.Equal(t, string(wizard.StateFailed), view.State)
	assert.Equal(t, "Your card was declined.", view.Error)
	assert.False(t, view.Busy)
	assert.Nil(t, view.Confirmation)
	assert.Equal(t, 1, b.IntentCalls())
	assert.Equal(t, 0, b.BookCalls(), "no booking without payment")
}

func TestBookingFlow_PaymentNotSucceeded(t *testing.T) {
	b := mock.NewBackend().Start(t)
	s := mock.NewStripe().WithStatus("requires_action").Start(t)
	ts := NewTestServer(t, b, s)
	id := ts.ReadyToSubmit(t, "offer_direct.json", 1, 0, 0)

	resp := ts.Submit(id, nil)

	assert.Equal(t, http.StatusPaymentRequired, resp.Code)
	view, err := resp.ParseView()
	require.NoError(t, err)
	assert.Equal(t, "Payment not successful", view.Error)
	assert.Equal(t, 0, b.BookCalls())
}

func TestBookingFlow_BookingFailureIsRecoverable(t *testing.T) {
	b := mock.NewBackend().WithBookingError(http.StatusInternalServerError, "Seat no longer available").Start(t)
	ts := NewTestServer(t, b, mock.NewStripe().Start(t))
	id := ts.ReadyToSubmit(t, "offer_direct.json", 1, 0, 0)

	resp := ts.Submit(id, nil)
	assert.Equal(t, http.StatusBadGateway, resp.Code)
	view, err := resp.ParseView()
	require.NoError(t, err)
	assert.Equal(t, string(wizard.StateFailed), view.State)
	assert.Equal(t, "Seat no longer available", view.Error)
	assert.Equal(t, 1, b.BookCalls(), "booking is never retried")

	// The wizard stays on the payment step and can submit again.
	resp = ts.Submit(id, nil)
	assert.Equal(t, http.StatusBadGateway, resp.Code)
	assert.Equal(t, 2, b.IntentCalls(), "each attempt opens a new payment intent")
	assert.Equal(t, 2, b.BookCalls())
}

func TestBookingFlow_IntentRetriedOnServerError(t *testing.T) {
	b := mock.NewBackend().WithIntentFailures(2, http.StatusServiceUnavailable, "try later").Start(t)
	ts := NewTestServer(t, b, mock.NewStripe().Start(t))
	id := ts.ReadyToSubmit(t, "offer_direct.json", 1, 0, 0)

	resp := ts.Submit(id, nil)

	assert.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	assert.Equal(t, 3, b.IntentCalls())
	assert.Equal(t, 1, b.BookCalls())
}

func TestBookingFlow_IntentNotRetriedOnClientError(t *testing.T) {
	b := mock.NewBackend().WithIntentFailures(1, http.StatusBadRequest, "Invalid amount").Start(t)
	s := mock.NewStripe().Start(t)
	ts := NewTestServer(t, b, s)
	id := ts.ReadyToSubmit(t, "offer_direct.json", 1, 0, 0)

	resp := ts.Submit(id, nil)

	assert.Equal(t, http.StatusBadGateway, resp.Code)
	view, err := resp.ParseView()
	require.NoError(t, err)
	assert.Equal(t, "Invalid amount", view.Error)
	assert.Equal(t, 1, b.IntentCalls())
	assert.Equal(t, 0, s.CallCount())
}

func TestBookingFlow_SubmitPreconditions(t *testing.T) {
	t.Run("payment not configured", func(t *testing.T) {
		ts := newServer(t, WithoutPaymentKey())
		id := ts.ReadyToSubmit(t, "offer_direct.json", 1, 0, 0)

		resp := ts.Submit(id, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		view, err := resp.ParseView()
		require.NoError(t, err)
		assert.Equal(t, wizard.MsgPaymentNotReady, view.Error)
		assert.Equal(t, 0, ts.Backend.IntentCalls())
	})

	t.Run("card incomplete", func(t *testing.T) {
		ts := newServer(t)
		id := ts.ReadyToSubmit(t, "offer_direct.json", 1, 0, 0)
		require.Equal(t, http.StatusOK, ts.Card(id, map[string]interface{}{"complete": false}).Code)

		resp := ts.Submit(id, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		view, err := resp.ParseView()
		require.NoError(t, err)
		assert.Equal(t, wizard.MsgCardIncomplete, view.Error)
		assert.Equal(t, string(wizard.StatePayment), view.State)
	})

	t.Run("card error reported", func(t *testing.T) {
		ts := newServer(t)
		id := ts.ReadyToSubmit(t, "offer_direct.json", 1, 0, 0)
		require.Equal(t, http.StatusOK, ts.Card(id, map[string]interface{}{
			"complete": false,
			"error":    "Your card number is incomplete.",
		}).Code)

		resp := ts.Submit(id, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		view, err := resp.ParseView()
		require.NoError(t, err)
		assert.Equal(t, "Your card number is incomplete.", view.Error)
	})

	t.Run("still collecting passengers", func(t *testing.T) {
		ts := newServer(t)
		id := ts.StartedWizard(t, "offer_direct.json", 1, 0, 0)

		resp := ts.Submit(id, nil)

		assert.Equal(t, http.StatusConflict, resp.Code)
		assert.Equal(t, 0, ts.Backend.IntentCalls())
	})
}

func TestBookingFlow_CancelDiscardsSession(t *testing.T) {
	ts := newServer(t)
	id := ts.StartedWizard(t, "offer_direct.json", 1, 0, 0)

	resp := ts.Cancel(id)

	require.Equal(t, http.StatusOK, resp.Code)
	var nav map[string]string
	require.NoError(t, json.Unmarshal(resp.Body, &nav))
	assert.Equal(t, "back", nav["redirect"])
	assert.Equal(t, http.StatusNotFound, ts.Get(id).Code)
}

func TestBookingFlow_ConfirmationOnlyActions(t *testing.T) {
	ts := newServer(t)
	id := ts.StartedWizard(t, "offer_direct.json", 1, 0, 0)

	assert.Equal(t, http.StatusConflict, ts.Receipt(id).Code)
	assert.Equal(t, http.StatusConflict, ts.Acknowledge(id).Code)
}

func TestBookingFlow_ConfirmedWizardRejectsEdits(t *testing.T) {
	ts := newServer(t)
	id := ts.ReadyToSubmit(t, "offer_direct.json", 1, 0, 0)
	require.Equal(t, http.StatusOK, ts.Submit(id, nil).Code)

	assert.Equal(t, http.StatusConflict, ts.UpdatePassenger(id, 0, map[string]string{"firstName": "X"}).Code)
	assert.Equal(t, http.StatusConflict, ts.Submit(id, nil).Code)
	assert.Equal(t, 1, ts.Backend.BookCalls())
}

func TestBookingFlow_UnknownSession(t *testing.T) {
	ts := newServer(t)

	resp := ts.Get("does-not-exist")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "not_found", errResp["code"])
}

func TestHealth(t *testing.T) {
	ts := newServer(t)

	resp := ts.Do(Request{Method: http.MethodGet, Path: "/health"})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NotEmpty(t, resp.Headers.Get("X-Request-ID"))
}
