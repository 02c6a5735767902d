package usecase

import (
	"time"

	"github.com/flight-search/booking-wizard/internal/domain"
	"github.com/flight-search/booking-wizard/internal/wizard"
)

// View is a snapshot of one wizard session as shown to the user.
type View struct {
	SessionID string
	TripID    int64
	State     wizard.State

	// Step is the current step; Step == len(Steps) is the payment step
	Step          int
	Steps         []string
	IsPaymentStep bool
	CanAdvance    bool
	CanRetreat    bool
	Busy          bool

	// Error is the message surfaced by the last failed action, if any
	Error string

	Passengers   []domain.PassengerRecord
	Card         wizard.CardState
	Summary      wizard.Summary
	Confirmation *domain.BookingConfirmation
}

func newView(id string, w *wizard.Wizard, loc *time.Location) *View {
	steps := make([]string, w.PassengerCount())
	for i := range steps {
		steps[i] = w.StepLabel(i)
	}

	return &View{
		SessionID:     id,
		TripID:        w.TripID(),
		State:         w.State(),
		Step:          w.Step(),
		Steps:         steps,
		IsPaymentStep: w.IsPaymentStep(),
		CanAdvance:    w.CanAdvance(),
		CanRetreat:    w.CanRetreat(),
		Busy:          w.Busy(),
		Error:         w.LastError(),
		Passengers:    w.Passengers(),
		Card:          w.Card(),
		Summary:       wizard.BuildSummary(w.Offer(), loc),
		Confirmation:  w.Confirmation(),
	}
}

func newReceipt(w *wizard.Wizard, conf domain.BookingConfirmation, loc *time.Location, issuedAt time.Time) domain.Receipt {
	summary := wizard.BuildSummary(w.Offer(), loc)

	passengers := w.Passengers()
	lines := make([]domain.ReceiptPassenger, len(passengers))
	for i := range passengers {
		lines[i] = domain.ReceiptPassenger{
			Name:         passengers[i].FullName(),
			TravelerType: passengers[i].TravelerType,
		}
	}

	return domain.Receipt{
		PNR:           conf.PNR,
		TicketNo:      conf.TicketNo,
		BookingID:     conf.BookingID,
		TripID:        w.TripID(),
		Airline:       summary.Airline,
		Origin:        summary.Departure.AirportCode,
		Destination:   summary.Arrival.AirportCode,
		DepartureTime: summary.Departure.Time,
		ArrivalTime:   summary.Arrival.Time,
		Duration:      summary.Duration,
		StopLabel:     summary.StopLabel,
		Price:         summary.Price,
		Passengers:    lines,
		IssuedAt:      issuedAt,
	}
}
