// Package wizard implements the booking wizard as an explicit state machine.
//
// A wizard walks through one passenger form per ticketed traveller, then the
// payment step, then submission. Transitions never perform I/O: the use case
// drives the network calls and reports their outcome back through Fail and
// Complete. A Wizard is not safe for concurrent use; callers serialise access.
package wizard

import (
	"fmt"

	"github.com/flight-search/booking-wizard/internal/domain"
)

// State is the named state of a wizard.
type State string

const (
	StateCollectingPassenger State = "collecting-passenger"
	StatePayment             State = "payment"
	StateSubmitting          State = "submitting"
	StateConfirmed           State = "confirmed"
	StateFailed              State = "failed"
)

// Messages surfaced for local precondition failures.
const (
	MsgIncompletePassengers = "Please fill in all passenger information"
	MsgPaymentNotReady      = "Payment client is not ready. Please try again."
	MsgCardIncomplete       = "Please enter your card details"
)

// CardState is the last validation state reported by the card input.
type CardState struct {
	// Complete is true once the card input holds a full card
	Complete bool `json:"complete"`

	// Error is the validation message reported by the card input, empty when valid
	Error string `json:"error,omitempty"`

	// PaymentMethodID is the tokenised card produced by the card input
	PaymentMethodID string `json:"paymentMethodId,omitempty"`
}

// Submission is the data captured when a submission starts.
type Submission struct {
	TripID     int64
	Offer      domain.FlightOffer
	Passengers []domain.PassengerRecord
	Card       domain.Card
}

// Wizard holds the state of one booking attempt.
type Wizard struct {
	offer  domain.FlightOffer
	tripID int64
	params domain.SearchParameters

	state        State
	step         int
	passengers   []domain.PassengerRecord
	busy         bool
	lastError    string
	card         CardState
	confirmation *domain.BookingConfirmation
}

// New creates a wizard for the selected offer. All three inputs are required;
// a zero tripID falls back to params.TripID. A missing input or a search
// without ticketed passengers returns domain.ErrMissingWizardInput.
func New(offer *domain.FlightOffer, tripID int64, params *domain.SearchParameters) (*Wizard, error) {
	if offer == nil || params == nil {
		return nil, domain.ErrMissingWizardInput
	}
	if tripID == 0 {
		tripID = params.TripID
	}
	if tripID <= 0 {
		return nil, domain.ErrMissingWizardInput
	}
	if params.TicketedPassengers() == 0 {
		return nil, fmt.Errorf("%w: no ticketed passengers", domain.ErrMissingWizardInput)
	}

	return &Wizard{
		offer:      *offer,
		tripID:     tripID,
		params:     *params,
		state:      StateCollectingPassenger,
		passengers: domain.NewPassengers(*params),
	}, nil
}

// Offer returns the selected flight offer.
func (w *Wizard) Offer() domain.FlightOffer { return w.offer }

// TripID returns the trip the booking belongs to.
func (w *Wizard) TripID() int64 { return w.tripID }

// Params returns the search parameters the wizard was started with.
func (w *Wizard) Params() domain.SearchParameters { return w.params }

// State returns the current named state.
func (w *Wizard) State() State { return w.state }

// Step returns the current step index; PassengerCount() is the payment step.
func (w *Wizard) Step() int { return w.step }

// PassengerCount returns the number of passenger forms.
func (w *Wizard) PassengerCount() int { return len(w.passengers) }

// Busy reports whether a submission is in flight.
func (w *Wizard) Busy() bool { return w.busy }

// LastError returns the last surfaced error message, empty if none.
func (w *Wizard) LastError() string { return w.lastError }

// Card returns the last reported card state.
func (w *Wizard) Card() CardState { return w.card }

// Confirmation returns the booking confirmation once confirmed.
func (w *Wizard) Confirmation() *domain.BookingConfirmation {
	if w.confirmation == nil {
		return nil
	}
	c := *w.confirmation
	return &c
}

// Passengers returns a copy of the passenger records.
func (w *Wizard) Passengers() []domain.PassengerRecord {
	out := make([]domain.PassengerRecord, len(w.passengers))
	copy(out, w.passengers)
	return out
}

// IsPaymentStep reports whether the wizard is past the last passenger.
func (w *Wizard) IsPaymentStep() bool {
	return w.step == len(w.passengers)
}

// StepLabel returns the title of passenger step i, e.g. "Passenger 1 (Adult)".
func (w *Wizard) StepLabel(i int) string {
	if i < 0 || i >= len(w.passengers) {
		return ""
	}
	return fmt.Sprintf("Passenger %d (%s)", i+1, w.passengers[i].TravelerType.Label())
}

// CanAdvance reports whether the current passenger is complete.
func (w *Wizard) CanAdvance() bool {
	return w.state == StateCollectingPassenger && w.passengers[w.step].IsComplete()
}

// Advance moves to the next passenger, or to the payment step after the
// last one. It is a no-op returning false when the current record is incomplete.
func (w *Wizard) Advance() bool {
	if !w.CanAdvance() {
		return false
	}
	w.step++
	if w.step == len(w.passengers) {
		w.state = StatePayment
	}
	return true
}

// CanRetreat reports whether Retreat would move back.
func (w *Wizard) CanRetreat() bool {
	if w.step == 0 {
		return false
	}
	switch w.state {
	case StateCollectingPassenger, StatePayment, StateFailed:
		return true
	default:
		return false
	}
}

// Retreat moves one step back without validating. It is a no-op at step 0.
func (w *Wizard) Retreat() bool {
	if !w.CanRetreat() {
		return false
	}
	w.step--
	w.state = StateCollectingPassenger
	return true
}

// UpdatePassenger applies patch to the passenger at index i.
func (w *Wizard) UpdatePassenger(i int, patch domain.PassengerPatch) error {
	if err := w.editable(); err != nil {
		return err
	}
	if i < 0 || i >= len(w.passengers) {
		return fmt.Errorf("%w: %d", domain.ErrPassengerIndex, i)
	}
	if patch.Gender != nil && !patch.Gender.IsValid() {
		return fmt.Errorf("%w: gender must be Male or Female", domain.ErrInvalidPassenger)
	}

	patch.Apply(&w.passengers[i])
	return nil
}

// ReportCard stores the card input's validation state.
func (w *Wizard) ReportCard(card CardState) error {
	if err := w.editable(); err != nil {
		return err
	}
	w.card = card
	return nil
}

func (w *Wizard) editable() error {
	switch w.state {
	case StateSubmitting:
		return domain.ErrSubmissionInProgress
	case StateConfirmed:
		return fmt.Errorf("%w: booking already confirmed", domain.ErrInvalidTransition)
	default:
		return nil
	}
}

// BeginSubmit checks the submission preconditions and, when they hold,
// marks the wizard busy and returns the data to submit.
// Precondition failures are *domain.SubmissionError of kind FailureValidation
// and leave the state unchanged apart from the surfaced message.
func (w *Wizard) BeginSubmit(paymentReady bool) (Submission, error) {
	switch w.state {
	case StateSubmitting:
		return Submission{}, domain.ErrSubmissionInProgress
	case StatePayment, StateFailed:
	default:
		return Submission{}, fmt.Errorf("%w: submit from %s", domain.ErrInvalidTransition, w.state)
	}

	if err := w.checkPreconditions(paymentReady); err != nil {
		w.lastError = err.Message
		return Submission{}, err
	}

	w.busy = true
	w.lastError = ""
	w.state = StateSubmitting

	return Submission{
		TripID:     w.tripID,
		Offer:      w.offer,
		Passengers: w.Passengers(),
		Card:       domain.Card{PaymentMethodID: w.card.PaymentMethodID},
	}, nil
}

func (w *Wizard) checkPreconditions(paymentReady bool) *domain.SubmissionError {
	for _, p := range w.passengers {
		if !p.IsComplete() {
			return domain.NewSubmissionError(domain.FailureValidation, MsgIncompletePassengers, domain.ErrIncompletePassengers)
		}
	}
	if !paymentReady {
		return domain.NewSubmissionError(domain.FailureValidation, MsgPaymentNotReady, domain.ErrPaymentNotReady)
	}
	if w.card.Error != "" {
		return domain.NewSubmissionError(domain.FailureValidation, w.card.Error, domain.ErrCardInvalid)
	}
	if !w.card.Complete || w.card.PaymentMethodID == "" {
		return domain.NewSubmissionError(domain.FailureValidation, MsgCardIncomplete, domain.ErrCardInvalid)
	}
	return nil
}

// Fail ends a running submission with a surfaced message. It is a no-op
// unless a submission is running.
func (w *Wizard) Fail(message string) {
	if w.state != StateSubmitting {
		return
	}
	w.busy = false
	w.lastError = message
	w.state = StateFailed
}

// Complete ends a running submission with the backend's confirmation.
func (w *Wizard) Complete(confirmation domain.BookingConfirmation) {
	if w.state != StateSubmitting {
		return
	}
	w.busy = false
	w.lastError = ""
	w.confirmation = &confirmation
	w.state = StateConfirmed
}

// Acknowledge returns the detail route of the confirmed booking.
func (w *Wizard) Acknowledge() (string, error) {
	if w.state != StateConfirmed || w.confirmation == nil {
		return "", domain.ErrNotConfirmed
	}
	return BookingDetailPath(w.tripID, w.confirmation.BookingID), nil
}

// BookingDetailPath returns "/trips/{tripId}/flights/{bookingId}".
func BookingDetailPath(tripID int64, bookingID domain.BookingID) string {
	return fmt.Sprintf("/trips/%d/flights/%s", tripID, bookingID)
}
