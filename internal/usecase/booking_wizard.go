// Package usecase contains the business logic of the booking wizard.
// It owns wizard sessions and runs the payment and booking submission
// against the travel backend and the payment widget.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/flight-search/booking-wizard/internal/domain"
	"github.com/flight-search/booking-wizard/internal/infrastructure/logger"
	"github.com/flight-search/booking-wizard/internal/infrastructure/timeutil"
	"github.com/flight-search/booking-wizard/internal/session"
	"github.com/flight-search/booking-wizard/internal/wizard"
)

// Messages surfaced for failed submissions.
const (
	MsgPaymentIntentFailed  = "Failed to create payment intent"
	MsgPaymentNotSuccessful = "Payment not successful"
	MsgBookingFailed        = "Failed to book flight"
)

// CancelTarget is the navigation target of a cancelled wizard.
const CancelTarget = "back"

// StartInput is the navigation state a wizard is started with.
type StartInput struct {
	Offer        *domain.FlightOffer
	TripID       int64
	SearchParams *domain.SearchParameters
}

// BookingWizardUseCase defines the booking wizard operations.
type BookingWizardUseCase interface {
	// Start creates a wizard session. It returns domain.ErrMissingWizardInput
	// when the offer, trip or search parameters are missing.
	Start(ctx context.Context, in StartInput) (*View, error)

	// Get returns the current view of a session.
	Get(ctx context.Context, sessionID string) (*View, error)

	// UpdatePassenger applies a partial update to one passenger.
	UpdatePassenger(ctx context.Context, sessionID string, index int, patch domain.PassengerPatch) (*View, error)

	// Advance moves to the next step when the current passenger is complete.
	Advance(ctx context.Context, sessionID string) (*View, error)

	// Retreat moves one step back.
	Retreat(ctx context.Context, sessionID string) (*View, error)

	// ReportCard records the card input's validation state.
	ReportCard(ctx context.Context, sessionID string, card wizard.CardState) (*View, error)

	// Submit runs payment and booking. On failure the returned view carries
	// the surfaced message and the error is a *domain.SubmissionError.
	Submit(ctx context.Context, sessionID string, creds domain.Credentials) (*View, error)

	// Acknowledge returns the detail route of the confirmed booking and
	// discards the session.
	Acknowledge(ctx context.Context, sessionID string) (string, error)

	// Cancel discards the session and returns the navigation target.
	Cancel(ctx context.Context, sessionID string) (string, error)

	// Receipt renders the receipt of a confirmed booking.
	Receipt(ctx context.Context, sessionID string) ([]byte, string, error)
}

// Config contains configuration options for the use case.
type Config struct {
	// Location is the time zone summary times are shown in
	Location *time.Location

	Clock timeutil.Clock
}

type bookingWizardUseCase struct {
	store    *session.Store
	backend  domain.TravelBackend
	widget   domain.PaymentWidget
	receipts domain.ReceiptRenderer
	location *time.Location
	clock    timeutil.Clock
}

// NewBookingWizardUseCase creates a BookingWizardUseCase.
// If config is nil, times are shown in UTC.
func NewBookingWizardUseCase(
	store *session.Store,
	backend domain.TravelBackend,
	widget domain.PaymentWidget,
	receipts domain.ReceiptRenderer,
	config *Config,
) BookingWizardUseCase {
	uc := &bookingWizardUseCase{
		store:    store,
		backend:  backend,
		widget:   widget,
		receipts: receipts,
		location: time.UTC,
		clock:    timeutil.NewRealClock(),
	}
	if config != nil {
		if config.Location != nil {
			uc.location = config.Location
		}
		if config.Clock != nil {
			uc.clock = config.Clock
		}
	}
	return uc
}

// Start implements BookingWizardUseCase.Start.
func (uc *bookingWizardUseCase) Start(ctx context.Context, in StartInput) (*View, error) {
	w, err := wizard.New(in.Offer, in.TripID, in.SearchParams)
	if err != nil {
		return nil, err
	}

	id := uc.store.Create(w)
	logger.Ctx(ctx).WithSession(id).WithTrip(w.TripID()).Info().
		Int("passengers", w.PassengerCount()).
		Msg("Booking wizard started")

	return newView(id, w, uc.location), nil
}

// Get implements BookingWizardUseCase.Get.
func (uc *bookingWizardUseCase) Get(_ context.Context, sessionID string) (*View, error) {
	return uc.apply(sessionID, func(*wizard.Wizard) error { return nil })
}

// UpdatePassenger implements BookingWizardUseCase.UpdatePassenger.
func (uc *bookingWizardUseCase) UpdatePassenger(_ context.Context, sessionID string, index int, patch domain.PassengerPatch) (*View, error) {
	return uc.apply(sessionID, func(w *wizard.Wizard) error {
		return w.UpdatePassenger(index, patch)
	})
}

// Advance implements BookingWizardUseCase.Advance. Advancing with an
// incomplete passenger leaves the view unchanged.
func (uc *bookingWizardUseCase) Advance(_ context.Context, sessionID string) (*View, error) {
	return uc.apply(sessionID, func(w *wizard.Wizard) error {
		w.Advance()
		return nil
	})
}

// Retreat implements BookingWizardUseCase.Retreat.
func (uc *bookingWizardUseCase) Retreat(_ context.Context, sessionID string) (*View, error) {
	return uc.apply(sessionID, func(w *wizard.Wizard) error {
		w.Retreat()
		return nil
	})
}

// ReportCard implements BookingWizardUseCase.ReportCard.
func (uc *bookingWizardUseCase) ReportCard(_ context.Context, sessionID string, card wizard.CardState) (*View, error) {
	return uc.apply(sessionID, func(w *wizard.Wizard) error {
		return w.ReportCard(card)
	})
}

// Submit implements BookingWizardUseCase.Submit.
//
// The steps run strictly in order: payment intent, card confirmation,
// booking. No backend call is made when a local precondition fails, and no
// booking is attempted unless the payment succeeded.
func (uc *bookingWizardUseCase) Submit(ctx context.Context, sessionID string, creds domain.Credentials) (*View, error) {
	var sub wizard.Submission
	err := uc.store.With(sessionID, func(w *wizard.Wizard) error {
		var err error
		sub, err = w.BeginSubmit(uc.widget.Ready())
		return err
	})
	if err != nil {
		var serr *domain.SubmissionError
		if errors.As(err, &serr) {
			view, getErr := uc.Get(ctx, sessionID)
			if getErr != nil {
				return nil, getErr
			}
			return view, err
		}
		return nil, err
	}

	// A started submission runs to completion even if the caller goes away.
	ctx = context.WithoutCancel(ctx)
	log := logger.Ctx(ctx).WithSession(sessionID).WithTrip(sub.TripID)
	ctx = logger.IntoContext(ctx, log)

	finished := false
	defer func() {
		if !finished {
			log.Error().Msg("Submission aborted")
			uc.finish(sessionID, nil, MsgBookingFailed)
		}
	}()

	conf, serr := uc.runSubmission(ctx, log, sub, creds)
	finished = true

	if serr != nil {
		log.Warn().
			Err(serr.Err).
			Str("kind", string(serr.Kind)).
			Str("message", serr.Message).
			Msg("Booking submission failed")
		view := uc.finish(sessionID, nil, serr.Message)
		return view, serr
	}

	log.Info().
		Str("pnr", conf.PNR).
		Str("booking_id", string(conf.BookingID)).
		Msg("Booking confirmed")
	return uc.finish(sessionID, conf, ""), nil
}

func (uc *bookingWizardUseCase) runSubmission(ctx context.Context, log *logger.Logger, sub wizard.Submission, creds domain.Credentials) (*domain.BookingConfirmation, *domain.SubmissionError) {
	charge := domain.NewCharge(sub.Offer.TotalPrice, sub.Offer.Currency)
	log.Info().
		Int64("amount", charge.Amount).
		Str("currency", charge.Currency).
		Msg("Creating payment intent")

	intent, err := uc.backend.CreatePaymentIntent(ctx, domain.PaymentIntentRequest{
		Amount:   charge.Amount,
		Currency: charge.Currency,
	})
	if err != nil {
		return nil, domain.NewSubmissionError(domain.FailureBackend, domain.UserMessage(err, MsgPaymentIntentFailed), err)
	}
	if intent == nil || intent.ClientSecret == "" {
		return nil, domain.NewSubmissionError(domain.FailureBackend, MsgPaymentIntentFailed, domain.ErrMissingClientSecret)
	}

	payment, err := uc.widget.ConfirmCardPayment(ctx, intent.ClientSecret, sub.Card)
	if err != nil {
		return nil, domain.NewSubmissionError(domain.FailurePayment, domain.UserMessage(err, MsgBookingFailed), err)
	}
	if !payment.Succeeded() {
		return nil, domain.NewSubmissionError(domain.FailurePayment, MsgPaymentNotSuccessful,
			fmt.Errorf("%w: status %q", domain.ErrPaymentNotSucceeded, paymentStatus(payment)))
	}

	log.Info().Str("payment_intent", payment.IntentID).Msg("Payment succeeded, booking flight")

	req := domain.NewBookingRequest(sub.TripID, sub.Offer, sub.Passengers)
	conf, err := uc.backend.BookFlight(ctx, req, creds)
	if err != nil {
		return nil, domain.NewSubmissionError(domain.FailureBackend, domain.UserMessage(err, MsgBookingFailed), err)
	}
	if conf == nil || conf.BookingID == "" {
		return nil, domain.NewSubmissionError(domain.FailureBackend, MsgBookingFailed,
			&domain.BackendError{Op: "book flight", Message: "empty booking confirmation"})
	}
	return conf, nil
}

// finish reports the outcome of a running submission to the wizard and
// returns the resulting view. conf == nil means failure with msg.
func (uc *bookingWizardUseCase) finish(sessionID string, conf *domain.BookingConfirmation, msg string) *View {
	view, err := uc.apply(sessionID, func(w *wizard.Wizard) error {
		if conf != nil {
			w.Complete(*conf)
		} else {
			w.Fail(msg)
		}
		return nil
	})
	if err != nil {
		// The session was removed while submitting.
		logger.Warn().Err(err).Str("session_id", sessionID).Msg("Submission outcome dropped")
		return nil
	}
	return view
}

// Acknowledge implements BookingWizardUseCase.Acknowledge. The session is
// discarded once the confirmation is acknowledged.
func (uc *bookingWizardUseCase) Acknowledge(ctx context.Context, sessionID string) (string, error) {
	var target string
	err := uc.store.With(sessionID, func(w *wizard.Wizard) error {
		var err error
		target, err = w.Acknowledge()
		return err
	})
	if err != nil {
		return "", err
	}

	uc.store.Delete(sessionID)
	logger.Ctx(ctx).WithSession(sessionID).Info().Str("redirect", target).Msg("Booking confirmation acknowledged")
	return target, nil
}

// Cancel implements BookingWizardUseCase.Cancel. A running submission
// cannot be cancelled.
func (uc *bookingWizardUseCase) Cancel(ctx context.Context, sessionID string) (string, error) {
	err := uc.store.With(sessionID, func(w *wizard.Wizard) error {
		if w.Busy() {
			return domain.ErrSubmissionInProgress
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	uc.store.Delete(sessionID)
	logger.Ctx(ctx).WithSession(sessionID).Info().Msg("Booking wizard cancelled")
	return CancelTarget, nil
}

// Receipt implements BookingWizardUseCase.Receipt.
func (uc *bookingWizardUseCase) Receipt(_ context.Context, sessionID string) ([]byte, string, error) {
	var receipt domain.Receipt
	err := uc.store.With(sessionID, func(w *wizard.Wizard) error {
		conf := w.Confirmation()
		if w.State() != wizard.StateConfirmed || conf == nil {
			return domain.ErrNotConfirmed
		}
		receipt = newReceipt(w, *conf, uc.location, uc.clock.Now())
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	doc, err := uc.receipts.Render(receipt)
	if err != nil {
		return nil, "", fmt.Errorf("render receipt: %w", err)
	}
	return doc, uc.receipts.ContentType(), nil
}

// apply runs fn on the session's wizard and returns the resulting view.
func (uc *bookingWizardUseCase) apply(sessionID string, fn func(w *wizard.Wizard) error) (*View, error) {
	var view *View
	err := uc.store.With(sessionID, func(w *wizard.Wizard) error {
		if err := fn(w); err != nil {
			return err
		}
		view = newView(sessionID, w, uc.location)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func paymentStatus(p *domain.PaymentConfirmation) domain.PaymentStatus {
	if p == nil {
		return ""
	}
	return p.Status
}
