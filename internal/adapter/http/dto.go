package http

import (
	"github.com/flight-search/booking-wizard/internal/domain"
	"github.com/flight-search/booking-wizard/internal/usecase"
	"github.com/flight-search/booking-wizard/internal/wizard"
)

// WizardViewDTO is the API representation of a wizard session.
type WizardViewDTO struct {
	SessionID string `json:"sessionId"`
	TripID    int64  `json:"tripId"`
	State     string `json:"state"`

	// Step is the current step; step == len(steps) is the payment step
	Step          int      `json:"step"`
	Steps         []string `json:"steps"`
	IsPaymentStep bool     `json:"isPaymentStep"`
	CanAdvance    bool     `json:"canAdvance"`
	CanRetreat    bool     `json:"canRetreat"`
	Busy          bool     `json:"busy"`

	// Error is the message of the last failed action
	Error string `json:"error,omitempty"`

	Passengers   []PassengerDTO   `json:"passengers"`
	Card         CardDTO          `json:"card"`
	Summary      wizard.Summary   `json:"summary"`
	Confirmation *ConfirmationDTO `json:"confirmation,omitempty"`
}

// PassengerDTO is one passenger form.
type PassengerDTO struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	PhoneNumber  string `json:"phoneNumber"`
	Gender       string `json:"gender"`
	Nationality  string `json:"nationality"`
	Email        string `json:"email"`
	DateOfBirth  string `json:"dateOfBirth"`
	TravelerType string `json:"travelerType"`
	Complete     bool   `json:"complete"`
}

// CardDTO is the last reported card input state.
type CardDTO struct {
	Complete bool   `json:"complete"`
	Error    string `json:"error,omitempty"`
}

// ConfirmationDTO is the booking confirmation shown after a successful submission.
type ConfirmationDTO struct {
	PNR       string `json:"pnr"`
	TicketNo  string `json:"ticketNo"`
	BookingID string `json:"bookingId"`

	// Redirect is the booking detail route the confirmation leads to
	Redirect string `json:"redirect"`
}

// ToWizardViewDTO converts a use case view to its API representation.
func ToWizardViewDTO(v *usecase.View) *WizardViewDTO {
	if v == nil {
		return nil
	}

	passengers := make([]PassengerDTO, len(v.Passengers))
	for i := range v.Passengers {
		passengers[i] = ToPassengerDTO(&v.Passengers[i])
	}

	steps := v.Steps
	if steps == nil {
		steps = []string{}
	}

	dto := &WizardViewDTO{
		SessionID:     v.SessionID,
		TripID:        v.TripID,
		State:         string(v.State),
		Step:          v.Step,
		Steps:         steps,
		IsPaymentStep: v.IsPaymentStep,
		CanAdvance:    v.CanAdvance,
		CanRetreat:    v.CanRetreat,
		Busy:          v.Busy,
		Error:         v.Error,
		Passengers:    passengers,
		Card: CardDTO{
			Complete: v.Card.Complete,
			Error:    v.Card.Error,
		},
		Summary: v.Summary,
	}

	if c := v.Confirmation; c != nil {
		dto.Confirmation = &ConfirmationDTO{
			PNR:       c.PNR,
			TicketNo:  c.TicketNo,
			BookingID: string(c.BookingID),
			Redirect:  wizard.BookingDetailPath(v.TripID, c.BookingID),
		}
	}
	return dto
}

// ToPassengerDTO converts a passenger record to its API representation.
func ToPassengerDTO(p *domain.PassengerRecord) PassengerDTO {
	return PassengerDTO{
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		PhoneNumber:  p.PhoneNumber,
		Gender:       string(p.Gender),
		Nationality:  p.Nationality,
		Email:        p.Email,
		DateOfBirth:  p.DateOfBirth,
		TravelerType: string(p.TravelerType),
		Complete:     p.IsComplete(),
	}
}
