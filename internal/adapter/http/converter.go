package http

import (
	"strings"

	"github.com/flight-search/booking-wizard/internal/domain"
	"github.com/flight-search/booking-wizard/internal/usecase"
	"github.com/flight-search/booking-wizard/internal/wizard"
)

// ToStartInput converts the start request to use case input. Missing parts
// stay nil so the use case can reject them.
func ToStartInput(req *StartWizardRequest) usecase.StartInput {
	return usecase.StartInput{
		Offer:        req.Flight,
		TripID:       req.TripID,
		SearchParams: req.SearchParams,
	}
}

// ToPassengerPatch converts a passenger update to a domain patch.
func ToPassengerPatch(req *UpdatePassengerRequest) domain.PassengerPatch {
	patch := domain.PassengerPatch{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Nationality: req.Nationality,
		Email:       req.Email,
		DateOfBirth: req.DateOfBirth,
	}
	if req.Gender != nil {
		g := domain.Gender(*req.Gender)
		patch.Gender = &g
	}
	return patch
}

// ToCardState converts a card report to the wizard's card state.
func ToCardState(req *CardStateRequest) wizard.CardState {
	return wizard.CardState{
		Complete:        req.Complete,
		Error:           req.Error,
		PaymentMethodID: strings.TrimSpace(req.PaymentMethodID),
	}
}

// ToCredentials extracts the caller's credentials forwarded to the backend.
func ToCredentials(cookie, authorization string) domain.Credentials {
	return domain.Credentials{
		Cookie:        cookie,
		Authorization: authorization,
	}
}
