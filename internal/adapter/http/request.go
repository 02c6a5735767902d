// Package http provides the HTTP handler layer for the booking wizard API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/flight-search/booking-wizard/internal/domain"
)

// StartWizardRequest is the navigation state a booking wizard is opened with.
// Every field is required; a request without them is redirected to the trip list.
type StartWizardRequest struct {
	// Flight is the offer selected on the search screen, forwarded to the backend unchanged
	Flight *domain.FlightOffer `json:"flight"`

	// TripID is the trip the booking is added to
	TripID int64 `json:"tripId" example:"42"`

	// SearchParams carries the passenger counts of the search
	SearchParams *domain.SearchParameters `json:"searchParams"`
}

// UpdatePassengerRequest is a partial update of one passenger form.
// Omitted fields are left unchanged.
type UpdatePassengerRequest struct {
	FirstName   *string `json:"firstName,omitempty" example:"Ada"`
	LastName    *string `json:"lastName,omitempty" example:"Lovelace"`
	PhoneNumber *string `json:"phoneNumber,omitempty" example:"+44 20 7946 0000"`

	// Gender is Male or Female
	Gender      *string `json:"gender,omitempty" example:"Female"`
	Nationality *string `json:"nationality,omitempty" example:"GB"`
	Email       *string `json:"email,omitempty" example:"ada@example.com"`

	// DateOfBirth is in YYYY-MM-DD format
	DateOfBirth *string `json:"dateOfBirth,omitempty" example:"1990-04-12"`
}

// CardStateRequest reports a change of the card input.
type CardStateRequest struct {
	// Complete is true once the card input holds a full card
	Complete bool `json:"complete" example:"true"`

	// Error is the card input's validation message, empty when valid
	Error string `json:"error,omitempty" example:""`

	// PaymentMethodID is the tokenised card (e.g., "pm_card_visa")
	PaymentMethodID string `json:"paymentMethodId,omitempty" example:"pm_card_visa"`
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the passenger update against the current time now.
// Empty strings are accepted so a field can be cleared while typing.
func (r *UpdatePassengerRequest) Validate(now time.Time) error {
	errs := &ValidationErrors{}

	if r.Gender != nil && !domain.Gender(*r.Gender).IsValid() {
		errs.Add("gender", "gender must be Male or Female")
	}

	if r.Email != nil {
		email := strings.TrimSpace(*r.Email)
		if email != "" && !isValidEmail(email) {
			errs.Add("email", "email must be a valid email address")
		}
	}

	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		validateDateOfBirth(*r.DateOfBirth, now, errs)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validateDateOfBirth(dob string, now time.Time, errs *ValidationErrors) {
	if !datePattern.MatchString(dob) {
		errs.Add("dateOfBirth", "dateOfBirth must be in YYYY-MM-DD format")
		return
	}

	date, err := time.Parse("2006-01-02", dob)
	if err != nil {
		errs.Add("dateOfBirth", "dateOfBirth must be a valid date")
		return
	}

	if date.After(now) {
		errs.Add("dateOfBirth", "dateOfBirth cannot be in the future")
	}
}

func isValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// parsePassengerIndex parses the :index path parameter.
func parsePassengerIndex(raw string) (int, error) {
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("passenger index must be a non-negative integer, got %q", raw)
	}
	return index, nil
}
