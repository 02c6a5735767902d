package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the wizard and its use case.
var (
	// ErrMissingWizardInput is returned when the wizard is started without
	// an offer, a trip or search parameters.
	ErrMissingWizardInput = errors.New("flight offer, trip and search parameters are required")

	// ErrSessionNotFound is returned for unknown or expired sessions.
	ErrSessionNotFound = errors.New("wizard session not found")

	// ErrSubmissionInProgress is returned while a submission is running.
	ErrSubmissionInProgress = errors.New("submission already in progress")

	// ErrInvalidTransition is returned when an operation is not allowed in the current state.
	ErrInvalidTransition = errors.New("operation not allowed in current wizard state")

	// ErrPassengerIndex is returned for a passenger index out of range.
	ErrPassengerIndex = errors.New("passenger index out of range")

	// ErrInvalidPassenger is returned when a passenger field has an invalid value.
	ErrInvalidPassenger = errors.New("invalid passenger details")

	// ErrIncompletePassengers is a submission precondition failure.
	ErrIncompletePassengers = errors.New("incomplete passenger information")

	// ErrPaymentNotReady is a submission precondition failure.
	ErrPaymentNotReady = errors.New("payment client not ready")

	// ErrCardInvalid is a submission precondition failure.
	ErrCardInvalid = errors.New("card input invalid")

	// ErrMissingClientSecret is returned when a payment intent carries no client secret.
	ErrMissingClientSecret = errors.New("payment intent has no client secret")

	// ErrPaymentNotSucceeded is returned when a confirmed payment did not succeed.
	ErrPaymentNotSucceeded = errors.New("payment not successful")

	// ErrNotConfirmed is returned when confirmation data is requested too early.
	ErrNotConfirmed = errors.New("booking not confirmed")
)

// FailureKind classifies a failed submission.
type FailureKind string

const (
	// FailureValidation is a local precondition failure; nothing was sent.
	FailureValidation FailureKind = "validation"

	// FailureBackend is a payment-intent or booking call failure.
	FailureBackend FailureKind = "backend"

	// FailurePayment is a payment widget failure.
	FailurePayment FailureKind = "payment"
)

// SubmissionError is a failed submission together with the message
// shown to the user.
type SubmissionError struct {
	Kind    FailureKind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SubmissionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s failure: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s failure: %s: %v", e.Kind, e.Message, e.Err)
}

// Unwrap returns the underlying error.
func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// NewSubmissionError creates a SubmissionError.
func NewSubmissionError(kind FailureKind, message string, err error) *SubmissionError {
	return &SubmissionError{Kind: kind, Message: message, Err: err}
}

// BackendError is a failed call to the travel backend.
type BackendError struct {
	// Op is the backend operation (e.g., "create payment intent")
	Op string

	// StatusCode is the HTTP status, 0 for transport errors
	StatusCode int

	// Message is the error message provided by the backend, if any
	Message string

	Err error
}

// Error implements the error interface.
func (e *BackendError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.StatusCode != 0 && (e.StatusCode < 200 || e.StatusCode > 299):
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: no confirmation in response (status %d)", e.Op, e.StatusCode)
	default:
		return e.Op + ": failed"
	}
}

// Unwrap returns the underlying error.
func (e *BackendError) Unwrap() error {
	return e.Err
}

// PaymentError is an error reported by the payment widget.
type PaymentError struct {
	// Code is the provider's error code (e.g., "card_declined")
	Code string

	// Message is shown to the user verbatim
	Message string

	Err error
}

// Error implements the error interface.
func (e *PaymentError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PaymentError) Unwrap() error {
	return e.Err
}

// UserMessage picks the message to surface for err: the backend or payment
// provider message when present, else the error text, else fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}

	var backendErr *BackendError
	if errors.As(err, &backendErr) {
		if backendErr.Message != "" {
			return backendErr.Message
		}
		if backendErr.Err != nil && backendErr.Err.Error() != "" {
			return backendErr.Err.Error()
		}
		return fallback
	}

	var paymentErr *PaymentError
	if errors.As(err, &paymentErr) && paymentErr.Message != "" {
		return paymentErr.Message
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
