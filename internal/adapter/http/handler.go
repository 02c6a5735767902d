// Package http provides the HTTP handler layer for the booking wizard API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/booking-wizard/internal/adapter/http/response"
	"github.com/flight-search/booking-wizard/internal/domain"
	"github.com/flight-search/booking-wizard/internal/infrastructure/logger"
	"github.com/flight-search/booking-wizard/internal/infrastructure/timeutil"
	"github.com/flight-search/booking-wizard/internal/usecase"
)

// DefaultTripsPath is where a wizard opened without its input is redirected.
const DefaultTripsPath = "/trips"

// BookingWizardHandler handles HTTP requests for the booking wizard endpoints.
type BookingWizardHandler struct {
	useCase   usecase.BookingWizardUseCase
	tripsPath string
	clock     timeutil.Clock
}

// HandlerOption configures a BookingWizardHandler.
type HandlerOption func(*BookingWizardHandler)

// WithClock sets the clock passenger dates are validated against.
func WithClock(clock timeutil.Clock) HandlerOption {
	return func(h *BookingWizardHandler) {
		if clock != nil {
			h.clock = clock
		}
	}
}

// NewBookingWizardHandler creates a new BookingWizardHandler with the given use case.
// An empty tripsPath falls back to DefaultTripsPath.
func NewBookingWizardHandler(uc usecase.BookingWizardUseCase, tripsPath string, opts ...HandlerOption) *BookingWizardHandler {
	if tripsPath == "" {
		tripsPath = DefaultTripsPath
	}
	h := &BookingWizardHandler{
		useCase:   uc,
		tripsPath: tripsPath,
		clock:     timeutil.NewRealClock(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Start handles POST /api/v1/bookings/wizard
//
// @Summary Open a booking wizard
// @Description Opens a wizard session for the selected flight offer. Without an offer, trip and search parameters the client is redirected to the trip list.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body SwaggerStartWizardRequest true "Selected offer and search parameters"
// @Success 201 {object} WizardViewDTO
// @Success 303 {object} response.Navigation "Missing input, redirect to trip list"
// @Failure 400 {object} response.ErrorDetail "Malformed body"
// @Router /api/v1/bookings/wizard [post]
func (h *BookingWizardHandler) Start(c echo.Context) error {
	var req StartWizardRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	view, err := h.useCase.Start(c.Request().Context(), ToStartInput(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Created(c, ToWizardViewDTO(view))
}

// Get handles GET /api/v1/bookings/wizard/:id
//
// @Summary Get a booking wizard
// @Tags bookings
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} WizardViewDTO
// @Failure 404 {object} response.ErrorDetail "Unknown or expired session"
// @Router /api/v1/bookings/wizard/{id} [get]
func (h *BookingWizardHandler) Get(c echo.Context) error {
	view, err := h.useCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToWizardViewDTO(view))
}

// UpdatePassenger handles PUT /api/v1/bookings/wizard/:id/passengers/:index
//
// @Summary Update a passenger form
// @Description Applies a partial update to one passenger. The traveler type cannot be changed.
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param index path int true "Passenger index, starting at 0"
// @Param request body UpdatePassengerRequest true "Fields to update"
// @Success 200 {object} WizardViewDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Unknown or expired session"
// @Failure 409 {object} response.ErrorDetail "Submission running or booking confirmed"
// @Router /api/v1/bookings/wizard/{id}/passengers/{index} [put]
func (h *BookingWizardHandler) UpdatePassenger(c echo.Context) error {
	index, err := parsePassengerIndex(c.Param("index"))
	if err != nil {
		return response.ValidationError(c, map[string]string{"index": err.Error()})
	}

	var req UpdatePassengerRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(h.clock.Now()); err != nil {
		return h.handleValidationError(c, err)
	}

	view, err := h.useCase.UpdatePassenger(c.Request().Context(), c.Param("id"), index, ToPassengerPatch(&req))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToWizardViewDTO(view))
}

// Next handles POST /api/v1/bookings/wizard/:id/next
//
// @Summary Advance to the next step
// @Description Moves to the next passenger or to the payment step. Does nothing while the current passenger is incomplete.
// @Tags bookings
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} WizardViewDTO
// @Failure 404 {object} response.ErrorDetail "Unknown or expired session"
// @Router /api/v1/bookings/wizard/{id}/next [post]
func (h *BookingWizardHandler) Next(c echo.Context) error {
	view, err := h.useCase.Advance(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToWizardViewDTO(view))
}

// Back handles POST /api/v1/bookings/wizard/:id/back
//
// @Summary Go back one step
// @Tags bookings
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} WizardViewDTO
// @Failure 404 {object} response.ErrorDetail "Unknown or expired session"
// @Router /api/v1/bookings/wizard/{id}/back [post]
func (h *BookingWizardHandler) Back(c echo.Context) error {
	view, err := h.useCase.Retreat(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToWizardViewDTO(view))
}

// Card handles POST /api/v1/bookings/wizard/:id/card
//
// @Summary Report a card input change
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body CardStateRequest true "Card input state"
// @Success 200 {object} WizardViewDTO
// @Failure 400 {object} response.ErrorDetail "Malformed body"
// @Failure 404 {object} response.ErrorDetail "Unknown or expired session"
// @Failure 409 {object} response.ErrorDetail "Submission running or booking confirmed"
// @Router /api/v1/bookings/wizard/{id}/card [post]
func (h *BookingWizardHandler) Card(c echo.Context) error {
	var req CardStateRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	view, err := h.useCase.ReportCard(c.Request().Context(), c.Param("id"), ToCardState(&req))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToWizardViewDTO(view))
}

// Submit handles POST /api/v1/bookings/wizard/:id/submit
//
// @Summary Pay and book
// @Description Creates a payment intent, confirms the card payment and books the flight. The caller's Cookie and Authorization headers are forwarded to the booking call. Failures return the wizard view with the surfaced message.
// @Tags bookings
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} WizardViewDTO "Booking confirmed"
// @Failure 402 {object} WizardViewDTO "Payment failed"
// @Failure 404 {object} response.ErrorDetail "Unknown or expired session"
// @Failure 409 {object} response.ErrorDetail "Submission already running"
// @Failure 422 {object} WizardViewDTO "Local validation failed, nothing was sent"
// @Failure 429 {object} response.ErrorDetail "Rate limited"
// @Failure 502 {object} WizardViewDTO "Travel backend failed"
// @Router /api/v1/bookings/wizard/{id}/submit [post]
func (h *BookingWizardHandler) Submit(c echo.Context) error {
	r := c.Request()
	creds := ToCredentials(r.Header.Get("Cookie"), r.Header.Get(echo.HeaderAuthorization))

	view, err := h.useCase.Submit(r.Context(), c.Param("id"), creds)
	if err != nil {
		var serr *domain.SubmissionError
		if errors.As(err, &serr) {
			return h.handleSubmissionError(c, view, serr)
		}
		return h.handleError(c, err)
	}
	return response.OK(c, ToWizardViewDTO(view))
}

// Acknowledge handles POST /api/v1/bookings/wizard/:id/acknowledge
//
// @Summary Acknowledge the confirmation
// @Description Closes the wizard and redirects to the booking detail page.
// @Tags bookings
// @Produce json
// @Param id path string true "Session ID"
// @Success 303 {object} response.Navigation
// @Failure 404 {object} response.ErrorDetail "Unknown or expired session"
// @Failure 409 {object} response.ErrorDetail "Booking not confirmed"
// @Router /api/v1/bookings/wizard/{id}/acknowledge [post]
func (h *BookingWizardHandler) Acknowledge(c echo.Context) error {
	target, err := h.useCase.Acknowledge(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.SeeOther(c, target)
}

// Cancel handles DELETE /api/v1/bookings/wizard/:id
//
// @Summary Cancel the wizard
// @Tags bookings
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Navigation "redirect is \"back\""
// @Failure 404 {object} response.ErrorDetail "Unknown or expired session"
// @Failure 409 {object} response.ErrorDetail "Submission running"
// @Router /api/v1/bookings/wizard/{id} [delete]
func (h *BookingWizardHandler) Cancel(c echo.Context) error {
	target, err := h.useCase.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.Navigate(c, target)
}

// Receipt handles GET /api/v1/bookings/wizard/:id/receipt
//
// @Summary Download the booking receipt
// @Tags bookings
// @Produce application/pdf
// @Param id path string true "Session ID"
// @Success 200 {file} file
// @Failure 404 {object} response.ErrorDetail "Unknown or expired session"
// @Failure 409 {object} response.ErrorDetail "Booking not confirmed"
// @Router /api/v1/bookings/wizard/{id}/receipt [get]
func (h *BookingWizardHandler) Receipt(c echo.Context) error {
	id := c.Param("id")
	doc, contentType, err := h.useCase.Receipt(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.Attachment(c, contentType, "booking-receipt-"+id+".pdf", doc)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *BookingWizardHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleSubmissionError answers a failed submission with the wizard view
// carrying the surfaced message.
func (h *BookingWizardHandler) handleSubmissionError(c echo.Context, view *usecase.View, serr *domain.SubmissionError) error {
	status := submissionStatus(serr.Kind)
	if view == nil {
		return response.JSON(c, status, &response.ErrorDetail{
			Code:    response.CodeSubmissionFailed,
			Message: serr.Message,
		})
	}
	return response.JSON(c, status, ToWizardViewDTO(view))
}

func submissionStatus(kind domain.FailureKind) int {
	switch kind {
	case domain.FailureValidation:
		return http.StatusUnprocessableEntity
	case domain.FailurePayment:
		return http.StatusPaymentRequired
	default:
		return http.StatusBadGateway
	}
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *BookingWizardHandler) handleError(c echo.Context, err error) error {
	// Opening the wizard without its input returns to the trip list
	if errors.Is(err, domain.ErrMissingWizardInput) {
		return response.SeeOther(c, h.tripsPath)
	}

	if errors.Is(err, domain.ErrSessionNotFound) {
		return response.NotFound(c, response.MsgSessionNotFound)
	}

	if errors.Is(err, domain.ErrSubmissionInProgress) ||
		errors.Is(err, domain.ErrInvalidTransition) ||
		errors.Is(err, domain.ErrNotConfirmed) {
		return response.Conflict(c, err.Error())
	}

	if errors.Is(err, domain.ErrPassengerIndex) {
		return response.ValidationError(c, map[string]string{"index": err.Error()})
	}

	if errors.Is(err, domain.ErrInvalidPassenger) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	logger.Ctx(c.Request().Context()).Error().Err(err).
		Str("path", c.Path()).
		Msg("Unhandled booking wizard error")
	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *BookingWizardHandler) Health(c echo.Context) error {
	return response.Health(c)
}
