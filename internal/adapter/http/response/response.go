// Package response provides standardized HTTP response builders for the booking wizard API.
// It centralizes response formatting to ensure consistency across all endpoints.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail contains structured error information.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains field-specific error details (for validation errors)
	Details map[string]string `json:"details,omitempty"`
}

// Navigation is the body of a navigation response.
type Navigation struct {
	// Redirect is the route the client should navigate to
	Redirect string `json:"redirect"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest   = "invalid_request"
	CodeValidationError  = "validation_error"
	CodeNotFound         = "not_found"
	CodeConflict         = "conflict"
	CodeRateLimited      = "rate_limited"
	CodeSubmissionFailed = "submission_failed"
	CodeInternalError    = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgSessionNotFound    = "Booking session not found or expired"
	MsgRateLimited        = "Too many requests, please try again later"
	MsgInternalError      = "An unexpected error occurred"
)

// JSON writes a JSON response with the given status code and data.
func JSON(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, data)
}

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// Created writes a 201 Created response with the given data.
func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

// NoContent writes a 204 No Content response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Navigate writes a 200 OK navigation response. Used for targets that are
// not routes, such as "back".
func Navigate(c echo.Context, target string) error {
	return c.JSON(http.StatusOK, &Navigation{Redirect: target})
}

// SeeOther writes a 303 See Other navigation response with a Location header.
func SeeOther(c echo.Context, target string) error {
	c.Response().Header().Set(echo.HeaderLocation, target)
	return c.JSON(http.StatusSeeOther, &Navigation{Redirect: target})
}

// Attachment writes a binary document as a download.
func Attachment(c echo.Context, contentType, filename string, body []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, contentType, body)
}
