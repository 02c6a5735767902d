package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all booking wizard API routes.
// It creates a versioned API group and attaches the handler methods.
// submitMiddleware is applied to the submit endpoint only (e.g., rate limiting).
func RegisterRoutes(e *echo.Echo, h *BookingWizardHandler, submitMiddleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	wizard := api.Group("/bookings/wizard")
	wizard.POST("", h.Start)
	wizard.GET("/:id", h.Get)
	wizard.DELETE("/:id", h.Cancel)
	wizard.PUT("/:id/passengers/:index", h.UpdatePassenger)
	wizard.POST("/:id/next", h.Next)
	wizard.POST("/:id/back", h.Back)
	wizard.POST("/:id/card", h.Card)
	wizard.POST("/:id/submit", h.Submit, submitMiddleware...)
	wizard.POST("/:id/acknowledge", h.Acknowledge)
	wizard.GET("/:id/receipt", h.Receipt)
}
