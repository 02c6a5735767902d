// Package http provides swagger type definitions for API documentation.
// These types mirror domain types but are defined here to help swag generate proper documentation.
package http

// SwaggerFlightOffer represents the selected flight offer.
// @Description Flight offer as returned by the travel backend search. Unknown fields are kept and forwarded to the booking call.
type SwaggerFlightOffer struct {
	Airline SwaggerAirline `json:"airline"`

	// Flights are the itinerary legs in travel order
	Flights []SwaggerFlightLeg `json:"flights"`

	IsDirectFlight bool `json:"isDirectFlight" example:"true"`

	// TransitDetails is set for itineraries with a transit
	TransitDetails *SwaggerTransitDetails `json:"transitDetails,omitempty"`

	// TransitInfo describes the transit (e.g., "1 stop")
	TransitInfo string `json:"transitInfo,omitempty" example:""`

	// TotalPrice is the total for all ticketed passengers, as number or string
	TotalPrice float64 `json:"totalPrice" example:"1234.5"`

	Currency string `json:"currency" example:"USD"`
}

// SwaggerAirline identifies the airline of an offer.
// @Description Airline information
type SwaggerAirline struct {
	Name string `json:"name" example:"Garuda Indonesia"`
	Code string `json:"code,omitempty" example:"GA"`
}

// SwaggerFlightLeg is a single segment of an itinerary.
// @Description Itinerary leg
type SwaggerFlightLeg struct {
	Departure SwaggerFlightEndpoint `json:"departure"`
	Arrival   SwaggerFlightEndpoint `json:"arrival"`

	// Duration is an ISO-8601 duration
	Duration string `json:"duration" example:"PT2H30M"`
}

// SwaggerFlightEndpoint is the departure or arrival point of a leg.
// @Description Departure or arrival point
type SwaggerFlightEndpoint struct {
	AirportCode string `json:"airportCode" example:"CGK"`
	AirportName string `json:"airportName,omitempty" example:"Soekarno-Hatta International"`

	// Time is an ISO-8601 timestamp
	Time string `json:"time" example:"2025-12-15T08:00:00+07:00"`
}

// SwaggerTransitDetails describes the layover of a non-direct itinerary.
// @Description Transit information
type SwaggerTransitDetails struct {
	TransitLocation string `json:"transitLocation" example:"SUB"`
	TransitDuration string `json:"transitDuration" example:"PT1H15M"`
}

// SwaggerSearchParameters carries the passenger counts of the search.
// @Description Search parameters of the selected offer
type SwaggerSearchParameters struct {
	Adults   int `json:"adults" example:"2"`
	Children int `json:"children" example:"1"`

	// Infants do not get their own passenger form
	Infants int `json:"infants" example:"0"`
}

// SwaggerStartWizardRequest documents the start request body.
// @Description Navigation state the wizard is opened with
type SwaggerStartWizardRequest struct {
	Flight       SwaggerFlightOffer      `json:"flight"`
	TripID       int64                   `json:"tripId" example:"42"`
	SearchParams SwaggerSearchParameters `json:"searchParams"`
}

// SwaggerErrorDetail contains structured error information.
// @Description Error details
type SwaggerErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code" example:"validation_error"`

	// Message is a human-readable error message
	Message string `json:"message" example:"Request validation failed"`

	// Details contains field-specific error details
	Details map[string]string `json:"details,omitempty"`
}
