// Package domain contains the core entities and rules of the booking wizard.
// The flight offer is produced by the travel backend's search and is treated
// as immutable input; passengers and the booking confirmation are owned by
// the wizard.
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlightOffer is the offer selected on the search screen.
// The raw JSON payload is retained so the backend receives it unchanged.
type FlightOffer struct {
	// Airline is the marketing airline of the itinerary
	Airline Airline `json:"airline"`

	// Flights are the itinerary legs in travel order
	Flights []FlightLeg `json:"flights"`

	// IsDirectFlight is true when the itinerary has no transit
	IsDirectFlight bool `json:"isDirectFlight"`

	// TransitDetails is set for itineraries with a transit
	TransitDetails *TransitDetails `json:"transitDetails,omitempty"`

	// TransitInfo is a human-readable description of the transit (e.g., "1 stop")
	TransitInfo string `json:"transitInfo,omitempty"`

	// TotalPrice is the total price for all ticketed passengers
	TotalPrice Decimal `json:"totalPrice"`

	// Currency is the ISO 4217 currency code (e.g., "USD")
	Currency string `json:"currency"`

	raw json.RawMessage
}

// Airline identifies the airline of an offer.
type Airline struct {
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

// FlightLeg is a single segment of an itinerary.
type FlightLeg struct {
	Departure FlightEndpoint `json:"departure"`
	Arrival   FlightEndpoint `json:"arrival"`

	// Duration is an ISO-8601 duration (e.g., "PT2H30M")
	Duration string `json:"duration"`
}

// FlightEndpoint is the departure or arrival point of a leg.
type FlightEndpoint struct {
	AirportCode string `json:"airportCode"`
	AirportName string `json:"airportName,omitempty"`

	// Time is an ISO-8601 timestamp
	Time string `json:"time"`
}

// TransitDetails describes the layover of a non-direct itinerary.
type TransitDetails struct {
	TransitLocation string `json:"transitLocation"`

	// TransitDuration is an ISO-8601 duration
	TransitDuration string `json:"transitDuration"`
}

type plainFlightOffer FlightOffer

// UnmarshalJSON decodes the offer and keeps a copy of the original payload.
func (o *FlightOffer) UnmarshalJSON(data []byte) error {
	var p plainFlightOffer
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*o = FlightOffer(p)
	o.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON returns the original payload when the offer was decoded from JSON.
func (o FlightOffer) MarshalJSON() ([]byte, error) {
	if len(o.raw) > 0 {
		return o.raw, nil
	}
	return json.Marshal(plainFlightOffer(o))
}

// FirstLeg returns the first leg of the itinerary.
func (o *FlightOffer) FirstLeg() (FlightLeg, bool) {
	if len(o.Flights) == 0 {
		return FlightLeg{}, false
	}
	return o.Flights[0], true
}

// LastLeg returns the last leg of the itinerary.
func (o *FlightOffer) LastLeg() (FlightLeg, bool) {
	if len(o.Flights) == 0 {
		return FlightLeg{}, false
	}
	return o.Flights[len(o.Flights)-1], true
}

// Decimal is a price value that accepts both JSON numbers and numeric strings.
type Decimal float64

// UnmarshalJSON implements json.Unmarshaler.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*d = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid decimal %q: %w", string(data), err)
	}
	*d = Decimal(f)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

// Float64 returns the value as float64.
func (d Decimal) Float64() float64 {
	return float64(d)
}

// String formats the value with the minimum number of digits.
func (d Decimal) String() string {
	return strconv.FormatFloat(float64(d), 'f', -1, 64)
}
