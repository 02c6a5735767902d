package domain

import (
	"bytes"
	"encoding/json"
)

// PaymentIntentRequest is sent to the backend to open a payment.
type PaymentIntentRequest struct {
	// Amount is in the currency's minor unit
	Amount int64 `json:"amount"`

	// Currency is a lower-case ISO 4217 code
	Currency string `json:"currency"`
}

// PaymentIntent is the backend's answer to a PaymentIntentRequest.
type PaymentIntent struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentStatus is the state of a confirmed payment intent.
type PaymentStatus string

// PaymentStatusSucceeded is the only status that allows booking.
const PaymentStatusSucceeded PaymentStatus = "succeeded"

// Card references the card entered in the payment widget.
type Card struct {
	// PaymentMethodID is the token produced by the hosted card element
	PaymentMethodID string
}

// PaymentConfirmation is the payment widget's result for a confirmed card payment.
type PaymentConfirmation struct {
	IntentID string
	Status   PaymentStatus
}

// Succeeded reports whether the payment went through.
func (c *PaymentConfirmation) Succeeded() bool {
	return c != nil && c.Status == PaymentStatusSucceeded
}

// Credentials are the caller's credentials forwarded to the backend.
type Credentials struct {
	Cookie        string
	Authorization string
}

// BookingRequest is the body of the book-flight call.
type BookingRequest struct {
	TripID          int64             `json:"tripId"`
	FlightOfferInfo FlightOffer       `json:"flightOfferInfo"`
	PassengerInfo   []PassengerRecord `json:"passengerInfo"`
}

// NewBookingRequest builds the request with dates in the backend's format.
func NewBookingRequest(tripID int64, offer FlightOffer, passengers []PassengerRecord) BookingRequest {
	info := make([]PassengerRecord, len(passengers))
	for i, p := range passengers {
		info[i] = p.ForBooking()
	}
	return BookingRequest{
		TripID:          tripID,
		FlightOfferInfo: offer,
		PassengerInfo:   info,
	}
}

// BookingConfirmation is returned by the backend for a created booking.
type BookingConfirmation struct {
	// PNR is the airline reservation code
	PNR string `json:"pnr"`

	TicketNo  string    `json:"ticketNo"`
	BookingID BookingID `json:"bookingId"`
}

// BookingID identifies a booking. The backend may send it as number or string.
type BookingID string

// UnmarshalJSON implements json.Unmarshaler.
func (b *BookingID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*b = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*b = BookingID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*b = BookingID(n.String())
	return nil
}
