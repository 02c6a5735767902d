package domain

import "time"

// Receipt is the printable summary of a confirmed booking.
type Receipt struct {
	PNR       string
	TicketNo  string
	BookingID BookingID
	TripID    int64

	Airline string
	Origin  string
	// Destination is the arrival airport of the last leg
	Destination string

	DepartureTime string
	ArrivalTime   string
	Duration      string
	StopLabel     string
	Price         string

	Passengers []ReceiptPassenger
	IssuedAt   time.Time
}

// ReceiptPassenger is one line of the passenger list on a receipt.
type ReceiptPassenger struct {
	Name         string
	TravelerType TravelerType
}
