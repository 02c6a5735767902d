package wizard

import (
	"fmt"
	"time"

	"github.com/flight-search/booking-wizard/internal/domain"
	"github.com/flight-search/booking-wizard/internal/infrastructure/timeutil"
)

// Summary holds the display values of the selected offer shown above the
// passenger forms and on the payment step.
type Summary struct {
	Airline   string        `json:"airline"`
	Price     string        `json:"price"`
	Departure SummaryPoint  `json:"departure"`
	Arrival   SummaryPoint  `json:"arrival"`
	Duration  string        `json:"duration"`
	StopLabel string        `json:"stopLabel"`
	Transit   string        `json:"transit,omitempty"`
	Charge    SummaryCharge `json:"charge"`
}

// SummaryPoint is the departure or arrival of the whole itinerary.
type SummaryPoint struct {
	AirportCode string `json:"airportCode"`
	AirportName string `json:"airportName,omitempty"`
	Time        string `json:"time"`
}

// SummaryCharge is the amount that will be charged, in minor units.
type SummaryCharge struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// BuildSummary derives the display values of offer. Times are shown in loc.
func BuildSummary(offer domain.FlightOffer, loc *time.Location) Summary {
	charge := domain.NewCharge(offer.TotalPrice, offer.Currency)
	s := Summary{
		Airline: offer.Airline.Name,
		Price:   fmt.Sprintf("%s %s", offer.TotalPrice, offer.Currency),
		Charge:  SummaryCharge{Amount: charge.Amount, Currency: charge.Currency},
	}

	if first, ok := offer.FirstLeg(); ok {
		s.Departure = summaryPoint(first.Departure, loc)
		s.Duration = domain.FormatISODuration(first.Duration)
	}
	if last, ok := offer.LastLeg(); ok {
		s.Arrival = summaryPoint(last.Arrival, loc)
	}

	if offer.IsDirectFlight {
		s.StopLabel = "Direct Flight"
		return s
	}

	s.StopLabel = offer.TransitInfo
	if td := offer.TransitDetails; td != nil {
		layover := domain.FormatISODuration(td.TransitDuration)
		s.Duration = layover
		s.Transit = fmt.Sprintf("Transit at %s • %s layover", td.TransitLocation, layover)
	}
	return s
}

func summaryPoint(p domain.FlightEndpoint, loc *time.Location) SummaryPoint {
	return SummaryPoint{
		AirportCode: p.AirportCode,
		AirportName: p.AirportName,
		Time:        timeutil.FormatClock(p.Time, loc),
	}
}
