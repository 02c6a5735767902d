package domain

import "strings"

// TravelerType tags a passenger as adult or child.
type TravelerType string

const (
	TravelerAdult TravelerType = "ADT"
	TravelerChild TravelerType = "CHD"
)

// Label returns the display label used in step titles.
func (t TravelerType) Label() string {
	if t == TravelerAdult {
		return "Adult"
	}
	return "Child"
}

// Gender of a passenger as accepted by the backend.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// IsValid reports whether g is one of the accepted values.
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// SearchParameters carries the passenger counts of the search that produced
// the selected offer.
type SearchParameters struct {
	// TripID is the trip the booking belongs to, used when the start
	// request carries no top-level trip id
	TripID int64 `json:"tripId,omitempty"`

	Origin        string `json:"origin,omitempty"`
	Destination   string `json:"destination,omitempty"`
	DepartureDate string `json:"departureDate,omitempty"`
	TravelClass   string `json:"travelClass,omitempty"`

	Adults   int `json:"adults"`
	Children int `json:"children"`

	// Infants are not given their own passenger form
	Infants int `json:"infants"`
}

// TicketedPassengers returns the number of passengers that need a form.
func (p *SearchParameters) TicketedPassengers() int {
	return max(p.Adults, 0) + max(p.Children, 0)
}

// PassengerRecord holds the details of one ticketed passenger.
type PassengerRecord struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Gender      Gender `json:"gender"`
	Nationality string `json:"nationality"`
	Email       string `json:"email"`

	// DateOfBirth is a calendar date in YYYY-MM-DD format
	DateOfBirth string `json:"dateOfBirth"`

	TravelerType TravelerType `json:"travelerType"`
}

// NewPassengers builds one empty record per adult and child.
// The first params.Adults records are ADT, the rest CHD.
func NewPassengers(params SearchParameters) []PassengerRecord {
	adults := max(params.Adults, 0)
	passengers := make([]PassengerRecord, params.TicketedPassengers())
	for i := range passengers {
		passengers[i].Gender = GenderMale
		if i < adults {
			passengers[i].TravelerType = TravelerAdult
		} else {
			passengers[i].TravelerType = TravelerChild
		}
	}
	return passengers
}

// IsComplete reports whether every required field is filled in.
func (p *PassengerRecord) IsComplete() bool {
	for _, v := range []string{p.FirstName, p.LastName, p.Email, p.PhoneNumber, p.Nationality, p.DateOfBirth} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// FullName returns "First Last".
func (p *PassengerRecord) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// ForBooking returns a copy formatted the way the booking endpoint expects it.
func (p PassengerRecord) ForBooking() PassengerRecord {
	p.DateOfBirth = SlashDate(p.DateOfBirth)
	return p
}

// SlashDate rewrites a hyphen-separated date as a slash-separated one
// ("1990-04-12" -> "1990/04/12").
func SlashDate(date string) string {
	return strings.ReplaceAll(date, "-", "/")
}

// PassengerPatch is a partial update of a passenger record.
// Nil fields are left unchanged. The traveler type is not patchable.
type PassengerPatch struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Gender      *Gender `json:"gender,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
	Email       *string `json:"email,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
}

// Apply copies the set fields of the patch onto p.
func (pp PassengerPatch) Apply(p *PassengerRecord) {
	if pp.FirstName != nil {
		p.FirstName = *pp.FirstName
	}
	if pp.LastName != nil {
		p.LastName = *pp.LastName
	}
	if pp.PhoneNumber != nil {
		p.PhoneNumber = *pp.PhoneNumber
	}
	if pp.Gender != nil {
		p.Gender = *pp.Gender
	}
	if pp.Nationality != nil {
		p.Nationality = *pp.Nationality
	}
	if pp.Email != nil {
		p.Email = *pp.Email
	}
	if pp.DateOfBirth != nil {
		p.DateOfBirth = *pp.DateOfBirth
	}
}
