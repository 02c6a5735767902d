package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/booking-wizard/internal/domain"
)

func TestMustParseTime(t *testing.T) {
	tests := []struct {
		name    string
		dateStr string
		wantErr bool
	}{
		{
			name:    "valid RFC3339",
			dateStr: "2025-12-15T08:00:00Z",
			wantErr: false,
		},
		{
			name:    "valid RFC3339 with timezone",
			dateStr: "2025-12-15T08:00:00+07:00",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseTime(t, tt.dateStr)
			assert.False(t, result.IsZero())
		})
	}
}

func TestMustParseDate(t *testing.T) {
	tests := []struct {
		name      string
		dateStr   string
		wantYear  int
		wantMonth time.Month
		wantDay   int
	}{
		{
			name:      "valid date",
			dateStr:   "2025-12-15",
			wantYear:  2025,
			wantMonth: time.December,
			wantDay:   15,
		},
		{
			name:      "january date",
			dateStr:   "2025-01-01",
			wantYear:  2025,
			wantMonth: time.January,
			wantDay:   1,
		},
		{
			name:      "leap year date",
			dateStr:   "2024-02-29",
			wantYear:  2024,
			wantMonth: time.February,
			wantDay:   29,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseDate(t, tt.dateStr)
			assert.Equal(t, tt.wantYear, result.Year())
			assert.Equal(t, tt.wantMonth, result.Month())
			assert.Equal(t, tt.wantDay, result.Day())
		})
	}
}

func TestPtr(t *testing.T) {
	t.Run("int value", func(t *testing.T) {
		intVal := Ptr(42)
		require.NotNil(t, intVal)
		assert.Equal(t, 42, *intVal)
	})

	t.Run("string value", func(t *testing.T) {
		strVal := Ptr("hello")
		require.NotNil(t, strVal)
		assert.Equal(t, "hello", *strVal)
	})

	t.Run("float64 value", func(t *testing.T) {
		floatVal := Ptr(3.14)
		require.NotNil(t, floatVal)
		assert.Equal(t, 3.14, *floatVal)
	})

	t.Run("bool value", func(t *testing.T) {
		boolVal := Ptr(true)
		require.NotNil(t, boolVal)
		assert.Equal(t, true, *boolVal)
	})
}

func TestLoadOffer(t *testing.T) {
	t.Run("direct offer with string price", func(t *testing.T) {
		offer := LoadOffer(t, "offer_direct.json")
		assert.True(t, offer.IsDirectFlight)
		assert.Equal(t, "IDR", offer.Currency)
		assert.Equal(t, 1250000.0, offer.TotalPrice.Float64())
		require.Len(t, offer.Flights, 1)
	})

	t.Run("transit offer", func(t *testing.T) {
		offer := LoadOffer(t, "offer_transit.json")
		assert.False(t, offer.IsDirectFlight)
		require.NotNil(t, offer.TransitDetails)
		assert.Equal(t, "SUB", offer.TransitDetails.TransitLocation)
		assert.Len(t, offer.Flights, 2)
	})
}

func TestSearchParams(t *testing.T) {
	params := SearchParams(2, 1, 1)
	assert.Equal(t, 2, params.Adults)
	assert.Equal(t, 1, params.Children)
	assert.Equal(t, 1, params.Infants)
	assert.Equal(t, 3, params.TicketedPassengers())
}

func TestCompletePassenger(t *testing.T) {
	var p domain.PassengerRecord
	CompletePassenger("Dewi").Apply(&p)

	assert.True(t, p.IsComplete())
	assert.Equal(t, "dewi@example.com", p.Email)
}
