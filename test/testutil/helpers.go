// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/flight-search/booking-wizard/internal/domain"
)

// LoadTestJSON loads a JSON file from the testdata directory.
// The filename should be relative to the testdata directory.
func LoadTestJSON(t *testing.T, filename string) []byte {
	t.Helper()

	// Get the path to testdata relative to this file
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	testDataPath := filepath.Join(projectRoot, "test", "testdata", filename)

	data, err := os.ReadFile(testDataPath)
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// LoadOffer decodes a flight offer fixture from the testdata directory.
// The decoded offer keeps the fixture's raw payload.
func LoadOffer(t *testing.T, filename string) *domain.FlightOffer {
	t.Helper()

	var offer domain.FlightOffer
	if err := json.Unmarshal(LoadTestJSON(t, filename), &offer); err != nil {
		t.Fatalf("Failed to decode offer %s: %v", filename, err)
	}
	return &offer
}

// SearchParams returns search parameters with the given passenger counts.
func SearchParams(adults, children, infants int) *domain.SearchParameters {
	return &domain.SearchParameters{
		Origin:        "CGK",
		Destination:   "DPS",
		DepartureDate: "2025-12-15",
		Adults:        adults,
		Children:      children,
		Infants:       infants,
	}
}

// CompletePassenger returns a patch that fills every passenger field.
func CompletePassenger(firstName string) domain.PassengerPatch {
	return domain.PassengerPatch{
		FirstName:   Ptr(firstName),
		LastName:    Ptr("Santoso"),
		PhoneNumber: Ptr("+62 812 3456 7890"),
		Gender:      Ptr(domain.GenderFemale),
		Nationality: Ptr("ID"),
		Email:       Ptr(strings.ToLower(firstName) + "@example.com"),
		DateOfBirth: Ptr("1990-04-12"),
	}
}

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
