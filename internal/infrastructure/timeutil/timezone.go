package timeutil

import (
	"fmt"
	"sync"
	"time"
)

// locationCache stores cached timezone locations for performance.
var locationCache sync.Map

// timestampLayouts are the layouts accepted for flight timestamps, most specific first.
// Backends commonly omit the offset for airport-local times.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// GetLocation returns a cached timezone location.
// It caches the result for subsequent calls with the same name.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// ParseTimestamp parses an ISO-8601 timestamp. Timestamps without an offset
// are interpreted in loc.
func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}

// FormatClock renders an ISO-8601 timestamp as HH:MM in loc.
// Unparseable values are returned unchanged.
func FormatClock(value string, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	t, err := ParseTimestamp(value, loc)
	if err != nil {
		return value
	}
	return t.In(loc).Format("15:04")
}
