package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// isoDurationRegex matches time-only ISO-8601 durations such as "PT2H30M".
var isoDurationRegex = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// FormatISODuration renders an ISO-8601 duration as a compact string,
// e.g. "PT2H30M" -> "2h 30m". Zero components are omitted, so an
// all-zero duration renders as "".
// Strings that do not match are returned unchanged.
func FormatISODuration(iso string) string {
	m := isoDurationRegex.FindStringSubmatch(iso)
	if m == nil {
		return iso
	}

	parts := make([]string, 0, 3)
	for i, unit := range []string{"h", "m", "s"} {
		n, _ := strconv.Atoi(m[i+1])
		if n > 0 {
			parts = append(parts, strconv.Itoa(n)+unit)
		}
	}
	return strings.Join(parts, " ")
}
