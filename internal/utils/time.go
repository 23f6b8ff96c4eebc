package utils

import (
	"strings"
	"time"
)

const naiveLayout = "2006-01-02T15:04:05"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseAPITime accepts ISO-8601 timestamps from request bodies. A trailing Z
// or numeric offset is normalized to UTC; a naive timestamp is treated as
// already UTC.
func ParseAPITime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(naiveLayout, s)
}

// FormatAPITime renders a stored timestamp for responses: ISO-8601 in UTC
// with the trailing Z marker.
func FormatAPITime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
