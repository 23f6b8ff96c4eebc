package utils

import (
	"testing"
	"time"
)

func TestParseAPITimeZulu(t *testing.T) {
	got, err := ParseAPITime("2025-01-01T10:00:00Z")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	want := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseAPITimeOffsetNormalizedToUTC(t *testing.T) {
	got, err := ParseAPITime("2025-01-01T12:00:00+02:00")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	want := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got.Location() != time.UTC {
		t.Fatalf("expected UTC location, got %v", got.Location())
	}
}

func TestParseAPITimeNaiveTreatedAsUTC(t *testing.T) {
	got, err := ParseAPITime("2025-01-01T10:00:00")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	want := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFormatAPITimeHasZuluSuffix(t *testing.T) {
	out := FormatAPITime(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC))
	if out != "2025-01-01T10:00:00Z" {
		t.Fatalf("got %q", out)
	}
}

func TestAPITimeRoundTripKeepsInstant(t *testing.T) {
	orig := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)
	parsed, err := ParseAPITime(FormatAPITime(orig))
	if err != nil {
		t.Fatalf("round trip error: %v", err)
	}
	if !parsed.Equal(orig) {
		t.Fatalf("round trip changed instant: %v -> %v", orig, parsed)
	}
}
