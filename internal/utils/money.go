package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Monetary amounts travel through the system as integer cents so that sums
// and per-ticket multiplications never drift. The wire format stays a plain
// JSON number with two-decimal semantics.

// ParseCents parses a decimal string as produced by a DECIMAL(10,2) column,
// e.g. "50.00" -> 5000. At most two fraction digits are honored.
func ParseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	cents := w * 100
	if frac != "" {
		if len(frac) > 2 {
			frac = frac[:2]
		}
		for len(frac) < 2 {
			frac += "0"
		}
		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		cents += f
	}
	if neg {
		cents = -cents
	}
	return cents, nil
}

// FormatCents renders cents as a decimal string suitable for a DECIMAL column,
// e.g. 5000 -> "50.00".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// CentsToNumber converts cents to the float64 carried in JSON responses.
func CentsToNumber(cents int64) float64 {
	return float64(cents) / 100
}

// NumberToCents converts an incoming JSON number to cents, rounding to the
// nearest cent.
func NumberToCents(v float64) int64 {
	return int64(math.Round(v * 100))
}
