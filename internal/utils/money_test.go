package utils

import "testing"

func TestParseCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"50.00", 5000},
		{"50", 5000},
		{"50.5", 5050},
		{"0.01", 1},
		{"0", 0},
		{"-12.34", -1234},
		{" 199.99 ", 19999},
	}
	for _, tc := range cases {
		got, err := ParseCents(tc.in)
		if err != nil {
			t.Fatalf("ParseCents(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseCents(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseCentsInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "12.x"} {
		if _, err := ParseCents(in); err == nil {
			t.Fatalf("ParseCents(%q) expected error", in)
		}
	}
}

func TestFormatCents(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{5000, "50.00"},
		{5050, "50.50"},
		{1, "0.01"},
		{0, "0.00"},
		{-1234, "-12.34"},
	}
	for _, tc := range cases {
		if got := FormatCents(tc.in); got != tc.want {
			t.Fatalf("FormatCents(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCentsRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 5000, 123456789} {
		parsed, err := ParseCents(FormatCents(cents))
		if err != nil {
			t.Fatalf("round trip %d error: %v", cents, err)
		}
		if parsed != cents {
			t.Fatalf("round trip %d -> %d", cents, parsed)
		}
	}
}

func TestNumberToCents(t *testing.T) {
	if got := NumberToCents(50.0); got != 5000 {
		t.Fatalf("NumberToCents(50.0) = %d", got)
	}
	// 19.99 is not exactly representable; rounding must still land on 1999.
	if got := NumberToCents(19.99); got != 1999 {
		t.Fatalf("NumberToCents(19.99) = %d", got)
	}
	if got := CentsToNumber(1999); got != 19.99 {
		t.Fatalf("CentsToNumber(1999) = %v", got)
	}
}
