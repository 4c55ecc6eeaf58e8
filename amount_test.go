package expenses

import (
	"errors"
	"testing"
)

func TestNormalizeAmount(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"12.5", "12.50"},
		{"10", "10.00"},
		{" 3.5 ", "3.50"},
		{"0.1", "0.10"},
		{"12.345", "12.35"},
		{"-2.345", "-2.35"},
		{"1e3", "1000.00"},
		{"abc", "0.00"},
		{"", "0.00"},
		{"12,50", "0.00"},
		{"NaN", "0.00"},
		{"1e30", "1000000000000000000000000000000.00"},
		{"1e999999999", "0.00"},
		{"1e-999999999", "0.00"},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			if got := NormalizeAmount(tc.in); got != tc.want {
				t.Errorf("NormalizeAmount(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount(" 42.1 ")
	if err != nil {
		t.Fatalf("ParseAmount() unexpected error: %v", err)
	}
	if got := FormatAmount(d); got != "42.10" {
		t.Errorf("FormatAmount() = %q, want %q", got, "42.10")
	}

	for _, in := range []string{"", "   ", "abc", "1.2.3", "twelve", "1e31", "1e999999999", "1e-31"} {
		if _, err := ParseAmount(in); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("ParseAmount(%q) error = %v, want ErrInvalidAmount", in, err)
		}
	}
}
