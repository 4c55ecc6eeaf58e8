package expenses

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountPlaces is the number of fraction digits of a normalized amount.
const AmountPlaces = 2

// maxAmountExponent bounds the decimal exponent of a parsed amount, in both
// directions. Formatting an amount costs time proportional to its exponent.
const maxAmountExponent = 30

// ParseAmount parses a decimal amount, in plain ("12.5") or exponent ("1e3")
// notation, ignoring surrounding blanks.
// It returns ErrInvalidAmount for empty or non-numeric input, and for
// exponents beyond ±30 such as "1e999999999".
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty amount", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if exp := d.Exponent(); exp > maxAmountExponent || exp < -maxAmountExponent {
		return decimal.Zero, fmt.Errorf("%w: %q is out of range", ErrInvalidAmount, raw)
	}
	return d, nil
}

// FormatAmount formats d with exactly AmountPlaces fraction digits,
// rounding half away from zero.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(AmountPlaces)
}

// NormalizeAmount parses raw and formats it with two fraction digits.
//
// Input that does not parse is treated as zero, so "abc" gives "0.00".
// Use ParseAmount first to reject such input instead.
func NormalizeAmount(raw string) string {
	d, err := ParseAmount(raw)
	if err != nil {
		d = decimal.Zero
	}
	return FormatAmount(d)
}
