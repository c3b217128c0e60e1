package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseGermanDecimal converts a decimal string written with German
// separators ("." for thousands, "," for the decimal point) into an exact
// decimal value, e.g. "1.234,56" -> 1234.56. The transform is purely
// textual; no locale configuration is consulted, so it behaves the same on
// every platform.
func ParseGermanDecimal(s string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), ".", "")
	normalized = strings.Replace(normalized, ",", ".", 1)
	if !strings.ContainsAny(normalized, "0123456789") {
		return decimal.Zero, fmt.Errorf("no digits in number %q", s)
	}
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing number %q: %w", s, err)
	}
	return d, nil
}

// ParseGermanNumber is ParseGermanDecimal narrowed to float64 for callers
// that store plain floats.
func ParseGermanNumber(s string) (float64, error) {
	d, err := ParseGermanDecimal(s)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}
