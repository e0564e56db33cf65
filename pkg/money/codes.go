package money

import (
	"fmt"
	"slices"
	"strings"
)

// Code represents a currency code (e.g., "USD", "EUR").
type Code string

// Supported currency codes. The set is closed: nothing outside it is ever
// accepted at the input boundary.
const (
	USD Code = "USD" // US Dollar
	BAM Code = "BAM" // Bosnia and Herzegovina Convertible Mark
	EUR Code = "EUR" // Euro
	CHF Code = "CHF" // Swiss Franc
	AUD Code = "AUD" // Australian Dollar
)

// supported keeps the display order used by menus and prediction tables.
var supported = []Code{USD, BAM, EUR, CHF, AUD}

// Supported returns the supported currency codes in display order.
func Supported() []Code {
	return slices.Clone(supported)
}

// IsValid reports whether c is one of the supported codes.
func (c Code) IsValid() bool {
	return slices.Contains(supported, c)
}

// String returns the string representation of the currency code.
func (c Code) String() string {
	return string(c)
}

// ParseCode normalizes user input (surrounding whitespace, lowercase) and
// returns the matching supported code.
func ParseCode(s string) (Code, error) {
	c := Code(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, s)
	}
	return c, nil
}

// Join renders codes separated by sep, e.g. "USD, BAM, EUR".
func Join(codes []Code, sep string) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = c.String()
	}
	return strings.Join(parts, sep)
}
