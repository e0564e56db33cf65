package money

import "errors"

// Common money package errors
var (
	// ErrUnsupportedCurrency is returned when a code is outside the supported set.
	ErrUnsupportedCurrency = errors.New("unsupported currency code")
)
