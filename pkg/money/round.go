// Package money holds the closed currency universe and the rounding rules
// used for displayed and predicted values.
//
// Rounding goes through shopspring/decimal so that values such as 1.00005
// round half away from zero on their decimal representation instead of on
// the nearest binary float.
package money

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

const (
	// RatePlaces is the number of decimals kept for rates.
	RatePlaces = 4
	// AmountPlaces is the number of decimals shown for amounts.
	AmountPlaces = 2
)

// Round rounds v to the given number of decimal places.
// NaN and infinities are returned unchanged.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// Format renders v with exactly the given number of decimal places.
func Format(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%.*f", places, v)
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}
