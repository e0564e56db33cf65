package prediction

import (
	"errors"
	"fmt"

	"github.com/amirasaad/fxcli/pkg/money"
	"github.com/amirasaad/fxcli/pkg/rates"
)

// ErrInvalidHours is returned when the horizon is not one of HourOptions.
var ErrInvalidHours = errors.New("hours must be 1, 3 or 6")

// HourOptions lists the accepted hourly horizons.
var HourOptions = []int{1, 3, 6}

// ValidHours reports whether n is an accepted hourly horizon.
func ValidHours(n int) bool {
	for _, h := range HourOptions {
		if n == h {
			return true
		}
	}
	return false
}

// Trend is the direction of a predicted move.
type Trend int

const (
	Down Trend = iota
	Up
)

// TrendOf returns Up for a positive variation and Down otherwise.
func TrendOf(variation float64) Trend {
	if variation > 0 {
		return Up
	}
	return Down
}

func (t Trend) String() string {
	if t == Up {
		return "↑"
	}
	return "↓"
}

// Hourly is one step of an hourly prediction.
type Hourly struct {
	Hour      string  // wall-clock label, "HH:00"
	Rate      float64 // rounded to four decimals
	Change    float64 // percent, rounded to two decimals
	Trend     Trend
	Variation float64 // unrounded relative move from the base rate
}

// Hourly predicts the from/to rate for the next hours steps.
//
// Each step draws noise within ±Volatility and adds Smoothing times the
// previous step's variation, a first-order autoregression that yields a
// smoother synthetic trend. Step i is labelled with the current hour plus i.
func (g *Generator) Hourly(table rates.Table, from, to money.Code, hours int) ([]Hourly, error) {
	if !ValidHours(hours) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHours, hours)
	}
	base, err := table.Rate(from, to)
	if err != nil {
		return nil, err
	}

	start := g.now().Hour()
	steps := make([]Hourly, 0, hours)
	prev := 0.0
	for i := range hours {
		variation := g.uniform(Volatility) + prev*Smoothing
		steps = append(steps, Hourly{
			Hour:      fmt.Sprintf("%02d:00", (start+i)%24),
			Rate:      money.Round(base*(1+variation), money.RatePlaces),
			Change:    money.Round(variation*100, 2),
			Trend:     TrendOf(variation),
			Variation: variation,
		})
		prev = variation
	}
	g.logger.Debug("Hourly predictions generated", "from", from, "to", to, "hours", hours)
	return steps, nil
}
