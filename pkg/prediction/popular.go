package prediction

import (
	"github.com/amirasaad/fxcli/pkg/money"
	"github.com/amirasaad/fxcli/pkg/rates"
)

const (
	minDailyConversions = 500
	maxDailyConversions = 1000
	minPairConversions  = 50
)

// PopularPairs are the pairs shown in the popular conversions report.
var PopularPairs = []rates.Pair{
	{From: money.USD, To: money.BAM},
	{From: money.EUR, To: money.BAM},
	{From: money.USD, To: money.EUR},
	{From: money.CHF, To: money.EUR},
	{From: money.AUD, To: money.USD},
}

// PopularConversion is one row of the popular conversions report.
type PopularConversion struct {
	Pair  rates.Pair
	Rate  float64
	Count int
}

// Popular is a synthetic "most used conversions today" report.
type Popular struct {
	Total       int
	Conversions []PopularConversion
}

// Popular draws a daily total in [500, 1000] and splits it across
// PopularPairs. Every pair but the last takes a count of at least
// min(50, room) where room leaves one conversion for each later pair; the
// last pair takes the remainder. Counts sum to Total and are all positive.
func (g *Generator) Popular(table rates.Table) (Popular, error) {
	report := Popular{
		Total:       g.intBetween(minDailyConversions, maxDailyConversions),
		Conversions: make([]PopularConversion, 0, len(PopularPairs)),
	}

	remaining := report.Total
	for i, pair := range PopularPairs {
		rate, err := table.Rate(pair.From, pair.To)
		if err != nil {
			return Popular{}, err
		}

		var count int
		if i == len(PopularPairs)-1 {
			count = remaining
		} else {
			room := remaining - (len(PopularPairs) - i - 1)
			count = g.intBetween(min(minPairConversions, room), room)
			remaining -= count
		}
		report.Conversions = append(report.Conversions, PopularConversion{
			Pair:  pair,
			Rate:  rate,
			Count: count,
		})
	}
	return report, nil
}
