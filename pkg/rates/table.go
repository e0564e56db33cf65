// Package rates holds the static conversion-rate table: the preset
// defaults, lookups, and loading from persisted storage.
package rates

import (
	"fmt"
	"math"

	"github.com/amirasaad/fxcli/pkg/money"
)

// Table maps an ordered currency pair (from, to) to a positive rate.
// Rates are hand-authored and are neither reciprocal nor transitive.
type Table map[money.Code]map[money.Code]float64

// Pair is an ordered currency pair.
type Pair struct {
	From money.Code
	To   money.Code
}

func (p Pair) String() string {
	return p.From.String() + "/" + p.To.String()
}

// Rate returns the rate for converting from into to.
func (t Table) Rate(from, to money.Code) (float64, error) {
	if targets, ok := t[from]; ok {
		if rate, ok := targets[to]; ok {
			return rate, nil
		}
	}
	return 0, &UnknownPairError{From: from, To: to}
}

// Pairs returns every off-diagonal pair present in the table, in display order.
func (t Table) Pairs() []Pair {
	pairs := make([]Pair, 0, 20)
	for _, from := range money.Supported() {
		for _, to := range money.Supported() {
			if from == to {
				continue
			}
			if _, ok := t[from][to]; ok {
				pairs = append(pairs, Pair{From: from, To: to})
			}
		}
	}
	return pairs
}

// Validate checks that only supported codes appear, that every ordered pair of
// distinct currencies is present, and that every rate is positive and finite.
// Diagonal entries are allowed when positive.
func (t Table) Validate() error {
	for from, targets := range t {
		if !from.IsValid() {
			return fmt.Errorf("%w: %q", money.ErrUnsupportedCurrency, from)
		}
		for to, rate := range targets {
			if !to.IsValid() {
				return fmt.Errorf("%w: %q", money.ErrUnsupportedCurrency, to)
			}
			if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
				return fmt.Errorf("invalid rate %v for %s/%s", rate, from, to)
			}
		}
	}
	for _, from := range money.Supported() {
		for _, to := range money.Supported() {
			if from == to {
				continue
			}
			if _, err := t.Rate(from, to); err != nil {
				return fmt.Errorf("missing rate: %w", err)
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for from, targets := range t {
		row := make(map[money.Code]float64, len(targets))
		for to, rate := range targets {
			row[to] = rate
		}
		out[from] = row
	}
	return out
}
