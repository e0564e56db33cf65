package prediction

import (
	"github.com/amirasaad/fxcli/pkg/money"
	"github.com/amirasaad/fxcli/pkg/rates"
)

// Daily perturbs every ordered pair of distinct currencies independently by
// a uniform variation within ±DailyVariation, rounded to four decimals.
// Pairs are drawn in display order so a fixed source gives fixed output.
func (g *Generator) Daily(table rates.Table) (rates.Table, error) {
	out := make(rates.Table, len(money.Supported()))
	for _, base := range money.Supported() {
		row := make(map[money.Code]float64, len(money.Supported())-1)
		for _, target := range money.Supported() {
			if base == target {
				continue
			}
			current, err := table.Rate(base, target)
			if err != nil {
				return nil, err
			}
			variation := g.uniform(DailyVariation)
			row[target] = money.Round(current*(1+variation), money.RatePlaces)
		}
		out[base] = row
	}
	g.logger.Debug("Daily predictions generated", "pairs", len(out)*(len(money.Supported())-1))
	return out, nil
}
