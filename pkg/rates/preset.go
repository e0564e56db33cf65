package rates

import "github.com/amirasaad/fxcli/pkg/money"

// Default returns the preset table written on first run.
func Default() Table {
	return Table{
		money.USD: {money.BAM: 1.85, money.EUR: 0.92, money.CHF: 0.89, money.AUD: 1.53},
		money.BAM: {money.USD: 0.54, money.EUR: 0.51, money.CHF: 0.48, money.AUD: 0.83},
		money.EUR: {money.USD: 1.09, money.BAM: 1.96, money.CHF: 0.97, money.AUD: 1.67},
		money.CHF: {money.USD: 1.12, money.BAM: 2.08, money.EUR: 1.03, money.AUD: 1.72},
		money.AUD: {money.USD: 0.65, money.BAM: 1.21, money.EUR: 0.60, money.CHF: 0.58},
	}
}
