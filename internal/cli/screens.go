package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/amirasaad/fxcli/pkg/history"
	"github.com/amirasaad/fxcli/pkg/money"
	"github.com/amirasaad/fxcli/pkg/prediction"
	"github.com/amirasaad/fxcli/pkg/service/exchange"
)

// readPair asks for a source and a target currency.
// ok is false when either code is not supported; the message is already shown.
func (s *Shell) readPair() (from, to money.Code, ok bool, err error) {
	fmt.Fprintf(s.out, "\nAvailable currencies: %s\n", money.Join(money.Supported(), ", "))
	rawFrom, err := s.prompt("Convert from (currency code): ")
	if err != nil {
		return "", "", false, err
	}
	rawTo, err := s.prompt("Convert to (currency code): ")
	if err != nil {
		return "", "", false, err
	}

	from, fromErr := money.ParseCode(rawFrom)
	to, toErr := money.ParseCode(rawTo)
	if fromErr != nil || toErr != nil {
		s.logger.Debug("Rejected currency input", "from", rawFrom, "to", rawTo)
		s.failure.Fprintln(s.out, "Invalid currency code!")
		return "", "", false, nil
	}
	return from, to, true, nil
}

func (s *Shell) convert() error {
	from, to, ok, err := s.readPair()
	if err != nil || !ok {
		return err
	}

	raw, err := s.prompt("Enter amount: ")
	if err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		s.failure.Fprintln(s.out, "Invalid amount!")
		return nil
	}

	record, err := s.app.Exchange.Convert(from, to, amount)
	switch {
	case errors.Is(err, exchange.ErrInvalidAmount):
		s.failure.Fprintln(s.out, "Invalid amount!")
		return nil
	case err != nil:
		s.failure.Fprintf(s.out, "Conversion failed: %v\n", err)
		return nil
	}

	fmt.Fprint(s.out, "\n")
	s.success.Fprintf(s.out, "Result: %s %s = %s %s\n",
		formatAmount(record.Amount), record.From,
		money.Format(record.Result, money.AmountPlaces), record.To)
	return nil
}

func (s *Shell) hourlyPredictions() error {
	from, to, ok, err := s.readPair()
	if err != nil || !ok {
		return err
	}

	var hours int
	for {
		raw, err := s.prompt("\nEnter number of hours to predict (1, 3, or 6): ")
		if err != nil {
			return err
		}
		n, convErr := strconv.Atoi(raw)
		if convErr != nil {
			s.failure.Fprintln(s.out, "Please enter a valid number.")
			continue
		}
		if !prediction.ValidHours(n) {
			s.failure.Fprintln(s.out, "Please enter either 1, 3, or 6 hours.")
			continue
		}
		hours = n
		break
	}

	current, err := s.app.Exchange.Rate(from, to)
	if err != nil {
		s.failure.Fprintf(s.out, "Prediction failed: %v\n", err)
		return nil
	}
	steps, err := s.app.Predictor.Hourly(s.app.Exchange.Table(), from, to, hours)
	if err != nil {
		s.failure.Fprintf(s.out, "Prediction failed: %v\n", err)
		return nil
	}

	s.header.Fprintf(s.out, "\n=== %s/%s Predictions ===\n", from, to)
	fmt.Fprintf(s.out, "Current rate: %s\n", money.Format(current, money.RatePlaces))
	fmt.Fprintf(s.out, "\nPredicted rates for next %d hour(s):\n", hours)
	fmt.Fprintln(s.out, "\nTime    Rate      Change   Trend")
	fmt.Fprintln(s.out, strings.Repeat("-", 35))
	for _, step := range steps {
		fmt.Fprintf(s.out, "%s   %s   %6.2f%%   ",
			step.Hour, money.Format(step.Rate, money.RatePlaces), step.Change)
		s.trendColor(step.Trend).Fprintln(s.out, step.Trend)
	}
	return nil
}

func (s *Shell) trendColor(t prediction.Trend) *color.Color {
	if t == prediction.Up {
		return s.success
	}
	return s.failure
}

func (s *Shell) dailyPredictions() error {
	table, err := s.app.Predictor.Daily(s.app.Exchange.Table())
	if err != nil {
		s.failure.Fprintf(s.out, "Prediction failed: %v\n", err)
		return nil
	}

	s.header.Fprintln(s.out, "\n=== Currency Predictions ===")
	for _, base := range money.Supported() {
		fmt.Fprintf(s.out, "\n%s predictions:\n", base)
		for _, target := range money.Supported() {
			if base == target {
				continue
			}
			rate, err := table.Rate(base, target)
			if err != nil {
				continue
			}
			fmt.Fprintf(s.out, "%s to %s: %s\n", base, target, money.Format(rate, money.RatePlaces))
		}
	}
	return nil
}

func (s *Shell) popularConversions() error {
	report, err := s.app.Predictor.Popular(s.app.Exchange.Table())
	if err != nil {
		s.failure.Fprintf(s.out, "Report failed: %v\n", err)
		return nil
	}

	s.header.Fprintln(s.out, "\n=== Most Used Conversions Today ===")
	fmt.Fprintf(s.out, "Total conversions today: %d\n\n", report.Total)
	fmt.Fprintln(s.out, "Currency Pair     Current Rate    Times Used")
	fmt.Fprintln(s.out, strings.Repeat("-", 45))
	for _, c := range report.Conversions {
		fmt.Fprintf(s.out, "%s/%-8s     %s          %d\n",
			c.Pair.From, c.Pair.To, money.Format(c.Rate, money.RatePlaces), c.Count)
	}
	return nil
}

func (s *Shell) showHistory() error {
	records, err := s.app.History.ReadAll()
	if err != nil {
		s.failure.Fprintf(s.out, "\nCould not read history: %v\n", err)
		return nil
	}
	if len(records) == 0 {
		fmt.Fprintln(s.out, "\nNo conversion history found.")
		return nil
	}

	s.header.Fprintln(s.out, "\n=== Conversion History ===")
	for _, r := range records {
		fmt.Fprintln(s.out, historyLine(r))
	}
	return nil
}

func historyLine(r history.Record) string {
	return fmt.Sprintf("%s: %s %s = %s %s",
		r.Date, formatAmount(r.Amount), r.From,
		money.Format(r.Result, money.AmountPlaces), r.To)
}

func (s *Shell) clearHistory() error {
	if err := s.app.History.Clear(); err != nil {
		s.failure.Fprintf(s.out, "\nCould not clear history: %v\n", err)
		return nil
	}
	s.success.Fprintln(s.out, "\nHistory cleared successfully!")
	return nil
}

func (s *Shell) showHelp() error {
	content, err := s.app.Help.Load()
	if err != nil {
		s.logger.Warn("Help content unavailable", "error", err)
		fmt.Fprintln(s.out, "\nHelp information not available.")
		return nil
	}

	lines := content.Lines()
	fmt.Fprintln(s.out)
	s.header.Fprintln(s.out, lines[0])
	for _, line := range lines[1:] {
		fmt.Fprintln(s.out, line)
	}
	return nil
}

// formatAmount prints an amount with the shortest exact digits and at least
// one decimal, e.g. 100.0 or 12.345.
func formatAmount(v float64) string {
	out := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}
