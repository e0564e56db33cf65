package exchange

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/amirasaad/fxcli/pkg/history"
	"github.com/amirasaad/fxcli/pkg/money"
	"github.com/amirasaad/fxcli/pkg/rates"
)

// ---- Errors ----

var (
	ErrInvalidAmount = errors.New("invalid amount")
)

// ---- Service ----

// Service converts amounts with a preset rate table and records every
// successful conversion in the history log.
type Service struct {
	table   rates.Table
	history *history.Log
	now     func() time.Time
	logger  *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the clock used to timestamp records.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a new exchange Service.
func New(table rates.Table, log *history.Log, opts ...Option) *Service {
	s := &Service{
		table:   table,
		history: log,
		now:     time.Now,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rate returns the preset rate for converting from into to.
func (s *Service) Rate(from, to money.Code) (float64, error) {
	return s.table.Rate(from, to)
}

// Table returns the rate table the service converts with.
func (s *Service) Table() rates.Table {
	return s.table
}

// Convert multiplies amount by the from/to rate and appends the result to
// the history. The conversion fails if the record cannot be persisted.
func (s *Service) Convert(from, to money.Code, amount float64) (*history.Record, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	rate, err := s.table.Rate(from, to)
	if err != nil {
		s.logger.Warn("Conversion rejected", "from", from, "to", to, "error", err)
		return nil, err
	}

	record := history.NewRecord(s.now(), from, to, amount, amount*rate)
	if err := s.history.Append(record); err != nil {
		s.logger.Error("Failed to record conversion",
			"from", from,
			"to", to,
			"error", err)
		return nil, fmt.Errorf("conversion not recorded: %w", err)
	}

	s.logger.Info("Conversion completed",
		"from", from,
		"to", to,
		"amount", amount,
		"rate", rate,
		"result", record.Result)
	return &record, nil
}

// ---- Helper Functions ----

func validateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	if amount < 0 {
		return fmt.Errorf("%w: must not be negative", ErrInvalidAmount)
	}
	return nil
}
