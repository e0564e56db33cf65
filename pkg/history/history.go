// Package history keeps the ordered log of past conversions.
package history

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/fxcli/pkg/storage"
)

// Log appends, reads and clears conversion records in a store.
// Insertion order is chronological order. It assumes a single writer.
type Log struct {
	store  storage.Store
	logger *slog.Logger
}

// New creates a history log over store.
func New(store storage.Store, logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{store: store, logger: logger}
}

// ReadAll returns every record in insertion order.
// Absent history is the normal initial state and yields an empty slice.
func (l *Log) ReadAll() ([]Record, error) {
	var records []Record
	err := l.store.Load(&records)
	if errors.Is(err, storage.ErrNotFound) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read conversion history: %w", err)
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// Append adds record at the end of the history.
// It rewrites the whole sequence; a malformed history is reported and left
// as is rather than overwritten.
func (l *Log) Append(record Record) error {
	records, err := l.ReadAll()
	if err != nil {
		return err
	}
	records = append(records, record)
	if err := l.store.Save(records); err != nil {
		return fmt.Errorf("failed to save conversion history: %w", err)
	}
	l.logger.Debug("Conversion recorded",
		"from", record.From,
		"to", record.To,
		"amount", record.Amount,
		"entries", len(records),
	)
	return nil
}

// Clear removes every record.
func (l *Log) Clear() error {
	if err := l.store.Save([]Record{}); err != nil {
		return fmt.Errorf("failed to clear conversion history: %w", err)
	}
	l.logger.Info("Conversion history cleared")
	return nil
}
