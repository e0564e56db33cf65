package rates

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/fxcli/pkg/storage"
)

// Load reads the persisted table from store.
//
// When nothing is stored yet the defaults are persisted and returned.
// When something is stored but does not decode or fails Validate, a
// *CorruptError is returned; the caller must not fall back to defaults.
func Load(store storage.Store, logger *slog.Logger) (Table, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var table Table
	err := store.Load(&table)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		table = Default()
		if err := store.Save(table); err != nil {
			return nil, fmt.Errorf("failed to persist default rates: %w", err)
		}
		logger.Info("Rate presets not found, defaults written", "pairs", len(table.Pairs()))
		return table, nil
	case errors.Is(err, storage.ErrMalformed):
		return nil, &CorruptError{Err: err}
	case err != nil:
		return nil, fmt.Errorf("failed to load rate presets: %w", err)
	}

	if err := table.Validate(); err != nil {
		return nil, &CorruptError{Err: err}
	}
	logger.Debug("Rate presets loaded", "pairs", len(table.Pairs()))
	return table, nil
}
