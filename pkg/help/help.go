// Package help stores and renders the user guide shown from the menu.
package help

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	fixtures "github.com/amirasaad/fxcli/internal/fixtures/help"
	"github.com/amirasaad/fxcli/pkg/storage"
)

// Conversion documents how conversions work.
type Conversion struct {
	Title   string   `json:"title"`
	Steps   []string `json:"steps"`
	Notes   []string `json:"notes"`
	Example string   `json:"example"`
}

// Predictions documents the prediction screens.
type Predictions struct {
	Title  string   `json:"title"`
	Daily  []string `json:"daily"`
	Hourly []string `json:"hourly"`
}

// Content is the help document.
type Content struct {
	Conversion  Conversion  `json:"conversion"`
	Predictions Predictions `json:"predictions"`
}

// Default returns the built-in help content.
func Default() (*Content, error) {
	var c Content
	if err := json.Unmarshal(fixtures.DefaultHelpJSON(), &c); err != nil {
		return nil, fmt.Errorf("failed to decode embedded help: %w", err)
	}
	return &c, nil
}

// Lines renders the content the way the help screen prints it.
func (c *Content) Lines() []string {
	lines := []string{
		"=== Currency Converter Help ===",
		"",
		c.Conversion.Title,
		"",
		"Steps:",
	}
	lines = append(lines, c.Conversion.Steps...)
	lines = append(lines, "", "Important Notes:")
	lines = append(lines, c.Conversion.Notes...)
	lines = append(lines, "", c.Conversion.Example, "", c.Predictions.Title, "", "Daily Predictions:")
	for _, info := range c.Predictions.Daily {
		lines = append(lines, "• "+info)
	}
	lines = append(lines, "", "Hourly Predictions:")
	for _, info := range c.Predictions.Hourly {
		lines = append(lines, "• "+info)
	}
	return lines
}

// Repository persists help content in a store.
type Repository struct {
	store  storage.Store
	logger *slog.Logger
}

// NewRepository creates a help repository over store.
func NewRepository(store storage.Store, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{store: store, logger: logger}
}

// Ensure writes the default content when the store is empty.
// Existing content is never replaced, even if it does not decode.
func (r *Repository) Ensure() error {
	var existing json.RawMessage
	err := r.store.Load(&existing)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrMalformed):
		r.logger.Warn("Help content present but unreadable, leaving it in place", "error", err)
		return nil
	case !errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("failed to check help content: %w", err)
	}

	content, err := Default()
	if err != nil {
		return err
	}
	if err := r.store.Save(content); err != nil {
		return fmt.Errorf("failed to write help content: %w", err)
	}
	r.logger.Debug("Help content created")
	return nil
}

// Load reads the stored help content.
func (r *Repository) Load() (*Content, error) {
	var c Content
	if err := r.store.Load(&c); err != nil {
		return nil, fmt.Errorf("failed to load help content: %w", err)
	}
	return &c, nil
}
