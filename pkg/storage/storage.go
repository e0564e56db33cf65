// Package storage defines the persistence boundary shared by the rate
// presets, the conversion history and the help content.
package storage

import "errors"

var (
	// ErrNotFound is returned by Load when nothing has been saved yet.
	ErrNotFound = errors.New("stored document not found")

	// ErrMalformed is returned by Load when stored data exists but cannot be
	// decoded into the requested value.
	ErrMalformed = errors.New("stored document is malformed")
)

// Store loads and saves a single JSON document.
type Store interface {
	// Load decodes the stored document into v.
	// Returns ErrNotFound when absent and an error wrapping ErrMalformed
	// when the stored bytes do not decode into v.
	Load(v any) error

	// Save replaces the stored document with v.
	Save(v any) error
}
