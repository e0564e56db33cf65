package rates

import (
	"errors"
	"fmt"

	"github.com/amirasaad/fxcli/pkg/money"
)

var (
	// ErrUnknownPair indicates the table has no rate for the requested pair.
	ErrUnknownPair = errors.New("unknown currency pair")

	// ErrStorageCorrupt indicates persisted presets exist but are unusable.
	ErrStorageCorrupt = errors.New("rate presets are corrupt")
)

// UnknownPairError reports a lookup for a pair missing from the table.
type UnknownPairError struct {
	From money.Code
	To   money.Code
}

func (e *UnknownPairError) Error() string {
	return fmt.Sprintf("%s: %s/%s", ErrUnknownPair, e.From, e.To)
}

// Is lets errors.Is match ErrUnknownPair.
func (e *UnknownPairError) Is(target error) bool {
	return target == ErrUnknownPair
}

// CorruptError reports persisted presets that exist but cannot be used.
// Defaults are never substituted for them.
type CorruptError struct {
	Err error
}

func (e *CorruptError) Error() string {
	return ErrStorageCorrupt.Error() + ": " + e.Err.Error()
}

func (e *CorruptError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrStorageCorrupt.
func (e *CorruptError) Is(target error) bool {
	return target == ErrStorageCorrupt
}
