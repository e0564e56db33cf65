package help

import (
	_ "embed"
)

//go:embed help_text.json
var helpJSON []byte

// DefaultHelpJSON returns the embedded help document written on first run.
func DefaultHelpJSON() []byte {
	return append([]byte(nil), helpJSON...)
}
