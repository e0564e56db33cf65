package cli

import (
	"fmt"

	"github.com/amirasaad/fxcli/pkg/money"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const framesPerCurrency = 20

// loadingAnimation shows a spinner per supported currency. It is cosmetic
// and cannot be interrupted.
func (s *Shell) loadingAnimation() {
	s.header.Fprint(s.out, "\n=== Initializing Currency Converter ===\n\n")

	frame := 0
	for _, code := range money.Supported() {
		fmt.Fprintf(s.out, "Loading %s ", code)
		for range framesPerCurrency {
			fmt.Fprintf(s.out, "\r%s: [%s] Loading... ", code, spinnerFrames[frame%len(spinnerFrames)])
			frame++
			s.sleep(s.frameDelay)
		}
		fmt.Fprintf(s.out, "\r%s: ", code)
		s.success.Fprint(s.out, "[✓]")
		fmt.Fprintln(s.out, " Loaded successfully!   ")
	}

	fmt.Fprintln(s.out, "\nSystem initialization complete!")
	fmt.Fprint(s.out, "Starting currency converter...\n\n")
	s.sleep(s.pause)
	s.clearScreen()
	s.logger.Debug("Startup animation finished")
}
