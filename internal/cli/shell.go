// Package cli implements the interactive currency converter menu.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/amirasaad/fxcli/pkg/app"
)

// Shell runs the menu loop over a line-oriented input and an output stream.
type Shell struct {
	app    *app.App
	logger *slog.Logger

	in          *bufio.Reader
	out         *outputWriter
	interactive bool

	animation       bool
	animationForced bool
	frameDelay      time.Duration
	pause           time.Duration
	sleep           func(time.Duration)
	clear           func(io.Writer)

	header  *color.Color
	failure *color.Color
	success *color.Color
}

// Option configures a Shell.
type Option func(*Shell)

// WithInput sets the input stream. Defaults to stdin.
func WithInput(r io.Reader) Option {
	return func(s *Shell) { s.in = bufio.NewReader(r) }
}

// WithOutput sets the output stream. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Shell) { s.out = &outputWriter{w: w} }
}

// WithInteractive overrides terminal detection. Colors and screen clears
// only happen in interactive mode.
func WithInteractive(interactive bool) Option {
	return func(s *Shell) { s.interactive = interactive }
}

// WithAnimation overrides whether the startup animation plays, even off a
// terminal.
func WithAnimation(enabled bool) Option {
	return func(s *Shell) {
		s.animation = enabled
		s.animationForced = true
	}
}

// WithSleep replaces the delay used by the startup animation.
func WithSleep(sleep func(time.Duration)) Option {
	return func(s *Shell) {
		if sleep != nil {
			s.sleep = sleep
		}
	}
}

// WithClear replaces the screen clear command.
func WithClear(clear func(io.Writer)) Option {
	return func(s *Shell) {
		if clear != nil {
			s.clear = clear
		}
	}
}

// New creates a shell for a. By default it reads stdin, writes stdout and
// is interactive when both are terminals.
func New(a *app.App, opts ...Option) *Shell {
	s := &Shell{
		app:         a,
		logger:      slog.Default(),
		in:          bufio.NewReader(os.Stdin),
		out:         &outputWriter{w: os.Stdout},
		interactive: isTerminal(os.Stdin) && isTerminal(os.Stdout),
		sleep:       time.Sleep,
		clear:       clearScreen,
		header:      color.New(color.FgYellow, color.Bold),
		failure:     color.New(color.FgRed),
		success:     color.New(color.FgGreen),
	}
	if a.Deps != nil && a.Deps.Logger != nil {
		s.logger = a.Deps.Logger
	}
	if a.Config != nil {
		s.animation = a.Config.Startup.Animation
		s.frameDelay = a.Config.Startup.FrameDelay
		s.pause = a.Config.Startup.Pause
	}
	for _, opt := range opts {
		opt(s)
	}
	if !s.animationForced && !s.interactive {
		s.animation = false
	}
	if !s.interactive {
		for _, c := range []*color.Color{s.header, s.failure, s.success} {
			c.DisableColor()
		}
	}
	return s
}

// Run plays the startup animation and serves the menu until the user exits
// or input ends. Only output failures and input read errors are returned.
func (s *Shell) Run() error {
	if s.animation {
		s.loadingAnimation()
	}

	actions := map[string]func() error{
		"1": s.convert,
		"2": s.hourlyPredictions,
		"3": s.dailyPredictions,
		"4": s.popularConversions,
		"5": s.showHistory,
		"6": s.clearHistory,
		"7": s.showHelp,
	}

	for {
		s.clearScreen()
		s.printMenu()

		choice, err := s.prompt("\nEnter your choice (1-8): ")
		if err != nil {
			return s.finish(err)
		}

		if choice == "8" {
			s.success.Fprintln(s.out, "\nThank you for using Currency Converter!")
			return s.out.err
		}

		if action, ok := actions[choice]; ok {
			if err := action(); err != nil {
				return s.finish(err)
			}
		} else {
			s.failure.Fprintln(s.out, "\nInvalid choice! Please try again.")
		}

		if _, err := s.prompt("\nPress Enter to continue..."); err != nil {
			return s.finish(err)
		}
		if s.out.err != nil {
			return s.out.err
		}
	}
}

func (s *Shell) printMenu() {
	s.header.Fprintln(s.out, "=== Currency Converter Menu ===")
	fmt.Fprintln(s.out, "1. Convert Currency")
	fmt.Fprintln(s.out, "2. Hourly Predictions")
	fmt.Fprintln(s.out, "3. Daily Predictions")
	fmt.Fprintln(s.out, "4. Popular Conversions")
	fmt.Fprintln(s.out, "5. View Conversion History")
	fmt.Fprintln(s.out, "6. Clear History")
	fmt.Fprintln(s.out, "7. Help")
	fmt.Fprintln(s.out, "8. Exit")
}

// finish maps the error that stopped the loop to Run's result.
// End of input is a normal exit.
func (s *Shell) finish(err error) error {
	if errors.Is(err, io.EOF) {
		s.logger.Debug("Input closed, leaving menu")
		fmt.Fprintln(s.out)
		return s.out.err
	}
	return fmt.Errorf("failed to read input: %w", err)
}

// prompt writes label and reads one trimmed line.
// A final line without a newline is still returned; io.EOF only comes back
// when nothing was read.
func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) clearScreen() {
	if !s.interactive {
		return
	}
	s.clear(s.out.w)
}

func clearScreen(w io.Writer) {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/c", "cls")
	} else {
		cmd = exec.Command("clear")
	}
	cmd.Stdout = w
	_ = cmd.Run()
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// outputWriter keeps the first write error so the loop can stop on it.
type outputWriter struct {
	w   io.Writer
	err error
}

func (o *outputWriter) Write(p []byte) (int, error) {
	if o.err != nil {
		return 0, o.err
	}
	n, err := o.w.Write(p)
	if err != nil {
		o.err = err
	}
	return n, err
}
