package initializer

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/amirasaad/fxcli/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

func setupLogger(cfg config.Log, w io.Writer) *slog.Logger {
	// Define color styles for different log levels
	styles := log.DefaultStyles()
	infoTxtColor := lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnTxtColor := lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errorTxtColor := lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugTxtColor := lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}

	levelStyle := func(icon string, color lipgloss.AdaptiveColor) lipgloss.Style {
		return lipgloss.NewStyle().
			SetString(icon).
			Bold(true).
			Padding(0, 1).
			Foreground(color)
	}
	styles.Levels[log.ErrorLevel] = levelStyle("❌", errorTxtColor)
	styles.Levels[log.InfoLevel] = levelStyle("ℹ️", infoTxtColor)
	styles.Levels[log.WarnLevel] = levelStyle("⚠️", warnTxtColor)
	styles.Levels[log.DebugLevel] = levelStyle("🐛", debugTxtColor)

	keyColors := map[string]lipgloss.AdaptiveColor{
		"error":   errorTxtColor,
		"warn":    warnTxtColor,
		"from":    infoTxtColor,
		"to":      infoTxtColor,
		"session": debugTxtColor,
		"path":    debugTxtColor,
	}
	for key, color := range keyColors {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(color)
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}

	formattersMap := map[string]log.Formatter{
		"json": log.JSONFormatter,
		"text": log.TextFormatter,
	}
	formatter := log.TextFormatter
	if f, ok := formattersMap[cfg.Format]; ok {
		formatter = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    cfg.Level <= int(log.DebugLevel),
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(styles)

	slogger := slog.New(logger)
	slog.SetDefault(slogger)

	return slogger
}

// openLogOutput resolves the configured log destination.
// The returned closer is nil for the standard streams.
func openLogOutput(output string) (io.Writer, io.Closer, error) {
	switch output {
	case "", "stderr":
		return os.Stderr, nil, nil
	case "stdout":
		return os.Stdout, nil, nil
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, f, nil
}
