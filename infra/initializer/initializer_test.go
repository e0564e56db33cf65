package initializer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/amirasaad/fxcli/pkg/config"
	"github.com/amirasaad/fxcli/pkg/money"
	"github.com/amirasaad/fxcli/pkg/rates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(dir string) *config.App {
	return &config.App{
		Env: "test",
		Log: config.Log{
			Level:      4,
			Format:     "text",
			TimeFormat: time.DateTime,
			Prefix:     "[fxcli]",
			Output:     filepath.Join(dir, "logs", "fxcli.log"),
		},
		Files: config.Files{
			Dir:     dir,
			Presets: "preset_values.json",
			History: "conversion_history.json",
			Help:    "help_text.json",
		},
	}
}

func TestInitializeDependencies_FirstRun(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)

	deps, err := InitializeDependencies(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = deps.Closer.Close() })

	assert.NotEmpty(t, deps.SessionID)
	assert.Equal(t, rates.Default(), deps.Rates)
	assert.FileExists(t, cfg.Files.PresetsPath())
	assert.FileExists(t, cfg.Files.HelpPath())
	assert.NoFileExists(t, cfg.Files.HistoryPath())
	assert.FileExists(t, cfg.Log.Output)
	require.NotNil(t, deps.HistoryStore)
	require.NotNil(t, deps.HelpStore)
}

func TestInitializeDependencies_KeepsExistingPresets(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)

	table := rates.Default()
	table[money.USD][money.EUR] = 0.95
	first, err := InitializeDependencies(cfg)
	require.NoError(t, err)
	require.NoError(t, first.Closer.Close())

	raw, err := os.ReadFile(cfg.Files.PresetsPath())
	require.NoError(t, err)
	raw = bytes.Replace(raw, []byte("0.92"), []byte("0.95"), 1)
	require.NoError(t, os.WriteFile(cfg.Files.PresetsPath(), raw, 0o644))

	deps, err := InitializeDependencies(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = deps.Closer.Close() })
	assert.Equal(t, table, deps.Rates)
}

func TestInitializeDependencies_CorruptPresetsAreFatal(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	require.NoError(t, os.WriteFile(cfg.Files.PresetsPath(), []byte("{oops"), 0o644))

	deps, err := InitializeDependencies(cfg)
	assert.Nil(t, deps)
	assert.ErrorIs(t, err, rates.ErrStorageCorrupt)

	raw, err := os.ReadFile(cfg.Files.PresetsPath())
	require.NoError(t, err)
	assert.Equal(t, "{oops", string(raw))
}

func TestInitializeDependencies_MalformedHelpIsKept(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	require.NoError(t, os.WriteFile(cfg.Files.HelpPath(), []byte("not json"), 0o644))

	deps, err := InitializeDependencies(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = deps.Closer.Close() })

	raw, err := os.ReadFile(cfg.Files.HelpPath())
	require.NoError(t, err)
	assert.Equal(t, "not json", string(raw))
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name   string
		format string
	}{
		{name: "text", format: "text"},
		{name: "json", format: "json"},
		{name: "unknown falls back to text", format: "xml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := setupLogger(config.Log{
				Level:      4,
				Format:     tt.format,
				TimeFormat: time.DateTime,
				Prefix:     "[fxcli]",
			}, &buf)

			logger.Info("hidden message")
			logger.Warn("visible message", "from", "USD")

			out := buf.String()
			assert.NotContains(t, out, "hidden message")
			assert.Contains(t, out, "visible message")
			assert.Contains(t, out, "USD")
			if tt.format == "json" {
				assert.True(t, strings.HasPrefix(out, "{"), out)
			}
		})
	}
}

func TestOpenLogOutput(t *testing.T) {
	w, c, err := openLogOutput("stderr")
	require.NoError(t, err)
	assert.Equal(t, os.Stderr, w)
	assert.Nil(t, c)

	w, c, err = openLogOutput("stdout")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, w)
	assert.Nil(t, c)

	path := filepath.Join(t.TempDir(), "nested", "out.log")
	w, c, err = openLogOutput(path)
	require.NoError(t, err)
	require.NotNil(t, c)
	_, err = w.Write([]byte("line\n"))
	require.NoError(t, err)
	require.NoError(t, c.Close())
	assert.FileExists(t, path)
}
