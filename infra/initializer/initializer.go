package initializer

import (
	"fmt"

	"github.com/google/uuid"

	infrastorage "github.com/amirasaad/fxcli/infra/storage"
	"github.com/amirasaad/fxcli/pkg/app"
	"github.com/amirasaad/fxcli/pkg/config"
	"github.com/amirasaad/fxcli/pkg/help"
	"github.com/amirasaad/fxcli/pkg/rates"
)

// InitializeDependencies initializes all the application dependencies.
// A corrupt rate table is fatal; missing files are created with defaults.
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	out, closer, err := openLogOutput(cfg.Log.Output)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil && closer != nil {
			_ = closer.Close()
		}
	}()

	sessionID := uuid.NewString()
	logger := setupLogger(cfg.Log, out).With("session", sessionID)
	deps = &app.Deps{
		Logger:    logger,
		SessionID: sessionID,
		Closer:    closer,
	}

	presets := infrastorage.NewJSONFile(cfg.Files.PresetsPath())
	deps.Rates, err = rates.Load(presets, logger)
	if err != nil {
		logger.Error("Failed to load preset rates", "path", presets.Path(), "error", err)
		return nil, fmt.Errorf("failed to load preset rates: %w", err)
	}

	deps.HistoryStore = infrastorage.NewJSONFile(cfg.Files.HistoryPath())

	helpStore := infrastorage.NewJSONFile(cfg.Files.HelpPath())
	if err := help.NewRepository(helpStore, logger).Ensure(); err != nil {
		// The help screen reports missing content on its own.
		logger.Warn("Failed to create help content", "path", helpStore.Path(), "error", err)
	}
	deps.HelpStore = helpStore

	logger.Info("Dependencies initialized",
		"presets", presets.Path(),
		"history", cfg.Files.HistoryPath(),
		"help", helpStore.Path())
	return deps, nil
}
