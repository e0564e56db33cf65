package main

import (
	"fmt"

	"github.com/amirasaad/fxcli/infra/initializer"
	"github.com/amirasaad/fxcli/internal/cli"
	"github.com/amirasaad/fxcli/pkg/app"
	"github.com/amirasaad/fxcli/pkg/config"
	log "github.com/charmbracelet/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load(config.GetEnv("FXCLI_ENV_FILE", ".env"))
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Initialize all dependencies
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	application := app.New(deps, cfg)
	defer func() {
		if err := application.Close(); err != nil {
			deps.Logger.Warn("Failed to close log output", "error", err)
		}
	}()

	deps.Logger.Info("Starting currency converter",
		"env", cfg.Env,
		"session", deps.SessionID,
	)
	return cli.New(application).Run()
}
