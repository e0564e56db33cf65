package config

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix, e.g. FXCLI_LOG_LEVEL.
const Prefix = "FXCLI"

var validate = validator.New()

func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	logger.Debug("Loading environment variables")

	// If no specific paths provided, try default .env
	if len(envFilePath) == 0 {
		if err := godotenv.Load(); err != nil {
			logger.Debug("No .env file found in current directory")
		}
		return loadFromEnv()
	}

	// Try each provided path until we find a valid one
	for _, path := range envFilePath {
		foundPath, err := FindEnvTest(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}

		logger.Debug("Loading environment from file", "path", foundPath)
		if err := godotenv.Load(foundPath); err != nil {
			logger.Warn("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		return loadFromEnv()
	}

	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found in current directory")
	}
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	slog.Default().Debug("App config loaded",
		"env", cfg.Env,
		"log_level", cfg.Log.Level,
		"log_output", cfg.Log.Output,
		"files_dir", cfg.Files.Dir,
		"animation", cfg.Startup.Animation,
	)
	return &cfg, nil
}
