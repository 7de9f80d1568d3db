package shared

import (
	"fmt"

	"go.uber.org/zap"

	"speech-summarizer/internal/app/logging"
	"speech-summarizer/internal/config"
)

// Global flags, bound by the root command
var (
	Verbose    bool
	ConfigFile string
)

// Setup loads the configuration and builds the logger for a command.
// Verbose forces a development logger.
func Setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(ConfigFile)
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(Verbose || !cfg.Server.IsProduction())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return cfg, logger, nil
}
