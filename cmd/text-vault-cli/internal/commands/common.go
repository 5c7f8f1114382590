// Package commands holds the cobra command handlers of text-vault-cli.
package commands

import (
	"fmt"

	"github.com/MGTheTrain/text-vault/internal/pkg/config"
	"github.com/MGTheTrain/text-vault/internal/pkg/logger"
)

func setupLogger(settings *config.CLISettings) (logger.Logger, error) {
	if settings == nil {
		settings = config.DefaultCLISettings()
	}

	if err := logger.InitLogger(&settings.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}
