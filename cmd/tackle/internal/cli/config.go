package cli

import (
	"fmt"

	"github.com/skyezerfox/tackle/pkg/config"
	"github.com/skyezerfox/tackle/pkg/logger"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
)

// GetConfigPath returns the config file path that would be used by LoadConfig.
func GetConfigPath() (string, error) {
	if ConfigPath != "" {
		return ConfigPath, nil
	}
	return config.DefaultConfigPath()
}

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager() (config.Manager, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return config.NewManager(path), nil
}

// LoadConfig loads the configuration, falling back to defaults when no file exists.
func LoadConfig(manager config.Manager) (config.Config, error) {
	cfg, err := manager.GetConfigWithFallback()
	if err != nil {
		return config.Config{}, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	return cfg, nil
}

// NewLogger returns a logger honoring the --quiet and --verbose flags.
func NewLogger() logger.Logger {
	switch {
	case Verbose:
		return logger.NewDefaultLogger(logger.LevelDebug)
	case Quiet:
		return logger.NewDefaultLogger(logger.LevelQuiet)
	default:
		return logger.NewDefaultLogger(logger.LevelInfo)
	}
}
