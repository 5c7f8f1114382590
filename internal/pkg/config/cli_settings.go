package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables read by LoadCLISettings
const (
	EnvConfigPath = "TEXT_VAULT_CONFIG"
	EnvLogLevel   = "TEXT_VAULT_LOG_LEVEL"
	EnvLogType    = "TEXT_VAULT_LOG_TYPE"
	EnvLogFile    = "TEXT_VAULT_LOG_FILE"
	EnvKeyDir     = "TEXT_VAULT_KEY_DIR"
)

// Rotation defaults applied when a file logger is selected without explicit values
const (
	DefaultLogMaxSize    = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAge     = 28
)

// CLISettings holds the configuration of the text-vault CLI
type CLISettings struct {
	Logger LoggerSettings `yaml:"logger"`
	// KeyDir is the default output directory for generated keys
	KeyDir string `yaml:"key_dir"`
}

// DefaultCLISettings returns settings that log at info level to the console
// and write generated keys into the working directory.
func DefaultCLISettings() *CLISettings {
	return &CLISettings{
		Logger: LoggerSettings{
			LogLevel: LogLevelInfo,
			LogType:  LogTypeConsole,
		},
		KeyDir: ".",
	}
}

// Validate checks that all fields in CLISettings are valid
func (s *CLISettings) Validate() error {
	if err := s.Logger.Validate(); err != nil {
		return err
	}
	if err := validator.New().Var(s.KeyDir, "required"); err != nil {
		return fmt.Errorf("validation failed for CLISettings key_dir: %w", err)
	}
	return nil
}

// LoadCLISettings builds the CLI settings from defaults, the YAML file at path
// (skipped when path is empty) and environment overrides, in that order.
func LoadCLISettings(path string) (*CLISettings, error) {
	settings := DefaultCLISettings()

	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		var parsed CLISettings
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		merge(settings, &parsed)
	}

	applyEnvOverrides(settings)

	if settings.Logger.LogType == LogTypeFile {
		applyRotationDefaults(&settings.Logger)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// ConfigPathFromEnv returns the config file path from TEXT_VAULT_CONFIG, if the file exists.
func ConfigPathFromEnv() (string, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		return "", nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("config file %s from %s does not exist", path, EnvConfigPath)
		}
		return "", fmt.Errorf("failed to stat config file %s: %w", path, err)
	}
	return path, nil
}

func merge(dst, src *CLISettings) {
	if src.Logger.LogLevel != "" {
		dst.Logger.LogLevel = src.Logger.LogLevel
	}
	if src.Logger.LogType != "" {
		dst.Logger.LogType = src.Logger.LogType
	}
	if src.Logger.FilePath != "" {
		dst.Logger.FilePath = src.Logger.FilePath
	}
	if src.Logger.MaxSize != 0 {
		dst.Logger.MaxSize = src.Logger.MaxSize
	}
	if src.Logger.MaxBackups != 0 {
		dst.Logger.MaxBackups = src.Logger.MaxBackups
	}
	if src.Logger.MaxAge != 0 {
		dst.Logger.MaxAge = src.Logger.MaxAge
	}
	if src.KeyDir != "" {
		dst.KeyDir = src.KeyDir
	}
}

func applyEnvOverrides(s *CLISettings) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.Logger.LogLevel = v
	}
	if v := os.Getenv(EnvLogType); v != "" {
		s.Logger.LogType = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		s.Logger.FilePath = v
	}
	if v := os.Getenv(EnvKeyDir); v != "" {
		s.KeyDir = v
	}
}

func applyRotationDefaults(s *LoggerSettings) {
	if s.MaxSize == 0 {
		s.MaxSize = DefaultLogMaxSize
	}
	if s.MaxBackups == 0 {
		s.MaxBackups = DefaultLogMaxBackups
	}
	if s.MaxAge == 0 {
		s.MaxAge = DefaultLogMaxAge
	}
}
