package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "csvcli/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Convert ConvertConfig `yaml:"convert" envconfig:"CONVERT"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stderr file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required"`
}

// ConvertConfig contains settings for the external typeset converter
type ConvertConfig struct {
	LatexCommand string `yaml:"latex_command" envconfig:"LATEX_COMMAND" validate:"required"`
}

// configFileEnv names the environment variable pointing at an optional
// YAML configuration file.
const configFileEnv = "CSVCLI_CONFIG"

// Load loads configuration in three layers: built-in defaults, then an
// optional YAML file named by CSVCLI_CONFIG, then CSVCLI_* environment
// variables. Later layers override earlier ones.
func Load() (*Config, error) {
	cfg := Default()

	if configFile := os.Getenv(configFileEnv); configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process("CSVCLI", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the built-in configuration, also used by the CLIs
// when Load fails and they fall back to defaults.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "stderr",
			FilePath: "logs/csvcli.log",
		},
		Convert: ConvertConfig{
			LatexCommand: "csv2latex",
		},
	}
}

// loadFromFile merges configuration from a YAML file into cfg. Keys
// absent from the file keep their current values.
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}

	return nil
}

// validate validates the configuration using struct tags
func (c *Config) validate() error {
	if err := validator.New().Struct(c); err != nil {
		return apperrors.Wrap(apperrors.CodeConfiguration, "config validation failed", err)
	}
	return nil
}
