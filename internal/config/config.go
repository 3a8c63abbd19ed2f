// Package config loads fleetcarbon settings from the environment.
//
// Values are resolved via a priority chain:
//
//	OS Environment (Highest) -> Dotenv File -> Struct defaults (Lowest)
//
// CLI flags override the loaded values.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the process configuration.
type Config struct {
	LogLevel  string `envconfig:"FLEETCARBON_LOG_LEVEL" default:"info" validate:"oneof=trace debug info warn error fatal panic disabled"`
	LogFormat string `envconfig:"FLEETCARBON_LOG_FORMAT" default:"console" validate:"oneof=console json"`

	// Output is the default report format.
	Output string `envconfig:"FLEETCARBON_OUTPUT" default:"json" validate:"oneof=json yaml table"`

	// DefaultGWP is the GWP preset used when a scenario names none.
	DefaultGWP string `envconfig:"FLEETCARBON_DEFAULT_GWP" default:"AR5" validate:"oneof=AR4 AR5 AR6"`

	// StrictInputs rejects negative quantities, distances and factors in scenarios.
	StrictInputs bool `envconfig:"FLEETCARBON_STRICT_INPUTS" default:"false"`
}

// ConfigErrorType categorizes configuration failures.
type ConfigErrorType string

// Configuration error categories.
const (
	ErrParsing    ConfigErrorType = "PARSING"
	ErrValidation ConfigErrorType = "VALIDATION"
)

// ConfigError is returned by Load.
type ConfigError struct {
	Type    ConfigErrorType
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Load reads an optional .env file, processes the environment, normalizes
// and validates the result.
func Load() (*Config, error) {
	// Missing .env is fine; existing environment variables are not overridden.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, &ConfigError{
			Type:    ErrParsing,
			Message: "failed to process environment configuration",
			Err:     err,
		}
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize trims the values and folds their case to the canonical
// spelling: lower case for log settings and output, upper case for the GWP
// preset.
func (c *Config) Normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	c.DefaultGWP = strings.ToUpper(strings.TrimSpace(c.DefaultGWP))
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return &ConfigError{
			Type:    ErrValidation,
			Message: "configuration validation failed",
			Err:     err,
		}
	}
	return nil
}
