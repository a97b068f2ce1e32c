// Package config loads runtime settings from BASELEARN_* environment
// variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const envPrefix = "BASELEARN_"

var (
	// ErrParsingConfig is returned when environment variables cannot be
	// parsed into Config.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrInvalidConfig is returned by Validate.
	ErrInvalidConfig = errors.New("invalid config")
)

// Config holds everything the app reads from the environment.
type Config struct {
	// CoursePath points at a course YAML file. Empty means the built-in course.
	CoursePath string `env:"COURSE"`

	// Seed fixes the matching game shuffle. Zero draws a random seed.
	Seed uint64 `env:"SEED" envDefault:"0"`

	// ResetOnLeave discards a module's progress when the learner leaves it.
	ResetOnLeave bool `env:"RESET_ON_LEAVE" envDefault:"false"`

	// ShowGame opens matching games without waiting for a toggle.
	ShowGame bool `env:"SHOW_GAME" envDefault:"false"`

	IncorrectFlash time.Duration `env:"INCORRECT_FLASH" envDefault:"1s"`
	MatchPulse     time.Duration `env:"MATCH_PULSE" envDefault:"500ms"`

	LogFile   string `env:"LOG_FILE"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads the .env file in the working directory, if present, and
// parses the environment into a Config.
func Load() (Config, error) {
	// The .env file is optional.
	_ = godotenv.Load()
	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// Validate reports settings the app cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.IncorrectFlash <= 0 {
		errs = append(errs, fmt.Errorf("incorrect flash must be positive, got %s", c.IncorrectFlash))
	}
	if c.MatchPulse <= 0 {
		errs = append(errs, fmt.Errorf("match pulse must be positive, got %s", c.MatchPulse))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
