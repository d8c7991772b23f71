// Package config loads the demo command's settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into Config
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrInvalidConfig is returned when a parsed value is out of range
	ErrInvalidConfig = errors.New("invalid config")
)

// Config holds the demo settings.
type Config struct {
	Instances int           `env:"TABLEFSM_INSTANCES" envDefault:"4"`
	Tick      time.Duration `env:"TABLEFSM_TICK" envDefault:"10ms"`
	Cycles    int           `env:"TABLEFSM_CYCLES" envDefault:"3"`
	ExportDir string        `env:"TABLEFSM_EXPORT_DIR"` // empty disables export
	LogLevel  string        `env:"TABLEFSM_LOG_LEVEL" envDefault:"info"`
	LogFormat string        `env:"TABLEFSM_LOG_FORMAT" envDefault:"text"`
}

// Load reads the given dotenv files, or ./.env when none are given, and then
// parses the environment into a Config. Variables already set in the
// environment win over dotenv values. A missing default .env is not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env files: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Instances <= 0 {
		return fmt.Errorf("%w: TABLEFSM_INSTANCES must be positive, got %d", ErrInvalidConfig, c.Instances)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("%w: TABLEFSM_TICK must be positive, got %s", ErrInvalidConfig, c.Tick)
	}
	if c.Cycles < 0 {
		return fmt.Errorf("%w: TABLEFSM_CYCLES cannot be negative, got %d", ErrInvalidConfig, c.Cycles)
	}
	return nil
}
