// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendBolt     = "bolt"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Log formats.
const (
	FormatJSON   = "json"
	FormatPretty = "pretty"
)

// Config is the full runtime configuration.
type Config struct {
	Store      StoreConfig
	Log        LogConfig `envPrefix:"LOG_"`
	BcryptCost int       `env:"BLOGSPHERE_BCRYPT_COST" envDefault:"10"`
}

// StoreConfig selects and locates the key-value backend.
type StoreConfig struct {
	Backend     string `env:"BLOGSPHERE_STORE" envDefault:"bolt"`
	BoltPath    string `env:"BLOGSPHERE_BOLT_PATH" envDefault:"blogsphere.db"`
	SQLitePath  string `env:"BLOGSPHERE_SQLITE_PATH" envDefault:"blogsphere.sqlite"`
	DatabaseURL string `env:"DATABASE_URL"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"warn"`
	Format string `env:"FORMAT" envDefault:"json"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	switch c.Store.Backend {
	case BackendMemory, BackendBolt, BackendSQLite:
	case BackendPostgres:
		if strings.TrimSpace(c.Store.DatabaseURL) == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres store"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown store %q (want memory, bolt, sqlite or postgres)", c.Store.Backend))
	}

	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("BLOGSPHERE_BCRYPT_COST %d out of range [%d, %d]", c.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost))
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	if c.Log.Format != FormatJSON && c.Log.Format != FormatPretty {
		errs = append(errs, fmt.Errorf("LOG_FORMAT %q (want json or pretty)", c.Log.Format))
	}

	return errors.Join(errs...)
}
