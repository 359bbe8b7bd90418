// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It loads an optional .env file with 'joho/godotenv', then leverages
'caarlos0/env' to map OS environment variables into a strongly-typed Go
struct, providing early validation and default values.

Usage:

	cfg, err := config.Load(".env")
	if err != nil {
	    return err
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to the store, cache and analyzer via constructors.
  - Zero Hidden State: No global variables are used to store config.

Variables already present in the process environment win over the .env file.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"

	"github.com/taibuivan/mta/internal/platform/constants"
)

// # Configuration Schema

// Config holds all runtime configuration for the mta command.
type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	// Relational store. DatabaseURL is a postgres:// DSN for the postgres
	// driver and a file path for the sqlite driver.
	DatabaseURL string `env:"DATABASE_URL,required"`
	StoreDriver string `env:"STORE_DRIVER" envDefault:"postgres"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"true"`

	// OCR text cache (Redis). Empty disables caching.
	RedisURL    string        `env:"REDIS_URL"`
	OCRCacheTTL time.Duration `env:"OCR_CACHE_TTL" envDefault:"720h"`

	// Page analysis
	OCRLanguages []string `env:"OCR_LANGUAGES" envDefault:"jpn,jpn_vert" envSeparator:","`
	OCRWorkers   int      `env:"OCR_WORKERS" envDefault:"2"`
}

// # Configuration Loading

// Load reads envFile (when it exists) into the process environment, parses
// environment variables into a [Config] and validates it.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: failed to read %s: %w", envFile, err)
		}
	}

	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DatabaseURL, validation.Required),
		validation.Field(&c.StoreDriver, validation.Required, validation.In(constants.DriverPostgres, constants.DriverSQLite)),
		validation.Field(&c.OCRWorkers, validation.Min(1), validation.Max(32)),
		validation.Field(&c.OCRCacheTTL, validation.Min(time.Duration(0))),
		validation.Field(&c.OCRLanguages, validation.Required),
	)
}

// CacheEnabled reports whether OCR results should be cached in Redis.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}

// IsSQLite reports whether the local SQLite store is selected.
func (c *Config) IsSQLite() bool {
	return c.StoreDriver == constants.DriverSQLite
}
