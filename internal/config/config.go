// Package config provides configuration structures and validation for the
// application. It handles environment-based configuration for the HTTP
// server, the ledger snapshot store, and the simulated business clock.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/covid-banking-ledger/internal/domain/shared"
)

// Config holds the complete application configuration. Each field represents
// one subsystem and is validated during startup.
type Config struct {
	Application ApplicationConfig
	Logging     LoggingConfig
	Server      ServerConfig
	Ledger      LedgerConfig
	Clock       ClockConfig
}

// ApplicationConfig contains general application configuration
type ApplicationConfig struct {
	Env  string
	Name string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string
}

// ServerConfig contains HTTP server configuration settings
type ServerConfig struct {
	Port            int           // Port to listen on
	ShutdownTimeout time.Duration // Grace period for server shutdown
	ReadTimeout     time.Duration // Maximum duration for reading entire request
	WriteTimeout    time.Duration // Maximum duration for writing response
	IdleTimeout     time.Duration // Maximum duration to wait for next request
}

// LedgerConfig contains snapshot persistence configuration
type LedgerConfig struct {
	SnapshotPath string // File the ledger snapshot is rewritten to
}

// ClockConfig contains the simulated business clock configuration
type ClockConfig struct {
	StartDate string // Initial current date, "2006-01-02" form
}

// Date returns the parsed clock start date. Call only after validation.
func (c *ClockConfig) Date() shared.Date {
	d, _ := shared.ParseDate(c.StartDate)
	return d
}

// validate checks all configuration values against their constraints
func (c *Config) validate() error {
	var validationErrors []string

	if c.Server.Port <= 0 {
		validationErrors = append(validationErrors, "SERVER_PORT must be greater than 0")
	}
	if c.Server.ShutdownTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_SHUTDOWN_TIMEOUT must be greater than 0")
	}
	if c.Server.ReadTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_READ_TIMEOUT must be greater than 0")
	}
	if c.Server.WriteTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_WRITE_TIMEOUT must be greater than 0")
	}
	if c.Server.IdleTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_IDLE_TIMEOUT must be greater than 0")
	}

	if c.Ledger.SnapshotPath == "" {
		validationErrors = append(validationErrors, "LEDGER_SNAPSHOT_PATH is required")
	}

	if c.Clock.StartDate == "" {
		validationErrors = append(validationErrors, "CLOCK_START_DATE is required")
	} else if _, err := shared.ParseDate(c.Clock.StartDate); err != nil {
		validationErrors = append(validationErrors, "CLOCK_START_DATE must be a date in 2006-01-02 form")
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, ", "))
	}

	return nil
}
