package database

import (
	"time"

	"spendly/internal/config"
)

// Config holds database configuration
type Config struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// NewConfig derives the database configuration from the application config.
// A missing URL is deliberately not rejected here; see Manager.DB.
func NewConfig(appConfig *config.Config) *Config {
	return &Config{
		URL:             appConfig.DatabaseURL,
		MaxOpenConns:    appConfig.DBMaxOpenConns,
		MaxIdleConns:    appConfig.DBMaxIdleConns,
		ConnMaxLifetime: appConfig.DBConnMaxLifetime,
	}
}

// Configured reports whether a connection string is present.
func (c *Config) Configured() bool {
	return c.URL != ""
}
