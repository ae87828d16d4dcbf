package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"slot-engine/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package for
// default values. Use Load to construct a Config.
type Config struct {
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server (HTTP_*).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_*).
	Log configs.Logger `envPrefix:"LOG_"`

	// Catalog picks the storage driver (CATALOG_*).
	Catalog configs.Catalog `envPrefix:"CATALOG_"`

	// Psql configures the PostgreSQL connection (PSQL_*).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// SQLite configures the embedded catalog (SQLITE_*).
	SQLite configs.SQLite `envPrefix:"SQLITE_"`

	NATS  configs.NATS  `envPrefix:"NATS_"`
	Kafka configs.Kafka `envPrefix:"KAFKA_"`

	Session   configs.Session   `envPrefix:"SESSION_"`
	Reconcile configs.Reconcile `envPrefix:"RECONCILE_"`
}

// Load reads configuration from environment variables into a Config. All
// fields are loaded with their specified defaults when no environment
// variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	switch cfg.Catalog.Driver {
	case configs.DriverPostgres, configs.DriverSQLite:
	default:
		return cfg, fmt.Errorf("unknown catalog driver %q", cfg.Catalog.Driver)
	}
	return cfg, nil
}
