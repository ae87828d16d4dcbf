package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slot-engine/internal/config/configs"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, configs.DriverPostgres, cfg.Catalog.Driver)
	assert.Equal(t, 4, cfg.Reconcile.Concurrency)
	assert.Equal(t, 5*time.Second, cfg.Reconcile.WriteTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTTL)
	assert.Empty(t, cfg.NATS.URL)
	assert.Empty(t, cfg.Kafka.Brokers)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("CATALOG_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("RECONCILE_CONCURRENCY", "8")
	t.Setenv("SESSION_IDLE_TTL", "1m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, 30*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, configs.DriverSQLite, cfg.Catalog.Driver)
	assert.Equal(t, "/tmp/x.db", cfg.SQLite.Path)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 8, cfg.Reconcile.Concurrency)
	assert.Equal(t, time.Minute, cfg.Session.IdleTTL)
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("CATALOG_DRIVER", "mysql")

	_, err := Load()
	assert.ErrorContains(t, err, "mysql")
}

func TestLogger_Level(t *testing.T) {
	cases := map[string]string{"debug": "DEBUG", "WARN": "WARN", "bogus": "INFO"}
	for in, want := range cases {
		assert.Equal(t, want, configs.Logger{Level: in}.SlogLevel().String(), in)
	}
}
