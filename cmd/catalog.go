package main

import (
	"context"
	"fmt"
	"log/slog"

	"slot-engine/internal/adapter/postgres"
	"slot-engine/internal/adapter/sqlite"
	"slot-engine/internal/config"
	"slot-engine/internal/config/configs"
	"slot-engine/internal/core/port"
	"slot-engine/internal/db"
)

type adStore interface {
	port.AdCatalog
	port.CounterStore
}

type headlineStore interface {
	port.HeadlineCatalog
	Slots() port.SlotStores
}

// catalog bundles the repositories of the configured driver.
type catalog struct {
	ads       adStore
	headlines headlineStore
	seed      func(context.Context, *db.Fixture) error
	close     func()
}

// openCatalog connects to the configured driver. Migrations run when
// forced or when the driver config asks for them.
func openCatalog(ctx context.Context, cfg config.Config, logger *slog.Logger, forceMigrate bool) (*catalog, error) {
	switch cfg.Catalog.Driver {
	case configs.DriverSQLite:
		conn, err := db.NewSQLite(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		if forceMigrate || cfg.SQLite.RunMigrations {
			if err = db.MigrateSQLite(conn); err != nil {
				conn.Close()
				return nil, fmt.Errorf("migrate sqlite: %w", err)
			}
			logger.Info("migrations applied successfully", slog.String("driver", configs.DriverSQLite))
		}
		return &catalog{
			ads:       sqlite.NewAdRepository(conn),
			headlines: sqlite.NewHeadlineRepository(conn),
			seed: func(ctx context.Context, f *db.Fixture) error {
				return sqlite.Seed(ctx, conn, f)
			},
			close: func() { _ = conn.Close() },
		}, nil

	default:
		if forceMigrate || cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return nil, fmt.Errorf("migrate postgres: %w", err)
			}
			logger.Info("migrations applied successfully", slog.String("driver", configs.DriverPostgres))
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, fmt.Errorf("database connection: %w", err)
		}
		return &catalog{
			ads:       postgres.NewAdRepository(pool),
			headlines: postgres.NewHeadlineRepository(pool),
			seed: func(ctx context.Context, f *db.Fixture) error {
				return postgres.Seed(ctx, pool, f)
			},
			close: pool.Close,
		}, nil
	}
}
