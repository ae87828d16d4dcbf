package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"slot-engine/db/migrations"
)

// Migrate applies all up migrations to the PostgreSQL database at addr.
func Migrate(addr string) error {
	src, err := iofs.New(migrations.FS, migrations.PostgresDir)
	if err != nil {
		return err
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return err
	}
	defer mg.Close()

	return run(mg)
}

// MigrateSQLite applies all up migrations to an open SQLite handle. The
// handle stays open; closing it remains the caller's job.
func MigrateSQLite(conn *sql.DB) error {
	src, err := iofs.New(migrations.FS, migrations.SQLiteDir)
	if err != nil {
		return err
	}
	defer src.Close()

	driver, err := sqlite.WithInstance(conn, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("sqlite migrate driver: %w", err)
	}

	// mg.Close would close conn as well, so it is not called here.
	mg, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return err
	}
	return run(mg)
}

func run(mg *migrate.Migrate) error {
	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return errors.New("database is in dirty state")
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
