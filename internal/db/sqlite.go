package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const memoryPath = ":memory:"

// NewSQLite opens the embedded catalog database at path, creating its
// directory if needed. WAL and a busy timeout let the single writer
// coexist with concurrent readers.
func NewSQLite(ctx context.Context, path string) (*sql.DB, error) {
	// foreign keys are off per connection unless asked for
	dsn := "file::memory:?_pragma=foreign_keys(1)"
	if path != memoryPath {
		clean := filepath.Clean(path)
		if err := os.MkdirAll(filepath.Dir(clean), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
		dsn = fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)", clean)
	}

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// one writer; an in-memory database also only exists per connection
	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(0)

	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return conn, nil
}
