package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	// Registers the "sqlite3" driver.
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema/sqlite.sql
var sqliteSchema string

// SQLiteMemory opens a private in-memory database.
const SQLiteMemory = ":memory:"

// OpenSQLite opens (or creates) the SQLite database at path and applies
// the schema. Every connection to ":memory:" sees a different database,
// so the pool is pinned to one connection in that case.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	dsn := path
	if path != SQLiteMemory {
		dsn = "file:" + path + "?_busy_timeout=5000&_journal_mode=WAL"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if path == SQLiteMemory {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply sqlite schema: %w", err)
	}

	return db, nil
}
