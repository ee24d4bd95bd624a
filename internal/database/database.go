package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

const sqliteOptions = "_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000"

func New(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverPostgres:
	case DriverSQLite:
		if !strings.Contains(dsn, "?") {
			dsn += "?" + sqliteOptions
		}
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	return db, nil
}

// migrations are written in the subset of SQL understood by both Postgres
// and SQLite. Each string is a single statement.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		phone            TEXT PRIMARY KEY,
		name             TEXT NOT NULL,
		bank_account_ref TEXT NOT NULL,
		balance          BIGINT NOT NULL,
		total_saved      BIGINT NOT NULL,
		bronze           INTEGER NOT NULL DEFAULT 0,
		silver           INTEGER NOT NULL DEFAULT 0,
		gold             INTEGER NOT NULL DEFAULT 0,
		updated_at       TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS ledger_entries (
		phone          TEXT NOT NULL REFERENCES accounts(phone) ON DELETE CASCADE,
		seq            INTEGER NOT NULL,
		id             TEXT NOT NULL,
		vendor         TEXT NOT NULL,
		amount         BIGINT NOT NULL,
		occurred_at    TIMESTAMP NOT NULL,
		kind           TEXT NOT NULL,
		rounded_amount BIGINT NOT NULL DEFAULT 0,
		multiplier     INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (phone, seq),
		UNIQUE (phone, id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ledger_entries_occurred ON ledger_entries(phone, occurred_at)`,
}

// Migrate creates the schema. It is safe to run on every start.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("running migration %d: %w", i, err)
		}
	}

	return nil
}
