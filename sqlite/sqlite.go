// Package sqlite stores extracted records in a SQLite database. Record
// content is kept as JSON; failures are also kept as rows so that they can
// be counted without decoding every record.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// Schema creates the tables and indexes. It is idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS records (
    id           TEXT PRIMARY KEY,
    date         TEXT NOT NULL UNIQUE,
    content      TEXT NOT NULL,
    content_hash TEXT NOT NULL,
    created_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS failures (
    record_id TEXT NOT NULL REFERENCES records(id) ON DELETE CASCADE,
    section   TEXT NOT NULL,
    code      TEXT NOT NULL,
    message   TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_failures_record_id ON failures(record_id);
CREATE INDEX IF NOT EXISTS idx_failures_section ON failures(section);
`

// pragma is a connection setting applied on open.
type pragma struct {
	stmt     string
	fileOnly bool
}

var pragmas = []pragma{
	// Wait on lock contention instead of failing with "database is locked".
	{stmt: "PRAGMA busy_timeout = 5000"},
	// WAL is unavailable for in-memory databases.
	{stmt: "PRAGMA journal_mode = WAL", fileOnly: true},
	// Deleting a record removes its failures.
	{stmt: "PRAGMA foreign_keys = ON"},
}

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and applies the schema.
func (db *DB) Open() (err error) {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err != nil {
			conn.Close()
		}
	}()

	// One writer at a time; an in-memory database also lives on a single
	// connection.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	for _, p := range pragmas {
		if p.fileOnly && db.path == ":memory:" {
			continue
		}
		if _, err := conn.Exec(p.stmt); err != nil {
			return fmt.Errorf("failed to apply %q: %w", p.stmt, err)
		}
	}

	if _, err := conn.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	db.db = conn
	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, opts)
}
