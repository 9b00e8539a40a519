package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3"
)

// MemoryDSN is a private in-memory database that vanishes with the process.
const MemoryDSN = ":memory:"

// Database wraps the SQLite handle backing the session log.
type Database struct {
	DB *sql.DB
}

// Open connects to dsn and applies the schema. An in-memory DSN is pinned to
// one connection so every query sees the same database.
func Open(ctx context.Context, dsn string) (*Database, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, &OpError{Op: "open", Resource: "database", Err: err}
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, &OpError{Op: "ping", Resource: "database", Err: err}
	}
	d := &Database{DB: db}
	if err := d.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return d, nil
}

func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS fasting_sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			start_at TEXT NOT NULL,
			end_at TEXT
		);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return &OpError{Op: "migrate", Resource: "database", Err: fmt.Errorf("%w: %s", err, query)}
		}
	}
	return nil
}

func rollbackWithLog(tx *sql.Tx, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil {
		log.Printf("rollback failed: %v", rbErr)
	}
	return err
}
