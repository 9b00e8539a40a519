package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	db, err := Open(ctx, MemoryDSN)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func TestOpenCreatesSchema(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	var name string
	err := db.DB.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'fasting_sessions'").Scan(&name)
	if err != nil {
		t.Fatalf("expected fasting_sessions table: %v", err)
	}
}

func TestCreateTablesIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.createTables(ctx); err != nil {
		t.Fatalf("second createTables failed: %v", err)
	}
}

func TestMemoryDatabasesAreIsolated(t *testing.T) {
	ctx := context.Background()
	a := setupTestDB(t, ctx)
	b := setupTestDB(t, ctx)
	if _, err := a.DB.ExecContext(ctx, "INSERT INTO fasting_sessions (start_at) VALUES ('2023-12-31T10:00:00Z')"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	n, err := b.CountSessions(ctx)
	if err != nil {
		t.Fatalf("CountSessions failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected separate in-memory databases, got %d rows", n)
	}
}

func TestOpenBadPath(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "missing", "dir", "x.db")
	if _, err := Open(ctx, dsn); err == nil {
		t.Fatalf("expected error opening database in missing directory")
	}
}

func TestCloseNil(t *testing.T) {
	var db *Database
	if err := db.Close(); err != nil {
		t.Fatalf("expected nil close to succeed: %v", err)
	}
}

func TestOpErrorFormatting(t *testing.T) {
	base := errors.New("boom")
	err := &OpError{Op: "replace", Resource: "session", ID: 7, Err: base}
	if err.Error() != "replace session 7: boom" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected Unwrap to expose base error")
	}
	noID := &OpError{Op: "list", Resource: "session", Err: base}
	if noID.Error() != "list session: boom" {
		t.Fatalf("unexpected message %q", noID.Error())
	}
	var nilErr *OpError
	if nilErr.Error() != "" {
		t.Fatalf("expected empty message for nil error")
	}
	if wrapSessionErr("x", 0, nil) != nil {
		t.Fatalf("expected nil wrap for nil error")
	}
}
