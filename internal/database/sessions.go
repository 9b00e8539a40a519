package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/akyairhashvil/fastlog/internal/models"
)

// AppendSession adds s at the end of the log.
func (d *Database) AppendSession(ctx context.Context, s models.FastingSession) error {
	_, err := d.DB.ExecContext(ctx,
		"INSERT INTO fasting_sessions (start_at, end_at) VALUES (?, ?)",
		formatTime(s.Start), nullableTime(s.End))
	return wrapSessionErr("append", 0, err)
}

// ReplaceSession overwrites the session at position index (0-based insertion order).
func (d *Database) ReplaceSession(ctx context.Context, index int, s models.FastingSession) error {
	if index < 0 {
		return wrapSessionErr("replace", 0, ErrSessionNotFound)
	}
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return wrapSessionErr("replace", 0, err)
	}
	var id int64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM fasting_sessions ORDER BY id ASC LIMIT 1 OFFSET ?", index).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return wrapSessionErr("replace", 0, rollbackWithLog(tx, ErrSessionNotFound))
	}
	if err != nil {
		return wrapSessionErr("replace", 0, rollbackWithLog(tx, err))
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE fasting_sessions SET start_at = ?, end_at = ? WHERE id = ?",
		formatTime(s.Start), nullableTime(s.End), id); err != nil {
		return wrapSessionErr("replace", id, rollbackWithLog(tx, err))
	}
	return wrapSessionErr("replace", id, tx.Commit())
}

// ListSessions returns every session in insertion order.
func (d *Database) ListSessions(ctx context.Context) ([]models.FastingSession, error) {
	rows, err := d.DB.QueryContext(ctx,
		"SELECT start_at, end_at FROM fasting_sessions ORDER BY id ASC")
	if err != nil {
		return nil, wrapSessionErr("list", 0, err)
	}
	defer rows.Close()

	var sessions []models.FastingSession
	for rows.Next() {
		var rawStart string
		var rawEnd sql.NullString
		if err := rows.Scan(&rawStart, &rawEnd); err != nil {
			return nil, wrapSessionErr("list", 0, err)
		}
		start, err := parseTime(rawStart)
		if err != nil {
			return nil, wrapSessionErr("list", 0, err)
		}
		end, err := optionalTime(rawEnd)
		if err != nil {
			return nil, wrapSessionErr("list", 0, err)
		}
		sessions = append(sessions, models.FastingSession{Start: start, End: end})
	}
	return sessions, wrapSessionErr("list", 0, rows.Err())
}

func (d *Database) CountSessions(ctx context.Context) (int, error) {
	var n int
	err := d.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM fasting_sessions").Scan(&n)
	return n, wrapSessionErr("count", 0, err)
}
