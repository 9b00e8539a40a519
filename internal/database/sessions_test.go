package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/akyairhashvil/fastlog/internal/fasting"
	"github.com/akyairhashvil/fastlog/internal/models"
	"github.com/akyairhashvil/fastlog/internal/testutil"
)

func TestAppendAndListSessions(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	first := testutil.NewSession().Lasting(90 * time.Minute).Build()
	second := testutil.NewSession().StartingAt(testutil.Epoch.Add(24 * time.Hour)).Open().Build()
	for _, s := range []models.FastingSession{first, second} {
		if err := db.AppendSession(ctx, s); err != nil {
			t.Fatalf("AppendSession failed: %v", err)
		}
	}

	sessions, err := db.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if !sessions[0].Equal(first) || !sessions[1].Equal(second) {
		t.Fatalf("expected insertion order round trip, got %+v", sessions)
	}
	if !sessions[1].IsOpen() {
		t.Fatalf("expected NULL end to read back as open")
	}
	n, err := db.CountSessions(ctx)
	if err != nil || n != 2 {
		t.Fatalf("expected count 2, got %d (%v)", n, err)
	}
}

func TestListSessionsEmpty(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	sessions, err := db.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Fatalf("expected empty log, got %d", len(sessions))
	}
}

func TestReplaceSessionKeepsPosition(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	for i := 0; i < 3; i++ {
		s := testutil.NewSession().StartingAt(testutil.Epoch.Add(time.Duration(i) * 24 * time.Hour)).Build()
		if err := db.AppendSession(ctx, s); err != nil {
			t.Fatalf("AppendSession failed: %v", err)
		}
	}
	before, _ := db.ListSessions(ctx)

	edited := testutil.NewSession().StartingAt(testutil.Epoch.Add(-time.Hour)).Open().Build()
	if err := db.ReplaceSession(ctx, 1, edited); err != nil {
		t.Fatalf("ReplaceSession failed: %v", err)
	}
	after, _ := db.ListSessions(ctx)
	if len(after) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(after))
	}
	if !after[1].Equal(edited) {
		t.Fatalf("expected replaced entry, got %+v", after[1])
	}
	if !after[0].Equal(before[0]) || !after[2].Equal(before[2]) {
		t.Fatalf("neighbours must not change")
	}
}

func TestReplaceSessionOutOfRange(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.AppendSession(ctx, testutil.NewSession().Build()); err != nil {
		t.Fatalf("AppendSession failed: %v", err)
	}
	for _, idx := range []int{-1, 1, 10} {
		err := db.ReplaceSession(ctx, idx, testutil.NewSession().Build())
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("index %d: expected ErrSessionNotFound, got %v", idx, err)
		}
		var opErr *OpError
		if !errors.As(err, &opErr) || opErr.Op != "replace" {
			t.Fatalf("expected replace OpError, got %v", err)
		}
	}
}

func TestClosedDatabaseErrors(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, MemoryDSN)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := db.AppendSession(ctx, testutil.NewSession().Build()); err == nil {
		t.Fatalf("expected append on closed db to fail")
	}
	if _, err := db.ListSessions(ctx); err == nil {
		t.Fatalf("expected list on closed db to fail")
	}
	if _, err := db.CountSessions(ctx); err == nil {
		t.Fatalf("expected count on closed db to fail")
	}
}

func TestTimeHelpers(t *testing.T) {
	if nullableTime(nil).Valid {
		t.Fatalf("expected nil time to be NULL")
	}
	ts := testutil.Epoch.Add(1500 * time.Millisecond)
	v := nullableTime(&ts)
	got, err := parseTime(v.String)
	if !v.Valid || err != nil || !got.Equal(ts) {
		t.Fatalf("expected sub-second round trip, got %v (%v)", got, err)
	}
	if end, err := optionalTime(nullableTime(nil)); end != nil || err != nil {
		t.Fatalf("expected NULL to read back as nil, got %v (%v)", end, err)
	}
	if _, err := parseTime("yesterday"); err == nil {
		t.Fatalf("expected malformed timestamp to fail")
	}
}

func TestListSessionsRejectsCorruptRow(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if _, err := db.DB.ExecContext(ctx, "INSERT INTO fasting_sessions (start_at) VALUES ('garbage')"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if _, err := db.ListSessions(ctx); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestSessionsRoundTripFarYears(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	for _, year := range []int{1, 1600, 3000, 9999} {
		start := time.Date(year, time.January, 1, 10, 0, 0, 0, time.Local)
		session := testutil.NewSession().StartingAt(start).EndingAt(start.Add(2 * time.Hour)).Build()
		if err := db.AppendSession(ctx, session); err != nil {
			t.Fatalf("year %d: append failed: %v", year, err)
		}
		sessions, err := db.ListSessions(ctx)
		if err != nil {
			t.Fatalf("year %d: list failed: %v", year, err)
		}
		if got := sessions[len(sessions)-1]; !got.Equal(session) {
			t.Fatalf("year %d: stored %+v, read back %+v", year, session, got)
		}
	}
}

func TestTrackerEditSessionFarYears(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	clock := testutil.NewFakeClock(testutil.Epoch)
	tracker := fasting.NewTracker(db, clock)
	tracker.StartFast()
	clock.Advance(time.Hour)
	if _, _, err := tracker.EndFast(ctx); err != nil {
		t.Fatalf("EndFast failed: %v", err)
	}

	for _, year := range []int{1600, 2262, 3000} {
		startText := fmt.Sprintf("01/01/%04d 10:00", year)
		endText := fmt.Sprintf("01/01/%04d 12:00", year)
		if err := tracker.EditSession(ctx, 0, startText, endText); err != nil {
			t.Fatalf("year %d: EditSession failed: %v", year, err)
		}
		sessions, err := tracker.Sessions(ctx)
		if err != nil {
			t.Fatalf("year %d: Sessions failed: %v", year, err)
		}
		got := sessions[0]
		if fasting.FormatTimestamp(got.Start) != startText || fasting.FormatOptionalTimestamp(got.End) != endText {
			t.Fatalf("year %d: read back %s - %s", year,
				fasting.FormatTimestamp(got.Start), fasting.FormatOptionalTimestamp(got.End))
		}
		total, err := tracker.TotalFastingDuration(ctx)
		if err != nil || total != 2*time.Hour {
			t.Fatalf("year %d: expected 2h total, got %v (%v)", year, total, err)
		}
	}
}
