package fasting

import (
	"context"
	"strings"
	"time"

	"github.com/akyairhashvil/fastlog/internal/models"
)

// Tracker owns the open-fast slot and the log of completed fasts.
// It has a single writer and is not safe for concurrent use.
type Tracker struct {
	log       SessionLog
	clock     Clock
	openStart *time.Time
}

func NewTracker(log SessionLog, clock Clock) *Tracker {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Tracker{log: log, clock: clock}
}

func (t *Tracker) State() models.FastState {
	if t.openStart != nil {
		return models.StateOpen
	}
	return models.StateIdle
}

func (t *Tracker) IsOpen() bool {
	return t.openStart != nil
}

// OpenStart returns the start of the running fast, if any.
func (t *Tracker) OpenStart() (time.Time, bool) {
	if t.openStart == nil {
		return time.Time{}, false
	}
	return *t.openStart, true
}

// StartFast opens a fast at the current time. It is a no-op while a fast is open.
func (t *Tracker) StartFast() (time.Time, bool) {
	if t.openStart != nil {
		return *t.openStart, false
	}
	now := t.clock.Now()
	t.openStart = &now
	return now, true
}

// EndFast closes the running fast and appends it to the log. With no open
// fast it is a no-op. If the append fails the fast stays open.
func (t *Tracker) EndFast(ctx context.Context) (models.FastingSession, bool, error) {
	if t.openStart == nil {
		return models.FastingSession{}, false, nil
	}
	end := t.clock.Now()
	session := models.FastingSession{Start: *t.openStart, End: &end}
	if err := t.log.AppendSession(ctx, session); err != nil {
		return models.FastingSession{}, false, err
	}
	t.openStart = nil
	return session, true, nil
}

// EditSession replaces the entry at index with the parsed timestamps, keeping
// its position. A blank endText leaves the session open. Any *EditError
// leaves the log unchanged.
func (t *Tracker) EditSession(ctx context.Context, index int, startText, endText string) error {
	n, err := t.log.CountSessions(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= n {
		return &EditError{Field: FieldIndex, Reason: "no such session", Err: ErrSessionNotFound}
	}
	start, err := ParseTimestamp(startText)
	if err != nil {
		return &EditError{Field: FieldStart, Reason: "expected DD/MM/YYYY hh:mm", Err: err}
	}
	edited := models.FastingSession{Start: start}
	if strings.TrimSpace(endText) != "" {
		end, err := ParseTimestamp(endText)
		if err != nil {
			return &EditError{Field: FieldEnd, Reason: "expected DD/MM/YYYY hh:mm or blank", Err: err}
		}
		if end.Before(start) {
			return &EditError{Field: FieldEnd, Reason: "end is before start", Err: ErrEndBeforeStart}
		}
		edited.End = &end
	}
	return t.log.ReplaceSession(ctx, index, edited)
}

// Sessions lists logged fasts in insertion order.
func (t *Tracker) Sessions(ctx context.Context) ([]models.FastingSession, error) {
	return t.log.ListSessions(ctx)
}

// TotalFastingDuration sums completed sessions. Open entries add nothing.
func (t *Tracker) TotalFastingDuration(ctx context.Context) (time.Duration, error) {
	sessions, err := t.log.ListSessions(ctx)
	if err != nil {
		return 0, err
	}
	return totalOf(sessions), nil
}

// Elapsed is the whole-second age of the running fast at now, or zero when idle.
func (t *Tracker) Elapsed(now time.Time) time.Duration {
	if t.openStart == nil {
		return 0
	}
	d := now.Sub(*t.openStart).Truncate(time.Second)
	if d < 0 {
		return 0
	}
	return d
}

func (t *Tracker) Now() time.Time {
	return t.clock.Now()
}

func totalOf(sessions []models.FastingSession) time.Duration {
	var total time.Duration
	for _, s := range sessions {
		total += s.Duration()
	}
	return total
}
