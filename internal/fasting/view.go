package fasting

import (
	"context"
	"time"
)

const (
	inProgressEnd      = "In Progress"
	inProgressDuration = "(in progress)"
)

// Row is one log line as shown to the user.
type Row struct {
	Index    int
	Start    string
	End      string
	Duration string
	Open     bool
}

// Dashboard is everything the screen shows, derived from a tracker.
type Dashboard struct {
	Open     bool
	Since    string
	Elapsed  string
	Progress float64
	Total    string
	CanStart bool
	CanEnd   bool
	Empty    bool
	Rows     []Row
}

// Project builds the dashboard. elapsed is the ticker's last reading and
// target the goal fast length (zero disables progress). Rows are most recent first.
func Project(ctx context.Context, t *Tracker, elapsed, target time.Duration) (Dashboard, error) {
	sessions, err := t.Sessions(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	d := Dashboard{
		Open:     t.IsOpen(),
		CanStart: !t.IsOpen(),
		CanEnd:   t.IsOpen(),
		Total:    FormatElapsed(totalOf(sessions)),
		Empty:    len(sessions) == 0 && !t.IsOpen(),
	}
	if start, ok := t.OpenStart(); ok {
		d.Since = FormatTimestamp(start)
		d.Elapsed = FormatElapsed(elapsed)
		if target > 0 {
			d.Progress = float64(elapsed) / float64(target)
			if d.Progress > 1 {
				d.Progress = 1
			}
		}
	}
	d.Rows = make([]Row, 0, len(sessions))
	for i := len(sessions) - 1; i >= 0; i-- {
		s := sessions[i]
		row := Row{
			Index: i,
			Start: FormatTimestamp(s.Start),
			Open:  s.IsOpen(),
		}
		if s.IsOpen() {
			row.End = inProgressEnd
			row.Duration = inProgressDuration
		} else {
			row.End = FormatTimestamp(*s.End)
			row.Duration = FormatElapsed(s.Duration())
		}
		d.Rows = append(d.Rows, row)
	}
	return d, nil
}
