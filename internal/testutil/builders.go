package testutil

import (
	"time"

	"github.com/akyairhashvil/fastlog/internal/models"
	"github.com/akyairhashvil/fastlog/internal/util"
)

// Epoch is a fixed local instant used as the default start of test sessions.
var Epoch = time.Date(2023, time.December, 31, 10, 0, 0, 0, time.Local)

// SessionBuilder provides fluent API for creating test sessions.
type SessionBuilder struct {
	session models.FastingSession
}

// NewSession returns a completed one-hour session starting at Epoch.
func NewSession() *SessionBuilder {
	return &SessionBuilder{
		session: models.FastingSession{
			Start: Epoch,
			End:   util.Ptr(Epoch.Add(time.Hour)),
		},
	}
}

func (b *SessionBuilder) StartingAt(t time.Time) *SessionBuilder {
	b.session.Start = t
	return b
}

func (b *SessionBuilder) EndingAt(t time.Time) *SessionBuilder {
	b.session.End = &t
	return b
}

func (b *SessionBuilder) Lasting(d time.Duration) *SessionBuilder {
	return b.EndingAt(b.session.Start.Add(d))
}

func (b *SessionBuilder) Open() *SessionBuilder {
	b.session.End = nil
	return b
}

func (b *SessionBuilder) Build() models.FastingSession {
	return b.session
}

// FakeClock is a manually advanced clock.
type FakeClock struct {
	now time.Time
}

func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

func (c *FakeClock) Now() time.Time {
	return c.now
}

func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func (c *FakeClock) Set(t time.Time) {
	c.now = t
}
