package models

import "time"

// FastState enumerates the global tracker states.
type FastState int

const (
	StateIdle FastState = iota
	StateOpen
)

func (s FastState) String() string {
	switch s {
	case StateOpen:
		return "open"
	default:
		return "idle"
	}
}

// FastingSession is one fast. A nil End means the fast is still running.
type FastingSession struct {
	Start time.Time
	End   *time.Time
}

func (s FastingSession) IsOpen() bool {
	return s.End == nil
}

// Duration is the whole-second span between Start and End; open sessions report zero.
func (s FastingSession) Duration() time.Duration {
	if s.End == nil {
		return 0
	}
	return s.End.Sub(s.Start).Truncate(time.Second)
}

// Clone copies the session so the End pointer is not shared.
func (s FastingSession) Clone() FastingSession {
	if s.End != nil {
		end := *s.End
		s.End = &end
	}
	return s
}

// Equal compares instants, ignoring location and monotonic readings.
func (s FastingSession) Equal(other FastingSession) bool {
	if !s.Start.Equal(other.Start) {
		return false
	}
	if s.End == nil || other.End == nil {
		return s.End == nil && other.End == nil
	}
	return s.End.Equal(*other.End)
}
