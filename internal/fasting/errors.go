package fasting

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrEndBeforeStart   = errors.New("end precedes start")
)

// EditField names the input an edit failure refers to.
type EditField int

const (
	FieldIndex EditField = iota
	FieldStart
	FieldEnd
)

func (f EditField) String() string {
	switch f {
	case FieldStart:
		return "start"
	case FieldEnd:
		return "end"
	default:
		return "session"
	}
}

// EditError is the rejected outcome of EditSession. The log is untouched when it is returned.
type EditError struct {
	Field  EditField
	Reason string
	Err    error
}

func (e *EditError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("edit %s: %s", e.Field, e.Reason)
}

func (e *EditError) Unwrap() error { return e.Err }
