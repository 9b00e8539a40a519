package fasting

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration renders whole hours and minutes, e.g. "1 hour 1 min" or "2 hours".
// Leftover seconds are dropped. Under a minute yields "less than a minute".
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	if h == 0 && m == 0 {
		return "less than a minute"
	}
	var parts []string
	if h > 0 {
		parts = append(parts, fmt.Sprintf("%d hour%s", h, plural(h)))
	}
	if m > 0 {
		parts = append(parts, fmt.Sprintf("%d min%s", m, plural(m)))
	}
	return strings.Join(parts, " ")
}

// FormatElapsed is FormatDuration for a time.Duration.
func FormatElapsed(d time.Duration) string {
	return FormatDuration(int64(d / time.Second))
}

func plural(n int64) string {
	if n > 1 {
		return "s"
	}
	return ""
}
