package fasting

import (
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/fastlog/internal/config"
)

// ParseTimestamp reads DD/MM/YYYY hh:mm in local time.
func ParseTimestamp(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	t, err := time.ParseInLocation(config.TimestampLayout, text, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, text)
	}
	return t, nil
}

// FormatTimestamp renders t as DD/MM/YYYY hh:mm in local time.
func FormatTimestamp(t time.Time) string {
	return t.In(time.Local).Format(config.TimestampLayout)
}

// FormatOptionalTimestamp renders nil as the empty string.
func FormatOptionalTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatTimestamp(*t)
}
