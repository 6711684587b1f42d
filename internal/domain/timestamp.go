package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the wire format for session timestamps (UTC with explicit offset)
const TimestampLayout = "2006-01-02T15:04:05-07:00"

// DateLayout is the ISO calendar date format used for date filters and daily keys
const DateLayout = "2006-01-02"

// naiveLayouts are accepted for timestamps without an offset; they are read as UTC
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// FormatTimestamp renders a timestamp in UTC using TimestampLayout
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses an ISO 8601 timestamp.
// Values without an offset are interpreted as UTC.
func ParseTimestamp(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrUnparsable)
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsable, raw)
}

// ParseDate parses a calendar date filter.
// Accepts YYYY-MM-DD or a full timestamp, whose calendar date in its own offset is used.
func ParseDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if t, err := time.ParseInLocation(DateLayout, value, time.UTC); err == nil {
		return t, nil
	}
	if t, err := ParseTimestamp(value); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, raw)
}

// DateOf truncates a timestamp to midnight of its UTC calendar date
func DateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate renders the UTC calendar date of t as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// SameDate reports whether two timestamps fall on the same UTC calendar date
func SameDate(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}
