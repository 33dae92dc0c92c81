package calendar

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Layouts tried by ParseDateTime, in order. Slashes are normalized to dashes
// before matching.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-1-2 15:04:05",
	"2006-1-2 15:04",
	"2006-1-2",
	"2-1-2006 15:04:05",
	"2-1-2006 15:04",
	"2-1-2006",
	"2-Jan-2006",
	"2-January-2006",
	"2006-1",
}

// ParseDateTime parses a date or date-time string in UTC.
func ParseDateTime(value string) (time.Time, error) {
	return ParseDateTimeIn(value, time.UTC)
}

// ParseDateTimeIn parses value in loc. Day-first ("26-10-2026") and
// year-first ("2026-10-26") forms are accepted.
func ParseDateTimeIn(value string, loc *time.Location) (time.Time, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(value), "/", "-")
	if normalized == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrUnparseableInput)
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, normalized, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableInput, value)
}

// ParseDateTimeLenient logs the failure and reports ok=false instead of
// returning an error. Empty input is not logged.
func ParseDateTimeLenient(value string, loc *time.Location) (time.Time, bool) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, false
	}
	t, err := ParseDateTimeIn(value, loc)
	if err != nil {
		slog.Warn("Error while parsing date and time from string", "value", value, "error", err)
		return time.Time{}, false
	}
	return t, true
}

// ParseMonth accepts a month number ("4", "04") or an English month name,
// full or abbreviated.
func ParseMonth(s string) (time.Month, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("%w: %d", ErrInvalidMonth, n)
		}
		return time.Month(n), nil
	}
	lower := strings.ToLower(s)
	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		if lower == name || (len(lower) >= 3 && strings.HasPrefix(name, lower)) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
}
