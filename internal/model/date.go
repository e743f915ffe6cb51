package model

import "time"

// DateLayout is the calendar-date format used everywhere a date is stored
// or compared. It sorts lexicographically in chronological order, so plain
// string comparison is date comparison.
const DateLayout = "2006-01-02"

// FormatDate renders t as a calendar-date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the current calendar date in the local timezone.
func Today() string {
	return FormatDate(time.Now())
}

// ParseDate parses a calendar-date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
