package models

import "time"

// DateLayout is the canonical calendar date form (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// FormatDate renders t as a calendar date in t's own location
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string as a local calendar date
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// TruncateToDay drops the time of day, keeping t's location
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
