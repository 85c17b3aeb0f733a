package util

import (
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// Today is the current date at midnight UTC. projections are anchored
// here so every series in a request starts on the same instant
func Today() time.Time {
	now := time.Now().UTC()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

// AddMonths moves t by n months. a day that doesn't exist in the target
// month is clamped to its last day, so Jan 31 + 1 month is Feb 28 (or 29)
// rather than rolling into March like time.AddDate
func AddMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	first := time.Date(year, month+time.Month(months), 1, hour, min, sec, t.Nanosecond(), t.Location())
	if lastDay := first.AddDate(0, 1, -1).Day(); day > lastDay {
		day = lastDay
	}
	return time.Date(first.Year(), first.Month(), day, hour, min, sec, t.Nanosecond(), t.Location())
}

func FormatDate(t time.Time) string {
	return t.Format(layout)
}
