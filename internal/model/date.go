package model

import (
	"fmt"
	"time"
)

// DayLayout is the on-the-command-line form of a calendar day.
const DayLayout = "2006-01-02"

// SameDay reports calendar-day equality: year, month and day of a and b
// (each read in its own location) are equal; time-of-day is ignored.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AddDays moves t by n calendar days, keeping the wall-clock time.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// ParseDay parses a YYYY-MM-DD day in loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	d, err := time.ParseInLocation(DayLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: want YYYY-MM-DD", s)
	}
	return d, nil
}

// FormatDay is the inverse of ParseDay.
func FormatDay(t time.Time) string { return t.Format(DayLayout) }
