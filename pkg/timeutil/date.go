// Package timeutil parses exam dates and turns them into D-day labels.
package timeutil

import (
	"errors"
	"fmt"
	"time"
)

const (
	// LayoutISO is the only accepted exam date layout.
	LayoutISO = "2006-01-02"

	secondsPerDay = 24 * 60 * 60
)

// ErrInvalidDate marks a date that does not follow LayoutISO or names a day
// that does not exist.
var ErrInvalidDate = errors.New("invalid date")

// ParseDate interprets text strictly as YYYY-MM-DD; surrounding whitespace
// is a failure too. Failures wrap ErrInvalidDate.
func ParseDate(text string) (time.Time, error) {
	t, err := time.Parse(LayoutISO, text)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDate, text)
	}
	return t, nil
}

// Today returns midnight of now's calendar day, in now's location.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// DaysUntil returns target minus today in whole calendar days. Only the
// calendar date of each argument is used.
func DaysUntil(target, today time.Time) int {
	return int(civilDay(target) - civilDay(today))
}

// Offset parses date and returns its distance from today, or nil when the
// date does not parse.
func Offset(date string, today time.Time) *int {
	t, err := ParseDate(date)
	if err != nil {
		return nil
	}
	days := DaysUntil(t, today)
	return &days
}

// civilDay numbers calendar days from the Unix epoch. Duration arithmetic is
// avoided because it saturates for spans over ~292 years.
func civilDay(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay
}
