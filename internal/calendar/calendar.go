// Package calendar derives calendar dates from instants. Results are
// rickb777/date values, which are independent copies of the instant's
// calendar fields, so callers' time.Time values are never touched.
package calendar

import (
	"time"

	"github.com/rickb777/date/v2"
)

// DateOf returns the calendar date t falls on in its own location.
func DateOf(t time.Time) date.Date {
	return date.New(t.Year(), t.Month(), t.Day())
}

// ISOWeekday numbers days from Monday (1) to Sunday (7).
func ISOWeekday(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}
	return int(t.Weekday())
}

// WeekStart returns the Monday that opens the ISO week t belongs to. A
// Monday is returned unchanged.
func WeekStart(t time.Time) date.Date {
	return DateOf(t.AddDate(0, 0, 1-ISOWeekday(t)))
}
