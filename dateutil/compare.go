package dateutil

import (
	"time"

	"github.com/svera/datekit/internal/calendar"
)

func IsAfter(a, b time.Time) bool {
	return a.After(b)
}

func IsBefore(a, b time.Time) bool {
	return a.Before(b)
}

func IsSame(a, b time.Time) bool {
	return a.Equal(b)
}

// HasAfter reports whether the unit field of a is greater than the one of b.
// Fields are compared on their own: for Month, December of any two years is
// the same month. For Week the Mondays starting each date's week are compared.
func HasAfter(a, b time.Time, unit Unit) (bool, error) {
	cmp, err := compareField(a, b, unit)
	return cmp > 0, err
}

// HasBefore is the mirror of HasAfter.
func HasBefore(a, b time.Time, unit Unit) (bool, error) {
	cmp, err := compareField(a, b, unit)
	return cmp < 0, err
}

// HasSame reports whether a and b share the unit field value.
func HasSame(a, b time.Time, unit Unit) (bool, error) {
	cmp, err := compareField(a, b, unit)
	return cmp == 0 && err == nil, err
}

func compareField(a, b time.Time, unit Unit) (int, error) {
	if unit == Week {
		return compareInts(int(calendar.WeekStart(a)), int(calendar.WeekStart(b))), nil
	}
	field, ok := fields[unit]
	if !ok {
		return 0, UnknownUnitError{Unit: unit}
	}
	return compareInts(field(a), field(b)), nil
}

var fields = map[Unit]func(time.Time) int{
	Year:   time.Time.Year,
	Month:  func(t time.Time) int { return int(t.Month()) },
	Day:    time.Time.Day,
	Hour:   time.Time.Hour,
	Minute: time.Time.Minute,
	Second: time.Time.Second,
}

func compareInts(x, y int) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}
