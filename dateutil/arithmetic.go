package dateutil

import (
	"math"
	"time"
)

const (
	day  = 24 * time.Hour
	week = 7 * day
)

// maxShift bounds the whole amount any Add function moves a calendar field
// by, so fields never overflow an int and the result always moves in the
// direction of the amount's sign.
const maxShift = math.MaxInt32

// Seconds and weeks are measured in absolute time and accept fractional
// amounts. The other units change a single calendar or clock field, take
// whole amounts and let time.Date normalize the result, so overflowing values
// roll into the next field: February 30th becomes March 1st or 2nd.

// AddSeconds adds amount seconds of elapsed time. NaN leaves t unchanged.
func AddSeconds(t time.Time, amount float64) time.Time {
	return addElapsed(t, amount, time.Second)
}

func AddMinutes(t time.Time, amount int) time.Time {
	return shift(t, 0, 0, 0, 0, amount, 0)
}

func AddHours(t time.Time, amount int) time.Time {
	return shift(t, 0, 0, 0, amount, 0, 0)
}

func AddDays(t time.Time, amount int) time.Time {
	return shift(t, 0, 0, amount, 0, 0, 0)
}

// AddWeeks adds exact multiples of 7×24 hours, so half a week is 84 hours.
// Wall clock shifts such as daylight saving transitions are not compensated.
// NaN leaves t unchanged.
func AddWeeks(t time.Time, amount float64) time.Time {
	return addElapsed(t, amount, week)
}

// AddMonths does not clamp the day of month: January 31st plus one month is
// March 2nd or 3rd.
func AddMonths(t time.Time, amount int) time.Time {
	return shift(t, 0, amount, 0, 0, 0, 0)
}

func AddYears(t time.Time, amount int) time.Time {
	return shift(t, amount, 0, 0, 0, 0, 0)
}

func SubtractSeconds(t time.Time, amount float64) time.Time {
	return AddSeconds(t, -amount)
}

func SubtractMinutes(t time.Time, amount int) time.Time {
	return AddMinutes(t, negate(amount))
}

func SubtractHours(t time.Time, amount int) time.Time {
	return AddHours(t, negate(amount))
}

func SubtractDays(t time.Time, amount int) time.Time {
	return AddDays(t, negate(amount))
}

func SubtractWeeks(t time.Time, amount float64) time.Time {
	return AddWeeks(t, -amount)
}

func SubtractMonths(t time.Time, amount int) time.Time {
	return AddMonths(t, negate(amount))
}

func SubtractYears(t time.Time, amount int) time.Time {
	return AddYears(t, negate(amount))
}

// Add dispatches to the Add function matching unit. Amounts for minutes,
// hours, days, months and years are truncated towards zero.
func Add(t time.Time, amount float64, unit Unit) (time.Time, error) {
	switch unit {
	case Second:
		return AddSeconds(t, amount), nil
	case Minute:
		return AddMinutes(t, truncate(amount)), nil
	case Hour:
		return AddHours(t, truncate(amount)), nil
	case Day:
		return AddDays(t, truncate(amount)), nil
	case Week:
		return AddWeeks(t, amount), nil
	case Month:
		return AddMonths(t, truncate(amount)), nil
	case Year:
		return AddYears(t, truncate(amount)), nil
	}
	return time.Time{}, UnknownUnitError{Unit: unit}
}

// Subtract dispatches to the Subtract function matching unit.
func Subtract(t time.Time, amount float64, unit Unit) (time.Time, error) {
	return Add(t, -amount, unit)
}

func shift(t time.Time, years, months, days, hours, minutes, seconds int) time.Time {
	return time.Date(
		t.Year()+clamp(years),
		t.Month()+time.Month(clamp(months)),
		t.Day()+clamp(days),
		t.Hour()+clamp(hours),
		t.Minute()+clamp(minutes),
		t.Second()+clamp(seconds),
		t.Nanosecond(),
		t.Location(),
	)
}

// addElapsed moves t by amount steps of absolute time. Whole steps are turned
// into days on the UTC calendar, where every day lasts 24 hours, so spans
// longer than a time.Duration can hold are still exact.
func addElapsed(t time.Time, amount float64, step time.Duration) time.Time {
	if math.IsNaN(amount) {
		return t
	}
	whole, frac := math.Modf(amount)
	steps := int64(math.Max(-1<<52, math.Min(1<<52, whole)))

	var days int64
	var rest time.Duration
	if step >= day {
		days = steps * int64(step/day)
	} else {
		perDay := int64(day / step)
		days, rest = steps/perDay, time.Duration(steps%perDay)*step
	}
	days = max(-maxShift, min(maxShift, days))

	return t.UTC().
		AddDate(0, 0, int(days)).
		Add(rest + time.Duration(frac*float64(step))).
		In(t.Location())
}

func clamp(n int) int {
	return max(-maxShift, min(maxShift, n))
}

func negate(n int) int {
	if n == math.MinInt {
		return math.MaxInt
	}
	return -n
}

func truncate(amount float64) int {
	if math.IsNaN(amount) {
		return 0
	}
	return int(math.Max(-maxShift, math.Min(maxShift, math.Trunc(amount))))
}
