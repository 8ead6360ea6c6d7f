package dateutil

import (
	"math"
	"time"
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
	msPerWeek   = 7 * msPerDay
)

// betweenFuncs is filled once at package initialization and only read afterwards.
var betweenFuncs = map[Unit]func(a, b time.Time) float64{
	Second: SecondsBetween,
	Minute: MinutesBetween,
	Hour:   HoursBetween,
	Day:    DaysBetween,
	Week:   WeeksBetween,
	Month: func(a, b time.Time) float64 {
		return float64(MonthsBetween(a, b))
	},
	Year: func(a, b time.Time) float64 {
		return float64(YearsBetween(a, b))
	},
}

// CalculateDuration returns the magnitude of the span between first and second
// expressed in unit, rounded to two decimal places. The order of the
// arguments does not matter.
func CalculateDuration(first, second time.Time, unit Unit) (float64, error) {
	between, ok := betweenFuncs[unit]
	if !ok {
		return 0, UnknownUnitError{Unit: unit}
	}
	return roundTo2(between(first, second)), nil
}

// DurationFromNow measures the span from the current time to target.
func DurationFromNow(target time.Time, unit Unit) (float64, error) {
	return CalculateDuration(time.Now(), target, unit)
}

// DurationToNow measures the span from origin to the current time.
func DurationToNow(origin time.Time, unit Unit) (float64, error) {
	return CalculateDuration(origin, time.Now(), unit)
}

func SecondsBetween(a, b time.Time) float64 {
	return math.Abs(msDelta(a, b) / msPerSecond)
}

func MinutesBetween(a, b time.Time) float64 {
	return math.Abs(msDelta(a, b) / msPerMinute)
}

func HoursBetween(a, b time.Time) float64 {
	return math.Abs(msDelta(a, b) / msPerHour)
}

func DaysBetween(a, b time.Time) float64 {
	return math.Abs(msDelta(a, b) / msPerDay)
}

// WeeksBetween counts whole weeks of elapsed time, rounding to the nearest one.
func WeeksBetween(a, b time.Time) float64 {
	return math.Round(math.Abs(msDelta(a, b) / msPerWeek))
}

// MonthsBetween only looks at the year and month fields, so January 31st and
// February 1st are one month apart.
func MonthsBetween(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	return abs(months)
}

// YearsBetween only looks at the year field.
func YearsBetween(a, b time.Time) int {
	return abs(b.Year() - a.Year())
}

// msDelta works on milliseconds since the epoch, which unlike time.Time.Sub
// does not saturate for spans longer than ~292 years.
func msDelta(a, b time.Time) float64 {
	return float64(b.UnixMilli() - a.UnixMilli())
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
