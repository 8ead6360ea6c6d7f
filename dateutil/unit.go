package dateutil

import (
	"errors"
	"fmt"
	"strings"
)

// Unit identifies one of the calendar or clock units the package works with.
type Unit string

const (
	Second Unit = "second"
	Minute Unit = "minute"
	Hour   Unit = "hour"
	Day    Unit = "day"
	Week   Unit = "week"
	Month  Unit = "month"
	Year   Unit = "year"
)

var ErrUnknownUnit = errors.New("unknown unit")

// UnknownUnitError is returned whenever a Unit outside the seven supported
// values reaches a function that dispatches on it.
type UnknownUnitError struct {
	Unit Unit
}

func (e UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q", string(e.Unit))
}

func (e UnknownUnitError) Is(target error) bool {
	return target == ErrUnknownUnit
}

var units = []Unit{Second, Minute, Hour, Day, Week, Month, Year}

// Units returns the supported units, from the smallest to the largest.
func Units() []Unit {
	return append([]Unit(nil), units...)
}

func (u Unit) Valid() bool {
	switch u {
	case Second, Minute, Hour, Day, Week, Month, Year:
		return true
	}
	return false
}

func (u Unit) String() string {
	return string(u)
}

// ParseUnit accepts singular or plural unit names in any case, e.g. "Days".
func ParseUnit(s string) (Unit, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	u := Unit(name)
	if u.Valid() {
		return u, nil
	}
	if singular := Unit(strings.TrimSuffix(name, "s")); singular != u && singular.Valid() {
		return singular, nil
	}
	return "", UnknownUnitError{Unit: Unit(s)}
}

// UnmarshalText lets Unit be decoded from configuration files and command
// line flags with the same rules as ParseUnit.
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
