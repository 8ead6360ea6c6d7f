package dateutil

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/goodsign/monday"
	"github.com/rickb777/period"
	"golang.org/x/text/language"

	"github.com/svera/datekit/internal/i18n"
)

const DefaultLocale = "en-US"

// Style selects one of the predefined date or time layouts of a locale.
type Style string

const (
	StyleNone   Style = ""
	StyleFull   Style = "full"
	StyleLong   Style = "long"
	StyleMedium Style = "medium"
	StyleShort  Style = "short"
)

var (
	ErrUnknownStyle    = errors.New("unknown style")
	ErrInvalidValue    = errors.New("invalid value")
	ErrMalformedLocale = errors.New("malformed locale")
)

func (s Style) Valid() bool {
	switch s {
	case StyleNone, StyleFull, StyleLong, StyleMedium, StyleShort:
		return true
	}
	return false
}

// Numeric controls whether FormatDuration may use words such as "tomorrow"
// instead of a number.
type Numeric string

const (
	NumericAlways Numeric = "always"
	NumericAuto   Numeric = "auto"
)

type DateOptions struct {
	Locale    string
	DateStyle Style
	TimeStyle Style
	// Layout, when set, is a time.Time layout used instead of the styles.
	// Month and weekday names are still translated.
	Layout string
}

type DurationOptions struct {
	Locale  string
	Numeric Numeric
}

// PartType classifies the pieces of a formatted relative phrase. A number
// with decimals is split into its integer, decimal separator and fraction.
type PartType string

const (
	PartLiteral  PartType = "literal"
	PartInteger  PartType = "integer"
	PartDecimal  PartType = "decimal"
	PartFraction PartType = "fraction"
)

type Part struct {
	Type  PartType
	Value string
}

// FormatDate renders t in its own location using the conventions of the
// requested locale. Malformed locale tags are reported as errors; well formed
// but unknown or unsupported ones fall back to en-US.
func FormatDate(t time.Time, opts DateOptions) (string, error) {
	tag, err := parseLocale(opts.Locale)
	if err != nil {
		return "", err
	}
	for _, style := range []Style{opts.DateStyle, opts.TimeStyle} {
		if !style.Valid() {
			return "", fmt.Errorf("%w %q", ErrUnknownStyle, string(style))
		}
	}
	loc := mondayLocale(tag)
	return monday.Format(t, dateLayout(loc, opts), loc), nil
}

// FormatDuration renders a relative time phrase such as "in 3 months" or
// "2 days ago". Negative values point to the past.
func FormatDuration(value float64, unit Unit, opts DurationOptions) (string, error) {
	parts, err := FormatDurationToParts(value, unit, opts)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(part.Value)
	}
	return b.String(), nil
}

// FormatDurationToParts is like FormatDuration but returns the phrase split
// into its literal and numeric pieces, in order.
func FormatDurationToParts(value float64, unit Unit, opts DurationOptions) ([]Part, error) {
	if !unit.Valid() {
		return nil, UnknownUnitError{Unit: unit}
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, fmt.Errorf("%w %v", ErrInvalidValue, value)
	}
	tag, err := parseLocale(opts.Locale)
	if err != nil {
		return nil, err
	}
	catalog, err := relativePrinters()
	if err != nil {
		return nil, err
	}
	p := catalog.For(tag)

	if opts.Numeric == NumericAuto && value == math.Trunc(value) && math.Abs(value) <= 1 {
		key := i18n.AutoKey(string(unit), int(value))
		if text := p.Sprintf(key); text != key {
			return []Part{{Type: PartLiteral, Value: text}}, nil
		}
	}

	direction := i18n.Future
	if math.Signbit(value) {
		direction = i18n.Past
	}
	magnitude := math.Abs(value)
	var number any = magnitude
	var integer string
	if magnitude < math.MaxInt64 {
		whole := int64(magnitude)
		if float64(whole) == magnitude {
			number = whole
		}
		integer = p.Sprintf("%v", whole)
	}
	phrase := p.Sprintf(i18n.Key(string(unit), direction), number)
	return splitPhrase(phrase, p.Sprintf("%v", number), integer), nil
}

// FormatPeriod returns the ISO-8601 period between a and b, e.g. "PT1H30M".
// It is negative when b is before a.
func FormatPeriod(a, b time.Time) string {
	return period.Between(a, b).Normalise(true).String()
}

// parseLocale rejects tags that are not well formed BCP 47, including the
// "en_US" separator the tag parser would otherwise tolerate. Well formed tags
// with unknown subtags resolve to DefaultLocale.
func parseLocale(locale string) (language.Tag, error) {
	if locale == "" {
		return language.MustParse(DefaultLocale), nil
	}
	if strings.Contains(locale, "_") {
		return language.Und, fmt.Errorf("%w %q: subtags must be separated by '-'", ErrMalformedLocale, locale)
	}
	tag, err := language.Parse(locale)
	var unknown language.ValueError
	if errors.As(err, &unknown) {
		return language.MustParse(DefaultLocale), nil
	}
	return tag, err
}

func splitPhrase(phrase, number, integer string) []Part {
	i := strings.Index(phrase, number)
	if number == "" || i < 0 {
		return []Part{{Type: PartLiteral, Value: phrase}}
	}
	var parts []Part
	if i > 0 {
		parts = append(parts, Part{Type: PartLiteral, Value: phrase[:i]})
	}
	parts = append(parts, numberParts(number, integer)...)
	if rest := phrase[i+len(number):]; rest != "" {
		parts = append(parts, Part{Type: PartLiteral, Value: rest})
	}
	return parts
}

// numberParts splits a localized number such as "1,5" using its already
// localized integer part "1".
func numberParts(number, integer string) []Part {
	if integer == "" || len(number) <= len(integer) || !strings.HasPrefix(number, integer) {
		return []Part{{Type: PartInteger, Value: number}}
	}
	rest := number[len(integer):]
	_, size := utf8.DecodeRuneInString(rest)
	parts := []Part{
		{Type: PartInteger, Value: integer},
		{Type: PartDecimal, Value: rest[:size]},
	}
	if fraction := rest[size:]; fraction != "" {
		parts = append(parts, Part{Type: PartFraction, Value: fraction})
	}
	return parts
}

var (
	printersOnce sync.Once
	printers     *i18n.Printers
	printersErr  error
)

func relativePrinters() (*i18n.Printers, error) {
	printersOnce.Do(func() {
		printers, printersErr = i18n.NewPrinters(i18n.Embedded, "en")
	})
	return printers, printersErr
}
