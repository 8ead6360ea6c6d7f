package dateutil_test

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/svera/datekit/dateutil"
)

func TestFormatDuration(t *testing.T) {
	var cases = []struct {
		name     string
		value    float64
		unit     dateutil.Unit
		opts     dateutil.DurationOptions
		expected string
	}{
		{"Future months in the default locale", 3, dateutil.Month, dateutil.DurationOptions{}, "in 3 months"},
		{"Past days", -2, dateutil.Day, dateutil.DurationOptions{Locale: "en-US"}, "2 days ago"},
		{"Singular form", 1, dateutil.Day, dateutil.DurationOptions{}, "in 1 day"},
		{"Singular past form", -1, dateutil.Year, dateutil.DurationOptions{}, "1 year ago"},
		{"Zero is in the future", 0, dateutil.Second, dateutil.DurationOptions{}, "in 0 seconds"},
		{"Auto numeric uses words", 1, dateutil.Day, dateutil.DurationOptions{Numeric: dateutil.NumericAuto}, "tomorrow"},
		{"Auto numeric in the past", -1, dateutil.Week, dateutil.DurationOptions{Numeric: dateutil.NumericAuto}, "last week"},
		{"Auto numeric falls back to numbers", 5, dateutil.Day, dateutil.DurationOptions{Numeric: dateutil.NumericAuto}, "in 5 days"},
		{"Spanish", 2, dateutil.Day, dateutil.DurationOptions{Locale: "es-ES"}, "dentro de 2 días"},
		{"Spanish auto", -1, dateutil.Day, dateutil.DurationOptions{Locale: "es", Numeric: dateutil.NumericAuto}, "ayer"},
		{"French past hours", -3, dateutil.Hour, dateutil.DurationOptions{Locale: "fr-FR"}, "il y a 3 heures"},
		{"German future minutes", 10, dateutil.Minute, dateutil.DurationOptions{Locale: "de-DE"}, "in 10 Minuten"},
		{"Locale without translations falls back to english", 3, dateutil.Day, dateutil.DurationOptions{Locale: "ja-JP"}, "in 3 days"},
		{"Unknown language falls back to english", -3, dateutil.Day, dateutil.DurationOptions{Locale: "xx"}, "3 days ago"},
		{"Fractional values", 1.5, dateutil.Day, dateutil.DurationOptions{}, "in 1.5 days"},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			got, err := dateutil.FormatDuration(tcase.value, tcase.unit, tcase.opts)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tcase.expected {
				t.Errorf("expected %q, got %q", tcase.expected, got)
			}
		})
	}
}

func TestFormatDurationToParts(t *testing.T) {
	got, err := dateutil.FormatDurationToParts(3, dateutil.Month, dateutil.DurationOptions{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := []dateutil.Part{
		{Type: dateutil.PartLiteral, Value: "in "},
		{Type: dateutil.PartInteger, Value: "3"},
		{Type: dateutil.PartLiteral, Value: " months"},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}

	got, _ = dateutil.FormatDurationToParts(-2, dateutil.Day, dateutil.DurationOptions{})
	expected = []dateutil.Part{
		{Type: dateutil.PartInteger, Value: "2"},
		{Type: dateutil.PartLiteral, Value: " days ago"},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestFormatDurationToPartsWithDecimals(t *testing.T) {
	var cases = []struct {
		name     string
		value    float64
		locale   string
		expected []dateutil.Part
	}{
		{"English decimal point", 1.5, "en", []dateutil.Part{
			{Type: dateutil.PartLiteral, Value: "in "},
			{Type: dateutil.PartInteger, Value: "1"},
			{Type: dateutil.PartDecimal, Value: "."},
			{Type: dateutil.PartFraction, Value: "5"},
			{Type: dateutil.PartLiteral, Value: " days"},
		}},
		{"Spanish decimal comma", -2.25, "es", []dateutil.Part{
			{Type: dateutil.PartLiteral, Value: "hace "},
			{Type: dateutil.PartInteger, Value: "2"},
			{Type: dateutil.PartDecimal, Value: ","},
			{Type: dateutil.PartFraction, Value: "25"},
			{Type: dateutil.PartLiteral, Value: " días"},
		}},
		{"Below one", 0.5, "en", []dateutil.Part{
			{Type: dateutil.PartLiteral, Value: "in "},
			{Type: dateutil.PartInteger, Value: "0"},
			{Type: dateutil.PartDecimal, Value: "."},
			{Type: dateutil.PartFraction, Value: "5"},
			{Type: dateutil.PartLiteral, Value: " days"},
		}},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			got, err := dateutil.FormatDurationToParts(tcase.value, dateutil.Day, dateutil.DurationOptions{Locale: tcase.locale})
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tcase.expected) {
				t.Errorf("expected %v, got %v", tcase.expected, got)
			}
		})
	}
}

func TestFormatDurationRejectsNonFiniteValues(t *testing.T) {
	for _, value := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		got, err := dateutil.FormatDuration(value, dateutil.Day, dateutil.DurationOptions{})
		if !errors.Is(err, dateutil.ErrInvalidValue) {
			t.Errorf("expected invalid value error for %v, got %v", value, err)
		}
		if got != "" {
			t.Errorf("expected no phrase for %v, got %q", value, got)
		}
	}
}

func TestFormatDurationErrors(t *testing.T) {
	if _, err := dateutil.FormatDuration(1, dateutil.Unit("century"), dateutil.DurationOptions{}); !errors.Is(err, dateutil.ErrUnknownUnit) {
		t.Errorf("expected unknown unit error, got %v", err)
	}
	if _, err := dateutil.FormatDuration(1, dateutil.Day, dateutil.DurationOptions{Locale: "not a locale!"}); err == nil {
		t.Error("expected malformed locale to fail")
	}
}

func TestFormatDate(t *testing.T) {
	sunday := time.Date(2023, 1, 1, 15, 4, 0, 0, time.UTC)

	var cases = []struct {
		name     string
		opts     dateutil.DateOptions
		contains []string
	}{
		{"Explicit layout in english", dateutil.DateOptions{Layout: "Monday, 2 January 2006"}, []string{"Sunday, 1 January 2023"}},
		{"Explicit layout in french", dateutil.DateOptions{Locale: "fr-FR", Layout: "Monday 2 January 2006"}, []string{"dimanche", "janvier", "2023"}},
		{"Explicit layout in spanish", dateutil.DateOptions{Locale: "es-ES", Layout: "January"}, []string{"enero"}},
		{"Full date style", dateutil.DateOptions{DateStyle: dateutil.StyleFull}, []string{"Sunday", "January", "2023"}},
		{"Long date style", dateutil.DateOptions{DateStyle: dateutil.StyleLong}, []string{"January", "2023"}},
		{"Short time style uses a twelve hour clock in the US", dateutil.DateOptions{TimeStyle: dateutil.StyleShort}, []string{"3:04 PM"}},
		{"Short time style uses a 24 hour clock in Germany", dateutil.DateOptions{Locale: "de-DE", TimeStyle: dateutil.StyleShort}, []string{"15:04"}},
		{"Date and time styles are combined", dateutil.DateOptions{Locale: "de-DE", DateStyle: dateutil.StyleLong, TimeStyle: dateutil.StyleMedium}, []string{"Januar", "2023", "15:04:00"}},
		{"Unsupported locale falls back to english", dateutil.DateOptions{Locale: "haw-US", Layout: "January"}, []string{"January"}},
		{"Unknown language falls back to english", dateutil.DateOptions{Locale: "xx", Layout: "January"}, []string{"January"}},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			got, err := dateutil.FormatDate(sunday, tcase.opts)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			for _, want := range tcase.contains {
				if !strings.Contains(strings.ToLower(got), strings.ToLower(want)) {
					t.Errorf("expected %q to contain %q", got, want)
				}
			}
		})
	}
}

func TestFormatDateDefaultsToNumericDate(t *testing.T) {
	var cases = []struct {
		locale   string
		expected string
	}{
		{"", "1/15/2023"},
		{"en-US", "1/15/2023"},
		{"de-DE", "15.01.2023"},
		{"fr-FR", "15/01/2023"},
	}

	for _, tcase := range cases {
		t.Run(tcase.locale, func(t *testing.T) {
			got, err := dateutil.FormatDate(time.Date(2023, 1, 15, 15, 4, 0, 0, time.UTC), dateutil.DateOptions{Locale: tcase.locale})
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tcase.expected {
				t.Errorf("expected %q, got %q", tcase.expected, got)
			}
		})
	}
}

func TestFormatDateShortStyleKeepsLocaleLayout(t *testing.T) {
	got, err := dateutil.FormatDate(time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC), dateutil.DateOptions{DateStyle: dateutil.StyleShort})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "1/15/23" {
		t.Errorf("expected 1/15/23, got %q", got)
	}
}

func TestMalformedLocales(t *testing.T) {
	for _, locale := range []string{"en_US", "en_US!!", "not a locale!", "e"} {
		t.Run(locale, func(t *testing.T) {
			if _, err := dateutil.FormatDate(time.Now(), dateutil.DateOptions{Locale: locale}); err == nil {
				t.Error("expected FormatDate to fail")
			}
			if _, err := dateutil.FormatDuration(1, dateutil.Day, dateutil.DurationOptions{Locale: locale}); err == nil {
				t.Error("expected FormatDuration to fail")
			}
		})
	}
	_, err := dateutil.FormatDate(time.Now(), dateutil.DateOptions{Locale: "en_US"})
	if !errors.Is(err, dateutil.ErrMalformedLocale) {
		t.Errorf("expected malformed locale error, got %v", err)
	}
}

func TestFormatPeriod(t *testing.T) {
	start := d(2023, 1, 1)
	end := time.Date(2023, 1, 1, 1, 30, 0, 0, time.UTC)

	if got := dateutil.FormatPeriod(start, end); got != "PT1H30M" {
		t.Errorf("expected PT1H30M, got %s", got)
	}
	if got := dateutil.FormatPeriod(end, start); got != "-PT1H30M" {
		t.Errorf("expected -PT1H30M, got %s", got)
	}
}

func TestFormatDateUnknownStyle(t *testing.T) {
	_, err := dateutil.FormatDate(time.Now(), dateutil.DateOptions{DateStyle: dateutil.Style("huge")})
	if !errors.Is(err, dateutil.ErrUnknownStyle) {
		t.Errorf("expected unknown style error, got %v", err)
	}
}
