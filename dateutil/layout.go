package dateutil

import (
	"strings"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

var (
	mondayLocales = monday.ListLocales()
	localeMatcher = language.NewMatcher(mondayTags(mondayLocales))
)

// Locales whose clock is written with AM/PM markers.
var twelveHourClock = map[monday.Locale]bool{
	monday.LocaleEnUS: true,
}

func mondayTags(locales []monday.Locale) []language.Tag {
	tags := make([]language.Tag, len(locales))
	for i, l := range locales {
		tags[i] = language.Make(strings.ReplaceAll(string(l), "_", "-"))
	}
	return tags
}

func mondayLocale(tag language.Tag) monday.Locale {
	_, i, confidence := localeMatcher.Match(tag)
	if confidence == language.No {
		return monday.LocaleEnUS
	}
	return mondayLocales[i]
}

func dateLayout(loc monday.Locale, opts DateOptions) string {
	if opts.Layout != "" {
		return opts.Layout
	}
	if opts.DateStyle == StyleNone && opts.TimeStyle == StyleNone {
		return numericDateLayout(loc)
	}
	var layouts []string
	if opts.DateStyle != StyleNone {
		layouts = append(layouts, dateStyleLayout(loc, opts.DateStyle))
	}
	if opts.TimeStyle != StyleNone {
		layouts = append(layouts, timeStyleLayout(loc, opts.TimeStyle))
	}
	return strings.Join(layouts, ", ")
}

// numericDateLayout is the short date of loc with the year always written
// in full, e.g. "1/2/2006" for en-US.
func numericDateLayout(loc monday.Locale) string {
	layout := dateStyleLayout(loc, StyleShort)
	if strings.Contains(layout, "2006") {
		return layout
	}
	return strings.Replace(layout, "06", "2006", 1)
}

func dateStyleLayout(loc monday.Locale, style Style) string {
	byLocale := monday.ShortFormatsByLocale
	switch style {
	case StyleFull:
		byLocale = monday.FullFormatsByLocale
	case StyleLong:
		byLocale = monday.LongFormatsByLocale
	case StyleMedium:
		byLocale = monday.MediumFormatsByLocale
	}
	if layout, ok := byLocale[loc]; ok {
		return layout
	}
	return byLocale[monday.LocaleEnUS]
}

func timeStyleLayout(loc monday.Locale, style Style) string {
	var layout string
	switch style {
	case StyleFull, StyleLong:
		layout = "15:04:05 MST"
	case StyleMedium:
		layout = "15:04:05"
	default:
		layout = "15:04"
	}
	if twelveHourClock[loc] {
		layout = strings.Replace(layout, "15:04", "3:04", 1)
		layout = strings.Replace(layout, "MST", "PM MST", 1)
		if !strings.Contains(layout, "PM") {
			layout += " PM"
		}
	}
	return layout
}
