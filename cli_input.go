package main

import (
	"github.com/alecthomas/kong"

	"github.com/svera/datekit/dateutil"
)

// CLIInput stores all commands, flags and arguments that can be passed to the application
type CLIInput struct {
	Version kong.VersionFlag `short:"v" name:"version" help:"Get version number."`
	// Locale is the BCP 47 tag used to format dates and relative durations
	Locale string `short:"l" name:"locale" default:"${locale}" help:"BCP 47 locale used when formatting, e. g. fr-FR. Defaults to DATEKIT_LOCALE or en-US."`
	// Layout is the Go time layout used to print instants
	Layout string `name:"layout" default:"${layout}" help:"Go time layout used to print instants. Defaults to DATEKIT_LAYOUT or RFC 3339."`

	Format   FormatCmd   `cmd:"" help:"Format an instant using the conventions of a locale."`
	Duration DurationCmd `cmd:"" help:"Describe a relative amount of time, e. g. \"in 3 days\"."`
	Between  BetweenCmd  `cmd:"" help:"Measure the span between two instants."`
	Add      AddCmd      `cmd:"" help:"Add an amount of units to an instant."`
	Subtract SubtractCmd `cmd:"" help:"Subtract an amount of units from an instant."`
	Compare  CompareCmd  `cmd:"" help:"Compare two instants, optionally on a single unit."`
	Locales  LocalesCmd  `cmd:"" help:"List the known locale identifiers."`
}

// Instants are given as RFC 3339 strings or the word "now".

type FormatCmd struct {
	Instant   string         `arg:"" help:"Instant to format."`
	DateStyle dateutil.Style `name:"date-style" help:"Date style: full, long, medium or short."`
	TimeStyle dateutil.Style `name:"time-style" help:"Time style: full, long, medium or short."`
	Pattern   string         `short:"p" name:"pattern" help:"Go time layout; month and weekday names are translated."`
}

type DurationCmd struct {
	Value float64       `arg:"" help:"Amount of units, negative values point to the past (pass them after --)."`
	Unit  dateutil.Unit `arg:"" help:"One of second, minute, hour, day, week, month or year."`
	Auto  bool          `short:"a" name:"auto" help:"Use words such as \"tomorrow\" when possible."`
	Parts bool          `name:"parts" help:"Print each part of the phrase on its own line."`
}

type BetweenCmd struct {
	From string        `arg:"" help:"Start of the span."`
	To   string        `arg:"" help:"End of the span."`
	Unit dateutil.Unit `short:"u" name:"unit" default:"day" help:"Unit the span is measured in."`
	ISO  bool          `name:"iso" help:"Print the span as an ISO 8601 period instead."`
}

type AddCmd struct {
	Instant string        `arg:"" help:"Instant to shift."`
	Amount  float64       `arg:"" help:"Amount of units. Only seconds and weeks keep decimals."`
	Unit    dateutil.Unit `arg:"" help:"One of second, minute, hour, day, week, month or year."`
}

type SubtractCmd struct {
	Instant string        `arg:"" help:"Instant to shift."`
	Amount  float64       `arg:"" help:"Amount of units. Only seconds and weeks keep decimals."`
	Unit    dateutil.Unit `arg:"" help:"One of second, minute, hour, day, week, month or year."`
}

type CompareCmd struct {
	A    string        `arg:"" help:"First instant."`
	B    string        `arg:"" help:"Second instant."`
	Unit dateutil.Unit `short:"u" name:"unit" help:"Compare only this unit of both instants."`
}

type LocalesCmd struct{}
