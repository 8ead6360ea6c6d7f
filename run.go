package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/svera/datekit/dateutil"
	"github.com/svera/datekit/locale"
)

// runContext is bound to every command's Run method.
type runContext struct {
	out    io.Writer
	locale string
	layout string
}

func (c *FormatCmd) Run(rc *runContext) error {
	t, err := parseInstant(c.Instant)
	if err != nil {
		return err
	}
	formatted, err := dateutil.FormatDate(t, dateutil.DateOptions{
		Locale:    rc.locale,
		DateStyle: c.DateStyle,
		TimeStyle: c.TimeStyle,
		Layout:    c.Pattern,
	})
	if err != nil {
		return fmt.Errorf("formatting %s: %w", c.Instant, err)
	}
	_, err = fmt.Fprintln(rc.out, formatted)
	return err
}

func (c *DurationCmd) Run(rc *runContext) error {
	opts := dateutil.DurationOptions{Locale: rc.locale, Numeric: dateutil.NumericAlways}
	if c.Auto {
		opts.Numeric = dateutil.NumericAuto
	}
	parts, err := dateutil.FormatDurationToParts(c.Value, c.Unit, opts)
	if err != nil {
		return err
	}
	if !c.Parts {
		var phrase strings.Builder
		for _, part := range parts {
			phrase.WriteString(part.Value)
		}
		_, err = fmt.Fprintln(rc.out, phrase.String())
		return err
	}
	for _, part := range parts {
		if _, err = fmt.Fprintf(rc.out, "%s\t%q\n", part.Type, part.Value); err != nil {
			return err
		}
	}
	return nil
}

func (c *BetweenCmd) Run(rc *runContext) error {
	instants, err := parseInstants(c.From, c.To)
	if err != nil {
		return err
	}
	if c.ISO {
		_, err = fmt.Fprintln(rc.out, dateutil.FormatPeriod(instants[0], instants[1]))
		return err
	}
	span, err := dateutil.CalculateDuration(instants[0], instants[1], c.Unit)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(rc.out, "%v %s\n", span, c.Unit)
	return err
}

func (c *AddCmd) Run(rc *runContext) error {
	return shift(rc, c.Instant, c.Amount, c.Unit)
}

func (c *SubtractCmd) Run(rc *runContext) error {
	return shift(rc, c.Instant, -c.Amount, c.Unit)
}

func shift(rc *runContext, instant string, amount float64, unit dateutil.Unit) error {
	t, err := parseInstant(instant)
	if err != nil {
		return err
	}
	shifted, err := dateutil.Add(t, amount, unit)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(rc.out, shifted.Format(rc.layout))
	return err
}

func (c *CompareCmd) Run(rc *runContext) error {
	instants, err := parseInstants(c.A, c.B)
	if err != nil {
		return err
	}
	a, b := instants[0], instants[1]

	var before, after bool
	if c.Unit == "" {
		before, after = dateutil.IsBefore(a, b), dateutil.IsAfter(a, b)
	} else {
		if before, err = dateutil.HasBefore(a, b, c.Unit); err != nil {
			return err
		}
		if after, err = dateutil.HasAfter(a, b, c.Unit); err != nil {
			return err
		}
	}

	result := "same"
	switch {
	case before:
		result = "before"
	case after:
		result = "after"
	}
	_, err = fmt.Fprintln(rc.out, result)
	return err
}

func (c *LocalesCmd) Run(rc *runContext) error {
	for _, id := range locale.All() {
		if _, err := fmt.Fprintln(rc.out, id); err != nil {
			return err
		}
	}
	return nil
}
