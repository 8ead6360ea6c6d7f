package main

import "time"

// Config holds the defaults read from the environment. Command line flags take
// precedence over them.
type Config struct {
	Locale string `env:"DATEKIT_LOCALE" env-default:"en-US" env-description:"Locale used to format dates and durations"`
	Layout string `env:"DATEKIT_LAYOUT" env-default:"2006-01-02T15:04:05Z07:00" env-description:"Layout used to print instants"`
}

func (c Config) layout() string {
	if c.Layout == "" {
		return time.RFC3339
	}
	return c.Layout
}
