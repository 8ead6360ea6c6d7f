package main

import (
	"fmt"
	"strings"
	"time"
)

// parseInstant accepts an RFC 3339 string or the word "now".
func parseInstant(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, "now") {
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("'%s' is neither an RFC 3339 instant nor \"now\": %w", value, err)
	}
	return t, nil
}

func parseInstants(values ...string) ([]time.Time, error) {
	instants := make([]time.Time, len(values))
	for i, value := range values {
		t, err := parseInstant(value)
		if err != nil {
			return nil, err
		}
		instants[i] = t
	}
	return instants, nil
}
