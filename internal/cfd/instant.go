package cfd

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrBadInstant marks a timestamp that could not be normalized.
var ErrBadInstant = errors.New("unparseable instant")

var instantLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseInstant normalizes an ISO-8601 timestamp to a UTC instant. It accepts
// a trailing Z, an explicit offset, or a naive form, which is assumed to be
// UTC. This is the single normalization point for every timestamp entering
// the engine.
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp: %w", ErrBadInstant)
	}
	for _, layout := range instantLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("timestamp %q: %w", s, ErrBadInstant)
}
