package schedule

import (
	"strings"
	"time"
)

// startLayouts are the accepted start_datetime formats. All of them carry a
// zone designator, so every parsed value is an absolute instant.
var startLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
}

// ParseStart parses an ISO-8601 start_datetime ("2025-05-12T22:30:00Z",
// "2025-05-12T19:30:00.000-03:00", "2025-05-12T19:30-03:00", ...).
// The returned time keeps the offset written in the value; compare instants
// with Before/Equal.
// Returns a *DateParseError if the value has no zone designator or is not a
// timestamp at all.
func ParseStart(value string) (time.Time, error) {
	text := strings.TrimSpace(value)

	var firstErr error
	for _, layout := range startLayouts {
		t, err := time.Parse(layout, text)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}

	return time.Time{}, &DateParseError{Value: value, Err: firstErr}
}
