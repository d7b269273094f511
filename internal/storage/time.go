package storage

import (
	"fmt"
	"time"
)

// timeLayout is RFC3339 with a fixed-width fractional second. The width
// matters: rows are ordered with SQL ORDER BY on the text column, and only
// fixed-width timestamps sort lexicographically in chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// formatTime renders a timestamp the way every repo stores it.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime reads a stored timestamp back. Accepts both whole-second and
// fractional forms.
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp %q: %w", s, err)
	}
	return t, nil
}
