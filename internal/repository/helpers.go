package repository

import "time"

// timeLayout is the storage format for timestamps (TEXT columns).
const timeLayout = time.RFC3339Nano

// formatTime renders a timestamp for SQLite storage.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime parses a stored timestamp, returning the zero time on failure so
// a corrupt row degrades instead of failing the whole read.
func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
