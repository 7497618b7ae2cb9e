// Package dateutil provides canonical local-date handling. All dates in the
// engine and store are YYYY-MM-DD strings in the local time zone; this package
// is the only place that format is parsed or produced.
package dateutil

import (
	"fmt"
	"time"
)

// Layout is the canonical date format.
const Layout = "2006-01-02"

// Format renders t as a local YYYY-MM-DD date string.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse parses a YYYY-MM-DD string into a local-midnight time.Time.
func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}

// AddDays returns date shifted by n calendar days (n may be negative).
func AddDays(date string, n int) (string, error) {
	t, err := Parse(date)
	if err != nil {
		return "", err
	}
	return Format(t.AddDate(0, 0, n)), nil
}

// LastNDays returns the n dates ending at ref, newest first (ref itself is
// element 0).
func LastNDays(ref string, n int) ([]string, error) {
	t, err := Parse(ref)
	if err != nil {
		return nil, err
	}
	dates := make([]string, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, Format(t.AddDate(0, 0, -i)))
	}
	return dates, nil
}

// Range returns every date from start to end inclusive, oldest first.
// Returns an empty slice if start is after end.
func Range(start, end string) ([]string, error) {
	s, err := Parse(start)
	if err != nil {
		return nil, err
	}
	e, err := Parse(end)
	if err != nil {
		return nil, err
	}
	var dates []string
	for cur := s; !cur.After(e); cur = cur.AddDate(0, 0, 1) {
		dates = append(dates, Format(cur))
	}
	return dates, nil
}

// DaysBetween returns the number of calendar days from a to b. Negative when
// b is before a.
func DaysBetween(a, b string) (int, error) {
	ta, err := Parse(a)
	if err != nil {
		return 0, err
	}
	tb, err := Parse(b)
	if err != nil {
		return 0, err
	}
	// Re-anchor both midnights in UTC so DST shifts cannot skew the count.
	ua := time.Date(ta.Year(), ta.Month(), ta.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(tb.Year(), tb.Month(), tb.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24), nil
}
