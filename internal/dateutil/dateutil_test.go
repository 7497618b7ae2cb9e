package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatParse_RoundTrip(t *testing.T) {
	day := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)
	s := Format(day)
	assert.Equal(t, "2025-03-15", s)

	parsed, err := Parse(s)
	require.NoError(t, err)
	assert.True(t, day.Equal(parsed))
}

func TestParse_Invalid(t *testing.T) {
	for _, s := range []string{"", "15-03-2025", "2025/03/15", "yesterday"} {
		_, err := Parse(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2025-03-15", -1)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-14", got)

	got, err = AddDays("2025-02-28", 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", got)

	// 2024 is a leap year.
	got, err = AddDays("2024-02-28", 1)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", got)
}

func TestLastNDays(t *testing.T) {
	dates, err := LastNDays("2025-03-03", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-03", "2025-03-02", "2025-03-01"}, dates)
}

func TestRange(t *testing.T) {
	dates, err := Range("2025-02-27", "2025-03-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-02-27", "2025-02-28", "2025-03-01", "2025-03-02"}, dates)

	empty, err := Range("2025-03-02", "2025-03-01")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDaysBetween(t *testing.T) {
	days, err := DaysBetween("2025-03-01", "2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, 14, days)

	days, err = DaysBetween("2025-03-15", "2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, -14, days)

	days, err = DaysBetween("2025-03-15", "2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, 0, days)
}
