package engine

import (
	"github.com/alexanderramin/ember/internal/dateutil"
	"github.com/alexanderramin/ember/internal/domain"
)

// Streak counts consecutive check-in days walking backward from refDate.
// The streak is alive only if refDate itself has a check-in: a gap on refDate
// yields 0 regardless of earlier unbroken runs. A malformed refDate also
// yields 0.
func Streak(checkIns []domain.CheckIn, refDate string) int {
	if len(checkIns) == 0 {
		return 0
	}

	dates := make(map[string]bool, len(checkIns))
	for _, ci := range checkIns {
		dates[ci.Date] = true
	}

	cur, err := dateutil.Parse(refDate)
	if err != nil {
		return 0
	}

	streak := 0
	for dates[dateutil.Format(cur)] {
		streak++
		cur = cur.AddDate(0, 0, -1)
	}
	return streak
}

// LastCheckInDate returns the most recent check-in date, or "" for an empty
// history.
func LastCheckInDate(checkIns []domain.CheckIn) string {
	last := ""
	for _, ci := range checkIns {
		if ci.Date > last {
			last = ci.Date
		}
	}
	return last
}

// HasCheckedIn reports whether a check-in exists for the given date.
func HasCheckedIn(checkIns []domain.CheckIn, date string) bool {
	for _, ci := range checkIns {
		if ci.Date == date {
			return true
		}
	}
	return false
}

// DaysSinceLastCheckIn returns the number of days from the most recent
// check-in to refDate, or -1 when there is no history.
func DaysSinceLastCheckIn(checkIns []domain.CheckIn, refDate string) int {
	last := LastCheckInDate(checkIns)
	if last == "" {
		return -1
	}
	days, err := dateutil.DaysBetween(last, refDate)
	if err != nil {
		return -1
	}
	return days
}
