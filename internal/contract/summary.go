// Package contract defines the request/response shapes exchanged between the
// CLI and the service layer.
package contract

import "github.com/alexanderramin/ember/internal/domain"

// SummaryRequest asks for the weekly report as of a reference date.
// Date must be YYYY-MM-DD; callers resolve "today" before building the
// request so the computation stays reproducible.
type SummaryRequest struct {
	Date string
}

// SummaryResponse is the read-model the UI renders: the weekly summary plus
// the streak, red-flag state, and check-in bookkeeping for the reference date.
type SummaryResponse struct {
	Summary        domain.WeeklySummary
	Streak         int
	RedFlag        domain.RedFlagState
	CheckedInToday bool
	// DaysSinceLastCheckIn is -1 when there is no history at all.
	DaysSinceLastCheckIn int
}
