package domain

// Metrics holds trailing-window averages of the four raw metrics and the
// burnout score. Metric averages are rounded to one decimal, the score
// average to the nearest integer.
type Metrics struct {
	AvgSleep        float64
	AvgStress       float64
	AvgWorkload     float64
	AvgMood         float64
	AvgBurnoutScore int
}

// WeeklySummary is the derived per-user report. It is never persisted;
// every read recomputes it from the check-in history.
type WeeklySummary struct {
	DeviceUserID    string
	WeekStartDate   string // YYYY-MM-DD, six days before the reference date
	Metrics         Metrics
	Trend           Trend
	Recommendations []Recommendation
}

// RedFlagState is the transient result of red-flag evaluation. Reason is set
// only when Triggered, and names the first matching rule.
type RedFlagState struct {
	Triggered bool
	Reason    RedFlagReason
}
