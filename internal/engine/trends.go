package engine

import (
	"github.com/alexanderramin/ember/internal/dateutil"
	"github.com/alexanderramin/ember/internal/domain"
)

// A window must contain a full week of records before it contributes to the
// trend; sparser data falls back to stable. A mean shift of at least 5 points
// between the two windows is a directional change.
const (
	trendWindowDays    = 7
	trendMinDataPoints = 7
	trendThreshold     = 5.0
)

// ClassifyTrend compares the mean burnout score of two trailing 7-day
// windows: the current window (refDate-6 .. refDate) and the previous window
// (refDate-13 .. refDate-7). diff = previous mean - current mean, so a
// falling score reads as improvement. Insufficient data in either window
// returns stable, not an error.
func ClassifyTrend(checkIns []domain.CheckIn, refDate string) domain.Trend {
	if len(checkIns) == 0 {
		return domain.TrendStable
	}

	current, err := dateutil.LastNDays(refDate, trendWindowDays)
	if err != nil {
		return domain.TrendStable
	}
	prevEnd, err := dateutil.AddDays(refDate, -trendWindowDays)
	if err != nil {
		return domain.TrendStable
	}
	previous, err := dateutil.LastNDays(prevEnd, trendWindowDays)
	if err != nil {
		return domain.TrendStable
	}

	currentScores := scoresInWindow(checkIns, current)
	previousScores := scoresInWindow(checkIns, previous)

	if len(currentScores) < trendMinDataPoints || len(previousScores) < trendMinDataPoints {
		return domain.TrendStable
	}

	diff := mean(previousScores) - mean(currentScores)
	switch {
	case diff >= trendThreshold:
		return domain.TrendImproving
	case diff <= -trendThreshold:
		return domain.TrendWorsening
	default:
		return domain.TrendStable
	}
}

// TrendDescription returns the one-line reading of a trend for display.
func TrendDescription(trend domain.Trend) string {
	switch trend {
	case domain.TrendImproving:
		return "Your burnout risk is decreasing. Keep up the good work!"
	case domain.TrendWorsening:
		return "Your burnout risk is increasing. Consider taking action."
	default:
		return "Your burnout risk is stable. Monitor your metrics."
	}
}

func scoresInWindow(checkIns []domain.CheckIn, window []string) []float64 {
	inWindow := make(map[string]bool, len(window))
	for _, d := range window {
		inWindow[d] = true
	}
	var scores []float64
	for _, ci := range checkIns {
		if inWindow[ci.Date] {
			scores = append(scores, float64(ci.BurnoutScore))
		}
	}
	return scores
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
