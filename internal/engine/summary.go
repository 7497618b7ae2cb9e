package engine

import (
	"math"

	"github.com/alexanderramin/ember/internal/dateutil"
	"github.com/alexanderramin/ember/internal/domain"
)

const summaryWindowDays = 7

// WeeklyMetrics averages the four raw metrics and the burnout score over the
// given check-ins. Metric averages are rounded to one decimal, the score
// average to the nearest integer. An empty slice yields zero metrics.
func WeeklyMetrics(checkIns []domain.CheckIn) domain.Metrics {
	if len(checkIns) == 0 {
		return domain.Metrics{}
	}

	var sleep, stress, workload, mood, score float64
	for _, ci := range checkIns {
		sleep += ci.SleepHours
		stress += float64(ci.Stress)
		workload += float64(ci.Workload)
		mood += float64(ci.Mood)
		score += float64(ci.BurnoutScore)
	}
	n := float64(len(checkIns))

	return domain.Metrics{
		AvgSleep:        round1(sleep / n),
		AvgStress:       round1(stress / n),
		AvgWorkload:     round1(workload / n),
		AvgMood:         round1(mood / n),
		AvgBurnoutScore: int(math.Round(score / n)),
	}
}

// FilterTrailingWeek returns the check-ins dated within the 7 days ending at
// refDate, inclusive.
func FilterTrailingWeek(checkIns []domain.CheckIn, refDate string) []domain.CheckIn {
	window, err := dateutil.LastNDays(refDate, summaryWindowDays)
	if err != nil {
		return nil
	}
	inWindow := make(map[string]bool, len(window))
	for _, d := range window {
		inWindow[d] = true
	}
	var filtered []domain.CheckIn
	for _, ci := range checkIns {
		if inWindow[ci.Date] {
			filtered = append(filtered, ci)
		}
	}
	return filtered
}

// BuildWeeklySummary composes the weekly report: trailing-week averages,
// trend over the full history, and recommendations selected on the averages.
func BuildWeeklySummary(checkIns []domain.CheckIn, refDate string) domain.WeeklySummary {
	weekly := FilterTrailingWeek(checkIns, refDate)
	metrics := WeeklyMetrics(weekly)

	weekStart, err := dateutil.AddDays(refDate, -(summaryWindowDays - 1))
	if err != nil {
		weekStart = refDate
	}

	deviceUserID := ""
	if len(checkIns) > 0 {
		deviceUserID = checkIns[0].DeviceUserID
	}

	return domain.WeeklySummary{
		DeviceUserID:    deviceUserID,
		WeekStartDate:   weekStart,
		Metrics:         metrics,
		Trend:           ClassifyTrend(checkIns, refDate),
		Recommendations: SelectRecommendations(metrics),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
