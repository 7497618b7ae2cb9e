package engine

import (
	"testing"

	"github.com/alexanderramin/ember/internal/dateutil"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const summaryRef = "2025-03-15"

func TestWeeklyMetrics_EmptyHistory(t *testing.T) {
	m := WeeklyMetrics(nil)
	assert.Equal(t, domain.Metrics{}, m)
}

func TestWeeklyMetrics_AveragesAndRounding(t *testing.T) {
	checkIns := []domain.CheckIn{
		{Date: "2025-03-14", SleepHours: 7.5, Stress: 4, Workload: 5, Mood: 7, BurnoutScore: 40},
		{Date: "2025-03-15", SleepHours: 6, Stress: 5, Workload: 6, Mood: 6, BurnoutScore: 45},
		{Date: "2025-03-13", SleepHours: 8, Stress: 4, Workload: 4, Mood: 8, BurnoutScore: 30},
	}
	m := WeeklyMetrics(checkIns)
	assert.InDelta(t, 7.2, m.AvgSleep, 0.001)   // 21.5/3 = 7.1666 -> 7.2
	assert.InDelta(t, 4.3, m.AvgStress, 0.001)  // 13/3 = 4.333 -> 4.3
	assert.InDelta(t, 5.0, m.AvgWorkload, 0.001)
	assert.InDelta(t, 7.0, m.AvgMood, 0.001)
	assert.Equal(t, 38, m.AvgBurnoutScore) // 115/3 = 38.33 -> 38
}

func TestFilterTrailingWeek(t *testing.T) {
	checkIns := []domain.CheckIn{
		{Date: "2025-03-15"},
		{Date: "2025-03-09"}, // oldest still inside the 7-day window
		{Date: "2025-03-08"}, // outside
		{Date: "2025-02-01"}, // far outside
	}
	filtered := FilterTrailingWeek(checkIns, summaryRef)
	require.Len(t, filtered, 2)
	assert.Equal(t, "2025-03-15", filtered[0].Date)
	assert.Equal(t, "2025-03-09", filtered[1].Date)
}

func TestBuildWeeklySummary_EmptyHistory(t *testing.T) {
	summary := BuildWeeklySummary(nil, summaryRef)
	assert.Equal(t, "2025-03-09", summary.WeekStartDate)
	assert.Equal(t, domain.TrendStable, summary.Trend)

	// Zero averages read as low sleep and low mood: the sleep and mood rules
	// fire on an empty week rather than the generic fallback.
	require.Len(t, summary.Recommendations, 2)
	assert.Equal(t, "low_sleep", summary.Recommendations[0].ID)
	assert.Equal(t, "low_mood", summary.Recommendations[1].ID)
}

func TestBuildWeeklySummary_Composition(t *testing.T) {
	var history []domain.CheckIn
	// Two weeks of low-sleep, high-stress days; flat scores keep the trend
	// stable while the averages fire recommendations.
	for day := 1; day <= 15; day++ {
		history = append(history, domain.CheckIn{
			ID:           string(rune('a' + day)),
			DeviceUserID: "d1",
			Date:         addDay("2025-03-01", day),
			SleepHours:   4.5,
			Stress:       9,
			Workload:     5,
			Mood:         6,
			BurnoutScore: 60,
		})
	}

	summary := BuildWeeklySummary(history, summaryRef)
	assert.Equal(t, "d1", summary.DeviceUserID)
	assert.Equal(t, domain.TrendStable, summary.Trend)
	assert.InDelta(t, 4.5, summary.Metrics.AvgSleep, 0.001)
	assert.Equal(t, 60, summary.Metrics.AvgBurnoutScore)

	require.Len(t, summary.Recommendations, 2)
	assert.Equal(t, "low_sleep", summary.Recommendations[0].ID)
	assert.Equal(t, "high_stress", summary.Recommendations[1].ID)
}

func addDay(base string, n int) string {
	d, err := dateutil.AddDays(base, n)
	if err != nil {
		panic(err)
	}
	return d
}
