package engine

import (
	"testing"

	"github.com/alexanderramin/ember/internal/dateutil"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trendRef = "2025-03-15"

// twoWeeks builds 14 consecutive check-ins ending at ref: the current window
// (ref-6..ref) scored currentScore, the previous window scored prevScore.
func twoWeeks(t *testing.T, ref string, currentScore, prevScore int) []domain.CheckIn {
	t.Helper()
	dates, err := dateutil.LastNDays(ref, 14)
	require.NoError(t, err)

	var history []domain.CheckIn
	for i, date := range dates {
		score := currentScore
		if i >= 7 {
			score = prevScore
		}
		history = append(history, domain.CheckIn{
			ID: date, DeviceUserID: "d1", Date: date, BurnoutScore: score, Mood: 6,
		})
	}
	return history
}

func TestClassifyTrend_EmptyHistory(t *testing.T) {
	assert.Equal(t, domain.TrendStable, ClassifyTrend(nil, trendRef))
}

func TestClassifyTrend_InsufficientCurrentWindow(t *testing.T) {
	history := twoWeeks(t, trendRef, 50, 60)
	// Drop one record from the current window.
	history = history[1:]
	assert.Equal(t, domain.TrendStable, ClassifyTrend(history, trendRef))
}

func TestClassifyTrend_InsufficientPreviousWindow(t *testing.T) {
	history := twoWeeks(t, trendRef, 50, 60)
	// Drop one record from the previous window.
	history = history[:len(history)-1]
	assert.Equal(t, domain.TrendStable, ClassifyTrend(history, trendRef))
}

func TestClassifyTrend_Improving(t *testing.T) {
	// Previous mean 60, current mean 50: score fell by 10.
	history := twoWeeks(t, trendRef, 50, 60)
	assert.Equal(t, domain.TrendImproving, ClassifyTrend(history, trendRef))
}

func TestClassifyTrend_Worsening(t *testing.T) {
	history := twoWeeks(t, trendRef, 60, 50)
	assert.Equal(t, domain.TrendWorsening, ClassifyTrend(history, trendRef))
}

func TestClassifyTrend_SmallDiffIsStable(t *testing.T) {
	assert.Equal(t, domain.TrendStable, ClassifyTrend(twoWeeks(t, trendRef, 50, 54), trendRef))
	assert.Equal(t, domain.TrendStable, ClassifyTrend(twoWeeks(t, trendRef, 54, 50), trendRef))
}

func TestClassifyTrend_ThresholdBoundary(t *testing.T) {
	// A shift of exactly 5 is directional.
	assert.Equal(t, domain.TrendImproving, ClassifyTrend(twoWeeks(t, trendRef, 50, 55), trendRef))
	assert.Equal(t, domain.TrendWorsening, ClassifyTrend(twoWeeks(t, trendRef, 55, 50), trendRef))
}

func TestClassifyTrend_IgnoresRecordsOutsideWindows(t *testing.T) {
	history := twoWeeks(t, trendRef, 50, 54)
	// A very old critical record must not affect the comparison.
	history = append(history, domain.CheckIn{
		ID: "old", DeviceUserID: "d1", Date: "2024-01-01", BurnoutScore: 100, Mood: 1,
	})
	assert.Equal(t, domain.TrendStable, ClassifyTrend(history, trendRef))
}

func TestTrendDescription(t *testing.T) {
	assert.Contains(t, TrendDescription(domain.TrendImproving), "decreasing")
	assert.Contains(t, TrendDescription(domain.TrendWorsening), "increasing")
	assert.Contains(t, TrendDescription(domain.TrendStable), "stable")
}
