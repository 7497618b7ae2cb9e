package engine

import (
	"testing"

	"github.com/alexanderramin/ember/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func healthyMetrics() domain.Metrics {
	return domain.Metrics{AvgSleep: 7.5, AvgStress: 4, AvgWorkload: 5, AvgMood: 7}
}

func TestSelectRecommendations_NoThresholdsFired(t *testing.T) {
	recs := SelectRecommendations(healthyMetrics())
	require.Len(t, recs, 1)
	assert.Equal(t, "general_wellness", recs[0].ID)
	assert.Contains(t, recs[0].Title, "Wellness")
}

func TestSelectRecommendations_LowSleepAlone(t *testing.T) {
	m := healthyMetrics()
	m.AvgSleep = 5
	recs := SelectRecommendations(m)
	require.NotEmpty(t, recs)
	assert.Equal(t, "low_sleep", recs[0].ID)
}

func TestSelectRecommendations_AllFired_CapsAtThree(t *testing.T) {
	m := domain.Metrics{AvgSleep: 4, AvgStress: 9, AvgWorkload: 9, AvgMood: 2}
	recs := SelectRecommendations(m)
	require.Len(t, recs, 3)
	assert.Equal(t, "low_sleep", recs[0].ID)
	assert.Equal(t, "high_stress", recs[1].ID)
	assert.Equal(t, "high_workload", recs[2].ID)
}

func TestSelectRecommendations_PriorityOverridesFiringOrder(t *testing.T) {
	// Mood and workload fire without sleep or stress; workload outranks mood.
	m := domain.Metrics{AvgSleep: 8, AvgStress: 3, AvgWorkload: 9, AvgMood: 3}
	recs := SelectRecommendations(m)
	require.Len(t, recs, 2)
	assert.Equal(t, "high_workload", recs[0].ID)
	assert.Equal(t, "low_mood", recs[1].ID)
}

func TestSelectRecommendations_ThresholdsAreStrict(t *testing.T) {
	// Boundary values do not fire: sleep exactly 6, stress/workload exactly
	// 7, mood exactly 5.
	m := domain.Metrics{AvgSleep: 6, AvgStress: 7, AvgWorkload: 7, AvgMood: 5}
	recs := SelectRecommendations(m)
	require.Len(t, recs, 1)
	assert.Equal(t, "general_wellness", recs[0].ID)
}

func TestSelectRecommendations_EveryEntryHasThreeSteps(t *testing.T) {
	m := domain.Metrics{AvgSleep: 4, AvgStress: 9, AvgWorkload: 9, AvgMood: 2}
	for _, rec := range SelectRecommendations(m) {
		assert.Len(t, rec.Steps, 3, "recommendation %s", rec.ID)
		assert.NotEmpty(t, rec.Title)
		assert.NotEmpty(t, rec.Why)
	}
}

func TestRecommendationForMetric(t *testing.T) {
	rec := RecommendationForMetric("sleep")
	require.NotNil(t, rec)
	assert.Equal(t, "low_sleep", rec.ID)

	assert.Nil(t, RecommendationForMetric("caffeine"))
}
