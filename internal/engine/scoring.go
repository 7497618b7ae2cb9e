// Package engine is the check-in analytics core: burnout scoring, streak and
// trend classification, red-flag detection, recommendation selection, and the
// weekly summary composition. Every function is pure and takes its reference
// date explicitly; nothing in this package reads the clock or the store.
package engine

import (
	"math"

	"github.com/alexanderramin/ember/internal/domain"
)

// Metric domains. Out-of-range inputs are clamped, never rejected.
const (
	MinSleepHours = 0.0
	MaxSleepHours = 12.0
	MinLevel      = 1
	MaxLevel      = 10
)

// Weighted formula: sleep deficit x4 (max 48 raw points), stress x3 (max 30),
// workload x2.5 (max 25), mood deficit x2 (max 20). The theoretical raw
// maximum is 121, so dividing by 1.21 maps it onto 100.
const (
	weightSleepDeficit = 4.0
	weightStress       = 3.0
	weightWorkload     = 2.5
	weightMoodDeficit  = 2.0
	rawScoreDivisor    = 1.21
)

// Risk-level boundaries, inclusive at the lower edge.
const (
	riskModerateMin = 25
	riskHighMin     = 50
	riskCriticalMin = 75
)

// Score maps the four raw metrics to a burnout score in [0, 100].
// Deterministic and total: inputs are clamped to their domains first, and the
// result is clamped again to absorb rounding.
func Score(sleepHours float64, stress, workload, mood int) int {
	s := clampFloat(sleepHours, MinSleepHours, MaxSleepHours)
	st := clampInt(stress, MinLevel, MaxLevel)
	w := clampInt(workload, MinLevel, MaxLevel)
	m := clampInt(mood, MinLevel, MaxLevel)

	raw := (MaxSleepHours-s)*weightSleepDeficit +
		float64(st)*weightStress +
		float64(w)*weightWorkload +
		float64(MaxLevel-m)*weightMoodDeficit

	return clampInt(int(math.Round(raw/rawScoreDivisor)), 0, 100)
}

// RiskLevelFor buckets a burnout score: <25 low, <50 moderate, <75 high,
// otherwise critical.
func RiskLevelFor(score int) domain.RiskLevel {
	switch {
	case score < riskModerateMin:
		return domain.RiskLow
	case score < riskHighMin:
		return domain.RiskModerate
	case score < riskCriticalMin:
		return domain.RiskHigh
	default:
		return domain.RiskCritical
	}
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
