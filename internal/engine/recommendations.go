package engine

import "github.com/alexanderramin/ember/internal/domain"

// Metric thresholds that fire intervention plans.
const (
	lowSleepThreshold     = 6.0
	highStressThreshold   = 7.0
	highWorkloadThreshold = 7.0
	lowMoodThreshold      = 5.0
)

const maxRecommendations = 3

// recommendationRule pairs a threshold predicate with a catalog id. The slice
// order is the selection priority: sleep deprivation is treated as the most
// actionable lever, then stress, workload, mood.
type recommendationRule struct {
	id      string
	applies func(m domain.Metrics) bool
}

var recommendationRules = []recommendationRule{
	{"low_sleep", func(m domain.Metrics) bool { return m.AvgSleep < lowSleepThreshold }},
	{"high_stress", func(m domain.Metrics) bool { return m.AvgStress > highStressThreshold }},
	{"high_workload", func(m domain.Metrics) bool { return m.AvgWorkload > highWorkloadThreshold }},
	{"low_mood", func(m domain.Metrics) bool { return m.AvgMood < lowMoodThreshold }},
}

// recommendationCatalog is the immutable set of coping plans. Every entry
// carries exactly three steps; the selector never fabricates steps.
var recommendationCatalog = map[string]domain.Recommendation{
	"low_sleep": {
		ID:    "low_sleep",
		Title: "Sleep Target Plan",
		Why:   "Consistent sleep deprivation is a major burnout driver.",
		Steps: []string{
			"Set a consistent bedtime 30 min earlier than usual",
			"Create a wind-down routine: dim lights, no screens 30 min before bed",
			"Track sleep for 1 week and adjust if needed",
		},
	},
	"high_stress": {
		ID:    "high_stress",
		Title: "Micro-Break Plan",
		Why:   "Chronic stress without relief accumulates into burnout.",
		Steps: []string{
			"Take 5-min breathing breaks every 2 hours (box breathing: 4-4-4-4)",
			"Step outside for 10 min during lunch",
			"Practice one stress-relief activity daily (walk, stretch, music)",
		},
	},
	"high_workload": {
		ID:    "high_workload",
		Title: "Workload Boundary Plan",
		Why:   "Sustained high workload without breaks leads to burnout.",
		Steps: []string{
			"Identify 2-3 tasks you can delegate or defer this week",
			"Block 30-min focus breaks every 2 hours on your calendar",
			"Review your workload with a manager or peer",
		},
	},
	"low_mood": {
		ID:    "low_mood",
		Title: "Support + Light Activity Plan",
		Why:   "Low mood combined with other factors indicates burnout risk.",
		Steps: []string{
			"Reach out to a friend or colleague for a 15-min chat",
			"Do one activity you enjoy today (hobby, walk, creative task)",
			"Consider talking to a counselor or therapist",
		},
	},
}

// genericRecommendation is the fallback when no threshold fires.
var genericRecommendation = domain.Recommendation{
	ID:    "general_wellness",
	Title: "General Wellness Check",
	Why:   "Maintaining good habits is key to preventing burnout.",
	Steps: []string{
		"Continue monitoring your daily metrics",
		"Maintain consistent sleep and work schedules",
		"Take regular breaks throughout your day",
	},
}

// SelectRecommendations evaluates the threshold rules in priority order and
// returns the catalog entries for the first three that fire. When nothing
// fires it returns the single generic wellness plan.
func SelectRecommendations(m domain.Metrics) []domain.Recommendation {
	var selected []domain.Recommendation
	for _, rule := range recommendationRules {
		if len(selected) == maxRecommendations {
			break
		}
		if rule.applies(m) {
			selected = append(selected, recommendationCatalog[rule.id])
		}
	}
	if len(selected) == 0 {
		return []domain.Recommendation{genericRecommendation}
	}
	return selected
}

// RecommendationForMetric returns the catalog entry addressing a single
// metric, or nil for an unknown metric name.
func RecommendationForMetric(metric string) *domain.Recommendation {
	id, ok := map[string]string{
		"sleep":    "low_sleep",
		"stress":   "high_stress",
		"workload": "high_workload",
		"mood":     "low_mood",
	}[metric]
	if !ok {
		return nil
	}
	rec := recommendationCatalog[id]
	return &rec
}
