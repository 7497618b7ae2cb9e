package engine

import (
	"github.com/alexanderramin/ember/internal/dateutil"
	"github.com/alexanderramin/ember/internal/domain"
)

const (
	criticalScore      = 75
	spikeDelta         = 20.0
	spikeMinDataPoints = 3
	criticalMood       = 3
)

// redFlagRule pairs an anomaly predicate with its reason code. The rules
// slice is the priority order: evaluation stops at the first match.
type redFlagRule struct {
	reason domain.RedFlagReason
	match  func(byDate map[string]domain.CheckIn, refDate string) bool
}

var redFlagRules = []redFlagRule{
	{domain.ReasonHighScoreStreak, matchHighScoreStreak},
	{domain.ReasonScoreSpike, matchScoreSpike},
	{domain.ReasonLowMoodStreak, matchLowMoodStreak},
}

// DetectRedFlags evaluates the anomaly rules in priority order against the
// history and returns the first match. It is advisory only: it never blocks
// data entry.
func DetectRedFlags(checkIns []domain.CheckIn, refDate string) domain.RedFlagState {
	byDate := make(map[string]domain.CheckIn, len(checkIns))
	for _, ci := range checkIns {
		byDate[ci.Date] = ci
	}

	for _, rule := range redFlagRules {
		if rule.match(byDate, refDate) {
			return domain.RedFlagState{Triggered: true, Reason: rule.reason}
		}
	}
	return domain.RedFlagState{}
}

// matchHighScoreStreak: refDate and the preceding day both scored >= 75.
// A missing record on either day disqualifies the rule; there is no carry
// forward.
func matchHighScoreStreak(byDate map[string]domain.CheckIn, refDate string) bool {
	yesterday, err := dateutil.AddDays(refDate, -1)
	if err != nil {
		return false
	}
	today, okToday := byDate[refDate]
	prev, okPrev := byDate[yesterday]
	return okToday && okPrev &&
		today.BurnoutScore >= criticalScore && prev.BurnoutScore >= criticalScore
}

// matchScoreSpike: refDate's score exceeds the trailing-7-day mean by >= 20.
// Fewer than 3 records in the window suppresses the rule.
func matchScoreSpike(byDate map[string]domain.CheckIn, refDate string) bool {
	today, ok := byDate[refDate]
	if !ok {
		return false
	}
	window, err := dateutil.LastNDays(refDate, 7)
	if err != nil {
		return false
	}
	var scores []float64
	for _, d := range window {
		if ci, ok := byDate[d]; ok {
			scores = append(scores, float64(ci.BurnoutScore))
		}
	}
	if len(scores) < spikeMinDataPoints {
		return false
	}
	return float64(today.BurnoutScore)-mean(scores) >= spikeDelta
}

// matchLowMoodStreak: refDate and the preceding day both reported mood <= 3.
func matchLowMoodStreak(byDate map[string]domain.CheckIn, refDate string) bool {
	yesterday, err := dateutil.AddDays(refDate, -1)
	if err != nil {
		return false
	}
	today, okToday := byDate[refDate]
	prev, okPrev := byDate[yesterday]
	return okToday && okPrev && today.Mood <= criticalMood && prev.Mood <= criticalMood
}

// RedFlagMessage returns the alert copy for a red-flag reason.
func RedFlagMessage(reason domain.RedFlagReason) string {
	switch reason {
	case domain.ReasonHighScoreStreak:
		return "Your burnout score has been critically high for 2 days. Please take care of yourself."
	case domain.ReasonScoreSpike:
		return "Your burnout score has increased significantly. Consider taking a break."
	case domain.ReasonLowMoodStreak:
		return "Your mood has been very low for 2 days. Reach out for support."
	default:
		return "You might be at risk. Please consider reaching out for support."
	}
}

// SelfCareSuggestions returns the static suggestion list shown alongside a
// red-flag alert.
func SelfCareSuggestions() []string {
	return []string{
		"Take a 15-minute break and step outside",
		"Reach out to a friend, family member, or colleague",
		"Practice deep breathing or meditation (5-10 minutes)",
		"Do something you enjoy, even if just for 10 minutes",
		"Consider talking to a mental health professional",
		"Get adequate sleep tonight (aim for 7-9 hours)",
	}
}
