package domain

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendWorsening Trend = "worsening"
)

type RedFlagReason string

const (
	ReasonHighScoreStreak RedFlagReason = "high_score_streak"
	ReasonScoreSpike      RedFlagReason = "score_spike"
	ReasonLowMoodStreak   RedFlagReason = "low_mood_streak"
)
