package testutil

import (
	"time"

	"github.com/alexanderramin/ember/internal/dateutil"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/alexanderramin/ember/internal/engine"
	"github.com/google/uuid"
)

// CheckInOption mutates a fixture check-in.
type CheckInOption func(*domain.CheckIn)

func WithScore(score int) CheckInOption {
	return func(ci *domain.CheckIn) {
		ci.BurnoutScore = score
	}
}

func WithMood(mood int) CheckInOption {
	return func(ci *domain.CheckIn) {
		ci.Mood = mood
	}
}

func WithSleep(hours float64) CheckInOption {
	return func(ci *domain.CheckIn) {
		ci.SleepHours = hours
	}
}

func WithMetrics(sleep float64, stress, workload, mood int) CheckInOption {
	return func(ci *domain.CheckIn) {
		ci.SleepHours = sleep
		ci.Stress = stress
		ci.Workload = workload
		ci.Mood = mood
		ci.BurnoutScore = engine.Score(sleep, stress, workload, mood)
	}
}

func WithNotes(notes string) CheckInOption {
	return func(ci *domain.CheckIn) {
		ci.Notes = notes
	}
}

func WithDeviceUser(id string) CheckInOption {
	return func(ci *domain.CheckIn) {
		ci.DeviceUserID = id
	}
}

// NewCheckIn builds a moderate-risk check-in for the given date. Defaults:
// 7h sleep, stress 5, workload 5, mood 6, score derived from those metrics.
func NewCheckIn(date string, opts ...CheckInOption) domain.CheckIn {
	now := time.Now()
	ci := domain.CheckIn{
		ID:           uuid.New().String(),
		DeviceUserID: "test-device",
		Date:         date,
		SleepHours:   7,
		Stress:       5,
		Workload:     5,
		Mood:         6,
		BurnoutScore: engine.Score(7, 5, 5, 6),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(&ci)
	}
	return ci
}

// CheckInRun builds consecutive daily check-ins walking backward from end,
// applying opts to each.
func CheckInRun(end string, days int, opts ...CheckInOption) []domain.CheckIn {
	dates, err := dateutil.LastNDays(end, days)
	if err != nil {
		panic(err)
	}
	checkIns := make([]domain.CheckIn, 0, days)
	for _, date := range dates {
		checkIns = append(checkIns, NewCheckIn(date, opts...))
	}
	return checkIns
}
