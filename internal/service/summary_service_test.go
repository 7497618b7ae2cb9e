package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/ember/internal/contract"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/alexanderramin/ember/internal/repository"
	"github.com/alexanderramin/ember/internal/testutil"
)

func TestGetSummary_Composition(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteCheckInRepo(database)
	checkIns := NewCheckInService(repo)
	svc := NewSummaryService(repo)
	ctx := context.Background()

	// Five consecutive days ending on the reference date.
	dates := []string{"2025-03-11", "2025-03-12", "2025-03-13", "2025-03-14", "2025-03-15"}
	for _, date := range dates {
		_, err := checkIns.Submit(ctx, testDevice, CheckInForm{
			Date: date, SleepHours: 7, Stress: 5, Workload: 5, Mood: 6,
		})
		require.NoError(t, err)
	}

	resp, err := svc.GetSummary(ctx, testDevice, contract.SummaryRequest{Date: "2025-03-15"})
	require.NoError(t, err)

	assert.Equal(t, testDevice, resp.Summary.DeviceUserID)
	assert.Equal(t, "2025-03-09", resp.Summary.WeekStartDate)
	assert.Equal(t, 7.0, resp.Summary.Metrics.AvgSleep)
	assert.Equal(t, 5.0, resp.Summary.Metrics.AvgStress)
	assert.Equal(t, domain.TrendStable, resp.Summary.Trend)
	assert.Equal(t, 5, resp.Streak)
	assert.True(t, resp.CheckedInToday)
	assert.Equal(t, 0, resp.DaysSinceLastCheckIn)
	assert.False(t, resp.RedFlag.Triggered)
}

func TestGetSummary_NoHistory(t *testing.T) {
	svc := NewSummaryService(repository.NewSQLiteCheckInRepo(testutil.NewTestDB(t)))

	resp, err := svc.GetSummary(context.Background(), testDevice, contract.SummaryRequest{Date: "2025-03-15"})
	require.NoError(t, err)

	assert.Equal(t, testDevice, resp.Summary.DeviceUserID)
	assert.Equal(t, domain.Metrics{}, resp.Summary.Metrics)
	assert.Equal(t, 0, resp.Streak)
	assert.False(t, resp.CheckedInToday)
	assert.Equal(t, -1, resp.DaysSinceLastCheckIn)
}

func TestGetSummary_RejectsInvalidDate(t *testing.T) {
	svc := NewSummaryService(repository.NewSQLiteCheckInRepo(testutil.NewTestDB(t)))

	_, err := svc.GetSummary(context.Background(), testDevice, contract.SummaryRequest{Date: "today"})
	assert.Error(t, err)
}

// failingCheckInRepo errors on every read.
type failingCheckInRepo struct{}

func (failingCheckInRepo) ListByDeviceUser(context.Context, string) ([]domain.CheckIn, error) {
	return nil, errors.New("disk gone")
}

func (failingCheckInRepo) GetByDate(context.Context, string, string) (*domain.CheckIn, error) {
	return nil, errors.New("disk gone")
}

func (failingCheckInRepo) Save(context.Context, *domain.CheckIn) error { return nil }

func (failingCheckInRepo) SaveAll(context.Context, []domain.CheckIn) error { return nil }

func (failingCheckInRepo) Delete(context.Context, string) error { return nil }

func (failingCheckInRepo) ClearByDeviceUser(context.Context, string) error { return nil }

func TestGetSummary_DegradesOnReadFailure(t *testing.T) {
	svc := NewSummaryService(failingCheckInRepo{})

	resp, err := svc.GetSummary(context.Background(), testDevice, contract.SummaryRequest{Date: "2025-03-15"})
	require.NoError(t, err)

	assert.Equal(t, domain.Metrics{}, resp.Summary.Metrics)
	assert.Equal(t, 0, resp.Streak)
	assert.False(t, resp.RedFlag.Triggered)
	assert.Equal(t, -1, resp.DaysSinceLastCheckIn)
}
