package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/ember/internal/contract"
	"github.com/alexanderramin/ember/internal/dateutil"
	"github.com/alexanderramin/ember/internal/engine"
	"github.com/alexanderramin/ember/internal/repository"
)

type summaryService struct {
	checkIns repository.CheckInRepo
}

func NewSummaryService(checkIns repository.CheckInRepo) SummaryService {
	return &summaryService{checkIns: checkIns}
}

// GetSummary composes the weekly read-model for the reference date. A store
// read failure degrades to an empty history: the report must always render,
// with conservative defaults, rather than fail.
func (s *summaryService) GetSummary(ctx context.Context, deviceUserID string, req contract.SummaryRequest) (*contract.SummaryResponse, error) {
	if _, err := dateutil.Parse(req.Date); err != nil {
		return nil, fmt.Errorf("invalid summary date: %w", err)
	}

	checkIns, err := s.checkIns.ListByDeviceUser(ctx, deviceUserID)
	if err != nil {
		checkIns = nil
	}

	summary := engine.BuildWeeklySummary(checkIns, req.Date)
	if summary.DeviceUserID == "" {
		summary.DeviceUserID = deviceUserID
	}

	return &contract.SummaryResponse{
		Summary:              summary,
		Streak:               engine.Streak(checkIns, req.Date),
		RedFlag:              engine.DetectRedFlags(checkIns, req.Date),
		CheckedInToday:       engine.HasCheckedIn(checkIns, req.Date),
		DaysSinceLastCheckIn: engine.DaysSinceLastCheckIn(checkIns, req.Date),
	}, nil
}
