package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/ember/internal/dateutil"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/alexanderramin/ember/internal/engine"
	"github.com/alexanderramin/ember/internal/repository"
	"github.com/google/uuid"
)

// HistoryLimit caps how many records History returns by default.
const HistoryLimit = 30

type checkInService struct {
	checkIns repository.CheckInRepo
}

func NewCheckInService(checkIns repository.CheckInRepo) CheckInService {
	return &checkInService{checkIns: checkIns}
}

func (s *checkInService) Submit(ctx context.Context, deviceUserID string, form CheckInForm) (*domain.CheckIn, error) {
	if deviceUserID == "" {
		return nil, fmt.Errorf("device user id is required")
	}
	if _, err := dateutil.Parse(form.Date); err != nil {
		return nil, fmt.Errorf("invalid check-in date: %w", err)
	}

	now := time.Now()
	ci := &domain.CheckIn{
		DeviceUserID: deviceUserID,
		Date:         form.Date,
		SleepHours:   clampSleep(form.SleepHours),
		Stress:       clampLevel(form.Stress),
		Workload:     clampLevel(form.Workload),
		Mood:         clampLevel(form.Mood),
		Notes:        truncateNotes(form.Notes),
		BurnoutScore: engine.Score(form.SleepHours, form.Stress, form.Workload, form.Mood),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// One record per (device user, date): a resubmission mutates the
	// existing record, keeping its id and creation time.
	existing, err := s.checkIns.GetByDate(ctx, deviceUserID, form.Date)
	switch {
	case err == nil:
		ci.ID = existing.ID
		ci.CreatedAt = existing.CreatedAt
	case errors.Is(err, repository.ErrNotFound):
		ci.ID = uuid.New().String()
	default:
		return nil, fmt.Errorf("looking up check-in for %s: %w", form.Date, err)
	}

	if err := s.checkIns.Save(ctx, ci); err != nil {
		return nil, err
	}
	return ci, nil
}

func (s *checkInService) History(ctx context.Context, deviceUserID string, limit int) ([]domain.CheckIn, error) {
	checkIns, err := s.checkIns.ListByDeviceUser(ctx, deviceUserID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = HistoryLimit
	}
	if len(checkIns) > limit {
		checkIns = checkIns[:limit]
	}
	return checkIns, nil
}

func (s *checkInService) Delete(ctx context.Context, id string) error {
	return s.checkIns.Delete(ctx, id)
}

func (s *checkInService) Clear(ctx context.Context, deviceUserID string) error {
	return s.checkIns.ClearByDeviceUser(ctx, deviceUserID)
}

// Export serializes the device user's full record set as indented JSON,
// round-tripping every field including fractional sleep hours.
func (s *checkInService) Export(ctx context.Context, deviceUserID string) (string, error) {
	checkIns, err := s.checkIns.ListByDeviceUser(ctx, deviceUserID)
	if err != nil {
		return "", err
	}
	if checkIns == nil {
		checkIns = []domain.CheckIn{}
	}
	data, err := json.MarshalIndent(checkIns, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding check-in export: %w", err)
	}
	return string(data), nil
}

// Import reads an export dump and saves every record, re-keyed to the calling
// device user. The batch is atomic: a bad record leaves the store untouched.
// Returns the number of records imported.
func (s *checkInService) Import(ctx context.Context, deviceUserID string, data []byte) (int, error) {
	var checkIns []domain.CheckIn
	if err := json.Unmarshal(data, &checkIns); err != nil {
		return 0, fmt.Errorf("decoding check-in import: %w", err)
	}
	for i := range checkIns {
		if checkIns[i].ID == "" || checkIns[i].Date == "" {
			return 0, fmt.Errorf("import record %d: missing id or date", i)
		}
		checkIns[i].DeviceUserID = deviceUserID
	}
	if err := s.checkIns.SaveAll(ctx, checkIns); err != nil {
		return 0, fmt.Errorf("importing check-ins: %w", err)
	}
	return len(checkIns), nil
}

func clampSleep(v float64) float64 {
	if v < engine.MinSleepHours {
		return engine.MinSleepHours
	}
	if v > engine.MaxSleepHours {
		return engine.MaxSleepHours
	}
	return v
}

func clampLevel(v int) int {
	if v < engine.MinLevel {
		return engine.MinLevel
	}
	if v > engine.MaxLevel {
		return engine.MaxLevel
	}
	return v
}

// truncateNotes caps notes at MaxNotesLen code points.
func truncateNotes(s string) string {
	runes := []rune(s)
	if len(runes) <= domain.MaxNotesLen {
		return s
	}
	return string(runes[:domain.MaxNotesLen])
}
