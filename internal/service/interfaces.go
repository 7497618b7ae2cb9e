package service

import (
	"context"

	"github.com/alexanderramin/ember/internal/contract"
	"github.com/alexanderramin/ember/internal/domain"
)

// CheckInForm carries the raw user-submitted metrics for one day. Values are
// clamped to their domains on submission, never rejected.
type CheckInForm struct {
	Date       string // YYYY-MM-DD
	SleepHours float64
	Stress     int
	Workload   int
	Mood       int
	Notes      string
}

type CheckInService interface {
	// Submit creates the day's check-in or, when one already exists for
	// (deviceUserID, form.Date), updates it in place preserving its id and
	// creation time.
	Submit(ctx context.Context, deviceUserID string, form CheckInForm) (*domain.CheckIn, error)
	History(ctx context.Context, deviceUserID string, limit int) ([]domain.CheckIn, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context, deviceUserID string) error
	Export(ctx context.Context, deviceUserID string) (string, error)
	Import(ctx context.Context, deviceUserID string, data []byte) (int, error)
}

type SummaryService interface {
	GetSummary(ctx context.Context, deviceUserID string, req contract.SummaryRequest) (*contract.SummaryResponse, error)
}

type ContactService interface {
	Add(ctx context.Context, name, phone, email string) (*domain.EmergencyContact, error)
	List(ctx context.Context) ([]domain.EmergencyContact, error)
	Remove(ctx context.Context, id string) error
}
