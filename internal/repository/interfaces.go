package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/ember/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// IdentityRepo hands out the stable anonymous device-user identifier,
// generating and persisting one on first use.
type IdentityRepo interface {
	DeviceUserID(ctx context.Context) (string, error)
}

// CheckInRepo is the persistence contract for check-in records. Save upserts
// by id; the one-record-per-(deviceUserID, date) invariant is enforced by the
// caller, which must look up the existing record for a date before saving.
type CheckInRepo interface {
	ListByDeviceUser(ctx context.Context, deviceUserID string) ([]domain.CheckIn, error)
	GetByDate(ctx context.Context, deviceUserID, date string) (*domain.CheckIn, error)
	Save(ctx context.Context, ci *domain.CheckIn) error
	// SaveAll upserts a batch atomically; a failure leaves no record behind.
	SaveAll(ctx context.Context, checkIns []domain.CheckIn) error
	Delete(ctx context.Context, id string) error
	ClearByDeviceUser(ctx context.Context, deviceUserID string) error
}

// ContactRepo stores emergency contacts. Contacts are global to the
// installation, not scoped by device user.
type ContactRepo interface {
	List(ctx context.Context) ([]domain.EmergencyContact, error)
	Save(ctx context.Context, c *domain.EmergencyContact) error
	Delete(ctx context.Context, id string) error
}
