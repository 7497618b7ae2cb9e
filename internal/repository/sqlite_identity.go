package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SQLiteIdentityRepo implements IdentityRepo over the single-row
// device_identity table.
type SQLiteIdentityRepo struct {
	db *sql.DB
}

// NewSQLiteIdentityRepo creates a new SQLiteIdentityRepo.
func NewSQLiteIdentityRepo(db *sql.DB) *SQLiteIdentityRepo {
	return &SQLiteIdentityRepo{db: db}
}

// DeviceUserID returns the stable anonymous identifier for this install,
// generating and persisting a fresh UUID on first call. The INSERT OR IGNORE
// keeps the first writer's id if two calls race.
func (r *SQLiteIdentityRepo) DeviceUserID(ctx context.Context) (string, error) {
	var id string
	err := r.db.QueryRowContext(ctx,
		`SELECT device_user_id FROM device_identity WHERE id = 'default'`).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return "", fmt.Errorf("loading device identity: %w", err)
	}

	id = uuid.New().String()
	_, err = r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO device_identity (id, device_user_id, created_at) VALUES ('default', ?, ?)`,
		id, formatTime(time.Now()))
	if err != nil {
		return "", fmt.Errorf("persisting device identity: %w", err)
	}

	// Re-read in case another writer won the insert.
	if err := r.db.QueryRowContext(ctx,
		`SELECT device_user_id FROM device_identity WHERE id = 'default'`).Scan(&id); err != nil {
		return "", fmt.Errorf("reloading device identity: %w", err)
	}
	return id, nil
}
