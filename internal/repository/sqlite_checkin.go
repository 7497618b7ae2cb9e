package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/ember/internal/domain"
)

const checkInColumns = `id, device_user_id, date, sleep_hours, stress, workload, mood,
		notes, burnout_score, created_at, updated_at`

// SQLiteCheckInRepo implements CheckInRepo using a SQLite database.
type SQLiteCheckInRepo struct {
	db *sql.DB
}

// NewSQLiteCheckInRepo creates a new SQLiteCheckInRepo.
func NewSQLiteCheckInRepo(db *sql.DB) *SQLiteCheckInRepo {
	return &SQLiteCheckInRepo{db: db}
}

func (r *SQLiteCheckInRepo) ListByDeviceUser(ctx context.Context, deviceUserID string) ([]domain.CheckIn, error) {
	query := `SELECT ` + checkInColumns + ` FROM check_ins
		WHERE device_user_id = ? ORDER BY date DESC`
	rows, err := r.db.QueryContext(ctx, query, deviceUserID)
	if err != nil {
		return nil, fmt.Errorf("listing check-ins: %w", err)
	}
	defer rows.Close()
	return r.scanCheckIns(rows)
}

func (r *SQLiteCheckInRepo) GetByDate(ctx context.Context, deviceUserID, date string) (*domain.CheckIn, error) {
	query := `SELECT ` + checkInColumns + ` FROM check_ins
		WHERE device_user_id = ? AND date = ?`
	row := r.db.QueryRowContext(ctx, query, deviceUserID, date)

	ci, err := scanCheckInRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("check-in: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning check-in: %w", err)
	}
	return ci, nil
}

const saveCheckInQuery = `INSERT INTO check_ins (` + checkInColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			device_user_id = excluded.device_user_id,
			date = excluded.date,
			sleep_hours = excluded.sleep_hours,
			stress = excluded.stress,
			workload = excluded.workload,
			mood = excluded.mood,
			notes = excluded.notes,
			burnout_score = excluded.burnout_score,
			updated_at = excluded.updated_at`

// execer abstracts *sql.DB and *sql.Tx for the shared upsert.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func execSaveCheckIn(ctx context.Context, e execer, ci *domain.CheckIn) error {
	_, err := e.ExecContext(ctx, saveCheckInQuery,
		ci.ID,
		ci.DeviceUserID,
		ci.Date,
		ci.SleepHours,
		ci.Stress,
		ci.Workload,
		ci.Mood,
		ci.Notes,
		ci.BurnoutScore,
		formatTime(ci.CreatedAt),
		formatTime(ci.UpdatedAt),
	)
	return err
}

// Save upserts by id. The (device_user_id, date) uniqueness constraint is the
// caller's invariant; the schema backstops it.
func (r *SQLiteCheckInRepo) Save(ctx context.Context, ci *domain.CheckIn) error {
	if err := execSaveCheckIn(ctx, r.db, ci); err != nil {
		return fmt.Errorf("saving check-in: %w", err)
	}
	return nil
}

// SaveAll upserts a batch of check-ins in a single transaction: either every
// record lands or none do.
func (r *SQLiteCheckInRepo) SaveAll(ctx context.Context, checkIns []domain.CheckIn) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning check-in batch: %w", err)
	}
	defer tx.Rollback()

	for i := range checkIns {
		if err := execSaveCheckIn(ctx, tx, &checkIns[i]); err != nil {
			return fmt.Errorf("saving check-in %s: %w", checkIns[i].Date, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing check-in batch: %w", err)
	}
	return nil
}

func (r *SQLiteCheckInRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM check_ins WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting check-in: %w", err)
	}
	return nil
}

func (r *SQLiteCheckInRepo) ClearByDeviceUser(ctx context.Context, deviceUserID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM check_ins WHERE device_user_id = ?`, deviceUserID)
	if err != nil {
		return fmt.Errorf("clearing check-ins: %w", err)
	}
	return nil
}

// scanCheckInRow scans a single check-in from a *sql.Row.
func scanCheckInRow(row *sql.Row) (*domain.CheckIn, error) {
	var ci domain.CheckIn
	var createdAtStr, updatedAtStr string
	err := row.Scan(
		&ci.ID, &ci.DeviceUserID, &ci.Date, &ci.SleepHours, &ci.Stress,
		&ci.Workload, &ci.Mood, &ci.Notes, &ci.BurnoutScore,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}
	ci.CreatedAt = parseTime(createdAtStr)
	ci.UpdatedAt = parseTime(updatedAtStr)
	return &ci, nil
}

// scanCheckIns scans multiple check-ins from *sql.Rows.
func (r *SQLiteCheckInRepo) scanCheckIns(rows *sql.Rows) ([]domain.CheckIn, error) {
	var checkIns []domain.CheckIn
	for rows.Next() {
		var ci domain.CheckIn
		var createdAtStr, updatedAtStr string
		err := rows.Scan(
			&ci.ID, &ci.DeviceUserID, &ci.Date, &ci.SleepHours, &ci.Stress,
			&ci.Workload, &ci.Mood, &ci.Notes, &ci.BurnoutScore,
			&createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning check-in row: %w", err)
		}
		ci.CreatedAt = parseTime(createdAtStr)
		ci.UpdatedAt = parseTime(updatedAtStr)
		checkIns = append(checkIns, ci)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating check-ins: %w", err)
	}
	return checkIns, nil
}
