package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/ember/internal/domain"
)

// SQLiteContactRepo implements ContactRepo using a SQLite database.
type SQLiteContactRepo struct {
	db *sql.DB
}

// NewSQLiteContactRepo creates a new SQLiteContactRepo.
func NewSQLiteContactRepo(db *sql.DB) *SQLiteContactRepo {
	return &SQLiteContactRepo{db: db}
}

func (r *SQLiteContactRepo) List(ctx context.Context) ([]domain.EmergencyContact, error) {
	query := `SELECT id, name, phone, email, created_at, updated_at
		FROM emergency_contacts ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}
	defer rows.Close()

	var contacts []domain.EmergencyContact
	for rows.Next() {
		var c domain.EmergencyContact
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning contact row: %w", err)
		}
		c.CreatedAt = parseTime(createdAtStr)
		c.UpdatedAt = parseTime(updatedAtStr)
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contacts: %w", err)
	}
	return contacts, nil
}

func (r *SQLiteContactRepo) Save(ctx context.Context, c *domain.EmergencyContact) error {
	query := `INSERT OR REPLACE INTO emergency_contacts (id, name, phone, email, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Phone, c.Email, formatTime(c.CreatedAt), formatTime(c.UpdatedAt))
	if err != nil {
		return fmt.Errorf("saving contact: %w", err)
	}
	return nil
}

func (r *SQLiteContactRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM emergency_contacts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting contact: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("contact %s: %w", id, ErrNotFound)
	}
	return nil
}
