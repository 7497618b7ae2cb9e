package domain

import "time"

// MaxNotesLen is the maximum length of a check-in note in code points.
const MaxNotesLen = 280

// CheckIn is one user's self-report for one calendar day. At most one exists
// per (DeviceUserID, Date); resubmitting for the same date updates the record
// in place, preserving ID and CreatedAt.
type CheckIn struct {
	ID           string  `json:"id"`
	DeviceUserID string  `json:"deviceUserId"`
	Date         string  `json:"date"` // YYYY-MM-DD, local time zone
	SleepHours   float64 `json:"sleepHours"`
	Stress       int     `json:"stress"`
	Workload     int     `json:"workload"`
	Mood         int     `json:"mood"`
	Notes        string  `json:"notes,omitempty"`
	// BurnoutScore is derived from the four metrics, never user-supplied.
	BurnoutScore int       `json:"burnoutScore"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
