package domain

import "time"

// EmergencyContact is a user-entered support contact. Contacts are global to
// the installation, not scoped to a device user.
type EmergencyContact struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
