package coach

import "time"

// Coach is a staff member who can be assigned to teams.
type Coach struct {
	ID           string
	TenantID     string
	FullName     string
	Email        string
	Phone        string
	LicenseLevel string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
