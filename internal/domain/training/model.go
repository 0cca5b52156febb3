package training

import (
	"fmt"
	"time"
)

// Training is one scheduled session for a team. Recurring sessions share a
// SeriesID; update/delete operations can cascade to future occurrences of
// the same series.
type Training struct {
	ID              string
	TenantID        string
	TeamID          string
	StartsAt        time.Time
	DurationMinutes int
	Location        string
	Focus           string
	Notes           string
	SeriesID        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (t Training) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("training id is required")
	}
	if t.TenantID == "" {
		return fmt.Errorf("training tenant id is required")
	}
	if t.TeamID == "" {
		return fmt.Errorf("training team id is required")
	}
	if t.StartsAt.IsZero() {
		return fmt.Errorf("training start time is required")
	}

	return nil
}

// Attendance records one player's presence at one training session.
type Attendance struct {
	ID         string
	TenantID   string
	TrainingID string
	PlayerID   string
	Present    bool
	Remarks    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
