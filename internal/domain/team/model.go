package team

import (
	"fmt"
	"time"
)

// Team is an age-bracketed squad within a tenant. CoachID is optional;
// the roster lives in the player_teams join table.
type Team struct {
	ID        string
	TenantID  string
	Name      string
	Category  string
	CoachID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.TenantID == "" {
		return fmt.Errorf("team tenant id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.Category == "" {
		return fmt.Errorf("team category is required")
	}

	return nil
}
