package player

import (
	"fmt"
	"time"
)

// Player is an academy athlete scoped to one tenant. Team membership is
// held in a join table and fully replaced on update, never merged.
type Player struct {
	ID            string
	TenantID      string
	FirstName     string
	LastName      string
	NationalID    string
	BirthDate     *time.Time
	PhotoURL      string
	IDDocumentURL string
	TeamIDs       []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.TenantID == "" {
		return fmt.Errorf("player tenant id is required")
	}
	if p.FirstName == "" || p.LastName == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}

func (p Player) FullName() string {
	return p.FirstName + " " + p.LastName
}
