package match

import (
	"fmt"
	"time"
)

// Type classifies the competition context of a match.
type Type string

const (
	TypeFriendly   Type = "friendly"
	TypeLeague     Type = "league"
	TypeCup        Type = "cup"
	TypeTournament Type = "tournament"
)

var allTypes = map[Type]struct{}{
	TypeFriendly:   {},
	TypeLeague:     {},
	TypeCup:        {},
	TypeTournament: {},
}

// Status is the lifecycle state of a match.
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusPostponed  Status = "postponed"
)

var allStatuses = map[Status]struct{}{
	StatusScheduled:  {},
	StatusConfirmed:  {},
	StatusInProgress: {},
	StatusCompleted:  {},
	StatusCancelled:  {},
	StatusPostponed:  {},
}

// Match belongs to a tenant. AwayTeamID is empty for external opponents,
// which are carried by name in the notes instead of a team row.
type Match struct {
	ID              string
	TenantID        string
	HomeTeamID      string
	AwayTeamID      string
	MatchDate       time.Time
	KickoffTime     string
	Venue           string
	Competition     string
	Type            Type
	Status          Status
	HomeScore       *int
	AwayScore       *int
	Referee         string
	Notes           string
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.TenantID == "" {
		return fmt.Errorf("match tenant id is required")
	}
	if m.HomeTeamID == "" {
		return fmt.Errorf("match home team id is required")
	}
	if m.MatchDate.IsZero() {
		return fmt.Errorf("match date is required")
	}
	if _, ok := allTypes[m.Type]; !ok {
		return fmt.Errorf("invalid match type: %s", m.Type)
	}
	if _, ok := allStatuses[m.Status]; !ok {
		return fmt.Errorf("invalid match status: %s", m.Status)
	}

	return nil
}
