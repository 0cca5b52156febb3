package postgres

import (
	"time"

	"github.com/canterahq/cantera/internal/domain/match"
)

type matchTableModel struct {
	ID              string    `db:"id"`
	TenantID        string    `db:"tenant_id"`
	HomeTeamID      string    `db:"home_team_id"`
	AwayTeamID      *string   `db:"away_team_id"`
	MatchDate       time.Time `db:"match_date"`
	KickoffTime     string    `db:"kickoff_time"`
	Venue           string    `db:"venue"`
	Competition     string    `db:"competition"`
	Type            string    `db:"type"`
	Status          string    `db:"status"`
	HomeScore       *int      `db:"home_score"`
	AwayScore       *int      `db:"away_score"`
	Referee         string    `db:"referee"`
	Notes           string    `db:"notes"`
	DurationMinutes int       `db:"duration_minutes"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func matchFromRow(row matchTableModel) match.Match {
	m := match.Match{
		ID:              row.ID,
		TenantID:        row.TenantID,
		HomeTeamID:      row.HomeTeamID,
		MatchDate:       row.MatchDate,
		KickoffTime:     row.KickoffTime,
		Venue:           row.Venue,
		Competition:     row.Competition,
		Type:            match.Type(row.Type),
		Status:          match.Status(row.Status),
		HomeScore:       row.HomeScore,
		AwayScore:       row.AwayScore,
		Referee:         row.Referee,
		Notes:           row.Notes,
		DurationMinutes: row.DurationMinutes,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
	if row.AwayTeamID != nil {
		m.AwayTeamID = *row.AwayTeamID
	}
	return m
}

// away_team_id is nullable for external opponents.
func matchAwayTeamID(awayTeamID string) *string {
	if awayTeamID == "" {
		return nil
	}
	return &awayTeamID
}
