package postgres

import (
	"time"

	"github.com/canterahq/cantera/internal/domain/convocation"
)

type convocationTableModel struct {
	ID            string    `db:"id"`
	TenantID      string    `db:"tenant_id"`
	MatchID       string    `db:"match_id"`
	PlayerID      string    `db:"player_id"`
	Status        string    `db:"status"`
	IsStarter     bool      `db:"is_starter"`
	Position      string    `db:"position"`
	JerseyNumber  *int      `db:"jersey_number"`
	Notes         string    `db:"notes"`
	MinutesPlayed int       `db:"minutes_played"`
	GoalsScored   int       `db:"goals_scored"`
	Assists       int       `db:"assists"`
	YellowCards   int       `db:"yellow_cards"`
	RedCards      int       `db:"red_cards"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type convocationWithPlayerModel struct {
	convocationTableModel
	PlayerFirstName string `db:"player_first_name"`
	PlayerLastName  string `db:"player_last_name"`
}

type convocationHistoryModel struct {
	convocationTableModel
	MatchDate   time.Time `db:"match_date"`
	KickoffTime string    `db:"kickoff_time"`
	Venue       string    `db:"venue"`
	Competition string    `db:"competition"`
	HomeTeamID  string    `db:"home_team_id"`
	AwayTeamID  string    `db:"away_team_id"`
}

type convocationStatsModel struct {
	TotalConvocations int `db:"total_convocations"`
	Confirmations     int `db:"confirmations"`
	Absences          int `db:"absences"`
	TotalMinutes      int `db:"total_minutes"`
	TotalGoals        int `db:"total_goals"`
	TotalAssists      int `db:"total_assists"`
}

func convocationFromRow(row convocationTableModel) convocation.Convocation {
	return convocation.Convocation{
		ID:            row.ID,
		TenantID:      row.TenantID,
		MatchID:       row.MatchID,
		PlayerID:      row.PlayerID,
		Status:        convocation.Status(row.Status),
		IsStarter:     row.IsStarter,
		Position:      row.Position,
		JerseyNumber:  row.JerseyNumber,
		Notes:         row.Notes,
		MinutesPlayed: row.MinutesPlayed,
		GoalsScored:   row.GoalsScored,
		Assists:       row.Assists,
		YellowCards:   row.YellowCards,
		RedCards:      row.RedCards,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func convocationWithPlayerFromRow(row convocationWithPlayerModel) convocation.WithPlayer {
	return convocation.WithPlayer{
		Convocation:     convocationFromRow(row.convocationTableModel),
		PlayerFirstName: row.PlayerFirstName,
		PlayerLastName:  row.PlayerLastName,
	}
}

func convocationHistoryFromRow(row convocationHistoryModel) convocation.HistoryEntry {
	return convocation.HistoryEntry{
		Convocation: convocationFromRow(row.convocationTableModel),
		MatchDate:   row.MatchDate,
		KickoffTime: row.KickoffTime,
		Venue:       row.Venue,
		Competition: row.Competition,
		HomeTeamID:  row.HomeTeamID,
		AwayTeamID:  row.AwayTeamID,
	}
}
