package postgres

import (
	"time"

	"github.com/canterahq/cantera/internal/domain/training"
)

type trainingTableModel struct {
	ID              string    `db:"id"`
	TenantID        string    `db:"tenant_id"`
	TeamID          string    `db:"team_id"`
	StartsAt        time.Time `db:"starts_at"`
	DurationMinutes int       `db:"duration_minutes"`
	Location        string    `db:"location"`
	Focus           string    `db:"focus"`
	Notes           string    `db:"notes"`
	SeriesID        *string   `db:"series_id"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func trainingFromRow(row trainingTableModel) training.Training {
	t := training.Training{
		ID:              row.ID,
		TenantID:        row.TenantID,
		TeamID:          row.TeamID,
		StartsAt:        row.StartsAt,
		DurationMinutes: row.DurationMinutes,
		Location:        row.Location,
		Focus:           row.Focus,
		Notes:           row.Notes,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
	if row.SeriesID != nil {
		t.SeriesID = *row.SeriesID
	}
	return t
}

func trainingSeriesID(seriesID string) *string {
	if seriesID == "" {
		return nil
	}
	return &seriesID
}

type attendanceTableModel struct {
	ID         string    `db:"id"`
	TenantID   string    `db:"tenant_id"`
	TrainingID string    `db:"training_id"`
	PlayerID   string    `db:"player_id"`
	Present    bool      `db:"present"`
	Remarks    string    `db:"remarks"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func attendanceFromRow(row attendanceTableModel) training.Attendance {
	return training.Attendance{
		ID:         row.ID,
		TenantID:   row.TenantID,
		TrainingID: row.TrainingID,
		PlayerID:   row.PlayerID,
		Present:    row.Present,
		Remarks:    row.Remarks,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
