package postgres

import (
	"time"

	"github.com/canterahq/cantera/internal/domain/team"
)

type teamTableModel struct {
	ID        string    `db:"id"`
	TenantID  string    `db:"tenant_id"`
	Name      string    `db:"name"`
	Category  string    `db:"category"`
	CoachID   *string   `db:"coach_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func teamFromRow(row teamTableModel) team.Team {
	t := team.Team{
		ID:        row.ID,
		TenantID:  row.TenantID,
		Name:      row.Name,
		Category:  row.Category,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.CoachID != nil {
		t.CoachID = *row.CoachID
	}
	return t
}

// coach_id is nullable; an empty domain value maps to NULL so the foreign
// key never sees an empty string.
func teamCoachID(coachID string) *string {
	if coachID == "" {
		return nil
	}
	return &coachID
}
