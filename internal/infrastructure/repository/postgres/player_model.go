package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/canterahq/cantera/internal/domain/player"
)

type playerTableModel struct {
	ID            string         `db:"id"`
	TenantID      string         `db:"tenant_id"`
	FirstName     string         `db:"first_name"`
	LastName      string         `db:"last_name"`
	NationalID    string         `db:"national_id"`
	BirthDate     *time.Time     `db:"birth_date"`
	PhotoURL      string         `db:"photo_url"`
	IDDocumentURL string         `db:"id_document_url"`
	TeamIDs       pq.StringArray `db:"team_ids"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:            row.ID,
		TenantID:      row.TenantID,
		FirstName:     row.FirstName,
		LastName:      row.LastName,
		NationalID:    row.NationalID,
		BirthDate:     row.BirthDate,
		PhotoURL:      row.PhotoURL,
		IDDocumentURL: row.IDDocumentURL,
		TeamIDs:       []string(row.TeamIDs),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
