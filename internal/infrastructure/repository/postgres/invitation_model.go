package postgres

import (
	"time"

	"github.com/canterahq/cantera/internal/domain/auth"
	"github.com/canterahq/cantera/internal/domain/invitation"
)

type invitationTableModel struct {
	ID        string    `db:"id"`
	TenantID  string    `db:"tenant_id"`
	Email     string    `db:"email"`
	Role      string    `db:"role"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
	Accepted  bool      `db:"accepted"`
	CreatedAt time.Time `db:"created_at"`
}

func invitationFromRow(row invitationTableModel) invitation.Invitation {
	return invitation.Invitation{
		ID:        row.ID,
		TenantID:  row.TenantID,
		Email:     row.Email,
		Role:      auth.Role(row.Role),
		Token:     row.Token,
		ExpiresAt: row.ExpiresAt,
		Accepted:  row.Accepted,
		CreatedAt: row.CreatedAt,
	}
}
