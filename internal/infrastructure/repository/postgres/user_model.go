package postgres

import (
	"time"

	"github.com/canterahq/cantera/internal/domain/auth"
	"github.com/canterahq/cantera/internal/domain/user"
)

type userTableModel struct {
	ID                  string     `db:"id"`
	TenantID            string     `db:"tenant_id"`
	Email               string     `db:"email"`
	PasswordHash        string     `db:"password_hash"`
	FullName            string     `db:"full_name"`
	Role                string     `db:"role"`
	Active              bool       `db:"active"`
	ResetToken          string     `db:"reset_token"`
	ResetTokenExpiresAt *time.Time `db:"reset_token_expires_at"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}

func userFromRow(row userTableModel) user.User {
	return user.User{
		ID:                  row.ID,
		TenantID:            row.TenantID,
		Email:               row.Email,
		PasswordHash:        row.PasswordHash,
		FullName:            row.FullName,
		Role:                auth.Role(row.Role),
		Active:              row.Active,
		ResetToken:          row.ResetToken,
		ResetTokenExpiresAt: row.ResetTokenExpiresAt,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
}
