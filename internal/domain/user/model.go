package user

import (
	"time"

	"github.com/canterahq/cantera/internal/domain/auth"
)

// User is a staff account scoped to one tenant. Super admins are stored
// with an empty tenant id and are the only tenant-less rows.
type User struct {
	ID                  string
	TenantID            string
	Email               string
	PasswordHash        string
	FullName            string
	Role                auth.Role
	Active              bool
	ResetToken          string
	ResetTokenExpiresAt *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (u User) Principal() auth.Principal {
	return auth.Principal{
		UserID:   u.ID,
		TenantID: u.TenantID,
		Role:     u.Role,
	}
}
