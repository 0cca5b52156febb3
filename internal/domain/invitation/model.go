package invitation

import (
	"errors"
	"time"

	"github.com/canterahq/cantera/internal/domain/auth"
)

var (
	ErrAlreadyAccepted = errors.New("invitation already accepted")
	ErrExpired         = errors.New("invitation expired")
)

// Invitation is a single-use, expiring grant allowing one email address
// to register into a tenant with a given role.
type Invitation struct {
	ID        string
	TenantID  string
	Email     string
	Role      auth.Role
	Token     string
	ExpiresAt time.Time
	Accepted  bool
	CreatedAt time.Time
}

// Usable reports whether the invitation can still be consumed at now.
// Accepted or expired invitations are invalid forever.
func (i Invitation) Usable(now time.Time) error {
	if i.Accepted {
		return ErrAlreadyAccepted
	}
	if !now.Before(i.ExpiresAt) {
		return ErrExpired
	}

	return nil
}
