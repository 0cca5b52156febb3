package user

import (
	"context"
	"time"
)

// Repository exposes user persistence operations. Lookups used by the
// login paths filter on active accounts in the service layer, not here.
type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, tenantID, id string) (User, bool, error)
	GetByEmail(ctx context.Context, tenantID, email string) (User, bool, error)
	GetSuperAdminByEmail(ctx context.Context, email string) (User, bool, error)
	GetByResetToken(ctx context.Context, token string) (User, bool, error)
	ListByTenant(ctx context.Context, tenantID string) ([]User, error)
	// UpdatePassword also clears any pending reset token.
	UpdatePassword(ctx context.Context, id, passwordHash string) (bool, error)
	SetResetToken(ctx context.Context, id, token string, expiresAt time.Time) (bool, error)
	SetActive(ctx context.Context, tenantID, id string, active bool) (bool, error)
}
