package invitation

import "context"

// Repository exposes invitation persistence operations.
type Repository interface {
	Create(ctx context.Context, inv Invitation) error
	GetByToken(ctx context.Context, token string) (Invitation, bool, error)
	ListByTenant(ctx context.Context, tenantID string) ([]Invitation, error)
	// MarkAccepted flips the accepted flag exactly once; it reports false
	// when the invitation was already consumed by a concurrent registration.
	MarkAccepted(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, tenantID, id string) (bool, error)
}
