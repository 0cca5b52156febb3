package match

import "context"

// Repository exposes match persistence operations, all tenant-scoped.
type Repository interface {
	Create(ctx context.Context, m Match) error
	GetByID(ctx context.Context, tenantID, id string) (Match, bool, error)
	ListByTenant(ctx context.Context, tenantID string) ([]Match, error)
	ListUpcoming(ctx context.Context, tenantID string, limit int) ([]Match, error)
	Update(ctx context.Context, m Match) (bool, error)
	Delete(ctx context.Context, tenantID, id string) (bool, error)
}
