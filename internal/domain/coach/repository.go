package coach

import "context"

// Repository exposes coach persistence operations, all tenant-scoped.
type Repository interface {
	Create(ctx context.Context, c Coach) error
	GetByID(ctx context.Context, tenantID, id string) (Coach, bool, error)
	ListByTenant(ctx context.Context, tenantID string) ([]Coach, error)
	Update(ctx context.Context, c Coach) (bool, error)
	Delete(ctx context.Context, tenantID, id string) (bool, error)
}
