package physicaltest

import "context"

// Repository exposes physical test persistence, all tenant-scoped.
type Repository interface {
	Create(ctx context.Context, t PhysicalTest) error
	GetByID(ctx context.Context, tenantID, id string) (PhysicalTest, bool, error)
	ListByPlayer(ctx context.Context, tenantID, playerID string) ([]PhysicalTest, error)
	Update(ctx context.Context, t PhysicalTest) (bool, error)
	Delete(ctx context.Context, tenantID, id string) (bool, error)
}
