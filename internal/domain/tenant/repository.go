package tenant

import "context"

// Repository exposes tenant persistence operations.
type Repository interface {
	Create(ctx context.Context, t Tenant) error
	GetByID(ctx context.Context, id string) (Tenant, bool, error)
	List(ctx context.Context) ([]Tenant, error)
	Update(ctx context.Context, t Tenant) (bool, error)
	UpdateBranding(ctx context.Context, id string, b Branding) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
