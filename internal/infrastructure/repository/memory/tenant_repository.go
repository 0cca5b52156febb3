package memory

import (
	"context"
	"sync"

	"github.com/canterahq/cantera/internal/domain/tenant"
)

type TenantRepository struct {
	mu     sync.RWMutex
	items  map[string]tenant.Tenant
	orders []string
}

func NewTenantRepository(tenants []tenant.Tenant) *TenantRepository {
	items := make(map[string]tenant.Tenant, len(tenants))
	orders := make([]string, 0, len(tenants))
	for _, t := range tenants {
		items[t.ID] = t
		orders = append(orders, t.ID)
	}

	return &TenantRepository{items: items, orders: orders}
}

func (r *TenantRepository) Create(_ context.Context, t tenant.Tenant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[t.ID] = t
	r.orders = append(r.orders, t.ID)
	return nil
}

func (r *TenantRepository) GetByID(_ context.Context, id string) (tenant.Tenant, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[id]
	if !ok {
		return tenant.Tenant{}, false, nil
	}

	return t, true, nil
}

func (r *TenantRepository) List(_ context.Context) ([]tenant.Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tenant.Tenant, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *TenantRepository) Update(_ context.Context, t tenant.Tenant) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[t.ID]; !ok {
		return false, nil
	}

	r.items[t.ID] = t
	return true, nil
}

func (r *TenantRepository) UpdateBranding(_ context.Context, id string, b tenant.Branding) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[id]
	if !ok {
		return false, nil
	}

	t.LogoURL = b.LogoURL
	t.BannerURL = b.BannerURL
	t.PrimaryColor = b.PrimaryColor
	t.SecondaryColor = b.SecondaryColor
	t.SocialLinks = b.SocialLinks
	r.items[id] = t
	return true, nil
}

func (r *TenantRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}

	delete(r.items, id)
	for i, oid := range r.orders {
		if oid == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}
	return true, nil
}

var _ tenant.Repository = (*TenantRepository)(nil)
