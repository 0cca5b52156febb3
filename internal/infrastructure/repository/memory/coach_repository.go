package memory

import (
	"context"
	"sync"

	"github.com/canterahq/cantera/internal/domain/coach"
)

type CoachRepository struct {
	mu     sync.RWMutex
	items  map[string]coach.Coach
	orders []string
}

func NewCoachRepository(coaches []coach.Coach) *CoachRepository {
	items := make(map[string]coach.Coach, len(coaches))
	orders := make([]string, 0, len(coaches))
	for _, c := range coaches {
		items[c.ID] = c
		orders = append(orders, c.ID)
	}

	return &CoachRepository{items: items, orders: orders}
}

func (r *CoachRepository) Create(_ context.Context, c coach.Coach) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[c.ID] = c
	r.orders = append(r.orders, c.ID)
	return nil
}

func (r *CoachRepository) GetByID(_ context.Context, tenantID, id string) (coach.Coach, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[id]
	if !ok || c.TenantID != tenantID {
		return coach.Coach{}, false, nil
	}

	return c, true, nil
}

func (r *CoachRepository) ListByTenant(_ context.Context, tenantID string) ([]coach.Coach, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]coach.Coach, 0)
	for _, id := range r.orders {
		if c := r.items[id]; c.TenantID == tenantID {
			out = append(out, c)
		}
	}

	return out, nil
}

func (r *CoachRepository) Update(_ context.Context, c coach.Coach) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[c.ID]
	if !ok || existing.TenantID != c.TenantID {
		return false, nil
	}

	r.items[c.ID] = c
	return true, nil
}

func (r *CoachRepository) Delete(_ context.Context, tenantID, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.items[id]
	if !ok || c.TenantID != tenantID {
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

var _ coach.Repository = (*CoachRepository)(nil)
