package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/canterahq/cantera/internal/domain/physicaltest"
)

type PhysicalTestRepository struct {
	mu     sync.RWMutex
	items  map[string]physicaltest.PhysicalTest
	orders []string
}

func NewPhysicalTestRepository() *PhysicalTestRepository {
	return &PhysicalTestRepository{items: make(map[string]physicaltest.PhysicalTest)}
}

func (r *PhysicalTestRepository) Create(_ context.Context, t physicaltest.PhysicalTest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[t.ID] = t
	r.orders = append(r.orders, t.ID)
	return nil
}

func (r *PhysicalTestRepository) GetByID(_ context.Context, tenantID, id string) (physicaltest.PhysicalTest, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[id]
	if !ok || t.TenantID != tenantID {
		return physicaltest.PhysicalTest{}, false, nil
	}

	return t, true, nil
}

func (r *PhysicalTestRepository) ListByPlayer(_ context.Context, tenantID, playerID string) ([]physicaltest.PhysicalTest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]physicaltest.PhysicalTest, 0)
	for _, id := range r.orders {
		t := r.items[id]
		if t.TenantID == tenantID && t.PlayerID == playerID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TestedOn.After(out[j].TestedOn)
	})

	return out, nil
}

func (r *PhysicalTestRepository) Update(_ context.Context, t physicaltest.PhysicalTest) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[t.ID]
	if !ok || existing.TenantID != t.TenantID {
		return false, nil
	}

	r.items[t.ID] = t
	return true, nil
}

func (r *PhysicalTestRepository) Delete(_ context.Context, tenantID, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[id]
	if !ok || t.TenantID != tenantID {
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

var _ physicaltest.Repository = (*PhysicalTestRepository)(nil)
