package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/canterahq/cantera/internal/domain/match"
)

type MatchRepository struct {
	mu     sync.RWMutex
	items  map[string]match.Match
	orders []string
	now    func() time.Time
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	items := make(map[string]match.Match, len(matches))
	orders := make([]string, 0, len(matches))
	for _, m := range matches {
		items[m.ID] = m
		orders = append(orders, m.ID)
	}

	return &MatchRepository{items: items, orders: orders, now: time.Now}
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[m.ID] = m
	r.orders = append(r.orders, m.ID)
	return nil
}

func (r *MatchRepository) GetByID(_ context.Context, tenantID, id string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[id]
	if !ok || m.TenantID != tenantID {
		return match.Match{}, false, nil
	}

	return m, true, nil
}

func (r *MatchRepository) ListByTenant(_ context.Context, tenantID string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, id := range r.orders {
		if m := r.items[id]; m.TenantID == tenantID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchDate.After(out[j].MatchDate)
	})

	return out, nil
}

func (r *MatchRepository) ListUpcoming(_ context.Context, tenantID string, limit int) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	today := r.now().UTC().Truncate(24 * time.Hour)
	out := make([]match.Match, 0)
	for _, id := range r.orders {
		m := r.items[id]
		if m.TenantID != tenantID || m.MatchDate.Before(today) {
			continue
		}
		if m.Status != match.StatusScheduled && m.Status != match.StatusConfirmed {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchDate.Before(out[j].MatchDate)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (r *MatchRepository) Update(_ context.Context, m match.Match) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[m.ID]
	if !ok || existing.TenantID != m.TenantID {
		return false, nil
	}

	r.items[m.ID] = m
	return true, nil
}

func (r *MatchRepository) Delete(_ context.Context, tenantID, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.items[id]
	if !ok || m.TenantID != tenantID {
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
