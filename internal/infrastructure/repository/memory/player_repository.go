package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/canterahq/cantera/internal/domain/player"
)

type PlayerRepository struct {
	mu     sync.RWMutex
	items  map[string]player.Player
	orders []string
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	items := make(map[string]player.Player, len(players))
	orders := make([]string, 0, len(players))
	for _, p := range players {
		items[p.ID] = p
		orders = append(orders, p.ID)
	}

	return &PlayerRepository{items: items, orders: orders}
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[p.ID] = p
	r.orders = append(r.orders, p.ID)
	return nil
}

func (r *PlayerRepository) GetByID(_ context.Context, tenantID, id string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]
	if !ok || p.TenantID != tenantID {
		return player.Player{}, false, nil
	}

	return p, true, nil
}

func (r *PlayerRepository) ListByTenant(_ context.Context, tenantID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, id := range r.orders {
		if p := r.items[id]; p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	sortPlayers(out)

	return out, nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, tenantID, teamID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, id := range r.orders {
		p := r.items[id]
		if p.TenantID != tenantID {
			continue
		}
		for _, tid := range p.TeamIDs {
			if tid == teamID {
				out = append(out, p)
				break
			}
		}
	}
	sortPlayers(out)

	return out, nil
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[p.ID]
	if !ok || existing.TenantID != p.TenantID {
		return false, nil
	}

	r.items[p.ID] = p
	return true, nil
}

func (r *PlayerRepository) ReplaceTeams(_ context.Context, tenantID, playerID string, teamIDs []string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[playerID]
	if !ok || p.TenantID != tenantID {
		return false, nil
	}

	p.TeamIDs = append([]string(nil), teamIDs...)
	r.items[playerID] = p
	return true, nil
}

func (r *PlayerRepository) Delete(_ context.Context, tenantID, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok || p.TenantID != tenantID {
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

func sortPlayers(players []player.Player) {
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].LastName != players[j].LastName {
			return players[i].LastName < players[j].LastName
		}
		return players[i].FirstName < players[j].FirstName
	})
}
