package memory

import (
	"context"
	"sync"

	"github.com/canterahq/cantera/internal/domain/team"
)

type TeamRepository struct {
	mu      sync.RWMutex
	items   map[string]team.Team
	orders  []string
	players *PlayerRepository
}

// NewTeamRepository takes the player repository so ReplaceMembers can
// rewrite memberships from the team side.
func NewTeamRepository(teams []team.Team, players *PlayerRepository) *TeamRepository {
	items := make(map[string]team.Team, len(teams))
	orders := make([]string, 0, len(teams))
	for _, t := range teams {
		items[t.ID] = t
		orders = append(orders, t.ID)
	}

	return &TeamRepository{items: items, orders: orders, players: players}
}

func (r *TeamRepository) Create(_ context.Context, t team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[t.ID] = t
	r.orders = append(r.orders, t.ID)
	return nil
}

func (r *TeamRepository) GetByID(_ context.Context, tenantID, id string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[id]
	if !ok || t.TenantID != tenantID {
		return team.Team{}, false, nil
	}

	return t, true, nil
}

func (r *TeamRepository) ListByTenant(_ context.Context, tenantID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0)
	for _, id := range r.orders {
		if t := r.items[id]; t.TenantID == tenantID {
			out = append(out, t)
		}
	}

	return out, nil
}

func (r *TeamRepository) Update(_ context.Context, t team.Team) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[t.ID]
	if !ok || existing.TenantID != t.TenantID {
		return false, nil
	}

	r.items[t.ID] = t
	return true, nil
}

func (r *TeamRepository) ReplaceMembers(ctx context.Context, tenantID, teamID string, playerIDs []string) (bool, error) {
	if _, ok, err := r.GetByID(ctx, tenantID, teamID); err != nil || !ok {
		return false, err
	}
	if r.players == nil {
		return true, nil
	}

	wanted := make(map[string]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		wanted[id] = struct{}{}
	}

	current, err := r.players.ListByTenant(ctx, tenantID)
	if err != nil {
		return false, err
	}
	for _, p := range current {
		teams := make([]string, 0, len(p.TeamIDs))
		for _, tid := range p.TeamIDs {
			if tid != teamID {
				teams = append(teams, tid)
			}
		}
		if _, keep := wanted[p.ID]; keep {
			teams = append(teams, teamID)
		}
		if _, err := r.players.ReplaceTeams(ctx, tenantID, p.ID, teams); err != nil {
			return false, err
		}
	}

	return true, nil
}

func (r *TeamRepository) Delete(_ context.Context, tenantID, id string) (bool, error) {
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

var _ team.Repository = (*TeamRepository)(nil)
