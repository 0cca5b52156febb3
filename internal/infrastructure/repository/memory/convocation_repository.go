package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/canterahq/cantera/internal/domain/convocation"
	"github.com/canterahq/cantera/internal/domain/match"
	"github.com/canterahq/cantera/internal/domain/player"
)

// ConvocationRepository mirrors the Postgres behavior in memory: the batch
// insert and both uniqueness checks run under one lock, so concurrent
// batches cannot both claim the same player or jersey.
type ConvocationRepository struct {
	mu      sync.RWMutex
	items   map[string]convocation.Convocation
	orders  []string
	players *PlayerRepository
	matches *MatchRepository
}

func NewConvocationRepository(players *PlayerRepository, matches *MatchRepository) *ConvocationRepository {
	return &ConvocationRepository{
		items:   make(map[string]convocation.Convocation),
		players: players,
		matches: matches,
	}
}

func (r *ConvocationRepository) CreateBatch(_ context.Context, tenantID, matchID string, entries []convocation.Convocation) ([]convocation.Convocation, error) {
	if len(entries) == 0 {
		return []convocation.Convocation{}, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range entries {
		for _, id := range r.orders {
			existing := r.items[id]
			if existing.TenantID != tenantID || existing.MatchID != matchID {
				continue
			}
			if existing.PlayerID == e.PlayerID {
				return nil, convocation.ErrDuplicate
			}
			if existing.JerseyNumber != nil && e.JerseyNumber != nil && *existing.JerseyNumber == *e.JerseyNumber {
				return nil, convocation.ErrJerseyTaken
			}
		}
	}

	for _, e := range entries {
		r.items[e.ID] = e
		r.orders = append(r.orders, e.ID)
	}

	return entries, nil
}

func (r *ConvocationRepository) GetByID(_ context.Context, tenantID, id string) (convocation.Convocation, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[id]
	if !ok || c.TenantID != tenantID {
		return convocation.Convocation{}, false, nil
	}

	return c, true, nil
}

func (r *ConvocationRepository) ListByMatch(ctx context.Context, tenantID, matchID string, status *convocation.Status) ([]convocation.WithPlayer, error) {
	r.mu.RLock()
	rows := make([]convocation.Convocation, 0)
	for _, id := range r.orders {
		c := r.items[id]
		if c.TenantID != tenantID || c.MatchID != matchID {
			continue
		}
		if status != nil && c.Status != *status {
			continue
		}
		rows = append(rows, c)
	}
	r.mu.RUnlock()

	out := make([]convocation.WithPlayer, 0, len(rows))
	for _, c := range rows {
		wp := convocation.WithPlayer{Convocation: c}
		if r.players != nil {
			if p, ok, err := r.players.GetByID(ctx, tenantID, c.PlayerID); err != nil {
				return nil, err
			} else if ok {
				wp.PlayerFirstName = p.FirstName
				wp.PlayerLastName = p.LastName
			}
		}
		out = append(out, wp)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsStarter != out[j].IsStarter {
			return out[i].IsStarter
		}
		if out[i].PlayerLastName != out[j].PlayerLastName {
			return out[i].PlayerLastName < out[j].PlayerLastName
		}
		return out[i].PlayerFirstName < out[j].PlayerFirstName
	})

	return out, nil
}

func (r *ConvocationRepository) DeleteByMatchAndPlayer(_ context.Context, tenantID, matchID, playerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, id := range r.orders {
		c := r.items[id]
		if c.TenantID == tenantID && c.MatchID == matchID && c.PlayerID == playerID {
			delete(r.items, id)
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return true, nil
		}
	}

	return false, nil
}

func (r *ConvocationRepository) Update(_ context.Context, tenantID, id string, fields convocation.UpdateFields) (convocation.Convocation, bool, error) {
	if fields.Empty() {
		return convocation.Convocation{}, false, convocation.ErrNoFieldsProvided
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.items[id]
	if !ok || c.TenantID != tenantID {
		return convocation.Convocation{}, false, nil
	}

	if fields.JerseyNumber != nil {
		for _, otherID := range r.orders {
			other := r.items[otherID]
			if other.ID == c.ID || other.TenantID != tenantID || other.MatchID != c.MatchID {
				continue
			}
			if other.JerseyNumber != nil && *other.JerseyNumber == *fields.JerseyNumber {
				return convocation.Convocation{}, false, convocation.ErrJerseyTaken
			}
		}
	}

	if fields.Status != nil {
		c.Status = *fields.Status
	}
	if fields.Position != nil {
		c.Position = *fields.Position
	}
	if fields.IsStarter != nil {
		c.IsStarter = *fields.IsStarter
	}
	if fields.JerseyNumber != nil {
		c.JerseyNumber = fields.JerseyNumber
	}
	if fields.Notes != nil {
		c.Notes = *fields.Notes
	}
	if fields.MinutesPlayed != nil {
		c.MinutesPlayed = *fields.MinutesPlayed
	}
	if fields.GoalsScored != nil {
		c.GoalsScored = *fields.GoalsScored
	}
	if fields.Assists != nil {
		c.Assists = *fields.Assists
	}
	if fields.YellowCards != nil {
		c.YellowCards = *fields.YellowCards
	}
	if fields.RedCards != nil {
		c.RedCards = *fields.RedCards
	}
	c.UpdatedAt = time.Now().UTC()

	r.items[id] = c
	return c, true, nil
}

func (r *ConvocationRepository) PlayerHistory(ctx context.Context, tenantID, playerID string, limit int) ([]convocation.HistoryEntry, error) {
	r.mu.RLock()
	rows := make([]convocation.Convocation, 0)
	for _, id := range r.orders {
		c := r.items[id]
		if c.TenantID == tenantID && c.PlayerID == playerID {
			rows = append(rows, c)
		}
	}
	r.mu.RUnlock()

	out := make([]convocation.HistoryEntry, 0, len(rows))
	for _, c := range rows {
		entry := convocation.HistoryEntry{Convocation: c}
		if r.matches != nil {
			if m, ok, err := r.matches.GetByID(ctx, tenantID, c.MatchID); err != nil {
				return nil, err
			} else if ok {
				entry.MatchDate = m.MatchDate
				entry.KickoffTime = m.KickoffTime
				entry.Venue = m.Venue
				entry.Competition = m.Competition
				entry.HomeTeamID = m.HomeTeamID
				entry.AwayTeamID = m.AwayTeamID
			}
		}
		out = append(out, entry)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].MatchDate.Equal(out[j].MatchDate) {
			return out[i].MatchDate.After(out[j].MatchDate)
		}
		return out[i].KickoffTime > out[j].KickoffTime
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (r *ConvocationRepository) PlayerStats(_ context.Context, tenantID, playerID string) (convocation.PlayerStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var stats convocation.PlayerStats
	for _, id := range r.orders {
		c := r.items[id]
		if c.TenantID != tenantID || c.PlayerID != playerID {
			continue
		}
		stats.TotalConvocations++
		switch c.Status {
		case convocation.StatusConfirmed:
			stats.Confirmations++
		case convocation.StatusAbsent:
			stats.Absences++
		}
		stats.TotalMinutes += c.MinutesPlayed
		stats.TotalGoals += c.GoalsScored
		stats.TotalAssists += c.Assists
	}

	return stats, nil
}

func (r *ConvocationRepository) TenantTotals(_ context.Context, tenantID string) (int, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total, confirmed := 0, 0
	for _, id := range r.orders {
		c := r.items[id]
		if c.TenantID != tenantID {
			continue
		}
		total++
		if c.Status == convocation.StatusConfirmed {
			confirmed++
		}
	}

	return total, confirmed, nil
}

var (
	_ convocation.Repository = (*ConvocationRepository)(nil)
	_ player.Repository      = (*PlayerRepository)(nil)
	_ match.Repository       = (*MatchRepository)(nil)
)
