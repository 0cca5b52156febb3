package player

import "context"

// Repository exposes player persistence operations, all tenant-scoped.
type Repository interface {
	Create(ctx context.Context, p Player) error
	GetByID(ctx context.Context, tenantID, id string) (Player, bool, error)
	ListByTenant(ctx context.Context, tenantID string) ([]Player, error)
	ListByTeam(ctx context.Context, tenantID, teamID string) ([]Player, error)
	Update(ctx context.Context, p Player) (bool, error)
	// ReplaceTeams swaps the full team membership set in one statement pair.
	ReplaceTeams(ctx context.Context, tenantID, playerID string, teamIDs []string) (bool, error)
	Delete(ctx context.Context, tenantID, id string) (bool, error)
}
