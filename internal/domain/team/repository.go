package team

import "context"

// Repository exposes team persistence operations, all tenant-scoped.
type Repository interface {
	Create(ctx context.Context, t Team) error
	GetByID(ctx context.Context, tenantID, id string) (Team, bool, error)
	ListByTenant(ctx context.Context, tenantID string) ([]Team, error)
	Update(ctx context.Context, t Team) (bool, error)
	// ReplaceMembers swaps the full player roster, mirroring
	// player.Repository.ReplaceTeams from the team side.
	ReplaceMembers(ctx context.Context, tenantID, teamID string, playerIDs []string) (bool, error)
	Delete(ctx context.Context, tenantID, id string) (bool, error)
}
