package convocation

import "context"

// Repository exposes convocation persistence operations, all tenant-scoped.
//
// CreateBatch is all-or-nothing: when any entry violates the per-match
// player or jersey uniqueness it returns ErrDuplicate or ErrJerseyTaken and
// persists no row from the batch. Implementations back the two invariants
// with real unique constraints so concurrent inserts cannot both win.
type Repository interface {
	CreateBatch(ctx context.Context, tenantID, matchID string, entries []Convocation) ([]Convocation, error)
	GetByID(ctx context.Context, tenantID, id string) (Convocation, bool, error)
	ListByMatch(ctx context.Context, tenantID, matchID string, status *Status) ([]WithPlayer, error)
	DeleteByMatchAndPlayer(ctx context.Context, tenantID, matchID, playerID string) (bool, error)
	// Update applies only the set fields and stamps updated_at; it reports
	// false when no row matches (id, tenant_id).
	Update(ctx context.Context, tenantID, id string, fields UpdateFields) (Convocation, bool, error)
	PlayerHistory(ctx context.Context, tenantID, playerID string, limit int) ([]HistoryEntry, error)
	PlayerStats(ctx context.Context, tenantID, playerID string) (PlayerStats, error)
	// TenantTotals counts all convocations and the confirmed subset for
	// one tenant, feeding the dashboard confirmation rate.
	TenantTotals(ctx context.Context, tenantID string) (total, confirmed int, err error)
}
