package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/canterahq/cantera/internal/domain/team"
	qb "github.com/canterahq/cantera/internal/platform/querybuilder"
)

var teamColumns = []string{
	"id", "tenant_id", "name", "category", "coach_id", "created_at", "updated_at",
}

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func teamBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(teamColumns...).From("teams")
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) error {
	query, args, err := qb.InsertInto("teams").
		Columns(teamColumns...).
		Values(
			t.ID, t.TenantID, t.Name, t.Category, teamCoachID(t.CoachID),
			t.CreatedAt, t.UpdatedAt,
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert team: %w", err)
	}

	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, tenantID, id string) (team.Team, bool, error) {
	query, args, err := teamBaseSelectBuilder().
		Where(
			qb.Eq("tenant_id", tenantID),
			qb.Eq("id", id),
		).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team: %w", err)
	}

	return teamFromRow(row), true, nil
}

func (r *TeamRepository) ListByTenant(ctx context.Context, tenantID string) ([]team.Team, error) {
	query, args, err := teamBaseSelectBuilder().
		Where(qb.Eq("tenant_id", tenantID)).
		OrderBy("category", "name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out, nil
}

func (r *TeamRepository) Update(ctx context.Context, t team.Team) (bool, error) {
	query, args, err := qb.Update("teams").
		Set("name", t.Name).
		Set("category", t.Category).
		Set("coach_id", teamCoachID(t.CoachID)).
		SetRaw("updated_at", "NOW()").
		Where(
			qb.Eq("tenant_id", t.TenantID),
			qb.Eq("id", t.ID),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update team query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update team: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update team rows affected: %w", err)
	}

	return affected > 0, nil
}

// ReplaceMembers swaps the roster in one transaction, mirroring the
// player-side membership replacement.
func (r *TeamRepository) ReplaceMembers(ctx context.Context, tenantID, teamID string, playerIDs []string) (bool, error) {
	if _, exists, err := r.GetByID(ctx, tenantID, teamID); err != nil || !exists {
		return false, err
	}

	deleteQuery, deleteArgs, err := qb.DeleteFrom("player_teams").
		Where(
			qb.Eq("tenant_id", tenantID),
			qb.Eq("team_id", teamID),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build clear team members query: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin replace team members tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return false, fmt.Errorf("clear team members: %w", err)
	}
	if len(playerIDs) > 0 {
		builder := qb.InsertInto("player_teams").
			Columns("tenant_id", "player_id", "team_id")
		for _, playerID := range playerIDs {
			builder.Values(tenantID, playerID, teamID)
		}
		insertQuery, insertArgs, err := builder.ToSQL()
		if err != nil {
			return false, fmt.Errorf("build insert team members query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return false, fmt.Errorf("insert team members: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit replace team members tx: %w", err)
	}

	return true, nil
}

func (r *TeamRepository) Delete(ctx context.Context, tenantID, id string) (bool, error) {
	query, args, err := qb.DeleteFrom("teams").
		Where(
			qb.Eq("tenant_id", tenantID),
			qb.Eq("id", id),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete team query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete team: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete team rows affected: %w", err)
	}

	return affected > 0, nil
}
