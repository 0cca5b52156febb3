package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/canterahq/cantera/internal/domain/player"
	qb "github.com/canterahq/cantera/internal/platform/querybuilder"
)

// team_ids is aggregated from the player_teams join table so every read
// carries the full membership set without a second round trip.
var playerColumns = []string{
	"p.id", "p.tenant_id", "p.first_name", "p.last_name", "p.national_id",
	"p.birth_date", "p.photo_url", "p.id_document_url",
	"COALESCE((SELECT array_agg(pt.team_id ORDER BY pt.team_id) FROM player_teams pt WHERE pt.player_id = p.id), '{}') AS team_ids",
	"p.created_at", "p.updated_at",
}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func playerBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(playerColumns...).From("players p")
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	query, args, err := qb.InsertInto("players").
		Columns(
			"id", "tenant_id", "first_name", "last_name", "national_id",
			"birth_date", "photo_url", "id_document_url", "created_at", "updated_at",
		).
		Values(
			p.ID, p.TenantID, p.FirstName, p.LastName, p.NationalID,
			p.BirthDate, p.PhotoURL, p.IDDocumentURL, p.CreatedAt, p.UpdatedAt,
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert player query: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create player tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert player: %w", err)
	}
	if err := insertPlayerTeams(ctx, tx, p.TenantID, p.ID, p.TeamIDs); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create player tx: %w", err)
	}

	return nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, tenantID, id string) (player.Player, bool, error) {
	query, args, err := playerBaseSelectBuilder().
		Where(
			qb.Eq("p.tenant_id", tenantID),
			qb.Eq("p.id", id),
		).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}

	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) ListByTenant(ctx context.Context, tenantID string) ([]player.Player, error) {
	query, args, err := playerBaseSelectBuilder().
		Where(qb.Eq("p.tenant_id", tenantID)).
		OrderBy("p.last_name", "p.first_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	return r.selectPlayers(ctx, "list players", query, args)
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, tenantID, teamID string) ([]player.Player, error) {
	query, args, err := playerBaseSelectBuilder().
		Join("JOIN player_teams m ON m.player_id = p.id").
		Where(
			qb.Eq("p.tenant_id", tenantID),
			qb.Eq("m.team_id", teamID),
		).
		OrderBy("p.last_name", "p.first_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players by team query: %w", err)
	}

	return r.selectPlayers(ctx, "list players by team", query, args)
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) (bool, error) {
	query, args, err := qb.Update("players").
		Set("first_name", p.FirstName).
		Set("last_name", p.LastName).
		Set("national_id", p.NationalID).
		Set("birth_date", p.BirthDate).
		Set("photo_url", p.PhotoURL).
		Set("id_document_url", p.IDDocumentURL).
		SetRaw("updated_at", "NOW()").
		Where(
			qb.Eq("tenant_id", p.TenantID),
			qb.Eq("id", p.ID),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update player query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update player: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update player rows affected: %w", err)
	}

	return affected > 0, nil
}

// ReplaceTeams deletes the existing membership rows and writes the new set
// in one transaction.
func (r *PlayerRepository) ReplaceTeams(ctx context.Context, tenantID, playerID string, teamIDs []string) (bool, error) {
	exists, err := r.playerExists(ctx, tenantID, playerID)
	if err != nil || !exists {
		return false, err
	}

	deleteQuery, deleteArgs, err := qb.DeleteFrom("player_teams").
		Where(
			qb.Eq("tenant_id", tenantID),
			qb.Eq("player_id", playerID),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build clear player teams query: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin replace player teams tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return false, fmt.Errorf("clear player teams: %w", err)
	}
	if err := insertPlayerTeams(ctx, tx, tenantID, playerID, teamIDs); err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit replace player teams tx: %w", err)
	}

	return true, nil
}

func (r *PlayerRepository) Delete(ctx context.Context, tenantID, id string) (bool, error) {
	query, args, err := qb.DeleteFrom("players").
		Where(
			qb.Eq("tenant_id", tenantID),
			qb.Eq("id", id),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete player query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete player: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete player rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *PlayerRepository) selectPlayers(ctx context.Context, op, query string, args []any) ([]player.Player, error) {
	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) playerExists(ctx context.Context, tenantID, id string) (bool, error) {
	query, args, err := qb.Select("id").
		From("players").
		Where(
			qb.Eq("tenant_id", tenantID),
			qb.Eq("id", id),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build player exists query: %w", err)
	}

	var found string
	if err := r.db.GetContext(ctx, &found, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("player exists: %w", err)
	}

	return true, nil
}

func insertPlayerTeams(ctx context.Context, tx *sqlx.Tx, tenantID, playerID string, teamIDs []string) error {
	if len(teamIDs) == 0 {
		return nil
	}

	builder := qb.InsertInto("player_teams").
		Columns("tenant_id", "player_id", "team_id")
	for _, teamID := range teamIDs {
		builder.Values(tenantID, playerID, teamID)
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build insert player teams query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert player teams: %w", err)
	}

	return nil
}
