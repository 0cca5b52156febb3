package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/canterahq/cantera/internal/domain/convocation"
	qb "github.com/canterahq/cantera/internal/platform/querybuilder"
)

var convocationColumns = []string{
	"id", "tenant_id", "match_id", "player_id", "status", "is_starter",
	"position", "jersey_number", "notes", "minutes_played", "goals_scored",
	"assists", "yellow_cards", "red_cards", "created_at", "updated_at",
}

type ConvocationRepository struct {
	db *sqlx.DB
}

func NewConvocationRepository(db *sqlx.DB) *ConvocationRepository {
	return &ConvocationRepository{db: db}
}

func convocationBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(convocationColumns...).From("match_convocations")
}

// CreateBatch inserts every entry inside one transaction. The named unique
// constraints back the per-match player and jersey invariants; a violation
// rolls the whole batch back and surfaces as the matching domain error.
func (r *ConvocationRepository) CreateBatch(ctx context.Context, tenantID, matchID string, entries []convocation.Convocation) ([]convocation.Convocation, error) {
	if len(entries) == 0 {
		return []convocation.Convocation{}, nil
	}

	builder := qb.InsertInto("match_convocations").Columns(convocationColumns...)
	for _, e := range entries {
		builder.Values(
			e.ID, tenantID, matchID, e.PlayerID, string(e.Status), e.IsStarter,
			e.Position, e.JerseyNumber, e.Notes, e.MinutesPlayed, e.GoalsScored,
			e.Assists, e.YellowCards, e.RedCards, e.CreatedAt, e.UpdatedAt,
		)
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build batch insert convocations query: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin convocation batch tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return nil, mapUniqueViolation(err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit convocation batch tx: %w", err)
	}

	return entries, nil
}

func (r *ConvocationRepository) GetByID(ctx context.Context, tenantID, id string) (convocation.Convocation, bool, error) {
	query, args, err := convocationBaseSelectBuilder().
		Where(
			qb.Eq("tenant_id", tenantID),
			qb.Eq("id", id),
		).
		ToSQL()
	if err != nil {
		return convocation.Convocation{}, false, fmt.Errorf("build get convocation query: %w", err)
	}

	var row convocationTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return convocation.Convocation{}, false, nil
		}
		return convocation.Convocation{}, false, fmt.Errorf("get convocation: %w", err)
	}

	return convocationFromRow(row), true, nil
}

// listByMatchQuery joins the player name columns in. The join repeats the
// tenant equality so every joined table stays tenant-bound.
func listByMatchQuery(tenantID, matchID string, status *convocation.Status) (string, []any, error) {
	columns := make([]string, 0, len(convocationColumns)+2)
	for _, c := range convocationColumns {
		columns = append(columns, "mc."+c)
	}
	columns = append(columns,
		"p.first_name AS player_first_name",
		"p.last_name AS player_last_name",
	)

	builder := qb.Select(columns...).
		From("match_convocations mc").
		Join("JOIN players p ON p.id = mc.player_id AND p.tenant_id = mc.tenant_id").
		Where(
			qb.Eq("mc.tenant_id", tenantID),
			qb.Eq("mc.match_id", matchID),
		).
		OrderBy("mc.is_starter DESC", "p.last_name", "p.first_name")
	if status != nil {
		builder.Where(qb.Eq("mc.status", string(*status)))
	}

	return builder.ToSQL()
}

func (r *ConvocationRepository) ListByMatch(ctx context.Context, tenantID, matchID string, status *convocation.Status) ([]convocation.WithPlayer, error) {
	query, args, err := listByMatchQuery(tenantID, matchID, status)
	if err != nil {
		return nil, fmt.Errorf("build list convocations query: %w", err)
	}

	var rows []convocationWithPlayerModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list convocations by match: %w", err)
	}

	out := make([]convocation.WithPlayer, 0, len(rows))
	for _, row := range rows {
		out = append(out, convocationWithPlayerFromRow(row))
	}
	return out, nil
}

func (r *ConvocationRepository) DeleteByMatchAndPlayer(ctx context.Context, tenantID, matchID, playerID string) (bool, error) {
	query, args, err := qb.DeleteFrom("match_convocations").
		Where(
			qb.Eq("tenant_id", tenantID),
			qb.Eq("match_id", matchID),
			qb.Eq("player_id", playerID),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete convocation query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete convocation: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete convocation rows affected: %w", err)
	}

	return affected > 0, nil
}

// Update compiles a SET clause from the non-nil fields only and stamps
// updated_at server-side. RETURNING hands back the row as persisted.
func (r *ConvocationRepository) Update(ctx context.Context, tenantID, id string, fields convocation.UpdateFields) (convocation.Convocation, bool, error) {
	builder := qb.Update("match_convocations")
	if fields.Status != nil {
		builder.Set("status", string(*fields.Status))
	}
	if fields.Position != nil {
		builder.Set("position", *fields.Position)
	}
	if fields.IsStarter != nil {
		builder.Set("is_starter", *fields.IsStarter)
	}
	if fields.JerseyNumber != nil {
		builder.Set("jersey_number", *fields.JerseyNumber)
	}
	if fields.Notes != nil {
		builder.Set("notes", *fields.Notes)
	}
	if fields.MinutesPlayed != nil {
		builder.Set("minutes_played", *fields.MinutesPlayed)
	}
	if fields.GoalsScored != nil {
		builder.Set("goals_scored", *fields.GoalsScored)
	}
	if fields.Assists != nil {
		builder.Set("assists", *fields.Assists)
	}
	if fields.YellowCards != nil {
		builder.Set("yellow_cards", *fields.YellowCards)
	}
	if fields.RedCards != nil {
		builder.Set("red_cards", *fields.RedCards)
	}
	if builder.SetCount() == 0 {
		return convocation.Convocation{}, false, convocation.ErrNoFieldsProvided
	}

	query, args, err := builder.
		SetRaw("updated_at", "NOW()").
		Where(
			qb.Eq("tenant_id", tenantID),
			qb.Eq("id", id),
		).
		Suffix("RETURNING " + joinColumns(convocationColumns)).
		ToSQL()
	if err != nil {
		return convocation.Convocation{}, false, fmt.Errorf("build update convocation query: %w", err)
	}

	var row convocationTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return convocation.Convocation{}, false, nil
		}
		return convocation.Convocation{}, false, mapUniqueViolation(err)
	}

	return convocationFromRow(row), true, nil
}

func playerHistoryQuery(tenantID, playerID string, limit int) (string, []any, error) {
	columns := make([]string, 0, len(convocationColumns)+6)
	for _, c := range convocationColumns {
		columns = append(columns, "mc."+c)
	}
	columns = append(columns,
		"m.match_date", "m.kickoff_time", "m.venue", "m.competition",
		"m.home_team_id", "m.away_team_id",
	)

	return qb.Select(columns...).
		From("match_convocations mc").
		Join("JOIN matches m ON m.id = mc.match_id AND m.tenant_id = mc.tenant_id").
		Where(
			qb.Eq("mc.tenant_id", tenantID),
			qb.Eq("mc.player_id", playerID),
		).
		OrderBy("m.match_date DESC", "m.kickoff_time DESC").
		Limit(limit).
		ToSQL()
}

func (r *ConvocationRepository) PlayerHistory(ctx context.Context, tenantID, playerID string, limit int) ([]convocation.HistoryEntry, error) {
	query, args, err := playerHistoryQuery(tenantID, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("build player history query: %w", err)
	}

	var rows []convocationHistoryModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("player convocation history: %w", err)
	}

	out := make([]convocation.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, convocationHistoryFromRow(row))
	}
	return out, nil
}

func (r *ConvocationRepository) PlayerStats(ctx context.Context, tenantID, playerID string) (convocation.PlayerStats, error) {
	query, args, err := qb.Select(
		"COUNT(*) AS total_convocations",
		"COUNT(*) FILTER (WHERE status = 'confirmado') AS confirmations",
		"COUNT(*) FILTER (WHERE status = 'ausente') AS absences",
		"COALESCE(SUM(minutes_played), 0) AS total_minutes",
		"COALESCE(SUM(goals_scored), 0) AS total_goals",
		"COALESCE(SUM(assists), 0) AS total_assists",
	).
		From("match_convocations").
		Where(
			qb.Eq("tenant_id", tenantID),
			qb.Eq("player_id", playerID),
		).
		ToSQL()
	if err != nil {
		return convocation.PlayerStats{}, fmt.Errorf("build player stats query: %w", err)
	}

	var row convocationStatsModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return convocation.PlayerStats{}, fmt.Errorf("player convocation stats: %w", err)
	}

	return convocation.PlayerStats{
		TotalConvocations: row.TotalConvocations,
		Confirmations:     row.Confirmations,
		Absences:          row.Absences,
		TotalMinutes:      row.TotalMinutes,
		TotalGoals:        row.TotalGoals,
		TotalAssists:      row.TotalAssists,
	}, nil
}

func (r *ConvocationRepository) TenantTotals(ctx context.Context, tenantID string) (int, int, error) {
	query, args, err := qb.Select(
		"COUNT(*) AS total",
		"COUNT(*) FILTER (WHERE status = 'confirmado') AS confirmed",
	).
		From("match_convocations").
		Where(qb.Eq("tenant_id", tenantID)).
		ToSQL()
	if err != nil {
		return 0, 0, fmt.Errorf("build tenant totals query: %w", err)
	}

	var row struct {
		Total     int `db:"total"`
		Confirmed int `db:"confirmed"`
	}
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return 0, 0, fmt.Errorf("tenant convocation totals: %w", err)
	}

	return row.Total, row.Confirmed, nil
}
