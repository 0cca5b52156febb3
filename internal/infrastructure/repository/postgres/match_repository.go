package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/canterahq/cantera/internal/domain/match"
	qb "github.com/canterahq/cantera/internal/platform/querybuilder"
)

var matchColumns = []string{
	"id", "tenant_id", "home_team_id", "away_team_id", "match_date",
	"kickoff_time", "venue", "competition", "type", "status", "home_score",
	"away_score", "referee", "notes", "duration_minutes", "created_at", "updated_at",
}

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func matchBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(matchColumns...).From("matches")
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) error {
	query, args, err := qb.InsertInto("matches").
		Columns(matchColumns...).
		Values(
			m.ID, m.TenantID, m.HomeTeamID, matchAwayTeamID(m.AwayTeamID),
			m.MatchDate, m.KickoffTime, m.Venue, m.Competition, string(m.Type),
			string(m.Status), m.HomeScore, m.AwayScore, m.Referee, m.Notes,
			m.DurationMinutes, m.CreatedAt, m.UpdatedAt,
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert match: %w", err)
	}

	return nil
}

func (r *MatchRepository) GetByID(ctx context.Context, tenantID, id string) (match.Match, bool, error) {
	query, args, err := matchBaseSelectBuilder().
		Where(
			qb.Eq("tenant_id", tenantID),
			qb.Eq("id", id),
		).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}

	return matchFromRow(row), true, nil
}

func (r *MatchRepository) ListByTenant(ctx context.Context, tenantID string) ([]match.Match, error) {
	query, args, err := matchBaseSelectBuilder().
		Where(qb.Eq("tenant_id", tenantID)).
		OrderBy("match_date DESC", "kickoff_time DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	return r.selectMatches(ctx, "list matches", query, args)
}

func (r *MatchRepository) ListUpcoming(ctx context.Context, tenantID string, limit int) ([]match.Match, error) {
	query, args, err := matchBaseSelectBuilder().
		Where(
			qb.Eq("tenant_id", tenantID),
			qb.Expr("match_date >= CURRENT_DATE"),
			qb.In("status", []any{
				string(match.StatusScheduled),
				string(match.StatusConfirmed),
			}),
		).
		OrderBy("match_date", "kickoff_time").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list upcoming matches query: %w", err)
	}

	return r.selectMatches(ctx, "list upcoming matches", query, args)
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) (bool, error) {
	query, args, err := qb.Update("matches").
		Set("home_team_id", m.HomeTeamID).
		Set("away_team_id", matchAwayTeamID(m.AwayTeamID)).
		Set("match_date", m.MatchDate).
		Set("kickoff_time", m.KickoffTime).
		Set("venue", m.Venue).
		Set("competition", m.Competition).
		Set("type", string(m.Type)).
		Set("status", string(m.Status)).
		Set("home_score", m.HomeScore).
		Set("away_score", m.AwayScore).
		Set("referee", m.Referee).
		Set("notes", m.Notes).
		Set("duration_minutes", m.DurationMinutes).
		SetRaw("updated_at", "NOW()").
		Where(
			qb.Eq("tenant_id", m.TenantID),
			qb.Eq("id", m.ID),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update match query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update match: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update match rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *MatchRepository) Delete(ctx context.Context, tenantID, id string) (bool, error) {
	query, args, err := qb.DeleteFrom("matches").
		Where(
			qb.Eq("tenant_id", tenantID),
			qb.Eq("id", id),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete match query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete match: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete match rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *MatchRepository) selectMatches(ctx context.Context, op, query string, args []any) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}
