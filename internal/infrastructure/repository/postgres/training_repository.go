package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/canterahq/cantera/internal/domain/training"
	qb "github.com/canterahq/cantera/internal/platform/querybuilder"
)

var trainingColumns = []string{
	"id", "tenant_id", "team_id", "starts_at", "duration_minutes",
	"location", "focus", "notes", "series_id", "created_at", "updated_at",
}

var attendanceColumns = []string{
	"id", "tenant_id", "training_id", "player_id", "present", "remarks",
	"created_at", "updated_at",
}

type TrainingRepository struct {
	db *sqlx.DB
}

func NewTrainingRepository(db *sqlx.DB) *TrainingRepository {
	return &TrainingRepository{db: db}
}

func trainingBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(trainingColumns...).From("trainings")
}

func (r *TrainingRepository) Create(ctx context.Context, t training.Training) error {
	query, args, err := trainingInsertBuilder([]training.Training{t}).ToSQL()
	if err != nil {
		return fmt.Errorf("build insert training query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert training: %w", err)
	}

	return nil
}

// CreateSeries writes all occurrences in one statement so a failure leaves
// no partial series.
func (r *TrainingRepository) CreateSeries(ctx context.Context, sessions []training.Training) error {
	if len(sessions) == 0 {
		return nil
	}

	query, args, err := trainingInsertBuilder(sessions).ToSQL()
	if err != nil {
		return fmt.Errorf("build insert training series query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert training series: %w", err)
	}

	return nil
}

func (r *TrainingRepository) GetByID(ctx context.Context, tenantID, id string) (training.Training, bool, error) {
	query, args, err := trainingBaseSelectBuilder().
		Where(
			qb.Eq("tenant_id", tenantID),
			qb.Eq("id", id),
		).
		ToSQL()
	if err != nil {
		return training.Training{}, false, fmt.Errorf("build get training query: %w", err)
	}

	var row trainingTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return training.Training{}, false, nil
		}
		return training.Training{}, false, fmt.Errorf("get training: %w", err)
	}

	return trainingFromRow(row), true, nil
}

func (r *TrainingRepository) ListByTenant(ctx context.Context, tenantID string) ([]training.Training, error) {
	query, args, err := trainingBaseSelectBuilder().
		Where(qb.Eq("tenant_id", tenantID)).
		OrderBy("starts_at").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list trainings query: %w", err)
	}

	var rows []trainingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list trainings: %w", err)
	}

	out := make([]training.Training, 0, len(rows))
	for _, row := range rows {
		out = append(out, trainingFromRow(row))
	}
	return out, nil
}

// Update rewrites the target session. With applyToFuture, later sessions of
// the same series take the shared fields (team, duration, location, focus,
// notes) but keep their own start times.
func (r *TrainingRepository) Update(ctx context.Context, t training.Training, applyToFuture bool) (bool, error) {
	existing, exists, err := r.GetByID(ctx, t.TenantID, t.ID)
	if err != nil || !exists {
		return false, err
	}

	targetQuery, targetArgs, err := qb.Update("trainings").
		Set("team_id", t.TeamID).
		Set("starts_at", t.StartsAt).
		Set("duration_minutes", t.DurationMinutes).
		Set("location", t.Location).
		Set("focus", t.Focus).
		Set("notes", t.Notes).
		SetRaw("updated_at", "NOW()").
		Where(
			qb.Eq("tenant_id", t.TenantID),
			qb.Eq("id", t.ID),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update training query: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin update training tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, targetQuery, targetArgs...); err != nil {
		return false, fmt.Errorf("update training: %w", err)
	}

	if applyToFuture && existing.SeriesID != "" {
		futureQuery, futureArgs, err := qb.Update("trainings").
			Set("team_id", t.TeamID).
			Set("duration_minutes", t.DurationMinutes).
			Set("location", t.Location).
			Set("focus", t.Focus).
			Set("notes", t.Notes).
			SetRaw("updated_at", "NOW()").
			Where(
				qb.Eq("tenant_id", t.TenantID),
				qb.Eq("series_id", existing.SeriesID),
				qb.Expr("starts_at > ?", existing.StartsAt),
			).
			ToSQL()
		if err != nil {
			return false, fmt.Errorf("build update training series query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, futureQuery, futureArgs...); err != nil {
			return false, fmt.Errorf("update training series: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit update training tx: %w", err)
	}

	return true, nil
}

func (r *TrainingRepository) Delete(ctx context.Context, tenantID, id string, applyToFuture bool) (bool, error) {
	existing, exists, err := r.GetByID(ctx, tenantID, id)
	if err != nil || !exists {
		return false, err
	}

	builder := qb.DeleteFrom("trainings")
	if applyToFuture && existing.SeriesID != "" {
		builder.Where(
			qb.Eq("tenant_id", tenantID),
			qb.Eq("series_id", existing.SeriesID),
			qb.Expr("starts_at >= ?", existing.StartsAt),
		)
	} else {
		builder.Where(
			qb.Eq("tenant_id", tenantID),
			qb.Eq("id", id),
		)
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete training query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete training: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete training rows affected: %w", err)
	}

	return affected > 0, nil
}

// UpsertAttendance keys on (training_id, player_id); re-recording a player
// overwrites the previous mark.
func (r *TrainingRepository) UpsertAttendance(ctx context.Context, a training.Attendance) error {
	query, args, err := qb.InsertInto("training_attendance").
		Columns(attendanceColumns...).
		Values(
			a.ID, a.TenantID, a.TrainingID, a.PlayerID, a.Present, a.Remarks,
			a.CreatedAt, a.UpdatedAt,
		).
		Suffix("ON CONFLICT (training_id, player_id) DO UPDATE SET present = EXCLUDED.present, remarks = EXCLUDED.remarks, updated_at = NOW()").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert attendance query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert attendance: %w", err)
	}

	return nil
}

func (r *TrainingRepository) ListAttendance(ctx context.Context, tenantID, trainingID string) ([]training.Attendance, error) {
	query, args, err := qb.Select(attendanceColumns...).
		From("training_attendance").
		Where(
			qb.Eq("tenant_id", tenantID),
			qb.Eq("training_id", trainingID),
		).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list attendance query: %w", err)
	}

	var rows []attendanceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}

	out := make([]training.Attendance, 0, len(rows))
	for _, row := range rows {
		out = append(out, attendanceFromRow(row))
	}
	return out, nil
}

func trainingInsertBuilder(sessions []training.Training) *qb.InsertBuilder {
	builder := qb.InsertInto("trainings").Columns(trainingColumns...)
	for _, t := range sessions {
		builder.Values(
			t.ID, t.TenantID, t.TeamID, t.StartsAt, t.DurationMinutes,
			t.Location, t.Focus, t.Notes, trainingSeriesID(t.SeriesID),
			t.CreatedAt, t.UpdatedAt,
		)
	}
	return builder
}
