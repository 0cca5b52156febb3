package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/canterahq/cantera/internal/domain/coach"
	qb "github.com/canterahq/cantera/internal/platform/querybuilder"
)

var coachColumns = []string{
	"id", "tenant_id", "full_name", "email", "phone", "license_level",
	"created_at", "updated_at",
}

type coachTableModel struct {
	ID           string    `db:"id"`
	TenantID     string    `db:"tenant_id"`
	FullName     string    `db:"full_name"`
	Email        string    `db:"email"`
	Phone        string    `db:"phone"`
	LicenseLevel string    `db:"license_level"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func coachFromRow(row coachTableModel) coach.Coach {
	return coach.Coach{
		ID:           row.ID,
		TenantID:     row.TenantID,
		FullName:     row.FullName,
		Email:        row.Email,
		Phone:        row.Phone,
		LicenseLevel: row.LicenseLevel,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

type CoachRepository struct {
	db *sqlx.DB
}

func NewCoachRepository(db *sqlx.DB) *CoachRepository {
	return &CoachRepository{db: db}
}

func coachBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(coachColumns...).From("coaches")
}

func (r *CoachRepository) Create(ctx context.Context, c coach.Coach) error {
	query, args, err := qb.InsertInto("coaches").
		Columns(coachColumns...).
		Values(
			c.ID, c.TenantID, c.FullName, c.Email, c.Phone, c.LicenseLevel,
			c.CreatedAt, c.UpdatedAt,
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert coach query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert coach: %w", err)
	}

	return nil
}

func (r *CoachRepository) GetByID(ctx context.Context, tenantID, id string) (coach.Coach, bool, error) {
	query, args, err := coachBaseSelectBuilder().
		Where(
			qb.Eq("tenant_id", tenantID),
			qb.Eq("id", id),
		).
		ToSQL()
	if err != nil {
		return coach.Coach{}, false, fmt.Errorf("build get coach query: %w", err)
	}

	var row coachTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return coach.Coach{}, false, nil
		}
		return coach.Coach{}, false, fmt.Errorf("get coach: %w", err)
	}

	return coachFromRow(row), true, nil
}

func (r *CoachRepository) ListByTenant(ctx context.Context, tenantID string) ([]coach.Coach, error) {
	query, args, err := coachBaseSelectBuilder().
		Where(qb.Eq("tenant_id", tenantID)).
		OrderBy("full_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list coaches query: %w", err)
	}

	var rows []coachTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list coaches: %w", err)
	}

	out := make([]coach.Coach, 0, len(rows))
	for _, row := range rows {
		out = append(out, coachFromRow(row))
	}
	return out, nil
}

func (r *CoachRepository) Update(ctx context.Context, c coach.Coach) (bool, error) {
	query, args, err := qb.Update("coaches").
		Set("full_name", c.FullName).
		Set("email", c.Email).
		Set("phone", c.Phone).
		Set("license_level", c.LicenseLevel).
		SetRaw("updated_at", "NOW()").
		Where(
			qb.Eq("tenant_id", c.TenantID),
			qb.Eq("id", c.ID),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update coach query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update coach: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update coach rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *CoachRepository) Delete(ctx context.Context, tenantID, id string) (bool, error) {
	query, args, err := qb.DeleteFrom("coaches").
		Where(
			qb.Eq("tenant_id", tenantID),
			qb.Eq("id", id),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete coach query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete coach: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete coach rows affected: %w", err)
	}

	return affected > 0, nil
}
