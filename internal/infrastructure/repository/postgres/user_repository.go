package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/canterahq/cantera/internal/domain/auth"
	"github.com/canterahq/cantera/internal/domain/user"
	qb "github.com/canterahq/cantera/internal/platform/querybuilder"
)

var userColumns = []string{
	"id", "tenant_id", "email", "password_hash", "full_name", "role",
	"active", "reset_token", "reset_token_expires_at", "created_at", "updated_at",
}

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func userBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(userColumns...).From("users")
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	query, args, err := qb.InsertInto("users").
		Columns(userColumns...).
		Values(
			u.ID, u.TenantID, u.Email, u.PasswordHash, u.FullName,
			string(u.Role), u.Active, u.ResetToken, u.ResetTokenExpiresAt,
			u.CreatedAt, u.UpdatedAt,
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert user query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, tenantID, id string) (user.User, bool, error) {
	return r.getOne(ctx, "get user",
		qb.Eq("tenant_id", tenantID),
		qb.Eq("id", id),
	)
}

func (r *UserRepository) GetByEmail(ctx context.Context, tenantID, email string) (user.User, bool, error) {
	return r.getOne(ctx, "get user by email",
		qb.Eq("tenant_id", tenantID),
		qb.Eq("email", email),
	)
}

func (r *UserRepository) GetSuperAdminByEmail(ctx context.Context, email string) (user.User, bool, error) {
	return r.getOne(ctx, "get super admin by email",
		qb.Eq("email", email),
		qb.Eq("role", string(auth.RoleSuperAdmin)),
	)
}

func (r *UserRepository) GetByResetToken(ctx context.Context, token string) (user.User, bool, error) {
	return r.getOne(ctx, "get user by reset token",
		qb.Eq("reset_token", token),
	)
}

func (r *UserRepository) ListByTenant(ctx context.Context, tenantID string) ([]user.User, error) {
	query, args, err := userBaseSelectBuilder().
		Where(qb.Eq("tenant_id", tenantID)).
		OrderBy("full_name", "email").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list users query: %w", err)
	}

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]user.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, userFromRow(row))
	}
	return out, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) (bool, error) {
	query, args, err := qb.Update("users").
		Set("password_hash", passwordHash).
		Set("reset_token", "").
		Set("reset_token_expires_at", nil).
		SetRaw("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update password query: %w", err)
	}

	return r.execAffected(ctx, "update password", query, args)
}

func (r *UserRepository) SetResetToken(ctx context.Context, id, token string, expiresAt time.Time) (bool, error) {
	query, args, err := qb.Update("users").
		Set("reset_token", token).
		Set("reset_token_expires_at", expiresAt).
		SetRaw("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build set reset token query: %w", err)
	}

	return r.execAffected(ctx, "set reset token", query, args)
}

func (r *UserRepository) SetActive(ctx context.Context, tenantID, id string, active bool) (bool, error) {
	query, args, err := qb.Update("users").
		Set("active", active).
		SetRaw("updated_at", "NOW()").
		Where(
			qb.Eq("tenant_id", tenantID),
			qb.Eq("id", id),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build set user active query: %w", err)
	}

	return r.execAffected(ctx, "set user active", query, args)
}

func (r *UserRepository) getOne(ctx context.Context, op string, conditions ...qb.Condition) (user.User, bool, error) {
	query, args, err := userBaseSelectBuilder().
		Where(conditions...).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("%s: %w", op, err)
	}

	return userFromRow(row), true, nil
}

func (r *UserRepository) execAffected(ctx context.Context, op, query string, args []any) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s rows affected: %w", op, err)
	}

	return affected > 0, nil
}
