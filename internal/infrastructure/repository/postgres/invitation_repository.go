package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/canterahq/cantera/internal/domain/invitation"
	qb "github.com/canterahq/cantera/internal/platform/querybuilder"
)

var invitationColumns = []string{
	"id", "tenant_id", "email", "role", "token", "expires_at", "accepted", "created_at",
}

type InvitationRepository struct {
	db *sqlx.DB
}

func NewInvitationRepository(db *sqlx.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

func invitationBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(invitationColumns...).From("invitations")
}

func (r *InvitationRepository) Create(ctx context.Context, inv invitation.Invitation) error {
	query, args, err := qb.InsertInto("invitations").
		Columns(invitationColumns...).
		Values(
			inv.ID, inv.TenantID, inv.Email, string(inv.Role), inv.Token,
			inv.ExpiresAt, inv.Accepted, inv.CreatedAt,
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert invitation query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert invitation: %w", err)
	}

	return nil
}

func (r *InvitationRepository) GetByToken(ctx context.Context, token string) (invitation.Invitation, bool, error) {
	query, args, err := invitationBaseSelectBuilder().
		Where(qb.Eq("token", token)).
		ToSQL()
	if err != nil {
		return invitation.Invitation{}, false, fmt.Errorf("build get invitation query: %w", err)
	}

	var row invitationTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return invitation.Invitation{}, false, nil
		}
		return invitation.Invitation{}, false, fmt.Errorf("get invitation by token: %w", err)
	}

	return invitationFromRow(row), true, nil
}

func (r *InvitationRepository) ListByTenant(ctx context.Context, tenantID string) ([]invitation.Invitation, error) {
	query, args, err := invitationBaseSelectBuilder().
		Where(qb.Eq("tenant_id", tenantID)).
		OrderBy("created_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list invitations query: %w", err)
	}

	var rows []invitationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}

	out := make([]invitation.Invitation, 0, len(rows))
	for _, row := range rows {
		out = append(out, invitationFromRow(row))
	}
	return out, nil
}

// MarkAccepted flips the flag only when it is still false, so exactly one
// concurrent registration can claim the invitation.
func (r *InvitationRepository) MarkAccepted(ctx context.Context, id string) (bool, error) {
	query, args, err := qb.Update("invitations").
		Set("accepted", true).
		Where(
			qb.Eq("id", id),
			qb.Eq("accepted", false),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build mark invitation accepted query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("mark invitation accepted: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("mark invitation accepted rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *InvitationRepository) Delete(ctx context.Context, tenantID, id string) (bool, error) {
	query, args, err := qb.DeleteFrom("invitations").
		Where(
			qb.Eq("tenant_id", tenantID),
			qb.Eq("id", id),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete invitation query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete invitation: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete invitation rows affected: %w", err)
	}

	return affected > 0, nil
}
