package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/canterahq/cantera/internal/domain/tenant"
	qb "github.com/canterahq/cantera/internal/platform/querybuilder"
)

var tenantColumns = []string{
	"id", "name", "contact_email", "logo_url", "banner_url", "primary_color",
	"secondary_color", "social_links", "founded_on", "created_at", "updated_at",
}

type TenantRepository struct {
	db *sqlx.DB
}

func NewTenantRepository(db *sqlx.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

func tenantBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(tenantColumns...).From("tenants")
}

func (r *TenantRepository) Create(ctx context.Context, t tenant.Tenant) error {
	links, err := encodeSocialLinks(t.SocialLinks)
	if err != nil {
		return err
	}

	query, args, err := qb.InsertInto("tenants").
		Columns(tenantColumns...).
		Values(
			t.ID, t.Name, t.ContactEmail, t.LogoURL, t.BannerURL,
			t.PrimaryColor, t.SecondaryColor, links, t.FoundedOn,
			t.CreatedAt, t.UpdatedAt,
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert tenant query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert tenant: %w", err)
	}

	return nil
}

func (r *TenantRepository) GetByID(ctx context.Context, id string) (tenant.Tenant, bool, error) {
	query, args, err := tenantBaseSelectBuilder().
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return tenant.Tenant{}, false, fmt.Errorf("build get tenant query: %w", err)
	}

	var row tenantTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tenant.Tenant{}, false, nil
		}
		return tenant.Tenant{}, false, fmt.Errorf("get tenant: %w", err)
	}

	t, err := tenantFromRow(row)
	if err != nil {
		return tenant.Tenant{}, false, err
	}

	return t, true, nil
}

func (r *TenantRepository) List(ctx context.Context) ([]tenant.Tenant, error) {
	query, args, err := tenantBaseSelectBuilder().
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list tenants query: %w", err)
	}

	var rows []tenantTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}

	out := make([]tenant.Tenant, 0, len(rows))
	for _, row := range rows {
		t, err := tenantFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *TenantRepository) Update(ctx context.Context, t tenant.Tenant) (bool, error) {
	links, err := encodeSocialLinks(t.SocialLinks)
	if err != nil {
		return false, err
	}

	query, args, err := qb.Update("tenants").
		Set("name", t.Name).
		Set("contact_email", t.ContactEmail).
		Set("logo_url", t.LogoURL).
		Set("banner_url", t.BannerURL).
		Set("primary_color", t.PrimaryColor).
		Set("secondary_color", t.SecondaryColor).
		Set("social_links", links).
		Set("founded_on", t.FoundedOn).
		SetRaw("updated_at", "NOW()").
		Where(qb.Eq("id", t.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update tenant query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update tenant: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update tenant rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *TenantRepository) UpdateBranding(ctx context.Context, id string, b tenant.Branding) (bool, error) {
	links, err := encodeSocialLinks(b.SocialLinks)
	if err != nil {
		return false, err
	}

	query, args, err := qb.Update("tenants").
		Set("logo_url", b.LogoURL).
		Set("banner_url", b.BannerURL).
		Set("primary_color", b.PrimaryColor).
		Set("secondary_color", b.SecondaryColor).
		Set("social_links", links).
		SetRaw("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update tenant branding query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update tenant branding: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update tenant branding rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *TenantRepository) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := qb.DeleteFrom("tenants").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete tenant query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete tenant: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete tenant rows affected: %w", err)
	}

	return affected > 0, nil
}
