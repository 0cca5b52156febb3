package postgres

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"github.com/canterahq/cantera/internal/domain/tenant"
)

type tenantTableModel struct {
	ID             string     `db:"id"`
	Name           string     `db:"name"`
	ContactEmail   string     `db:"contact_email"`
	LogoURL        string     `db:"logo_url"`
	BannerURL      string     `db:"banner_url"`
	PrimaryColor   string     `db:"primary_color"`
	SecondaryColor string     `db:"secondary_color"`
	SocialLinks    []byte     `db:"social_links"`
	FoundedOn      *time.Time `db:"founded_on"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

func tenantFromRow(row tenantTableModel) (tenant.Tenant, error) {
	links := map[string]string{}
	if len(row.SocialLinks) > 0 {
		if err := sonic.Unmarshal(row.SocialLinks, &links); err != nil {
			return tenant.Tenant{}, fmt.Errorf("decode tenant social links: %w", err)
		}
	}

	return tenant.Tenant{
		ID:             row.ID,
		Name:           row.Name,
		ContactEmail:   row.ContactEmail,
		LogoURL:        row.LogoURL,
		BannerURL:      row.BannerURL,
		PrimaryColor:   row.PrimaryColor,
		SecondaryColor: row.SecondaryColor,
		SocialLinks:    links,
		FoundedOn:      row.FoundedOn,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}, nil
}

func encodeSocialLinks(links map[string]string) ([]byte, error) {
	if links == nil {
		links = map[string]string{}
	}

	encoded, err := sonic.Marshal(links)
	if err != nil {
		return nil, fmt.Errorf("encode tenant social links: %w", err)
	}

	return encoded, nil
}
