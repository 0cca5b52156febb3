package tenant

import (
	"fmt"
	"time"
)

// Tenant is one academy account, the unit of data partitioning.
type Tenant struct {
	ID             string
	Name           string
	ContactEmail   string
	LogoURL        string
	BannerURL      string
	PrimaryColor   string
	SecondaryColor string
	SocialLinks    map[string]string
	FoundedOn      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (t Tenant) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("tenant id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("tenant name is required")
	}
	if t.ContactEmail == "" {
		return fmt.Errorf("tenant contact email is required")
	}

	return nil
}

// Branding groups the presentation fields an admin may restyle
// without touching the rest of the tenant record.
type Branding struct {
	LogoURL        string
	BannerURL      string
	PrimaryColor   string
	SecondaryColor string
	SocialLinks    map[string]string
}
