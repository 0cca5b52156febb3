package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/canterahq/cantera/internal/domain/auth"
	"github.com/canterahq/cantera/internal/domain/notification"
	"github.com/canterahq/cantera/internal/domain/tenant"
	"github.com/canterahq/cantera/internal/domain/user"
	idgen "github.com/canterahq/cantera/internal/platform/id"
)

type CreateTenantInput struct {
	Name         string
	ContactEmail string
	AdminEmail   string
	FoundedOn    *time.Time
}

// TenantService provisions and manages academy accounts. Creation also
// provisions the first admin user with a temporary password.
type TenantService struct {
	tenantRepo tenant.Repository
	userRepo   user.Repository
	notifier   notification.Service
	ids        idgen.Generator
	logger     *slog.Logger
	now        func() time.Time
}

func NewTenantService(
	tenantRepo tenant.Repository,
	userRepo user.Repository,
	notifier notification.Service,
	ids idgen.Generator,
	logger *slog.Logger,
) *TenantService {
	if logger == nil {
		logger = slog.Default()
	}

	return &TenantService{
		tenantRepo: tenantRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		ids:        ids,
		logger:     logger,
		now:        time.Now,
	}
}

// Create provisions a tenant plus its initial admin. The temporary admin
// password is mailed, never returned through the API.
func (s *TenantService) Create(ctx context.Context, in CreateTenantInput) (tenant.Tenant, error) {
	name := strings.TrimSpace(in.Name)
	contactEmail := normalizeEmail(in.ContactEmail)
	adminEmail := normalizeEmail(in.AdminEmail)
	if name == "" || contactEmail == "" {
		return tenant.Tenant{}, fmt.Errorf("%w: name and contact_email are required", ErrInvalidInput)
	}
	if adminEmail == "" {
		adminEmail = contactEmail
	}

	tenantID, err := s.ids.NewID()
	if err != nil {
		return tenant.Tenant{}, fmt.Errorf("generate tenant id: %w", err)
	}

	now := s.now().UTC()
	t := tenant.Tenant{
		ID:           tenantID,
		Name:         name,
		ContactEmail: contactEmail,
		FoundedOn:    in.FoundedOn,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.tenantRepo.Create(ctx, t); err != nil {
		return tenant.Tenant{}, fmt.Errorf("create tenant: %w", err)
	}

	tempPassword, err := idgen.NewToken()
	if err != nil {
		return tenant.Tenant{}, fmt.Errorf("generate temporary password: %w", err)
	}
	tempPassword = tempPassword[:16]

	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return tenant.Tenant{}, fmt.Errorf("hash temporary password: %w", err)
	}

	adminID, err := s.ids.NewID()
	if err != nil {
		return tenant.Tenant{}, fmt.Errorf("generate admin id: %w", err)
	}

	admin := user.User{
		ID:           adminID,
		TenantID:     tenantID,
		Email:        adminEmail,
		PasswordHash: string(hash),
		FullName:     name + " admin",
		Role:         auth.RoleAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return tenant.Tenant{}, fmt.Errorf("create tenant admin: %w", err)
	}

	if err := s.notifier.Send(ctx, notification.Message{
		To:      adminEmail,
		Subject: "Tu academia está lista",
		Body:    "Tu cuenta de administrador ha sido creada. Contraseña temporal: " + tempPassword,
	}); err != nil {
		s.logger.WarnContext(ctx, "tenant provisioning mail failed", "tenant_id", tenantID, "error", err)
	}

	s.logger.InfoContext(ctx, "tenant provisioned", "tenant_id", tenantID, "admin_id", adminID)
	return t, nil
}

func (s *TenantService) Get(ctx context.Context, tenantID string) (tenant.Tenant, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return tenant.Tenant{}, fmt.Errorf("%w: tenant_id is required", ErrInvalidInput)
	}

	t, exists, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return tenant.Tenant{}, fmt.Errorf("get tenant: %w", err)
	}
	if !exists {
		return tenant.Tenant{}, fmt.Errorf("%w: tenant=%s", ErrNotFound, tenantID)
	}

	return t, nil
}

func (s *TenantService) List(ctx context.Context) ([]tenant.Tenant, error) {
	items, err := s.tenantRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}

	return items, nil
}

func (s *TenantService) Update(ctx context.Context, t tenant.Tenant) (tenant.Tenant, error) {
	if err := t.Validate(); err != nil {
		return tenant.Tenant{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	t.UpdatedAt = s.now().UTC()
	updated, err := s.tenantRepo.Update(ctx, t)
	if err != nil {
		return tenant.Tenant{}, fmt.Errorf("update tenant: %w", err)
	}
	if !updated {
		return tenant.Tenant{}, fmt.Errorf("%w: tenant=%s", ErrNotFound, t.ID)
	}

	return s.Get(ctx, t.ID)
}

// UpdateBranding restyles a tenant without touching the rest of its
// record; admins use it for their own tenant.
func (s *TenantService) UpdateBranding(ctx context.Context, tenantID string, b tenant.Branding) (tenant.Tenant, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return tenant.Tenant{}, fmt.Errorf("%w: tenant_id is required", ErrInvalidInput)
	}

	updated, err := s.tenantRepo.UpdateBranding(ctx, tenantID, b)
	if err != nil {
		return tenant.Tenant{}, fmt.Errorf("update tenant branding: %w", err)
	}
	if !updated {
		return tenant.Tenant{}, fmt.Errorf("%w: tenant=%s", ErrNotFound, tenantID)
	}

	return s.Get(ctx, tenantID)
}

func (s *TenantService) Delete(ctx context.Context, tenantID string) error {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return fmt.Errorf("%w: tenant_id is required", ErrInvalidInput)
	}

	deleted, err := s.tenantRepo.Delete(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("delete tenant: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: tenant=%s", ErrNotFound, tenantID)
	}

	s.logger.InfoContext(ctx, "tenant deleted", "tenant_id", tenantID)
	return nil
}
