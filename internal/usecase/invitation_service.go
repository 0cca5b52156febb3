package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/canterahq/cantera/internal/domain/auth"
	"github.com/canterahq/cantera/internal/domain/invitation"
	"github.com/canterahq/cantera/internal/domain/notification"
	idgen "github.com/canterahq/cantera/internal/platform/id"
)

const invitationTTL = 7 * 24 * time.Hour

// InvitationService lets tenant admins grant access to new staff.
type InvitationService struct {
	invRepo  invitation.Repository
	notifier notification.Service
	ids      idgen.Generator
	logger   *slog.Logger
	now      func() time.Time
}

func NewInvitationService(
	invRepo invitation.Repository,
	notifier notification.Service,
	ids idgen.Generator,
	logger *slog.Logger,
) *InvitationService {
	if logger == nil {
		logger = slog.Default()
	}

	return &InvitationService{
		invRepo:  invRepo,
		notifier: notifier,
		ids:      ids,
		logger:   logger,
		now:      time.Now,
	}
}

// Create issues a single-use invitation and mails the token to the
// invitee. Super-admin grants cannot be created through invitations.
func (s *InvitationService) Create(ctx context.Context, tenantID, email string, role auth.Role) (invitation.Invitation, error) {
	tenantID = strings.TrimSpace(tenantID)
	email = normalizeEmail(email)
	if tenantID == "" || email == "" {
		return invitation.Invitation{}, fmt.Errorf("%w: tenant_id and email are required", ErrInvalidInput)
	}
	if !role.Valid() || role == auth.RoleSuperAdmin {
		return invitation.Invitation{}, fmt.Errorf("%w: invalid invitation role %q", ErrInvalidInput, role)
	}

	invID, err := s.ids.NewID()
	if err != nil {
		return invitation.Invitation{}, fmt.Errorf("generate invitation id: %w", err)
	}
	tokenValue, err := idgen.NewToken()
	if err != nil {
		return invitation.Invitation{}, fmt.Errorf("generate invitation token: %w", err)
	}

	inv := invitation.Invitation{
		ID:        invID,
		TenantID:  tenantID,
		Email:     email,
		Role:      role,
		Token:     tokenValue,
		ExpiresAt: s.now().Add(invitationTTL),
		CreatedAt: s.now().UTC(),
	}
	if err := s.invRepo.Create(ctx, inv); err != nil {
		return invitation.Invitation{}, fmt.Errorf("create invitation: %w", err)
	}

	if err := s.notifier.Send(ctx, notification.Message{
		To:      inv.Email,
		Subject: "Invitación a la academia",
		Body:    "Has sido invitado a registrarte. Código de invitación: " + inv.Token,
	}); err != nil {
		s.logger.WarnContext(ctx, "invitation mail failed", "invitation_id", inv.ID, "error", err)
	}

	s.logger.InfoContext(ctx, "invitation created", "invitation_id", inv.ID, "tenant_id", tenantID, "role", role)
	return inv, nil
}

func (s *InvitationService) ListByTenant(ctx context.Context, tenantID string) ([]invitation.Invitation, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenant_id is required", ErrInvalidInput)
	}

	items, err := s.invRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}

	return items, nil
}

func (s *InvitationService) Delete(ctx context.Context, tenantID, invitationID string) error {
	tenantID = strings.TrimSpace(tenantID)
	invitationID = strings.TrimSpace(invitationID)
	if tenantID == "" || invitationID == "" {
		return fmt.Errorf("%w: tenant_id and invitation_id are required", ErrInvalidInput)
	}

	deleted, err := s.invRepo.Delete(ctx, tenantID, invitationID)
	if err != nil {
		return fmt.Errorf("delete invitation: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: invitation=%s", ErrNotFound, invitationID)
	}

	return nil
}
