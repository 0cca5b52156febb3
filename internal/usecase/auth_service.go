package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/canterahq/cantera/internal/domain/auth"
	"github.com/canterahq/cantera/internal/domain/invitation"
	"github.com/canterahq/cantera/internal/domain/notification"
	"github.com/canterahq/cantera/internal/domain/user"
	idgen "github.com/canterahq/cantera/internal/platform/id"
)

const resetTokenTTL = 2 * time.Hour

// TokenIssuer signs an access token for a verified principal.
type TokenIssuer interface {
	Issue(p auth.Principal) (string, error)
}

type RegisterInput struct {
	InvitationToken string
	FullName        string
	Password        string
}

// AuthService owns login, invitation-based registration and the password
// reset flow.
type AuthService struct {
	userRepo user.Repository
	invRepo  invitation.Repository
	issuer   TokenIssuer
	notifier notification.Service
	ids      idgen.Generator
	logger   *slog.Logger
	now      func() time.Time
}

func NewAuthService(
	userRepo user.Repository,
	invRepo invitation.Repository,
	issuer TokenIssuer,
	notifier notification.Service,
	ids idgen.Generator,
	logger *slog.Logger,
) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthService{
		userRepo: userRepo,
		invRepo:  invRepo,
		issuer:   issuer,
		notifier: notifier,
		ids:      ids,
		logger:   logger,
		now:      time.Now,
	}
}

// Login authenticates an active user inside one tenant. Every mismatch
// (unknown email, inactive account, wrong password) returns the same
// generic error so callers cannot enumerate users.
func (s *AuthService) Login(ctx context.Context, tenantID, email, password string) (user.User, string, error) {
	tenantID = strings.TrimSpace(tenantID)
	email = normalizeEmail(email)
	if tenantID == "" || email == "" || password == "" {
		return user.User{}, "", fmt.Errorf("%w: tenant_id, email and password are required", ErrInvalidInput)
	}

	u, exists, err := s.userRepo.GetByEmail(ctx, tenantID, email)
	if err != nil {
		return user.User{}, "", fmt.Errorf("get user by email: %w", err)
	}
	if !exists || !u.Active {
		return user.User{}, "", fmt.Errorf("%w", ErrInvalidCreds)
	}

	return s.finishLogin(ctx, u, password)
}

// SuperAdminLogin authenticates the global operator account: no tenant
// scoping, role must be super_admin.
func (s *AuthService) SuperAdminLogin(ctx context.Context, email, password string) (user.User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return user.User{}, "", fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	u, exists, err := s.userRepo.GetSuperAdminByEmail(ctx, email)
	if err != nil {
		return user.User{}, "", fmt.Errorf("get super admin by email: %w", err)
	}
	if !exists || !u.Active || u.Role != auth.RoleSuperAdmin {
		return user.User{}, "", fmt.Errorf("%w", ErrInvalidCreds)
	}

	return s.finishLogin(ctx, u, password)
}

func (s *AuthService) finishLogin(ctx context.Context, u user.User, password string) (user.User, string, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return user.User{}, "", fmt.Errorf("%w", ErrInvalidCreds)
	}

	token, err := s.issuer.Issue(u.Principal())
	if err != nil {
		return user.User{}, "", fmt.Errorf("issue token: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in", "user_id", u.ID, "tenant_id", u.TenantID)
	return u, token, nil
}

// Register consumes an invitation exactly once and creates the invited
// account. Expired or already-accepted invitations are invalid forever.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (user.User, string, error) {
	tokenValue := strings.TrimSpace(in.InvitationToken)
	fullName := strings.TrimSpace(in.FullName)
	if tokenValue == "" {
		return user.User{}, "", fmt.Errorf("%w: invitation token is required", ErrInvalidInput)
	}
	if len(in.Password) < 8 {
		return user.User{}, "", fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}

	inv, exists, err := s.invRepo.GetByToken(ctx, tokenValue)
	if err != nil {
		return user.User{}, "", fmt.Errorf("get invitation by token: %w", err)
	}
	if !exists {
		return user.User{}, "", fmt.Errorf("%w: invitation", ErrNotFound)
	}
	if err := inv.Usable(s.now()); err != nil {
		return user.User{}, "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Claiming the invitation before creating the user keeps it single-use
	// even when two registrations race on the same token.
	claimed, err := s.invRepo.MarkAccepted(ctx, inv.ID)
	if err != nil {
		return user.User{}, "", fmt.Errorf("mark invitation accepted: %w", err)
	}
	if !claimed {
		return user.User{}, "", fmt.Errorf("%w: %v", ErrInvalidInput, invitation.ErrAlreadyAccepted)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	userID, err := s.ids.NewID()
	if err != nil {
		return user.User{}, "", fmt.Errorf("generate user id: %w", err)
	}

	now := s.now().UTC()
	u := user.User{
		ID:           userID,
		TenantID:     inv.TenantID,
		Email:        inv.Email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         inv.Role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return user.User{}, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.issuer.Issue(u.Principal())
	if err != nil {
		return user.User{}, "", fmt.Errorf("issue token: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", u.ID, "tenant_id", u.TenantID, "role", u.Role)
	return u, token, nil
}

// RequestPasswordReset stores an opaque reset token and mails it to the
// account. Unknown emails succeed silently.
func (s *AuthService) RequestPasswordReset(ctx context.Context, tenantID, email string) error {
	tenantID = strings.TrimSpace(tenantID)
	email = normalizeEmail(email)
	if tenantID == "" || email == "" {
		return fmt.Errorf("%w: tenant_id and email are required", ErrInvalidInput)
	}

	u, exists, err := s.userRepo.GetByEmail(ctx, tenantID, email)
	if err != nil {
		return fmt.Errorf("get user by email: %w", err)
	}
	if !exists || !u.Active {
		return nil
	}

	resetToken, err := idgen.NewToken()
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	if _, err := s.userRepo.SetResetToken(ctx, u.ID, resetToken, s.now().Add(resetTokenTTL)); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	if err := s.notifier.Send(ctx, notification.Message{
		To:      u.Email,
		Subject: "Restablecer contraseña",
		Body:    "Usa este código para restablecer tu contraseña: " + resetToken,
	}); err != nil {
		s.logger.WarnContext(ctx, "password reset mail failed", "user_id", u.ID, "error", err)
	}

	return nil
}

// ResetPassword exchanges a valid reset token for a new password and
// clears the token.
func (s *AuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	resetToken = strings.TrimSpace(resetToken)
	if resetToken == "" {
		return fmt.Errorf("%w: reset token is required", ErrInvalidInput)
	}
	if len(newPassword) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}

	u, exists, err := s.userRepo.GetByResetToken(ctx, resetToken)
	if err != nil {
		return fmt.Errorf("get user by reset token: %w", err)
	}
	if !exists || u.ResetTokenExpiresAt == nil || !s.now().Before(*u.ResetTokenExpiresAt) {
		return fmt.Errorf("%w: reset token is invalid or expired", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	updated, err := s.userRepo.UpdatePassword(ctx, u.ID, string(hash))
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if !updated {
		return fmt.Errorf("%w: user", ErrNotFound)
	}

	s.logger.InfoContext(ctx, "password reset", "user_id", u.ID)
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
