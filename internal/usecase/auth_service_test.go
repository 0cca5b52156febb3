package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/canterahq/cantera/internal/domain/auth"
	"github.com/canterahq/cantera/internal/domain/invitation"
	"github.com/canterahq/cantera/internal/domain/notification"
	"github.com/canterahq/cantera/internal/domain/user"
	"github.com/canterahq/cantera/internal/infrastructure/repository/memory"
)

type staticIDGenerator struct {
	id string
}

func (g staticIDGenerator) NewID() (string, error) {
	return g.id, nil
}

type staticTokenIssuer struct {
	token string
}

func (i staticTokenIssuer) Issue(_ auth.Principal) (string, error) {
	return i.token, nil
}

type recordingNotifier struct {
	sent []notification.Message
}

func (n *recordingNotifier) Send(_ context.Context, msg notification.Message) error {
	n.sent = append(n.sent, msg)
	return nil
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	return string(hash)
}

func seedUsers(t *testing.T) []user.User {
	return []user.User{
		{
			ID:           "user-admin",
			TenantID:     memory.TenantIDLaCantera,
			Email:        "admin@lacantera.example",
			PasswordHash: hashPassword(t, "secreto-club"),
			FullName:     "Lucía Ortega",
			Role:         auth.RoleAdmin,
			Active:       true,
		},
		{
			ID:           "user-baja",
			TenantID:     memory.TenantIDLaCantera,
			Email:        "baja@lacantera.example",
			PasswordHash: hashPassword(t, "secreto-club"),
			FullName:     "Cuenta Dada De Baja",
			Role:         auth.RoleStaff,
		},
		{
			ID:           "user-root",
			Email:        "root@cantera.example",
			PasswordHash: hashPassword(t, "secreto-global"),
			FullName:     "Operadora Global",
			Role:         auth.RoleSuperAdmin,
			Active:       true,
		},
	}
}

func newAuthService(t *testing.T, userRepo *memory.UserRepository, invRepo *memory.InvitationRepository) (*AuthService, *recordingNotifier) {
	t.Helper()

	notifier := &recordingNotifier{}
	service := NewAuthService(
		userRepo,
		invRepo,
		staticTokenIssuer{token: "signed-token"},
		notifier,
		staticIDGenerator{id: "user-001"},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	return service, notifier
}

func TestAuthService_Login(t *testing.T) {
	userRepo := memory.NewUserRepository(seedUsers(t))
	service, _ := newAuthService(t, userRepo, memory.NewInvitationRepository(nil))

	u, token, err := service.Login(t.Context(), memory.TenantIDLaCantera, " Admin@LaCantera.example ", "secreto-club")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if u.ID != "user-admin" || token != "signed-token" {
		t.Fatalf("unexpected login result: user=%s token=%s", u.ID, token)
	}

	_, _, err = service.Login(t.Context(), memory.TenantIDLaCantera, "admin@lacantera.example", "otra-clave")
	if !errors.Is(err, ErrInvalidCreds) {
		t.Fatalf("expected ErrInvalidCreds for wrong password, got %v", err)
	}

	_, _, err = service.Login(t.Context(), memory.TenantIDLaCantera, "nadie@lacantera.example", "secreto-club")
	if !errors.Is(err, ErrInvalidCreds) {
		t.Fatalf("expected ErrInvalidCreds for unknown email, got %v", err)
	}

	_, _, err = service.Login(t.Context(), memory.TenantIDLaCantera, "baja@lacantera.example", "secreto-club")
	if !errors.Is(err, ErrInvalidCreds) {
		t.Fatalf("expected ErrInvalidCreds for inactive account, got %v", err)
	}

	// The admin exists under another tenant only.
	_, _, err = service.Login(t.Context(), memory.TenantIDNorte, "admin@lacantera.example", "secreto-club")
	if !errors.Is(err, ErrInvalidCreds) {
		t.Fatalf("expected ErrInvalidCreds across tenants, got %v", err)
	}

	_, _, err = service.Login(t.Context(), "", "admin@lacantera.example", "secreto-club")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without tenant, got %v", err)
	}
}

func TestAuthService_SuperAdminLogin(t *testing.T) {
	userRepo := memory.NewUserRepository(seedUsers(t))
	service, _ := newAuthService(t, userRepo, memory.NewInvitationRepository(nil))

	u, token, err := service.SuperAdminLogin(t.Context(), "root@cantera.example", "secreto-global")
	if err != nil {
		t.Fatalf("super admin login failed: %v", err)
	}
	if u.Role != auth.RoleSuperAdmin || token != "signed-token" {
		t.Fatalf("unexpected result: role=%s token=%s", u.Role, token)
	}

	// Tenant admins cannot use the global entrance.
	_, _, err = service.SuperAdminLogin(t.Context(), "admin@lacantera.example", "secreto-club")
	if !errors.Is(err, ErrInvalidCreds) {
		t.Fatalf("expected ErrInvalidCreds for tenant admin, got %v", err)
	}
}

func TestAuthService_Register(t *testing.T) {
	userRepo := memory.NewUserRepository(seedUsers(t))
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	invRepo := memory.NewInvitationRepository([]invitation.Invitation{
		{
			ID:        "inv-001",
			TenantID:  memory.TenantIDLaCantera,
			Email:     "nueva@lacantera.example",
			Role:      auth.RoleStaff,
			Token:     "tok-fresh",
			ExpiresAt: now.Add(48 * time.Hour),
		},
		{
			ID:        "inv-002",
			TenantID:  memory.TenantIDLaCantera,
			Email:     "tarde@lacantera.example",
			Role:      auth.RoleStaff,
			Token:     "tok-expired",
			ExpiresAt: now.Add(-time.Hour),
		},
	})

	service, _ := newAuthService(t, userRepo, invRepo)
	service.now = func() time.Time { return now }

	u, token, err := service.Register(t.Context(), RegisterInput{
		InvitationToken: "tok-fresh",
		FullName:        "Nueva Integrante",
		Password:        "clave-segura",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if u.ID != "user-001" || u.TenantID != memory.TenantIDLaCantera {
		t.Fatalf("unexpected user: %+v", u)
	}
	if u.Email != "nueva@lacantera.example" || u.Role != auth.RoleStaff || !u.Active {
		t.Fatalf("expected invitation fields on the account, got %+v", u)
	}
	if token != "signed-token" {
		t.Fatalf("expected session token, got %s", token)
	}

	// Invitations are single use.
	_, _, err = service.Register(t.Context(), RegisterInput{
		InvitationToken: "tok-fresh",
		FullName:        "Intrusa",
		Password:        "clave-segura",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput on reused invitation, got %v", err)
	}

	_, _, err = service.Register(t.Context(), RegisterInput{
		InvitationToken: "tok-expired",
		FullName:        "Rezagada",
		Password:        "clave-segura",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput on expired invitation, got %v", err)
	}

	_, _, err = service.Register(t.Context(), RegisterInput{
		InvitationToken: "tok-desconocido",
		FullName:        "Alguien",
		Password:        "clave-segura",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on unknown token, got %v", err)
	}

	_, _, err = service.Register(t.Context(), RegisterInput{
		InvitationToken: "tok-fresh",
		FullName:        "Clave Corta",
		Password:        "corta",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput on short password, got %v", err)
	}
}

func TestAuthService_PasswordResetFlow(t *testing.T) {
	userRepo := memory.NewUserRepository(seedUsers(t))
	service, notifier := newAuthService(t, userRepo, memory.NewInvitationRepository(nil))

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	if err := service.RequestPasswordReset(t.Context(), memory.TenantIDLaCantera, "admin@lacantera.example"); err != nil {
		t.Fatalf("request reset failed: %v", err)
	}
	if len(notifier.sent) != 1 || notifier.sent[0].To != "admin@lacantera.example" {
		t.Fatalf("expected one reset mail to the account, got %+v", notifier.sent)
	}

	stored, ok, err := userRepo.GetByEmail(t.Context(), memory.TenantIDLaCantera, "admin@lacantera.example")
	if err != nil || !ok {
		t.Fatalf("reload user: ok=%v err=%v", ok, err)
	}
	if stored.ResetToken == "" || stored.ResetTokenExpiresAt == nil {
		t.Fatalf("expected reset token stored, got %+v", stored)
	}

	if err := service.ResetPassword(t.Context(), stored.ResetToken, "clave-nueva-123"); err != nil {
		t.Fatalf("reset password failed: %v", err)
	}

	if _, _, err := service.Login(t.Context(), memory.TenantIDLaCantera, "admin@lacantera.example", "clave-nueva-123"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}

	// The token is cleared once consumed.
	err = service.ResetPassword(t.Context(), stored.ResetToken, "clave-nueva-456")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput on reused token, got %v", err)
	}
}

func TestAuthService_ResetPassword_Expired(t *testing.T) {
	userRepo := memory.NewUserRepository(seedUsers(t))
	service, _ := newAuthService(t, userRepo, memory.NewInvitationRepository(nil))

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	if err := service.RequestPasswordReset(t.Context(), memory.TenantIDLaCantera, "admin@lacantera.example"); err != nil {
		t.Fatalf("request reset failed: %v", err)
	}

	stored, _, err := userRepo.GetByEmail(t.Context(), memory.TenantIDLaCantera, "admin@lacantera.example")
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}

	service.now = func() time.Time { return now.Add(3 * time.Hour) }

	err = service.ResetPassword(t.Context(), stored.ResetToken, "clave-nueva-123")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput on expired token, got %v", err)
	}
}

func TestAuthService_RequestPasswordReset_UnknownEmailSilent(t *testing.T) {
	userRepo := memory.NewUserRepository(seedUsers(t))
	service, notifier := newAuthService(t, userRepo, memory.NewInvitationRepository(nil))

	if err := service.RequestPasswordReset(t.Context(), memory.TenantIDLaCantera, "fantasma@lacantera.example"); err != nil {
		t.Fatalf("expected silent success for unknown email, got %v", err)
	}
	if err := service.RequestPasswordReset(t.Context(), memory.TenantIDLaCantera, "baja@lacantera.example"); err != nil {
		t.Fatalf("expected silent success for inactive account, got %v", err)
	}
	if len(notifier.sent) != 0 {
		t.Fatalf("expected no mail sent, got %+v", notifier.sent)
	}
}
