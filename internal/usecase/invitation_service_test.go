package usecase

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/canterahq/cantera/internal/domain/auth"
	"github.com/canterahq/cantera/internal/infrastructure/repository/memory"
)

func newInvitationService() (*InvitationService, *recordingNotifier) {
	notifier := &recordingNotifier{}
	service := NewInvitationService(
		memory.NewInvitationRepository(nil),
		notifier,
		staticIDGenerator{id: "inv-001"},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	return service, notifier
}

func TestInvitationService_Create(t *testing.T) {
	service, notifier := newInvitationService()

	inv, err := service.Create(t.Context(), memory.TenantIDLaCantera, " Nuevo.Staff@LaCantera.example ", auth.RoleStaff)
	if err != nil {
		t.Fatalf("create invitation failed: %v", err)
	}

	if inv.Email != "nuevo.staff@lacantera.example" {
		t.Fatalf("expected normalized email, got %s", inv.Email)
	}
	if inv.Token == "" {
		t.Fatalf("expected a generated token")
	}
	if len(notifier.sent) != 1 || notifier.sent[0].To != inv.Email {
		t.Fatalf("expected one mail to the invitee, got %+v", notifier.sent)
	}

	items, err := service.ListByTenant(t.Context(), memory.TenantIDLaCantera)
	if err != nil {
		t.Fatalf("list invitations failed: %v", err)
	}
	if len(items) != 1 || items[0].ID != "inv-001" {
		t.Fatalf("unexpected invitations: %+v", items)
	}
}

func TestInvitationService_Create_RejectsSuperAdminRole(t *testing.T) {
	service, _ := newInvitationService()

	_, err := service.Create(t.Context(), memory.TenantIDLaCantera, "root@lacantera.example", auth.RoleSuperAdmin)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for super admin role, got %v", err)
	}

	_, err = service.Create(t.Context(), memory.TenantIDLaCantera, "root@lacantera.example", auth.Role("portero"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown role, got %v", err)
	}
}

func TestInvitationService_Delete(t *testing.T) {
	service, _ := newInvitationService()

	inv, err := service.Create(t.Context(), memory.TenantIDLaCantera, "staff@lacantera.example", auth.RoleAdmin)
	if err != nil {
		t.Fatalf("create invitation failed: %v", err)
	}

	// Deleting through another tenant must not succeed.
	if err := service.Delete(t.Context(), memory.TenantIDNorte, inv.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for cross-tenant delete, got %v", err)
	}

	if err := service.Delete(t.Context(), memory.TenantIDLaCantera, inv.ID); err != nil {
		t.Fatalf("delete invitation failed: %v", err)
	}
	if err := service.Delete(t.Context(), memory.TenantIDLaCantera, inv.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on repeated delete, got %v", err)
	}
}
