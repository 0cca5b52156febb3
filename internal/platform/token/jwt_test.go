package token

import (
	"testing"
	"time"

	"github.com/canterahq/cantera/internal/domain/auth"
)

func TestManager_IssueAndVerify(t *testing.T) {
	manager, err := NewManager("test-secret", "", 0)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	manager.now = func() time.Time { return now }

	principal := auth.Principal{
		UserID:   "user-1",
		TenantID: "club-la-cantera",
		Role:     auth.RoleAdmin,
	}

	raw, err := manager.Issue(principal)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	verified, err := manager.Verify(raw)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if verified != principal {
		t.Fatalf("expected %+v, got %+v", principal, verified)
	}
}

func TestManager_Verify_Expired(t *testing.T) {
	manager, err := NewManager("test-secret", "cantera", time.Hour)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	manager.now = func() time.Time { return now }

	raw, err := manager.Issue(auth.Principal{UserID: "user-1", Role: auth.RoleStaff})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	manager.now = func() time.Time { return now.Add(2 * time.Hour) }

	if _, err := manager.Verify(raw); err == nil {
		t.Fatal("expected expired token to fail verification")
	}
}

func TestManager_Verify_WrongSecret(t *testing.T) {
	signer, err := NewManager("secret-a", "cantera", time.Hour)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	verifier, err := NewManager("secret-b", "cantera", time.Hour)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	raw, err := signer.Issue(auth.Principal{UserID: "user-1", Role: auth.RoleStaff})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := verifier.Verify(raw); err == nil {
		t.Fatal("expected foreign signature to fail verification")
	}
}

func TestManager_Issue_RequiresUser(t *testing.T) {
	manager, err := NewManager("test-secret", "cantera", time.Hour)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	if _, err := manager.Issue(auth.Principal{}); err == nil {
		t.Fatal("expected error for empty principal")
	}
}

func TestNewManager_RequiresSecret(t *testing.T) {
	if _, err := NewManager("", "cantera", time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
}
