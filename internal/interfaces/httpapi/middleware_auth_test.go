package httpapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/canterahq/cantera/internal/domain/auth"
)

type stubVerifier struct {
	principal auth.Principal
	err       error
}

func (v stubVerifier) Verify(_ string) (auth.Principal, error) {
	return v.principal, v.err
}

func decodeErrorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	errorObj, _ := body["error"].(map[string]any)
	msg, _ := errorObj["message"].(string)
	return msg
}

func TestRequireAuth_MissingToken(t *testing.T) {
	handler := RequireAuth(stubVerifier{}, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, header := range []string{"", "Bearer ", "Token abc"} {
		req := httptest.NewRequest(http.MethodGet, "/v1/players", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, rec.Code)
		}
		if msg := decodeErrorMessage(t, rec); msg != "unauthorized: No token provided" {
			t.Fatalf("header %q: unexpected message %q", header, msg)
		}
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	handler := RequireAuth(stubVerifier{err: errors.New("bad signature")}, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/players", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if msg := decodeErrorMessage(t, rec); msg != "unauthorized: Invalid token" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestRequireAuth_AttachesPrincipal(t *testing.T) {
	want := auth.Principal{UserID: "user-1", TenantID: "club-la-cantera", Role: auth.RoleAdmin}

	var got auth.Principal
	handler := RequireAuth(stubVerifier{principal: want}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = principalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/players", nil)
	req.Header.Set("Authorization", "Bearer valid")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got != want {
		t.Fatalf("expected principal %+v, got %+v", want, got)
	}
}

func TestRequireAdmin_RoleGate(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		role     auth.Role
		wantCode int
	}{
		{role: auth.RoleAdmin, wantCode: http.StatusOK},
		{role: auth.RoleSuperAdmin, wantCode: http.StatusOK},
		{role: auth.RoleStaff, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/v1/players", nil)
		ctx := withPrincipal(req.Context(), auth.Principal{UserID: "u1", Role: tt.role})
		rec := httptest.NewRecorder()

		RequireAdmin(next).ServeHTTP(rec, req.WithContext(ctx))

		if rec.Code != tt.wantCode {
			t.Fatalf("role %s: expected %d, got %d", tt.role, tt.wantCode, rec.Code)
		}
		if tt.wantCode == http.StatusForbidden {
			if msg := decodeErrorMessage(t, rec); msg != "forbidden: Admin role required" {
				t.Fatalf("unexpected message %q", msg)
			}
		}
	}
}

func TestRequireSuperAdmin_RejectsTenantAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/tenants", nil)
	ctx := withPrincipal(req.Context(), auth.Principal{UserID: "u1", TenantID: "club-la-cantera", Role: auth.RoleAdmin})
	rec := httptest.NewRecorder()

	RequireSuperAdmin(next).ServeHTTP(rec, req.WithContext(ctx))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if msg := decodeErrorMessage(t, rec); msg != "forbidden: Super admin role required" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestRequireAdmin_WithoutPrincipal(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/players", nil)
	rec := httptest.NewRecorder()

	RequireAdmin(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
