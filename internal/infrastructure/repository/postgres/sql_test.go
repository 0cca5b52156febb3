package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"

	"github.com/canterahq/cantera/internal/domain/convocation"
)

func TestMapUniqueViolation(t *testing.T) {
	t.Run("player constraint maps to duplicate", func(t *testing.T) {
		err := &pq.Error{Code: "23505", Constraint: "match_convocations_match_player_key"}
		if got := mapUniqueViolation(err); !errors.Is(got, convocation.ErrDuplicate) {
			t.Fatalf("expected ErrDuplicate, got %v", got)
		}
	})

	t.Run("jersey constraint maps to jersey taken", func(t *testing.T) {
		err := &pq.Error{Code: "23505", Constraint: "match_convocations_match_jersey_key"}
		if got := mapUniqueViolation(err); !errors.Is(got, convocation.ErrJerseyTaken) {
			t.Fatalf("expected ErrJerseyTaken, got %v", got)
		}
	})

	t.Run("wrapped driver error still maps", func(t *testing.T) {
		err := fmt.Errorf("insert convocations: %w", &pq.Error{Code: "23505", Constraint: "match_convocations_match_player_key"})
		if got := mapUniqueViolation(err); !errors.Is(got, convocation.ErrDuplicate) {
			t.Fatalf("expected ErrDuplicate, got %v", got)
		}
	})

	t.Run("other unique constraints pass through", func(t *testing.T) {
		err := &pq.Error{Code: "23505", Constraint: "users_tenant_id_email_key"}
		if got := mapUniqueViolation(err); !errors.Is(got, err) {
			t.Fatalf("expected original error, got %v", got)
		}
	})

	t.Run("non unique errors pass through", func(t *testing.T) {
		err := &pq.Error{Code: "23503", Constraint: "match_convocations_match_id_fkey"}
		if got := mapUniqueViolation(err); !errors.Is(got, err) {
			t.Fatalf("expected original error, got %v", got)
		}
	})
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatalf("expected true for sql.ErrNoRows")
	}
	if !isNotFound(fmt.Errorf("get convocation: %w", sql.ErrNoRows)) {
		t.Fatalf("expected true for wrapped sql.ErrNoRows")
	}
	if isNotFound(errors.New("connection refused")) {
		t.Fatalf("expected false for unrelated error")
	}
}

func TestJoinColumns(t *testing.T) {
	got := joinColumns([]string{"id", "tenant_id", "player_id"})
	if got != "id, tenant_id, player_id" {
		t.Fatalf("unexpected joined columns: %q", got)
	}
}
