package postgres

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"

	"github.com/canterahq/cantera/internal/domain/convocation"
)

const uniqueViolationCode = "23505"

const (
	convocationPlayerConstraint = "match_convocations_match_player_key"
	convocationJerseyConstraint = "match_convocations_match_jersey_key"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// mapUniqueViolation translates the named convocation constraints into
// their domain sentinels so callers never see driver errors for the two
// per-match invariants.
func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolationCode {
		return err
	}

	switch pqErr.Constraint {
	case convocationPlayerConstraint:
		return convocation.ErrDuplicate
	case convocationJerseyConstraint:
		return convocation.ErrJerseyTaken
	}

	return err
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
