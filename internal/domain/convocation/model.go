package convocation

import (
	"errors"
	"time"
)

// Status is the call-up state of one player for one match. Creation always
// seeds StatusCalled; after that any value may follow any other, including
// self-transitions. There is no terminal state.
type Status string

const (
	StatusCalled    Status = "convocado"
	StatusConfirmed Status = "confirmado"
	StatusAbsent    Status = "ausente"
	StatusInjured   Status = "lesionado"
)

var allStatuses = map[Status]struct{}{
	StatusCalled:    {},
	StatusConfirmed: {},
	StatusAbsent:    {},
	StatusInjured:   {},
}

func (s Status) Valid() bool {
	_, ok := allStatuses[s]
	return ok
}

var (
	// ErrDuplicate carries the user-facing message verbatim; the API edge
	// returns it as-is.
	ErrDuplicate        = errors.New("El jugador ya está convocado para este partido")
	ErrJerseyTaken      = errors.New("jersey number already taken for this match")
	ErrNotConvoked      = errors.New("convocation not found")
	ErrNoFieldsProvided = errors.New("no fields provided for update")
)

// Convocation ties one player to one match within a tenant. The five
// performance counters stay zero until stats are recorded after the match.
type Convocation struct {
	ID            string
	TenantID      string
	MatchID       string
	PlayerID      string
	Status        Status
	IsStarter     bool
	Position      string
	JerseyNumber  *int
	Notes         string
	MinutesPlayed int
	GoalsScored   int
	Assists       int
	YellowCards   int
	RedCards      int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewEntry is one requested call-up inside a batch add. Status is not
// settable here: every created row starts at StatusCalled.
type NewEntry struct {
	PlayerID     string
	Position     string
	IsStarter    bool
	JerseyNumber *int
	Notes        string
}

// UpdateFields applies only the fields that are non-nil. Building the SET
// clause from these explicit pointers keeps caller input out of the SQL text.
type UpdateFields struct {
	Status        *Status
	Position      *string
	IsStarter     *bool
	JerseyNumber  *int
	Notes         *string
	MinutesPlayed *int
	GoalsScored   *int
	Assists       *int
	YellowCards   *int
	RedCards      *int
}

func (f UpdateFields) Empty() bool {
	return f.Status == nil &&
		f.Position == nil &&
		f.IsStarter == nil &&
		f.JerseyNumber == nil &&
		f.Notes == nil &&
		f.MinutesPlayed == nil &&
		f.GoalsScored == nil &&
		f.Assists == nil &&
		f.YellowCards == nil &&
		f.RedCards == nil
}

// HistoryEntry is one convocation joined with its match metadata, used by
// the player history query.
type HistoryEntry struct {
	Convocation Convocation
	MatchDate   time.Time
	KickoffTime string
	Venue       string
	Competition string
	HomeTeamID  string
	AwayTeamID  string
}

// PlayerStats aggregates a player's call-up totals. ConfirmationRate is
// Confirmations/TotalConvocations, and exactly 0 when there is no history.
type PlayerStats struct {
	TotalConvocations int
	Confirmations     int
	Absences          int
	TotalMinutes      int
	TotalGoals        int
	TotalAssists      int
	ConfirmationRate  float64
}

// WithPlayer is a convocation row joined with the player's name fields,
// used by the match listings which order by name.
type WithPlayer struct {
	Convocation
	PlayerFirstName string
	PlayerLastName  string
}

// Lineup partitions a match's confirmed call-ups into the starting group
// and the bench.
type Lineup struct {
	Starters    []WithPlayer
	Substitutes []WithPlayer
}
