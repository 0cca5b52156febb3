package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/canterahq/cantera/internal/domain/convocation"
	"github.com/canterahq/cantera/internal/domain/match"
	"github.com/canterahq/cantera/internal/domain/player"
	idgen "github.com/canterahq/cantera/internal/platform/id"
)

const defaultHistoryLimit = 20

// AddPlayerInput is one requested call-up inside a batch. Status is not
// accepted here: created rows always start as convocado.
type AddPlayerInput struct {
	PlayerID     string
	Position     string
	IsStarter    bool
	JerseyNumber *int
	Notes        string
}

// UpdateConvocationInput mirrors convocation.UpdateFields at the service
// boundary; nil means "leave untouched".
type UpdateConvocationInput struct {
	Status        *string
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

// MatchStatsInput carries the five post-match performance counters.
type MatchStatsInput struct {
	MinutesPlayed int
	GoalsScored   int
	Assists       int
	YellowCards   int
	RedCards      int
}

// ConvocationService orchestrates the match roster lifecycle.
type ConvocationService struct {
	convRepo   convocation.Repository
	matchRepo  match.Repository
	playerRepo player.Repository
	ids        idgen.Generator
	logger     *slog.Logger
	now        func() time.Time
}

func NewConvocationService(
	convRepo convocation.Repository,
	matchRepo match.Repository,
	playerRepo player.Repository,
	ids idgen.Generator,
	logger *slog.Logger,
) *ConvocationService {
	if logger == nil {
		logger = slog.Default()
	}

	return &ConvocationService{
		convRepo:   convRepo,
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		ids:        ids,
		logger:     logger,
		now:        time.Now,
	}
}

// AddPlayers calls up a batch of players for a match. The whole batch is
// all-or-nothing: any duplicate player or jersey number aborts it with no
// row persisted. Created rows are returned in input order.
func (s *ConvocationService) AddPlayers(ctx context.Context, tenantID, matchID string, inputs []AddPlayerInput) ([]convocation.Convocation, error) {
	tenantID = strings.TrimSpace(tenantID)
	matchID = strings.TrimSpace(matchID)
	if tenantID == "" || matchID == "" {
		return nil, fmt.Errorf("%w: tenant_id and match_id are required", ErrInvalidInput)
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: convocation list cannot be empty", ErrInvalidInput)
	}

	if err := s.requireMatch(ctx, tenantID, matchID); err != nil {
		return nil, err
	}

	seenPlayers := make(map[string]struct{}, len(inputs))
	seenJerseys := make(map[int]struct{}, len(inputs))
	now := s.now().UTC()
	rows := make([]convocation.Convocation, 0, len(inputs))
	for _, in := range inputs {
		playerID := strings.TrimSpace(in.PlayerID)
		if playerID == "" {
			return nil, fmt.Errorf("%w: player_id is required", ErrInvalidInput)
		}
		if _, dup := seenPlayers[playerID]; dup {
			return nil, fmt.Errorf("%w", convocation.ErrDuplicate)
		}
		seenPlayers[playerID] = struct{}{}

		if in.JerseyNumber != nil {
			if *in.JerseyNumber <= 0 {
				return nil, fmt.Errorf("%w: jersey number must be positive", ErrInvalidInput)
			}
			if _, dup := seenJerseys[*in.JerseyNumber]; dup {
				return nil, fmt.Errorf("%w", convocation.ErrJerseyTaken)
			}
			seenJerseys[*in.JerseyNumber] = struct{}{}
		}

		if _, exists, err := s.playerRepo.GetByID(ctx, tenantID, playerID); err != nil {
			return nil, fmt.Errorf("get player by id: %w", err)
		} else if !exists {
			return nil, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
		}

		rowID, err := s.ids.NewID()
		if err != nil {
			return nil, fmt.Errorf("generate convocation id: %w", err)
		}

		rows = append(rows, convocation.Convocation{
			ID:           rowID,
			TenantID:     tenantID,
			MatchID:      matchID,
			PlayerID:     playerID,
			Status:       convocation.StatusCalled,
			IsStarter:    in.IsStarter,
			Position:     strings.TrimSpace(in.Position),
			JerseyNumber: in.JerseyNumber,
			Notes:        strings.TrimSpace(in.Notes),
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	created, err := s.convRepo.CreateBatch(ctx, tenantID, matchID, rows)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "players convoked",
		"match_id", matchID,
		"count", len(created),
	)

	return created, nil
}

// RemovePlayer takes a player off a match roster. The row is hard-deleted;
// re-adding the player later creates a fresh convocation.
func (s *ConvocationService) RemovePlayer(ctx context.Context, tenantID, matchID, playerID string) error {
	tenantID = strings.TrimSpace(tenantID)
	matchID = strings.TrimSpace(matchID)
	playerID = strings.TrimSpace(playerID)
	if tenantID == "" || matchID == "" || playerID == "" {
		return fmt.Errorf("%w: tenant_id, match_id and player_id are required", ErrInvalidInput)
	}

	deleted, err := s.convRepo.DeleteByMatchAndPlayer(ctx, tenantID, matchID, playerID)
	if err != nil {
		return fmt.Errorf("delete convocation: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: match=%s player=%s", convocation.ErrNotConvoked, matchID, playerID)
	}

	return nil
}

// Update applies a partial field set to one convocation. Only fields
// present in the input are touched; updated_at is always stamped.
func (s *ConvocationService) Update(ctx context.Context, tenantID, convocationID string, in UpdateConvocationInput) (convocation.Convocation, error) {
	tenantID = strings.TrimSpace(tenantID)
	convocationID = strings.TrimSpace(convocationID)
	if tenantID == "" || convocationID == "" {
		return convocation.Convocation{}, fmt.Errorf("%w: tenant_id and convocation_id are required", ErrInvalidInput)
	}

	fields := convocation.UpdateFields{
		Position:      in.Position,
		IsStarter:     in.IsStarter,
		JerseyNumber:  in.JerseyNumber,
		Notes:         in.Notes,
		MinutesPlayed: in.MinutesPlayed,
		GoalsScored:   in.GoalsScored,
		Assists:       in.Assists,
		YellowCards:   in.YellowCards,
		RedCards:      in.RedCards,
	}
	if in.Status != nil {
		status := convocation.Status(strings.TrimSpace(*in.Status))
		if !status.Valid() {
			return convocation.Convocation{}, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *in.Status)
		}
		fields.Status = &status
	}
	if fields.Empty() {
		return convocation.Convocation{}, fmt.Errorf("%w", convocation.ErrNoFieldsProvided)
	}

	updated, found, err := s.convRepo.Update(ctx, tenantID, convocationID, fields)
	if err != nil {
		return convocation.Convocation{}, fmt.Errorf("update convocation: %w", err)
	}
	if !found {
		return convocation.Convocation{}, fmt.Errorf("%w: convocation=%s", convocation.ErrNotConvoked, convocationID)
	}

	return updated, nil
}

// Confirm marks a call-up as confirmado.
func (s *ConvocationService) Confirm(ctx context.Context, tenantID, convocationID string) (convocation.Convocation, error) {
	status := string(convocation.StatusConfirmed)
	return s.Update(ctx, tenantID, convocationID, UpdateConvocationInput{Status: &status})
}

// MarkAbsent marks a call-up as ausente, storing the reason in notes.
func (s *ConvocationService) MarkAbsent(ctx context.Context, tenantID, convocationID, reason string) (convocation.Convocation, error) {
	status := string(convocation.StatusAbsent)
	in := UpdateConvocationInput{Status: &status}
	if reason = strings.TrimSpace(reason); reason != "" {
		in.Notes = &reason
	}

	return s.Update(ctx, tenantID, convocationID, in)
}

// RecordStats writes the post-match performance counters for one call-up.
func (s *ConvocationService) RecordStats(ctx context.Context, tenantID, convocationID string, stats MatchStatsInput) (convocation.Convocation, error) {
	if stats.MinutesPlayed < 0 || stats.GoalsScored < 0 || stats.Assists < 0 || stats.YellowCards < 0 || stats.RedCards < 0 {
		return convocation.Convocation{}, fmt.Errorf("%w: match stats cannot be negative", ErrInvalidInput)
	}

	return s.Update(ctx, tenantID, convocationID, UpdateConvocationInput{
		MinutesPlayed: &stats.MinutesPlayed,
		GoalsScored:   &stats.GoalsScored,
		Assists:       &stats.Assists,
		YellowCards:   &stats.YellowCards,
		RedCards:      &stats.RedCards,
	})
}

// ListByMatch returns a match's call-ups, optionally filtered by status,
// starters first and then alphabetically by player name.
func (s *ConvocationService) ListByMatch(ctx context.Context, tenantID, matchID, statusFilter string) ([]convocation.WithPlayer, error) {
	tenantID = strings.TrimSpace(tenantID)
	matchID = strings.TrimSpace(matchID)
	if tenantID == "" || matchID == "" {
		return nil, fmt.Errorf("%w: tenant_id and match_id are required", ErrInvalidInput)
	}

	if err := s.requireMatch(ctx, tenantID, matchID); err != nil {
		return nil, err
	}

	var status *convocation.Status
	if raw := strings.TrimSpace(statusFilter); raw != "" {
		parsed := convocation.Status(raw)
		if !parsed.Valid() {
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, raw)
		}
		status = &parsed
	}

	items, err := s.convRepo.ListByMatch(ctx, tenantID, matchID, status)
	if err != nil {
		return nil, fmt.Errorf("list convocations by match: %w", err)
	}

	return items, nil
}

// Lineup partitions a match's confirmed call-ups into starters and
// substitutes. Only confirmado rows qualify; each group is ordered by
// position, then player name.
func (s *ConvocationService) Lineup(ctx context.Context, tenantID, matchID string) (convocation.Lineup, error) {
	confirmed := convocation.StatusConfirmed
	items, err := s.ListByMatch(ctx, tenantID, matchID, string(confirmed))
	if err != nil {
		return convocation.Lineup{}, err
	}

	lineup := convocation.Lineup{
		Starters:    make([]convocation.WithPlayer, 0, len(items)),
		Substitutes: make([]convocation.WithPlayer, 0, len(items)),
	}
	for _, item := range items {
		if item.IsStarter {
			lineup.Starters = append(lineup.Starters, item)
			continue
		}
		lineup.Substitutes = append(lineup.Substitutes, item)
	}
	sortLineupGroup(lineup.Starters)
	sortLineupGroup(lineup.Substitutes)

	return lineup, nil
}

func sortLineupGroup(group []convocation.WithPlayer) {
	sort.SliceStable(group, func(i, j int) bool {
		a, b := group[i], group[j]
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		if a.PlayerLastName != b.PlayerLastName {
			return a.PlayerLastName < b.PlayerLastName
		}
		return a.PlayerFirstName < b.PlayerFirstName
	})
}

// PlayerHistory returns a player's call-ups joined with match metadata,
// most recent match first.
func (s *ConvocationService) PlayerHistory(ctx context.Context, tenantID, playerID string, limit int) ([]convocation.HistoryEntry, error) {
	tenantID = strings.TrimSpace(tenantID)
	playerID = strings.TrimSpace(playerID)
	if tenantID == "" || playerID == "" {
		return nil, fmt.Errorf("%w: tenant_id and player_id are required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	entries, err := s.convRepo.PlayerHistory(ctx, tenantID, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("player convocation history: %w", err)
	}

	return entries, nil
}

// PlayerStats aggregates a player's call-up totals. The confirmation rate
// is exactly zero when the player has no history.
func (s *ConvocationService) PlayerStats(ctx context.Context, tenantID, playerID string) (convocation.PlayerStats, error) {
	tenantID = strings.TrimSpace(tenantID)
	playerID = strings.TrimSpace(playerID)
	if tenantID == "" || playerID == "" {
		return convocation.PlayerStats{}, fmt.Errorf("%w: tenant_id and player_id are required", ErrInvalidInput)
	}

	stats, err := s.convRepo.PlayerStats(ctx, tenantID, playerID)
	if err != nil {
		return convocation.PlayerStats{}, fmt.Errorf("player convocation stats: %w", err)
	}

	if stats.TotalConvocations > 0 {
		stats.ConfirmationRate = float64(stats.Confirmations) / float64(stats.TotalConvocations)
	} else {
		stats.ConfirmationRate = 0
	}

	return stats, nil
}

// DuplicateFromMatch reuses a previous squad as the starting point for a
// new match: player, position, starter flag and notes are copied, status
// resets to convocado and fresh ids are generated. Jersey numbers are not
// carried over.
func (s *ConvocationService) DuplicateFromMatch(ctx context.Context, tenantID, sourceMatchID, targetMatchID string) ([]convocation.Convocation, error) {
	tenantID = strings.TrimSpace(tenantID)
	sourceMatchID = strings.TrimSpace(sourceMatchID)
	targetMatchID = strings.TrimSpace(targetMatchID)
	if tenantID == "" || sourceMatchID == "" || targetMatchID == "" {
		return nil, fmt.Errorf("%w: tenant_id, source_match_id and target_match_id are required", ErrInvalidInput)
	}
	if sourceMatchID == targetMatchID {
		return nil, fmt.Errorf("%w: source and target match must differ", ErrInvalidInput)
	}

	source, err := s.ListByMatch(ctx, tenantID, sourceMatchID, "")
	if err != nil {
		return nil, err
	}
	if len(source) == 0 {
		return nil, fmt.Errorf("%w: match %s has no convocations to duplicate", ErrInvalidInput, sourceMatchID)
	}

	inputs := make([]AddPlayerInput, 0, len(source))
	for _, item := range source {
		inputs = append(inputs, AddPlayerInput{
			PlayerID:  item.PlayerID,
			Position:  item.Position,
			IsStarter: item.IsStarter,
			Notes:     item.Notes,
		})
	}

	return s.AddPlayers(ctx, tenantID, targetMatchID, inputs)
}

func (s *ConvocationService) requireMatch(ctx context.Context, tenantID, matchID string) error {
	_, exists, err := s.matchRepo.GetByID(ctx, tenantID, matchID)
	if err != nil {
		return fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return nil
}
