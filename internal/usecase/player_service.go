package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/canterahq/cantera/internal/domain/player"
	"github.com/canterahq/cantera/internal/domain/team"
	idgen "github.com/canterahq/cantera/internal/platform/id"
)

type PlayerInput struct {
	FirstName     string
	LastName      string
	NationalID    string
	BirthDate     *time.Time
	PhotoURL      string
	IDDocumentURL string
	TeamIDs       []string
}

// PlayerService is plain tenant-scoped CRUD over players plus the
// full-replacement team membership update.
type PlayerService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
	ids        idgen.Generator
	now        func() time.Time
}

func NewPlayerService(playerRepo player.Repository, teamRepo team.Repository, ids idgen.Generator) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		ids:        ids,
		now:        time.Now,
	}
}

func (s *PlayerService) Create(ctx context.Context, tenantID string, in PlayerInput) (player.Player, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return player.Player{}, fmt.Errorf("%w: tenant_id is required", ErrInvalidInput)
	}

	teamIDs, err := s.validateTeams(ctx, tenantID, in.TeamIDs)
	if err != nil {
		return player.Player{}, err
	}

	playerID, err := s.ids.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	now := s.now().UTC()
	p := player.Player{
		ID:            playerID,
		TenantID:      tenantID,
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		NationalID:    strings.TrimSpace(in.NationalID),
		BirthDate:     in.BirthDate,
		PhotoURL:      strings.TrimSpace(in.PhotoURL),
		IDDocumentURL: strings.TrimSpace(in.IDDocumentURL),
		TeamIDs:       teamIDs,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Create(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return p, nil
}

func (s *PlayerService) Get(ctx context.Context, tenantID, playerID string) (player.Player, error) {
	p, exists, err := s.playerRepo.GetByID(ctx, strings.TrimSpace(tenantID), strings.TrimSpace(playerID))
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return p, nil
}

func (s *PlayerService) List(ctx context.Context, tenantID string) ([]player.Player, error) {
	items, err := s.playerRepo.ListByTenant(ctx, strings.TrimSpace(tenantID))
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return items, nil
}

// Update rewrites the player's fields and fully replaces the team
// membership set with whatever the input carries.
func (s *PlayerService) Update(ctx context.Context, tenantID, playerID string, in PlayerInput) (player.Player, error) {
	existing, err := s.Get(ctx, tenantID, playerID)
	if err != nil {
		return player.Player{}, err
	}

	teamIDs, err := s.validateTeams(ctx, existing.TenantID, in.TeamIDs)
	if err != nil {
		return player.Player{}, err
	}

	updated := existing
	updated.FirstName = strings.TrimSpace(in.FirstName)
	updated.LastName = strings.TrimSpace(in.LastName)
	updated.NationalID = strings.TrimSpace(in.NationalID)
	updated.BirthDate = in.BirthDate
	updated.PhotoURL = strings.TrimSpace(in.PhotoURL)
	updated.IDDocumentURL = strings.TrimSpace(in.IDDocumentURL)
	updated.TeamIDs = teamIDs
	updated.UpdatedAt = s.now().UTC()
	if err := updated.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	found, err := s.playerRepo.Update(ctx, updated)
	if err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	if !found {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	if _, err := s.playerRepo.ReplaceTeams(ctx, updated.TenantID, updated.ID, teamIDs); err != nil {
		return player.Player{}, fmt.Errorf("replace player teams: %w", err)
	}

	return updated, nil
}

func (s *PlayerService) Delete(ctx context.Context, tenantID, playerID string) error {
	deleted, err := s.playerRepo.Delete(ctx, strings.TrimSpace(tenantID), strings.TrimSpace(playerID))
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return nil
}

func (s *PlayerService) validateTeams(ctx context.Context, tenantID string, teamIDs []string) ([]string, error) {
	cleaned := make([]string, 0, len(teamIDs))
	seen := make(map[string]struct{}, len(teamIDs))
	for _, teamID := range teamIDs {
		teamID = strings.TrimSpace(teamID)
		if teamID == "" {
			return nil, fmt.Errorf("%w: team id cannot be empty", ErrInvalidInput)
		}
		if _, dup := seen[teamID]; dup {
			continue
		}
		seen[teamID] = struct{}{}

		if _, exists, err := s.teamRepo.GetByID(ctx, tenantID, teamID); err != nil {
			return nil, fmt.Errorf("get team by id: %w", err)
		} else if !exists {
			return nil, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
		}
		cleaned = append(cleaned, teamID)
	}

	return cleaned, nil
}
