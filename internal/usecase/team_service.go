package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/canterahq/cantera/internal/domain/coach"
	"github.com/canterahq/cantera/internal/domain/player"
	"github.com/canterahq/cantera/internal/domain/team"
	idgen "github.com/canterahq/cantera/internal/platform/id"
)

type TeamInput struct {
	Name     string
	Category string
	CoachID  string
}

type TeamService struct {
	teamRepo   team.Repository
	coachRepo  coach.Repository
	playerRepo player.Repository
	ids        idgen.Generator
	now        func() time.Time
}

func NewTeamService(teamRepo team.Repository, coachRepo coach.Repository, playerRepo player.Repository, ids idgen.Generator) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		coachRepo:  coachRepo,
		playerRepo: playerRepo,
		ids:        ids,
		now:        time.Now,
	}
}

func (s *TeamService) Create(ctx context.Context, tenantID string, in TeamInput) (team.Team, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return team.Team{}, fmt.Errorf("%w: tenant_id is required", ErrInvalidInput)
	}
	if err := s.requireCoach(ctx, tenantID, in.CoachID); err != nil {
		return team.Team{}, err
	}

	teamID, err := s.ids.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	now := s.now().UTC()
	t := team.Team{
		ID:        teamID,
		TenantID:  tenantID,
		Name:      strings.TrimSpace(in.Name),
		Category:  strings.TrimSpace(in.Category),
		CoachID:   strings.TrimSpace(in.CoachID),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Create(ctx, t); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	return t, nil
}

func (s *TeamService) Get(ctx context.Context, tenantID, teamID string) (team.Team, error) {
	t, exists, err := s.teamRepo.GetByID(ctx, strings.TrimSpace(tenantID), strings.TrimSpace(teamID))
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return t, nil
}

func (s *TeamService) List(ctx context.Context, tenantID string) ([]team.Team, error) {
	items, err := s.teamRepo.ListByTenant(ctx, strings.TrimSpace(tenantID))
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return items, nil
}

func (s *TeamService) Update(ctx context.Context, tenantID, teamID string, in TeamInput) (team.Team, error) {
	existing, err := s.Get(ctx, tenantID, teamID)
	if err != nil {
		return team.Team{}, err
	}
	if err := s.requireCoach(ctx, existing.TenantID, in.CoachID); err != nil {
		return team.Team{}, err
	}

	updated := existing
	updated.Name = strings.TrimSpace(in.Name)
	updated.Category = strings.TrimSpace(in.Category)
	updated.CoachID = strings.TrimSpace(in.CoachID)
	updated.UpdatedAt = s.now().UTC()
	if err := updated.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	found, err := s.teamRepo.Update(ctx, updated)
	if err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}
	if !found {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return updated, nil
}

// ReplaceMembers swaps the full roster of a team. Every player id must
// belong to the tenant; partial application is never attempted.
func (s *TeamService) ReplaceMembers(ctx context.Context, tenantID, teamID string, playerIDs []string) error {
	existing, err := s.Get(ctx, tenantID, teamID)
	if err != nil {
		return err
	}

	cleaned := make([]string, 0, len(playerIDs))
	seen := make(map[string]struct{}, len(playerIDs))
	for _, playerID := range playerIDs {
		playerID = strings.TrimSpace(playerID)
		if playerID == "" {
			return fmt.Errorf("%w: player id cannot be empty", ErrInvalidInput)
		}
		if _, dup := seen[playerID]; dup {
			continue
		}
		seen[playerID] = struct{}{}

		if _, exists, err := s.playerRepo.GetByID(ctx, existing.TenantID, playerID); err != nil {
			return fmt.Errorf("get player by id: %w", err)
		} else if !exists {
			return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
		}
		cleaned = append(cleaned, playerID)
	}

	found, err := s.teamRepo.ReplaceMembers(ctx, existing.TenantID, existing.ID, cleaned)
	if err != nil {
		return fmt.Errorf("replace team members: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return nil
}

func (s *TeamService) ListMembers(ctx context.Context, tenantID, teamID string) ([]player.Player, error) {
	if _, err := s.Get(ctx, tenantID, teamID); err != nil {
		return nil, err
	}

	players, err := s.playerRepo.ListByTeam(ctx, strings.TrimSpace(tenantID), strings.TrimSpace(teamID))
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}

	return players, nil
}

func (s *TeamService) Delete(ctx context.Context, tenantID, teamID string) error {
	deleted, err := s.teamRepo.Delete(ctx, strings.TrimSpace(tenantID), strings.TrimSpace(teamID))
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return nil
}

func (s *TeamService) requireCoach(ctx context.Context, tenantID, coachID string) error {
	coachID = strings.TrimSpace(coachID)
	if coachID == "" {
		return nil
	}

	_, exists, err := s.coachRepo.GetByID(ctx, tenantID, coachID)
	if err != nil {
		return fmt.Errorf("get coach by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: coach=%s", ErrNotFound, coachID)
	}

	return nil
}
