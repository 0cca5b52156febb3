package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/canterahq/cantera/internal/domain/match"
	"github.com/canterahq/cantera/internal/domain/team"
	idgen "github.com/canterahq/cantera/internal/platform/id"
)

type MatchInput struct {
	HomeTeamID      string
	AwayTeamID      string
	MatchDate       time.Time
	KickoffTime     string
	Venue           string
	Competition     string
	Type            string
	Status          string
	HomeScore       *int
	AwayScore       *int
	Referee         string
	Notes           string
	DurationMinutes int
}

type MatchService struct {
	matchRepo match.Repository
	teamRepo  team.Repository
	ids       idgen.Generator
	now       func() time.Time
}

func NewMatchService(matchRepo match.Repository, teamRepo team.Repository, ids idgen.Generator) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
		teamRepo:  teamRepo,
		ids:       ids,
		now:       time.Now,
	}
}

func (s *MatchService) Create(ctx context.Context, tenantID string, in MatchInput) (match.Match, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return match.Match{}, fmt.Errorf("%w: tenant_id is required", ErrInvalidInput)
	}

	matchID, err := s.ids.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	now := s.now().UTC()
	m := s.fromInput(in)
	m.ID = matchID
	m.TenantID = tenantID
	if m.Status == "" {
		m.Status = match.StatusScheduled
	}
	m.CreatedAt = now
	m.UpdatedAt = now

	if err := m.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.requireTeams(ctx, tenantID, m.HomeTeamID, m.AwayTeamID); err != nil {
		return match.Match{}, err
	}

	if err := s.matchRepo.Create(ctx, m); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	return m, nil
}

func (s *MatchService) Get(ctx context.Context, tenantID, matchID string) (match.Match, error) {
	m, exists, err := s.matchRepo.GetByID(ctx, strings.TrimSpace(tenantID), strings.TrimSpace(matchID))
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return m, nil
}

func (s *MatchService) List(ctx context.Context, tenantID string) ([]match.Match, error) {
	items, err := s.matchRepo.ListByTenant(ctx, strings.TrimSpace(tenantID))
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return items, nil
}

func (s *MatchService) Update(ctx context.Context, tenantID, matchID string, in MatchInput) (match.Match, error) {
	existing, err := s.Get(ctx, tenantID, matchID)
	if err != nil {
		return match.Match{}, err
	}

	updated := s.fromInput(in)
	updated.ID = existing.ID
	updated.TenantID = existing.TenantID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = s.now().UTC()
	if updated.Status == "" {
		updated.Status = existing.Status
	}

	if err := updated.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.requireTeams(ctx, existing.TenantID, updated.HomeTeamID, updated.AwayTeamID); err != nil {
		return match.Match{}, err
	}

	found, err := s.matchRepo.Update(ctx, updated)
	if err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}
	if !found {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return updated, nil
}

func (s *MatchService) Delete(ctx context.Context, tenantID, matchID string) error {
	deleted, err := s.matchRepo.Delete(ctx, strings.TrimSpace(tenantID), strings.TrimSpace(matchID))
	if err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return nil
}

func (s *MatchService) fromInput(in MatchInput) match.Match {
	return match.Match{
		HomeTeamID:      strings.TrimSpace(in.HomeTeamID),
		AwayTeamID:      strings.TrimSpace(in.AwayTeamID),
		MatchDate:       in.MatchDate,
		KickoffTime:     strings.TrimSpace(in.KickoffTime),
		Venue:           strings.TrimSpace(in.Venue),
		Competition:     strings.TrimSpace(in.Competition),
		Type:            match.Type(strings.TrimSpace(in.Type)),
		Status:          match.Status(strings.TrimSpace(in.Status)),
		HomeScore:       in.HomeScore,
		AwayScore:       in.AwayScore,
		Referee:         strings.TrimSpace(in.Referee),
		Notes:           strings.TrimSpace(in.Notes),
		DurationMinutes: in.DurationMinutes,
	}
}

func (s *MatchService) requireTeams(ctx context.Context, tenantID string, teamIDs ...string) error {
	for _, teamID := range teamIDs {
		if teamID == "" {
			continue
		}
		if _, exists, err := s.teamRepo.GetByID(ctx, tenantID, teamID); err != nil {
			return fmt.Errorf("get team by id: %w", err)
		} else if !exists {
			return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
		}
	}

	return nil
}
