package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/canterahq/cantera/internal/domain/coach"
	"github.com/canterahq/cantera/internal/domain/convocation"
	"github.com/canterahq/cantera/internal/domain/match"
	"github.com/canterahq/cantera/internal/domain/player"
	"github.com/canterahq/cantera/internal/domain/team"
	"github.com/canterahq/cantera/internal/platform/cache"
)

const upcomingMatchLimit = 5

// DashboardSummary is the per-tenant aggregate behind GET /v1/dashboard.
type DashboardSummary struct {
	PlayerCount      int
	TeamCount        int
	CoachCount       int
	MatchCount       int
	UpcomingMatches  []match.Match
	ConfirmationRate float64
	GeneratedAt      time.Time
}

// DashboardService fans out the aggregate queries concurrently and caches
// the assembled summary per tenant for the store's TTL.
type DashboardService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
	coachRepo  coach.Repository
	matchRepo  match.Repository
	convRepo   convocation.Repository
	store      *cache.Store
	now        func() time.Time
}

func NewDashboardService(
	playerRepo player.Repository,
	teamRepo team.Repository,
	coachRepo coach.Repository,
	matchRepo match.Repository,
	convRepo convocation.Repository,
	store *cache.Store,
) *DashboardService {
	return &DashboardService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		coachRepo:  coachRepo,
		matchRepo:  matchRepo,
		convRepo:   convRepo,
		store:      store,
		now:        time.Now,
	}
}

func (s *DashboardService) Summary(ctx context.Context, tenantID string) (DashboardSummary, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return DashboardSummary{}, fmt.Errorf("%w: tenant_id is required", ErrInvalidInput)
	}

	value, err := s.store.GetOrLoad(ctx, "dashboard:"+tenantID, func(ctx context.Context) (any, error) {
		return s.load(ctx, tenantID)
	})
	if err != nil {
		return DashboardSummary{}, err
	}

	summary, ok := value.(DashboardSummary)
	if !ok {
		return DashboardSummary{}, fmt.Errorf("unexpected cached dashboard type %T", value)
	}

	return summary, nil
}

// Invalidate drops the cached summary so the next read rebuilds it.
func (s *DashboardService) Invalidate(ctx context.Context, tenantID string) {
	s.store.Delete(ctx, "dashboard:"+strings.TrimSpace(tenantID))
}

func (s *DashboardService) load(ctx context.Context, tenantID string) (DashboardSummary, error) {
	summary := DashboardSummary{GeneratedAt: s.now().UTC()}

	p := pool.New().WithContext(ctx).WithCancelOnError()

	p.Go(func(ctx context.Context) error {
		players, err := s.playerRepo.ListByTenant(ctx, tenantID)
		if err != nil {
			return fmt.Errorf("count players: %w", err)
		}
		summary.PlayerCount = len(players)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		teams, err := s.teamRepo.ListByTenant(ctx, tenantID)
		if err != nil {
			return fmt.Errorf("count teams: %w", err)
		}
		summary.TeamCount = len(teams)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		coaches, err := s.coachRepo.ListByTenant(ctx, tenantID)
		if err != nil {
			return fmt.Errorf("count coaches: %w", err)
		}
		summary.CoachCount = len(coaches)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		matches, err := s.matchRepo.ListByTenant(ctx, tenantID)
		if err != nil {
			return fmt.Errorf("count matches: %w", err)
		}
		summary.MatchCount = len(matches)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		upcoming, err := s.matchRepo.ListUpcoming(ctx, tenantID, upcomingMatchLimit)
		if err != nil {
			return fmt.Errorf("list upcoming matches: %w", err)
		}
		summary.UpcomingMatches = upcoming
		return nil
	})
	p.Go(func(ctx context.Context) error {
		total, confirmed, err := s.convRepo.TenantTotals(ctx, tenantID)
		if err != nil {
			return fmt.Errorf("convocation totals: %w", err)
		}
		if total > 0 {
			summary.ConfirmationRate = float64(confirmed) / float64(total)
		}
		return nil
	})

	if err := p.Wait(); err != nil {
		return DashboardSummary{}, err
	}
	if summary.UpcomingMatches == nil {
		summary.UpcomingMatches = []match.Match{}
	}

	return summary, nil
}
