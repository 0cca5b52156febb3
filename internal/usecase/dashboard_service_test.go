package usecase

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/canterahq/cantera/internal/domain/match"
	"github.com/canterahq/cantera/internal/infrastructure/repository/memory"
	"github.com/canterahq/cantera/internal/platform/cache"
)

func newDashboardFixture() (*DashboardService, *ConvocationService, *memory.MatchRepository, *memory.PlayerRepository) {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	convRepo := memory.NewConvocationRepository(playerRepo, matchRepo)
	teamRepo := memory.NewTeamRepository(memory.SeedTeams(), playerRepo)
	coachRepo := memory.NewCoachRepository(memory.SeedCoaches())

	dashboard := NewDashboardService(playerRepo, teamRepo, coachRepo, matchRepo, convRepo, cache.NewStore(time.Minute))
	convocations := NewConvocationService(
		convRepo,
		matchRepo,
		playerRepo,
		&sequenceIDGenerator{prefix: "conv"},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	return dashboard, convocations, matchRepo, playerRepo
}

func TestDashboardService_Summary_Counts(t *testing.T) {
	dashboard, convocations, matchRepo, _ := newDashboardFixture()

	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	dashboard.now = func() time.Time { return now }

	future := match.Match{
		ID:         "lc-match-future",
		TenantID:   memory.TenantIDLaCantera,
		HomeTeamID: "lc-team-sub15",
		MatchDate:  time.Now().UTC().Add(48 * time.Hour),
		Type:       match.TypeLeague,
		Status:     match.StatusScheduled,
	}
	if err := matchRepo.Create(t.Context(), future); err != nil {
		t.Fatalf("create future match: %v", err)
	}

	created, err := convocations.AddPlayers(t.Context(), memory.TenantIDLaCantera, "lc-match-01", []AddPlayerInput{
		{PlayerID: "lc-player-01"},
		{PlayerID: "lc-player-02"},
	})
	if err != nil {
		t.Fatalf("add players failed: %v", err)
	}
	if _, err := convocations.Confirm(t.Context(), memory.TenantIDLaCantera, created[0].ID); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	summary, err := dashboard.Summary(t.Context(), memory.TenantIDLaCantera)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}

	if summary.PlayerCount != 5 || summary.TeamCount != 2 || summary.CoachCount != 2 {
		t.Fatalf("unexpected entity counts: %+v", summary)
	}
	if summary.MatchCount != 4 {
		t.Fatalf("expected 4 matches, got %d", summary.MatchCount)
	}
	if summary.ConfirmationRate != 0.5 {
		t.Fatalf("expected confirmation rate 0.5, got %f", summary.ConfirmationRate)
	}
	if len(summary.UpcomingMatches) != 1 || summary.UpcomingMatches[0].ID != "lc-match-future" {
		t.Fatalf("unexpected upcoming matches: %+v", summary.UpcomingMatches)
	}
	if !summary.GeneratedAt.Equal(now) {
		t.Fatalf("expected generated at %v, got %v", now, summary.GeneratedAt)
	}
}

func TestDashboardService_Summary_CachesUntilInvalidated(t *testing.T) {
	dashboard, _, _, playerRepo := newDashboardFixture()

	first := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	dashboard.now = func() time.Time { return first }

	before, err := dashboard.Summary(t.Context(), memory.TenantIDLaCantera)
	if err != nil {
		t.Fatalf("first summary failed: %v", err)
	}

	extra := memory.SeedPlayers()[0]
	extra.ID = "lc-player-extra"
	if err := playerRepo.Create(t.Context(), extra); err != nil {
		t.Fatalf("seed extra player: %v", err)
	}

	dashboard.now = func() time.Time { return first.Add(time.Minute) }

	cached, err := dashboard.Summary(t.Context(), memory.TenantIDLaCantera)
	if err != nil {
		t.Fatalf("cached summary failed: %v", err)
	}
	if cached.PlayerCount != before.PlayerCount || !cached.GeneratedAt.Equal(before.GeneratedAt) {
		t.Fatalf("expected cached summary, got %+v vs %+v", cached, before)
	}

	dashboard.Invalidate(t.Context(), memory.TenantIDLaCantera)

	fresh, err := dashboard.Summary(t.Context(), memory.TenantIDLaCantera)
	if err != nil {
		t.Fatalf("fresh summary failed: %v", err)
	}
	if fresh.PlayerCount != before.PlayerCount+1 {
		t.Fatalf("expected rebuilt count %d, got %d", before.PlayerCount+1, fresh.PlayerCount)
	}
	if fresh.GeneratedAt.Equal(before.GeneratedAt) {
		t.Fatalf("expected a new generation timestamp after invalidation")
	}
}

func TestDashboardService_Summary_TenantIsolation(t *testing.T) {
	dashboard, _, _, _ := newDashboardFixture()

	summary, err := dashboard.Summary(t.Context(), memory.TenantIDNorte)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}

	if summary.PlayerCount != 1 || summary.TeamCount != 1 || summary.CoachCount != 1 || summary.MatchCount != 1 {
		t.Fatalf("unexpected counts for second tenant: %+v", summary)
	}
	if summary.ConfirmationRate != 0 {
		t.Fatalf("expected zero confirmation rate, got %f", summary.ConfirmationRate)
	}
}
