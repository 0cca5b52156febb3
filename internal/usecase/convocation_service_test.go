package usecase

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/canterahq/cantera/internal/domain/convocation"
	"github.com/canterahq/cantera/internal/infrastructure/repository/memory"
)

type sequenceIDGenerator struct {
	prefix string
	next   int
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("%s-%03d", g.prefix, g.next), nil
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func newConvocationService() *ConvocationService {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	convRepo := memory.NewConvocationRepository(playerRepo, matchRepo)

	return NewConvocationService(
		convRepo,
		matchRepo,
		playerRepo,
		&sequenceIDGenerator{prefix: "conv"},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestConvocationService_AddPlayers_Batch(t *testing.T) {
	service := newConvocationService()

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	created, err := service.AddPlayers(t.Context(), memory.TenantIDLaCantera, "lc-match-01", []AddPlayerInput{
		{PlayerID: "lc-player-01", Position: "portero", IsStarter: true, JerseyNumber: intPtr(1)},
		{PlayerID: "lc-player-02", Position: "defensa", IsStarter: true, JerseyNumber: intPtr(4)},
		{PlayerID: "lc-player-03", Notes: "llega tarde al calentamiento"},
	})
	if err != nil {
		t.Fatalf("add players failed: %v", err)
	}

	if len(created) != 3 {
		t.Fatalf("expected 3 convocations, got %d", len(created))
	}
	for i, c := range created {
		if c.Status != convocation.StatusCalled {
			t.Fatalf("expected status convocado at index %d, got %s", i, c.Status)
		}
		if c.MatchID != "lc-match-01" || c.TenantID != memory.TenantIDLaCantera {
			t.Fatalf("unexpected scoping at index %d: %+v", i, c)
		}
		if !c.CreatedAt.Equal(now) || !c.UpdatedAt.Equal(now) {
			t.Fatalf("expected timestamps %v at index %d, got created=%v updated=%v", now, i, c.CreatedAt, c.UpdatedAt)
		}
	}
	if created[0].PlayerID != "lc-player-01" || created[2].PlayerID != "lc-player-03" {
		t.Fatalf("expected input order preserved, got %s..%s", created[0].PlayerID, created[2].PlayerID)
	}
	if created[0].JerseyNumber == nil || *created[0].JerseyNumber != 1 {
		t.Fatalf("expected jersey 1 for first row, got %v", created[0].JerseyNumber)
	}
	if created[2].JerseyNumber != nil {
		t.Fatalf("expected no jersey for third row, got %v", *created[2].JerseyNumber)
	}
}

func TestConvocationService_AddPlayers_DuplicateInBatchIsAtomic(t *testing.T) {
	service := newConvocationService()

	_, err := service.AddPlayers(t.Context(), memory.TenantIDLaCantera, "lc-match-01", []AddPlayerInput{
		{PlayerID: "lc-player-01"},
		{PlayerID: "lc-player-02"},
		{PlayerID: "lc-player-01"},
	})
	if !errors.Is(err, convocation.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	listed, err := service.ListByMatch(t.Context(), memory.TenantIDLaCantera, "lc-match-01", "")
	if err != nil {
		t.Fatalf("list after failed batch: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected no rows persisted from rejected batch, got %d", len(listed))
	}
}

func TestConvocationService_AddPlayers_DuplicateAcrossBatchesIsAtomic(t *testing.T) {
	service := newConvocationService()

	if _, err := service.AddPlayers(t.Context(), memory.TenantIDLaCantera, "lc-match-01", []AddPlayerInput{
		{PlayerID: "lc-player-01"},
	}); err != nil {
		t.Fatalf("first batch failed: %v", err)
	}

	_, err := service.AddPlayers(t.Context(), memory.TenantIDLaCantera, "lc-match-01", []AddPlayerInput{
		{PlayerID: "lc-player-02"},
		{PlayerID: "lc-player-01"},
	})
	if !errors.Is(err, convocation.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	listed, err := service.ListByMatch(t.Context(), memory.TenantIDLaCantera, "lc-match-01", "")
	if err != nil {
		t.Fatalf("list after failed batch: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected only the first batch persisted, got %d rows", len(listed))
	}
	if listed[0].PlayerID != "lc-player-01" {
		t.Fatalf("expected lc-player-01 to survive, got %s", listed[0].PlayerID)
	}
}

func TestConvocationService_AddPlayers_JerseyConflicts(t *testing.T) {
	service := newConvocationService()

	_, err := service.AddPlayers(t.Context(), memory.TenantIDLaCantera, "lc-match-01", []AddPlayerInput{
		{PlayerID: "lc-player-01", JerseyNumber: intPtr(7)},
		{PlayerID: "lc-player-02", JerseyNumber: intPtr(7)},
	})
	if !errors.Is(err, convocation.ErrJerseyTaken) {
		t.Fatalf("expected ErrJerseyTaken for in-batch conflict, got %v", err)
	}

	if _, err := service.AddPlayers(t.Context(), memory.TenantIDLaCantera, "lc-match-01", []AddPlayerInput{
		{PlayerID: "lc-player-01", JerseyNumber: intPtr(7)},
	}); err != nil {
		t.Fatalf("seeding jersey 7 failed: %v", err)
	}

	_, err = service.AddPlayers(t.Context(), memory.TenantIDLaCantera, "lc-match-01", []AddPlayerInput{
		{PlayerID: "lc-player-02", JerseyNumber: intPtr(7)},
	})
	if !errors.Is(err, convocation.ErrJerseyTaken) {
		t.Fatalf("expected ErrJerseyTaken for cross-batch conflict, got %v", err)
	}

	// The same jersey on a different match is fine.
	if _, err := service.AddPlayers(t.Context(), memory.TenantIDLaCantera, "lc-match-02", []AddPlayerInput{
		{PlayerID: "lc-player-02", JerseyNumber: intPtr(7)},
	}); err != nil {
		t.Fatalf("same jersey on another match should pass: %v", err)
	}

	_, err = service.AddPlayers(t.Context(), memory.TenantIDLaCantera, "lc-match-02", []AddPlayerInput{
		{PlayerID: "lc-player-03", JerseyNumber: intPtr(0)},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for non-positive jersey, got %v", err)
	}
}

func TestConvocationService_AddPlayers_InvalidInput(t *testing.T) {
	service := newConvocationService()

	_, err := service.AddPlayers(t.Context(), memory.TenantIDLaCantera, "lc-match-01", nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty batch, got %v", err)
	}

	_, err = service.AddPlayers(t.Context(), memory.TenantIDLaCantera, "no-such-match", []AddPlayerInput{
		{PlayerID: "lc-player-01"},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown match, got %v", err)
	}

	_, err = service.AddPlayers(t.Context(), memory.TenantIDLaCantera, "lc-match-01", []AddPlayerInput{
		{PlayerID: "no-such-player"},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown player, got %v", err)
	}

	// Matches from another tenant are invisible here.
	_, err = service.AddPlayers(t.Context(), memory.TenantIDLaCantera, "an-match-01", []AddPlayerInput{
		{PlayerID: "lc-player-01"},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for cross-tenant match, got %v", err)
	}
}

func TestConvocationService_Update_PartialFields(t *testing.T) {
	service := newConvocationService()

	created, err := service.AddPlayers(t.Context(), memory.TenantIDLaCantera, "lc-match-01", []AddPlayerInput{
		{PlayerID: "lc-player-01", Position: "portero", IsStarter: true, JerseyNumber: intPtr(1), Notes: "capitán"},
	})
	if err != nil {
		t.Fatalf("add players failed: %v", err)
	}

	updated, err := service.Update(t.Context(), memory.TenantIDLaCantera, created[0].ID, UpdateConvocationInput{
		Position:     strPtr("lateral"),
		JerseyNumber: intPtr(3),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Position != "lateral" {
		t.Fatalf("expected position lateral, got %s", updated.Position)
	}
	if updated.JerseyNumber == nil || *updated.JerseyNumber != 3 {
		t.Fatalf("expected jersey 3, got %v", updated.JerseyNumber)
	}
	if updated.Status != convocation.StatusCalled {
		t.Fatalf("expected untouched status convocado, got %s", updated.Status)
	}
	if !updated.IsStarter || updated.Notes != "capitán" {
		t.Fatalf("expected untouched starter flag and notes, got %+v", updated)
	}
}

func TestConvocationService_Update_Errors(t *testing.T) {
	service := newConvocationService()

	created, err := service.AddPlayers(t.Context(), memory.TenantIDLaCantera, "lc-match-01", []AddPlayerInput{
		{PlayerID: "lc-player-01"},
	})
	if err != nil {
		t.Fatalf("add players failed: %v", err)
	}

	_, err = service.Update(t.Context(), memory.TenantIDLaCantera, created[0].ID, UpdateConvocationInput{})
	if !errors.Is(err, convocation.ErrNoFieldsProvided) {
		t.Fatalf("expected ErrNoFieldsProvided, got %v", err)
	}

	_, err = service.Update(t.Context(), memory.TenantIDLaCantera, created[0].ID, UpdateConvocationInput{
		Status: strPtr("descansando"),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}

	_, err = service.Update(t.Context(), memory.TenantIDLaCantera, "no-such-convocation", UpdateConvocationInput{
		Status: strPtr(string(convocation.StatusConfirmed)),
	})
	if !errors.Is(err, convocation.ErrNotConvoked) {
		t.Fatalf("expected ErrNotConvoked, got %v", err)
	}

	// A row is unreachable from another tenant.
	_, err = service.Update(t.Context(), memory.TenantIDNorte, created[0].ID, UpdateConvocationInput{
		Status: strPtr(string(convocation.StatusConfirmed)),
	})
	if !errors.Is(err, convocation.ErrNotConvoked) {
		t.Fatalf("expected ErrNotConvoked across tenants, got %v", err)
	}
}

func TestConvocationService_ConfirmAndMarkAbsent(t *testing.T) {
	service := newConvocationService()

	created, err := service.AddPlayers(t.Context(), memory.TenantIDLaCantera, "lc-match-01", []AddPlayerInput{
		{PlayerID: "lc-player-01"},
		{PlayerID: "lc-player-02", Notes: "titular habitual"},
	})
	if err != nil {
		t.Fatalf("add players failed: %v", err)
	}

	confirmed, err := service.Confirm(t.Context(), memory.TenantIDLaCantera, created[0].ID)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if confirmed.Status != convocation.StatusConfirmed {
		t.Fatalf("expected confirmado, got %s", confirmed.Status)
	}

	absent, err := service.MarkAbsent(t.Context(), memory.TenantIDLaCantera, created[1].ID, "viaje familiar")
	if err != nil {
		t.Fatalf("mark absent failed: %v", err)
	}
	if absent.Status != convocation.StatusAbsent {
		t.Fatalf("expected ausente, got %s", absent.Status)
	}
	if absent.Notes != "viaje familiar" {
		t.Fatalf("expected reason stored in notes, got %q", absent.Notes)
	}

	// Absence without a reason keeps the previous notes.
	again, err := service.MarkAbsent(t.Context(), memory.TenantIDLaCantera, created[1].ID, "  ")
	if err != nil {
		t.Fatalf("mark absent without reason failed: %v", err)
	}
	if again.Notes != "viaje familiar" {
		t.Fatalf("expected notes untouched, got %q", again.Notes)
	}
}

func TestConvocationService_RecordStats(t *testing.T) {
	service := newConvocationService()

	created, err := service.AddPlayers(t.Context(), memory.TenantIDLaCantera, "lc-match-01", []AddPlayerInput{
		{PlayerID: "lc-player-01"},
	})
	if err != nil {
		t.Fatalf("add players failed: %v", err)
	}

	_, err = service.RecordStats(t.Context(), memory.TenantIDLaCantera, created[0].ID, MatchStatsInput{GoalsScored: -1})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative counter, got %v", err)
	}

	updated, err := service.RecordStats(t.Context(), memory.TenantIDLaCantera, created[0].ID, MatchStatsInput{
		MinutesPlayed: 70,
		GoalsScored:   2,
		Assists:       1,
		YellowCards:   1,
	})
	if err != nil {
		t.Fatalf("record stats failed: %v", err)
	}

	if updated.MinutesPlayed != 70 || updated.GoalsScored != 2 || updated.Assists != 1 {
		t.Fatalf("unexpected counters: %+v", updated)
	}
	if updated.YellowCards != 1 || updated.RedCards != 0 {
		t.Fatalf("unexpected cards: %+v", updated)
	}
}

func TestConvocationService_ListByMatch_StatusFilter(t *testing.T) {
	service := newConvocationService()

	created, err := service.AddPlayers(t.Context(), memory.TenantIDLaCantera, "lc-match-01", []AddPlayerInput{
		{PlayerID: "lc-player-01"},
		{PlayerID: "lc-player-02"},
	})
	if err != nil {
		t.Fatalf("add players failed: %v", err)
	}
	if _, err := service.Confirm(t.Context(), memory.TenantIDLaCantera, created[0].ID); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	confirmed, err := service.ListByMatch(t.Context(), memory.TenantIDLaCantera, "lc-match-01", "confirmado")
	if err != nil {
		t.Fatalf("list confirmed failed: %v", err)
	}
	if len(confirmed) != 1 || confirmed[0].PlayerID != "lc-player-01" {
		t.Fatalf("expected only lc-player-01 confirmed, got %+v", confirmed)
	}
	if confirmed[0].PlayerFirstName != "Hugo" || confirmed[0].PlayerLastName != "Alarcón" {
		t.Fatalf("expected joined player name, got %s %s", confirmed[0].PlayerFirstName, confirmed[0].PlayerLastName)
	}

	_, err = service.ListByMatch(t.Context(), memory.TenantIDLaCantera, "lc-match-01", "pendiente")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown filter, got %v", err)
	}
}

func TestConvocationService_Lineup(t *testing.T) {
	service := newConvocationService()

	created, err := service.AddPlayers(t.Context(), memory.TenantIDLaCantera, "lc-match-01", []AddPlayerInput{
		{PlayerID: "lc-player-01", IsStarter: true},
		{PlayerID: "lc-player-02", IsStarter: true},
		{PlayerID: "lc-player-03"},
	})
	if err != nil {
		t.Fatalf("add players failed: %v", err)
	}

	// lc-player-02 never confirms, so it stays out of the lineup.
	for _, id := range []string{created[0].ID, created[2].ID} {
		if _, err := service.Confirm(t.Context(), memory.TenantIDLaCantera, id); err != nil {
			t.Fatalf("confirm failed: %v", err)
		}
	}

	lineup, err := service.Lineup(t.Context(), memory.TenantIDLaCantera, "lc-match-01")
	if err != nil {
		t.Fatalf("lineup failed: %v", err)
	}

	if len(lineup.Starters) != 1 || lineup.Starters[0].PlayerID != "lc-player-01" {
		t.Fatalf("unexpected starters: %+v", lineup.Starters)
	}
	if len(lineup.Substitutes) != 1 || lineup.Substitutes[0].PlayerID != "lc-player-03" {
		t.Fatalf("unexpected substitutes: %+v", lineup.Substitutes)
	}
}

func TestConvocationService_Lineup_OrdersByPositionThenName(t *testing.T) {
	service := newConvocationService()

	// Name order (Alarcón, Benítez) differs from position order here.
	created, err := service.AddPlayers(t.Context(), memory.TenantIDLaCantera, "lc-match-01", []AddPlayerInput{
		{PlayerID: "lc-player-01", IsStarter: true, Position: "portero"},
		{PlayerID: "lc-player-02", IsStarter: true, Position: "delantero"},
		{PlayerID: "lc-player-03", Position: "portero"},
		{PlayerID: "lc-player-04", Position: "defensa"},
	})
	if err != nil {
		t.Fatalf("add players failed: %v", err)
	}
	for _, c := range created {
		if _, err := service.Confirm(t.Context(), memory.TenantIDLaCantera, c.ID); err != nil {
			t.Fatalf("confirm failed: %v", err)
		}
	}

	lineup, err := service.Lineup(t.Context(), memory.TenantIDLaCantera, "lc-match-01")
	if err != nil {
		t.Fatalf("lineup failed: %v", err)
	}

	if len(lineup.Starters) != 2 {
		t.Fatalf("expected 2 starters, got %d", len(lineup.Starters))
	}
	if lineup.Starters[0].PlayerID != "lc-player-02" || lineup.Starters[1].PlayerID != "lc-player-01" {
		t.Fatalf("expected starters ordered delantero before portero, got %+v", lineup.Starters)
	}
	if len(lineup.Substitutes) != 2 {
		t.Fatalf("expected 2 substitutes, got %d", len(lineup.Substitutes))
	}
	if lineup.Substitutes[0].PlayerID != "lc-player-04" || lineup.Substitutes[1].PlayerID != "lc-player-03" {
		t.Fatalf("expected substitutes ordered defensa before portero, got %+v", lineup.Substitutes)
	}
}

func TestConvocationService_RemovePlayer(t *testing.T) {
	service := newConvocationService()

	if _, err := service.AddPlayers(t.Context(), memory.TenantIDLaCantera, "lc-match-01", []AddPlayerInput{
		{PlayerID: "lc-player-01"},
	}); err != nil {
		t.Fatalf("add players failed: %v", err)
	}

	if err := service.RemovePlayer(t.Context(), memory.TenantIDLaCantera, "lc-match-01", "lc-player-01"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	err := service.RemovePlayer(t.Context(), memory.TenantIDLaCantera, "lc-match-01", "lc-player-01")
	if !errors.Is(err, convocation.ErrNotConvoked) {
		t.Fatalf("expected ErrNotConvoked on second remove, got %v", err)
	}

	// Removal frees the slot for a fresh call-up.
	if _, err := service.AddPlayers(t.Context(), memory.TenantIDLaCantera, "lc-match-01", []AddPlayerInput{
		{PlayerID: "lc-player-01"},
	}); err != nil {
		t.Fatalf("re-adding after removal failed: %v", err)
	}
}

func TestConvocationService_PlayerStats(t *testing.T) {
	service := newConvocationService()

	empty, err := service.PlayerStats(t.Context(), memory.TenantIDLaCantera, "lc-player-01")
	if err != nil {
		t.Fatalf("stats without history failed: %v", err)
	}
	if empty.TotalConvocations != 0 || empty.ConfirmationRate != 0 {
		t.Fatalf("expected zeroed stats, got %+v", empty)
	}

	first, err := service.AddPlayers(t.Context(), memory.TenantIDLaCantera, "lc-match-01", []AddPlayerInput{
		{PlayerID: "lc-player-01"},
	})
	if err != nil {
		t.Fatalf("add players failed: %v", err)
	}
	second, err := service.AddPlayers(t.Context(), memory.TenantIDLaCantera, "lc-match-02", []AddPlayerInput{
		{PlayerID: "lc-player-01"},
	})
	if err != nil {
		t.Fatalf("add players failed: %v", err)
	}

	if _, err := service.Confirm(t.Context(), memory.TenantIDLaCantera, first[0].ID); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if _, err := service.RecordStats(t.Context(), memory.TenantIDLaCantera, first[0].ID, MatchStatsInput{
		MinutesPlayed: 80,
		GoalsScored:   1,
		Assists:       2,
	}); err != nil {
		t.Fatalf("record stats failed: %v", err)
	}
	if _, err := service.MarkAbsent(t.Context(), memory.TenantIDLaCantera, second[0].ID, "lesión leve"); err != nil {
		t.Fatalf("mark absent failed: %v", err)
	}

	stats, err := service.PlayerStats(t.Context(), memory.TenantIDLaCantera, "lc-player-01")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	if stats.TotalConvocations != 2 || stats.Confirmations != 1 || stats.Absences != 1 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.TotalMinutes != 80 || stats.TotalGoals != 1 || stats.TotalAssists != 2 {
		t.Fatalf("unexpected accumulators: %+v", stats)
	}
	if stats.ConfirmationRate != 0.5 {
		t.Fatalf("expected confirmation rate 0.5, got %f", stats.ConfirmationRate)
	}
}

func TestConvocationService_PlayerHistory(t *testing.T) {
	service := newConvocationService()

	for _, matchID := range []string{"lc-match-01", "lc-match-02"} {
		if _, err := service.AddPlayers(t.Context(), memory.TenantIDLaCantera, matchID, []AddPlayerInput{
			{PlayerID: "lc-player-01"},
		}); err != nil {
			t.Fatalf("add players for %s failed: %v", matchID, err)
		}
	}

	history, err := service.PlayerHistory(t.Context(), memory.TenantIDLaCantera, "lc-player-01", 0)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}

	if len(history) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(history))
	}
	if history[0].Convocation.MatchID != "lc-match-02" || history[1].Convocation.MatchID != "lc-match-01" {
		t.Fatalf("expected most recent match first, got %s then %s", history[0].Convocation.MatchID, history[1].Convocation.MatchID)
	}
	if history[0].Competition != "Liga Cadete" || history[0].KickoffTime != "12:00" {
		t.Fatalf("expected joined match metadata, got %+v", history[0])
	}

	limited, err := service.PlayerHistory(t.Context(), memory.TenantIDLaCantera, "lc-player-01", 1)
	if err != nil {
		t.Fatalf("limited history failed: %v", err)
	}
	if len(limited) != 1 || limited[0].Convocation.MatchID != "lc-match-02" {
		t.Fatalf("expected only the latest entry, got %+v", limited)
	}
}

func TestConvocationService_DuplicateFromMatch(t *testing.T) {
	service := newConvocationService()

	source, err := service.AddPlayers(t.Context(), memory.TenantIDLaCantera, "lc-match-01", []AddPlayerInput{
		{PlayerID: "lc-player-01", Position: "portero", IsStarter: true, JerseyNumber: intPtr(1)},
		{PlayerID: "lc-player-02", Notes: "suplente de confianza"},
	})
	if err != nil {
		t.Fatalf("seeding source match failed: %v", err)
	}
	if _, err := service.Confirm(t.Context(), memory.TenantIDLaCantera, source[0].ID); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	copied, err := service.DuplicateFromMatch(t.Context(), memory.TenantIDLaCantera, "lc-match-01", "lc-match-02")
	if err != nil {
		t.Fatalf("duplicate failed: %v", err)
	}

	if len(copied) != 2 {
		t.Fatalf("expected 2 copied rows, got %d", len(copied))
	}
	for _, c := range copied {
		if c.MatchID != "lc-match-02" {
			t.Fatalf("expected target match id, got %s", c.MatchID)
		}
		if c.Status != convocation.StatusCalled {
			t.Fatalf("expected status reset to convocado, got %s", c.Status)
		}
		if c.JerseyNumber != nil {
			t.Fatalf("expected jersey numbers not carried over, got %d", *c.JerseyNumber)
		}
	}
	for _, s := range source {
		for _, c := range copied {
			if c.ID == s.ID {
				t.Fatalf("expected fresh ids, %s reused", c.ID)
			}
		}
	}

	_, err = service.DuplicateFromMatch(t.Context(), memory.TenantIDLaCantera, "lc-match-01", "lc-match-01")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for same source and target, got %v", err)
	}

	_, err = service.DuplicateFromMatch(t.Context(), memory.TenantIDLaCantera, "lc-match-03", "lc-match-02")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty source, got %v", err)
	}
}
