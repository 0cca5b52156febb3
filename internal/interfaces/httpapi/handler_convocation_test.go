package httpapi

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/canterahq/cantera/internal/domain/auth"
	"github.com/canterahq/cantera/internal/infrastructure/repository/memory"
	"github.com/canterahq/cantera/internal/platform/cache"
	"github.com/canterahq/cantera/internal/usecase"
)

type counterIDGenerator struct {
	next int
}

func (g *counterIDGenerator) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("conv-%03d", g.next), nil
}

func newConvocationHandler() (*Handler, *usecase.ConvocationService) {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	convRepo := memory.NewConvocationRepository(playerRepo, matchRepo)
	teamRepo := memory.NewTeamRepository(memory.SeedTeams(), playerRepo)
	coachRepo := memory.NewCoachRepository(memory.SeedCoaches())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	convService := usecase.NewConvocationService(convRepo, matchRepo, playerRepo, &counterIDGenerator{}, logger)
	dashService := usecase.NewDashboardService(playerRepo, teamRepo, coachRepo, matchRepo, convRepo, cache.NewStore(time.Minute))

	return NewHandler(HandlerServices{Convocation: convService, Dashboard: dashService}, logger), convService
}

func staffRequest(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	principal := auth.Principal{UserID: "user-admin", TenantID: memory.TenantIDLaCantera, Role: auth.RoleAdmin}
	return r.WithContext(withPrincipal(r.Context(), principal))
}

func TestHandler_AddConvocations(t *testing.T) {
	handler, _ := newConvocationHandler()

	body := `{"convocations":[{"playerId":"lc-player-01","isStarter":true,"position":"portero"},{"playerId":"lc-player-02"}]}`
	r := staffRequest(http.MethodPost, "/v1/matches/lc-match-01/convocations", body)
	r.SetPathValue("matchID", "lc-match-01")
	w := httptest.NewRecorder()

	handler.AddConvocations(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var envelope struct {
		Data []convocationDTO `json:"data"`
	}
	if err := sonic.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 2 {
		t.Fatalf("expected 2 created rows, got %d", len(envelope.Data))
	}
	if envelope.Data[0].PlayerID != "lc-player-01" || envelope.Data[0].Status != "convocado" {
		t.Fatalf("unexpected first row: %+v", envelope.Data[0])
	}
}

func TestHandler_AddConvocations_RejectsUnknownBodyKeys(t *testing.T) {
	handler, _ := newConvocationHandler()

	body := `{"players":[{"playerId":"lc-player-01"}]}`
	r := staffRequest(http.MethodPost, "/v1/matches/lc-match-01/convocations", body)
	r.SetPathValue("matchID", "lc-match-01")
	w := httptest.NewRecorder()

	handler.AddConvocations(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown body key, got %d", w.Code)
	}
}

func TestHandler_GetLineup_ReportsTotal(t *testing.T) {
	handler, service := newConvocationHandler()

	created, err := service.AddPlayers(t.Context(), memory.TenantIDLaCantera, "lc-match-01", []usecase.AddPlayerInput{
		{PlayerID: "lc-player-01", IsStarter: true},
		{PlayerID: "lc-player-02"},
		{PlayerID: "lc-player-03"},
	})
	if err != nil {
		t.Fatalf("add players failed: %v", err)
	}

	// lc-player-03 never confirms, so the total counts two rows.
	for _, id := range []string{created[0].ID, created[1].ID} {
		if _, err := service.Confirm(t.Context(), memory.TenantIDLaCantera, id); err != nil {
			t.Fatalf("confirm failed: %v", err)
		}
	}

	r := staffRequest(http.MethodGet, "/v1/matches/lc-match-01/lineup", "")
	r.SetPathValue("matchID", "lc-match-01")
	w := httptest.NewRecorder()

	handler.GetLineup(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var envelope struct {
		Data lineupDTO `json:"data"`
	}
	if err := sonic.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Starters) != 1 || len(envelope.Data.Substitutes) != 1 {
		t.Fatalf("unexpected lineup: %+v", envelope.Data)
	}
	if envelope.Data.Total != 2 {
		t.Fatalf("expected total 2, got %d", envelope.Data.Total)
	}
}
