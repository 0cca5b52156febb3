package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/canterahq/cantera/internal/infrastructure/repository/memory"
)

func newTrainingService() *TrainingService {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams(), playerRepo)

	return NewTrainingService(
		memory.NewTrainingRepository(),
		teamRepo,
		playerRepo,
		&sequenceIDGenerator{prefix: "trn"},
	)
}

func TestTrainingService_Create_SingleSession(t *testing.T) {
	service := newTrainingService()

	startsAt := time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC)
	sessions, err := service.Create(t.Context(), memory.TenantIDLaCantera, TrainingInput{
		TeamID:          "lc-team-sub15",
		StartsAt:        startsAt,
		DurationMinutes: 90,
		Location:        "Campo 2",
	})
	if err != nil {
		t.Fatalf("create training failed: %v", err)
	}

	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if sessions[0].SeriesID != "" {
		t.Fatalf("expected no series id for a single session, got %s", sessions[0].SeriesID)
	}
	if !sessions[0].StartsAt.Equal(startsAt) {
		t.Fatalf("unexpected start time: %v", sessions[0].StartsAt)
	}
}

func TestTrainingService_Create_WeeklySeries(t *testing.T) {
	service := newTrainingService()

	startsAt := time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC)
	sessions, err := service.Create(t.Context(), memory.TenantIDLaCantera, TrainingInput{
		TeamID:          "lc-team-sub15",
		StartsAt:        startsAt,
		DurationMinutes: 90,
		RepeatWeeks:     4,
	})
	if err != nil {
		t.Fatalf("create series failed: %v", err)
	}

	if len(sessions) != 4 {
		t.Fatalf("expected 4 sessions, got %d", len(sessions))
	}
	seriesID := sessions[0].SeriesID
	if seriesID == "" {
		t.Fatalf("expected series id on every occurrence")
	}
	for i, session := range sessions {
		if session.SeriesID != seriesID {
			t.Fatalf("expected shared series id, got %s at index %d", session.SeriesID, i)
		}
		want := startsAt.AddDate(0, 0, 7*i)
		if !session.StartsAt.Equal(want) {
			t.Fatalf("expected occurrence %d at %v, got %v", i, want, session.StartsAt)
		}
	}
}

func TestTrainingService_Create_Invalid(t *testing.T) {
	service := newTrainingService()

	startsAt := time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC)

	_, err := service.Create(t.Context(), memory.TenantIDLaCantera, TrainingInput{
		TeamID:      "lc-team-sub15",
		StartsAt:    startsAt,
		RepeatWeeks: 53,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for oversized series, got %v", err)
	}

	_, err = service.Create(t.Context(), memory.TenantIDLaCantera, TrainingInput{
		TeamID:   "no-such-team",
		StartsAt: startsAt,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown team, got %v", err)
	}

	// Teams from another tenant are invisible here.
	_, err = service.Create(t.Context(), memory.TenantIDLaCantera, TrainingInput{
		TeamID:   "an-team-sub15",
		StartsAt: startsAt,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for cross-tenant team, got %v", err)
	}
}

func TestTrainingService_Update_AppliesToFutureOccurrences(t *testing.T) {
	service := newTrainingService()

	startsAt := time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC)
	sessions, err := service.Create(t.Context(), memory.TenantIDLaCantera, TrainingInput{
		TeamID:          "lc-team-sub15",
		StartsAt:        startsAt,
		DurationMinutes: 90,
		Location:        "Campo 2",
		RepeatWeeks:     3,
	})
	if err != nil {
		t.Fatalf("create series failed: %v", err)
	}

	_, err = service.Update(t.Context(), memory.TenantIDLaCantera, sessions[1].ID, TrainingInput{
		TeamID:          "lc-team-sub15",
		StartsAt:        sessions[1].StartsAt,
		DurationMinutes: 60,
		Location:        "Pabellón",
	}, true)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	first, err := service.Get(t.Context(), memory.TenantIDLaCantera, sessions[0].ID)
	if err != nil {
		t.Fatalf("get first session: %v", err)
	}
	if first.Location != "Campo 2" || first.DurationMinutes != 90 {
		t.Fatalf("expected earlier occurrence untouched, got %+v", first)
	}

	for _, id := range []string{sessions[1].ID, sessions[2].ID} {
		session, err := service.Get(t.Context(), memory.TenantIDLaCantera, id)
		if err != nil {
			t.Fatalf("get session %s: %v", id, err)
		}
		if session.Location != "Pabellón" || session.DurationMinutes != 60 {
			t.Fatalf("expected cascade to %s, got %+v", id, session)
		}
	}
}

func TestTrainingService_Delete_AppliesToFutureOccurrences(t *testing.T) {
	service := newTrainingService()

	startsAt := time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC)
	sessions, err := service.Create(t.Context(), memory.TenantIDLaCantera, TrainingInput{
		TeamID:      "lc-team-sub15",
		StartsAt:    startsAt,
		RepeatWeeks: 3,
	})
	if err != nil {
		t.Fatalf("create series failed: %v", err)
	}

	if err := service.Delete(t.Context(), memory.TenantIDLaCantera, sessions[1].ID, true); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	remaining, err := service.List(t.Context(), memory.TenantIDLaCantera)
	if err != nil {
		t.Fatalf("list trainings: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != sessions[0].ID {
		t.Fatalf("expected only the first occurrence left, got %+v", remaining)
	}
}

func TestTrainingService_RecordAttendance_Upserts(t *testing.T) {
	service := newTrainingService()

	sessions, err := service.Create(t.Context(), memory.TenantIDLaCantera, TrainingInput{
		TeamID:   "lc-team-sub15",
		StartsAt: time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create training failed: %v", err)
	}
	trainingID := sessions[0].ID

	if _, err := service.RecordAttendance(t.Context(), memory.TenantIDLaCantera, trainingID, AttendanceInput{
		PlayerID: "lc-player-01",
		Present:  true,
	}); err != nil {
		t.Fatalf("record attendance failed: %v", err)
	}

	// Re-recording the same player replaces the previous mark.
	if _, err := service.RecordAttendance(t.Context(), memory.TenantIDLaCantera, trainingID, AttendanceInput{
		PlayerID: "lc-player-01",
		Present:  false,
		Remarks:  "se retiró con molestias",
	}); err != nil {
		t.Fatalf("record attendance again failed: %v", err)
	}

	marks, err := service.ListAttendance(t.Context(), memory.TenantIDLaCantera, trainingID)
	if err != nil {
		t.Fatalf("list attendance failed: %v", err)
	}
	if len(marks) != 1 {
		t.Fatalf("expected one attendance row, got %d", len(marks))
	}
	if marks[0].Present || marks[0].Remarks != "se retiró con molestias" {
		t.Fatalf("expected overwritten mark, got %+v", marks[0])
	}

	_, err = service.RecordAttendance(t.Context(), memory.TenantIDLaCantera, trainingID, AttendanceInput{
		PlayerID: "an-player-01",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for cross-tenant player, got %v", err)
	}
}
