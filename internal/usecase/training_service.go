package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/canterahq/cantera/internal/domain/player"
	"github.com/canterahq/cantera/internal/domain/team"
	"github.com/canterahq/cantera/internal/domain/training"
	idgen "github.com/canterahq/cantera/internal/platform/id"
)

const maxSeriesOccurrences = 52

type TrainingInput struct {
	TeamID          string
	StartsAt        time.Time
	DurationMinutes int
	Location        string
	Focus           string
	Notes           string
	// RepeatWeeks > 1 creates a weekly series of that many sessions
	// sharing one series id.
	RepeatWeeks int
}

type AttendanceInput struct {
	PlayerID string
	Present  bool
	Remarks  string
}

type TrainingService struct {
	trainingRepo training.Repository
	teamRepo     team.Repository
	playerRepo   player.Repository
	ids          idgen.Generator
	now          func() time.Time
}

func NewTrainingService(trainingRepo training.Repository, teamRepo team.Repository, playerRepo player.Repository, ids idgen.Generator) *TrainingService {
	return &TrainingService{
		trainingRepo: trainingRepo,
		teamRepo:     teamRepo,
		playerRepo:   playerRepo,
		ids:          ids,
		now:          time.Now,
	}
}

// Create schedules one session, or a weekly series when RepeatWeeks > 1.
// A series is written in a single repository call so a failed occurrence
// never leaves a partial series behind.
func (s *TrainingService) Create(ctx context.Context, tenantID string, in TrainingInput) ([]training.Training, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenant_id is required", ErrInvalidInput)
	}
	if in.RepeatWeeks > maxSeriesOccurrences {
		return nil, fmt.Errorf("%w: a series cannot exceed %d occurrences", ErrInvalidInput, maxSeriesOccurrences)
	}
	teamID := strings.TrimSpace(in.TeamID)
	if _, exists, err := s.teamRepo.GetByID(ctx, tenantID, teamID); err != nil {
		return nil, fmt.Errorf("get team by id: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	occurrences := in.RepeatWeeks
	if occurrences < 1 {
		occurrences = 1
	}

	seriesID := ""
	if occurrences > 1 {
		var err error
		seriesID, err = s.ids.NewID()
		if err != nil {
			return nil, fmt.Errorf("generate series id: %w", err)
		}
	}

	now := s.now().UTC()
	sessions := make([]training.Training, 0, occurrences)
	for i := 0; i < occurrences; i++ {
		sessionID, err := s.ids.NewID()
		if err != nil {
			return nil, fmt.Errorf("generate training id: %w", err)
		}

		t := training.Training{
			ID:              sessionID,
			TenantID:        tenantID,
			TeamID:          teamID,
			StartsAt:        in.StartsAt.AddDate(0, 0, 7*i),
			DurationMinutes: in.DurationMinutes,
			Location:        strings.TrimSpace(in.Location),
			Focus:           strings.TrimSpace(in.Focus),
			Notes:           strings.TrimSpace(in.Notes),
			SeriesID:        seriesID,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		sessions = append(sessions, t)
	}

	if len(sessions) == 1 {
		if err := s.trainingRepo.Create(ctx, sessions[0]); err != nil {
			return nil, fmt.Errorf("create training: %w", err)
		}
		return sessions, nil
	}

	if err := s.trainingRepo.CreateSeries(ctx, sessions); err != nil {
		return nil, fmt.Errorf("create training series: %w", err)
	}

	return sessions, nil
}

func (s *TrainingService) Get(ctx context.Context, tenantID, trainingID string) (training.Training, error) {
	t, exists, err := s.trainingRepo.GetByID(ctx, strings.TrimSpace(tenantID), strings.TrimSpace(trainingID))
	if err != nil {
		return training.Training{}, fmt.Errorf("get training: %w", err)
	}
	if !exists {
		return training.Training{}, fmt.Errorf("%w: training=%s", ErrNotFound, trainingID)
	}

	return t, nil
}

func (s *TrainingService) List(ctx context.Context, tenantID string) ([]training.Training, error) {
	items, err := s.trainingRepo.ListByTenant(ctx, strings.TrimSpace(tenantID))
	if err != nil {
		return nil, fmt.Errorf("list trainings: %w", err)
	}

	return items, nil
}

// Update modifies one session. With applyToFuture the change cascades to
// later sessions of the same series; the session's own start time moves
// and later occurrences keep their weekly offsets.
func (s *TrainingService) Update(ctx context.Context, tenantID, trainingID string, in TrainingInput, applyToFuture bool) (training.Training, error) {
	existing, err := s.Get(ctx, tenantID, trainingID)
	if err != nil {
		return training.Training{}, err
	}

	updated := existing
	updated.TeamID = strings.TrimSpace(in.TeamID)
	updated.StartsAt = in.StartsAt
	updated.DurationMinutes = in.DurationMinutes
	updated.Location = strings.TrimSpace(in.Location)
	updated.Focus = strings.TrimSpace(in.Focus)
	updated.Notes = strings.TrimSpace(in.Notes)
	updated.UpdatedAt = s.now().UTC()
	if err := updated.Validate(); err != nil {
		return training.Training{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if applyToFuture && existing.SeriesID == "" {
		applyToFuture = false
	}

	found, err := s.trainingRepo.Update(ctx, updated, applyToFuture)
	if err != nil {
		return training.Training{}, fmt.Errorf("update training: %w", err)
	}
	if !found {
		return training.Training{}, fmt.Errorf("%w: training=%s", ErrNotFound, trainingID)
	}

	return updated, nil
}

func (s *TrainingService) Delete(ctx context.Context, tenantID, trainingID string, applyToFuture bool) error {
	deleted, err := s.trainingRepo.Delete(ctx, strings.TrimSpace(tenantID), strings.TrimSpace(trainingID), applyToFuture)
	if err != nil {
		return fmt.Errorf("delete training: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: training=%s", ErrNotFound, trainingID)
	}

	return nil
}

// RecordAttendance upserts one player's attendance for a session.
// Re-recording the same player overwrites the previous mark.
func (s *TrainingService) RecordAttendance(ctx context.Context, tenantID, trainingID string, in AttendanceInput) (training.Attendance, error) {
	session, err := s.Get(ctx, tenantID, trainingID)
	if err != nil {
		return training.Attendance{}, err
	}

	playerID := strings.TrimSpace(in.PlayerID)
	if _, exists, err := s.playerRepo.GetByID(ctx, session.TenantID, playerID); err != nil {
		return training.Attendance{}, fmt.Errorf("get player by id: %w", err)
	} else if !exists {
		return training.Attendance{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	attendanceID, err := s.ids.NewID()
	if err != nil {
		return training.Attendance{}, fmt.Errorf("generate attendance id: %w", err)
	}

	now := s.now().UTC()
	a := training.Attendance{
		ID:         attendanceID,
		TenantID:   session.TenantID,
		TrainingID: session.ID,
		PlayerID:   playerID,
		Present:    in.Present,
		Remarks:    strings.TrimSpace(in.Remarks),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.trainingRepo.UpsertAttendance(ctx, a); err != nil {
		return training.Attendance{}, fmt.Errorf("upsert attendance: %w", err)
	}

	return a, nil
}

func (s *TrainingService) ListAttendance(ctx context.Context, tenantID, trainingID string) ([]training.Attendance, error) {
	if _, err := s.Get(ctx, tenantID, trainingID); err != nil {
		return nil, err
	}

	items, err := s.trainingRepo.ListAttendance(ctx, strings.TrimSpace(tenantID), strings.TrimSpace(trainingID))
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}

	return items, nil
}
