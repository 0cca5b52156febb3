package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/canterahq/cantera/internal/domain/physicaltest"
	"github.com/canterahq/cantera/internal/domain/player"
	idgen "github.com/canterahq/cantera/internal/platform/id"
)

type PhysicalTestInput struct {
	PlayerID       string
	TestedOn       time.Time
	Evaluator      string
	HeightCM       float64
	WeightKG       float64
	Sprint30mS     float64
	AgilityS       float64
	EnduranceLevel int
	StrengthScore  float64
	TechnicalScore float64
	Observations   string
}

type PhysicalTestService struct {
	testRepo   physicaltest.Repository
	playerRepo player.Repository
	ids        idgen.Generator
	now        func() time.Time
}

func NewPhysicalTestService(testRepo physicaltest.Repository, playerRepo player.Repository, ids idgen.Generator) *PhysicalTestService {
	return &PhysicalTestService{
		testRepo:   testRepo,
		playerRepo: playerRepo,
		ids:        ids,
		now:        time.Now,
	}
}

func (s *PhysicalTestService) Create(ctx context.Context, tenantID string, in PhysicalTestInput) (physicaltest.PhysicalTest, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return physicaltest.PhysicalTest{}, fmt.Errorf("%w: tenant_id is required", ErrInvalidInput)
	}
	playerID := strings.TrimSpace(in.PlayerID)
	if _, exists, err := s.playerRepo.GetByID(ctx, tenantID, playerID); err != nil {
		return physicaltest.PhysicalTest{}, fmt.Errorf("get player by id: %w", err)
	} else if !exists {
		return physicaltest.PhysicalTest{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	testID, err := s.ids.NewID()
	if err != nil {
		return physicaltest.PhysicalTest{}, fmt.Errorf("generate physical test id: %w", err)
	}

	now := s.now().UTC()
	t := s.fromInput(in)
	t.ID = testID
	t.TenantID = tenantID
	t.PlayerID = playerID
	t.CreatedAt = now
	t.UpdatedAt = now
	if err := t.Validate(); err != nil {
		return physicaltest.PhysicalTest{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.testRepo.Create(ctx, t); err != nil {
		return physicaltest.PhysicalTest{}, fmt.Errorf("create physical test: %w", err)
	}

	return t, nil
}

func (s *PhysicalTestService) Get(ctx context.Context, tenantID, testID string) (physicaltest.PhysicalTest, error) {
	t, exists, err := s.testRepo.GetByID(ctx, strings.TrimSpace(tenantID), strings.TrimSpace(testID))
	if err != nil {
		return physicaltest.PhysicalTest{}, fmt.Errorf("get physical test: %w", err)
	}
	if !exists {
		return physicaltest.PhysicalTest{}, fmt.Errorf("%w: physical_test=%s", ErrNotFound, testID)
	}

	return t, nil
}

func (s *PhysicalTestService) ListByPlayer(ctx context.Context, tenantID, playerID string) ([]physicaltest.PhysicalTest, error) {
	items, err := s.testRepo.ListByPlayer(ctx, strings.TrimSpace(tenantID), strings.TrimSpace(playerID))
	if err != nil {
		return nil, fmt.Errorf("list physical tests: %w", err)
	}

	return items, nil
}

func (s *PhysicalTestService) Update(ctx context.Context, tenantID, testID string, in PhysicalTestInput) (physicaltest.PhysicalTest, error) {
	existing, err := s.Get(ctx, tenantID, testID)
	if err != nil {
		return physicaltest.PhysicalTest{}, err
	}

	updated := s.fromInput(in)
	updated.ID = existing.ID
	updated.TenantID = existing.TenantID
	updated.PlayerID = existing.PlayerID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = s.now().UTC()
	if err := updated.Validate(); err != nil {
		return physicaltest.PhysicalTest{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	found, err := s.testRepo.Update(ctx, updated)
	if err != nil {
		return physicaltest.PhysicalTest{}, fmt.Errorf("update physical test: %w", err)
	}
	if !found {
		return physicaltest.PhysicalTest{}, fmt.Errorf("%w: physical_test=%s", ErrNotFound, testID)
	}

	return updated, nil
}

func (s *PhysicalTestService) Delete(ctx context.Context, tenantID, testID string) error {
	deleted, err := s.testRepo.Delete(ctx, strings.TrimSpace(tenantID), strings.TrimSpace(testID))
	if err != nil {
		return fmt.Errorf("delete physical test: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: physical_test=%s", ErrNotFound, testID)
	}

	return nil
}

func (s *PhysicalTestService) fromInput(in PhysicalTestInput) physicaltest.PhysicalTest {
	return physicaltest.PhysicalTest{
		TestedOn:       in.TestedOn,
		Evaluator:      strings.TrimSpace(in.Evaluator),
		HeightCM:       in.HeightCM,
		WeightKG:       in.WeightKG,
		Sprint30mS:     in.Sprint30mS,
		AgilityS:       in.AgilityS,
		EnduranceLevel: in.EnduranceLevel,
		StrengthScore:  in.StrengthScore,
		TechnicalScore: in.TechnicalScore,
		Observations:   strings.TrimSpace(in.Observations),
	}
}
