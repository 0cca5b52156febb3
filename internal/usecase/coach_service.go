package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/canterahq/cantera/internal/domain/coach"
	idgen "github.com/canterahq/cantera/internal/platform/id"
)

type CoachInput struct {
	FullName     string
	Email        string
	Phone        string
	LicenseLevel string
}

type CoachService struct {
	coachRepo coach.Repository
	ids       idgen.Generator
	now       func() time.Time
}

func NewCoachService(coachRepo coach.Repository, ids idgen.Generator) *CoachService {
	return &CoachService{
		coachRepo: coachRepo,
		ids:       ids,
		now:       time.Now,
	}
}

func (s *CoachService) Create(ctx context.Context, tenantID string, in CoachInput) (coach.Coach, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return coach.Coach{}, fmt.Errorf("%w: tenant_id is required", ErrInvalidInput)
	}
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		return coach.Coach{}, fmt.Errorf("%w: full_name is required", ErrInvalidInput)
	}

	coachID, err := s.ids.NewID()
	if err != nil {
		return coach.Coach{}, fmt.Errorf("generate coach id: %w", err)
	}

	now := s.now().UTC()
	c := coach.Coach{
		ID:           coachID,
		TenantID:     tenantID,
		FullName:     fullName,
		Email:        normalizeEmail(in.Email),
		Phone:        strings.TrimSpace(in.Phone),
		LicenseLevel: strings.TrimSpace(in.LicenseLevel),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.coachRepo.Create(ctx, c); err != nil {
		return coach.Coach{}, fmt.Errorf("create coach: %w", err)
	}

	return c, nil
}

func (s *CoachService) Get(ctx context.Context, tenantID, coachID string) (coach.Coach, error) {
	c, exists, err := s.coachRepo.GetByID(ctx, strings.TrimSpace(tenantID), strings.TrimSpace(coachID))
	if err != nil {
		return coach.Coach{}, fmt.Errorf("get coach: %w", err)
	}
	if !exists {
		return coach.Coach{}, fmt.Errorf("%w: coach=%s", ErrNotFound, coachID)
	}

	return c, nil
}

func (s *CoachService) List(ctx context.Context, tenantID string) ([]coach.Coach, error) {
	items, err := s.coachRepo.ListByTenant(ctx, strings.TrimSpace(tenantID))
	if err != nil {
		return nil, fmt.Errorf("list coaches: %w", err)
	}

	return items, nil
}

func (s *CoachService) Update(ctx context.Context, tenantID, coachID string, in CoachInput) (coach.Coach, error) {
	existing, err := s.Get(ctx, tenantID, coachID)
	if err != nil {
		return coach.Coach{}, err
	}
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		return coach.Coach{}, fmt.Errorf("%w: full_name is required", ErrInvalidInput)
	}

	updated := existing
	updated.FullName = fullName
	updated.Email = normalizeEmail(in.Email)
	updated.Phone = strings.TrimSpace(in.Phone)
	updated.LicenseLevel = strings.TrimSpace(in.LicenseLevel)
	updated.UpdatedAt = s.now().UTC()

	found, err := s.coachRepo.Update(ctx, updated)
	if err != nil {
		return coach.Coach{}, fmt.Errorf("update coach: %w", err)
	}
	if !found {
		return coach.Coach{}, fmt.Errorf("%w: coach=%s", ErrNotFound, coachID)
	}

	return updated, nil
}

func (s *CoachService) Delete(ctx context.Context, tenantID, coachID string) error {
	deleted, err := s.coachRepo.Delete(ctx, strings.TrimSpace(tenantID), strings.TrimSpace(coachID))
	if err != nil {
		return fmt.Errorf("delete coach: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: coach=%s", ErrNotFound, coachID)
	}

	return nil
}
