package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/canterahq/cantera/internal/domain/training"
)

type TrainingRepository struct {
	mu         sync.RWMutex
	items      map[string]training.Training
	orders     []string
	attendance map[string]training.Attendance
	attOrders  []string
}

func NewTrainingRepository() *TrainingRepository {
	return &TrainingRepository{
		items:      make(map[string]training.Training),
		attendance: make(map[string]training.Attendance),
	}
}

func (r *TrainingRepository) Create(_ context.Context, t training.Training) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[t.ID] = t
	r.orders = append(r.orders, t.ID)
	return nil
}

func (r *TrainingRepository) CreateSeries(_ context.Context, sessions []training.Training) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range sessions {
		r.items[t.ID] = t
		r.orders = append(r.orders, t.ID)
	}
	return nil
}

func (r *TrainingRepository) GetByID(_ context.Context, tenantID, id string) (training.Training, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[id]
	if !ok || t.TenantID != tenantID {
		return training.Training{}, false, nil
	}

	return t, true, nil
}

func (r *TrainingRepository) ListByTenant(_ context.Context, tenantID string) ([]training.Training, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]training.Training, 0)
	for _, id := range r.orders {
		if t := r.items[id]; t.TenantID == tenantID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartsAt.Before(out[j].StartsAt)
	})

	return out, nil
}

func (r *TrainingRepository) Update(_ context.Context, t training.Training, applyToFuture bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[t.ID]
	if !ok || existing.TenantID != t.TenantID {
		return false, nil
	}

	t.SeriesID = existing.SeriesID
	r.items[t.ID] = t

	if applyToFuture && existing.SeriesID != "" {
		for _, id := range r.orders {
			other := r.items[id]
			if other.ID == t.ID || other.TenantID != t.TenantID {
				continue
			}
			if other.SeriesID != existing.SeriesID || !other.StartsAt.After(existing.StartsAt) {
				continue
			}
			other.TeamID = t.TeamID
			other.DurationMinutes = t.DurationMinutes
			other.Location = t.Location
			other.Focus = t.Focus
			other.Notes = t.Notes
			r.items[id] = other
		}
	}

	return true, nil
}

func (r *TrainingRepository) Delete(_ context.Context, tenantID, id string, applyToFuture bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[id]
	if !ok || existing.TenantID != tenantID {
		return false, nil
	}

	remove := map[string]struct{}{id: {}}
	if applyToFuture && existing.SeriesID != "" {
		for _, oid := range r.orders {
			other := r.items[oid]
			if other.TenantID == tenantID && other.SeriesID == existing.SeriesID && !other.StartsAt.Before(existing.StartsAt) {
				remove[oid] = struct{}{}
			}
		}
	}

	kept := r.orders[:0]
	for _, oid := range r.orders {
		if _, gone := remove[oid]; gone {
			delete(r.items, oid)
			continue
		}
		kept = append(kept, oid)
	}
	r.orders = kept
	return true, nil
}

func (r *TrainingRepository) UpsertAttendance(_ context.Context, a training.Attendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := a.TrainingID + "/" + a.PlayerID
	if existing, ok := r.attendance[key]; ok {
		existing.Present = a.Present
		existing.Remarks = a.Remarks
		existing.UpdatedAt = a.UpdatedAt
		r.attendance[key] = existing
		return nil
	}

	r.attendance[key] = a
	r.attOrders = append(r.attOrders, key)
	return nil
}

func (r *TrainingRepository) ListAttendance(_ context.Context, tenantID, trainingID string) ([]training.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]training.Attendance, 0)
	for _, key := range r.attOrders {
		a := r.attendance[key]
		if a.TenantID == tenantID && a.TrainingID == trainingID {
			out = append(out, a)
		}
	}

	return out, nil
}

var _ training.Repository = (*TrainingRepository)(nil)
