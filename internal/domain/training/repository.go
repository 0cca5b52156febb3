package training

import "context"

// Repository exposes training persistence operations, all tenant-scoped.
// The applyToFuture variants cascade over later occurrences sharing the
// same series id; they are simple cascades, not a recurrence-rule engine.
type Repository interface {
	Create(ctx context.Context, t Training) error
	CreateSeries(ctx context.Context, sessions []Training) error
	GetByID(ctx context.Context, tenantID, id string) (Training, bool, error)
	ListByTenant(ctx context.Context, tenantID string) ([]Training, error)
	Update(ctx context.Context, t Training, applyToFuture bool) (bool, error)
	Delete(ctx context.Context, tenantID, id string, applyToFuture bool) (bool, error)

	UpsertAttendance(ctx context.Context, a Attendance) error
	ListAttendance(ctx context.Context, tenantID, trainingID string) ([]Attendance, error)
}
