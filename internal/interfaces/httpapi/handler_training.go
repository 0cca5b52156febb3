package httpapi

import (
	"net/http"
	"time"

	"github.com/canterahq/cantera/internal/domain/training"
	"github.com/canterahq/cantera/internal/usecase"
)

type trainingRequest struct {
	TeamID          string    `json:"teamId" validate:"required"`
	StartsAt        time.Time `json:"startsAt" validate:"required"`
	DurationMinutes int       `json:"durationMinutes" validate:"required,min=1"`
	Location        string    `json:"location,omitempty"`
	Focus           string    `json:"focus,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	RepeatWeeks     int       `json:"repeatWeeks,omitempty" validate:"omitempty,min=1,max=52"`
}

type attendanceRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
	Present  bool   `json:"present"`
	Remarks  string `json:"remarks,omitempty"`
}

type trainingDTO struct {
	ID              string    `json:"id"`
	TenantID        string    `json:"tenantId"`
	TeamID          string    `json:"teamId"`
	StartsAt        time.Time `json:"startsAt"`
	DurationMinutes int       `json:"durationMinutes"`
	Location        string    `json:"location,omitempty"`
	Focus           string    `json:"focus,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	SeriesID        string    `json:"seriesId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type attendanceDTO struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenantId"`
	TrainingID string    `json:"trainingId"`
	PlayerID   string    `json:"playerId"`
	Present    bool      `json:"present"`
	Remarks    string    `json:"remarks,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func trainingToDTO(t training.Training) trainingDTO {
	return trainingDTO{
		ID:              t.ID,
		TenantID:        t.TenantID,
		TeamID:          t.TeamID,
		StartsAt:        t.StartsAt,
		DurationMinutes: t.DurationMinutes,
		Location:        t.Location,
		Focus:           t.Focus,
		Notes:           t.Notes,
		SeriesID:        t.SeriesID,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func trainingsToDTO(items []training.Training) []trainingDTO {
	out := make([]trainingDTO, 0, len(items))
	for _, t := range items {
		out = append(out, trainingToDTO(t))
	}
	return out
}

func attendanceToDTO(a training.Attendance) attendanceDTO {
	return attendanceDTO{
		ID:         a.ID,
		TenantID:   a.TenantID,
		TrainingID: a.TrainingID,
		PlayerID:   a.PlayerID,
		Present:    a.Present,
		Remarks:    a.Remarks,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func (r trainingRequest) toInput() usecase.TrainingInput {
	return usecase.TrainingInput{
		TeamID:          r.TeamID,
		StartsAt:        r.StartsAt,
		DurationMinutes: r.DurationMinutes,
		Location:        r.Location,
		Focus:           r.Focus,
		Notes:           r.Notes,
		RepeatWeeks:     r.RepeatWeeks,
	}
}

func applyToFutureParam(r *http.Request) bool {
	return r.URL.Query().Get("applyToFuture") == "true"
}

// CreateTraining answers with the full set of created sessions: one for a
// single session, repeatWeeks entries for a weekly series.
func (h *Handler) CreateTraining(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTraining")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req trainingRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.trainingService.Create(ctx, principal.TenantID, req.toInput())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, trainingsToDTO(created))
}

func (h *Handler) ListTrainings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTrainings")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.trainingService.List(ctx, principal.TenantID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, trainingsToDTO(items))
}

func (h *Handler) GetTraining(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTraining")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	found, err := h.trainingService.Get(ctx, principal.TenantID, r.PathValue("trainingID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, trainingToDTO(found))
}

func (h *Handler) UpdateTraining(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTraining")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req trainingRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.trainingService.Update(ctx, principal.TenantID, r.PathValue("trainingID"), req.toInput(), applyToFutureParam(r))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, trainingToDTO(updated))
}

func (h *Handler) DeleteTraining(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTraining")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.trainingService.Delete(ctx, principal.TenantID, r.PathValue("trainingID"), applyToFutureParam(r)); err != nil {
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) RecordAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordAttendance")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req attendanceRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	recorded, err := h.trainingService.RecordAttendance(ctx, principal.TenantID, r.PathValue("trainingID"), usecase.AttendanceInput{
		PlayerID: req.PlayerID,
		Present:  req.Present,
		Remarks:  req.Remarks,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, attendanceToDTO(recorded))
}

func (h *Handler) ListAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAttendance")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.trainingService.ListAttendance(ctx, principal.TenantID, r.PathValue("trainingID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]attendanceDTO, 0, len(items))
	for _, a := range items {
		out = append(out, attendanceToDTO(a))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}
