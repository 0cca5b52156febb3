package httpapi

import (
	"net/http"
	"time"

	"github.com/canterahq/cantera/internal/domain/coach"
	"github.com/canterahq/cantera/internal/usecase"
)

type coachRequest struct {
	FullName     string `json:"fullName" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone,omitempty"`
	LicenseLevel string `json:"licenseLevel,omitempty"`
}

type coachDTO struct {
	ID           string    `json:"id"`
	TenantID     string    `json:"tenantId"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	LicenseLevel string    `json:"licenseLevel,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func coachToDTO(c coach.Coach) coachDTO {
	return coachDTO{
		ID:           c.ID,
		TenantID:     c.TenantID,
		FullName:     c.FullName,
		Email:        c.Email,
		Phone:        c.Phone,
		LicenseLevel: c.LicenseLevel,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (r coachRequest) toInput() usecase.CoachInput {
	return usecase.CoachInput{
		FullName:     r.FullName,
		Email:        r.Email,
		Phone:        r.Phone,
		LicenseLevel: r.LicenseLevel,
	}
}

func (h *Handler) CreateCoach(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateCoach")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req coachRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.coachService.Create(ctx, principal.TenantID, req.toInput())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	h.dashboardService.Invalidate(ctx, principal.TenantID)
	writeSuccess(ctx, w, http.StatusCreated, coachToDTO(created))
}

func (h *Handler) ListCoaches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCoaches")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.coachService.List(ctx, principal.TenantID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]coachDTO, 0, len(items))
	for _, c := range items {
		out = append(out, coachToDTO(c))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetCoach(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCoach")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	found, err := h.coachService.Get(ctx, principal.TenantID, r.PathValue("coachID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, coachToDTO(found))
}

func (h *Handler) UpdateCoach(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateCoach")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req coachRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.coachService.Update(ctx, principal.TenantID, r.PathValue("coachID"), req.toInput())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, coachToDTO(updated))
}

func (h *Handler) DeleteCoach(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteCoach")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.coachService.Delete(ctx, principal.TenantID, r.PathValue("coachID")); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.dashboardService.Invalidate(ctx, principal.TenantID)
	w.WriteHeader(http.StatusNoContent)
}
