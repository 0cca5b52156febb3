package httpapi

import (
	"net/http"
	"time"

	"github.com/canterahq/cantera/internal/domain/match"
	"github.com/canterahq/cantera/internal/usecase"
)

type matchRequest struct {
	HomeTeamID      string    `json:"homeTeamId" validate:"required"`
	AwayTeamID      string    `json:"awayTeamId,omitempty"`
	MatchDate       time.Time `json:"matchDate" validate:"required"`
	KickoffTime     string    `json:"kickoffTime,omitempty"`
	Venue           string    `json:"venue,omitempty"`
	Competition     string    `json:"competition,omitempty"`
	Type            string    `json:"type" validate:"required,oneof=friendly league cup tournament"`
	Status          string    `json:"status" validate:"omitempty,oneof=scheduled confirmed in_progress completed cancelled postponed"`
	HomeScore       *int      `json:"homeScore,omitempty" validate:"omitempty,min=0"`
	AwayScore       *int      `json:"awayScore,omitempty" validate:"omitempty,min=0"`
	Referee         string    `json:"referee,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	DurationMinutes int       `json:"durationMinutes,omitempty" validate:"omitempty,min=0"`
}

type matchDTO struct {
	ID              string    `json:"id"`
	TenantID        string    `json:"tenantId"`
	HomeTeamID      string    `json:"homeTeamId"`
	AwayTeamID      string    `json:"awayTeamId,omitempty"`
	MatchDate       time.Time `json:"matchDate"`
	KickoffTime     string    `json:"kickoffTime,omitempty"`
	Venue           string    `json:"venue,omitempty"`
	Competition     string    `json:"competition,omitempty"`
	Type            string    `json:"type"`
	Status          string    `json:"status"`
	HomeScore       *int      `json:"homeScore,omitempty"`
	AwayScore       *int      `json:"awayScore,omitempty"`
	Referee         string    `json:"referee,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	DurationMinutes int       `json:"durationMinutes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:              m.ID,
		TenantID:        m.TenantID,
		HomeTeamID:      m.HomeTeamID,
		AwayTeamID:      m.AwayTeamID,
		MatchDate:       m.MatchDate,
		KickoffTime:     m.KickoffTime,
		Venue:           m.Venue,
		Competition:     m.Competition,
		Type:            string(m.Type),
		Status:          string(m.Status),
		HomeScore:       m.HomeScore,
		AwayScore:       m.AwayScore,
		Referee:         m.Referee,
		Notes:           m.Notes,
		DurationMinutes: m.DurationMinutes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func matchesToDTO(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, m := range items {
		out = append(out, matchToDTO(m))
	}
	return out
}

func (r matchRequest) toInput() usecase.MatchInput {
	return usecase.MatchInput{
		HomeTeamID:      r.HomeTeamID,
		AwayTeamID:      r.AwayTeamID,
		MatchDate:       r.MatchDate,
		KickoffTime:     r.KickoffTime,
		Venue:           r.Venue,
		Competition:     r.Competition,
		Type:            r.Type,
		Status:          r.Status,
		HomeScore:       r.HomeScore,
		AwayScore:       r.AwayScore,
		Referee:         r.Referee,
		Notes:           r.Notes,
		DurationMinutes: r.DurationMinutes,
	}
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req matchRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.matchService.Create(ctx, principal.TenantID, req.toInput())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	h.dashboardService.Invalidate(ctx, principal.TenantID)
	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(created))
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.matchService.List(ctx, principal.TenantID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(items))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	found, err := h.matchService.Get(ctx, principal.TenantID, r.PathValue("matchID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(found))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req matchRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.matchService.Update(ctx, principal.TenantID, r.PathValue("matchID"), req.toInput())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	h.dashboardService.Invalidate(ctx, principal.TenantID)
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(updated))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.matchService.Delete(ctx, principal.TenantID, r.PathValue("matchID")); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.dashboardService.Invalidate(ctx, principal.TenantID)
	w.WriteHeader(http.StatusNoContent)
}
