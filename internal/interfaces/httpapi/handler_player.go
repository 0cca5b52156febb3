package httpapi

import (
	"net/http"
	"time"

	"github.com/canterahq/cantera/internal/domain/player"
	"github.com/canterahq/cantera/internal/usecase"
)

type playerRequest struct {
	FirstName     string     `json:"firstName" validate:"required"`
	LastName      string     `json:"lastName" validate:"required"`
	NationalID    string     `json:"nationalId,omitempty"`
	BirthDate     *time.Time `json:"birthDate,omitempty"`
	PhotoURL      string     `json:"photoUrl,omitempty"`
	IDDocumentURL string     `json:"idDocumentUrl,omitempty"`
	TeamIDs       []string   `json:"teamIds,omitempty"`
}

type playerDTO struct {
	ID            string     `json:"id"`
	TenantID      string     `json:"tenantId"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	NationalID    string     `json:"nationalId,omitempty"`
	BirthDate     *time.Time `json:"birthDate,omitempty"`
	PhotoURL      string     `json:"photoUrl,omitempty"`
	IDDocumentURL string     `json:"idDocumentUrl,omitempty"`
	TeamIDs       []string   `json:"teamIds"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func playerToDTO(p player.Player) playerDTO {
	teamIDs := p.TeamIDs
	if teamIDs == nil {
		teamIDs = []string{}
	}
	return playerDTO{
		ID:            p.ID,
		TenantID:      p.TenantID,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		NationalID:    p.NationalID,
		BirthDate:     p.BirthDate,
		PhotoURL:      p.PhotoURL,
		IDDocumentURL: p.IDDocumentURL,
		TeamIDs:       teamIDs,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func playersToDTO(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, p := range items {
		out = append(out, playerToDTO(p))
	}
	return out
}

func (r playerRequest) toInput() usecase.PlayerInput {
	return usecase.PlayerInput{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		NationalID:    r.NationalID,
		BirthDate:     r.BirthDate,
		PhotoURL:      r.PhotoURL,
		IDDocumentURL: r.IDDocumentURL,
		TeamIDs:       r.TeamIDs,
	}
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req playerRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.playerService.Create(ctx, principal.TenantID, req.toInput())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	h.dashboardService.Invalidate(ctx, principal.TenantID)
	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(created))
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.playerService.List(ctx, principal.TenantID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(items))
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	found, err := h.playerService.Get(ctx, principal.TenantID, r.PathValue("playerID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(found))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req playerRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.playerService.Update(ctx, principal.TenantID, r.PathValue("playerID"), req.toInput())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.playerService.Delete(ctx, principal.TenantID, r.PathValue("playerID")); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.dashboardService.Invalidate(ctx, principal.TenantID)
	w.WriteHeader(http.StatusNoContent)
}
