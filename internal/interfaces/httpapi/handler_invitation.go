package httpapi

import (
	"net/http"
	"time"

	"github.com/canterahq/cantera/internal/domain/auth"
	"github.com/canterahq/cantera/internal/domain/invitation"
)

type createInvitationRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=admin staff"`
}

// invitationDTO omits the token on listings; it only travels in the
// invitation email and in the creation response.
type invitationDTO struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenantId"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
	Accepted  bool      `json:"accepted"`
	CreatedAt time.Time `json:"createdAt"`
}

func invitationToDTO(inv invitation.Invitation, includeToken bool) invitationDTO {
	dto := invitationDTO{
		ID:        inv.ID,
		TenantID:  inv.TenantID,
		Email:     inv.Email,
		Role:      string(inv.Role),
		ExpiresAt: inv.ExpiresAt,
		Accepted:  inv.Accepted,
		CreatedAt: inv.CreatedAt,
	}
	if includeToken {
		dto.Token = inv.Token
	}
	return dto
}

func (h *Handler) CreateInvitation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateInvitation")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createInvitationRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.invitationService.Create(ctx, principal.TenantID, req.Email, auth.Role(req.Role))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, invitationToDTO(created, true))
}

func (h *Handler) ListInvitations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListInvitations")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.invitationService.ListByTenant(ctx, principal.TenantID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]invitationDTO, 0, len(items))
	for _, inv := range items {
		out = append(out, invitationToDTO(inv, false))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) DeleteInvitation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteInvitation")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.invitationService.Delete(ctx, principal.TenantID, r.PathValue("invitationID")); err != nil {
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
