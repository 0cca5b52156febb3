package httpapi

import (
	"net/http"
	"time"

	"github.com/canterahq/cantera/internal/domain/user"
	"github.com/canterahq/cantera/internal/usecase"
)

type loginRequest struct {
	TenantID string `json:"tenantId" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type superAdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	InvitationToken string `json:"invitationToken" validate:"required"`
	FullName        string `json:"fullName" validate:"required"`
	Password        string `json:"password" validate:"required,min=8"`
}

type passwordResetRequest struct {
	TenantID string `json:"tenantId" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

type passwordResetConfirmRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

type userDTO struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenantId,omitempty"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

type sessionDTO struct {
	Token string  `json:"token"`
	User  userDTO `json:"user"`
}

func userToDTO(u user.User) userDTO {
	return userDTO{
		ID:        u.ID,
		TenantID:  u.TenantID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req loginRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	u, token, err := h.authService.Login(ctx, req.TenantID, req.Email, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "login failed", "tenant_id", req.TenantID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionDTO{Token: token, User: userToDTO(u)})
}

func (h *Handler) SuperAdminLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SuperAdminLogin")
	defer span.End()

	var req superAdminLoginRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	u, token, err := h.authService.SuperAdminLogin(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "super admin login failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionDTO{Token: token, User: userToDTO(u)})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Register")
	defer span.End()

	var req registerRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	u, token, err := h.authService.Register(ctx, usecase.RegisterInput{
		InvitationToken: req.InvitationToken,
		FullName:        req.FullName,
		Password:        req.Password,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "registration failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, sessionDTO{Token: token, User: userToDTO(u)})
}

// RequestPasswordReset always answers 202 so callers cannot probe which
// email addresses exist.
func (h *Handler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RequestPasswordReset")
	defer span.End()

	var req passwordResetRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.authService.RequestPasswordReset(ctx, req.TenantID, req.Email); err != nil {
		h.logger.ErrorContext(ctx, "password reset request failed", "tenant_id", req.TenantID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResetPassword")
	defer span.End()

	var req passwordResetConfirmRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.authService.ResetPassword(ctx, req.Token, req.NewPassword); err != nil {
		h.logger.WarnContext(ctx, "password reset failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
