package httpapi

import (
	"net/http"
	"time"

	"github.com/canterahq/cantera/internal/domain/tenant"
	"github.com/canterahq/cantera/internal/usecase"
)

type createTenantRequest struct {
	Name         string     `json:"name" validate:"required"`
	ContactEmail string     `json:"contactEmail" validate:"required,email"`
	AdminEmail   string     `json:"adminEmail" validate:"required,email"`
	FoundedOn    *time.Time `json:"foundedOn,omitempty"`
}

type updateTenantRequest struct {
	Name           string            `json:"name" validate:"required"`
	ContactEmail   string            `json:"contactEmail" validate:"required,email"`
	LogoURL        string            `json:"logoUrl,omitempty"`
	BannerURL      string            `json:"bannerUrl,omitempty"`
	PrimaryColor   string            `json:"primaryColor,omitempty"`
	SecondaryColor string            `json:"secondaryColor,omitempty"`
	SocialLinks    map[string]string `json:"socialLinks,omitempty"`
	FoundedOn      *time.Time        `json:"foundedOn,omitempty"`
}

type brandingRequest struct {
	LogoURL        string            `json:"logoUrl,omitempty"`
	BannerURL      string            `json:"bannerUrl,omitempty"`
	PrimaryColor   string            `json:"primaryColor,omitempty"`
	SecondaryColor string            `json:"secondaryColor,omitempty"`
	SocialLinks    map[string]string `json:"socialLinks,omitempty"`
}

type tenantDTO struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	ContactEmail   string            `json:"contactEmail"`
	LogoURL        string            `json:"logoUrl,omitempty"`
	BannerURL      string            `json:"bannerUrl,omitempty"`
	PrimaryColor   string            `json:"primaryColor,omitempty"`
	SecondaryColor string            `json:"secondaryColor,omitempty"`
	SocialLinks    map[string]string `json:"socialLinks,omitempty"`
	FoundedOn      *time.Time        `json:"foundedOn,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

func tenantToDTO(t tenant.Tenant) tenantDTO {
	return tenantDTO{
		ID:             t.ID,
		Name:           t.Name,
		ContactEmail:   t.ContactEmail,
		LogoURL:        t.LogoURL,
		BannerURL:      t.BannerURL,
		PrimaryColor:   t.PrimaryColor,
		SecondaryColor: t.SecondaryColor,
		SocialLinks:    t.SocialLinks,
		FoundedOn:      t.FoundedOn,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func tenantsToDTO(items []tenant.Tenant) []tenantDTO {
	out := make([]tenantDTO, 0, len(items))
	for _, t := range items {
		out = append(out, tenantToDTO(t))
	}
	return out
}

func (h *Handler) CreateTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTenant")
	defer span.End()

	var req createTenantRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.tenantService.Create(ctx, usecase.CreateTenantInput{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		AdminEmail:   req.AdminEmail,
		FoundedOn:    req.FoundedOn,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, tenantToDTO(created))
}

func (h *Handler) ListTenants(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTenants")
	defer span.End()

	items, err := h.tenantService.List(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tenantsToDTO(items))
}

func (h *Handler) GetTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTenant")
	defer span.End()

	found, err := h.tenantService.Get(ctx, r.PathValue("tenantID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tenantToDTO(found))
}

func (h *Handler) UpdateTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTenant")
	defer span.End()

	var req updateTenantRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.tenantService.Update(ctx, tenant.Tenant{
		ID:             r.PathValue("tenantID"),
		Name:           req.Name,
		ContactEmail:   req.ContactEmail,
		LogoURL:        req.LogoURL,
		BannerURL:      req.BannerURL,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		SocialLinks:    req.SocialLinks,
		FoundedOn:      req.FoundedOn,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tenantToDTO(updated))
}

func (h *Handler) DeleteTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTenant")
	defer span.End()

	if err := h.tenantService.Delete(ctx, r.PathValue("tenantID")); err != nil {
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateBranding always targets the caller's own tenant.
func (h *Handler) UpdateBranding(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateBranding")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req brandingRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.tenantService.UpdateBranding(ctx, principal.TenantID, tenant.Branding{
		LogoURL:        req.LogoURL,
		BannerURL:      req.BannerURL,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		SocialLinks:    req.SocialLinks,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tenantToDTO(updated))
}
