package httpapi

import (
	"net/http"
	"time"

	"github.com/canterahq/cantera/internal/domain/physicaltest"
	"github.com/canterahq/cantera/internal/usecase"
)

type physicalTestRequest struct {
	TestedOn       time.Time `json:"testedOn" validate:"required"`
	Evaluator      string    `json:"evaluator,omitempty"`
	HeightCM       float64   `json:"heightCm,omitempty" validate:"omitempty,min=0"`
	WeightKG       float64   `json:"weightKg,omitempty" validate:"omitempty,min=0"`
	Sprint30mS     float64   `json:"sprint30mS,omitempty" validate:"omitempty,min=0"`
	AgilityS       float64   `json:"agilityS,omitempty" validate:"omitempty,min=0"`
	EnduranceLevel int       `json:"enduranceLevel,omitempty" validate:"omitempty,min=0"`
	StrengthScore  float64   `json:"strengthScore,omitempty" validate:"omitempty,min=0,max=10"`
	TechnicalScore float64   `json:"technicalScore,omitempty" validate:"omitempty,min=0,max=10"`
	Observations   string    `json:"observations,omitempty"`
}

type physicalTestDTO struct {
	ID             string    `json:"id"`
	TenantID       string    `json:"tenantId"`
	PlayerID       string    `json:"playerId"`
	TestedOn       time.Time `json:"testedOn"`
	Evaluator      string    `json:"evaluator,omitempty"`
	HeightCM       float64   `json:"heightCm,omitempty"`
	WeightKG       float64   `json:"weightKg,omitempty"`
	Sprint30mS     float64   `json:"sprint30mS,omitempty"`
	AgilityS       float64   `json:"agilityS,omitempty"`
	EnduranceLevel int       `json:"enduranceLevel,omitempty"`
	StrengthScore  float64   `json:"strengthScore,omitempty"`
	TechnicalScore float64   `json:"technicalScore,omitempty"`
	Observations   string    `json:"observations,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func physicalTestToDTO(t physicaltest.PhysicalTest) physicalTestDTO {
	return physicalTestDTO{
		ID:             t.ID,
		TenantID:       t.TenantID,
		PlayerID:       t.PlayerID,
		TestedOn:       t.TestedOn,
		Evaluator:      t.Evaluator,
		HeightCM:       t.HeightCM,
		WeightKG:       t.WeightKG,
		Sprint30mS:     t.Sprint30mS,
		AgilityS:       t.AgilityS,
		EnduranceLevel: t.EnduranceLevel,
		StrengthScore:  t.StrengthScore,
		TechnicalScore: t.TechnicalScore,
		Observations:   t.Observations,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func (r physicalTestRequest) toInput(playerID string) usecase.PhysicalTestInput {
	return usecase.PhysicalTestInput{
		PlayerID:       playerID,
		TestedOn:       r.TestedOn,
		Evaluator:      r.Evaluator,
		HeightCM:       r.HeightCM,
		WeightKG:       r.WeightKG,
		Sprint30mS:     r.Sprint30mS,
		AgilityS:       r.AgilityS,
		EnduranceLevel: r.EnduranceLevel,
		StrengthScore:  r.StrengthScore,
		TechnicalScore: r.TechnicalScore,
		Observations:   r.Observations,
	}
}

func (h *Handler) CreatePhysicalTest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePhysicalTest")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req physicalTestRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.physicalTestService.Create(ctx, principal.TenantID, req.toInput(r.PathValue("playerID")))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, physicalTestToDTO(created))
}

func (h *Handler) ListPhysicalTests(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPhysicalTests")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.physicalTestService.ListByPlayer(ctx, principal.TenantID, r.PathValue("playerID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]physicalTestDTO, 0, len(items))
	for _, t := range items {
		out = append(out, physicalTestToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

// UpdatePhysicalTest keeps the test bound to its original player; the
// service ignores any attempt to move it.
func (h *Handler) UpdatePhysicalTest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePhysicalTest")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req physicalTestRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.physicalTestService.Update(ctx, principal.TenantID, r.PathValue("testID"), req.toInput(""))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, physicalTestToDTO(updated))
}

func (h *Handler) DeletePhysicalTest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePhysicalTest")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.physicalTestService.Delete(ctx, principal.TenantID, r.PathValue("testID")); err != nil {
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
