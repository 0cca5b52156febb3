package httpapi

import (
	"net/http"
	"time"
)

type dashboardDTO struct {
	PlayerCount      int        `json:"playerCount"`
	TeamCount        int        `json:"teamCount"`
	CoachCount       int        `json:"coachCount"`
	MatchCount       int        `json:"matchCount"`
	UpcomingMatches  []matchDTO `json:"upcomingMatches"`
	ConfirmationRate float64    `json:"confirmationRate"`
	GeneratedAt      time.Time  `json:"generatedAt"`
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.dashboardService.Summary(ctx, principal.TenantID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardDTO{
		PlayerCount:      summary.PlayerCount,
		TeamCount:        summary.TeamCount,
		CoachCount:       summary.CoachCount,
		MatchCount:       summary.MatchCount,
		UpcomingMatches:  matchesToDTO(summary.UpcomingMatches),
		ConfirmationRate: summary.ConfirmationRate,
		GeneratedAt:      summary.GeneratedAt,
	})
}
