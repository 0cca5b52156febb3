package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/canterahq/cantera/internal/domain/convocation"
	"github.com/canterahq/cantera/internal/usecase"
)

const defaultHistoryLimit = 20

type addConvocationEntry struct {
	PlayerID     string `json:"playerId" validate:"required"`
	Position     string `json:"position,omitempty"`
	IsStarter    bool   `json:"isStarter,omitempty"`
	JerseyNumber *int   `json:"jerseyNumber,omitempty" validate:"omitempty,min=1,max=99"`
	Notes        string `json:"notes,omitempty"`
}

type addConvocationsRequest struct {
	Convocations []addConvocationEntry `json:"convocations" validate:"required,min=1,dive"`
}

type duplicateConvocationsRequest struct {
	SourceMatchID string `json:"sourceMatchId" validate:"required"`
}

type updateConvocationRequest struct {
	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=convocado confirmado ausente lesionado"`
	Position      *string `json:"position,omitempty"`
	IsStarter     *bool   `json:"isStarter,omitempty"`
	JerseyNumber  *int    `json:"jerseyNumber,omitempty" validate:"omitempty,min=1,max=99"`
	Notes         *string `json:"notes,omitempty"`
	MinutesPlayed *int    `json:"minutesPlayed,omitempty" validate:"omitempty,min=0"`
	GoalsScored   *int    `json:"goalsScored,omitempty" validate:"omitempty,min=0"`
	Assists       *int    `json:"assists,omitempty" validate:"omitempty,min=0"`
	YellowCards   *int    `json:"yellowCards,omitempty" validate:"omitempty,min=0,max=2"`
	RedCards      *int    `json:"redCards,omitempty" validate:"omitempty,min=0,max=1"`
}

type absenceRequest struct {
	Reason string `json:"reason,omitempty"`
}

type matchStatsRequest struct {
	MinutesPlayed int `json:"minutesPlayed" validate:"min=0"`
	GoalsScored   int `json:"goalsScored" validate:"min=0"`
	Assists       int `json:"assists" validate:"min=0"`
	YellowCards   int `json:"yellowCards" validate:"min=0,max=2"`
	RedCards      int `json:"redCards" validate:"min=0,max=1"`
}

type convocationDTO struct {
	ID            string    `json:"id"`
	TenantID      string    `json:"tenantId"`
	MatchID       string    `json:"matchId"`
	PlayerID      string    `json:"playerId"`
	Status        string    `json:"status"`
	IsStarter     bool      `json:"isStarter"`
	Position      string    `json:"position,omitempty"`
	JerseyNumber  *int      `json:"jerseyNumber,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	MinutesPlayed int       `json:"minutesPlayed"`
	GoalsScored   int       `json:"goalsScored"`
	Assists       int       `json:"assists"`
	YellowCards   int       `json:"yellowCards"`
	RedCards      int       `json:"redCards"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type convocationWithPlayerDTO struct {
	convocationDTO
	PlayerFirstName string `json:"playerFirstName"`
	PlayerLastName  string `json:"playerLastName"`
}

type lineupDTO struct {
	Starters    []convocationWithPlayerDTO `json:"starters"`
	Substitutes []convocationWithPlayerDTO `json:"substitutes"`
	Total       int                        `json:"total"`
}

type historyEntryDTO struct {
	Convocation convocationDTO `json:"convocation"`
	MatchDate   time.Time      `json:"matchDate"`
	KickoffTime string         `json:"kickoffTime,omitempty"`
	Venue       string         `json:"venue,omitempty"`
	Competition string         `json:"competition,omitempty"`
	HomeTeamID  string         `json:"homeTeamId"`
	AwayTeamID  string         `json:"awayTeamId,omitempty"`
}

type playerStatsDTO struct {
	TotalConvocations int     `json:"totalConvocations"`
	Confirmations     int     `json:"confirmations"`
	Absences          int     `json:"absences"`
	TotalMinutes      int     `json:"totalMinutes"`
	TotalGoals        int     `json:"totalGoals"`
	TotalAssists      int     `json:"totalAssists"`
	ConfirmationRate  float64 `json:"confirmationRate"`
}

func convocationToDTO(c convocation.Convocation) convocationDTO {
	return convocationDTO{
		ID:            c.ID,
		TenantID:      c.TenantID,
		MatchID:       c.MatchID,
		PlayerID:      c.PlayerID,
		Status:        string(c.Status),
		IsStarter:     c.IsStarter,
		Position:      c.Position,
		JerseyNumber:  c.JerseyNumber,
		Notes:         c.Notes,
		MinutesPlayed: c.MinutesPlayed,
		GoalsScored:   c.GoalsScored,
		Assists:       c.Assists,
		YellowCards:   c.YellowCards,
		RedCards:      c.RedCards,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func convocationsToDTO(items []convocation.Convocation) []convocationDTO {
	out := make([]convocationDTO, 0, len(items))
	for _, c := range items {
		out = append(out, convocationToDTO(c))
	}
	return out
}

func withPlayerToDTO(c convocation.WithPlayer) convocationWithPlayerDTO {
	return convocationWithPlayerDTO{
		convocationDTO:  convocationToDTO(c.Convocation),
		PlayerFirstName: c.PlayerFirstName,
		PlayerLastName:  c.PlayerLastName,
	}
}

func withPlayersToDTO(items []convocation.WithPlayer) []convocationWithPlayerDTO {
	out := make([]convocationWithPlayerDTO, 0, len(items))
	for _, c := range items {
		out = append(out, withPlayerToDTO(c))
	}
	return out
}

func (h *Handler) AddConvocations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddConvocations")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req addConvocationsRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	inputs := make([]usecase.AddPlayerInput, 0, len(req.Convocations))
	for _, p := range req.Convocations {
		inputs = append(inputs, usecase.AddPlayerInput{
			PlayerID:     p.PlayerID,
			Position:     p.Position,
			IsStarter:    p.IsStarter,
			JerseyNumber: p.JerseyNumber,
			Notes:        p.Notes,
		})
	}

	created, err := h.convocationService.AddPlayers(ctx, principal.TenantID, r.PathValue("matchID"), inputs)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	h.dashboardService.Invalidate(ctx, principal.TenantID)
	writeSuccess(ctx, w, http.StatusCreated, convocationsToDTO(created))
}

// DuplicateConvocations copies the roster of the source match onto the
// target match, resetting statuses and stats.
func (h *Handler) DuplicateConvocations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DuplicateConvocations")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req duplicateConvocationsRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.convocationService.DuplicateFromMatch(ctx, principal.TenantID, req.SourceMatchID, r.PathValue("matchID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	h.dashboardService.Invalidate(ctx, principal.TenantID)
	writeSuccess(ctx, w, http.StatusCreated, convocationsToDTO(created))
}

func (h *Handler) ListConvocations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListConvocations")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.convocationService.ListByMatch(ctx, principal.TenantID, r.PathValue("matchID"), r.URL.Query().Get("status"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, withPlayersToDTO(items))
}

func (h *Handler) GetLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLineup")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	lineup, err := h.convocationService.Lineup(ctx, principal.TenantID, r.PathValue("matchID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineupDTO{
		Starters:    withPlayersToDTO(lineup.Starters),
		Substitutes: withPlayersToDTO(lineup.Substitutes),
		Total:       len(lineup.Starters) + len(lineup.Substitutes),
	})
}

func (h *Handler) RemoveConvocation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveConvocation")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.convocationService.RemovePlayer(ctx, principal.TenantID, r.PathValue("matchID"), r.PathValue("playerID")); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.dashboardService.Invalidate(ctx, principal.TenantID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) UpdateConvocation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateConvocation")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateConvocationRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.convocationService.Update(ctx, principal.TenantID, r.PathValue("convocationID"), usecase.UpdateConvocationInput{
		Status:        req.Status,
		Position:      req.Position,
		IsStarter:     req.IsStarter,
		JerseyNumber:  req.JerseyNumber,
		Notes:         req.Notes,
		MinutesPlayed: req.MinutesPlayed,
		GoalsScored:   req.GoalsScored,
		Assists:       req.Assists,
		YellowCards:   req.YellowCards,
		RedCards:      req.RedCards,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	h.dashboardService.Invalidate(ctx, principal.TenantID)
	writeSuccess(ctx, w, http.StatusOK, convocationToDTO(updated))
}

func (h *Handler) ConfirmConvocation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ConfirmConvocation")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.convocationService.Confirm(ctx, principal.TenantID, r.PathValue("convocationID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	h.dashboardService.Invalidate(ctx, principal.TenantID)
	writeSuccess(ctx, w, http.StatusOK, convocationToDTO(updated))
}

func (h *Handler) MarkConvocationAbsence(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MarkConvocationAbsence")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req absenceRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.convocationService.MarkAbsent(ctx, principal.TenantID, r.PathValue("convocationID"), req.Reason)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	h.dashboardService.Invalidate(ctx, principal.TenantID)
	writeSuccess(ctx, w, http.StatusOK, convocationToDTO(updated))
}

func (h *Handler) RecordConvocationStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordConvocationStats")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req matchStatsRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.convocationService.RecordStats(ctx, principal.TenantID, r.PathValue("convocationID"), usecase.MatchStatsInput{
		MinutesPlayed: req.MinutesPlayed,
		GoalsScored:   req.GoalsScored,
		Assists:       req.Assists,
		YellowCards:   req.YellowCards,
		RedCards:      req.RedCards,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, convocationToDTO(updated))
}

func (h *Handler) GetPlayerHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerHistory")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(ctx, w, usecase.ErrInvalidInput)
			return
		}
		limit = parsed
	}

	entries, err := h.convocationService.PlayerHistory(ctx, principal.TenantID, r.PathValue("playerID"), limit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out := make([]historyEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, historyEntryDTO{
			Convocation: convocationToDTO(e.Convocation),
			MatchDate:   e.MatchDate,
			KickoffTime: e.KickoffTime,
			Venue:       e.Venue,
			Competition: e.Competition,
			HomeTeamID:  e.HomeTeamID,
			AwayTeamID:  e.AwayTeamID,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetPlayerConvocationStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerConvocationStats")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.convocationService.PlayerStats(ctx, principal.TenantID, r.PathValue("playerID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerStatsDTO{
		TotalConvocations: stats.TotalConvocations,
		Confirmations:     stats.Confirmations,
		Absences:          stats.Absences,
		TotalMinutes:      stats.TotalMinutes,
		TotalGoals:        stats.TotalGoals,
		TotalAssists:      stats.TotalAssists,
		ConfirmationRate:  stats.ConfirmationRate,
	})
}
