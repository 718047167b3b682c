package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"football101/internal/usecase"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	// No default here: an absent league filter lists every stored team.
	leagueName := strings.TrimSpace(r.URL.Query().Get("league"))

	items, err := h.teamService.List(ctx, leagueName)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "league", leagueName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, listEnvelope{
		Success: true,
		Count:   len(items),
		Data:    teamsToDTO(items),
	})
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID, err := strconv.ParseInt(strings.TrimSpace(r.PathValue("teamID")), 10, 64)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: team id must be an integer", usecase.ErrInvalidInput))
		return
	}

	item, err := h.teamService.GetByID(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, itemEnvelope{
		Success: true,
		Data:    teamToDTO(item),
	})
}
