package httpapi

import (
	"net/http"
)

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	leagueName := h.leagueQuery(r)

	items, err := h.seasonService.List(ctx, leagueName)
	if err != nil {
		h.logger.WarnContext(ctx, "list seasons failed", "league", leagueName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, listEnvelope{
		Success: true,
		Count:   len(items),
		Data:    seasonsToDTO(items),
	})
}
