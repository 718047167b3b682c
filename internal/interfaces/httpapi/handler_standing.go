package httpapi

import (
	"net/http"
)

type standingsQuery struct {
	League string `validate:"required"`
	Season int    `validate:"gt=0"`
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	seasonYear, err := intQuery(r, "season", h.cfg.DefaultSeason)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	query := standingsQuery{League: h.leagueQuery(r), Season: seasonYear}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.standingService.ListBySeason(ctx, query.League, query.Season)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "league", query.League, "season", query.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, listEnvelope{
		Success: true,
		League:  query.League,
		Season:  query.Season,
		Count:   len(rows),
		Data:    standingsToDTO(rows),
	})
}
