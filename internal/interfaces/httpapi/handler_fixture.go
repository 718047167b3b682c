package httpapi

import (
	"net/http"
)

type fixturesQuery struct {
	League string `validate:"required"`
	Season int    `validate:"gt=0"`
	Limit  int    `validate:"gte=0"`
}

func (h *Handler) GetFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixtures")
	defer span.End()

	seasonYear, err := intQuery(r, "season", h.cfg.DefaultSeason)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	limit, err := intQuery(r, "limit", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	query := fixturesQuery{League: h.leagueQuery(r), Season: seasonYear, Limit: limit}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.fixtureService.ListBySeason(ctx, query.League, query.Season, query.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "get fixtures failed", "league", query.League, "season", query.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, listEnvelope{
		Success: true,
		League:  query.League,
		Season:  query.Season,
		Count:   len(rows),
		Data:    fixturesToDTO(rows),
	})
}

func (h *Handler) ListUpcomingFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUpcomingFixtures")
	defer span.End()

	limit, err := intQuery(r, "limit", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	query := fixturesQuery{League: h.leagueQuery(r), Season: h.cfg.DefaultSeason, Limit: limit}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.fixtureService.ListUpcoming(ctx, query.League, query.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list upcoming fixtures failed", "league", query.League, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, listEnvelope{
		Success: true,
		League:  query.League,
		Count:   len(rows),
		Data:    fixturesToDTO(rows),
	})
}
