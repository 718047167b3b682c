package httpapi

import (
	"context"
	"errors"
	"net/http"

	"football101/internal/usecase"
)

const legacyLeague = "Premier League"
const legacyFixtureLimit = 50

// The pre-/api routes predate the envelope format and are kept for old
// clients: they return bare JSON arrays on success and {"error": ...}
// bodies with a fixed message on failure.

func (h *Handler) PremierLeagueTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PremierLeagueTable")
	defer span.End()

	rows, err := h.standingService.ListCurrent(ctx, legacyLeague)
	if err != nil {
		h.logger.WarnContext(ctx, "legacy table failed", "league", legacyLeague, "error", err)
		writeLegacyError(ctx, w, err, "No standings found", "Failed to fetch standings")
		return
	}

	writeJSON(ctx, w, http.StatusOK, standingsToDTO(rows))
}

func (h *Handler) PremierLeagueFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PremierLeagueFixtures")
	defer span.End()

	rows, err := h.fixtureService.ListBySeason(ctx, legacyLeague, h.cfg.DefaultSeason, legacyFixtureLimit)
	if err != nil {
		h.logger.WarnContext(ctx, "legacy fixtures failed", "league", legacyLeague, "error", err)
		writeLegacyError(ctx, w, err, "No fixtures found", "Failed to fetch fixtures")
		return
	}

	writeJSON(ctx, w, http.StatusOK, fixturesToDTO(rows))
}

func writeLegacyError(ctx context.Context, w http.ResponseWriter, err error, notFoundMsg, failureMsg string) {
	if errors.Is(err, usecase.ErrNotFound) {
		writeJSON(ctx, w, http.StatusNotFound, map[string]string{"error": notFoundMsg})
		return
	}
	writeJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": failureMsg})
}
