package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /{$}", handler.Root)
}

func registerAPIRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /api/standings", handler.GetStandings)
	mux.HandleFunc("GET /api/fixtures", handler.GetFixtures)
	mux.HandleFunc("GET /api/fixtures/upcoming", handler.ListUpcomingFixtures)
	mux.HandleFunc("GET /api/teams", handler.ListTeams)
	mux.HandleFunc("GET /api/teams/{teamID}", handler.GetTeam)
}

func registerLegacyRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /premier-league/table", handler.PremierLeagueTable)
	mux.HandleFunc("GET /premier-league/fixtures", handler.PremierLeagueFixtures)
}
