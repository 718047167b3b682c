package app

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"unicode"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"football101/external/apifootball"
	"football101/internal/config"
	"football101/internal/domain/fixture"
	"football101/internal/domain/season"
	"football101/internal/domain/standing"
	"football101/internal/domain/team"
	cacherepo "football101/internal/infrastructure/repository/cache"
	"football101/internal/infrastructure/repository/postgres"
	"football101/internal/interfaces/httpapi"
	basecache "football101/internal/platform/cache"
	"football101/internal/platform/logging"
	"football101/internal/usecase"
)

// NewHTTPServer wires the read API for the configured data source. The
// returned cleanup closes the database pool when one was opened.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		seasonSvc   httpapi.SeasonService
		standingSvc httpapi.StandingService
		fixtureSvc  httpapi.FixtureService
		teamSvc     httpapi.TeamService
		cleanup     = func() {}
	)

	switch cfg.DataSource {
	case config.DataSourceRemote:
		client := NewFeedClient(cfg, logger)
		remoteCfg := usecase.RemoteConfig{
			LeagueIDByName: cfg.LeagueIDByName,
			DefaultSeason:  cfg.DefaultSeason,
			FixtureCount:   cfg.PopulateFixtureCount,
		}
		remoteStandings := usecase.NewRemoteStandingService(client, remoteCfg)
		seasonSvc = usecase.NewRemoteSeasonService(client, remoteCfg)
		standingSvc = remoteStandings
		fixtureSvc = usecase.NewRemoteFixtureService(client, remoteCfg)
		teamSvc = usecase.NewRemoteTeamService(remoteStandings, remoteCfg)

	default:
		db, err := OpenDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() { _ = db.Close() }

		var (
			seasonRepo   season.Repository   = postgres.NewSeasonRepository(db)
			standingRepo standing.Repository = postgres.NewStandingRepository(db)
			fixtureRepo  fixture.Repository  = postgres.NewFixtureRepository(db)
			teamRepo     team.Repository     = postgres.NewTeamRepository(db)
		)
		if cfg.CacheEnabled {
			store := basecache.NewStore(cfg.CacheTTL)
			seasonRepo = cacherepo.NewSeasonRepository(seasonRepo, store)
			standingRepo = cacherepo.NewStandingRepository(standingRepo, store)
			fixtureRepo = cacherepo.NewFixtureRepository(fixtureRepo, store)
			teamRepo = cacherepo.NewTeamRepository(teamRepo, store)
		}

		seasonSvc = usecase.NewSeasonService(seasonRepo)
		standingSvc = usecase.NewStandingService(standingRepo)
		fixtureSvc = usecase.NewFixtureService(fixtureRepo)
		teamSvc = usecase.NewTeamService(teamRepo)
	}

	handler := httpapi.NewHandler(seasonSvc, standingSvc, fixtureSvc, teamSvc, httpapi.HandlerConfig{
		DefaultLeague:   cfg.DefaultLeague,
		DefaultSeason:   cfg.DefaultSeason,
		DataSourceLabel: cfg.DataSourceLabel(),
	}, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

// NewPopulationService wires the ingest pipeline against the database. The
// returned cleanup closes the pool.
func NewPopulationService(cfg config.Config, logger *logging.Logger) (*usecase.PopulationService, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}

	if cfg.APIFootballKey == "" {
		return nil, nil, fmt.Errorf("RAPIDAPI_KEY is required to populate from the feed")
	}

	db, err := OpenDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = db.Close() }

	service := usecase.NewPopulationService(
		NewFeedClient(cfg, logger),
		postgres.NewLeagueRepository(db),
		postgres.NewSeasonRepository(db),
		postgres.NewStandingRepository(db),
		postgres.NewFixtureRepository(db),
		usecase.PopulationConfig{
			Targets:      PopulateTargets(cfg),
			Season:       cfg.DefaultSeason,
			FixtureCount: cfg.PopulateFixtureCount,
			Delay:        cfg.PopulateDelay,
		},
		logger,
	)

	return service, cleanup, nil
}

// NewFeedClient builds the API-Football client from config.
func NewFeedClient(cfg config.Config, logger *logging.Logger) *apifootball.Client {
	return apifootball.NewClient(apifootball.ClientConfig{
		BaseURL: cfg.APIFootballBaseURL,
		Host:    cfg.APIFootballHost,
		Key:     cfg.APIFootballKey,
		Timeout: cfg.APIFootballTimeout,
		Logger:  logger,
	})
}

// OpenDB connects the traced sqlx pool.
func OpenDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	return db, nil
}

// knownTargets carries the countries the feed expects on league upsert.
// Leagues configured beyond these get a slug key and no country.
var knownTargets = []usecase.PopulateTarget{
	{Key: "premier", Name: "Premier League", Country: "England"},
	{Key: "laliga", Name: "La-Liga", Country: "Spain"},
}

// PopulateTargets maps the configured league IDs onto ingest targets.
func PopulateTargets(cfg config.Config) []usecase.PopulateTarget {
	out := make([]usecase.PopulateTarget, 0, len(cfg.LeagueIDByName))
	seen := make(map[string]struct{}, len(cfg.LeagueIDByName))

	for _, target := range knownTargets {
		id, ok := cfg.LeagueIDByName[target.Name]
		if !ok {
			continue
		}
		target.LeagueID = id
		out = append(out, target)
		seen[target.Name] = struct{}{}
	}

	extra := make([]usecase.PopulateTarget, 0)
	for name, id := range cfg.LeagueIDByName {
		if _, ok := seen[name]; ok {
			continue
		}
		extra = append(extra, usecase.PopulateTarget{
			Key:      slugKey(name),
			LeagueID: id,
			Name:     name,
		})
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i].Name < extra[j].Name })

	return append(out, extra...)
}

func slugKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
