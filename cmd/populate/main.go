package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"football101/internal/app"
	"football101/internal/config"
	"football101/internal/observability"
	"football101/internal/platform/logging"
)

func main() {
	_ = godotenv.Load()

	leagueKey := flag.String("league", "premier", "league to populate: premier, laliga, or all")
	seasonYear := flag.Int("season", 0, "season year to populate (defaults to DEFAULT_SEASON)")
	noFixtures := flag.Bool("no-fixtures", false, "skip fixture population")
	markCurrent := flag.Bool("mark-current", false, "only mark the given season as current, no feed calls")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}

	service, cleanup, err := app.NewPopulationService(cfg, logger)
	if err != nil {
		logger.Error("build population service", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	year := *seasonYear
	if year <= 0 {
		year = cfg.DefaultSeason
	}

	if *markCurrent {
		if err := service.MarkCurrentSeason(ctx, *leagueKey, year); err != nil {
			logger.Error("mark current season failed", "league", *leagueKey, "season", year, "error", err)
			os.Exit(1)
		}
		logger.Info("current season updated", "league", *leagueKey, "season", year)
		_ = shutdownTracing(context.Background())
		return
	}

	result, err := service.Run(ctx, *leagueKey, year, !*noFixtures)
	if err != nil {
		logger.Error("population failed",
			"league", *leagueKey,
			"season", year,
			"seasons", result.Seasons,
			"standings", result.Standings,
			"fixtures", result.Fixtures,
			"error", err,
		)
		os.Exit(1)
	}

	logger.Info("population complete",
		"league", *leagueKey,
		"season", year,
		"seasons", result.Seasons,
		"standings", result.Standings,
		"fixtures", result.Fixtures,
	)

	_ = shutdownTracing(context.Background())
}
