package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"football101/internal/domain/fixture"
	"football101/internal/domain/league"
	"football101/internal/domain/season"
	"football101/internal/domain/standing"
	"football101/internal/domain/team"
	"football101/internal/platform/logging"
)

// PopulateTarget is one league the pipeline ingests. Key is the CLI selector.
type PopulateTarget struct {
	Key      string
	LeagueID int64
	Name     string
	Country  string
}

type PopulationConfig struct {
	Targets []PopulateTarget
	// Season is the year treated as current when a season row has to be
	// created on the fly.
	Season int
	// FixtureCount is the size of the upcoming-fixtures window per league.
	FixtureCount int
	// Delay is the pause between consecutive feed calls.
	Delay time.Duration
}

type PopulationResult struct {
	Seasons   int
	Standings int
	Fixtures  int
}

// PopulationService drives one ingest run: league catalog, standings, and
// upcoming fixtures, per target league. Feed calls run sequentially with a
// courtesy delay in between; the feed's quota is tight on the free tier.
type PopulationService struct {
	provider     SportDataProvider
	leagueRepo   league.Repository
	seasonRepo   season.Repository
	standingRepo standing.Repository
	fixtureRepo  fixture.Repository
	cfg          PopulationConfig
	logger       *logging.Logger
}

func NewPopulationService(
	provider SportDataProvider,
	leagueRepo league.Repository,
	seasonRepo season.Repository,
	standingRepo standing.Repository,
	fixtureRepo fixture.Repository,
	cfg PopulationConfig,
	logger *logging.Logger,
) *PopulationService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PopulationService{
		provider:     provider,
		leagueRepo:   leagueRepo,
		seasonRepo:   seasonRepo,
		standingRepo: standingRepo,
		fixtureRepo:  fixtureRepo,
		cfg:          cfg,
		logger:       logger,
	}
}

// Run populates the league selected by key ("all" runs every target). The
// aggregate result reports how many rows each stage wrote.
func (s *PopulationService) Run(ctx context.Context, key string, year int, includeFixtures bool) (PopulationResult, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return PopulationResult{}, fmt.Errorf("%w: league key is required", ErrInvalidInput)
	}
	if year <= 0 {
		year = s.cfg.Season
	}

	targets := make([]PopulateTarget, 0, len(s.cfg.Targets))
	for _, target := range s.cfg.Targets {
		if key == "all" || target.Key == key {
			targets = append(targets, target)
		}
	}
	if len(targets) == 0 {
		return PopulationResult{}, fmt.Errorf("%w: unknown league %q", ErrInvalidInput, key)
	}

	var total PopulationResult
	for i, target := range targets {
		if i > 0 {
			if err := s.pause(ctx); err != nil {
				return total, err
			}
		}

		result, err := s.PopulateLeague(ctx, target, year, includeFixtures)
		total.Seasons += result.Seasons
		total.Standings += result.Standings
		total.Fixtures += result.Fixtures
		if err != nil {
			return total, fmt.Errorf("populate %s: %w", target.Name, err)
		}
	}

	return total, nil
}

// PopulateLeague runs the full ingest for one league: ensure the league row,
// refresh its season catalog, replace the season's standings, and upsert the
// upcoming fixtures.
func (s *PopulationService) PopulateLeague(ctx context.Context, target PopulateTarget, year int, includeFixtures bool) (PopulationResult, error) {
	var result PopulationResult

	if err := s.EnsureLeague(ctx, target); err != nil {
		return result, err
	}

	seasons, err := s.PopulateCatalog(ctx, target)
	result.Seasons = seasons
	if err != nil {
		return result, err
	}

	if err := s.pause(ctx); err != nil {
		return result, err
	}

	standings, err := s.PopulateStandings(ctx, target, year)
	result.Standings = standings
	if err != nil {
		return result, err
	}

	if includeFixtures {
		if err := s.pause(ctx); err != nil {
			return result, err
		}

		fixtures, err := s.PopulateFixtures(ctx, target, year)
		result.Fixtures = fixtures
		if err != nil {
			return result, err
		}
	}

	s.logger.InfoContext(ctx, "league population complete",
		"league", target.Name,
		"season", year,
		"seasons", result.Seasons,
		"standings", result.Standings,
		"fixtures", result.Fixtures,
	)
	return result, nil
}

// EnsureLeague writes the league row up front so season and standing inserts
// always have their foreign key, even when the catalog fetch comes back empty.
func (s *PopulationService) EnsureLeague(ctx context.Context, target PopulateTarget) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PopulationService.EnsureLeague")
	defer span.End()

	l := league.League{
		ID:      target.LeagueID,
		Name:    target.Name,
		Type:    "League",
		Country: target.Country,
	}
	if err := l.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.leagueRepo.Upsert(ctx, l); err != nil {
		return fmt.Errorf("ensure league %s: %w", target.Name, err)
	}

	return nil
}

// PopulateCatalog refreshes the league's metadata and season list from the
// feed. It returns the number of season rows written.
func (s *PopulationService) PopulateCatalog(ctx context.Context, target PopulateTarget) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PopulationService.PopulateCatalog")
	defer span.End()

	ext, err := s.provider.LeagueSeasons(ctx, target.LeagueID)
	if err != nil {
		return 0, fmt.Errorf("fetch league seasons league_id=%d: %w", target.LeagueID, err)
	}
	if ext.League.ID == 0 || len(ext.Seasons) == 0 {
		s.logger.WarnContext(ctx, "no league catalog fetched, keeping existing rows",
			"league", target.Name,
			"league_id", target.LeagueID,
		)
		return 0, nil
	}

	enriched := league.League{
		ID:      ext.League.ID,
		Name:    firstNonEmpty(ext.League.Name, target.Name),
		Type:    firstNonEmpty(ext.League.Type, "League"),
		Country: firstNonEmpty(ext.League.Country, target.Country),
		LogoURL: ext.League.LogoURL,
	}
	if err := s.leagueRepo.Upsert(ctx, enriched); err != nil {
		return 0, fmt.Errorf("upsert league %s: %w", enriched.Name, err)
	}

	count := 0
	for _, extSeason := range ext.Seasons {
		row := season.Season{
			LeagueID:  target.LeagueID,
			Year:      extSeason.Year,
			StartDate: extSeason.StartDate,
			EndDate:   extSeason.EndDate,
			IsCurrent: extSeason.IsCurrent,
		}
		if row.StartDate.IsZero() || row.EndDate.IsZero() {
			row.StartDate, row.EndDate = season.DefaultBounds(row.Year)
		}
		if err := row.Validate(); err != nil {
			s.logger.WarnContext(ctx, "skipping invalid season from feed",
				"league", target.Name,
				"year", extSeason.Year,
				"error", err,
			)
			continue
		}
		if _, err := s.seasonRepo.Upsert(ctx, row); err != nil {
			return count, fmt.Errorf("upsert season year=%d: %w", row.Year, err)
		}
		count++
	}

	return count, nil
}

// PopulateStandings replaces the season's table with the feed's standings.
// Teams referenced by the table are upserted in the same transaction.
func (s *PopulationService) PopulateStandings(ctx context.Context, target PopulateTarget, year int) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PopulationService.PopulateStandings")
	defer span.End()

	ext, err := s.provider.Standings(ctx, target.LeagueID, year)
	if err != nil {
		return 0, fmt.Errorf("fetch standings league_id=%d year=%d: %w", target.LeagueID, year, err)
	}
	if len(ext) == 0 {
		s.logger.WarnContext(ctx, "no standings fetched, keeping existing rows",
			"league", target.Name,
			"season", year,
		)
		return 0, nil
	}

	seasonID, err := s.ensureSeason(ctx, target.LeagueID, year)
	if err != nil {
		return 0, err
	}

	rows := make([]standing.Standing, 0, len(ext))
	teams := make([]team.Team, 0, len(ext))
	for _, item := range ext {
		row := standing.Standing{
			TeamID:         item.TeamID,
			Rank:           item.Rank,
			Points:         item.Points,
			GoalDifference: item.GoalDifference,
			Form:           item.Form,
			Description:    item.Description,
			Overall:        standing.StatBlock(item.Overall),
			Home:           standing.StatBlock(item.Home),
			Away:           standing.StatBlock(item.Away),
		}
		if !row.SplitConsistent() {
			s.logger.WarnContext(ctx, "home/away splits disagree with overall record",
				"league", target.Name,
				"season", year,
				"team_id", item.TeamID,
				"team", item.TeamName,
			)
		}
		rows = append(rows, row)
		teams = append(teams, team.Team{
			ID:      item.TeamID,
			Name:    item.TeamName,
			LogoURL: item.TeamLogo,
		})
	}

	if err := s.standingRepo.ReplaceForSeason(ctx, seasonID, rows, teams); err != nil {
		return 0, fmt.Errorf("replace standings season_id=%d: %w", seasonID, err)
	}

	return len(rows), nil
}

// PopulateFixtures upserts the league's next fixtures. Rows are grouped by
// the feed's season year so a window spanning a season boundary lands each
// fixture on the right season.
func (s *PopulationService) PopulateFixtures(ctx context.Context, target PopulateTarget, year int) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PopulationService.PopulateFixtures")
	defer span.End()

	ext, err := s.provider.UpcomingFixtures(ctx, target.LeagueID, s.cfg.FixtureCount)
	if err != nil {
		return 0, fmt.Errorf("fetch fixtures league_id=%d: %w", target.LeagueID, err)
	}
	if len(ext) == 0 {
		s.logger.WarnContext(ctx, "no fixtures fetched, keeping existing rows",
			"league", target.Name,
			"season", year,
		)
		return 0, nil
	}

	byYear := make(map[int][]ExternalFixture)
	for _, item := range ext {
		fixtureYear := item.SeasonYear
		if fixtureYear <= 0 {
			fixtureYear = year
		}
		byYear[fixtureYear] = append(byYear[fixtureYear], item)
	}

	count := 0
	for fixtureYear, items := range byYear {
		seasonID, err := s.ensureSeason(ctx, target.LeagueID, fixtureYear)
		if err != nil {
			return count, err
		}

		rows := make([]fixture.Fixture, 0, len(items))
		teams := make([]team.Team, 0, len(items)*2)
		for _, item := range items {
			rows = append(rows, fixture.Fixture{
				ID:           item.ID,
				SeasonID:     seasonID,
				Round:        item.Round,
				Date:         item.Date,
				Timezone:     item.Timezone,
				Venue:        item.VenueName,
				City:         item.VenueCity,
				Referee:      item.Referee,
				HomeTeamID:   item.HomeTeam.ID,
				AwayTeamID:   item.AwayTeam.ID,
				HomeScore:    item.HomeScore,
				AwayScore:    item.AwayScore,
				HalftimeHome: item.HalftimeHome,
				HalftimeAway: item.HalftimeAway,
				Status:       fixture.NormalizeStatus(item.Status),
				StatusLong:   item.StatusLong,
				Elapsed:      item.Elapsed,
			})
			teams = append(teams,
				team.Team{ID: item.HomeTeam.ID, Name: item.HomeTeam.Name, LogoURL: item.HomeTeam.LogoURL},
				team.Team{ID: item.AwayTeam.ID, Name: item.AwayTeam.Name, LogoURL: item.AwayTeam.LogoURL},
			)
		}

		if err := s.fixtureRepo.UpsertBatch(ctx, seasonID, rows, teams); err != nil {
			return count, fmt.Errorf("upsert fixtures season_id=%d: %w", seasonID, err)
		}
		count += len(rows)
	}

	return count, nil
}

// MarkCurrentSeason moves the current flag for a target league.
func (s *PopulationService) MarkCurrentSeason(ctx context.Context, key string, year int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PopulationService.MarkCurrentSeason")
	defer span.End()

	if year <= 0 {
		return fmt.Errorf("%w: season year must be greater than zero", ErrInvalidInput)
	}

	key = strings.ToLower(strings.TrimSpace(key))
	for _, target := range s.cfg.Targets {
		if target.Key != key {
			continue
		}
		found, err := s.seasonRepo.SetCurrent(ctx, target.LeagueID, year)
		if err != nil {
			return fmt.Errorf("set current season: %w", err)
		}
		if !found {
			return fmt.Errorf("%w: season %d for %s", ErrNotFound, year, target.Name)
		}
		return nil
	}

	return fmt.Errorf("%w: unknown league %q", ErrInvalidInput, key)
}

// ensureSeason resolves a season row ID, creating the row with conventional
// bounds when the catalog has not delivered it yet.
func (s *PopulationService) ensureSeason(ctx context.Context, leagueID int64, year int) (int64, error) {
	seasonID, exists, err := s.seasonRepo.GetID(ctx, leagueID, year)
	if err != nil {
		return 0, fmt.Errorf("get season id league_id=%d year=%d: %w", leagueID, year, err)
	}
	if exists {
		return seasonID, nil
	}

	start, end := season.DefaultBounds(year)
	seasonID, err = s.seasonRepo.Upsert(ctx, season.Season{
		LeagueID:  leagueID,
		Year:      year,
		StartDate: start,
		EndDate:   end,
		IsCurrent: year == s.cfg.Season,
	})
	if err != nil {
		return 0, fmt.Errorf("create season league_id=%d year=%d: %w", leagueID, year, err)
	}

	return seasonID, nil
}

func (s *PopulationService) pause(ctx context.Context) error {
	if s.cfg.Delay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.cfg.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
