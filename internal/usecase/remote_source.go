package usecase

import (
	"context"
	"fmt"
	"strings"

	"football101/internal/domain/fixture"
	"football101/internal/domain/season"
	"football101/internal/domain/standing"
	"football101/internal/domain/team"
)

// RemoteConfig drives the feed-backed read path, used when the service runs
// with DATA_SOURCE=remote and no database.
type RemoteConfig struct {
	LeagueIDByName map[string]int64
	DefaultSeason  int
	FixtureCount   int
}

func (c RemoteConfig) leagueID(leagueName string) (int64, error) {
	id, ok := c.LeagueIDByName[leagueName]
	if !ok || id <= 0 {
		return 0, fmt.Errorf("%w: unknown league %q", ErrInvalidInput, leagueName)
	}
	return id, nil
}

// RemoteStandingService serves standings straight from the feed.
type RemoteStandingService struct {
	provider SportDataProvider
	cfg      RemoteConfig
}

func NewRemoteStandingService(provider SportDataProvider, cfg RemoteConfig) *RemoteStandingService {
	return &RemoteStandingService{provider: provider, cfg: cfg}
}

func (s *RemoteStandingService) ListBySeason(ctx context.Context, leagueName string, year int) ([]standing.TableRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RemoteStandingService.ListBySeason")
	defer span.End()

	leagueName = strings.TrimSpace(leagueName)
	if leagueName == "" {
		return nil, fmt.Errorf("%w: league name is required", ErrInvalidInput)
	}
	if year <= 0 {
		return nil, fmt.Errorf("%w: season year must be greater than zero", ErrInvalidInput)
	}

	leagueID, err := s.cfg.leagueID(leagueName)
	if err != nil {
		return nil, err
	}

	ext, err := s.provider.Standings(ctx, leagueID, year)
	if err != nil {
		return nil, fmt.Errorf("fetch standings: %w", err)
	}
	if len(ext) == 0 {
		return nil, fmt.Errorf("%w: no standings found for %s %d", ErrNotFound, leagueName, year)
	}

	rows := make([]standing.TableRow, 0, len(ext))
	for _, item := range ext {
		rows = append(rows, standing.TableRow{
			Standing: standing.Standing{
				TeamID:         item.TeamID,
				Rank:           item.Rank,
				Points:         item.Points,
				GoalDifference: item.GoalDifference,
				Form:           item.Form,
				Description:    item.Description,
				Overall:        standing.StatBlock(item.Overall),
				Home:           standing.StatBlock(item.Home),
				Away:           standing.StatBlock(item.Away),
			},
			TeamName: item.TeamName,
			TeamLogo: item.TeamLogo,
		})
	}

	return rows, nil
}

func (s *RemoteStandingService) ListCurrent(ctx context.Context, leagueName string) ([]standing.TableRow, error) {
	return s.ListBySeason(ctx, leagueName, s.cfg.DefaultSeason)
}

// RemoteFixtureService serves the feed's upcoming fixtures window. The feed
// cannot replay past seasons this way, so season filtering is best effort.
type RemoteFixtureService struct {
	provider SportDataProvider
	cfg      RemoteConfig
}

func NewRemoteFixtureService(provider SportDataProvider, cfg RemoteConfig) *RemoteFixtureService {
	return &RemoteFixtureService{provider: provider, cfg: cfg}
}

func (s *RemoteFixtureService) ListBySeason(ctx context.Context, leagueName string, year int, limit int) ([]fixture.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RemoteFixtureService.ListBySeason")
	defer span.End()

	leagueName = strings.TrimSpace(leagueName)
	if leagueName == "" {
		return nil, fmt.Errorf("%w: league name is required", ErrInvalidInput)
	}
	if year <= 0 {
		return nil, fmt.Errorf("%w: season year must be greater than zero", ErrInvalidInput)
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}

	leagueID, err := s.cfg.leagueID(leagueName)
	if err != nil {
		return nil, err
	}

	count := s.cfg.FixtureCount
	if limit > 0 && limit < count {
		count = limit
	}

	ext, err := s.provider.UpcomingFixtures(ctx, leagueID, count)
	if err != nil {
		return nil, fmt.Errorf("fetch fixtures: %w", err)
	}

	rows := make([]fixture.Row, 0, len(ext))
	for _, item := range ext {
		if item.SeasonYear > 0 && item.SeasonYear != year {
			continue
		}
		rows = append(rows, fixture.Row{
			Fixture: fixture.Fixture{
				ID:           item.ID,
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
			},
			HomeTeamName: item.HomeTeam.Name,
			AwayTeamName: item.AwayTeam.Name,
		})
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no fixtures found for %s %d", ErrNotFound, leagueName, year)
	}

	return rows, nil
}

func (s *RemoteFixtureService) ListUpcoming(ctx context.Context, leagueName string, limit int) ([]fixture.Row, error) {
	return s.ListBySeason(ctx, leagueName, s.cfg.DefaultSeason, limit)
}

// RemoteSeasonService serves the feed's season catalog for a league.
type RemoteSeasonService struct {
	provider SportDataProvider
	cfg      RemoteConfig
}

func NewRemoteSeasonService(provider SportDataProvider, cfg RemoteConfig) *RemoteSeasonService {
	return &RemoteSeasonService{provider: provider, cfg: cfg}
}

func (s *RemoteSeasonService) List(ctx context.Context, leagueName string) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RemoteSeasonService.List")
	defer span.End()

	leagueName = strings.TrimSpace(leagueName)
	if leagueName == "" {
		return nil, fmt.Errorf("%w: league name is required", ErrInvalidInput)
	}

	leagueID, err := s.cfg.leagueID(leagueName)
	if err != nil {
		return nil, err
	}

	ext, err := s.provider.LeagueSeasons(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("fetch league seasons: %w", err)
	}

	out := make([]season.Season, 0, len(ext.Seasons))
	for i := len(ext.Seasons) - 1; i >= 0; i-- {
		item := ext.Seasons[i]
		start, end := item.StartDate, item.EndDate
		if start.IsZero() || end.IsZero() {
			start, end = season.DefaultBounds(item.Year)
		}
		out = append(out, season.Season{
			LeagueID:   leagueID,
			Year:       item.Year,
			StartDate:  start,
			EndDate:    end,
			IsCurrent:  item.IsCurrent,
			LeagueName: firstNonEmpty(ext.League.Name, leagueName),
		})
	}

	return out, nil
}

// RemoteTeamService derives team reads from the current season's table.
type RemoteTeamService struct {
	standings *RemoteStandingService
	cfg       RemoteConfig
}

func NewRemoteTeamService(standings *RemoteStandingService, cfg RemoteConfig) *RemoteTeamService {
	return &RemoteTeamService{standings: standings, cfg: cfg}
}

func (s *RemoteTeamService) List(ctx context.Context, leagueName string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RemoteTeamService.List")
	defer span.End()

	rows, err := s.standings.ListBySeason(ctx, leagueName, s.cfg.DefaultSeason)
	if err != nil {
		return nil, err
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Team{
			ID:      row.TeamID,
			Name:    row.TeamName,
			LogoURL: row.TeamLogo,
		})
	}

	return out, nil
}

func (s *RemoteTeamService) GetByID(ctx context.Context, teamID int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RemoteTeamService.GetByID")
	defer span.End()

	if teamID <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput)
	}

	for leagueName := range s.cfg.LeagueIDByName {
		items, err := s.List(ctx, leagueName)
		if err != nil {
			continue
		}
		for _, item := range items {
			if item.ID == teamID {
				return item, nil
			}
		}
	}

	return team.Team{}, fmt.Errorf("%w: team with id %d not found", ErrNotFound, teamID)
}
