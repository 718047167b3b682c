package usecase

import (
	"context"
	"testing"
	"time"

	"football101/internal/domain/fixture"
	"football101/internal/domain/league"
	"football101/internal/domain/season"
	"football101/internal/domain/standing"
	"football101/internal/domain/team"
	"football101/internal/platform/logging"
)

type stubProvider struct {
	leagueSeasons ExternalLeagueSeasons
	standings     []ExternalStanding
	fixtures      []ExternalFixture
}

func (p *stubProvider) LeagueSeasons(context.Context, int64) (ExternalLeagueSeasons, error) {
	return p.leagueSeasons, nil
}

func (p *stubProvider) Standings(context.Context, int64, int) ([]ExternalStanding, error) {
	return p.standings, nil
}

func (p *stubProvider) UpcomingFixtures(context.Context, int64, int) ([]ExternalFixture, error) {
	return p.fixtures, nil
}

type stubLeagueRepo struct {
	upserts []league.League
}

func (r *stubLeagueRepo) Upsert(_ context.Context, l league.League) error {
	r.upserts = append(r.upserts, l)
	return nil
}

func (r *stubLeagueRepo) GetByName(context.Context, string) (league.League, bool, error) {
	return league.League{}, false, nil
}

func (r *stubLeagueRepo) List(context.Context) ([]league.League, error) { return nil, nil }

type stubSeasonRepo struct {
	nextID  int64
	byKey   map[[2]int64]int64
	upserts []season.Season
}

func newStubSeasonRepo() *stubSeasonRepo {
	return &stubSeasonRepo{nextID: 1, byKey: make(map[[2]int64]int64)}
}

func (r *stubSeasonRepo) Upsert(_ context.Context, s season.Season) (int64, error) {
	r.upserts = append(r.upserts, s)
	key := [2]int64{s.LeagueID, int64(s.Year)}
	if id, ok := r.byKey[key]; ok {
		return id, nil
	}
	id := r.nextID
	r.nextID++
	r.byKey[key] = id
	return id, nil
}

func (r *stubSeasonRepo) GetID(_ context.Context, leagueID int64, year int) (int64, bool, error) {
	id, ok := r.byKey[[2]int64{leagueID, int64(year)}]
	return id, ok, nil
}

func (r *stubSeasonRepo) ListByLeague(context.Context, string) ([]season.Season, error) {
	return nil, nil
}

func (r *stubSeasonRepo) SetCurrent(_ context.Context, leagueID int64, year int) (bool, error) {
	_, ok := r.byKey[[2]int64{leagueID, int64(year)}]
	return ok, nil
}

type stubStandingRepo struct {
	replacedSeasonID int64
	replacedRows     []standing.Standing
	replacedTeams    []team.Team
	calls            int
}

func (r *stubStandingRepo) ReplaceForSeason(_ context.Context, seasonID int64, rows []standing.Standing, teams []team.Team) error {
	r.calls++
	r.replacedSeasonID = seasonID
	r.replacedRows = rows
	r.replacedTeams = teams
	return nil
}

func (r *stubStandingRepo) ListBySeason(context.Context, string, int) ([]standing.TableRow, error) {
	return nil, nil
}

func (r *stubStandingRepo) ListCurrent(context.Context, string) ([]standing.TableRow, error) {
	return nil, nil
}

type stubFixtureRepo struct {
	batches map[int64][]fixture.Fixture
}

func newStubFixtureRepo() *stubFixtureRepo {
	return &stubFixtureRepo{batches: make(map[int64][]fixture.Fixture)}
}

func (r *stubFixtureRepo) UpsertBatch(_ context.Context, seasonID int64, rows []fixture.Fixture, _ []team.Team) error {
	r.batches[seasonID] = append(r.batches[seasonID], rows...)
	return nil
}

func (r *stubFixtureRepo) ListBySeason(context.Context, string, int, int) ([]fixture.Row, error) {
	return nil, nil
}

func (r *stubFixtureRepo) ListUpcoming(context.Context, string, int) ([]fixture.Row, error) {
	return nil, nil
}

func premierTarget() PopulateTarget {
	return PopulateTarget{Key: "premier", LeagueID: 39, Name: "Premier League", Country: "England"}
}

func newPopulationService(provider SportDataProvider, leagueRepo *stubLeagueRepo, seasonRepo *stubSeasonRepo, standingRepo *stubStandingRepo, fixtureRepo *stubFixtureRepo) *PopulationService {
	return NewPopulationService(provider, leagueRepo, seasonRepo, standingRepo, fixtureRepo, PopulationConfig{
		Targets:      []PopulateTarget{premierTarget()},
		Season:       2024,
		FixtureCount: 50,
	}, logging.NewNop())
}

func TestPopulationService_Run_PopulatesLeague(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2024, time.August, 17, 14, 0, 0, 0, time.UTC)
	provider := &stubProvider{
		leagueSeasons: ExternalLeagueSeasons{
			League: ExternalLeague{ID: 39, Name: "Premier League", Type: "League", Country: "England"},
			Seasons: []ExternalSeason{
				{Year: 2023},
				{Year: 2024, IsCurrent: true},
			},
		},
		standings: []ExternalStanding{
			{
				TeamID: 40, TeamName: "Liverpool", Rank: 1, Points: 84, GoalDifference: 45,
				Overall: ExternalStatBlock{Played: 38, Wins: 25, Draws: 9, Losses: 4, GoalsFor: 86, GoalsAgainst: 41},
				Home:    ExternalStatBlock{Played: 19, Wins: 14, Draws: 4, Losses: 1, GoalsFor: 46, GoalsAgainst: 20},
				Away:    ExternalStatBlock{Played: 19, Wins: 11, Draws: 5, Losses: 3, GoalsFor: 40, GoalsAgainst: 21},
			},
			{
				TeamID: 42, TeamName: "Arsenal", Rank: 2, Points: 74, GoalDifference: 35,
				Overall: ExternalStatBlock{Played: 38, Wins: 20, Draws: 14, Losses: 4, GoalsFor: 69, GoalsAgainst: 34},
				Home:    ExternalStatBlock{Played: 19, Wins: 11, Draws: 7, Losses: 1, GoalsFor: 36, GoalsAgainst: 15},
				Away:    ExternalStatBlock{Played: 19, Wins: 9, Draws: 7, Losses: 3, GoalsFor: 33, GoalsAgainst: 19},
			},
		},
		fixtures: []ExternalFixture{
			{
				ID: 1, SeasonYear: 2024, Date: kickoff, Status: "NS",
				HomeTeam: ExternalTeam{ID: 40, Name: "Liverpool"},
				AwayTeam: ExternalTeam{ID: 42, Name: "Arsenal"},
			},
		},
	}

	leagueRepo := &stubLeagueRepo{}
	seasonRepo := newStubSeasonRepo()
	standingRepo := &stubStandingRepo{}
	fixtureRepo := newStubFixtureRepo()
	svc := newPopulationService(provider, leagueRepo, seasonRepo, standingRepo, fixtureRepo)

	result, err := svc.Run(context.Background(), "premier", 2024, true)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if result.Seasons != 2 || result.Standings != 2 || result.Fixtures != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(leagueRepo.upserts) != 2 {
		t.Fatalf("expected ensure plus catalog league upserts, got %d", len(leagueRepo.upserts))
	}
	if standingRepo.replacedSeasonID == 0 || len(standingRepo.replacedRows) != 2 {
		t.Fatalf("unexpected standings write: season_id=%d rows=%d", standingRepo.replacedSeasonID, len(standingRepo.replacedRows))
	}
	if len(standingRepo.replacedTeams) != 2 {
		t.Fatalf("expected standings to carry their teams, got %d", len(standingRepo.replacedTeams))
	}

	seasonID, ok, _ := seasonRepo.GetID(context.Background(), 39, 2024)
	if !ok {
		t.Fatalf("expected 2024 season to exist")
	}
	if got := fixtureRepo.batches[seasonID]; len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("unexpected fixture batch: %+v", fixtureRepo.batches)
	}
}

func TestPopulationService_Run_UnknownLeague(t *testing.T) {
	t.Parallel()

	svc := newPopulationService(&stubProvider{}, &stubLeagueRepo{}, newStubSeasonRepo(), &stubStandingRepo{}, newStubFixtureRepo())

	if _, err := svc.Run(context.Background(), "bundesliga", 2024, true); err == nil {
		t.Fatalf("expected unknown league error")
	}
}

func TestPopulationService_PopulateStandings_EmptyFeedKeepsRows(t *testing.T) {
	t.Parallel()

	standingRepo := &stubStandingRepo{}
	svc := newPopulationService(&stubProvider{}, &stubLeagueRepo{}, newStubSeasonRepo(), standingRepo, newStubFixtureRepo())

	count, err := svc.PopulateStandings(context.Background(), premierTarget(), 2024)
	if err != nil {
		t.Fatalf("expected empty feed to be tolerated: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected zero rows, got %d", count)
	}
	if standingRepo.calls != 0 {
		t.Fatalf("expected no replace call on empty feed")
	}
}

func TestPopulationService_PopulateFixtures_GroupsBySeasonYear(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		fixtures: []ExternalFixture{
			{ID: 1, SeasonYear: 2024, HomeTeam: ExternalTeam{ID: 40, Name: "Liverpool"}, AwayTeam: ExternalTeam{ID: 42, Name: "Arsenal"}},
			{ID: 2, SeasonYear: 2025, HomeTeam: ExternalTeam{ID: 40, Name: "Liverpool"}, AwayTeam: ExternalTeam{ID: 50, Name: "Manchester City"}},
			{ID: 3, HomeTeam: ExternalTeam{ID: 42, Name: "Arsenal"}, AwayTeam: ExternalTeam{ID: 50, Name: "Manchester City"}},
		},
	}

	seasonRepo := newStubSeasonRepo()
	fixtureRepo := newStubFixtureRepo()
	svc := newPopulationService(provider, &stubLeagueRepo{}, seasonRepo, &stubStandingRepo{}, fixtureRepo)

	count, err := svc.PopulateFixtures(context.Background(), premierTarget(), 2024)
	if err != nil {
		t.Fatalf("populate fixtures: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 fixtures, got %d", count)
	}

	id2024, ok, _ := seasonRepo.GetID(context.Background(), 39, 2024)
	if !ok {
		t.Fatalf("expected 2024 season")
	}
	id2025, ok, _ := seasonRepo.GetID(context.Background(), 39, 2025)
	if !ok {
		t.Fatalf("expected 2025 season")
	}

	// The year-less fixture falls back to the requested season.
	if got := len(fixtureRepo.batches[id2024]); got != 2 {
		t.Fatalf("expected 2 fixtures on 2024 season, got %d", got)
	}
	if got := len(fixtureRepo.batches[id2025]); got != 1 {
		t.Fatalf("expected 1 fixture on 2025 season, got %d", got)
	}
}

func TestPopulationService_EnsureSeason_AppliesDefaultBounds(t *testing.T) {
	t.Parallel()

	seasonRepo := newStubSeasonRepo()
	svc := newPopulationService(&stubProvider{}, &stubLeagueRepo{}, seasonRepo, &stubStandingRepo{}, newStubFixtureRepo())

	if _, err := svc.ensureSeason(context.Background(), 39, 2024); err != nil {
		t.Fatalf("ensure season: %v", err)
	}
	if len(seasonRepo.upserts) != 1 {
		t.Fatalf("expected one season upsert, got %d", len(seasonRepo.upserts))
	}

	created := seasonRepo.upserts[0]
	if !created.IsCurrent {
		t.Fatalf("expected configured season to be current")
	}
	wantStart := time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC)
	if !created.StartDate.Equal(wantStart) || !created.EndDate.Equal(wantEnd) {
		t.Fatalf("unexpected bounds: %v .. %v", created.StartDate, created.EndDate)
	}

	// A second call must reuse the existing row.
	if _, err := svc.ensureSeason(context.Background(), 39, 2024); err != nil {
		t.Fatalf("ensure season again: %v", err)
	}
	if len(seasonRepo.upserts) != 1 {
		t.Fatalf("expected no extra upsert, got %d", len(seasonRepo.upserts))
	}
}

func TestPopulationService_MarkCurrentSeason(t *testing.T) {
	t.Parallel()

	seasonRepo := newStubSeasonRepo()
	svc := newPopulationService(&stubProvider{}, &stubLeagueRepo{}, seasonRepo, &stubStandingRepo{}, newStubFixtureRepo())

	if err := svc.MarkCurrentSeason(context.Background(), "premier", 2023); err == nil {
		t.Fatalf("expected not found for missing season")
	}

	if _, err := seasonRepo.Upsert(context.Background(), season.Season{LeagueID: 39, Year: 2023}); err != nil {
		t.Fatalf("seed season: %v", err)
	}
	if err := svc.MarkCurrentSeason(context.Background(), "premier", 2023); err != nil {
		t.Fatalf("mark current: %v", err)
	}
}
