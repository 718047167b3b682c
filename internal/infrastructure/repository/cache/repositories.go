// Package cache wraps the postgres repositories with a read-through TTL
// cache. Ingest writes pass through and invalidate the affected prefixes.
package cache

import (
	"context"
	"strconv"

	"football101/internal/domain/fixture"
	"football101/internal/domain/season"
	"football101/internal/domain/standing"
	"football101/internal/domain/team"
	basecache "football101/internal/platform/cache"
)

type StandingRepository struct {
	next  standing.Repository
	cache *basecache.Store
}

func NewStandingRepository(next standing.Repository, cache *basecache.Store) *StandingRepository {
	return &StandingRepository{next: next, cache: cache}
}

func (r *StandingRepository) ReplaceForSeason(ctx context.Context, seasonID int64, rows []standing.Standing, teams []team.Team) error {
	if err := r.next.ReplaceForSeason(ctx, seasonID, rows, teams); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "standing:")
	r.cache.DeletePrefix(ctx, "team:")
	return nil
}

func (r *StandingRepository) ListBySeason(ctx context.Context, leagueName string, year int) ([]standing.TableRow, error) {
	key := basecache.Key("standing", "season", leagueName, strconv.Itoa(year))
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		rows, err := r.next.ListBySeason(ctx, leagueName, year)
		if err != nil {
			return nil, err
		}
		return append([]standing.TableRow(nil), rows...), nil
	})
	if err != nil {
		return nil, err
	}

	rows, _ := v.([]standing.TableRow)
	return append([]standing.TableRow(nil), rows...), nil
}

func (r *StandingRepository) ListCurrent(ctx context.Context, leagueName string) ([]standing.TableRow, error) {
	key := basecache.Key("standing", "current", leagueName)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		rows, err := r.next.ListCurrent(ctx, leagueName)
		if err != nil {
			return nil, err
		}
		return append([]standing.TableRow(nil), rows...), nil
	})
	if err != nil {
		return nil, err
	}

	rows, _ := v.([]standing.TableRow)
	return append([]standing.TableRow(nil), rows...), nil
}

type FixtureRepository struct {
	next  fixture.Repository
	cache *basecache.Store
}

func NewFixtureRepository(next fixture.Repository, cache *basecache.Store) *FixtureRepository {
	return &FixtureRepository{next: next, cache: cache}
}

func (r *FixtureRepository) UpsertBatch(ctx context.Context, seasonID int64, rows []fixture.Fixture, teams []team.Team) error {
	if err := r.next.UpsertBatch(ctx, seasonID, rows, teams); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "fixture:")
	r.cache.DeletePrefix(ctx, "team:")
	return nil
}

func (r *FixtureRepository) ListBySeason(ctx context.Context, leagueName string, year int, limit int) ([]fixture.Row, error) {
	key := basecache.Key("fixture", "season", leagueName, strconv.Itoa(year), strconv.Itoa(limit))
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		rows, err := r.next.ListBySeason(ctx, leagueName, year, limit)
		if err != nil {
			return nil, err
		}
		return append([]fixture.Row(nil), rows...), nil
	})
	if err != nil {
		return nil, err
	}

	rows, _ := v.([]fixture.Row)
	return append([]fixture.Row(nil), rows...), nil
}

func (r *FixtureRepository) ListUpcoming(ctx context.Context, leagueName string, limit int) ([]fixture.Row, error) {
	key := basecache.Key("fixture", "upcoming", leagueName, strconv.Itoa(limit))
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		rows, err := r.next.ListUpcoming(ctx, leagueName, limit)
		if err != nil {
			return nil, err
		}
		return append([]fixture.Row(nil), rows...), nil
	})
	if err != nil {
		return nil, err
	}

	rows, _ := v.([]fixture.Row)
	return append([]fixture.Row(nil), rows...), nil
}

type SeasonRepository struct {
	next  season.Repository
	cache *basecache.Store
}

func NewSeasonRepository(next season.Repository, cache *basecache.Store) *SeasonRepository {
	return &SeasonRepository{next: next, cache: cache}
}

func (r *SeasonRepository) Upsert(ctx context.Context, s season.Season) (int64, error) {
	id, err := r.next.Upsert(ctx, s)
	if err != nil {
		return 0, err
	}
	r.cache.DeletePrefix(ctx, "season:")
	return id, nil
}

func (r *SeasonRepository) GetID(ctx context.Context, leagueID int64, year int) (int64, bool, error) {
	return r.next.GetID(ctx, leagueID, year)
}

func (r *SeasonRepository) ListByLeague(ctx context.Context, leagueName string) ([]season.Season, error) {
	key := basecache.Key("season", "list", leagueName)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByLeague(ctx, leagueName)
		if err != nil {
			return nil, err
		}
		return append([]season.Season(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]season.Season)
	return append([]season.Season(nil), items...), nil
}

func (r *SeasonRepository) SetCurrent(ctx context.Context, leagueID int64, year int) (bool, error) {
	found, err := r.next.SetCurrent(ctx, leagueID, year)
	if err != nil {
		return false, err
	}
	if found {
		r.cache.DeletePrefix(ctx, "season:")
		r.cache.DeletePrefix(ctx, "standing:current:")
		r.cache.DeletePrefix(ctx, "fixture:upcoming:")
	}
	return found, nil
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueName string) ([]team.Team, error) {
	key := basecache.Key("team", "list", leagueName)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByLeague(ctx, leagueName)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	key := basecache.Key("team", "id", strconv.FormatInt(teamID, 10))
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}
