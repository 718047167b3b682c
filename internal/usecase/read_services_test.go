package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"football101/internal/domain/fixture"
	"football101/internal/domain/season"
	"football101/internal/domain/standing"
	"football101/internal/domain/team"
)

type readSeasonRepo struct {
	items []season.Season
}

func (r *readSeasonRepo) Upsert(context.Context, season.Season) (int64, error) { return 0, nil }
func (r *readSeasonRepo) GetID(context.Context, int64, int) (int64, bool, error) {
	return 0, false, nil
}
func (r *readSeasonRepo) ListByLeague(context.Context, string) ([]season.Season, error) {
	return r.items, nil
}
func (r *readSeasonRepo) SetCurrent(context.Context, int64, int) (bool, error) { return false, nil }

type readStandingRepo struct {
	rows []standing.TableRow
}

func (r *readStandingRepo) ReplaceForSeason(context.Context, int64, []standing.Standing, []team.Team) error {
	return nil
}
func (r *readStandingRepo) ListBySeason(context.Context, string, int) ([]standing.TableRow, error) {
	return r.rows, nil
}
func (r *readStandingRepo) ListCurrent(context.Context, string) ([]standing.TableRow, error) {
	return r.rows, nil
}

type readFixtureRepo struct {
	rows []fixture.Row
}

func (r *readFixtureRepo) UpsertBatch(context.Context, int64, []fixture.Fixture, []team.Team) error {
	return nil
}
func (r *readFixtureRepo) ListBySeason(context.Context, string, int, int) ([]fixture.Row, error) {
	return r.rows, nil
}
func (r *readFixtureRepo) ListUpcoming(context.Context, string, int) ([]fixture.Row, error) {
	return r.rows, nil
}

type readTeamRepo struct {
	items  []team.Team
	byID   team.Team
	exists bool
}

func (r *readTeamRepo) ListByLeague(context.Context, string) ([]team.Team, error) {
	return r.items, nil
}
func (r *readTeamRepo) GetByID(context.Context, int64) (team.Team, bool, error) {
	return r.byID, r.exists, nil
}

func TestSeasonService_List_EmptyIsNotAnError(t *testing.T) {
	t.Parallel()

	service := NewSeasonService(&readSeasonRepo{})

	items, err := service.List(context.Background(), "Premier League")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStandingService_ListBySeason(t *testing.T) {
	t.Parallel()

	t.Run("requires league name", func(t *testing.T) {
		service := NewStandingService(&readStandingRepo{})
		_, err := service.ListBySeason(context.Background(), "  ", 2024)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("requires positive year", func(t *testing.T) {
		service := NewStandingService(&readStandingRepo{})
		_, err := service.ListBySeason(context.Background(), "Premier League", 0)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("empty table is not found", func(t *testing.T) {
		service := NewStandingService(&readStandingRepo{})
		_, err := service.ListBySeason(context.Background(), "Premier League", 2024)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("returns rows", func(t *testing.T) {
		rows := []standing.TableRow{{
			Standing: standing.Standing{TeamID: 40, Rank: 1, Points: 84},
			TeamName: "Liverpool",
		}}
		service := NewStandingService(&readStandingRepo{rows: rows})

		got, err := service.ListBySeason(context.Background(), "Premier League", 2024)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Liverpool", got[0].TeamName)
	})
}

func TestFixtureService_ListBySeason(t *testing.T) {
	t.Parallel()

	t.Run("rejects negative limit", func(t *testing.T) {
		service := NewFixtureService(&readFixtureRepo{})
		_, err := service.ListBySeason(context.Background(), "Premier League", 2024, -1)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("empty window is not found", func(t *testing.T) {
		service := NewFixtureService(&readFixtureRepo{})
		_, err := service.ListUpcoming(context.Background(), "Premier League", 10)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("returns rows", func(t *testing.T) {
		rows := []fixture.Row{{
			Fixture:      fixture.Fixture{ID: 1001, Date: time.Date(2024, 8, 17, 14, 0, 0, 0, time.UTC), Status: "NS"},
			HomeTeamName: "Liverpool",
			AwayTeamName: "Everton",
		}}
		service := NewFixtureService(&readFixtureRepo{rows: rows})

		got, err := service.ListBySeason(context.Background(), "Premier League", 2024, 50)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(1001), got[0].ID)
	})
}

func TestTeamService_GetByID(t *testing.T) {
	t.Parallel()

	t.Run("rejects non positive id", func(t *testing.T) {
		service := NewTeamService(&readTeamRepo{})
		_, err := service.GetByID(context.Background(), 0)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("missing team is not found", func(t *testing.T) {
		service := NewTeamService(&readTeamRepo{})
		_, err := service.GetByID(context.Background(), 40)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("returns team", func(t *testing.T) {
		service := NewTeamService(&readTeamRepo{byID: team.Team{ID: 40, Name: "Liverpool"}, exists: true})
		got, err := service.GetByID(context.Background(), 40)
		require.NoError(t, err)
		assert.Equal(t, "Liverpool", got.Name)
	})
}
