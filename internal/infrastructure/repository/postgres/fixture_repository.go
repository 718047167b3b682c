package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"football101/internal/domain/fixture"
	"football101/internal/domain/team"
	qb "football101/internal/platform/querybuilder"
)

var fixtureSelectColumns = []string{
	"f.id",
	"f.season_id",
	"f.round",
	"f.date",
	"f.timezone",
	"f.venue",
	"f.city",
	"f.referee",
	"f.home_team_id",
	"f.away_team_id",
	"ht.name AS home_team_name",
	"at.name AS away_team_name",
	"f.home_score",
	"f.away_score",
	"f.halftime_home",
	"f.halftime_away",
	"f.status",
	"f.status_long",
	"f.elapsed",
}

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) UpsertBatch(ctx context.Context, seasonID int64, rows []fixture.Fixture, teams []team.Team) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert fixtures: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := upsertTeamsTx(ctx, tx, teams); err != nil {
		return err
	}

	for _, row := range rows {
		query, args, err := qb.InsertModel("fixtures", fixtureToInsertModel(seasonID, row), `ON CONFLICT (id)
DO UPDATE SET
    season_id = EXCLUDED.season_id,
    round = EXCLUDED.round,
    date = EXCLUDED.date,
    timezone = EXCLUDED.timezone,
    venue = EXCLUDED.venue,
    city = EXCLUDED.city,
    referee = EXCLUDED.referee,
    home_team_id = EXCLUDED.home_team_id,
    away_team_id = EXCLUDED.away_team_id,
    home_score = EXCLUDED.home_score,
    away_score = EXCLUDED.away_score,
    halftime_home = EXCLUDED.halftime_home,
    halftime_away = EXCLUDED.halftime_away,
    status = EXCLUDED.status,
    status_long = EXCLUDED.status_long,
    elapsed = EXCLUDED.elapsed,
    updated_at = NOW()`)
		if err != nil {
			return fmt.Errorf("build upsert fixture query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert fixture id=%d: %w", row.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert fixtures tx: %w", err)
	}
	return nil
}

func (r *FixtureRepository) ListBySeason(ctx context.Context, leagueName string, year int, limit int) ([]fixture.Row, error) {
	query, args, err := qb.Select(fixtureSelectColumns...).
		From(`fixtures f
JOIN teams ht ON f.home_team_id = ht.id
JOIN teams at ON f.away_team_id = at.id
JOIN seasons s ON f.season_id = s.id
JOIN leagues l ON s.league_id = l.id`).
		Where(
			qb.Eq("l.name", leagueName),
			qb.Eq("s.year", year),
		).
		OrderBy("f.date").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list fixtures query: %w", err)
	}

	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list fixtures league=%s year=%d: %w", leagueName, year, err)
	}

	out := make([]fixture.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapFixtureRow(row))
	}

	return out, nil
}

func (r *FixtureRepository) ListUpcoming(ctx context.Context, leagueName string, limit int) ([]fixture.Row, error) {
	// upcoming_fixtures resolves the current season and the kickoff window.
	query, args, err := qb.Select(fixtureSelectColumns...).
		From(`upcoming_fixtures f
JOIN teams ht ON f.home_team_id = ht.id
JOIN teams at ON f.away_team_id = at.id`).
		Where(qb.Eq("f.league_name", leagueName)).
		OrderBy("f.date").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list upcoming fixtures query: %w", err)
	}

	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list upcoming fixtures league=%s: %w", leagueName, err)
	}

	out := make([]fixture.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapFixtureRow(row))
	}

	return out, nil
}
