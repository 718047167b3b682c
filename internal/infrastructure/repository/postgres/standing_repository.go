package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"football101/internal/domain/standing"
	"football101/internal/domain/team"
	qb "football101/internal/platform/querybuilder"
)

var standingSelectColumns = []string{
	"st.rank",
	"t.id AS team_id",
	"t.name AS team_name",
	"t.logo_url AS team_logo",
	"st.points",
	"st.played",
	"st.wins",
	"st.draws",
	"st.losses",
	"st.goals_for",
	"st.goals_against",
	"st.goal_difference",
	"st.form",
	"st.description",
	"st.home_played",
	"st.home_wins",
	"st.home_draws",
	"st.home_losses",
	"st.home_goals_for",
	"st.home_goals_against",
	"st.away_played",
	"st.away_wins",
	"st.away_draws",
	"st.away_losses",
	"st.away_goals_for",
	"st.away_goals_against",
}

type StandingRepository struct {
	db *sqlx.DB
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) ReplaceForSeason(ctx context.Context, seasonID int64, rows []standing.Standing, teams []team.Team) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace standings: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := upsertTeamsTx(ctx, tx, teams); err != nil {
		return err
	}

	// A relegated or renamed team must not linger from a previous run, so
	// the season's table is cleared before the fresh rows go in.
	if _, err := tx.ExecContext(ctx, "DELETE FROM standings WHERE season_id = $1", seasonID); err != nil {
		return fmt.Errorf("clear standings season_id=%d: %w", seasonID, err)
	}

	for _, row := range rows {
		query, args, err := qb.InsertModel("standings", standingToInsertModel(seasonID, row), `ON CONFLICT (season_id, team_id)
DO UPDATE SET
    rank = EXCLUDED.rank,
    points = EXCLUDED.points,
    played = EXCLUDED.played,
    wins = EXCLUDED.wins,
    draws = EXCLUDED.draws,
    losses = EXCLUDED.losses,
    goals_for = EXCLUDED.goals_for,
    goals_against = EXCLUDED.goals_against,
    goal_difference = EXCLUDED.goal_difference,
    form = EXCLUDED.form,
    description = EXCLUDED.description,
    home_played = EXCLUDED.home_played,
    home_wins = EXCLUDED.home_wins,
    home_draws = EXCLUDED.home_draws,
    home_losses = EXCLUDED.home_losses,
    home_goals_for = EXCLUDED.home_goals_for,
    home_goals_against = EXCLUDED.home_goals_against,
    away_played = EXCLUDED.away_played,
    away_wins = EXCLUDED.away_wins,
    away_draws = EXCLUDED.away_draws,
    away_losses = EXCLUDED.away_losses,
    away_goals_for = EXCLUDED.away_goals_for,
    away_goals_against = EXCLUDED.away_goals_against,
    updated_at = NOW()`)
		if err != nil {
			return fmt.Errorf("build upsert standing query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert standing season_id=%d team_id=%d: %w", seasonID, row.TeamID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace standings tx: %w", err)
	}
	return nil
}

func (r *StandingRepository) ListBySeason(ctx context.Context, leagueName string, year int) ([]standing.TableRow, error) {
	query, args, err := qb.Select(standingSelectColumns...).
		From(`standings st
JOIN teams t ON st.team_id = t.id
JOIN seasons s ON st.season_id = s.id
JOIN leagues l ON s.league_id = l.id`).
		Where(
			qb.Eq("l.name", leagueName),
			qb.Eq("s.year", year),
		).
		OrderBy("st.rank").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list standings query: %w", err)
	}

	var rows []standingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list standings league=%s year=%d: %w", leagueName, year, err)
	}

	out := make([]standing.TableRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapStandingRow(row))
	}

	return out, nil
}

func (r *StandingRepository) ListCurrent(ctx context.Context, leagueName string) ([]standing.TableRow, error) {
	// current_standings resolves the league's is_current season.
	query, args, err := qb.Select(standingSelectColumns...).
		From("current_standings st JOIN teams t ON st.team_id = t.id").
		Where(qb.Eq("st.league_name", leagueName)).
		OrderBy("st.rank").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list current standings query: %w", err)
	}

	var rows []standingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list current standings league=%s: %w", leagueName, err)
	}

	out := make([]standing.TableRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapStandingRow(row))
	}

	return out, nil
}
