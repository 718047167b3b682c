package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"football101/internal/domain/season"
	qb "football101/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) Upsert(ctx context.Context, s season.Season) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx upsert season: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Only one season per league carries the current flag, so claiming it
	// demotes the siblings inside the same transaction.
	if s.IsCurrent {
		clearQuery, clearArgs, err := qb.Update("seasons").
			Set("is_current", false).
			SetExpr("updated_at", "NOW()").
			Where(
				qb.Eq("league_id", s.LeagueID),
				qb.Eq("is_current", true),
				qb.Expr("year <> ?", s.Year),
			).
			ToSQL()
		if err != nil {
			return 0, fmt.Errorf("build demote seasons query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
			return 0, fmt.Errorf("demote current seasons league_id=%d: %w", s.LeagueID, err)
		}
	}

	insertModel := seasonInsertModel{
		LeagueID:  s.LeagueID,
		Year:      s.Year,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		IsCurrent: s.IsCurrent,
	}
	query, args, err := qb.InsertModel("seasons", insertModel, `ON CONFLICT (league_id, year)
DO UPDATE SET
    start_date = EXCLUDED.start_date,
    end_date = EXCLUDED.end_date,
    is_current = EXCLUDED.is_current,
    updated_at = NOW()
RETURNING id`)
	if err != nil {
		return 0, fmt.Errorf("build upsert season query: %w", err)
	}

	var seasonID int64
	if err := tx.GetContext(ctx, &seasonID, query, args...); err != nil {
		return 0, fmt.Errorf("upsert season league_id=%d year=%d: %w", s.LeagueID, s.Year, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit upsert season tx: %w", err)
	}
	return seasonID, nil
}

func (r *SeasonRepository) GetID(ctx context.Context, leagueID int64, year int) (int64, bool, error) {
	query, args, err := qb.Select("id").From("seasons").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("year", year),
		).
		ToSQL()
	if err != nil {
		return 0, false, fmt.Errorf("build get season id query: %w", err)
	}

	var seasonID int64
	if err := r.db.GetContext(ctx, &seasonID, query, args...); err != nil {
		if isNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("get season id league_id=%d year=%d: %w", leagueID, year, err)
	}

	return seasonID, true, nil
}

func (r *SeasonRepository) ListByLeague(ctx context.Context, leagueName string) ([]season.Season, error) {
	builder := qb.Select(
		"s.id",
		"s.year",
		"s.start_date",
		"s.end_date",
		"s.is_current",
		"l.name AS league_name",
	).
		From("seasons s JOIN leagues l ON s.league_id = l.id").
		OrderBy("s.year DESC")
	if leagueName != "" {
		builder = builder.Where(qb.Eq("l.name", leagueName))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list seasons league=%s: %w", leagueName, err)
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, season.Season{
			ID:         row.ID,
			Year:       row.Year,
			StartDate:  row.StartDate,
			EndDate:    row.EndDate,
			IsCurrent:  row.IsCurrent,
			LeagueName: row.LeagueName,
		})
	}

	return out, nil
}

func (r *SeasonRepository) SetCurrent(ctx context.Context, leagueID int64, year int) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx set current season: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.Update("seasons").
		Set("is_current", false).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("is_current", true),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build demote seasons query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return false, fmt.Errorf("demote current seasons league_id=%d: %w", leagueID, err)
	}

	setQuery, setArgs, err := qb.Update("seasons").
		Set("is_current", true).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("year", year),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build promote season query: %w", err)
	}
	result, err := tx.ExecContext(ctx, setQuery, setArgs...)
	if err != nil {
		return false, fmt.Errorf("promote season league_id=%d year=%d: %w", leagueID, year, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read promote season result: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit set current season tx: %w", err)
	}
	return true, nil
}
