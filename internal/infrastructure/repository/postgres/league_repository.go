package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"football101/internal/domain/league"
	qb "football101/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) Upsert(ctx context.Context, l league.League) error {
	insertModel := leagueInsertModel{
		ID:      l.ID,
		Name:    strings.TrimSpace(l.Name),
		Type:    strings.TrimSpace(l.Type),
		Country: strings.TrimSpace(l.Country),
		LogoURL: strings.TrimSpace(l.LogoURL),
	}

	query, args, err := qb.InsertModel("leagues", insertModel, `ON CONFLICT (id)
DO UPDATE SET
    name = EXCLUDED.name,
    type = EXCLUDED.type,
    country = EXCLUDED.country,
    logo_url = EXCLUDED.logo_url,
    updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("build upsert league query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert league id=%d: %w", l.ID, err)
	}

	return nil
}

func (r *LeagueRepository) GetByName(ctx context.Context, name string) (league.League, bool, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(qb.Eq("name", name)).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league name=%s: %w", name, err)
	}

	return mapLeagueRow(row), true, nil
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	query, args, err := qb.Select("*").From("leagues").
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list leagues query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapLeagueRow(row))
	}

	return out, nil
}

func mapLeagueRow(row leagueTableModel) league.League {
	return league.League{
		ID:      row.ID,
		Name:    row.Name,
		Type:    row.Type,
		Country: row.Country,
		LogoURL: row.LogoURL,
	}
}
