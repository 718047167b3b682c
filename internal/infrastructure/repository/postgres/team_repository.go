package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"football101/internal/domain/team"
	qb "football101/internal/platform/querybuilder"
)

var teamColumns = []string{
	"id", "name", "code", "country", "founded", "logo_url", "venue_name", "venue_city",
}

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueName string) ([]team.Team, error) {
	builder := qb.Select(teamColumns...).From("teams").OrderBy("name")
	if leagueName != "" {
		// A team belongs to a league when it appears in any of the
		// league's season tables.
		builder = qb.Select(
			"DISTINCT t.id", "t.name", "t.code", "t.country",
			"t.founded", "t.logo_url", "t.venue_name", "t.venue_city",
		).
			From(`teams t
JOIN standings st ON t.id = st.team_id
JOIN seasons s ON st.season_id = s.id
JOIN leagues l ON s.league_id = l.id`).
			Where(qb.Eq("l.name", leagueName)).
			OrderBy("t.name")
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list teams league=%s: %w", leagueName, err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapTeamRow(row))
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	query, args, err := qb.Select(teamColumns...).From("teams").
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team id=%d: %w", teamID, err)
	}

	return mapTeamRow(row), true, nil
}

// upsertTeamsTx refreshes team rows inside a caller-owned transaction.
// Standing and fixture writes share it so foreign keys always resolve.
func upsertTeamsTx(ctx context.Context, tx *sqlx.Tx, teams []team.Team) error {
	for _, t := range teams {
		if t.ID <= 0 {
			continue
		}

		query, args, err := qb.InsertModel("teams", teamToInsertModel(t), `ON CONFLICT (id)
DO UPDATE SET
    name = EXCLUDED.name,
    code = COALESCE(NULLIF(EXCLUDED.code, ''), teams.code),
    country = COALESCE(NULLIF(EXCLUDED.country, ''), teams.country),
    founded = COALESCE(EXCLUDED.founded, teams.founded),
    logo_url = COALESCE(NULLIF(EXCLUDED.logo_url, ''), teams.logo_url),
    venue_name = COALESCE(NULLIF(EXCLUDED.venue_name, ''), teams.venue_name),
    venue_city = COALESCE(NULLIF(EXCLUDED.venue_city, ''), teams.venue_city),
    updated_at = NOW()`)
		if err != nil {
			return fmt.Errorf("build upsert team query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert team id=%d: %w", t.ID, err)
		}
	}

	return nil
}
