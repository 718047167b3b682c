package fixture

import (
	"context"

	"football101/internal/domain/team"
)

// Repository describes fixture persistence needs from use cases.
type Repository interface {
	// UpsertBatch upserts the referenced teams and the fixtures in one
	// transaction. Existing fixtures are updated in place by ID.
	UpsertBatch(ctx context.Context, seasonID int64, rows []Fixture, teams []team.Team) error
	ListBySeason(ctx context.Context, leagueName string, year int, limit int) ([]Row, error)
	// ListUpcoming reads not-yet-kicked-off fixtures of the league's
	// current season, soonest first.
	ListUpcoming(ctx context.Context, leagueName string, limit int) ([]Row, error)
}
