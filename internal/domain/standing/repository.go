package standing

import (
	"context"

	"football101/internal/domain/team"
)

// Repository describes standing persistence needs from use cases.
type Repository interface {
	// ReplaceForSeason upserts the referenced teams and rewrites the
	// season's table rows in one transaction, so readers never observe a
	// partially populated table.
	ReplaceForSeason(ctx context.Context, seasonID int64, rows []Standing, teams []team.Team) error
	ListBySeason(ctx context.Context, leagueName string, year int) ([]TableRow, error)
	// ListCurrent reads the table of the league's current season.
	ListCurrent(ctx context.Context, leagueName string) ([]TableRow, error)
}
