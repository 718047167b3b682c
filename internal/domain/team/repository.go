package team

import "context"

// Repository describes team persistence needs from use cases. Team rows are
// written as a side effect of standing and fixture upserts, so there is no
// standalone write operation here.
type Repository interface {
	// ListByLeague returns the teams that appear in a league's standings,
	// ordered by name. An empty league name returns every team.
	ListByLeague(ctx context.Context, leagueName string) ([]Team, error)
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
}
