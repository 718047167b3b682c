package season

import "context"

// Repository describes season persistence needs from use cases.
type Repository interface {
	// Upsert inserts or refreshes a season and returns its row ID. When
	// s.IsCurrent is set, the league's other seasons lose the flag in the
	// same transaction.
	Upsert(ctx context.Context, s Season) (int64, error)
	GetID(ctx context.Context, leagueID int64, year int) (int64, bool, error)
	// ListByLeague returns a league's seasons, newest first. An empty
	// league name returns every season.
	ListByLeague(ctx context.Context, leagueName string) ([]Season, error)
	// SetCurrent moves the current flag to the given year within a league.
	// The bool reports whether the season row existed.
	SetCurrent(ctx context.Context, leagueID int64, year int) (bool, error)
}
