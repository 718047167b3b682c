package usecase

import (
	"context"
	"time"
)

// SportDataProvider is the upstream football data feed. Implementations
// return empty results, not errors, when the feed responds with a non-2xx
// status or an undecodable payload; transport construction failures and
// context cancellation still surface as errors.
type SportDataProvider interface {
	LeagueSeasons(ctx context.Context, leagueID int64) (ExternalLeagueSeasons, error)
	Standings(ctx context.Context, leagueID int64, year int) ([]ExternalStanding, error)
	UpcomingFixtures(ctx context.Context, leagueID int64, count int) ([]ExternalFixture, error)
}

type ExternalLeague struct {
	ID      int64
	Name    string
	Type    string
	Country string
	LogoURL string
}

type ExternalSeason struct {
	Year      int
	StartDate time.Time
	EndDate   time.Time
	IsCurrent bool
}

// ExternalLeagueSeasons is one league with every season the feed knows for it.
type ExternalLeagueSeasons struct {
	League  ExternalLeague
	Seasons []ExternalSeason
}

type ExternalStatBlock struct {
	Played       int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
}

type ExternalStanding struct {
	TeamID         int64
	TeamName       string
	TeamLogo       string
	Rank           int
	Points         int
	GoalDifference int
	Form           string
	Description    string
	Overall        ExternalStatBlock
	Home           ExternalStatBlock
	Away           ExternalStatBlock
}

type ExternalTeam struct {
	ID      int64
	Name    string
	LogoURL string
}

type ExternalFixture struct {
	ID           int64
	Round        string
	Date         time.Time
	Timezone     string
	Referee      string
	VenueName    string
	VenueCity    string
	Status       string
	StatusLong   string
	Elapsed      *int
	SeasonYear   int
	HomeTeam     ExternalTeam
	AwayTeam     ExternalTeam
	HomeScore    *int
	AwayScore    *int
	HalftimeHome *int
	HalftimeAway *int
}
