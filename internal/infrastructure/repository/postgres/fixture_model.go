package postgres

import (
	"strings"
	"time"

	"football101/internal/domain/fixture"
)

type fixtureTableModel struct {
	ID           int64     `db:"id"`
	SeasonID     int64     `db:"season_id"`
	Round        string    `db:"round"`
	Date         time.Time `db:"date"`
	Timezone     string    `db:"timezone"`
	Venue        string    `db:"venue"`
	City         string    `db:"city"`
	Referee      string    `db:"referee"`
	HomeTeamID   int64     `db:"home_team_id"`
	AwayTeamID   int64     `db:"away_team_id"`
	HomeTeamName string    `db:"home_team_name"`
	AwayTeamName string    `db:"away_team_name"`
	HomeScore    *int      `db:"home_score"`
	AwayScore    *int      `db:"away_score"`
	HalftimeHome *int      `db:"halftime_home"`
	HalftimeAway *int      `db:"halftime_away"`
	Status       string    `db:"status"`
	StatusLong   string    `db:"status_long"`
	Elapsed      *int      `db:"elapsed"`
}

type fixtureInsertModel struct {
	ID           int64     `db:"id"`
	SeasonID     int64     `db:"season_id"`
	Round        string    `db:"round"`
	Date         time.Time `db:"date"`
	Timezone     string    `db:"timezone"`
	Venue        string    `db:"venue"`
	City         string    `db:"city"`
	Referee      string    `db:"referee"`
	HomeTeamID   int64     `db:"home_team_id"`
	AwayTeamID   int64     `db:"away_team_id"`
	HomeScore    *int      `db:"home_score"`
	AwayScore    *int      `db:"away_score"`
	HalftimeHome *int      `db:"halftime_home"`
	HalftimeAway *int      `db:"halftime_away"`
	Status       string    `db:"status"`
	StatusLong   string    `db:"status_long"`
	Elapsed      *int      `db:"elapsed"`
}

func fixtureToInsertModel(seasonID int64, f fixture.Fixture) fixtureInsertModel {
	return fixtureInsertModel{
		ID:           f.ID,
		SeasonID:     seasonID,
		Round:        strings.TrimSpace(f.Round),
		Date:         f.Date.UTC(),
		Timezone:     strings.TrimSpace(f.Timezone),
		Venue:        strings.TrimSpace(f.Venue),
		City:         strings.TrimSpace(f.City),
		Referee:      strings.TrimSpace(f.Referee),
		HomeTeamID:   f.HomeTeamID,
		AwayTeamID:   f.AwayTeamID,
		HomeScore:    f.HomeScore,
		AwayScore:    f.AwayScore,
		HalftimeHome: f.HalftimeHome,
		HalftimeAway: f.HalftimeAway,
		Status:       fixture.NormalizeStatus(f.Status),
		StatusLong:   strings.TrimSpace(f.StatusLong),
		Elapsed:      f.Elapsed,
	}
}

func mapFixtureRow(row fixtureTableModel) fixture.Row {
	return fixture.Row{
		Fixture: fixture.Fixture{
			ID:           row.ID,
			SeasonID:     row.SeasonID,
			Round:        row.Round,
			Date:         row.Date.UTC(),
			Timezone:     row.Timezone,
			Venue:        row.Venue,
			City:         row.City,
			Referee:      row.Referee,
			HomeTeamID:   row.HomeTeamID,
			AwayTeamID:   row.AwayTeamID,
			HomeScore:    row.HomeScore,
			AwayScore:    row.AwayScore,
			HalftimeHome: row.HalftimeHome,
			HalftimeAway: row.HalftimeAway,
			Status:       row.Status,
			StatusLong:   row.StatusLong,
			Elapsed:      row.Elapsed,
		},
		HomeTeamName: row.HomeTeamName,
		AwayTeamName: row.AwayTeamName,
	}
}
