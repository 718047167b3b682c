package postgres

import (
	"strings"

	"football101/internal/domain/standing"
)

type standingTableModel struct {
	Rank             int    `db:"rank"`
	TeamID           int64  `db:"team_id"`
	TeamName         string `db:"team_name"`
	TeamLogo         string `db:"team_logo"`
	Points           int    `db:"points"`
	Played           int    `db:"played"`
	Wins             int    `db:"wins"`
	Draws            int    `db:"draws"`
	Losses           int    `db:"losses"`
	GoalsFor         int    `db:"goals_for"`
	GoalsAgainst     int    `db:"goals_against"`
	GoalDifference   int    `db:"goal_difference"`
	Form             string `db:"form"`
	Description      string `db:"description"`
	HomePlayed       int    `db:"home_played"`
	HomeWins         int    `db:"home_wins"`
	HomeDraws        int    `db:"home_draws"`
	HomeLosses       int    `db:"home_losses"`
	HomeGoalsFor     int    `db:"home_goals_for"`
	HomeGoalsAgainst int    `db:"home_goals_against"`
	AwayPlayed       int    `db:"away_played"`
	AwayWins         int    `db:"away_wins"`
	AwayDraws        int    `db:"away_draws"`
	AwayLosses       int    `db:"away_losses"`
	AwayGoalsFor     int    `db:"away_goals_for"`
	AwayGoalsAgainst int    `db:"away_goals_against"`
}

type standingInsertModel struct {
	SeasonID         int64  `db:"season_id"`
	TeamID           int64  `db:"team_id"`
	Rank             int    `db:"rank"`
	Points           int    `db:"points"`
	Played           int    `db:"played"`
	Wins             int    `db:"wins"`
	Draws            int    `db:"draws"`
	Losses           int    `db:"losses"`
	GoalsFor         int    `db:"goals_for"`
	GoalsAgainst     int    `db:"goals_against"`
	GoalDifference   int    `db:"goal_difference"`
	Form             string `db:"form"`
	Description      string `db:"description"`
	HomePlayed       int    `db:"home_played"`
	HomeWins         int    `db:"home_wins"`
	HomeDraws        int    `db:"home_draws"`
	HomeLosses       int    `db:"home_losses"`
	HomeGoalsFor     int    `db:"home_goals_for"`
	HomeGoalsAgainst int    `db:"home_goals_against"`
	AwayPlayed       int    `db:"away_played"`
	AwayWins         int    `db:"away_wins"`
	AwayDraws        int    `db:"away_draws"`
	AwayLosses       int    `db:"away_losses"`
	AwayGoalsFor     int    `db:"away_goals_for"`
	AwayGoalsAgainst int    `db:"away_goals_against"`
}

func standingToInsertModel(seasonID int64, s standing.Standing) standingInsertModel {
	return standingInsertModel{
		SeasonID:         seasonID,
		TeamID:           s.TeamID,
		Rank:             s.Rank,
		Points:           s.Points,
		Played:           s.Overall.Played,
		Wins:             s.Overall.Wins,
		Draws:            s.Overall.Draws,
		Losses:           s.Overall.Losses,
		GoalsFor:         s.Overall.GoalsFor,
		GoalsAgainst:     s.Overall.GoalsAgainst,
		GoalDifference:   s.GoalDifference,
		Form:             strings.TrimSpace(s.Form),
		Description:      strings.TrimSpace(s.Description),
		HomePlayed:       s.Home.Played,
		HomeWins:         s.Home.Wins,
		HomeDraws:        s.Home.Draws,
		HomeLosses:       s.Home.Losses,
		HomeGoalsFor:     s.Home.GoalsFor,
		HomeGoalsAgainst: s.Home.GoalsAgainst,
		AwayPlayed:       s.Away.Played,
		AwayWins:         s.Away.Wins,
		AwayDraws:        s.Away.Draws,
		AwayLosses:       s.Away.Losses,
		AwayGoalsFor:     s.Away.GoalsFor,
		AwayGoalsAgainst: s.Away.GoalsAgainst,
	}
}

func mapStandingRow(row standingTableModel) standing.TableRow {
	return standing.TableRow{
		Standing: standing.Standing{
			TeamID:         row.TeamID,
			Rank:           row.Rank,
			Points:         row.Points,
			GoalDifference: row.GoalDifference,
			Form:           row.Form,
			Description:    row.Description,
			Overall: standing.StatBlock{
				Played:       row.Played,
				Wins:         row.Wins,
				Draws:        row.Draws,
				Losses:       row.Losses,
				GoalsFor:     row.GoalsFor,
				GoalsAgainst: row.GoalsAgainst,
			},
			Home: standing.StatBlock{
				Played:       row.HomePlayed,
				Wins:         row.HomeWins,
				Draws:        row.HomeDraws,
				Losses:       row.HomeLosses,
				GoalsFor:     row.HomeGoalsFor,
				GoalsAgainst: row.HomeGoalsAgainst,
			},
			Away: standing.StatBlock{
				Played:       row.AwayPlayed,
				Wins:         row.AwayWins,
				Draws:        row.AwayDraws,
				Losses:       row.AwayLosses,
				GoalsFor:     row.AwayGoalsFor,
				GoalsAgainst: row.AwayGoalsAgainst,
			},
		},
		TeamName: row.TeamName,
		TeamLogo: row.TeamLogo,
	}
}
