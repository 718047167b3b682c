package httpapi

import (
	"time"

	"football101/internal/domain/fixture"
	"football101/internal/domain/season"
	"football101/internal/domain/standing"
	"football101/internal/domain/team"
)

const dateOnlyLayout = "2006-01-02"

type seasonDTO struct {
	ID         int64  `json:"id"`
	Year       int    `json:"year"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	IsCurrent  bool   `json:"is_current"`
	LeagueName string `json:"league_name"`
}

func seasonsToDTO(items []season.Season) []seasonDTO {
	out := make([]seasonDTO, 0, len(items))
	for _, item := range items {
		out = append(out, seasonDTO{
			ID:         item.ID,
			Year:       item.Year,
			StartDate:  item.StartDate.Format(dateOnlyLayout),
			EndDate:    item.EndDate.Format(dateOnlyLayout),
			IsCurrent:  item.IsCurrent,
			LeagueName: item.LeagueName,
		})
	}
	return out
}

type standingDTO struct {
	Rank             int    `json:"rank"`
	ID               int64  `json:"id"`
	Team             string `json:"team"`
	LogoURL          string `json:"logo_url"`
	Points           int    `json:"points"`
	Played           int    `json:"played"`
	Wins             int    `json:"wins"`
	Draws            int    `json:"draws"`
	Losses           int    `json:"losses"`
	GoalsFor         int    `json:"goals_for"`
	GoalsAgainst     int    `json:"goals_against"`
	GoalDifference   int    `json:"goal_difference"`
	Form             string `json:"form"`
	HomePlayed       int    `json:"home_played"`
	HomeWins         int    `json:"home_wins"`
	HomeDraws        int    `json:"home_draws"`
	HomeLosses       int    `json:"home_losses"`
	HomeGoalsFor     int    `json:"home_goals_for"`
	HomeGoalsAgainst int    `json:"home_goals_against"`
	AwayPlayed       int    `json:"away_played"`
	AwayWins         int    `json:"away_wins"`
	AwayDraws        int    `json:"away_draws"`
	AwayLosses       int    `json:"away_losses"`
	AwayGoalsFor     int    `json:"away_goals_for"`
	AwayGoalsAgainst int    `json:"away_goals_against"`
}

func standingsToDTO(rows []standing.TableRow) []standingDTO {
	out := make([]standingDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingDTO{
			Rank:             row.Rank,
			ID:               row.TeamID,
			Team:             row.TeamName,
			LogoURL:          row.TeamLogo,
			Points:           row.Points,
			Played:           row.Overall.Played,
			Wins:             row.Overall.Wins,
			Draws:            row.Overall.Draws,
			Losses:           row.Overall.Losses,
			GoalsFor:         row.Overall.GoalsFor,
			GoalsAgainst:     row.Overall.GoalsAgainst,
			GoalDifference:   row.GoalDifference,
			Form:             row.Form,
			HomePlayed:       row.Home.Played,
			HomeWins:         row.Home.Wins,
			HomeDraws:        row.Home.Draws,
			HomeLosses:       row.Home.Losses,
			HomeGoalsFor:     row.Home.GoalsFor,
			HomeGoalsAgainst: row.Home.GoalsAgainst,
			AwayPlayed:       row.Away.Played,
			AwayWins:         row.Away.Wins,
			AwayDraws:        row.Away.Draws,
			AwayLosses:       row.Away.Losses,
			AwayGoalsFor:     row.Away.GoalsFor,
			AwayGoalsAgainst: row.Away.GoalsAgainst,
		})
	}
	return out
}

type fixtureDTO struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Round     string `json:"round"`
	Venue     string `json:"venue"`
	City      string `json:"city"`
	HomeID    int64  `json:"home_id"`
	HomeName  string `json:"home_name"`
	AwayID    int64  `json:"away_id"`
	AwayName  string `json:"away_name"`
	HomeScore *int   `json:"home_score"`
	AwayScore *int   `json:"away_score"`
	Status    string `json:"status"`
}

func fixturesToDTO(rows []fixture.Row) []fixtureDTO {
	out := make([]fixtureDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, fixtureDTO{
			ID:        row.ID,
			Date:      row.Date.UTC().Format(time.RFC3339),
			Round:     row.Round,
			Venue:     row.Venue,
			City:      row.City,
			HomeID:    row.HomeTeamID,
			HomeName:  row.HomeTeamName,
			AwayID:    row.AwayTeamID,
			AwayName:  row.AwayTeamName,
			HomeScore: row.HomeScore,
			AwayScore: row.AwayScore,
			Status:    row.Status,
		})
	}
	return out
}

type teamDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	Country   string `json:"country"`
	Founded   *int   `json:"founded"`
	LogoURL   string `json:"logo_url"`
	VenueName string `json:"venue_name"`
	VenueCity string `json:"venue_city"`
}

func teamToDTO(item team.Team) teamDTO {
	return teamDTO{
		ID:        item.ID,
		Name:      item.Name,
		Code:      item.Code,
		Country:   item.Country,
		Founded:   item.Founded,
		LogoURL:   item.LogoURL,
		VenueName: item.VenueName,
		VenueCity: item.VenueCity,
	}
}

func teamsToDTO(items []team.Team) []teamDTO {
	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamToDTO(item))
	}
	return out
}
