package postgres

import (
	"testing"
	"time"

	"football101/internal/domain/fixture"
	"football101/internal/domain/standing"
)

func TestFixtureToInsertModel_DefaultsStatusAndKeepsUTC(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2025, time.August, 15, 21, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	row := fixtureToInsertModel(7, fixture.Fixture{
		ID:         1208021,
		Round:      " Regular Season - 1 ",
		Date:       kickoff,
		HomeTeamID: 40,
		AwayTeamID: 35,
	})

	if row.Status != fixture.StatusNotStarted {
		t.Fatalf("expected default status %q, got %q", fixture.StatusNotStarted, row.Status)
	}
	if row.Round != "Regular Season - 1" {
		t.Fatalf("expected trimmed round, got %q", row.Round)
	}
	if row.SeasonID != 7 {
		t.Fatalf("expected season id 7, got %d", row.SeasonID)
	}
	if row.Date.Location() != time.UTC {
		t.Fatalf("expected UTC date, got %v", row.Date.Location())
	}
	if !row.Date.Equal(kickoff) {
		t.Fatalf("expected same instant after UTC conversion")
	}
}

func TestStandingModelMapping_RoundTripsSplits(t *testing.T) {
	t.Parallel()

	in := standing.Standing{
		TeamID:         40,
		Rank:           1,
		Points:         84,
		GoalDifference: 45,
		Form:           "WWDWW",
		Description:    "Champions League",
		Overall:        standing.StatBlock{Played: 38, Wins: 25, Draws: 9, Losses: 4, GoalsFor: 86, GoalsAgainst: 41},
		Home:           standing.StatBlock{Played: 19, Wins: 14, Draws: 4, Losses: 1, GoalsFor: 46, GoalsAgainst: 20},
		Away:           standing.StatBlock{Played: 19, Wins: 11, Draws: 5, Losses: 3, GoalsFor: 40, GoalsAgainst: 21},
	}

	insert := standingToInsertModel(7, in)
	if insert.SeasonID != 7 || insert.TeamID != 40 {
		t.Fatalf("unexpected insert keys: %+v", insert)
	}
	if insert.Played != 38 || insert.HomePlayed != 19 || insert.AwayGoalsAgainst != 21 {
		t.Fatalf("unexpected split flattening: %+v", insert)
	}

	out := mapStandingRow(standingTableModel{
		Rank:             insert.Rank,
		TeamID:           insert.TeamID,
		TeamName:         "Liverpool",
		TeamLogo:         "https://media.example/40.png",
		Points:           insert.Points,
		Played:           insert.Played,
		Wins:             insert.Wins,
		Draws:            insert.Draws,
		Losses:           insert.Losses,
		GoalsFor:         insert.GoalsFor,
		GoalsAgainst:     insert.GoalsAgainst,
		GoalDifference:   insert.GoalDifference,
		Form:             insert.Form,
		Description:      insert.Description,
		HomePlayed:       insert.HomePlayed,
		HomeWins:         insert.HomeWins,
		HomeDraws:        insert.HomeDraws,
		HomeLosses:       insert.HomeLosses,
		HomeGoalsFor:     insert.HomeGoalsFor,
		HomeGoalsAgainst: insert.HomeGoalsAgainst,
		AwayPlayed:       insert.AwayPlayed,
		AwayWins:         insert.AwayWins,
		AwayDraws:        insert.AwayDraws,
		AwayLosses:       insert.AwayLosses,
		AwayGoalsFor:     insert.AwayGoalsFor,
		AwayGoalsAgainst: insert.AwayGoalsAgainst,
	})

	if out.Standing != in {
		t.Fatalf("standing did not round trip:\n got %+v\nwant %+v", out.Standing, in)
	}
	if out.TeamName != "Liverpool" {
		t.Fatalf("unexpected team name: %q", out.TeamName)
	}
	if !out.SplitConsistent() {
		t.Fatalf("expected consistent splits")
	}
}
