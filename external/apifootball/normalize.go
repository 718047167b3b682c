package apifootball

import (
	"time"

	"football101/internal/usecase"
)

const dateOnlyLayout = "2006-01-02"

// normalizeLeagueSeasons flattens the /leagues payload for one league. The
// request filters by league ID, so only the first item carries data.
func normalizeLeagueSeasons(items []leagueItem) usecase.ExternalLeagueSeasons {
	if len(items) == 0 {
		return usecase.ExternalLeagueSeasons{}
	}

	item := items[0]
	out := usecase.ExternalLeagueSeasons{
		League: usecase.ExternalLeague{
			ID:      item.League.ID,
			Name:    item.League.Name,
			Type:    item.League.Type,
			Country: item.Country.Name,
			LogoURL: item.League.Logo,
		},
		Seasons: make([]usecase.ExternalSeason, 0, len(item.Seasons)),
	}

	for _, s := range item.Seasons {
		if s.Year <= 0 {
			continue
		}
		out.Seasons = append(out.Seasons, usecase.ExternalSeason{
			Year:      s.Year,
			StartDate: parseDateOnly(s.Start),
			EndDate:   parseDateOnly(s.End),
			IsCurrent: s.Current,
		})
	}

	return out
}

// normalizeStandings flattens the /standings payload. The feed nests the
// table as a list of groups; league standings carry a single group, so only
// the first group of the first item is read.
func normalizeStandings(items []standingsItem) []usecase.ExternalStanding {
	if len(items) == 0 {
		return nil
	}
	groups := items[0].League.Standings
	if len(groups) == 0 {
		return nil
	}

	entries := groups[0]
	out := make([]usecase.ExternalStanding, 0, len(entries))
	for _, e := range entries {
		if e.Team.ID <= 0 {
			continue
		}
		out = append(out, usecase.ExternalStanding{
			TeamID:         e.Team.ID,
			TeamName:       e.Team.Name,
			TeamLogo:       e.Team.Logo,
			Rank:           e.Rank,
			Points:         e.Points,
			GoalDifference: e.GoalsDiff,
			Form:           e.Form,
			Description:    e.Description,
			Overall:        normalizeSplit(e.All),
			Home:           normalizeSplit(e.Home),
			Away:           normalizeSplit(e.Away),
		})
	}

	return out
}

func normalizeSplit(r splitRecord) usecase.ExternalStatBlock {
	return usecase.ExternalStatBlock{
		Played:       r.Played,
		Wins:         r.Win,
		Draws:        r.Draw,
		Losses:       r.Lose,
		GoalsFor:     r.Goals.For,
		GoalsAgainst: r.Goals.Against,
	}
}

// normalizeFixtures flattens the /fixtures payload. Kickoff times stay in
// UTC; the feed's timezone field is recorded on the row but not applied.
func normalizeFixtures(items []fixtureItem) []usecase.ExternalFixture {
	out := make([]usecase.ExternalFixture, 0, len(items))
	for _, item := range items {
		if item.Fixture.ID <= 0 {
			continue
		}
		if item.Teams.Home.ID <= 0 || item.Teams.Away.ID <= 0 {
			continue
		}

		out = append(out, usecase.ExternalFixture{
			ID:         item.Fixture.ID,
			Round:      item.League.Round,
			Date:       parseKickoff(item.Fixture.Date),
			Timezone:   item.Fixture.Timezone,
			Referee:    item.Fixture.Referee,
			VenueName:  item.Fixture.Venue.Name,
			VenueCity:  item.Fixture.Venue.City,
			Status:     item.Fixture.Status.Short,
			StatusLong: item.Fixture.Status.Long,
			Elapsed:    item.Fixture.Status.Elapsed,
			SeasonYear: item.League.Season,
			HomeTeam: usecase.ExternalTeam{
				ID:      item.Teams.Home.ID,
				Name:    item.Teams.Home.Name,
				LogoURL: item.Teams.Home.Logo,
			},
			AwayTeam: usecase.ExternalTeam{
				ID:      item.Teams.Away.ID,
				Name:    item.Teams.Away.Name,
				LogoURL: item.Teams.Away.Logo,
			},
			HomeScore:    item.Goals.Home,
			AwayScore:    item.Goals.Away,
			HalftimeHome: item.Score.Halftime.Home,
			HalftimeAway: item.Score.Halftime.Away,
		})
	}

	return out
}

func parseDateOnly(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	parsed, err := time.ParseInLocation(dateOnlyLayout, value, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func parseKickoff(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return parsed.UTC()
}
