package apifootball

import (
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
)

func TestNormalizeLeagueSeasons_FlattensSeasonsOfFirstItem(t *testing.T) {
	t.Parallel()

	payload := `{"response":[{
		"league":{"id":39,"name":"Premier League","type":"League","logo":"https://media.example/39.png"},
		"country":{"name":"England","code":"GB"},
		"seasons":[
			{"year":2023,"start":"2023-08-11","end":"2024-05-19","current":false},
			{"year":2024,"start":"2024-08-16","end":"2025-05-25","current":true}
		]
	}]}`

	var env envelope[leagueItem]
	if err := sonic.Unmarshal([]byte(payload), &env); err != nil {
		t.Fatalf("decode payload: %v", err)
	}

	out := normalizeLeagueSeasons(env.Response)
	if out.League.ID != 39 || out.League.Name != "Premier League" || out.League.Country != "England" {
		t.Fatalf("unexpected league: %+v", out.League)
	}
	if len(out.Seasons) != 2 {
		t.Fatalf("expected 2 seasons, got %d", len(out.Seasons))
	}

	current := out.Seasons[1]
	if current.Year != 2024 || !current.IsCurrent {
		t.Fatalf("expected 2024 to be current, got %+v", current)
	}
	wantStart := time.Date(2024, time.August, 16, 0, 0, 0, 0, time.UTC)
	if !current.StartDate.Equal(wantStart) {
		t.Fatalf("expected start %v, got %v", wantStart, current.StartDate)
	}
}

func TestNormalizeLeagueSeasons_EmptyResponse(t *testing.T) {
	t.Parallel()

	out := normalizeLeagueSeasons(nil)
	if out.League.ID != 0 || len(out.Seasons) != 0 {
		t.Fatalf("expected zero value, got %+v", out)
	}
}

func TestNormalizeStandings_ReadsFirstGroupOnly(t *testing.T) {
	t.Parallel()

	payload := `{"response":[{
		"league":{"id":39,"name":"Premier League","season":2024,"standings":[
			[
				{"rank":1,"team":{"id":40,"name":"Liverpool","logo":"https://media.example/40.png"},
				 "points":84,"goalsDiff":45,"form":"WWDWW","description":"Champions League",
				 "all":{"played":38,"win":25,"draw":9,"lose":4,"goals":{"for":86,"against":41}},
				 "home":{"played":19,"win":14,"draw":4,"lose":1,"goals":{"for":46,"against":20}},
				 "away":{"played":19,"win":11,"draw":5,"lose":3,"goals":{"for":40,"against":21}}},
				{"rank":2,"team":{"id":42,"name":"Arsenal","logo":"https://media.example/42.png"},
				 "points":74,"goalsDiff":35,"form":"DWWDW",
				 "all":{"played":38,"win":20,"draw":14,"lose":4,"goals":{"for":69,"against":34}},
				 "home":{"played":19,"win":11,"draw":7,"lose":1,"goals":{"for":36,"against":15}},
				 "away":{"played":19,"win":9,"draw":7,"lose":3,"goals":{"for":33,"against":19}}}
			],
			[
				{"rank":1,"team":{"id":9999,"name":"Group B Team"},"points":1,
				 "all":{"played":1,"win":0,"draw":1,"lose":0,"goals":{"for":0,"against":0}}}
			]
		]}
	}]}`

	var env envelope[standingsItem]
	if err := sonic.Unmarshal([]byte(payload), &env); err != nil {
		t.Fatalf("decode payload: %v", err)
	}

	rows := normalizeStandings(env.Response)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows from the first group, got %d", len(rows))
	}

	top := rows[0]
	if top.TeamID != 40 || top.TeamName != "Liverpool" || top.Rank != 1 {
		t.Fatalf("unexpected top row: %+v", top)
	}
	if top.Points != 84 || top.GoalDifference != 45 {
		t.Fatalf("unexpected points/gd: %+v", top)
	}
	if top.Overall.Played != 38 || top.Overall.Wins != 25 || top.Overall.GoalsAgainst != 41 {
		t.Fatalf("unexpected overall split: %+v", top.Overall)
	}
	if top.Home.Played != 19 || top.Away.Losses != 3 {
		t.Fatalf("unexpected home/away splits: %+v %+v", top.Home, top.Away)
	}

	for _, row := range rows {
		if row.TeamID == 9999 {
			t.Fatalf("second group leaked into the result")
		}
	}
}

func TestNormalizeStandings_EmptyGroups(t *testing.T) {
	t.Parallel()

	items := []standingsItem{{League: standingsLeaguePayload{ID: 39, Season: 2024}}}
	if rows := normalizeStandings(items); len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}

func TestNormalizeFixtures_MapsRowsAndKeepsUTC(t *testing.T) {
	t.Parallel()

	payload := `{"response":[{
		"fixture":{"id":1208021,"referee":"M. Oliver","timezone":"UTC",
			"date":"2025-08-15T19:00:00+00:00",
			"venue":{"name":"Anfield","city":"Liverpool"},
			"status":{"long":"Not Started","short":"NS","elapsed":null}},
		"league":{"id":39,"season":2025,"round":"Regular Season - 1"},
		"teams":{"home":{"id":40,"name":"Liverpool","logo":"https://media.example/40.png"},
			"away":{"id":35,"name":"Bournemouth","logo":"https://media.example/35.png"}},
		"goals":{"home":null,"away":null},
		"score":{"halftime":{"home":null,"away":null},"fulltime":{"home":null,"away":null}}
	},{
		"fixture":{"id":0,"date":"2025-08-16T14:00:00+00:00","status":{"short":"NS"}},
		"league":{"id":39,"season":2025,"round":"Regular Season - 1"},
		"teams":{"home":{"id":33,"name":"Manchester United"},"away":{"id":34,"name":"Newcastle"}},
		"goals":{},
		"score":{}
	}]}`

	var env envelope[fixtureItem]
	if err := sonic.Unmarshal([]byte(payload), &env); err != nil {
		t.Fatalf("decode payload: %v", err)
	}

	rows := normalizeFixtures(env.Response)
	if len(rows) != 1 {
		t.Fatalf("expected the zero-ID fixture to be skipped, got %d rows", len(rows))
	}

	row := rows[0]
	if row.ID != 1208021 || row.Round != "Regular Season - 1" || row.SeasonYear != 2025 {
		t.Fatalf("unexpected row: %+v", row)
	}
	if row.HomeTeam.ID != 40 || row.AwayTeam.Name != "Bournemouth" {
		t.Fatalf("unexpected teams: %+v %+v", row.HomeTeam, row.AwayTeam)
	}
	if row.HomeScore != nil || row.AwayScore != nil {
		t.Fatalf("expected nil scores for an unplayed fixture")
	}

	wantKickoff := time.Date(2025, time.August, 15, 19, 0, 0, 0, time.UTC)
	if !row.Date.Equal(wantKickoff) {
		t.Fatalf("expected kickoff %v, got %v", wantKickoff, row.Date)
	}
	if row.Date.Location() != time.UTC {
		t.Fatalf("expected UTC kickoff, got %v", row.Date.Location())
	}
	if row.Status != "NS" || row.VenueName != "Anfield" {
		t.Fatalf("unexpected status/venue: %+v", row)
	}
}
