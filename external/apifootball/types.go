package apifootball

// Wire types for the API-Football v3 payloads this client consumes. Every
// endpoint wraps its items in a "response" array.

type envelope[T any] struct {
	Response []T `json:"response"`
}

type leagueItem struct {
	League  leaguePayload   `json:"league"`
	Country countryPayload  `json:"country"`
	Seasons []seasonPayload `json:"seasons"`
}

type leaguePayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Logo string `json:"logo"`
}

type countryPayload struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type seasonPayload struct {
	Year    int    `json:"year"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Current bool   `json:"current"`
}

type standingsItem struct {
	League standingsLeaguePayload `json:"league"`
}

type standingsLeaguePayload struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	Season    int               `json:"season"`
	Standings [][]standingEntry `json:"standings"`
}

type standingEntry struct {
	Rank        int         `json:"rank"`
	Team        teamPayload `json:"team"`
	Points      int         `json:"points"`
	GoalsDiff   int         `json:"goalsDiff"`
	Group       string      `json:"group"`
	Form        string      `json:"form"`
	Description string      `json:"description"`
	All         splitRecord `json:"all"`
	Home        splitRecord `json:"home"`
	Away        splitRecord `json:"away"`
}

type teamPayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type splitRecord struct {
	Played int          `json:"played"`
	Win    int          `json:"win"`
	Draw   int          `json:"draw"`
	Lose   int          `json:"lose"`
	Goals  goalsPayload `json:"goals"`
}

type goalsPayload struct {
	For     int `json:"for"`
	Against int `json:"against"`
}

type fixtureItem struct {
	Fixture fixturePayload       `json:"fixture"`
	League  fixtureLeaguePayload `json:"league"`
	Teams   fixtureTeamsPayload  `json:"teams"`
	Goals   scorePairPayload     `json:"goals"`
	Score   fixtureScorePayload  `json:"score"`
}

type fixturePayload struct {
	ID       int64                `json:"id"`
	Referee  string               `json:"referee"`
	Timezone string               `json:"timezone"`
	Date     string               `json:"date"`
	Venue    venuePayload         `json:"venue"`
	Status   fixtureStatusPayload `json:"status"`
}

type venuePayload struct {
	Name string `json:"name"`
	City string `json:"city"`
}

type fixtureStatusPayload struct {
	Long    string `json:"long"`
	Short   string `json:"short"`
	Elapsed *int   `json:"elapsed"`
}

type fixtureLeaguePayload struct {
	ID     int64  `json:"id"`
	Season int    `json:"season"`
	Round  string `json:"round"`
}

type fixtureTeamsPayload struct {
	Home teamPayload `json:"home"`
	Away teamPayload `json:"away"`
}

type scorePairPayload struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type fixtureScorePayload struct {
	Halftime scorePairPayload `json:"halftime"`
	Fulltime scorePairPayload `json:"fulltime"`
}
