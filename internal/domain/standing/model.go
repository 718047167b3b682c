package standing

// StatBlock holds one split of a team's record (overall, home, or away).
type StatBlock struct {
	Played       int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
}

// Standing is a league table row for one team in one season.
type Standing struct {
	TeamID         int64
	Rank           int
	Points         int
	GoalDifference int
	Form           string
	Description    string
	Overall        StatBlock
	Home           StatBlock
	Away           StatBlock
}

// TableRow is a standing joined with its team for serving.
type TableRow struct {
	Standing
	TeamName string
	TeamLogo string
}

// SplitConsistent reports whether the home and away splits add up to the
// overall record. Upstream payloads occasionally disagree mid-matchday;
// callers log the mismatch but keep the row.
func (s Standing) SplitConsistent() bool {
	sum := func(get func(StatBlock) int) bool {
		return get(s.Home)+get(s.Away) == get(s.Overall)
	}

	return sum(func(b StatBlock) int { return b.Played }) &&
		sum(func(b StatBlock) int { return b.Wins }) &&
		sum(func(b StatBlock) int { return b.Draws }) &&
		sum(func(b StatBlock) int { return b.Losses }) &&
		sum(func(b StatBlock) int { return b.GoalsFor }) &&
		sum(func(b StatBlock) int { return b.GoalsAgainst })
}
