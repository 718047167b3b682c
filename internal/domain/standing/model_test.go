package standing

import "testing"

func TestStanding_SplitConsistent(t *testing.T) {
	t.Parallel()

	consistent := Standing{
		Overall: StatBlock{Played: 10, Wins: 6, Draws: 2, Losses: 2, GoalsFor: 20, GoalsAgainst: 9},
		Home:    StatBlock{Played: 5, Wins: 4, Draws: 1, Losses: 0, GoalsFor: 12, GoalsAgainst: 3},
		Away:    StatBlock{Played: 5, Wins: 2, Draws: 1, Losses: 2, GoalsFor: 8, GoalsAgainst: 6},
	}
	if !consistent.SplitConsistent() {
		t.Fatalf("expected splits to be consistent")
	}

	drifted := consistent
	drifted.Home.GoalsFor = 13
	if drifted.SplitConsistent() {
		t.Fatalf("expected drifted splits to be inconsistent")
	}
}
