package season

import (
	"fmt"
	"time"
)

// Season is one year of a league. Exactly one season per league carries
// IsCurrent at any time.
type Season struct {
	ID         int64
	LeagueID   int64
	Year       int
	StartDate  time.Time
	EndDate    time.Time
	IsCurrent  bool
	LeagueName string
}

func (s Season) Validate() error {
	if s.LeagueID <= 0 {
		return fmt.Errorf("season league id is required")
	}
	if s.Year < 1900 {
		return fmt.Errorf("season year %d is out of range", s.Year)
	}

	return nil
}

// DefaultBounds returns the conventional European season window for a year,
// used when the upstream payload omits the season dates.
func DefaultBounds(year int) (time.Time, time.Time) {
	start := time.Date(year, time.August, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year+1, time.May, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}
