package fixture

import (
	"strings"
	"time"
)

// StatusNotStarted is the short code assigned when the upstream payload
// omits a fixture status.
const StatusNotStarted = "NS"

// Fixture is one match. The ID is the upstream provider's fixture
// identifier, reused as the primary key so repeated ingests update in place.
type Fixture struct {
	ID           int64
	SeasonID     int64
	Round        string
	Date         time.Time
	Timezone     string
	Venue        string
	City         string
	Referee      string
	HomeTeamID   int64
	AwayTeamID   int64
	HomeScore    *int
	AwayScore    *int
	HalftimeHome *int
	HalftimeAway *int
	Status       string
	StatusLong   string
	Elapsed      *int
}

// Row is a fixture joined with both teams for serving.
type Row struct {
	Fixture
	HomeTeamName string
	AwayTeamName string
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusNotStarted
	}
	return status
}

func IsFinishedStatus(status string) bool {
	switch NormalizeStatus(status) {
	case "FT", "AET", "PEN":
		return true
	default:
		return false
	}
}
