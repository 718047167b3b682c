package team

import "fmt"

// Team is a football club referenced by standings and fixtures. The ID is
// the upstream provider's team identifier.
type Team struct {
	ID        int64
	Name      string
	Code      string
	Country   string
	Founded   *int
	LogoURL   string
	VenueName string
	VenueCity string
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
