package league

import "fmt"

// League is a football competition tracked by the pipeline. The ID is the
// upstream provider's league identifier and is stable across seasons.
type League struct {
	ID      int64
	Name    string
	Type    string
	Country string
	LogoURL string
}

func (l League) Validate() error {
	if l.ID <= 0 {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.Country == "" {
		return fmt.Errorf("league country is required")
	}

	return nil
}
