package postgres

import (
	"strings"

	"football101/internal/domain/team"
)

type teamTableModel struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	Code      string `db:"code"`
	Country   string `db:"country"`
	Founded   *int   `db:"founded"`
	LogoURL   string `db:"logo_url"`
	VenueName string `db:"venue_name"`
	VenueCity string `db:"venue_city"`
}

type teamInsertModel struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	Code      string `db:"code"`
	Country   string `db:"country"`
	Founded   *int   `db:"founded"`
	LogoURL   string `db:"logo_url"`
	VenueName string `db:"venue_name"`
	VenueCity string `db:"venue_city"`
}

func mapTeamRow(row teamTableModel) team.Team {
	return team.Team{
		ID:        row.ID,
		Name:      row.Name,
		Code:      row.Code,
		Country:   row.Country,
		Founded:   row.Founded,
		LogoURL:   row.LogoURL,
		VenueName: row.VenueName,
		VenueCity: row.VenueCity,
	}
}

func teamToInsertModel(t team.Team) teamInsertModel {
	return teamInsertModel{
		ID:        t.ID,
		Name:      strings.TrimSpace(t.Name),
		Code:      strings.TrimSpace(t.Code),
		Country:   strings.TrimSpace(t.Country),
		Founded:   t.Founded,
		LogoURL:   strings.TrimSpace(t.LogoURL),
		VenueName: strings.TrimSpace(t.VenueName),
		VenueCity: strings.TrimSpace(t.VenueCity),
	}
}
