package postgres

import "time"

type seasonTableModel struct {
	ID         int64     `db:"id"`
	Year       int       `db:"year"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	IsCurrent  bool      `db:"is_current"`
	LeagueName string    `db:"league_name"`
}

type seasonInsertModel struct {
	LeagueID  int64     `db:"league_id"`
	Year      int       `db:"year"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	IsCurrent bool      `db:"is_current"`
}
