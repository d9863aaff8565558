package entity

import (
	"time"
)

// Movie is read-only as far as ticketing is concerned; rows are seeded at
// startup.
type Movie struct {
	Base
	Title             string    `db:"title"`
	Description       *string   `db:"description"`
	DurationInMinutes int       `db:"duration_in_minutes"`
	Genre             *string   `db:"genre"`
	Rating            *string   `db:"rating"`
	ReleaseDate       time.Time `db:"release_date"`
}
