package entity

import (
	"time"

	"github.com/google/uuid"
)

// Showtime sells TotalSeats seats at a fixed Price. AvailableSeats is only
// adjusted by the ticket service, inside its transactions; the invariant is
// available_seats = total_seats - count(active tickets).
type Showtime struct {
	Base
	MovieID        uuid.UUID `db:"movie_id"`
	StartTime      time.Time `db:"start_time"`
	EndTime        time.Time `db:"end_time"`
	Hall           string    `db:"hall"`
	Price          float64   `db:"price"`
	TotalSeats     int       `db:"total_seats"`
	AvailableSeats int       `db:"available_seats"`
}
