package entity

import (
	"time"

	"github.com/google/uuid"
)

type TicketStatus string

const (
	TicketStatusActive    TicketStatus = "Active"
	TicketStatusCancelled TicketStatus = "Cancelled"
	TicketStatusUsed      TicketStatus = "Used"
)

// Ticket holds one seat of a showtime. Price is snapshotted from the
// showtime at purchase time and never re-read.
type Ticket struct {
	Base
	ShowtimeID    uuid.UUID    `db:"showtime_id"`
	CustomerName  string       `db:"customer_name"`
	CustomerEmail string       `db:"customer_email"`
	PhoneNumber   string       `db:"phone_number"`
	SeatNumber    int          `db:"seat_number"`
	Price         float64      `db:"price"`
	PurchaseDate  time.Time    `db:"purchase_date"`
	Status        TicketStatus `db:"status"`
}
