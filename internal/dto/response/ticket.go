package response

import (
	"time"

	"cinema-tickets/internal/data/entity"
)

type TicketResponse struct {
	ID            string    `json:"id"`
	ShowtimeID    string    `json:"showtimeId"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	PhoneNumber   string    `json:"phoneNumber"`
	SeatNumber    int       `json:"seatNumber"`
	Price         float64   `json:"price"`
	PurchaseDate  time.Time `json:"purchaseDate"`
	Status        string    `json:"status"`

	// Display enrichment joined from the showtime and its movie.
	MovieTitle        string    `json:"movieTitle"`
	ShowtimeStartTime time.Time `json:"showtimeStartTime"`
	Hall              string    `json:"hall"`
}

// TicketToResponse enriches a ticket with its showtime and movie. Either may
// be nil; the enrichment fields stay zero then.
func TicketToResponse(ticket *entity.Ticket, showtime *entity.Showtime, movie *entity.Movie) TicketResponse {
	resp := TicketResponse{
		ID:            ticket.ID.String(),
		ShowtimeID:    ticket.ShowtimeID.String(),
		CustomerName:  ticket.CustomerName,
		CustomerEmail: ticket.CustomerEmail,
		PhoneNumber:   ticket.PhoneNumber,
		SeatNumber:    ticket.SeatNumber,
		Price:         ticket.Price,
		PurchaseDate:  ticket.PurchaseDate,
		Status:        string(ticket.Status),
	}

	if showtime != nil {
		resp.ShowtimeStartTime = showtime.StartTime
		resp.Hall = showtime.Hall
	}
	if movie != nil {
		resp.MovieTitle = movie.Title
	}

	return resp
}
