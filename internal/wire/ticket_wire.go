package wire

import (
	"cinema-tickets/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTicket(r chi.Router, ticketHandler *adaptor.TicketHandler) {
	r.Route("/api/tickets", func(r chi.Router) {
		// GET /api/tickets - all tickets, most recent purchase first
		r.Get("/", ticketHandler.GetTickets)

		// GET /api/tickets/showtime/{showtimeId} - one showtime's tickets by seat
		r.Get("/showtime/{showtimeId}", ticketHandler.GetTicketsByShowtime)

		// GET /api/tickets/{id} - ticket details
		r.Get("/{id}", ticketHandler.GetTicketByID)

		// POST /api/tickets - book a seat
		r.Post("/", ticketHandler.CreateTicket)

		// PUT /api/tickets/{id} - overwrite customer fields, seat and status
		r.Put("/{id}", ticketHandler.UpdateTicket)

		// DELETE /api/tickets/{id} - remove ticket, releasing the seat if Active
		r.Delete("/{id}", ticketHandler.DeleteTicket)
	})
}
