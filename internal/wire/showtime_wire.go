package wire

import (
	"cinema-tickets/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireShowtime(r chi.Router, showtimeHandler *adaptor.ShowtimeHandler) {
	r.Route("/api/showtimes", func(r chi.Router) {
		// GET /api/showtimes - all showtimes, earliest first
		r.Get("/", showtimeHandler.GetShowtimes)

		// GET /api/showtimes/available - future showtimes with seats left
		r.Get("/available", showtimeHandler.GetAvailableShowtimes)

		// GET /api/showtimes/{id} - showtime details
		r.Get("/{id}", showtimeHandler.GetShowtimeByID)
	})
}
