package wire

import (
	"cinema-tickets/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// GET /api/movies - catalog list (read-only, seeded at startup)
	r.Get("/api/movies", movieHandler.GetMovies)

	// GET /api/movies/{id} - movie details
	r.Get("/api/movies/{id}", movieHandler.GetMovieByID)
}
