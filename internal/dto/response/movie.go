package response

import (
	"time"

	"cinema-tickets/internal/data/entity"
)

type MovieResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Duration    int       `json:"duration"`
	Genre       *string   `json:"genre"`
	Rating      *string   `json:"rating"`
	ReleaseDate time.Time `json:"releaseDate"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID.String(),
		Title:       movie.Title,
		Description: movie.Description,
		Duration:    movie.DurationInMinutes,
		Genre:       movie.Genre,
		Rating:      movie.Rating,
		ReleaseDate: movie.ReleaseDate,
	}
}
