package response

import (
	"time"

	"cinema-tickets/internal/data/entity"
)

type ShowtimeResponse struct {
	ID             string    `json:"id"`
	MovieID        string    `json:"movieId"`
	MovieTitle     string    `json:"movieTitle"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	Hall           string    `json:"hall"`
	Price          float64   `json:"price"`
	TotalSeats     int       `json:"totalSeats"`
	AvailableSeats int       `json:"availableSeats"`
}

func ShowtimeToResponse(showtime *entity.Showtime, movie *entity.Movie) ShowtimeResponse {
	resp := ShowtimeResponse{
		ID:             showtime.ID.String(),
		MovieID:        showtime.MovieID.String(),
		StartTime:      showtime.StartTime,
		EndTime:        showtime.EndTime,
		Hall:           showtime.Hall,
		Price:          showtime.Price,
		TotalSeats:     showtime.TotalSeats,
		AvailableSeats: showtime.AvailableSeats,
	}

	if movie != nil {
		resp.MovieTitle = movie.Title
	}

	return resp
}
