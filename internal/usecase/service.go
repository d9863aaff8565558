package usecase

import (
	"cinema-tickets/internal/data/repository"
	"cinema-tickets/pkg/database"

	"go.uber.org/zap"
)

type Service struct {
	Movie    MovieService
	Showtime ShowtimeService
	Ticket   TicketService
}

func NewService(db database.PgxIface, repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Movie:    NewMovieService(repo, log),
		Showtime: NewShowtimeService(repo, log),
		Ticket:   NewTicketService(db, repo, log),
	}
}
