package usecase

import (
	"context"
	"fmt"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/data/repository"
	"cinema-tickets/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ShowtimeService interface {
	GetAllShowtimes(ctx context.Context) ([]response.ShowtimeResponse, error)
	GetAvailableShowtimes(ctx context.Context) ([]response.ShowtimeResponse, error)
	GetShowtimeByID(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error)
}

type showtimeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewShowtimeService(repo *repository.Repository, log *zap.Logger) ShowtimeService {
	return &showtimeService{
		repo: repo,
		log:  log.With(zap.String("service", "showtime")),
	}
}

func (s *showtimeService) GetAllShowtimes(ctx context.Context) ([]response.ShowtimeResponse, error) {
	showtimes, err := s.repo.Showtime.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all showtimes: %w", err)
	}

	return s.enrichShowtimes(ctx, showtimes)
}

func (s *showtimeService) GetAvailableShowtimes(ctx context.Context) ([]response.ShowtimeResponse, error) {
	showtimes, err := s.repo.Showtime.FindAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("get available showtimes: %w", err)
	}

	return s.enrichShowtimes(ctx, showtimes)
}

func (s *showtimeService) GetShowtimeByID(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error) {
	id, err := uuid.Parse(showtimeID)
	if err != nil {
		return nil, fmt.Errorf("showtime %s: %w", showtimeID, ErrNotFound)
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if showtime == nil {
		return nil, fmt.Errorf("showtime %s: %w", showtimeID, ErrNotFound)
	}

	movie, err := s.repo.Movie.FindByID(ctx, showtime.MovieID)
	if err != nil {
		return nil, err
	}

	resp := response.ShowtimeToResponse(showtime, movie)
	return &resp, nil
}

// enrichShowtimes joins the movie title, fetching each movie at most once.
// A lookup error is a store failure and fails the whole listing.
func (s *showtimeService) enrichShowtimes(ctx context.Context, showtimes []*entity.Showtime) ([]response.ShowtimeResponse, error) {
	movies := make(map[uuid.UUID]*entity.Movie)

	responses := make([]response.ShowtimeResponse, len(showtimes))
	for i, showtime := range showtimes {
		movie, ok := movies[showtime.MovieID]
		if !ok {
			var err error
			movie, err = s.repo.Movie.FindByID(ctx, showtime.MovieID)
			if err != nil {
				return nil, err
			}
			movies[showtime.MovieID] = movie
		}

		responses[i] = response.ShowtimeToResponse(showtime, movie)
	}

	return responses, nil
}
