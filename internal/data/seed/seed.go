package seed

import (
	"context"
	"fmt"
	"time"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Run fills an empty catalog with the demo movies and showtimes. A non-empty
// movies table means a previous boot already seeded; nothing is touched then.
func Run(ctx context.Context, repo *repository.Repository, log *zap.Logger) error {
	count, err := repo.Movie.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if count > 0 {
		log.Debug("Catalog already seeded", zap.Int64("movies", count))
		return nil
	}

	now := time.Now()

	movies := []*entity.Movie{
		{
			Base:              base(now),
			Title:             "The Matrix",
			Description:       str("A computer programmer discovers a mysterious world."),
			DurationInMinutes: 136,
			Genre:             str("Sci-Fi"),
			Rating:            str("R"),
			ReleaseDate:       time.Date(1999, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			Base:              base(now),
			Title:             "Inception",
			Description:       str("A thief who steals corporate secrets through dream-sharing technology."),
			DurationInMinutes: 148,
			Genre:             str("Sci-Fi"),
			Rating:            str("PG-13"),
			ReleaseDate:       time.Date(2010, 7, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			Base:              base(now),
			Title:             "The Dark Knight",
			Description:       str("Batman faces his greatest challenge yet."),
			DurationInMinutes: 152,
			Genre:             str("Action"),
			Rating:            str("PG-13"),
			ReleaseDate:       time.Date(2008, 7, 18, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, movie := range movies {
		if err := repo.Movie.Create(ctx, movie); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	// Showtimes on the next two evenings so the available listing has
	// something to show on a fresh install.
	showtimes := []*entity.Showtime{
		showtime(movies[0], now, 1, 19, "Hall A", 12.99, 100),
		showtime(movies[1], now, 1, 21, "Hall B", 14.99, 80),
		showtime(movies[2], now, 2, 20, "Hall A", 13.99, 100),
	}

	for _, st := range showtimes {
		if err := repo.Showtime.Create(ctx, st); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	log.Info("Catalog seeded",
		zap.Int("movies", len(movies)),
		zap.Int("showtimes", len(showtimes)),
	)

	return nil
}

func showtime(movie *entity.Movie, now time.Time, daysAhead, hour int, hall string, price float64, seats int) *entity.Showtime {
	day := now.AddDate(0, 0, daysAhead)
	start := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, now.Location())

	return &entity.Showtime{
		Base:           base(now),
		MovieID:        movie.ID,
		StartTime:      start,
		EndTime:        start.Add(time.Duration(movie.DurationInMinutes) * time.Minute),
		Hall:           hall,
		Price:          price,
		TotalSeats:     seats,
		AvailableSeats: seats,
	}
}

func base(now time.Time) entity.Base {
	return entity.Base{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func str(s string) *string {
	return &s
}
