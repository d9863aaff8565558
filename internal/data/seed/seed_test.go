package seed

import (
	"context"
	"testing"
	"time"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/data/repository"
	repomocks "cinema-tickets/internal/data/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRun_SkipsWhenCatalogExists(t *testing.T) {
	movieRepo := new(repomocks.MockMovieRepository)
	showtimeRepo := new(repomocks.MockShowtimeRepository)
	repo := &repository.Repository{Movie: movieRepo, Showtime: showtimeRepo}

	movieRepo.On("Count", mock.Anything).Return(int64(3), nil)

	err := Run(context.Background(), repo, zap.NewNop())
	require.NoError(t, err)

	movieRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	showtimeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRun_SeedsEmptyCatalog(t *testing.T) {
	movieRepo := new(repomocks.MockMovieRepository)
	showtimeRepo := new(repomocks.MockShowtimeRepository)
	repo := &repository.Repository{Movie: movieRepo, Showtime: showtimeRepo}

	movieRepo.On("Count", mock.Anything).Return(int64(0), nil)

	var movies []*entity.Movie
	movieRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Movie")).
		Run(func(args mock.Arguments) { movies = append(movies, args.Get(1).(*entity.Movie)) }).
		Return(nil)

	var showtimes []*entity.Showtime
	showtimeRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Showtime")).
		Run(func(args mock.Arguments) { showtimes = append(showtimes, args.Get(1).(*entity.Showtime)) }).
		Return(nil)

	err := Run(context.Background(), repo, zap.NewNop())
	require.NoError(t, err)

	require.Len(t, movies, 3)
	require.Len(t, showtimes, 3)

	// Every showtime belongs to a seeded movie, starts full, and runs as long
	// as its movie.
	byID := make(map[string]*entity.Movie)
	for _, m := range movies {
		byID[m.ID.String()] = m
	}
	for _, st := range showtimes {
		movie, ok := byID[st.MovieID.String()]
		require.True(t, ok)
		assert.Equal(t, st.TotalSeats, st.AvailableSeats)
		assert.Equal(t, st.StartTime.Add(time.Duration(movie.DurationInMinutes)*time.Minute), st.EndTime)
		assert.True(t, st.EndTime.After(st.StartTime))
	}
}
