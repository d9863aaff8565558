package mocks

import (
	"context"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockMovieRepository is a mock implementation of repository.MovieRepository
type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	return m.Called(ctx, movie).Error(0)
}

func (m *MockMovieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockShowtimeRepository is a mock implementation of repository.ShowtimeRepository
type MockShowtimeRepository struct {
	mock.Mock
}

func (m *MockShowtimeRepository) Create(ctx context.Context, showtime *entity.Showtime) error {
	return m.Called(ctx, showtime).Error(0)
}

func (m *MockShowtimeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Showtime), args.Error(1)
}

func (m *MockShowtimeRepository) FindAll(ctx context.Context) ([]*entity.Showtime, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Showtime), args.Error(1)
}

func (m *MockShowtimeRepository) FindAvailable(ctx context.Context) ([]*entity.Showtime, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Showtime), args.Error(1)
}

func (m *MockShowtimeRepository) FindByIDForUpdate(ctx context.Context, q database.Querier, id uuid.UUID) (*entity.Showtime, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Showtime), args.Error(1)
}

func (m *MockShowtimeRepository) AdjustAvailableSeats(ctx context.Context, q database.Querier, id uuid.UUID, delta int) error {
	return m.Called(ctx, q, id, delta).Error(0)
}

// MockTicketRepository is a mock implementation of repository.TicketRepository
type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Ticket), args.Error(1)
}

func (m *MockTicketRepository) FindAll(ctx context.Context) ([]*entity.Ticket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Ticket), args.Error(1)
}

func (m *MockTicketRepository) FindByShowtimeID(ctx context.Context, showtimeID uuid.UUID) ([]*entity.Ticket, error) {
	args := m.Called(ctx, showtimeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Ticket), args.Error(1)
}

func (m *MockTicketRepository) FindByIDForUpdate(ctx context.Context, q database.Querier, id uuid.UUID) (*entity.Ticket, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Ticket), args.Error(1)
}

func (m *MockTicketRepository) SeatTaken(ctx context.Context, q database.Querier, showtimeID uuid.UUID, seatNumber int, excludeTicketID uuid.UUID) (bool, error) {
	args := m.Called(ctx, q, showtimeID, seatNumber, excludeTicketID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTicketRepository) Create(ctx context.Context, q database.Querier, ticket *entity.Ticket) error {
	return m.Called(ctx, q, ticket).Error(0)
}

func (m *MockTicketRepository) Update(ctx context.Context, q database.Querier, ticket *entity.Ticket) error {
	return m.Called(ctx, q, ticket).Error(0)
}

func (m *MockTicketRepository) Delete(ctx context.Context, q database.Querier, id uuid.UUID) error {
	return m.Called(ctx, q, id).Error(0)
}
