package mocks

import (
	"context"

	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

// MockTicketService is a mock implementation of usecase.TicketService
type MockTicketService struct {
	mock.Mock
}

func (m *MockTicketService) GetAllTickets(ctx context.Context) ([]response.TicketResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.TicketResponse), args.Error(1)
}

func (m *MockTicketService) GetTicketByID(ctx context.Context, ticketID string) (*response.TicketResponse, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.TicketResponse), args.Error(1)
}

func (m *MockTicketService) GetTicketsByShowtime(ctx context.Context, showtimeID string) ([]response.TicketResponse, error) {
	args := m.Called(ctx, showtimeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.TicketResponse), args.Error(1)
}

func (m *MockTicketService) CreateTicket(ctx context.Context, req *request.CreateTicketRequest) (*response.TicketResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.TicketResponse), args.Error(1)
}

func (m *MockTicketService) UpdateTicket(ctx context.Context, ticketID string, req *request.UpdateTicketRequest) (*response.TicketResponse, error) {
	args := m.Called(ctx, ticketID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.TicketResponse), args.Error(1)
}

func (m *MockTicketService) DeleteTicket(ctx context.Context, ticketID string) (bool, error) {
	args := m.Called(ctx, ticketID)
	return args.Bool(0), args.Error(1)
}

// MockShowtimeService is a mock implementation of usecase.ShowtimeService
type MockShowtimeService struct {
	mock.Mock
}

func (m *MockShowtimeService) GetAllShowtimes(ctx context.Context) ([]response.ShowtimeResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.ShowtimeResponse), args.Error(1)
}

func (m *MockShowtimeService) GetAvailableShowtimes(ctx context.Context) ([]response.ShowtimeResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.ShowtimeResponse), args.Error(1)
}

func (m *MockShowtimeService) GetShowtimeByID(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error) {
	args := m.Called(ctx, showtimeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ShowtimeResponse), args.Error(1)
}

// MockMovieService is a mock implementation of usecase.MovieService
type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) GetAllMovies(ctx context.Context) ([]response.MovieResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.MovieResponse), args.Error(1)
}

func (m *MockMovieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.MovieResponse), args.Error(1)
}
