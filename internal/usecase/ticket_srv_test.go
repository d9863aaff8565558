package usecase

import (
	"context"
	"testing"
	"time"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/data/repository"
	repomocks "cinema-tickets/internal/data/repository/mocks"
	"cinema-tickets/internal/dto/request"
	dbmocks "cinema-tickets/pkg/database/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type ticketServiceMocks struct {
	db       *dbmocks.MockDB
	tx       *dbmocks.MockTx
	movie    *repomocks.MockMovieRepository
	showtime *repomocks.MockShowtimeRepository
	ticket   *repomocks.MockTicketRepository
}

func newTicketServiceWithMocks() (TicketService, *ticketServiceMocks) {
	m := &ticketServiceMocks{
		db:       new(dbmocks.MockDB),
		tx:       new(dbmocks.MockTx),
		movie:    new(repomocks.MockMovieRepository),
		showtime: new(repomocks.MockShowtimeRepository),
		ticket:   new(repomocks.MockTicketRepository),
	}

	repo := &repository.Repository{
		Movie:    m.movie,
		Showtime: m.showtime,
		Ticket:   m.ticket,
	}

	return NewTicketService(m.db, repo, zap.NewNop()), m
}

func (m *ticketServiceMocks) expectTx(commit bool) {
	m.db.On("Begin", mock.Anything).Return(m.tx, nil)
	m.tx.On("Rollback", mock.Anything).Return(nil)
	if commit {
		m.tx.On("Commit", mock.Anything).Return(nil)
	}
}

func testShowtime(movieID uuid.UUID, available int) *entity.Showtime {
	return &entity.Showtime{
		Base:           entity.Base{ID: uuid.New()},
		MovieID:        movieID,
		StartTime:      time.Now().Add(24 * time.Hour),
		EndTime:        time.Now().Add(26 * time.Hour),
		Hall:           "Hall A",
		Price:          12.99,
		TotalSeats:     100,
		AvailableSeats: available,
	}
}

func testMovie(id uuid.UUID) *entity.Movie {
	return &entity.Movie{
		Base:              entity.Base{ID: id},
		Title:             "The Matrix",
		DurationInMinutes: 136,
	}
}

func createRequest(showtimeID uuid.UUID, seat int) *request.CreateTicketRequest {
	return &request.CreateTicketRequest{
		ShowtimeID:    showtimeID.String(),
		CustomerName:  "Dana Scully",
		CustomerEmail: "dana@example.com",
		PhoneNumber:   "555-0199",
		SeatNumber:    seat,
	}
}

func TestTicketService_CreateTicket(t *testing.T) {
	t.Run("books the seat and decrements the counter atomically", func(t *testing.T) {
		svc, m := newTicketServiceWithMocks()
		movieID := uuid.New()
		showtime := testShowtime(movieID, 2)

		m.expectTx(true)
		m.showtime.On("FindByIDForUpdate", mock.Anything, m.tx, showtime.ID).Return(showtime, nil)
		m.ticket.On("SeatTaken", mock.Anything, m.tx, showtime.ID, 7, uuid.Nil).Return(false, nil)

		var created *entity.Ticket
		m.ticket.On("Create", mock.Anything, m.tx, mock.AnythingOfType("*entity.Ticket")).
			Run(func(args mock.Arguments) { created = args.Get(2).(*entity.Ticket) }).
			Return(nil)
		m.showtime.On("AdjustAvailableSeats", mock.Anything, m.tx, showtime.ID, -1).Return(nil)
		m.movie.On("FindByID", mock.Anything, movieID).Return(testMovie(movieID), nil)

		resp, err := svc.CreateTicket(context.Background(), createRequest(showtime.ID, 7))
		require.NoError(t, err)
		require.NotNil(t, created)

		// Price and purchase date are snapshots taken at booking time.
		assert.Equal(t, showtime.Price, created.Price)
		assert.Equal(t, entity.TicketStatusActive, created.Status)
		assert.WithinDuration(t, time.Now(), created.PurchaseDate, time.Minute)

		assert.Equal(t, 7, resp.SeatNumber)
		assert.Equal(t, "The Matrix", resp.MovieTitle)
		assert.Equal(t, "Hall A", resp.Hall)
		assert.Equal(t, showtime.StartTime, resp.ShowtimeStartTime)

		m.tx.AssertCalled(t, "Commit", mock.Anything)
		m.showtime.AssertExpectations(t)
		m.ticket.AssertExpectations(t)
	})

	t.Run("unknown showtime is not found", func(t *testing.T) {
		svc, m := newTicketServiceWithMocks()
		showtimeID := uuid.New()

		m.expectTx(false)
		m.showtime.On("FindByIDForUpdate", mock.Anything, m.tx, showtimeID).Return(nil, nil)

		_, err := svc.CreateTicket(context.Background(), createRequest(showtimeID, 1))
		require.ErrorIs(t, err, ErrNotFound)

		m.ticket.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		m.tx.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("taken seat conflicts and changes nothing", func(t *testing.T) {
		svc, m := newTicketServiceWithMocks()
		showtime := testShowtime(uuid.New(), 5)

		m.expectTx(false)
		m.showtime.On("FindByIDForUpdate", mock.Anything, m.tx, showtime.ID).Return(showtime, nil)
		m.ticket.On("SeatTaken", mock.Anything, m.tx, showtime.ID, 3, uuid.Nil).Return(true, nil)

		_, err := svc.CreateTicket(context.Background(), createRequest(showtime.ID, 3))
		require.ErrorIs(t, err, ErrConflict)

		m.ticket.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		m.showtime.AssertNotCalled(t, "AdjustAvailableSeats", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		m.tx.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("sold-out showtime conflicts even when the seat itself is free", func(t *testing.T) {
		svc, m := newTicketServiceWithMocks()
		showtime := testShowtime(uuid.New(), 0)

		m.expectTx(false)
		m.showtime.On("FindByIDForUpdate", mock.Anything, m.tx, showtime.ID).Return(showtime, nil)
		m.ticket.On("SeatTaken", mock.Anything, m.tx, showtime.ID, 99, uuid.Nil).Return(false, nil)

		_, err := svc.CreateTicket(context.Background(), createRequest(showtime.ID, 99))
		require.ErrorIs(t, err, ErrConflict)

		m.ticket.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("decrement failure aborts the transaction", func(t *testing.T) {
		svc, m := newTicketServiceWithMocks()
		showtime := testShowtime(uuid.New(), 2)

		m.expectTx(false)
		m.showtime.On("FindByIDForUpdate", mock.Anything, m.tx, showtime.ID).Return(showtime, nil)
		m.ticket.On("SeatTaken", mock.Anything, m.tx, showtime.ID, 7, uuid.Nil).Return(false, nil)
		m.ticket.On("Create", mock.Anything, m.tx, mock.AnythingOfType("*entity.Ticket")).Return(nil)
		m.showtime.On("AdjustAvailableSeats", mock.Anything, m.tx, showtime.ID, -1).
			Return(assert.AnError)

		_, err := svc.CreateTicket(context.Background(), createRequest(showtime.ID, 7))
		require.Error(t, err)

		// The insert must not become visible without the decrement.
		m.tx.AssertNotCalled(t, "Commit", mock.Anything)
		m.tx.AssertCalled(t, "Rollback", mock.Anything)
	})
}

func TestTicketService_UpdateTicket(t *testing.T) {
	updateRequest := func(seat int, status string) *request.UpdateTicketRequest {
		return &request.UpdateTicketRequest{
			CustomerName:  "Fox Mulder",
			CustomerEmail: "fox@example.com",
			PhoneNumber:   "555-0142",
			SeatNumber:    seat,
			Status:        status,
		}
	}

	existingTicket := func(showtimeID uuid.UUID, seat int) *entity.Ticket {
		return &entity.Ticket{
			Base:       entity.Base{ID: uuid.New()},
			ShowtimeID: showtimeID,
			SeatNumber: seat,
			Price:      12.99,
			Status:     entity.TicketStatusActive,
		}
	}

	t.Run("unknown ticket is not found", func(t *testing.T) {
		svc, m := newTicketServiceWithMocks()
		id := uuid.New()

		m.expectTx(false)
		m.ticket.On("FindByIDForUpdate", mock.Anything, m.tx, id).Return(nil, nil)

		_, err := svc.UpdateTicket(context.Background(), id.String(), updateRequest(1, "Active"))
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("cancelling keeps the seat counter untouched", func(t *testing.T) {
		svc, m := newTicketServiceWithMocks()
		movieID := uuid.New()
		showtime := testShowtime(movieID, 5)
		ticket := existingTicket(showtime.ID, 7)

		m.expectTx(true)
		m.ticket.On("FindByIDForUpdate", mock.Anything, m.tx, ticket.ID).Return(ticket, nil)

		var updated *entity.Ticket
		m.ticket.On("Update", mock.Anything, m.tx, mock.AnythingOfType("*entity.Ticket")).
			Run(func(args mock.Arguments) { updated = args.Get(2).(*entity.Ticket) }).
			Return(nil)
		m.showtime.On("FindByID", mock.Anything, showtime.ID).Return(showtime, nil)
		m.movie.On("FindByID", mock.Anything, movieID).Return(testMovie(movieID), nil)

		resp, err := svc.UpdateTicket(context.Background(), ticket.ID.String(), updateRequest(7, "Cancelled"))
		require.NoError(t, err)

		assert.Equal(t, entity.TicketStatusCancelled, updated.Status)
		assert.Equal(t, "Cancelled", resp.Status)

		// Same seat requested: no seat check, and a status transition never
		// adjusts available seats. Only deletion releases a seat.
		m.ticket.AssertNotCalled(t, "SeatTaken", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		m.showtime.AssertNotCalled(t, "AdjustAvailableSeats", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("moving to a held seat conflicts", func(t *testing.T) {
		svc, m := newTicketServiceWithMocks()
		showtime := testShowtime(uuid.New(), 5)
		ticket := existingTicket(showtime.ID, 7)

		m.expectTx(false)
		m.ticket.On("FindByIDForUpdate", mock.Anything, m.tx, ticket.ID).Return(ticket, nil)
		m.showtime.On("FindByIDForUpdate", mock.Anything, m.tx, showtime.ID).Return(showtime, nil)
		m.ticket.On("SeatTaken", mock.Anything, m.tx, showtime.ID, 8, ticket.ID).Return(true, nil)

		_, err := svc.UpdateTicket(context.Background(), ticket.ID.String(), updateRequest(8, "Active"))
		require.ErrorIs(t, err, ErrConflict)

		m.ticket.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("moving to a free seat succeeds", func(t *testing.T) {
		svc, m := newTicketServiceWithMocks()
		movieID := uuid.New()
		showtime := testShowtime(movieID, 5)
		ticket := existingTicket(showtime.ID, 7)

		m.expectTx(true)
		m.ticket.On("FindByIDForUpdate", mock.Anything, m.tx, ticket.ID).Return(ticket, nil)
		m.showtime.On("FindByIDForUpdate", mock.Anything, m.tx, showtime.ID).Return(showtime, nil)
		m.ticket.On("SeatTaken", mock.Anything, m.tx, showtime.ID, 8, ticket.ID).Return(false, nil)
		m.ticket.On("Update", mock.Anything, m.tx, mock.AnythingOfType("*entity.Ticket")).Return(nil)
		m.showtime.On("FindByID", mock.Anything, showtime.ID).Return(showtime, nil)
		m.movie.On("FindByID", mock.Anything, movieID).Return(testMovie(movieID), nil)

		resp, err := svc.UpdateTicket(context.Background(), ticket.ID.String(), updateRequest(8, "Active"))
		require.NoError(t, err)
		assert.Equal(t, 8, resp.SeatNumber)
		m.tx.AssertCalled(t, "Commit", mock.Anything)
	})
}

func TestTicketService_DeleteTicket(t *testing.T) {
	t.Run("unparsable id deletes nothing", func(t *testing.T) {
		svc, m := newTicketServiceWithMocks()

		deleted, err := svc.DeleteTicket(context.Background(), "not-a-uuid")
		require.NoError(t, err)
		assert.False(t, deleted)
		m.db.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("missing ticket deletes nothing", func(t *testing.T) {
		svc, m := newTicketServiceWithMocks()
		id := uuid.New()

		m.expectTx(false)
		m.ticket.On("FindByIDForUpdate", mock.Anything, m.tx, id).Return(nil, nil)

		deleted, err := svc.DeleteTicket(context.Background(), id.String())
		require.NoError(t, err)
		assert.False(t, deleted)
		m.ticket.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("deleting an active ticket releases the seat", func(t *testing.T) {
		svc, m := newTicketServiceWithMocks()
		showtimeID := uuid.New()
		ticket := &entity.Ticket{
			Base:       entity.Base{ID: uuid.New()},
			ShowtimeID: showtimeID,
			SeatNumber: 7,
			Status:     entity.TicketStatusActive,
		}

		m.expectTx(true)
		m.ticket.On("FindByIDForUpdate", mock.Anything, m.tx, ticket.ID).Return(ticket, nil)
		m.showtime.On("AdjustAvailableSeats", mock.Anything, m.tx, showtimeID, 1).Return(nil)
		m.ticket.On("Delete", mock.Anything, m.tx, ticket.ID).Return(nil)

		deleted, err := svc.DeleteTicket(context.Background(), ticket.ID.String())
		require.NoError(t, err)
		assert.True(t, deleted)
		m.showtime.AssertExpectations(t)
	})

	t.Run("deleting a cancelled ticket leaves the counter alone", func(t *testing.T) {
		svc, m := newTicketServiceWithMocks()
		ticket := &entity.Ticket{
			Base:       entity.Base{ID: uuid.New()},
			ShowtimeID: uuid.New(),
			SeatNumber: 7,
			Status:     entity.TicketStatusCancelled,
		}

		m.expectTx(true)
		m.ticket.On("FindByIDForUpdate", mock.Anything, m.tx, ticket.ID).Return(ticket, nil)
		m.ticket.On("Delete", mock.Anything, m.tx, ticket.ID).Return(nil)

		deleted, err := svc.DeleteTicket(context.Background(), ticket.ID.String())
		require.NoError(t, err)
		assert.True(t, deleted)
		m.showtime.AssertNotCalled(t, "AdjustAvailableSeats", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTicketService_Reads(t *testing.T) {
	t.Run("get all tickets enriches each ticket once per showtime", func(t *testing.T) {
		svc, m := newTicketServiceWithMocks()
		movieID := uuid.New()
		showtime := testShowtime(movieID, 5)

		tickets := []*entity.Ticket{
			{Base: entity.Base{ID: uuid.New()}, ShowtimeID: showtime.ID, SeatNumber: 2, Status: entity.TicketStatusActive},
			{Base: entity.Base{ID: uuid.New()}, ShowtimeID: showtime.ID, SeatNumber: 1, Status: entity.TicketStatusUsed},
		}

		m.ticket.On("FindAll", mock.Anything).Return(tickets, nil)
		m.showtime.On("FindByID", mock.Anything, showtime.ID).Return(showtime, nil).Once()
		m.movie.On("FindByID", mock.Anything, movieID).Return(testMovie(movieID), nil).Once()

		resp, err := svc.GetAllTickets(context.Background())
		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Equal(t, "The Matrix", resp[0].MovieTitle)
		assert.Equal(t, "The Matrix", resp[1].MovieTitle)
		m.showtime.AssertExpectations(t)
	})

	t.Run("a failing showtime lookup fails the listing", func(t *testing.T) {
		svc, m := newTicketServiceWithMocks()
		tickets := []*entity.Ticket{
			{Base: entity.Base{ID: uuid.New()}, ShowtimeID: uuid.New(), SeatNumber: 2, Status: entity.TicketStatusActive},
		}

		m.ticket.On("FindAll", mock.Anything).Return(tickets, nil)
		m.showtime.On("FindByID", mock.Anything, tickets[0].ShowtimeID).Return(nil, assert.AnError)

		resp, err := svc.GetAllTickets(context.Background())
		require.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, resp)
	})

	t.Run("a failing movie lookup fails the read", func(t *testing.T) {
		svc, m := newTicketServiceWithMocks()
		movieID := uuid.New()
		showtime := testShowtime(movieID, 5)
		ticket := &entity.Ticket{Base: entity.Base{ID: uuid.New()}, ShowtimeID: showtime.ID, SeatNumber: 2, Status: entity.TicketStatusActive}

		m.ticket.On("FindByID", mock.Anything, ticket.ID).Return(ticket, nil)
		m.showtime.On("FindByID", mock.Anything, showtime.ID).Return(showtime, nil)
		m.movie.On("FindByID", mock.Anything, movieID).Return(nil, assert.AnError)

		_, err := svc.GetTicketByID(context.Background(), ticket.ID.String())
		require.ErrorIs(t, err, assert.AnError)
	})

	t.Run("get ticket by id reports missing tickets", func(t *testing.T) {
		svc, m := newTicketServiceWithMocks()
		id := uuid.New()

		m.ticket.On("FindByID", mock.Anything, id).Return(nil, nil)

		_, err := svc.GetTicketByID(context.Background(), id.String())
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("tickets by showtime rejects malformed ids", func(t *testing.T) {
		svc, _ := newTicketServiceWithMocks()

		_, err := svc.GetTicketsByShowtime(context.Background(), "nope")
		require.ErrorIs(t, err, ErrNotFound)
	})
}
