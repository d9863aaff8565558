package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/data/repository"
	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/dto/response"
	"cinema-tickets/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TicketService is the booking engine. Every mutating operation runs in a
// single transaction that locks the showtime row before any check, so the
// invariant available_seats = total_seats - count(active tickets) holds
// after each of them.
//
// Known quirk kept from the product: UpdateTicket changes status without
// adjusting available_seats, so cancelling via update does not release the
// seat. Only DeleteTicket releases.
type TicketService interface {
	GetAllTickets(ctx context.Context) ([]response.TicketResponse, error)
	GetTicketByID(ctx context.Context, ticketID string) (*response.TicketResponse, error)
	GetTicketsByShowtime(ctx context.Context, showtimeID string) ([]response.TicketResponse, error)

	CreateTicket(ctx context.Context, req *request.CreateTicketRequest) (*response.TicketResponse, error)
	UpdateTicket(ctx context.Context, ticketID string, req *request.UpdateTicketRequest) (*response.TicketResponse, error)
	DeleteTicket(ctx context.Context, ticketID string) (bool, error)
}

type ticketService struct {
	db   database.PgxIface
	repo *repository.Repository
	log  *zap.Logger
}

func NewTicketService(db database.PgxIface, repo *repository.Repository, log *zap.Logger) TicketService {
	return &ticketService{
		db:   db,
		repo: repo,
		log:  log.With(zap.String("service", "ticket")),
	}
}

func (s *ticketService) CreateTicket(ctx context.Context, req *request.CreateTicketRequest) (*response.TicketResponse, error) {
	showtimeID, err := uuid.Parse(req.ShowtimeID)
	if err != nil {
		return nil, fmt.Errorf("showtime %s: %w", req.ShowtimeID, ErrNotFound)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin create ticket: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the showtime row first; concurrent bookings for the same
	// showtime serialize here.
	showtime, err := s.repo.Showtime.FindByIDForUpdate(ctx, tx, showtimeID)
	if err != nil {
		return nil, err
	}
	if showtime == nil {
		return nil, fmt.Errorf("showtime %s: %w", req.ShowtimeID, ErrNotFound)
	}

	taken, err := s.repo.Ticket.SeatTaken(ctx, tx, showtimeID, req.SeatNumber, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("seat %d is already taken: %w", req.SeatNumber, ErrConflict)
	}

	// Capacity is a separate guard from the per-seat check: once the counter
	// hits zero the showtime refuses bookings even for a seat nobody holds.
	if showtime.AvailableSeats <= 0 {
		return nil, fmt.Errorf("no available seats for this showtime: %w", ErrConflict)
	}

	now := time.Now()
	ticket := &entity.Ticket{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ShowtimeID:    showtimeID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		PhoneNumber:   req.PhoneNumber,
		SeatNumber:    req.SeatNumber,
		Price:         showtime.Price,
		PurchaseDate:  now,
		Status:        entity.TicketStatusActive,
	}

	if err := s.repo.Ticket.Create(ctx, tx, ticket); err != nil {
		return nil, err
	}

	if err := s.repo.Showtime.AdjustAvailableSeats(ctx, tx, showtimeID, -1); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit create ticket: %w", err)
	}

	s.log.Info("Ticket created",
		zap.String("ticket_id", ticket.ID.String()),
		zap.String("showtime_id", showtimeID.String()),
		zap.Int("seat_number", ticket.SeatNumber),
		zap.Float64("price", ticket.Price),
	)

	movie, err := s.repo.Movie.FindByID(ctx, showtime.MovieID)
	if err != nil {
		return nil, err
	}

	resp := response.TicketToResponse(ticket, showtime, movie)
	return &resp, nil
}

func (s *ticketService) UpdateTicket(ctx context.Context, ticketID string, req *request.UpdateTicketRequest) (*response.TicketResponse, error) {
	id, err := uuid.Parse(ticketID)
	if err != nil {
		return nil, fmt.Errorf("ticket %s: %w", ticketID, ErrNotFound)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin update ticket: %w", err)
	}
	defer tx.Rollback(ctx)

	ticket, err := s.repo.Ticket.FindByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, fmt.Errorf("ticket %s: %w", ticketID, ErrNotFound)
	}

	if req.SeatNumber != ticket.SeatNumber {
		// Same lock order as CreateTicket: showtime row first, then the
		// seat check, so a concurrent booking cannot slip in between.
		showtime, err := s.repo.Showtime.FindByIDForUpdate(ctx, tx, ticket.ShowtimeID)
		if err != nil {
			return nil, err
		}
		if showtime == nil {
			return nil, fmt.Errorf("showtime %s: %w", ticket.ShowtimeID.String(), ErrNotFound)
		}

		taken, err := s.repo.Ticket.SeatTaken(ctx, tx, ticket.ShowtimeID, req.SeatNumber, ticket.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("seat %d is already taken: %w", req.SeatNumber, ErrConflict)
		}
	}

	// Overwrite in place. A status change does NOT touch available_seats:
	// cancelling via update keeps the seat held, only delete releases it.
	ticket.CustomerName = req.CustomerName
	ticket.CustomerEmail = req.CustomerEmail
	ticket.PhoneNumber = req.PhoneNumber
	ticket.SeatNumber = req.SeatNumber
	ticket.Status = entity.TicketStatus(req.Status)
	ticket.UpdatedAt = time.Now()

	if err := s.repo.Ticket.Update(ctx, tx, ticket); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit update ticket: %w", err)
	}

	s.log.Info("Ticket updated",
		zap.String("ticket_id", ticket.ID.String()),
		zap.Int("seat_number", ticket.SeatNumber),
		zap.String("status", string(ticket.Status)),
	)

	resp, err := s.enrichTicket(ctx, ticket)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *ticketService) DeleteTicket(ctx context.Context, ticketID string) (bool, error) {
	id, err := uuid.Parse(ticketID)
	if err != nil {
		return false, nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin delete ticket: %w", err)
	}
	defer tx.Rollback(ctx)

	ticket, err := s.repo.Ticket.FindByIDForUpdate(ctx, tx, id)
	if err != nil {
		return false, err
	}
	if ticket == nil {
		return false, nil
	}

	// Only an Active ticket holds a seat; releasing it and removing the row
	// commit together or not at all.
	if ticket.Status == entity.TicketStatusActive {
		if err := s.repo.Showtime.AdjustAvailableSeats(ctx, tx, ticket.ShowtimeID, 1); err != nil {
			return false, err
		}
	}

	if err := s.repo.Ticket.Delete(ctx, tx, ticket.ID); err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit delete ticket: %w", err)
	}

	s.log.Info("Ticket deleted",
		zap.String("ticket_id", ticket.ID.String()),
		zap.String("showtime_id", ticket.ShowtimeID.String()),
		zap.String("status", string(ticket.Status)),
	)

	return true, nil
}

func (s *ticketService) GetAllTickets(ctx context.Context) ([]response.TicketResponse, error) {
	tickets, err := s.repo.Ticket.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all tickets: %w", err)
	}

	return s.enrichTickets(ctx, tickets)
}

func (s *ticketService) GetTicketByID(ctx context.Context, ticketID string) (*response.TicketResponse, error) {
	id, err := uuid.Parse(ticketID)
	if err != nil {
		return nil, fmt.Errorf("ticket %s: %w", ticketID, ErrNotFound)
	}

	ticket, err := s.repo.Ticket.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, fmt.Errorf("ticket %s: %w", ticketID, ErrNotFound)
	}

	resp, err := s.enrichTicket(ctx, ticket)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *ticketService) GetTicketsByShowtime(ctx context.Context, showtimeID string) ([]response.TicketResponse, error) {
	id, err := uuid.Parse(showtimeID)
	if err != nil {
		return nil, fmt.Errorf("showtime %s: %w", showtimeID, ErrNotFound)
	}

	tickets, err := s.repo.Ticket.FindByShowtimeID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get tickets by showtime: %w", err)
	}

	return s.enrichTickets(ctx, tickets)
}

// ==================== HELPER METHODS ====================

// enrichTicket joins the showtime and movie display fields. A lookup error is
// a store failure and fails the whole operation; a row that is genuinely gone
// (deleted movie) just leaves the display fields empty.
func (s *ticketService) enrichTicket(ctx context.Context, ticket *entity.Ticket) (response.TicketResponse, error) {
	showtime, err := s.repo.Showtime.FindByID(ctx, ticket.ShowtimeID)
	if err != nil {
		return response.TicketResponse{}, err
	}

	var movie *entity.Movie
	if showtime != nil {
		movie, err = s.repo.Movie.FindByID(ctx, showtime.MovieID)
		if err != nil {
			return response.TicketResponse{}, err
		}
	}

	return response.TicketToResponse(ticket, showtime, movie), nil
}

// enrichTickets is enrichTicket over a list, fetching each showtime and
// movie at most once.
func (s *ticketService) enrichTickets(ctx context.Context, tickets []*entity.Ticket) ([]response.TicketResponse, error) {
	showtimes := make(map[uuid.UUID]*entity.Showtime)
	movies := make(map[uuid.UUID]*entity.Movie)

	responses := make([]response.TicketResponse, len(tickets))
	for i, ticket := range tickets {
		showtime, ok := showtimes[ticket.ShowtimeID]
		if !ok {
			var err error
			showtime, err = s.repo.Showtime.FindByID(ctx, ticket.ShowtimeID)
			if err != nil {
				return nil, err
			}
			showtimes[ticket.ShowtimeID] = showtime
		}

		var movie *entity.Movie
		if showtime != nil {
			movie, ok = movies[showtime.MovieID]
			if !ok {
				var err error
				movie, err = s.repo.Movie.FindByID(ctx, showtime.MovieID)
				if err != nil {
					return nil, err
				}
				movies[showtime.MovieID] = movie
			}
		}

		responses[i] = response.TicketToResponse(ticket, showtime, movie)
	}

	return responses, nil
}
