package repository

import (
	"context"
	"fmt"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const ticketColumns = `id, showtime_id, customer_name, customer_email, phone_number, seat_number, price, purchase_date, status, created_at, updated_at`

type TicketRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)
	FindAll(ctx context.Context) ([]*entity.Ticket, error)
	FindByShowtimeID(ctx context.Context, showtimeID uuid.UUID) ([]*entity.Ticket, error)

	// Transactional methods used by the ticket service. The caller owns the
	// transaction; these only run statements on it.
	FindByIDForUpdate(ctx context.Context, q database.Querier, id uuid.UUID) (*entity.Ticket, error)
	SeatTaken(ctx context.Context, q database.Querier, showtimeID uuid.UUID, seatNumber int, excludeTicketID uuid.UUID) (bool, error)
	Create(ctx context.Context, q database.Querier, ticket *entity.Ticket) error
	Update(ctx context.Context, q database.Querier, ticket *entity.Ticket) error
	Delete(ctx context.Context, q database.Querier, id uuid.UUID) error
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1`

	return r.scanOne(ctx, r.db, query, id)
}

// FindAll returns every ticket, most recent purchase first.
func (r *ticketRepository) FindAll(ctx context.Context) ([]*entity.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets ORDER BY purchase_date DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find tickets", zap.Error(err))
		return nil, fmt.Errorf("find tickets: %w", err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

// FindByShowtimeID returns a showtime's tickets ordered by seat number.
func (r *ticketRepository) FindByShowtimeID(ctx context.Context, showtimeID uuid.UUID) ([]*entity.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE showtime_id = $1 ORDER BY seat_number`

	rows, err := r.db.Query(ctx, query, showtimeID)
	if err != nil {
		r.log.Error("Failed to find tickets by showtime ID",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		return nil, fmt.Errorf("find tickets by showtime ID %s: %w", showtimeID.String(), err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

func (r *ticketRepository) FindByIDForUpdate(ctx context.Context, q database.Querier, id uuid.UUID) (*entity.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1 FOR UPDATE`

	return r.scanOne(ctx, q, query, id)
}

// SeatTaken reports whether an Active ticket other than excludeTicketID
// already holds the seat. Pass uuid.Nil to exclude nothing.
func (r *ticketRepository) SeatTaken(ctx context.Context, q database.Querier, showtimeID uuid.UUID, seatNumber int, excludeTicketID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM tickets
			WHERE showtime_id = $1 AND seat_number = $2 AND status = $3 AND id <> $4
		)
	`

	var taken bool
	err := q.QueryRow(ctx, query, showtimeID, seatNumber, entity.TicketStatusActive, excludeTicketID).Scan(&taken)
	if err != nil {
		r.log.Error("Failed to check seat",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
			zap.Int("seat_number", seatNumber),
		)
		return false, fmt.Errorf("check seat %d of showtime %s: %w", seatNumber, showtimeID.String(), err)
	}

	return taken, nil
}

func (r *ticketRepository) Create(ctx context.Context, q database.Querier, ticket *entity.Ticket) error {
	query := `
		INSERT INTO tickets (` + ticketColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := q.Exec(ctx, query,
		ticket.ID,
		ticket.ShowtimeID,
		ticket.CustomerName,
		ticket.CustomerEmail,
		ticket.PhoneNumber,
		ticket.SeatNumber,
		ticket.Price,
		ticket.PurchaseDate,
		ticket.Status,
		ticket.CreatedAt,
		ticket.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create ticket",
			zap.Error(err),
			zap.String("showtime_id", ticket.ShowtimeID.String()),
			zap.Int("seat_number", ticket.SeatNumber),
		)
		return fmt.Errorf("create ticket for showtime %s: %w", ticket.ShowtimeID.String(), err)
	}

	return nil
}

func (r *ticketRepository) Update(ctx context.Context, q database.Querier, ticket *entity.Ticket) error {
	query := `
		UPDATE tickets
		SET customer_name = $2, customer_email = $3, phone_number = $4,
		    seat_number = $5, status = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := q.Exec(ctx, query,
		ticket.ID,
		ticket.CustomerName,
		ticket.CustomerEmail,
		ticket.PhoneNumber,
		ticket.SeatNumber,
		ticket.Status,
		ticket.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update ticket",
			zap.Error(err),
			zap.String("ticket_id", ticket.ID.String()),
		)
		return fmt.Errorf("update ticket %s: %w", ticket.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("ticket %s not found", ticket.ID.String())
	}

	return nil
}

func (r *ticketRepository) Delete(ctx context.Context, q database.Querier, id uuid.UUID) error {
	query := `DELETE FROM tickets WHERE id = $1`

	result, err := q.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete ticket",
			zap.Error(err),
			zap.String("ticket_id", id.String()),
		)
		return fmt.Errorf("delete ticket %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("ticket %s not found", id.String())
	}

	return nil
}

func (r *ticketRepository) scanOne(ctx context.Context, q database.Querier, query string, id uuid.UUID) (*entity.Ticket, error) {
	var ticket entity.Ticket
	err := q.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.ShowtimeID,
		&ticket.CustomerName,
		&ticket.CustomerEmail,
		&ticket.PhoneNumber,
		&ticket.SeatNumber,
		&ticket.Price,
		&ticket.PurchaseDate,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by ID",
			zap.Error(err),
			zap.String("ticket_id", id.String()),
		)
		return nil, fmt.Errorf("find ticket by ID %s: %w", id.String(), err)
	}

	return &ticket, nil
}

func (r *ticketRepository) scanRows(rows pgx.Rows) ([]*entity.Ticket, error) {
	var tickets []*entity.Ticket
	for rows.Next() {
		var ticket entity.Ticket
		err := rows.Scan(
			&ticket.ID,
			&ticket.ShowtimeID,
			&ticket.CustomerName,
			&ticket.CustomerEmail,
			&ticket.PhoneNumber,
			&ticket.SeatNumber,
			&ticket.Price,
			&ticket.PurchaseDate,
			&ticket.Status,
			&ticket.CreatedAt,
			&ticket.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, &ticket)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to read ticket rows", zap.Error(err))
		return nil, fmt.Errorf("read ticket rows: %w", err)
	}

	return tickets, nil
}
