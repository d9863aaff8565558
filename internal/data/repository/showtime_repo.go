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

const showtimeColumns = `id, movie_id, start_time, end_time, hall, price, total_seats, available_seats, created_at, updated_at`

type ShowtimeRepository interface {
	Create(ctx context.Context, showtime *entity.Showtime) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error)
	FindAll(ctx context.Context) ([]*entity.Showtime, error)
	FindAvailable(ctx context.Context) ([]*entity.Showtime, error)

	// Transactional methods used by the ticket service. FindByIDForUpdate
	// takes a row lock on the showtime so concurrent bookings for the same
	// showtime serialize on it.
	FindByIDForUpdate(ctx context.Context, q database.Querier, id uuid.UUID) (*entity.Showtime, error)
	AdjustAvailableSeats(ctx context.Context, q database.Querier, id uuid.UUID, delta int) error
}

type showtimeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowtimeRepository(db database.PgxIface, log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		db:  db,
		log: log.With(zap.String("repository", "showtime")),
	}
}

func (r *showtimeRepository) Create(ctx context.Context, showtime *entity.Showtime) error {
	query := `
		INSERT INTO showtimes (` + showtimeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		showtime.ID,
		showtime.MovieID,
		showtime.StartTime,
		showtime.EndTime,
		showtime.Hall,
		showtime.Price,
		showtime.TotalSeats,
		showtime.AvailableSeats,
		showtime.CreatedAt,
		showtime.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create showtime",
			zap.Error(err),
			zap.String("movie_id", showtime.MovieID.String()),
			zap.String("hall", showtime.Hall),
		)
		return fmt.Errorf("create showtime: %w", err)
	}

	return nil
}

func (r *showtimeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	query := `SELECT ` + showtimeColumns + ` FROM showtimes WHERE id = $1`

	return r.scanOne(ctx, r.db, query, id)
}

func (r *showtimeRepository) FindAll(ctx context.Context) ([]*entity.Showtime, error) {
	query := `SELECT ` + showtimeColumns + ` FROM showtimes ORDER BY start_time`

	return r.scanMany(ctx, query)
}

// FindAvailable returns bookable showtimes: still in the future and with
// seats left, earliest first.
func (r *showtimeRepository) FindAvailable(ctx context.Context) ([]*entity.Showtime, error) {
	query := `
		SELECT ` + showtimeColumns + `
		FROM showtimes
		WHERE start_time > NOW() AND available_seats > 0
		ORDER BY start_time
	`

	return r.scanMany(ctx, query)
}

func (r *showtimeRepository) FindByIDForUpdate(ctx context.Context, q database.Querier, id uuid.UUID) (*entity.Showtime, error) {
	query := `SELECT ` + showtimeColumns + ` FROM showtimes WHERE id = $1 FOR UPDATE`

	return r.scanOne(ctx, q, query, id)
}

func (r *showtimeRepository) AdjustAvailableSeats(ctx context.Context, q database.Querier, id uuid.UUID, delta int) error {
	query := `
		UPDATE showtimes
		SET available_seats = available_seats + $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := q.Exec(ctx, query, id, delta)
	if err != nil {
		r.log.Error("Failed to adjust available seats",
			zap.Error(err),
			zap.String("showtime_id", id.String()),
			zap.Int("delta", delta),
		)
		return fmt.Errorf("adjust available seats for showtime %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("showtime %s not found", id.String())
	}

	return nil
}

func (r *showtimeRepository) scanOne(ctx context.Context, q database.Querier, query string, id uuid.UUID) (*entity.Showtime, error) {
	var showtime entity.Showtime
	err := q.QueryRow(ctx, query, id).Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.StartTime,
		&showtime.EndTime,
		&showtime.Hall,
		&showtime.Price,
		&showtime.TotalSeats,
		&showtime.AvailableSeats,
		&showtime.CreatedAt,
		&showtime.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find showtime by ID",
			zap.Error(err),
			zap.String("showtime_id", id.String()),
		)
		return nil, fmt.Errorf("find showtime by ID %s: %w", id.String(), err)
	}

	return &showtime, nil
}

func (r *showtimeRepository) scanMany(ctx context.Context, query string) ([]*entity.Showtime, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find showtimes", zap.Error(err))
		return nil, fmt.Errorf("find showtimes: %w", err)
	}
	defer rows.Close()

	var showtimes []*entity.Showtime
	for rows.Next() {
		var showtime entity.Showtime
		err := rows.Scan(
			&showtime.ID,
			&showtime.MovieID,
			&showtime.StartTime,
			&showtime.EndTime,
			&showtime.Hall,
			&showtime.Price,
			&showtime.TotalSeats,
			&showtime.AvailableSeats,
			&showtime.CreatedAt,
			&showtime.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan showtime row", zap.Error(err))
			return nil, fmt.Errorf("scan showtime row: %w", err)
		}
		showtimes = append(showtimes, &showtime)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to read showtime rows", zap.Error(err))
		return nil, fmt.Errorf("read showtime rows: %w", err)
	}

	return showtimes, nil
}
