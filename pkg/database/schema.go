package database

import (
	"context"
	"fmt"
)

// Schema statements are idempotent so startup can run them on every boot.
// The CHECK and the partial unique index back the seat-accounting invariant
// at the store level: the counter can never leave [0, total_seats] and two
// Active tickets can never hold the same seat of one showtime.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS movies (
		id UUID PRIMARY KEY,
		title VARCHAR(200) NOT NULL,
		description VARCHAR(500),
		duration_in_minutes INT NOT NULL,
		genre VARCHAR(50),
		rating VARCHAR(10),
		release_date TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS showtimes (
		id UUID PRIMARY KEY,
		movie_id UUID NOT NULL REFERENCES movies(id),
		start_time TIMESTAMPTZ NOT NULL,
		end_time TIMESTAMPTZ NOT NULL,
		hall VARCHAR(50) NOT NULL,
		price NUMERIC(10,2) NOT NULL,
		total_seats INT NOT NULL,
		available_seats INT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		CONSTRAINT showtimes_end_after_start CHECK (end_time >= start_time),
		CONSTRAINT showtimes_seat_bounds CHECK (available_seats >= 0 AND available_seats <= total_seats)
	)`,
	`CREATE TABLE IF NOT EXISTS tickets (
		id UUID PRIMARY KEY,
		showtime_id UUID NOT NULL REFERENCES showtimes(id) ON DELETE CASCADE,
		customer_name VARCHAR(100) NOT NULL,
		customer_email VARCHAR(100) NOT NULL,
		phone_number VARCHAR(20) NOT NULL,
		seat_number INT NOT NULL,
		price NUMERIC(10,2) NOT NULL,
		purchase_date TIMESTAMPTZ NOT NULL,
		status VARCHAR(20) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS tickets_active_seat_uniq
		ON tickets (showtime_id, seat_number) WHERE status = 'Active'`,
	`CREATE INDEX IF NOT EXISTS tickets_showtime_idx ON tickets (showtime_id)`,
}

// EnsureSchema creates the tables and indexes if they do not exist yet.
func EnsureSchema(ctx context.Context, db PgxIface) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
