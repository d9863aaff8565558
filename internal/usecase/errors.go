package usecase

import "errors"

// The two domain error kinds. Handlers pick status codes with errors.Is;
// anything not wrapping one of these is an infrastructure failure and
// surfaces as a 500.
var (
	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict means the operation would break seat accounting: the seat
	// is already held or the showtime is sold out.
	ErrConflict = errors.New("conflict")
)
