package rental

import "errors"

// Domain errors. Handlers check these with errors.Is and turn them into
// user-facing notifications; none of them are fatal.
var (
	// ErrNotFound is returned when a lookup id matches no record.
	ErrNotFound = errors.New("not found")

	// ErrActiveRentals guards customer deletion: a customer with one or
	// more active rentals cannot be removed.
	ErrActiveRentals = errors.New("customer has active rentals")

	// ErrAlreadyReturned rejects a second return of the same rental.
	ErrAlreadyReturned = errors.New("rental already returned")

	// ErrInvalidDuration rejects non-positive rental durations.
	ErrInvalidDuration = errors.New("duration must be at least 1")

	// ErrInvalidRentalType rejects rental types other than daily/weekly.
	ErrInvalidRentalType = errors.New("rental type must be daily or weekly")
)
