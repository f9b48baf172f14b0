package rental

import (
	"time"

	"gamerental/models"
)

// StatusAt derives the rental's status at the given instant. A returned
// rental is returned no matter when it came back; otherwise the rental
// is overdue once now is strictly past the due date. Status is never
// stored, so it can't go stale between reads.
func StatusAt(r models.Rental, now time.Time) models.RentalStatus {
	if r.ReturnDate != nil {
		return models.StatusReturned
	}
	if now.After(r.DueDate) {
		return models.StatusOverdue
	}
	return models.StatusActive
}
