package rental

import (
	"math"
	"time"

	"gamerental/models"
)

// Quote is the priced offer for renting a game: which rate applied, what
// the rental costs in total, and when it is due back. It is computed
// once at rental creation and the amount is immutable afterwards.
type Quote struct {
	RentalType  models.RentalType
	Duration    int
	Rate        float64
	TotalAmount float64
	DueDate     time.Time
}

// NewQuote prices a rental. Daily rentals run duration days at the daily
// rate; weekly rentals run duration*7 days at the weekly rate. The total
// is rounded to cents here so a 7-day rental at 5.99 is exactly 41.93;
// display formatting is a separate concern.
//
// The caller supplies rentalDate (the submission instant) so the
// function stays pure.
func NewQuote(game models.Game, rentalType models.RentalType, duration int, rentalDate time.Time) (Quote, error) {
	if duration < 1 {
		return Quote{}, ErrInvalidDuration
	}

	var rate float64
	var days int
	switch rentalType {
	case models.RentalDaily:
		rate = game.DailyRate
		days = duration
	case models.RentalWeekly:
		rate = game.WeeklyRate
		days = duration * 7
	default:
		return Quote{}, ErrInvalidRentalType
	}

	return Quote{
		RentalType:  rentalType,
		Duration:    duration,
		Rate:        rate,
		TotalAmount: roundToCents(rate * float64(duration)),
		DueDate:     rentalDate.AddDate(0, 0, days),
	}, nil
}

func roundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
