package rental

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamerental/models"
)

var quoteGame = models.Game{
	ID:         "g1",
	Title:      "The Legend of Zelda: Tears of the Kingdom",
	DailyRate:  5.99,
	WeeklyRate: 29.99,
}

func TestNewQuote(t *testing.T) {
	rentalDate := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		rentalType  models.RentalType
		duration    int
		wantTotal   float64
		wantDueDate time.Time
	}{
		{
			name:        "one day",
			rentalType:  models.RentalDaily,
			duration:    1,
			wantTotal:   5.99,
			wantDueDate: time.Date(2024, time.March, 16, 10, 0, 0, 0, time.UTC),
		},
		{
			name:        "seven days rounds to exact cents",
			rentalType:  models.RentalDaily,
			duration:    7,
			wantTotal:   41.93,
			wantDueDate: time.Date(2024, time.March, 22, 10, 0, 0, 0, time.UTC),
		},
		{
			name:        "one week",
			rentalType:  models.RentalWeekly,
			duration:    1,
			wantTotal:   29.99,
			wantDueDate: time.Date(2024, time.March, 22, 10, 0, 0, 0, time.UTC),
		},
		{
			name:        "three weeks",
			rentalType:  models.RentalWeekly,
			duration:    3,
			wantTotal:   89.97,
			wantDueDate: time.Date(2024, time.April, 5, 10, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := NewQuote(quoteGame, tt.rentalType, tt.duration, rentalDate)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, quote.TotalAmount)
			assert.True(t, quote.DueDate.Equal(tt.wantDueDate), "due date %v, want %v", quote.DueDate, tt.wantDueDate)
			assert.Equal(t, tt.duration, quote.Duration)
		})
	}
}

func TestNewQuoteRateSelection(t *testing.T) {
	rentalDate := time.Now()

	daily, err := NewQuote(quoteGame, models.RentalDaily, 3, rentalDate)
	require.NoError(t, err)
	assert.Equal(t, quoteGame.DailyRate, daily.Rate)

	weekly, err := NewQuote(quoteGame, models.RentalWeekly, 3, rentalDate)
	require.NoError(t, err)
	assert.Equal(t, quoteGame.WeeklyRate, weekly.Rate)
}

func TestNewQuoteRejectsNonPositiveDuration(t *testing.T) {
	for _, duration := range []int{0, -1, -30} {
		_, err := NewQuote(quoteGame, models.RentalDaily, duration, time.Now())
		assert.ErrorIs(t, err, ErrInvalidDuration, "duration %d", duration)
	}
}

func TestNewQuoteRejectsUnknownRentalType(t *testing.T) {
	_, err := NewQuote(quoteGame, models.RentalType("monthly"), 1, time.Now())
	assert.ErrorIs(t, err, ErrInvalidRentalType)
}
