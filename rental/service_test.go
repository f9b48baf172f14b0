package rental

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamerental/models"
	"gamerental/store"
)

// newTestService builds an isolated in-memory store with a frozen
// clock; tests move time by reassigning svc.now.
func newTestService(t *testing.T, at time.Time) *Service {
	t.Helper()
	db, err := store.Open(":memory:")
	require.NoError(t, err)
	svc := NewService(db)
	svc.now = func() time.Time { return at }
	return svc
}

var testStart = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func mustCreateGame(t *testing.T, svc *Service) models.Game {
	t.Helper()
	game, err := svc.CreateGame(models.Game{
		Title:         "Final Fantasy XVI",
		Platform:      models.PlatformPS5,
		Genre:         "RPG",
		AgeRating:     models.RatingMature,
		DailyRate:     5.99,
		WeeklyRate:    29.99,
		StockQuantity: 2,
	})
	require.NoError(t, err)
	return game
}

func mustCreateCustomer(t *testing.T, svc *Service) models.Customer {
	t.Helper()
	customer, err := svc.CreateCustomer(models.Customer{
		Name:  "John Doe",
		Phone: "(555) 123-4567",
	})
	require.NoError(t, err)
	return customer
}

func TestCreateGameAssignsIdentity(t *testing.T) {
	svc := newTestService(t, testStart)

	a := mustCreateGame(t, svc)
	b := mustCreateGame(t, svc)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.True(t, a.CreatedAt.Equal(testStart))

	got, err := svc.GetGame(a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.Title, got.Title)
}

func TestUpdateGameReplacesFields(t *testing.T) {
	svc := newTestService(t, testStart)
	game := mustCreateGame(t, svc)

	err := svc.UpdateGame(game.ID, models.Game{
		Title:         "Starfield",
		Platform:      models.PlatformXboxX,
		Genre:         "RPG",
		AgeRating:     models.RatingMature,
		DailyRate:     6.99,
		WeeklyRate:    34.99,
		StockQuantity: 4,
	})
	require.NoError(t, err)

	got, err := svc.GetGame(game.ID)
	require.NoError(t, err)
	assert.Equal(t, "Starfield", got.Title)
	assert.Equal(t, 6.99, got.DailyRate)
	assert.Equal(t, 4, got.StockQuantity)
	assert.True(t, got.CreatedAt.Equal(testStart), "created_at must not change on update")
}

func TestGetGameNotFound(t *testing.T) {
	svc := newTestService(t, testStart)
	_, err := svc.GetGame("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateRentalComputesQuote(t *testing.T) {
	svc := newTestService(t, testStart)
	game := mustCreateGame(t, svc)
	customer := mustCreateCustomer(t, svc)

	r, err := svc.CreateRental(game.ID, customer.ID, models.RentalDaily, 7)
	require.NoError(t, err)

	assert.Equal(t, 41.93, r.TotalAmount)
	assert.True(t, r.RentalDate.Equal(testStart))
	assert.True(t, r.DueDate.Equal(time.Date(2024, time.March, 22, 10, 0, 0, 0, time.UTC)))
	assert.Nil(t, r.ReturnDate)
	assert.Equal(t, models.StatusActive, StatusAt(r, testStart))
}

func TestCreateRentalRequiresExistingReferences(t *testing.T) {
	svc := newTestService(t, testStart)
	game := mustCreateGame(t, svc)
	customer := mustCreateCustomer(t, svc)

	_, err := svc.CreateRental("missing", customer.ID, models.RentalDaily, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.CreateRental(game.ID, "missing", models.RentalDaily, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.CreateRental(game.ID, customer.ID, models.RentalDaily, 0)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestReturnRentalAfterDueDateIsStillReturned(t *testing.T) {
	svc := newTestService(t, testStart)
	game := mustCreateGame(t, svc)
	customer := mustCreateCustomer(t, svc)

	r, err := svc.CreateRental(game.ID, customer.ID, models.RentalDaily, 2)
	require.NoError(t, err)

	// Jump well past the due date, then return.
	late := testStart.AddDate(0, 0, 10)
	svc.now = func() time.Time { return late }
	require.NoError(t, svc.ReturnRental(r.ID))

	got, err := svc.GetRental(r.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ReturnDate)
	assert.True(t, got.ReturnDate.Equal(late))
	assert.Equal(t, models.StatusReturned, StatusAt(got, late.AddDate(1, 0, 0)))
}

func TestReturnRentalTwice(t *testing.T) {
	svc := newTestService(t, testStart)
	game := mustCreateGame(t, svc)
	customer := mustCreateCustomer(t, svc)

	r, err := svc.CreateRental(game.ID, customer.ID, models.RentalDaily, 2)
	require.NoError(t, err)

	require.NoError(t, svc.ReturnRental(r.ID))
	assert.ErrorIs(t, svc.ReturnRental(r.ID), ErrAlreadyReturned)
}

func TestCancelRentalRemovesRecord(t *testing.T) {
	svc := newTestService(t, testStart)
	game := mustCreateGame(t, svc)
	customer := mustCreateCustomer(t, svc)

	cancelled, err := svc.CreateRental(game.ID, customer.ID, models.RentalDaily, 2)
	require.NoError(t, err)
	returned, err := svc.CreateRental(game.ID, customer.ID, models.RentalDaily, 2)
	require.NoError(t, err)
	require.NoError(t, svc.ReturnRental(returned.ID))

	require.NoError(t, svc.CancelRental(cancelled.ID))

	// Cancelled is gone, returned remains lookup-able.
	_, err = svc.GetRental(cancelled.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.GetRental(returned.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.CancelRental(cancelled.ID), ErrNotFound)
}

func TestCountActiveRentals(t *testing.T) {
	svc := newTestService(t, testStart)
	game := mustCreateGame(t, svc)
	customer := mustCreateCustomer(t, svc)
	other := mustCreateCustomer(t, svc)

	active, err := svc.CreateRental(game.ID, customer.ID, models.RentalDaily, 5)
	require.NoError(t, err)
	_, err = svc.CreateRental(game.ID, other.ID, models.RentalDaily, 5)
	require.NoError(t, err)

	count, err := svc.CountActiveRentals(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, svc.ReturnRental(active.ID))
	count, err = svc.CountActiveRentals(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestDeleteCustomerGuardedByActiveRentals(t *testing.T) {
	svc := newTestService(t, testStart)
	game := mustCreateGame(t, svc)
	customer := mustCreateCustomer(t, svc)

	r, err := svc.CreateRental(game.ID, customer.ID, models.RentalDaily, 3)
	require.NoError(t, err)

	err = svc.DeleteCustomer(customer.ID)
	assert.ErrorIs(t, err, ErrActiveRentals)

	// Guard violation leaves the collection untouched.
	_, err = svc.GetCustomer(customer.ID)
	assert.NoError(t, err)

	require.NoError(t, svc.ReturnRental(r.ID))
	require.NoError(t, svc.DeleteCustomer(customer.ID))
	_, err = svc.GetCustomer(customer.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCustomerRemovesExactlyOne(t *testing.T) {
	svc := newTestService(t, testStart)
	keep := mustCreateCustomer(t, svc)
	remove := mustCreateCustomer(t, svc)

	require.NoError(t, svc.DeleteCustomer(remove.ID))

	customers, err := svc.ListCustomers()
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, keep.ID, customers[0].ID)
}

func TestDeleteCustomerWithOnlyOverdueRentals(t *testing.T) {
	svc := newTestService(t, testStart)
	game := mustCreateGame(t, svc)
	customer := mustCreateCustomer(t, svc)

	_, err := svc.CreateRental(game.ID, customer.ID, models.RentalDaily, 2)
	require.NoError(t, err)

	// Once the rental is overdue it no longer counts against the guard.
	svc.now = func() time.Time { return testStart.AddDate(0, 0, 10) }
	require.NoError(t, svc.DeleteCustomer(customer.ID))
}

func TestDeleteGameLeavesDanglingReference(t *testing.T) {
	svc := newTestService(t, testStart)
	game := mustCreateGame(t, svc)
	customer := mustCreateCustomer(t, svc)

	_, err := svc.CreateRental(game.ID, customer.ID, models.RentalWeekly, 1)
	require.NoError(t, err)

	// Unconditional delete, even with a rental referencing the game.
	require.NoError(t, svc.DeleteGame(game.ID))

	views, err := svc.RentalViews()
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, UnknownGame, views[0].GameTitle)
	assert.Equal(t, customer.Name, views[0].CustomerName)
}

func TestDashboardStats(t *testing.T) {
	svc := newTestService(t, testStart)
	game := mustCreateGame(t, svc) // stock 2
	customer := mustCreateCustomer(t, svc)
	other := mustCreateCustomer(t, svc)

	_, err := svc.CreateRental(game.ID, customer.ID, models.RentalDaily, 30)
	require.NoError(t, err)
	_, err = svc.CreateRental(game.ID, other.ID, models.RentalDaily, 1)
	require.NoError(t, err)
	returnedRental, err := svc.CreateRental(game.ID, other.ID, models.RentalDaily, 1)
	require.NoError(t, err)
	require.NoError(t, svc.ReturnRental(returnedRental.ID))

	// Two days later: the 1-day rental is overdue, the 30-day one active.
	svc.now = func() time.Time { return testStart.AddDate(0, 0, 2) }

	stats, err := svc.Dashboard()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ActiveRentals)
	assert.Equal(t, 1, stats.OverdueRentals)
	assert.Equal(t, 2, stats.TotalCustomers)
	assert.Equal(t, 2, stats.AvailableGames)
}

func TestRecentActivityOrdersAndCaps(t *testing.T) {
	svc := newTestService(t, testStart)
	game := mustCreateGame(t, svc)
	customer := mustCreateCustomer(t, svc)

	var last models.Rental
	for i := 0; i < 7; i++ {
		at := testStart.AddDate(0, 0, i)
		svc.now = func() time.Time { return at }
		r, err := svc.CreateRental(game.ID, customer.ID, models.RentalDaily, 14)
		require.NoError(t, err)
		last = r
	}

	recent, err := svc.RecentActivity(5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	assert.Equal(t, last.ID, recent[0].ID)
	for i := 1; i < len(recent); i++ {
		assert.False(t, recent[i].RentalDate.After(recent[i-1].RentalDate))
	}
}
