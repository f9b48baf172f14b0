// Package rental is the domain service for the store: it owns the game,
// customer and rental collections and every business rule about them.
// Handlers render what this package computes and nothing more.
package rental

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gamerental/models"
)

// Service wraps the collection store. Construct one per database; tests
// build isolated instances over in-memory stores.
type Service struct {
	db  *gorm.DB
	now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ----- games -----

func (s *Service) ListGames() ([]models.Game, error) {
	var games []models.Game
	err := s.db.Order("created_at, id").Find(&games).Error
	return games, err
}

func (s *Service) GetGame(id string) (models.Game, error) {
	var game models.Game
	err := s.db.First(&game, "id = ?", id).Error
	return game, wrapNotFound(err)
}

// CreateGame assigns a fresh id and creation timestamp and stores the
// game. Field validation happens at the form boundary.
func (s *Service) CreateGame(game models.Game) (models.Game, error) {
	game.ID = uuid.NewString()
	game.CreatedAt = s.now()
	if err := s.db.Create(&game).Error; err != nil {
		return models.Game{}, err
	}
	return game, nil
}

// UpdateGame replaces the editable fields of the game with the given id.
func (s *Service) UpdateGame(id string, updated models.Game) error {
	game, err := s.GetGame(id)
	if err != nil {
		return err
	}
	game.Title = updated.Title
	game.Platform = updated.Platform
	game.Genre = updated.Genre
	game.AgeRating = updated.AgeRating
	game.DailyRate = updated.DailyRate
	game.WeeklyRate = updated.WeeklyRate
	game.StockQuantity = updated.StockQuantity
	return s.db.Save(&game).Error
}

// DeleteGame removes the game unconditionally. Rentals that reference it
// keep their id and are resolved as "unknown" at read time.
func (s *Service) DeleteGame(id string) error {
	res := s.db.Delete(&models.Game{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ----- customers -----

func (s *Service) ListCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	err := s.db.Order("created_at, id").Find(&customers).Error
	return customers, err
}

func (s *Service) GetCustomer(id string) (models.Customer, error) {
	var customer models.Customer
	err := s.db.First(&customer, "id = ?", id).Error
	return customer, wrapNotFound(err)
}

func (s *Service) CreateCustomer(customer models.Customer) (models.Customer, error) {
	customer.ID = uuid.NewString()
	customer.CreatedAt = s.now()
	if err := s.db.Create(&customer).Error; err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

func (s *Service) UpdateCustomer(id string, updated models.Customer) error {
	customer, err := s.GetCustomer(id)
	if err != nil {
		return err
	}
	customer.Name = updated.Name
	customer.Phone = updated.Phone
	customer.Email = updated.Email
	customer.Address = updated.Address
	return s.db.Save(&customer).Error
}

// CountActiveRentals counts the customer's unreturned rentals whose
// derived status is active. Overdue rentals do not count; this mirrors
// the deletion guard as specified.
func (s *Service) CountActiveRentals(customerID string) (int, error) {
	var rentals []models.Rental
	err := s.db.Where("customer_id = ? AND return_date IS NULL", customerID).Find(&rentals).Error
	if err != nil {
		return 0, err
	}
	now := s.now()
	count := 0
	for _, r := range rentals {
		if StatusAt(r, now) == models.StatusActive {
			count++
		}
	}
	return count, nil
}

// DeleteCustomer removes the customer unless active rentals reference
// them. On a guard violation nothing is mutated.
func (s *Service) DeleteCustomer(id string) error {
	if _, err := s.GetCustomer(id); err != nil {
		return err
	}
	active, err := s.CountActiveRentals(id)
	if err != nil {
		return err
	}
	if active > 0 {
		return ErrActiveRentals
	}
	return s.db.Delete(&models.Customer{}, "id = ?", id).Error
}

// ----- rentals -----

func (s *Service) ListRentals() ([]models.Rental, error) {
	var rentals []models.Rental
	err := s.db.Order("created_at, id").Find(&rentals).Error
	return rentals, err
}

func (s *Service) GetRental(id string) (models.Rental, error) {
	var r models.Rental
	err := s.db.First(&r, "id = ?", id).Error
	return r, wrapNotFound(err)
}

// CreateRental prices the rental at the current instant and stores it.
// Both references must exist at creation time.
func (s *Service) CreateRental(gameID, customerID string, rentalType models.RentalType, duration int) (models.Rental, error) {
	game, err := s.GetGame(gameID)
	if err != nil {
		return models.Rental{}, err
	}
	if _, err := s.GetCustomer(customerID); err != nil {
		return models.Rental{}, err
	}

	now := s.now()
	quote, err := NewQuote(game, rentalType, duration, now)
	if err != nil {
		return models.Rental{}, err
	}

	r := models.Rental{
		ID:          uuid.NewString(),
		GameID:      gameID,
		CustomerID:  customerID,
		RentalDate:  now,
		DueDate:     quote.DueDate,
		TotalAmount: quote.TotalAmount,
		CreatedAt:   now,
	}
	if err := s.db.Create(&r).Error; err != nil {
		return models.Rental{}, err
	}
	return r, nil
}

// ReturnRental stamps the return instant. The record is kept and its
// derived status becomes returned, even when the due date has passed.
func (s *Service) ReturnRental(id string) error {
	r, err := s.GetRental(id)
	if err != nil {
		return err
	}
	if r.ReturnDate != nil {
		return ErrAlreadyReturned
	}
	now := s.now()
	r.ReturnDate = &now
	return s.db.Save(&r).Error
}

// CancelRental hard-deletes the rental. Unlike a return it leaves no
// record behind: a later lookup reports not found.
func (s *Service) CancelRental(id string) error {
	res := s.db.Delete(&models.Rental{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
