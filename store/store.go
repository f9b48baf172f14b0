package store

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"gamerental/models"
)

// Open connects to the SQLite database behind the collections and
// migrates the schema. The default DSN is ":memory:", so state lives
// only for the process lifetime. The pool is pinned to a single
// connection: every mutation is a discrete synchronous user action, and
// with the pure-Go driver each connection would otherwise get its own
// private in-memory database.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Game{}, &models.Customer{}, &models.Rental{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return db, nil
}

// Seed inserts the fixed demo records when the catalog is empty, so
// restarting (or reseeding a test store) is idempotent.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Game{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seeded := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	games := []models.Game{
		{
			ID:            "1",
			Title:         "The Legend of Zelda: Tears of the Kingdom",
			Platform:      models.PlatformSwitch,
			Genre:         "Action-Adventure",
			AgeRating:     models.RatingEveryone10,
			DailyRate:     5.99,
			WeeklyRate:    29.99,
			StockQuantity: 3,
			CreatedAt:     seeded,
		},
		{
			ID:            "2",
			Title:         "Final Fantasy XVI",
			Platform:      models.PlatformPS5,
			Genre:         "RPG",
			AgeRating:     models.RatingMature,
			DailyRate:     6.99,
			WeeklyRate:    34.99,
			StockQuantity: 2,
			CreatedAt:     seeded,
		},
		{
			ID:            "3",
			Title:         "Starfield",
			Platform:      models.PlatformXboxX,
			Genre:         "RPG",
			AgeRating:     models.RatingMature,
			DailyRate:     6.99,
			WeeklyRate:    34.99,
			StockQuantity: 4,
			CreatedAt:     seeded,
		},
	}
	if err := db.Create(&games).Error; err != nil {
		return err
	}

	customers := []models.Customer{
		{ID: "1", Name: "John Doe", Phone: "(555) 123-4567", Email: "john@example.com", Address: "123 Main St, City", CreatedAt: seeded},
		{ID: "2", Name: "Jane Smith", Phone: "(555) 987-6543", Email: "jane@example.com", Address: "456 Oak Ave, Town", CreatedAt: seeded},
	}
	if err := db.Create(&customers).Error; err != nil {
		return err
	}

	earlier := time.Date(2024, time.March, 10, 10, 0, 0, 0, time.UTC)
	rentals := []models.Rental{
		{
			ID:          "1",
			GameID:      "1",
			CustomerID:  "1",
			RentalDate:  seeded,
			DueDate:     seeded.AddDate(0, 0, 7),
			TotalAmount: 29.99,
			CreatedAt:   seeded,
		},
		{
			ID:          "2",
			GameID:      "2",
			CustomerID:  "2",
			RentalDate:  earlier,
			DueDate:     earlier.AddDate(0, 0, 7),
			TotalAmount: 34.99,
			CreatedAt:   earlier,
		},
	}
	return db.Create(&rentals).Error
}
