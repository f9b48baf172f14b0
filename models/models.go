package models

import "time"

// Platform is the console a game runs on. The known values cover the
// current catalog, but free-form values are tolerated so a new console
// doesn't need a schema change.
type Platform string

const (
	PlatformPS5     Platform = "PS5"
	PlatformXboxX   Platform = "Xbox Series X"
	PlatformSwitch  Platform = "Nintendo Switch"
	PlatformPS4     Platform = "PS4"
	PlatformXboxOne Platform = "Xbox One"
)

// KnownPlatforms lists the platforms offered in the game form.
func KnownPlatforms() []Platform {
	return []Platform{PlatformPS5, PlatformXboxX, PlatformSwitch, PlatformPS4, PlatformXboxOne}
}

type AgeRating string

const (
	RatingEveryone   AgeRating = "E"
	RatingEveryone10 AgeRating = "E10+"
	RatingTeen       AgeRating = "T"
	RatingMature     AgeRating = "M"
)

// KnownAgeRatings lists the ESRB ratings offered in the game form.
func KnownAgeRatings() []AgeRating {
	return []AgeRating{RatingEveryone, RatingEveryone10, RatingTeen, RatingMature}
}

// RentalType selects which rate and day-multiplier applies.
type RentalType string

const (
	RentalDaily  RentalType = "daily"
	RentalWeekly RentalType = "weekly"
)

// RentalStatus is always derived from ReturnDate/DueDate and the current
// instant; it is never stored on the rental row.
type RentalStatus string

const (
	StatusActive   RentalStatus = "active"
	StatusReturned RentalStatus = "returned"
	StatusOverdue  RentalStatus = "overdue"
)

// Game is a rentable title in the catalog.
type Game struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"not null" json:"title"`
	Platform      Platform  `json:"platform"`
	Genre         string    `json:"genre"`
	AgeRating     AgeRating `json:"age_rating"`
	DailyRate     float64   `json:"daily_rate"`
	WeeklyRate    float64   `json:"weekly_rate"`
	StockQuantity int       `json:"stock_quantity"`
	CreatedAt     time.Time `json:"created_at"`
}

// Customer stores contact details. Email and address are optional.
type Customer struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Phone     string    `gorm:"not null" json:"phone"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Rental links a game to a customer for a billed period. GameID and
// CustomerID are plain references; deleting the referenced row leaves
// them dangling and list views resolve that at read time.
type Rental struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	GameID      string     `gorm:"not null" json:"game_id"`
	CustomerID  string     `gorm:"not null" json:"customer_id"`
	RentalDate  time.Time  `json:"rental_date"`
	DueDate     time.Time  `json:"due_date"`
	ReturnDate  *time.Time `json:"return_date,omitempty"`
	TotalAmount float64    `json:"total_amount"`
	LateFees    *float64   `json:"late_fees,omitempty"` // reserved, never populated
	CreatedAt   time.Time  `json:"created_at"`
}
