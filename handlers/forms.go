package handlers

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Form DTOs. Required-field and non-negativity checks live here at the
// binding boundary; the domain service never sees an invalid record.

type GameForm struct {
	Title         string  `form:"title" binding:"required"`
	Platform      string  `form:"platform" binding:"required"`
	Genre         string  `form:"genre"`
	AgeRating     string  `form:"age_rating" binding:"required"`
	DailyRate     float64 `form:"daily_rate" binding:"min=0"`
	WeeklyRate    float64 `form:"weekly_rate" binding:"min=0"`
	StockQuantity int     `form:"stock_quantity" binding:"min=0"`
}

type CustomerForm struct {
	Name    string `form:"name" binding:"required"`
	Phone   string `form:"phone" binding:"required"`
	Email   string `form:"email"`
	Address string `form:"address"`
}

type RentalForm struct {
	GameID     string `form:"game_id" binding:"required"`
	CustomerID string `form:"customer_id" binding:"required"`
	RentalType string `form:"rental_type" binding:"required,oneof=daily weekly"`
	Duration   int    `form:"duration" binding:"required,min=1"`
}

// validationMessage turns the first validator field error into a short
// human sentence for the error banner.
func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Invalid form input"
	}
	fe := fieldErrs[0]
	label := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

// fieldLabel spaces out a struct field name: "DailyRate" -> "Daily rate".
func fieldLabel(field string) string {
	if trimmed := strings.TrimSuffix(field, "ID"); trimmed != "" {
		field = trimmed
	}
	var b strings.Builder
	for i, r := range field {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
