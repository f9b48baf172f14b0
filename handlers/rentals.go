package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamerental/models"
	"gamerental/rental"
)

type RentalHandler struct {
	Service *rental.Service
}

// List shows every rental with resolved references and derived status,
// plus the create form fed by the current catalog and customer list.
func (h *RentalHandler) List(c *gin.Context) {
	views, err := h.Service.RentalViews()
	if err != nil {
		c.String(http.StatusInternalServerError, "Could not load rentals")
		return
	}
	games, err := h.Service.ListGames()
	if err != nil {
		c.String(http.StatusInternalServerError, "Could not load games")
		return
	}
	customers, err := h.Service.ListCustomers()
	if err != nil {
		c.String(http.StatusInternalServerError, "Could not load customers")
		return
	}

	c.HTML(http.StatusOK, "rentals.html", gin.H{
		"Rentals":    views,
		"Games":      games,
		"Customers":  customers,
		"IsLoggedIn": true,
		"Flashes":    takeFlashes(c),
	})
}

func (h *RentalHandler) Create(c *gin.Context) {
	var form RentalForm
	if err := c.ShouldBind(&form); err != nil {
		flash(c, flashError, validationMessage(err))
		c.Redirect(http.StatusFound, "/rentals")
		return
	}

	_, err := h.Service.CreateRental(form.GameID, form.CustomerID, models.RentalType(form.RentalType), form.Duration)
	switch {
	case errors.Is(err, rental.ErrNotFound):
		flash(c, flashError, "Game or customer not found")
	case errors.Is(err, rental.ErrInvalidDuration), errors.Is(err, rental.ErrInvalidRentalType):
		flash(c, flashError, err.Error())
	case err != nil:
		flash(c, flashError, "Could not create rental")
	default:
		flash(c, flashSuccess, "Rental created successfully")
	}
	c.Redirect(http.StatusFound, "/rentals")
}

// Return stamps the return date; the record is kept.
func (h *RentalHandler) Return(c *gin.Context) {
	err := h.Service.ReturnRental(c.Param("id"))
	switch {
	case errors.Is(err, rental.ErrNotFound):
		flash(c, flashError, "Rental not found")
	case errors.Is(err, rental.ErrAlreadyReturned):
		flash(c, flashError, "Rental was already returned")
	case err != nil:
		flash(c, flashError, "Could not return rental")
	default:
		flash(c, flashSuccess, "Rental marked as returned")
	}
	c.Redirect(http.StatusFound, "/rentals")
}

// Cancel removes the rental entirely, unlike Return.
func (h *RentalHandler) Cancel(c *gin.Context) {
	err := h.Service.CancelRental(c.Param("id"))
	switch {
	case errors.Is(err, rental.ErrNotFound):
		flash(c, flashError, "Rental not found")
	case err != nil:
		flash(c, flashError, "Could not cancel rental")
	default:
		flash(c, flashSuccess, "Rental cancelled")
	}
	c.Redirect(http.StatusFound, "/rentals")
}
