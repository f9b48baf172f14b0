package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamerental/models"
	"gamerental/rental"
)

type CustomerHandler struct {
	Service *rental.Service
}

// customerRow pairs a customer with their active-rental count for the
// list screen.
type customerRow struct {
	models.Customer
	ActiveRentals int
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.Service.ListCustomers()
	if err != nil {
		c.String(http.StatusInternalServerError, "Could not load customers")
		return
	}

	rows := make([]customerRow, 0, len(customers))
	for _, cust := range customers {
		active, err := h.Service.CountActiveRentals(cust.ID)
		if err != nil {
			c.String(http.StatusInternalServerError, "Could not load customers")
			return
		}
		rows = append(rows, customerRow{Customer: cust, ActiveRentals: active})
	}

	c.HTML(http.StatusOK, "customers.html", gin.H{
		"Customers":  rows,
		"IsLoggedIn": true,
		"Flashes":    takeFlashes(c),
	})
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var form CustomerForm
	if err := c.ShouldBind(&form); err != nil {
		flash(c, flashError, validationMessage(err))
		c.Redirect(http.StatusFound, "/customers")
		return
	}

	if _, err := h.Service.CreateCustomer(customerFromForm(form)); err != nil {
		flash(c, flashError, "Could not add customer")
	} else {
		flash(c, flashSuccess, "Customer added successfully")
	}
	c.Redirect(http.StatusFound, "/customers")
}

func (h *CustomerHandler) EditForm(c *gin.Context) {
	customer, err := h.Service.GetCustomer(c.Param("id"))
	if err != nil {
		flash(c, flashError, "Customer not found")
		c.Redirect(http.StatusFound, "/customers")
		return
	}

	c.HTML(http.StatusOK, "customer_edit.html", gin.H{
		"Customer":   customer,
		"IsLoggedIn": true,
		"Flashes":    takeFlashes(c),
	})
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var form CustomerForm
	if err := c.ShouldBind(&form); err != nil {
		flash(c, flashError, validationMessage(err))
		c.Redirect(http.StatusFound, "/customers/"+id+"/edit")
		return
	}

	if err := h.Service.UpdateCustomer(id, customerFromForm(form)); err != nil {
		flash(c, flashError, "Could not update customer")
		c.Redirect(http.StatusFound, "/customers")
		return
	}
	flash(c, flashSuccess, "Customer updated successfully")
	c.Redirect(http.StatusFound, "/customers")
}

// Delete refuses to remove a customer with active rentals; the guard
// aborts before anything is mutated.
func (h *CustomerHandler) Delete(c *gin.Context) {
	err := h.Service.DeleteCustomer(c.Param("id"))
	switch {
	case errors.Is(err, rental.ErrActiveRentals):
		flash(c, flashError, "Cannot delete customer with active rentals")
	case errors.Is(err, rental.ErrNotFound):
		flash(c, flashError, "Customer not found")
	case err != nil:
		flash(c, flashError, "Could not delete customer")
	default:
		flash(c, flashSuccess, "Customer deleted successfully")
	}
	c.Redirect(http.StatusFound, "/customers")
}

func customerFromForm(form CustomerForm) models.Customer {
	return models.Customer{
		Name:    form.Name,
		Phone:   form.Phone,
		Email:   form.Email,
		Address: form.Address,
	}
}
