package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamerental/models"
	"gamerental/rental"
)

type GameHandler struct {
	Service *rental.Service
}

// List shows the catalog with the add-game form.
func (h *GameHandler) List(c *gin.Context) {
	games, err := h.Service.ListGames()
	if err != nil {
		c.String(http.StatusInternalServerError, "Could not load games")
		return
	}

	c.HTML(http.StatusOK, "games.html", gin.H{
		"Games":      games,
		"Platforms":  models.KnownPlatforms(),
		"Ratings":    models.KnownAgeRatings(),
		"IsLoggedIn": true,
		"Flashes":    takeFlashes(c),
	})
}

func (h *GameHandler) Create(c *gin.Context) {
	var form GameForm
	if err := c.ShouldBind(&form); err != nil {
		flash(c, flashError, validationMessage(err))
		c.Redirect(http.StatusFound, "/games")
		return
	}

	if _, err := h.Service.CreateGame(gameFromForm(form)); err != nil {
		flash(c, flashError, "Could not add game")
	} else {
		flash(c, flashSuccess, "Game added successfully")
	}
	c.Redirect(http.StatusFound, "/games")
}

// EditForm shows the edit screen for one game.
func (h *GameHandler) EditForm(c *gin.Context) {
	game, err := h.Service.GetGame(c.Param("id"))
	if err != nil {
		flash(c, flashError, "Game not found")
		c.Redirect(http.StatusFound, "/games")
		return
	}

	c.HTML(http.StatusOK, "game_edit.html", gin.H{
		"Game":       game,
		"Platforms":  models.KnownPlatforms(),
		"Ratings":    models.KnownAgeRatings(),
		"IsLoggedIn": true,
		"Flashes":    takeFlashes(c),
	})
}

func (h *GameHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var form GameForm
	if err := c.ShouldBind(&form); err != nil {
		flash(c, flashError, validationMessage(err))
		c.Redirect(http.StatusFound, "/games/"+id+"/edit")
		return
	}

	if err := h.Service.UpdateGame(id, gameFromForm(form)); err != nil {
		flash(c, flashError, "Could not update game")
		c.Redirect(http.StatusFound, "/games")
		return
	}
	flash(c, flashSuccess, "Game updated successfully")
	c.Redirect(http.StatusFound, "/games")
}

// Delete removes a game unconditionally; existing rentals keep the id
// and resolve it as unknown.
func (h *GameHandler) Delete(c *gin.Context) {
	if err := h.Service.DeleteGame(c.Param("id")); err != nil {
		if errors.Is(err, rental.ErrNotFound) {
			flash(c, flashError, "Game not found")
		} else {
			flash(c, flashError, "Could not delete game")
		}
	} else {
		flash(c, flashSuccess, "Game deleted successfully")
	}
	c.Redirect(http.StatusFound, "/games")
}

func gameFromForm(form GameForm) models.Game {
	return models.Game{
		Title:         form.Title,
		Platform:      models.Platform(form.Platform),
		Genre:         form.Genre,
		AgeRating:     models.AgeRating(form.AgeRating),
		DailyRate:     form.DailyRate,
		WeeklyRate:    form.WeeklyRate,
		StockQuantity: form.StockQuantity,
	}
}
