package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamerental/rental"
)

type DashboardHandler struct {
	Service *rental.Service
}

// Show renders the stat cards and the five most recent rentals.
func (h *DashboardHandler) Show(c *gin.Context) {
	stats, err := h.Service.Dashboard()
	if err != nil {
		c.String(http.StatusInternalServerError, "Could not load dashboard")
		return
	}
	recent, err := h.Service.RecentActivity(5)
	if err != nil {
		c.String(http.StatusInternalServerError, "Could not load recent activity")
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Stats":      stats,
		"Recent":     recent,
		"IsLoggedIn": true,
		"Flashes":    takeFlashes(c),
	})
}
