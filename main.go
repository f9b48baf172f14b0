package main

import (
	"html/template"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"gamerental/config"
	"gamerental/handlers"
	"gamerental/rental"
	"gamerental/store"
)

func main() {
	cfg := config.Load()

	// 1. Collection store (in-memory SQLite) with demo seed data
	db, err := store.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("Failed to open store:", err)
	}
	if err := store.Seed(db); err != nil {
		log.Fatal("Failed to seed demo data:", err)
	}

	svc := rental.NewService(db)

	// 2. Router Setup
	r := gin.Default()
	r.SetFuncMap(template.FuncMap{
		"currency": rental.FormatCurrency,
	})
	r.LoadHTMLGlob("templates/*")

	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("gamerental", sessionStore))

	authHandler := &handlers.AuthHandler{}
	dashboardHandler := &handlers.DashboardHandler{Service: svc}
	gameHandler := &handlers.GameHandler{Service: svc}
	customerHandler := &handlers.CustomerHandler{Service: svc}
	rentalHandler := &handlers.RentalHandler{Service: svc}

	// 3. Routes
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(AuthRequired())
	{
		authorized.GET("/", dashboardHandler.Show)

		authorized.GET("/games", gameHandler.List)
		authorized.POST("/games", gameHandler.Create)
		authorized.GET("/games/:id/edit", gameHandler.EditForm)
		authorized.POST("/games/:id", gameHandler.Update)
		authorized.POST("/games/:id/delete", gameHandler.Delete)

		authorized.GET("/customers", customerHandler.List)
		authorized.POST("/customers", customerHandler.Create)
		authorized.GET("/customers/:id/edit", customerHandler.EditForm)
		authorized.POST("/customers/:id", customerHandler.Update)
		authorized.POST("/customers/:id/delete", customerHandler.Delete)

		authorized.GET("/rentals", rentalHandler.List)
		authorized.POST("/rentals", rentalHandler.Create)
		authorized.POST("/rentals/:id/return", rentalHandler.Return)
		authorized.POST("/rentals/:id/cancel", rentalHandler.Cancel)
	}

	r.Run(cfg.Addr)
}

func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !handlers.SignedIn(c) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
