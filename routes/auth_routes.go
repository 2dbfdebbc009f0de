package routes

import (
	"github.com/anjiri1684/tuition_tracker/handlers"
	"github.com/anjiri1684/tuition_tracker/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	h := handlers.NewAuthHandler(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", h.LoginUser)
	auth.Get("/me", middleware.Protected(), h.Me)
}
