package routes

import (
	"github.com/anjiri1684/tuition_tracker/handlers"
	"github.com/anjiri1684/tuition_tracker/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func DashboardRoutes(app *fiber.App, db *gorm.DB) {
	h := handlers.NewDashboardHandler(db)

	dashboard := app.Group("/api/dashboard", middleware.Protected())
	dashboard.Get("/stats", h.GetStats)
}
