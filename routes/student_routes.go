package routes

import (
	"github.com/anjiri1684/tuition_tracker/handlers"
	"github.com/anjiri1684/tuition_tracker/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func StudentRoutes(app *fiber.App, db *gorm.DB) {
	h := handlers.NewStudentHandler(db)

	students := app.Group("/api/students", middleware.Protected())
	students.Post("/", h.CreateStudent)
	students.Get("/", h.ListStudents)
	students.Get("/:id", h.GetStudent)
	students.Put("/:id", h.UpdateStudent)
	students.Delete("/:id", h.DeleteStudent)
}
