package routes

import (
	"github.com/anjiri1684/tuition_tracker/handlers"
	"github.com/anjiri1684/tuition_tracker/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AttendanceRoutes(app *fiber.App, db *gorm.DB) {
	h := handlers.NewAttendanceHandler(db)

	attendance := app.Group("/api/attendance", middleware.Protected())
	attendance.Post("/", h.MarkAttendance)
	attendance.Get("/", h.ListAttendance)
	// registered before the :studentId route so Fiber does not swallow it
	attendance.Get("/today/summary", h.TodaySummary)
	attendance.Get("/:studentId", h.GetStudentAttendance)
}
