package routes

import (
	"github.com/anjiri1684/tuition_tracker/handlers"
	"github.com/anjiri1684/tuition_tracker/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PaymentRoutes(app *fiber.App, db *gorm.DB) {
	h := handlers.NewPaymentHandler(db)

	payments := app.Group("/api/payments", middleware.Protected())
	payments.Post("/", h.RecordPayment)
	payments.Get("/", h.ListPayments)
	payments.Get("/summary/monthly", h.MonthlySummary)
	payments.Get("/student/:studentId", h.GetStudentPayments)
	payments.Put("/:id", h.UpdatePayment)
	payments.Delete("/:id", h.DeletePayment)
}
