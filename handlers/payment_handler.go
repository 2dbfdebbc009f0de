package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/anjiri1684/tuition_tracker/models"
	"github.com/anjiri1684/tuition_tracker/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentHandler struct {
	db *gorm.DB
}

func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{db: db}
}

type RecordPaymentRequest struct {
	StudentID string   `json:"studentId" validate:"required"`
	Month     string   `json:"month" validate:"required"`
	Amount    *float64 `json:"amount" validate:"required,gte=0"`
	PaidDate  string   `json:"paidDate"`
}

type UpdatePaymentRequest struct {
	StudentID *string  `json:"studentId"`
	Month     *string  `json:"month" validate:"omitempty,min=1"`
	Amount    *float64 `json:"amount" validate:"omitempty,gte=0"`
	PaidDate  *string  `json:"paidDate"`
}

func (h *PaymentHandler) RecordPayment(c *fiber.Ctx) error {
	var req RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid student ID format"})
	}

	var student models.Student
	if err := h.db.First(&student, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Student not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}

	payment := models.Payment{
		StudentID: studentID,
		Month:     strings.TrimSpace(req.Month),
		Amount:    *req.Amount,
	}
	if req.PaidDate != "" {
		paidDate, err := utils.ParseDate(req.PaidDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid paidDate"})
		}
		payment.PaidDate = paidDate
	}

	if err := h.db.Create(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to record payment"})
	}

	if err := h.db.Preload("Student", studentProjection("name", "email")).First(&payment, "id = ?", payment.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

func (h *PaymentHandler) GetStudentPayments(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid student ID format"})
	}

	var student models.Student
	if err := h.db.First(&student, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Student not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}

	var payments []models.Payment
	if err := h.db.Where("student_id = ?", studentID).
		Preload("Student", studentProjection("name", "email")).
		Order("paid_date DESC").
		Find(&payments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}

	var totalPaid float64
	for _, payment := range payments {
		totalPaid += payment.Amount
	}

	return c.JSON(fiber.Map{
		"payments":     payments,
		"totalPaid":    totalPaid,
		"paymentCount": len(payments),
	})
}

// ListPayments returns all payments, optionally filtered by the exact
// month label (a literal string match, not a date range).
func (h *PaymentHandler) ListPayments(c *fiber.Ctx) error {
	query := h.db.Preload("Student", studentProjection("name", "email", "phone"))

	if month := c.Query("month"); month != "" {
		query = query.Where("month = ?", month)
	}

	var payments []models.Payment
	if err := query.Order("paid_date DESC").Find(&payments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}

	var totalIncome float64
	for _, payment := range payments {
		totalIncome += payment.Amount
	}

	return c.JSON(fiber.Map{
		"payments":     payments,
		"totalIncome":  totalIncome,
		"paymentCount": len(payments),
	})
}

// MonthlySummary aggregates the current calendar month over the
// half-open [month start, next month start) range.
func (h *PaymentHandler) MonthlySummary(c *fiber.Ctx) error {
	now := time.Now()
	start, next := utils.MonthRange(now)

	var payments []models.Payment
	if err := h.db.Where("paid_date >= ? AND paid_date < ?", start, next).
		Preload("Student", studentProjection("name")).
		Find(&payments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}

	var totalIncome float64
	for _, payment := range payments {
		totalIncome += payment.Amount
	}

	return c.JSON(fiber.Map{
		"month":        utils.MonthLabel(now),
		"totalIncome":  totalIncome,
		"paymentCount": len(payments),
		"payments":     payments,
	})
}

func (h *PaymentHandler) UpdatePayment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid payment ID format"})
	}

	var payment models.Payment
	if err := h.db.First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Payment not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}

	var req UpdatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updates := map[string]interface{}{}
	if req.StudentID != nil {
		studentID, err := uuid.Parse(*req.StudentID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid student ID format"})
		}
		var student models.Student
		if err := h.db.First(&student, "id = ?", studentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Student not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
		}
		updates["student_id"] = studentID
	}
	if req.Month != nil {
		updates["month"] = strings.TrimSpace(*req.Month)
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.PaidDate != nil {
		paidDate, err := utils.ParseDate(*req.PaidDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid paidDate"})
		}
		updates["paid_date"] = paidDate
	}

	if len(updates) > 0 {
		if err := h.db.Model(&payment).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update payment"})
		}
	}

	if err := h.db.Preload("Student", studentProjection("name", "email")).First(&payment, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}
	return c.JSON(payment)
}

func (h *PaymentHandler) DeletePayment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid payment ID format"})
	}

	var payment models.Payment
	if err := h.db.First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Payment not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}

	if err := h.db.Delete(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to delete payment"})
	}

	return c.JSON(fiber.Map{"message": "Payment deleted successfully"})
}
