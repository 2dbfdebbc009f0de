package handlers

import (
	"errors"
	"strings"

	"github.com/anjiri1684/tuition_tracker/models"
	"github.com/anjiri1684/tuition_tracker/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentHandler struct {
	db *gorm.DB
}

func NewStudentHandler(db *gorm.DB) *StudentHandler {
	return &StudentHandler{db: db}
}

type CreateStudentRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	Address    string `json:"address" validate:"required"`
	JoinedDate string `json:"joinedDate"`
}

type UpdateStudentRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Phone      *string `json:"phone" validate:"omitempty,min=1"`
	Address    *string `json:"address" validate:"omitempty,min=1"`
	JoinedDate *string `json:"joinedDate"`
}

func (h *StudentHandler) ListStudents(c *fiber.Ctx) error {
	var students []models.Student
	if err := h.db.Order("created_at DESC").Find(&students).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}
	return c.JSON(students)
}

// GetStudent returns one student together with their attendance
// statistics and payment history.
func (h *StudentHandler) GetStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid student ID format"})
	}

	var student models.Student
	if err := h.db.First(&student, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Student not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}

	var totalAttendance, presentCount int64
	if err := h.db.Model(&models.Attendance{}).Where("student_id = ?", id).Count(&totalAttendance).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}
	if err := h.db.Model(&models.Attendance{}).Where("student_id = ? AND status = ?", id, models.StatusPresent).Count(&presentCount).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}

	var payments []models.Payment
	if err := h.db.Where("student_id = ?", id).Order("paid_date DESC").Find(&payments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}

	var totalPaid float64
	for _, payment := range payments {
		totalPaid += payment.Amount
	}

	return c.JSON(fiber.Map{
		"student": student,
		"attendance": fiber.Map{
			"total":      totalAttendance,
			"present":    presentCount,
			"absent":     totalAttendance - presentCount,
			"percentage": utils.Percentage(presentCount, totalAttendance),
		},
		"payments": fiber.Map{
			"records":   payments,
			"totalPaid": totalPaid,
		},
	})
}

func (h *StudentHandler) CreateStudent(c *fiber.Ctx) error {
	var req CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := h.db.Model(&models.Student{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}
	if count > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Student with this email already exists"})
	}

	student := models.Student{
		Name:    strings.TrimSpace(req.Name),
		Email:   email,
		Phone:   strings.TrimSpace(req.Phone),
		Address: strings.TrimSpace(req.Address),
	}
	if req.JoinedDate != "" {
		joined, err := utils.ParseDate(req.JoinedDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid joinedDate"})
		}
		student.JoinedDate = joined
	}

	if err := h.db.Create(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Student with this email already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create student"})
	}

	return c.Status(fiber.StatusCreated).JSON(student)
}

func (h *StudentHandler) UpdateStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid student ID format"})
	}

	var student models.Student
	if err := h.db.First(&student, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Student not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}

	var req UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		updates["phone"] = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		updates["address"] = strings.TrimSpace(*req.Address)
	}
	if req.JoinedDate != nil {
		joined, err := utils.ParseDate(*req.JoinedDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid joinedDate"})
		}
		updates["joined_date"] = joined
	}

	if len(updates) > 0 {
		if err := h.db.Model(&student).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Student with this email already exists"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update student"})
		}
	}

	if err := h.db.First(&student, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}
	return c.JSON(student)
}

// DeleteStudent removes the student and every attendance and payment
// record referencing them, atomically.
func (h *StudentHandler) DeleteStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid student ID format"})
	}

	var student models.Student
	if err := h.db.First(&student, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Student not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", id).Delete(&models.Attendance{}).Error; err != nil {
			return err
		}
		if err := tx.Where("student_id = ?", id).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&student).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to delete student"})
	}

	return c.JSON(fiber.Map{"message": "Student and related records deleted successfully"})
}
