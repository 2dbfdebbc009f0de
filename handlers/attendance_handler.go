package handlers

import (
	"errors"
	"time"

	"github.com/anjiri1684/tuition_tracker/models"
	"github.com/anjiri1684/tuition_tracker/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceHandler struct {
	db *gorm.DB
}

func NewAttendanceHandler(db *gorm.DB) *AttendanceHandler {
	return &AttendanceHandler{db: db}
}

type MarkAttendanceRequest struct {
	StudentID string `json:"studentId" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=Present Absent"`
}

// MarkAttendance records a status for (student, day). Marking the same
// day again overwrites the status instead of creating a second row, so
// the response is 200 for a re-mark and 201 for a fresh one.
func (h *AttendanceHandler) MarkAttendance(c *fiber.Ctx) error {
	var req MarkAttendanceRequest
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

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid date"})
	}
	day := utils.StartOfDay(date)

	var attendance models.Attendance
	err = h.db.Where("student_id = ? AND date = ?", studentID, day).First(&attendance).Error
	if err == nil {
		attendance.Status = req.Status
		if err := h.db.Save(&attendance).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update attendance"})
		}
		return c.JSON(attendance)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}

	attendance = models.Attendance{
		StudentID: studentID,
		Date:      day,
		Status:    req.Status,
	}
	if err := h.db.Create(&attendance).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost an insert race on the (student, date) index; the row
			// exists now, so treat the mark as an update.
			if err := h.db.Where("student_id = ? AND date = ?", studentID, day).First(&attendance).Error; err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
			}
			attendance.Status = req.Status
			if err := h.db.Save(&attendance).Error; err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update attendance"})
			}
			return c.JSON(attendance)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to mark attendance"})
	}

	return c.Status(fiber.StatusCreated).JSON(attendance)
}

// GetStudentAttendance lists a student's history, optionally narrowed to
// one calendar month via ?month=&year=, with the usual statistics.
func (h *AttendanceHandler) GetStudentAttendance(c *fiber.Ctx) error {
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

	query := h.db.Where("student_id = ?", studentID)

	month := c.QueryInt("month")
	year := c.QueryInt("year")
	if month >= 1 && month <= 12 && year > 0 {
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
		query = query.Where("date >= ? AND date < ?", start, start.AddDate(0, 1, 0))
	}

	var attendance []models.Attendance
	if err := query.Preload("Student", studentProjection("name", "email")).Order("date DESC").Find(&attendance).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}

	totalDays := len(attendance)
	presentDays := 0
	for _, a := range attendance {
		if a.Status == models.StatusPresent {
			presentDays++
		}
	}

	return c.JSON(fiber.Map{
		"attendance": attendance,
		"statistics": fiber.Map{
			"totalDays":   totalDays,
			"presentDays": presentDays,
			"absentDays":  totalDays - presentDays,
			"percentage":  utils.Percentage(int64(presentDays), int64(totalDays)),
		},
	})
}

// ListAttendance returns all records, or exactly one day's when ?date=
// is given.
func (h *AttendanceHandler) ListAttendance(c *fiber.Ctx) error {
	query := h.db.Preload("Student", studentProjection("name", "email", "phone"))

	if d := c.Query("date"); d != "" {
		date, err := utils.ParseDate(d)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid date"})
		}
		query = query.Where("date = ?", utils.StartOfDay(date))
	}

	var attendance []models.Attendance
	if err := query.Order("date DESC").Find(&attendance).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}
	return c.JSON(attendance)
}

// TodaySummary reports today's marks against the student roster.
// notMarked goes negative when stale rows outlive their students; that
// is displayed as-is.
func (h *AttendanceHandler) TodaySummary(c *fiber.Ctx) error {
	today := utils.StartOfDay(time.Now())

	var attendance []models.Attendance
	if err := h.db.Where("date = ?", today).Preload("Student", studentProjection("name", "email")).Find(&attendance).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}

	var totalStudents int64
	if err := h.db.Model(&models.Student{}).Count(&totalStudents).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}

	presentToday, absentToday := 0, 0
	for _, a := range attendance {
		switch a.Status {
		case models.StatusPresent:
			presentToday++
		case models.StatusAbsent:
			absentToday++
		}
	}

	return c.JSON(fiber.Map{
		"date":          today,
		"totalStudents": totalStudents,
		"presentToday":  presentToday,
		"absentToday":   absentToday,
		"notMarked":     totalStudents - int64(len(attendance)),
		"attendance":    attendance,
	})
}
