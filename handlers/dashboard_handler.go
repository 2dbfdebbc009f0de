package handlers

import (
	"time"

	"github.com/anjiri1684/tuition_tracker/models"
	"github.com/anjiri1684/tuition_tracker/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

// GetStats composes the dashboard view: roster size, today's marks,
// this month's income, the five latest payments, and a 7-day attendance
// trend ordered oldest to newest with today last.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	var totalStudents int64
	if err := h.db.Model(&models.Student{}).Count(&totalStudents).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}

	now := time.Now()
	today := utils.StartOfDay(now)

	var todayAttendance []models.Attendance
	if err := h.db.Where("date = ?", today).Find(&todayAttendance).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}
	presentToday, absentToday := 0, 0
	for _, a := range todayAttendance {
		switch a.Status {
		case models.StatusPresent:
			presentToday++
		case models.StatusAbsent:
			absentToday++
		}
	}

	// Income counts payments with paid_date in [month start, last day of
	// month at midnight], the range the dashboard has always used.
	monthStart, nextMonth := utils.MonthRange(now)
	monthEnd := nextMonth.AddDate(0, 0, -1)

	var monthlyPayments []models.Payment
	if err := h.db.Where("paid_date >= ? AND paid_date <= ?", monthStart, monthEnd).Find(&monthlyPayments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}
	var monthlyIncome float64
	for _, payment := range monthlyPayments {
		monthlyIncome += payment.Amount
	}

	var recentPayments []models.Payment
	if err := h.db.Preload("Student", studentProjection("name", "email")).
		Order("paid_date DESC").
		Limit(5).
		Find(&recentPayments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}

	oldest := today.AddDate(0, 0, -6)
	var weekAttendance []models.Attendance
	if err := h.db.Where("date >= ? AND date <= ?", oldest, today).Find(&weekAttendance).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Database error"})
	}

	chart := make([]fiber.Map, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		present, absent := 0, 0
		for _, a := range weekAttendance {
			if !a.Date.Equal(day) {
				continue
			}
			switch a.Status {
			case models.StatusPresent:
				present++
			case models.StatusAbsent:
				absent++
			}
		}
		chart = append(chart, fiber.Map{
			"date":    day.Format("Jan 2"),
			"present": present,
			"absent":  absent,
		})
	}

	return c.JSON(fiber.Map{
		"totalStudents":       totalStudents,
		"presentToday":        presentToday,
		"absentToday":         absentToday,
		"monthlyIncome":       monthlyIncome,
		"recentPayments":      recentPayments,
		"attendanceChartData": chart,
	})
}
