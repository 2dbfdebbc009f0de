package jobs

import (
	"fmt"
	"log"
	"strings"
	"time"

	config "github.com/anjiri1684/tuition_tracker/configs"
	"github.com/anjiri1684/tuition_tracker/models"
	"github.com/anjiri1684/tuition_tracker/notifications"
	"github.com/anjiri1684/tuition_tracker/utils"
	"gorm.io/gorm"
)

// UnmarkedAttendanceReminder returns the cron task that emails the admin
// the students still without an attendance mark for the current day.
func UnmarkedAttendanceReminder(db *gorm.DB) func() {
	return func() {
		log.Println("Running job: UnmarkedAttendanceReminder...")

		today := utils.StartOfDay(time.Now())

		marked := db.Model(&models.Attendance{}).Select("student_id").Where("date = ?", today)

		var unmarked []models.Student
		if err := db.Where("id NOT IN (?)", marked).Find(&unmarked).Error; err != nil {
			log.Printf("Error checking for unmarked attendance: %v", err)
			return
		}

		if len(unmarked) == 0 {
			log.Println("All students are marked for today.")
			return
		}

		var b strings.Builder
		b.WriteString("<h1>Attendance Not Marked Today</h1><ul>")
		for _, s := range unmarked {
			fmt.Fprintf(&b, "<li>%s (%s)</li>", s.Name, s.Email)
		}
		b.WriteString("</ul>")

		log.Printf("Found %d students without a mark for today.", len(unmarked))
		go notifications.SendEmail(
			config.Config("ADMIN_FULL_NAME"),
			config.Config("ADMIN_EMAIL"),
			"Daily Attendance Reminder",
			b.String(),
		)
	}
}
