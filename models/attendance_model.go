package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// Attendance holds one mark per student per calendar day. Date is always
// truncated to midnight before it reaches the database, so the composite
// unique index is the one-mark-per-day guarantee.
type Attendance struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_student_date" json:"studentId"`
	Date      time.Time `gorm:"not null;uniqueIndex:idx_attendance_student_date" json:"date"`
	Status    string    `gorm:"size:10;not null" json:"status"`

	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
