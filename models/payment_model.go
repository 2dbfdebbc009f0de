package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment is a manual fee record. Month is a free-text label ("January
// 2024"); several payments per student per month are allowed.
type Payment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;index:idx_payments_student_month" json:"studentId"`
	Month     string    `gorm:"size:50;not null;index:idx_payments_student_month" json:"month"`
	Amount    float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	PaidDate  time.Time `gorm:"not null" json:"paidDate"`

	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.PaidDate.IsZero() {
		p.PaidDate = time.Now()
	}
	return nil
}
