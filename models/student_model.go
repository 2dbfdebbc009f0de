package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Student struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Email      string    `gorm:"size:255;not null;unique" json:"email"`
	Phone      string    `gorm:"size:50;not null" json:"phone"`
	Address    string    `gorm:"size:255;not null" json:"address"`
	JoinedDate time.Time `gorm:"not null" json:"joinedDate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.JoinedDate.IsZero() {
		s.JoinedDate = time.Now()
	}
	return nil
}
