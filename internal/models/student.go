package models

import (
	"time"

	"gorm.io/gorm"
)

// Student mirrors the externally-managed student roster. The engine only
// needs it for the existence precondition; registration and login live in
// a separate service.
type Student struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	StudentID   string `json:"student_id" gorm:"uniqueIndex;not null;size:50" validate:"required,min=1,max=50"`
	Name        string `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	AdmissionNo string `json:"admission_no" gorm:"uniqueIndex;size:50" validate:"omitempty,max=50"`
	Class       string `json:"class" gorm:"size:20" validate:"omitempty,max=20"`
	DateOfBirth string `json:"date_of_birth" gorm:"size:10" validate:"omitempty,datetime=2006-01-02"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Student) TableName() string {
	return "students"
}
