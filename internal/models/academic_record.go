package models

import (
	"time"

	"gorm.io/datatypes"
)

// SubjectMark is one subject entry inside an academic record.
type SubjectMark struct {
	Name string  `json:"name"`
	Mark float64 `json:"mark"`
}

// AcademicRecord is one academic submission for a student. Records are
// append-only; the record with the greatest CreatedAt is the authoritative
// snapshot for recommendation purposes.
//
// StudyHours and FocusLevel arrive from the ingest side as free-form
// strings and may be empty or non-numeric. They are kept verbatim here and
// normalized to float64 (defaulting to 0) when the snapshot is read.
type AcademicRecord struct {
	ID          uint                                `json:"id" gorm:"primaryKey"`
	StudentID   string                              `json:"student_id" gorm:"not null;size:50;index:idx_academic_student_created" validate:"required"`
	Subjects    datatypes.JSONSlice[SubjectMark]    `json:"subjects" gorm:"type:jsonb"`
	OverallMark float64                             `json:"overall_mark" gorm:"not null" validate:"min=0,max=100"`
	StudyHours  string                              `json:"study_hours" gorm:"size:20"`
	FocusLevel  string                              `json:"focus_level" gorm:"size:20"`
	CreatedAt   time.Time                           `json:"created_at" gorm:"index:idx_academic_student_created"`
}

func (AcademicRecord) TableName() string {
	return "academic_records"
}

// NewSubjectsJSON wraps the subject breakdown for jsonb storage.
func NewSubjectsJSON(subjects []SubjectMark) datatypes.JSONSlice[SubjectMark] {
	return datatypes.NewJSONSlice(subjects)
}
