package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SAP-F-2025/wellness-service/internal/repositories"
	"github.com/SAP-F-2025/wellness-service/internal/utils"
)

// AcademicSnapshot is the normalized view of a student's most recent
// academic record. StudyHours and FocusLevel are parsed from their
// free-form stored values; empty or unparseable input becomes 0 rather
// than an error.
type AcademicSnapshot struct {
	StudentID   string    `json:"student_id"`
	OverallMark float64   `json:"overall_mark"`
	StudyHours  float64   `json:"study_hours"`
	FocusLevel  float64   `json:"focus_level"`
	CreatedAt   time.Time `json:"created_at"`
}

// SnapshotReader extracts the authoritative academic snapshot per student:
// the record with the greatest createdAt.
type SnapshotReader struct {
	records repositories.AcademicRecordRepository
}

func NewSnapshotReader(records repositories.AcademicRecordRepository) *SnapshotReader {
	return &SnapshotReader{records: records}
}

// Latest returns the normalized snapshot, or ErrNoAcademicData when the
// student has no academic records yet.
func (r *SnapshotReader) Latest(ctx context.Context, studentID string) (*AcademicSnapshot, error) {
	record, err := r.records.GetLatestByStudent(ctx, studentID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrNoAcademicData
		}
		return nil, fmt.Errorf("failed to read academic snapshot: %w", err)
	}

	return &AcademicSnapshot{
		StudentID:   record.StudentID,
		OverallMark: record.OverallMark,
		StudyHours:  utils.ParseFloatOrZero(record.StudyHours),
		FocusLevel:  utils.ParseFloatOrZero(record.FocusLevel),
		CreatedAt:   record.CreatedAt,
	}, nil
}
