package repositories

import (
	"context"

	"github.com/SAP-F-2025/wellness-service/internal/models"
)

// AcademicRecordRepository interface for academic snapshot operations
type AcademicRecordRepository interface {
	Create(ctx context.Context, record *models.AcademicRecord) error

	// GetLatestByStudent returns the record with the greatest CreatedAt for
	// the student, or gorm.ErrRecordNotFound if none exists.
	GetLatestByStudent(ctx context.Context, studentID string) (*models.AcademicRecord, error)

	GetByStudent(ctx context.Context, studentID string, limit int) ([]*models.AcademicRecord, error)
}
