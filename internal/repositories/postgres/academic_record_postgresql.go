package postgres

import (
	"context"
	"fmt"

	"github.com/SAP-F-2025/wellness-service/internal/models"
	"github.com/SAP-F-2025/wellness-service/internal/repositories"
	"gorm.io/gorm"
)

type AcademicRecordPostgreSQL struct {
	db *gorm.DB
}

func NewAcademicRecordPostgreSQL(db *gorm.DB) repositories.AcademicRecordRepository {
	return &AcademicRecordPostgreSQL{db: db}
}

// Create appends a new academic record for a student
func (a *AcademicRecordPostgreSQL) Create(ctx context.Context, record *models.AcademicRecord) error {
	if err := a.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create academic record: %w", err)
	}
	return nil
}

// GetLatestByStudent retrieves the most recent record, latest created_at wins
func (a *AcademicRecordPostgreSQL) GetLatestByStudent(ctx context.Context, studentID string) (*models.AcademicRecord, error) {
	var record models.AcademicRecord
	err := a.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		First(&record).Error

	if err != nil {
		return nil, err
	}

	return &record, nil
}

// GetByStudent retrieves a student's academic history, newest first
func (a *AcademicRecordPostgreSQL) GetByStudent(ctx context.Context, studentID string, limit int) ([]*models.AcademicRecord, error) {
	query := a.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	var records []*models.AcademicRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get academic records: %w", err)
	}

	return records, nil
}
