package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/SAP-F-2025/wellness-service/internal/models"
	"github.com/SAP-F-2025/wellness-service/internal/repositories"
	"gorm.io/gorm"
)

type UsageRecordPostgreSQL struct {
	db *gorm.DB
}

func NewUsageRecordPostgreSQL(db *gorm.DB) repositories.UsageRecordRepository {
	return &UsageRecordPostgreSQL{db: db}
}

// Create stores one daily usage record. Date is normalized to UTC midnight
// so the (student_id, date) unique index holds at day granularity.
func (u *UsageRecordPostgreSQL) Create(ctx context.Context, record *models.UsageRecord) error {
	record.Date = models.DayKey(record.Date)
	if err := u.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create usage record: %w", err)
	}
	return nil
}

// GetByStudentInRange retrieves records within [from, to] inclusive
func (u *UsageRecordPostgreSQL) GetByStudentInRange(ctx context.Context, studentID string, from, to time.Time) ([]*models.UsageRecord, error) {
	var records []*models.UsageRecord
	err := u.db.WithContext(ctx).
		Where("student_id = ? AND date >= ? AND date <= ?", studentID, models.DayKey(from), models.DayKey(to)).
		Order("date ASC").
		Find(&records).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get usage records: %w", err)
	}

	return records, nil
}
