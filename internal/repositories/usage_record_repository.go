package repositories

import (
	"context"
	"time"

	"github.com/SAP-F-2025/wellness-service/internal/models"
)

// UsageRecordRepository interface for device telemetry operations
type UsageRecordRepository interface {
	Create(ctx context.Context, record *models.UsageRecord) error

	// GetByStudentInRange returns all records whose Date falls within
	// [from, to] inclusive. Order is not significant to callers; zero
	// records is a normal result, not an error.
	GetByStudentInRange(ctx context.Context, studentID string, from, to time.Time) ([]*models.UsageRecord, error)
}
