package repositories

import (
	"context"

	"github.com/SAP-F-2025/wellness-service/internal/models"
)

// StudentRepository interface for roster operations
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	List(ctx context.Context, filters StudentFilters) ([]*models.Student, int64, error)

	// Existence precondition for recommendation computation
	Exists(ctx context.Context, studentID string) (bool, error)

	// Batch sweep support
	ListStudentIDs(ctx context.Context) ([]string, error)
}
