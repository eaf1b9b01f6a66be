package postgres

import (
	"context"
	"fmt"

	"github.com/SAP-F-2025/wellness-service/internal/models"
	"github.com/SAP-F-2025/wellness-service/internal/repositories"
	"gorm.io/gorm"
)

type StudentPostgreSQL struct {
	db *gorm.DB
}

func NewStudentPostgreSQL(db *gorm.DB) repositories.StudentRepository {
	return &StudentPostgreSQL{db: db}
}

// Create registers a new student record
func (s *StudentPostgreSQL) Create(ctx context.Context, student *models.Student) error {
	if err := s.db.WithContext(ctx).Create(student).Error; err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

// GetByStudentID retrieves a student by their external identifier
func (s *StudentPostgreSQL) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	var student models.Student
	err := s.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		First(&student).Error

	if err != nil {
		return nil, err
	}

	return &student, nil
}

// List retrieves students with filtering and pagination
func (s *StudentPostgreSQL) List(ctx context.Context, filters repositories.StudentFilters) ([]*models.Student, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Student{})

	if filters.Class != nil {
		query = query.Where("class = ?", *filters.Class)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
	}

	sortBy := filters.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	sortOrder := filters.SortOrder
	if sortOrder != "asc" {
		sortOrder = "desc"
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder))

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var students []*models.Student
	if err := query.Find(&students).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list students: %w", err)
	}

	return students, total, nil
}

// Exists checks whether a student identifier resolves to a roster entry
func (s *StudentPostgreSQL) Exists(ctx context.Context, studentID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Student{}).
		Where("student_id = ?", studentID).
		Count(&count).Error

	if err != nil {
		return false, fmt.Errorf("failed to check student existence: %w", err)
	}

	return count > 0, nil
}

// ListStudentIDs returns every registered student identifier
func (s *StudentPostgreSQL) ListStudentIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).
		Model(&models.Student{}).
		Order("student_id ASC").
		Pluck("student_id", &ids).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list student ids: %w", err)
	}

	return ids, nil
}
