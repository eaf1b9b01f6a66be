package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/wellness-service/internal/models"
	"github.com/SAP-F-2025/wellness-service/internal/repositories"
	"github.com/SAP-F-2025/wellness-service/internal/validator"
)

// StudentService manages the roster the engine computes against.
type StudentService interface {
	Register(ctx context.Context, req *RegisterStudentRequest) (*models.Student, error)
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	List(ctx context.Context, filters repositories.StudentFilters) ([]*models.Student, int64, error)
}

type RegisterStudentRequest struct {
	StudentID   string `json:"student_id" validate:"required,min=1,max=50"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	AdmissionNo string `json:"admission_no" validate:"omitempty,max=50"`
	Class       string `json:"class" validate:"omitempty,max=20"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
}

type studentService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewStudentService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator) StudentService {
	return &studentService{
		repo:      repo,
		logger:    logger,
		validator: v,
	}
}

func (s *studentService) Register(ctx context.Context, req *RegisterStudentRequest) (*models.Student, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	exists, err := s.repo.Student().Exists(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check student existence: %w", err)
	}
	if exists {
		return nil, ErrStudentAlreadyExists
	}

	student := &models.Student{
		StudentID:   req.StudentID,
		Name:        req.Name,
		AdmissionNo: req.AdmissionNo,
		Class:       req.Class,
		DateOfBirth: req.DateOfBirth,
	}

	if err := s.repo.Student().Create(ctx, student); err != nil {
		return nil, fmt.Errorf("failed to register student: %w", err)
	}

	s.logger.Info("Student registered", "student_id", student.StudentID)

	return student, nil
}

func (s *studentService) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	student, err := s.repo.Student().GetByStudentID(ctx, studentID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return student, nil
}

func (s *studentService) List(ctx context.Context, filters repositories.StudentFilters) ([]*models.Student, int64, error) {
	return s.repo.Student().List(ctx, filters)
}
