package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/wellness-service/internal/events"
	"github.com/SAP-F-2025/wellness-service/internal/models"
	"github.com/SAP-F-2025/wellness-service/internal/repositories"
	"github.com/SAP-F-2025/wellness-service/internal/validator"
)

// TelemetryService ingests the engine's inputs: academic records and daily
// usage records. Both require the student to exist first.
type TelemetryService interface {
	RecordAcademic(ctx context.Context, req *RecordAcademicRequest) (*models.AcademicRecord, error)
	RecordUsage(ctx context.Context, req *RecordUsageRequest) (*models.UsageRecord, error)
	AcademicHistory(ctx context.Context, studentID string, limit int) ([]*models.AcademicRecord, error)
}

type RecordAcademicRequest struct {
	StudentID   string               `json:"student_id" validate:"required"`
	Subjects    []models.SubjectMark `json:"subjects"`
	OverallMark float64              `json:"overall_mark" validate:"min=0,max=100"`

	// Free-form by design: empty or unparseable values are normalized to
	// 0 at snapshot read time, never rejected here.
	StudyHours string `json:"study_hours" validate:"omitempty,max=20"`
	FocusLevel string `json:"focus_level" validate:"omitempty,max=20"`
}

type RecordUsageRequest struct {
	StudentID  string            `json:"student_id" validate:"required"`
	Date       time.Time         `json:"date" validate:"required,usage_day"`
	ScreenTime int               `json:"screen_time" validate:"min=0"`
	NightUsage int               `json:"night_usage" validate:"min=0"`
	AppsUsed   []models.AppUsage `json:"apps_used"`
}

type telemetryService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewTelemetryService(
	repo repositories.Repository,
	publisher events.EventPublisher,
	logger *slog.Logger,
	v *validator.Validator,
) TelemetryService {
	return &telemetryService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: v,
	}
}

func (s *telemetryService) RecordAcademic(ctx context.Context, req *RecordAcademicRequest) (*models.AcademicRecord, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	if err := s.requireStudent(ctx, req.StudentID); err != nil {
		return nil, err
	}

	record := &models.AcademicRecord{
		StudentID:   req.StudentID,
		Subjects:    models.NewSubjectsJSON(req.Subjects),
		OverallMark: req.OverallMark,
		StudyHours:  req.StudyHours,
		FocusLevel:  req.FocusLevel,
	}

	if errs := s.validator.Business().ValidateAcademicRecord(record); len(errs) > 0 {
		return nil, errs
	}

	if err := s.repo.AcademicRecord().Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record academic data: %w", err)
	}

	s.logger.Info("Academic record stored",
		"student_id", record.StudentID,
		"overall_mark", record.OverallMark)

	return record, nil
}

func (s *telemetryService) RecordUsage(ctx context.Context, req *RecordUsageRequest) (*models.UsageRecord, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	if err := s.requireStudent(ctx, req.StudentID); err != nil {
		return nil, err
	}

	record := &models.UsageRecord{
		StudentID:  req.StudentID,
		Date:       models.DayKey(req.Date),
		ScreenTime: req.ScreenTime,
		NightUsage: req.NightUsage,
		AppsUsed:   models.NewAppsUsedJSON(req.AppsUsed),
	}

	if errs := s.validator.Business().ValidateUsageRecord(record); len(errs) > 0 {
		return nil, errs
	}

	if err := s.repo.UsageRecord().Create(ctx, record); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsageDayAlreadyRecorded
		}
		return nil, fmt.Errorf("failed to record usage: %w", err)
	}

	event := events.NewEvent(events.EventUsageRecorded, events.UsageRecordedEvent{
		StudentID:  record.StudentID,
		Date:       record.Date,
		ScreenTime: record.ScreenTime,
		NightUsage: record.NightUsage,
		AppCount:   len(record.AppsUsed),
	})
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish usage event", "student_id", record.StudentID, "error", err)
	}

	return record, nil
}

func (s *telemetryService) AcademicHistory(ctx context.Context, studentID string, limit int) ([]*models.AcademicRecord, error) {
	if err := s.requireStudent(ctx, studentID); err != nil {
		return nil, err
	}
	return s.repo.AcademicRecord().GetByStudent(ctx, studentID, limit)
}

func (s *telemetryService) requireStudent(ctx context.Context, studentID string) error {
	exists, err := s.repo.Student().Exists(ctx, studentID)
	if err != nil {
		return fmt.Errorf("failed to check student existence: %w", err)
	}
	if !exists {
		return ErrStudentNotFound
	}
	return nil
}
