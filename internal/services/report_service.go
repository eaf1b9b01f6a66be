package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/SAP-F-2025/wellness-service/internal/repositories"
)

// ReportService exports stored recommendations for counselors and staff.
type ReportService interface {
	ExportRecommendationsToExcel(ctx context.Context) ([]byte, error)
}

type reportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewReportService(repo repositories.Repository, logger *slog.Logger) ReportService {
	return &reportService{
		repo:   repo,
		logger: logger,
	}
}

func (s *reportService) ExportRecommendationsToExcel(ctx context.Context) ([]byte, error) {
	recs, err := s.repo.Recommendation().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recommendations: %w", err)
	}

	f := excelize.NewFile()
	sheetName := "Recommendations"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{
		"Student ID", "Current Mark", "Study Hours", "Focus Level",
		"Avg Screen Time", "Avg Night Usage", "Academic App Ratio",
		"Recommendation", "Generated At",
	}

	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for rowIndex, rec := range recs {
		main := rec.MainRecommendation.Data()
		row := []interface{}{
			rec.StudentID,
			rec.CurrentMark,
			rec.CurrentStudyHours,
			rec.CurrentFocusLevel,
			rec.AvgScreenTime,
			rec.AvgNightUsage,
			rec.AvgAcademicAppRatio,
			main.Title,
			rec.GeneratedAt.Format(time.RFC3339),
		}
		for colIndex, value := range row {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	s.logger.Info("Exported recommendations report", "rows", len(recs))

	return buf.Bytes(), nil
}
