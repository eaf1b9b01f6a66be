package postgres

import (
	"context"
	"fmt"

	"github.com/SAP-F-2025/wellness-service/internal/models"
	"github.com/SAP-F-2025/wellness-service/internal/repositories"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecommendationPostgreSQL struct {
	db *gorm.DB
}

func NewRecommendationPostgreSQL(db *gorm.DB) repositories.RecommendationRepository {
	return &RecommendationPostgreSQL{db: db}
}

// Upsert writes the single result row for a student. Recomputing replaces
// the prior row in place; concurrent writers for the same student resolve
// last-write-wins at the row level.
func (r *RecommendationPostgreSQL) Upsert(ctx context.Context, rec *models.Recommendation) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "student_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"current_mark",
				"current_study_hours",
				"current_focus_level",
				"avg_screen_time",
				"avg_night_usage",
				"avg_academic_app_ratio",
				"main_recommendation",
				"extra_tips",
				"generated_at",
				"updated_at",
			}),
		}).
		Create(rec).Error

	if err != nil {
		return fmt.Errorf("failed to upsert recommendation: %w", err)
	}

	return nil
}

// GetByStudentID retrieves the stored result for a student
func (r *RecommendationPostgreSQL) GetByStudentID(ctx context.Context, studentID string) (*models.Recommendation, error) {
	var rec models.Recommendation
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		First(&rec).Error

	if err != nil {
		return nil, err
	}

	return &rec, nil
}

// List retrieves all stored recommendations, most recently generated first
func (r *RecommendationPostgreSQL) List(ctx context.Context) ([]*models.Recommendation, error) {
	var recs []*models.Recommendation
	err := r.db.WithContext(ctx).
		Order("generated_at DESC").
		Find(&recs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}

	return recs, nil
}
