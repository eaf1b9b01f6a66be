package repositories

import (
	"context"

	"github.com/SAP-F-2025/wellness-service/internal/models"
)

// RecommendationRepository interface for the per-student result document
type RecommendationRepository interface {
	// Upsert writes the result keyed by student_id. Exactly one row exists
	// per student; concurrent writers resolve last-write-wins.
	Upsert(ctx context.Context, rec *models.Recommendation) error

	GetByStudentID(ctx context.Context, studentID string) (*models.Recommendation, error)

	// List returns all stored recommendations, newest first (report export).
	List(ctx context.Context) ([]*models.Recommendation, error)
}
