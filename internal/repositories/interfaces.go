package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// ===== SHARED FILTER STRUCTS =====

type StudentFilters struct {
	Class     *string `json:"class"`
	Limit     int     `json:"limit"`
	Offset    int     `json:"offset"`
	SortBy    string  `json:"sort_by"`    // "created_at", "name", "admission_no"
	SortOrder string  `json:"sort_order"` // "asc", "desc"
}

// ===== AGGREGATE REPOSITORY =====

// Repository bundles all per-entity repositories so services take a single
// dependency.
type Repository interface {
	Student() StudentRepository
	AcademicRecord() AcademicRecordRepository
	UsageRecord() UsageRecordRepository
	Recommendation() RecommendationRepository
}

// IsNotFoundError checks if error represents a missing record
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
