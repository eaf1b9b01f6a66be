package postgres

import (
	"github.com/SAP-F-2025/wellness-service/internal/repositories"
	"gorm.io/gorm"
)

type repository struct {
	student        repositories.StudentRepository
	academicRecord repositories.AcademicRecordRepository
	usageRecord    repositories.UsageRecordRepository
	recommendation repositories.RecommendationRepository
}

// NewRepository builds the aggregate PostgreSQL repository.
func NewRepository(db *gorm.DB) repositories.Repository {
	return &repository{
		student:        NewStudentPostgreSQL(db),
		academicRecord: NewAcademicRecordPostgreSQL(db),
		usageRecord:    NewUsageRecordPostgreSQL(db),
		recommendation: NewRecommendationPostgreSQL(db),
	}
}

func (r *repository) Student() repositories.StudentRepository { return r.student }

func (r *repository) AcademicRecord() repositories.AcademicRecordRepository {
	return r.academicRecord
}

func (r *repository) UsageRecord() repositories.UsageRecordRepository { return r.usageRecord }

func (r *repository) Recommendation() repositories.RecommendationRepository {
	return r.recommendation
}
