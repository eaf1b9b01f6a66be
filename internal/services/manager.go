package services

import (
	"log/slog"
	"time"

	"github.com/SAP-F-2025/wellness-service/internal/cache"
	"github.com/SAP-F-2025/wellness-service/internal/events"
	"github.com/SAP-F-2025/wellness-service/internal/repositories"
	"github.com/SAP-F-2025/wellness-service/internal/validator"
)

// ServiceManager bundles the service layer for handler wiring.
type ServiceManager interface {
	Student() StudentService
	Telemetry() TelemetryService
	Recommendation() RecommendationService
	Report() ReportService
}

type serviceManager struct {
	student        StudentService
	telemetry      TelemetryService
	recommendation RecommendationService
	report         ReportService
}

// ManagerConfig carries the tunables the services need at construction.
type ManagerConfig struct {
	WindowDays          int
	WindowIncludesToday bool
	CacheTTL            time.Duration
}

func NewServiceManager(
	repo repositories.Repository,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	v *validator.Validator,
	logger *slog.Logger,
	cfg ManagerConfig,
) ServiceManager {
	return &serviceManager{
		student:   NewStudentService(repo, logger, v),
		telemetry: NewTelemetryService(repo, publisher, logger, v),
		recommendation: NewRecommendationService(repo, cacheService, publisher, logger, RecommendationServiceConfig{
			WindowDays:          cfg.WindowDays,
			WindowIncludesToday: cfg.WindowIncludesToday,
			CacheTTL:            cfg.CacheTTL,
		}),
		report: NewReportService(repo, logger),
	}
}

func (m *serviceManager) Student() StudentService               { return m.student }
func (m *serviceManager) Telemetry() TelemetryService           { return m.telemetry }
func (m *serviceManager) Recommendation() RecommendationService { return m.recommendation }
func (m *serviceManager) Report() ReportService                 { return m.report }
