package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/SAP-F-2025/wellness-service/internal/cache"
	"github.com/SAP-F-2025/wellness-service/internal/events"
	"github.com/SAP-F-2025/wellness-service/internal/models"
	"github.com/SAP-F-2025/wellness-service/internal/repositories"
)

// RecommendationService is the engine boundary: compute-and-persist for a
// single student, cached retrieval, and a batch sweep over the roster.
type RecommendationService interface {
	// Generate computes the recommendation for a student, persists it
	// (replacing any prior result) and returns the stored row. It fails
	// with ErrStudentNotFound for unknown students and ErrNoAcademicData
	// when no academic record exists yet; nothing is persisted on error.
	Generate(ctx context.Context, studentID string) (*models.Recommendation, error)

	// Get returns the most recently computed result for a student, or
	// ErrRecommendationMissing if none has ever been computed.
	Get(ctx context.Context, studentID string) (*models.Recommendation, error)

	// RefreshAll recomputes recommendations for every registered student.
	// Per-student failures do not stop the sweep.
	RefreshAll(ctx context.Context) (*RefreshSummary, error)
}

// RefreshSummary reports the outcome of one batch sweep.
type RefreshSummary struct {
	Total     int              `json:"total"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
	Failures  []RefreshFailure `json:"failures,omitempty"`
}

type RefreshFailure struct {
	StudentID string `json:"student_id"`
	Error     string `json:"error"`
}

type recommendationService struct {
	repo       repositories.Repository
	snapshots  *SnapshotReader
	aggregator *UsageAggregator
	cache      cache.CacheService
	publisher  events.EventPublisher
	logger     *slog.Logger
	cacheTTL   time.Duration
}

// RecommendationServiceConfig carries the window and cache knobs.
type RecommendationServiceConfig struct {
	WindowDays          int
	WindowIncludesToday bool
	CacheTTL            time.Duration
}

func NewRecommendationService(
	repo repositories.Repository,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	logger *slog.Logger,
	cfg RecommendationServiceConfig,
) RecommendationService {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 15 * time.Minute
	}
	return &recommendationService{
		repo:       repo,
		snapshots:  NewSnapshotReader(repo.AcademicRecord()),
		aggregator: NewUsageAggregator(repo.UsageRecord(), cfg.WindowDays, cfg.WindowIncludesToday),
		cache:      cacheService,
		publisher:  publisher,
		logger:     logger,
		cacheTTL:   cfg.CacheTTL,
	}
}

func (s *recommendationService) Generate(ctx context.Context, studentID string) (*models.Recommendation, error) {
	s.logger.Info("Generating recommendation", "student_id", studentID)

	exists, err := s.repo.Student().Exists(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check student existence: %w", err)
	}
	if !exists {
		return nil, ErrStudentNotFound
	}

	// Snapshot and window reads are independent; run them concurrently,
	// both must complete before selection.
	var (
		snapshot *AcademicSnapshot
		usage    *UsageMetrics
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snapshot, err = s.snapshots.Latest(gctx, studentID)
		return err
	})
	g.Go(func() error {
		var err error
		usage, err = s.aggregator.Aggregate(gctx, studentID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	metrics := MetricSet{
		CurrentMark:         snapshot.OverallMark,
		CurrentStudyHours:   snapshot.StudyHours,
		CurrentFocusLevel:   snapshot.FocusLevel,
		AvgScreenTime:       usage.AvgScreenTime,
		AvgNightUsage:       usage.AvgNightUsage,
		AvgAcademicAppRatio: usage.AvgAcademicAppRatio,
	}
	main := SelectRecommendation(metrics)

	rec := &models.Recommendation{
		StudentID:           studentID,
		CurrentMark:         metrics.CurrentMark,
		CurrentStudyHours:   metrics.CurrentStudyHours,
		CurrentFocusLevel:   metrics.CurrentFocusLevel,
		AvgScreenTime:       metrics.AvgScreenTime,
		AvgNightUsage:       metrics.AvgNightUsage,
		AvgAcademicAppRatio: metrics.AvgAcademicAppRatio,
		MainRecommendation:  models.NewMainRecommendationJSON(main),
		ExtraTips:           models.NewExtraTipsJSON(ExtraTips()),
		GeneratedAt:         time.Now().UTC(),
	}

	if err := s.repo.Recommendation().Upsert(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to persist recommendation: %w", err)
	}

	// Re-read so the caller gets the persisted row identifier.
	stored, err := s.repo.Recommendation().GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back recommendation: %w", err)
	}

	if err := s.cache.Set(ctx, recommendationCacheKey(studentID), stored, s.cacheTTL); err != nil {
		s.logger.Warn("Failed to cache recommendation", "student_id", studentID, "error", err)
	}

	event := events.NewEvent(events.EventRecommendationGenerated, events.RecommendationGeneratedEvent{
		StudentID:           studentID,
		Title:               main.Title,
		CurrentMark:         metrics.CurrentMark,
		AvgScreenTime:       metrics.AvgScreenTime,
		AvgNightUsage:       metrics.AvgNightUsage,
		AvgAcademicAppRatio: metrics.AvgAcademicAppRatio,
		GeneratedAt:         stored.GeneratedAt,
	})
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish recommendation event", "student_id", studentID, "error", err)
	}

	s.logger.Info("Recommendation generated",
		"student_id", studentID,
		"title", main.Title)

	return stored, nil
}

func (s *recommendationService) Get(ctx context.Context, studentID string) (*models.Recommendation, error) {
	var cached models.Recommendation
	err := s.cache.Get(ctx, recommendationCacheKey(studentID), &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("Recommendation cache read failed", "student_id", studentID, "error", err)
	}

	rec, err := s.repo.Recommendation().GetByStudentID(ctx, studentID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrRecommendationMissing
		}
		return nil, fmt.Errorf("failed to get recommendation: %w", err)
	}

	if err := s.cache.Set(ctx, recommendationCacheKey(studentID), rec, s.cacheTTL); err != nil {
		s.logger.Warn("Failed to cache recommendation", "student_id", studentID, "error", err)
	}

	return rec, nil
}

func (s *recommendationService) RefreshAll(ctx context.Context) (*RefreshSummary, error) {
	ids, err := s.repo.Student().ListStudentIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	// Clear cached entries up front; students no longer on the roster
	// would otherwise keep serving stale results.
	if err := s.cache.DeletePattern(ctx, "recommendation:*"); err != nil {
		s.logger.Warn("Failed to clear recommendation cache", "error", err)
	}

	summary := &RefreshSummary{Total: len(ids)}
	for _, id := range ids {
		if _, err := s.Generate(ctx, id); err != nil {
			summary.Failed++
			summary.Failures = append(summary.Failures, RefreshFailure{
				StudentID: id,
				Error:     err.Error(),
			})
			s.logger.Warn("Batch refresh failed for student", "student_id", id, "error", err)
			continue
		}
		summary.Succeeded++
	}

	event := events.NewEvent(events.EventRecommendationRefreshed, events.RecommendationRefreshedEvent{
		TotalStudents: summary.Total,
		Succeeded:     summary.Succeeded,
		Failed:        summary.Failed,
		CompletedAt:   time.Now().UTC(),
	})
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish batch refresh event", "error", err)
	}

	return summary, nil
}

func recommendationCacheKey(studentID string) string {
	return "recommendation:" + studentID
}
