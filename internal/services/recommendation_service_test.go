package services

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/SAP-F-2025/wellness-service/internal/cache"
	"github.com/SAP-F-2025/wellness-service/internal/events"
	"github.com/SAP-F-2025/wellness-service/internal/models"
	"github.com/SAP-F-2025/wellness-service/internal/repositories"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ===== REPOSITORY MOCKS =====

// MockStudentRepository is a mock implementation of StudentRepository
type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) Create(ctx context.Context, student *models.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentRepository) List(ctx context.Context, filters repositories.StudentFilters) ([]*models.Student, int64, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]*models.Student), args.Get(1).(int64), args.Error(2)
}

func (m *MockStudentRepository) Exists(ctx context.Context, studentID string) (bool, error) {
	args := m.Called(ctx, studentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStudentRepository) ListStudentIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

// MockAcademicRecordRepository is a mock implementation of AcademicRecordRepository
type MockAcademicRecordRepository struct {
	mock.Mock
}

func (m *MockAcademicRecordRepository) Create(ctx context.Context, record *models.AcademicRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAcademicRecordRepository) GetLatestByStudent(ctx context.Context, studentID string) (*models.AcademicRecord, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AcademicRecord), args.Error(1)
}

func (m *MockAcademicRecordRepository) GetByStudent(ctx context.Context, studentID string, limit int) ([]*models.AcademicRecord, error) {
	args := m.Called(ctx, studentID, limit)
	return args.Get(0).([]*models.AcademicRecord), args.Error(1)
}

// MockUsageRecordRepository is a mock implementation of UsageRecordRepository
type MockUsageRecordRepository struct {
	mock.Mock
}

func (m *MockUsageRecordRepository) Create(ctx context.Context, record *models.UsageRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockUsageRecordRepository) GetByStudentInRange(ctx context.Context, studentID string, from, to time.Time) ([]*models.UsageRecord, error) {
	args := m.Called(ctx, studentID, from, to)
	return args.Get(0).([]*models.UsageRecord), args.Error(1)
}

// MockRecommendationRepository is a mock implementation of RecommendationRepository
type MockRecommendationRepository struct {
	mock.Mock
}

func (m *MockRecommendationRepository) Upsert(ctx context.Context, rec *models.Recommendation) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRecommendationRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Recommendation, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recommendation), args.Error(1)
}

func (m *MockRecommendationRepository) List(ctx context.Context) ([]*models.Recommendation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Recommendation), args.Error(1)
}

// mockRepository bundles the entity mocks behind the aggregate interface
type mockRepository struct {
	students        *MockStudentRepository
	academics       *MockAcademicRecordRepository
	usage           *MockUsageRecordRepository
	recommendations *MockRecommendationRepository
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		students:        new(MockStudentRepository),
		academics:       new(MockAcademicRecordRepository),
		usage:           new(MockUsageRecordRepository),
		recommendations: new(MockRecommendationRepository),
	}
}

func (r *mockRepository) Student() repositories.StudentRepository               { return r.students }
func (r *mockRepository) AcademicRecord() repositories.AcademicRecordRepository { return r.academics }
func (r *mockRepository) UsageRecord() repositories.UsageRecordRepository       { return r.usage }
func (r *mockRepository) Recommendation() repositories.RecommendationRepository { return r.recommendations }

// memoryCache is an in-process CacheService for tests
type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = data
	return nil
}

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	data, ok := c.entries[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

func (c *memoryCache) DeletePattern(_ context.Context, _ string) error {
	c.entries = make(map[string][]byte)
	return nil
}

// ===== TEST FIXTURES =====

func newTestRecommendationService(repo *mockRepository, c *memoryCache, publisher *events.MockEventPublisher) RecommendationService {
	return NewRecommendationService(repo, c, publisher, discardLogger(), RecommendationServiceConfig{
		WindowDays: 14,
		CacheTTL:   time.Minute,
	})
}

func academicRecord(studentID string, mark float64, studyHours, focusLevel string) *models.AcademicRecord {
	return &models.AcademicRecord{
		StudentID:   studentID,
		OverallMark: mark,
		StudyHours:  studyHours,
		FocusLevel:  focusLevel,
		CreatedAt:   time.Now().Add(-time.Hour),
	}
}

func TestRecommendationService_Generate(t *testing.T) {
	repo := newMockRepository()
	c := newMemoryCache()
	publisher := events.NewMockEventPublisher(discardLogger())
	svc := newTestRecommendationService(repo, c, publisher)
	ctx := context.Background()

	repo.students.On("Exists", ctx, "STU001").Return(true, nil)
	repo.academics.On("GetLatestByStudent", mock.Anything, "STU001").
		Return(academicRecord("STU001", 45.0, "3", "8"), nil)
	repo.usage.On("GetByStudentInRange", mock.Anything, "STU001", mock.Anything, mock.Anything).
		Return([]*models.UsageRecord{}, nil)

	repo.recommendations.On("Upsert", ctx, mock.AnythingOfType("*models.Recommendation")).
		Run(func(args mock.Arguments) {
			// Register the read-back expectation with the row as persisted.
			stored := *args.Get(1).(*models.Recommendation)
			stored.ID = 7
			repo.recommendations.On("GetByStudentID", ctx, "STU001").Return(&stored, nil)
		}).
		Return(nil)

	rec, err := svc.Generate(ctx, "STU001")

	assert.NoError(t, err)
	assert.Equal(t, uint(7), rec.ID)
	assert.Equal(t, "STU001", rec.StudentID)
	assert.Equal(t, 45.0, rec.CurrentMark)

	main := rec.MainRecommendation.Data()
	assert.Equal(t, "Urgent Academic Improvement Needed", main.Title)
	assert.Contains(t, main.Reason, "45.0")
	assert.Len(t, rec.ExtraTips, 5)
	assert.False(t, rec.GeneratedAt.IsZero())

	// Cached under the per-student key.
	var cached models.Recommendation
	assert.NoError(t, c.Get(ctx, "recommendation:STU001", &cached))
	assert.Equal(t, "STU001", cached.StudentID)

	// One generated event published.
	published := publisher.GetPublishedEvents()
	assert.Len(t, published, 1)
	assert.Equal(t, events.EventRecommendationGenerated, published[0].Type)

	repo.recommendations.AssertExpectations(t)
}

func TestRecommendationService_Generate_StudentNotFound(t *testing.T) {
	repo := newMockRepository()
	publisher := events.NewMockEventPublisher(discardLogger())
	svc := newTestRecommendationService(repo, newMemoryCache(), publisher)
	ctx := context.Background()

	repo.students.On("Exists", ctx, "GHOST").Return(false, nil)

	rec, err := svc.Generate(ctx, "GHOST")

	assert.Nil(t, rec)
	assert.ErrorIs(t, err, ErrStudentNotFound)
	assert.Empty(t, publisher.GetPublishedEvents())
	repo.recommendations.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestRecommendationService_Generate_NoAcademicData(t *testing.T) {
	repo := newMockRepository()
	publisher := events.NewMockEventPublisher(discardLogger())
	svc := newTestRecommendationService(repo, newMemoryCache(), publisher)
	ctx := context.Background()

	repo.students.On("Exists", ctx, "STU002").Return(true, nil)
	repo.academics.On("GetLatestByStudent", mock.Anything, "STU002").
		Return(nil, gorm.ErrRecordNotFound)
	repo.usage.On("GetByStudentInRange", mock.Anything, "STU002", mock.Anything, mock.Anything).
		Return([]*models.UsageRecord{}, nil)

	rec, err := svc.Generate(ctx, "STU002")

	assert.Nil(t, rec)
	assert.ErrorIs(t, err, ErrNoAcademicData)
	repo.recommendations.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestRecommendationService_Get_CacheMissThenStore(t *testing.T) {
	repo := newMockRepository()
	c := newMemoryCache()
	publisher := events.NewMockEventPublisher(discardLogger())
	svc := newTestRecommendationService(repo, c, publisher)
	ctx := context.Background()

	stored := &models.Recommendation{
		ID:        3,
		StudentID: "STU003",
		MainRecommendation: models.NewMainRecommendationJSON(models.MainRecommendation{
			Title: "Maintain Your Excellent Progress",
		}),
		GeneratedAt: time.Now().UTC(),
	}
	repo.recommendations.On("GetByStudentID", ctx, "STU003").Return(stored, nil).Once()

	rec, err := svc.Get(ctx, "STU003")

	assert.NoError(t, err)
	assert.Equal(t, uint(3), rec.ID)

	// Second read comes from the cache; the repo is not hit again.
	again, err := svc.Get(ctx, "STU003")
	assert.NoError(t, err)
	assert.Equal(t, "STU003", again.StudentID)
	repo.recommendations.AssertNumberOfCalls(t, "GetByStudentID", 1)
}

func TestRecommendationService_Get_Missing(t *testing.T) {
	repo := newMockRepository()
	publisher := events.NewMockEventPublisher(discardLogger())
	svc := newTestRecommendationService(repo, newMemoryCache(), publisher)
	ctx := context.Background()

	repo.recommendations.On("GetByStudentID", ctx, "STU004").Return(nil, gorm.ErrRecordNotFound)

	rec, err := svc.Get(ctx, "STU004")

	assert.Nil(t, rec)
	assert.ErrorIs(t, err, ErrRecommendationMissing)
}

func TestRecommendationService_RefreshAll_CollectsFailures(t *testing.T) {
	repo := newMockRepository()
	c := newMemoryCache()
	publisher := events.NewMockEventPublisher(discardLogger())
	svc := newTestRecommendationService(repo, c, publisher)
	ctx := context.Background()

	// Entry for a student no longer on the roster; the sweep must drop it.
	assert.NoError(t, c.Set(ctx, "recommendation:GONE", &models.Recommendation{StudentID: "GONE"}, time.Minute))

	repo.students.On("ListStudentIDs", ctx).Return([]string{"STU001", "STU002"}, nil)

	// STU001 generates cleanly.
	repo.students.On("Exists", ctx, "STU001").Return(true, nil)
	repo.academics.On("GetLatestByStudent", mock.Anything, "STU001").
		Return(academicRecord("STU001", 88.0, "3", "9"), nil)
	repo.usage.On("GetByStudentInRange", mock.Anything, "STU001", mock.Anything, mock.Anything).
		Return([]*models.UsageRecord{
			{StudentID: "STU001", ScreenTime: 200, NightUsage: 30, AppsUsed: models.NewAppsUsedJSON([]models.AppUsage{
				{AppName: "Khan Academy", DurationMinutes: 60},
				{AppName: "YouTube", DurationMinutes: 60},
			})},
		}, nil)
	repo.recommendations.On("Upsert", ctx, mock.AnythingOfType("*models.Recommendation")).Return(nil)
	repo.recommendations.On("GetByStudentID", ctx, "STU001").
		Return(&models.Recommendation{ID: 1, StudentID: "STU001", GeneratedAt: time.Now().UTC()}, nil)

	// STU002 has no academic data.
	repo.students.On("Exists", ctx, "STU002").Return(true, nil)
	repo.academics.On("GetLatestByStudent", mock.Anything, "STU002").
		Return(nil, gorm.ErrRecordNotFound)
	repo.usage.On("GetByStudentInRange", mock.Anything, "STU002", mock.Anything, mock.Anything).
		Return([]*models.UsageRecord{}, nil)

	summary, err := svc.RefreshAll(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.Len(t, summary.Failures, 1)
	assert.Equal(t, "STU002", summary.Failures[0].StudentID)

	// One per-student event plus the batch summary event.
	published := publisher.GetPublishedEvents()
	assert.Len(t, published, 2)
	assert.Equal(t, events.EventRecommendationRefreshed, published[len(published)-1].Type)

	// The stale entry is gone; the refreshed student is re-cached.
	var stale models.Recommendation
	assert.ErrorIs(t, c.Get(ctx, "recommendation:GONE", &stale), cache.ErrCacheMiss)
	var refreshed models.Recommendation
	assert.NoError(t, c.Get(ctx, "recommendation:STU001", &refreshed))
	assert.Equal(t, "STU001", refreshed.StudentID)
}

func TestRecommendationService_Generate_RepeatProducesSameContent(t *testing.T) {
	repo := newMockRepository()
	c := newMemoryCache()
	publisher := events.NewMockEventPublisher(discardLogger())
	svc := newTestRecommendationService(repo, c, publisher)
	ctx := context.Background()

	repo.students.On("Exists", ctx, "STU005").Return(true, nil)
	repo.academics.On("GetLatestByStudent", mock.Anything, "STU005").
		Return(academicRecord("STU005", 62.0, "2.5", "6"), nil)
	repo.usage.On("GetByStudentInRange", mock.Anything, "STU005", mock.Anything, mock.Anything).
		Return([]*models.UsageRecord{
			{StudentID: "STU005", ScreenTime: 240, NightUsage: 40, AppsUsed: models.NewAppsUsedJSON([]models.AppUsage{
				{AppName: "Docs", DurationMinutes: 50},
				{AppName: "Instagram", DurationMinutes: 50},
			})},
		}, nil)

	var upserts []models.Recommendation
	repo.recommendations.On("Upsert", ctx, mock.AnythingOfType("*models.Recommendation")).
		Run(func(args mock.Arguments) {
			upserts = append(upserts, *args.Get(1).(*models.Recommendation))
		}).
		Return(nil)
	repo.recommendations.On("GetByStudentID", ctx, "STU005").
		Return(&models.Recommendation{ID: 9, StudentID: "STU005", GeneratedAt: time.Now().UTC()}, nil)

	first, err := svc.Generate(ctx, "STU005")
	assert.NoError(t, err)
	second, err := svc.Generate(ctx, "STU005")
	assert.NoError(t, err)

	// Recomputing with unchanged inputs replaces the row with identical
	// content; only the generation timestamp may move.
	assert.Len(t, upserts, 2)
	assert.Equal(t, upserts[0].MainRecommendation.Data(), upserts[1].MainRecommendation.Data())
	assert.Equal(t, "Boost Your Academic Performance", upserts[1].MainRecommendation.Data().Title)
	assert.Equal(t, []models.ExtraTip(upserts[0].ExtraTips), []models.ExtraTip(upserts[1].ExtraTips))
	assert.Equal(t, upserts[0].CurrentMark, upserts[1].CurrentMark)
	assert.Equal(t, upserts[0].CurrentStudyHours, upserts[1].CurrentStudyHours)
	assert.Equal(t, upserts[0].CurrentFocusLevel, upserts[1].CurrentFocusLevel)
	assert.Equal(t, upserts[0].AvgScreenTime, upserts[1].AvgScreenTime)
	assert.Equal(t, upserts[0].AvgNightUsage, upserts[1].AvgNightUsage)
	assert.Equal(t, upserts[0].AvgAcademicAppRatio, upserts[1].AvgAcademicAppRatio)
	assert.False(t, upserts[1].GeneratedAt.Before(upserts[0].GeneratedAt))

	// Both calls resolve to the same single stored row.
	assert.Equal(t, first.ID, second.ID)
	repo.recommendations.AssertNumberOfCalls(t, "Upsert", 2)
}
