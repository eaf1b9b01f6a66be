package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SAP-F-2025/wellness-service/internal/models"
	"github.com/SAP-F-2025/wellness-service/internal/repositories"
)

// academicApps is the fixed allow-list of applications counted as
// educational for the academic-app-ratio.
var academicApps = map[string]struct{}{
	"Google Classroom": {},
	"Zoom":             {},
	"Docs":             {},
	"Google Meet":      {},
	"Khan Academy":     {},
	"Coursera":         {},
}

// IsAcademicApp reports whether an app name is on the academic allow-list.
func IsAcademicApp(name string) bool {
	_, ok := academicApps[name]
	return ok
}

// UsageMetrics holds the averaged wellness metrics over a trailing window.
// All values are 0 when the window contained no records.
type UsageMetrics struct {
	AvgScreenTime       float64 `json:"avg_screen_time"`        // minutes/day
	AvgNightUsage       float64 `json:"avg_night_usage"`        // minutes/day
	AvgAcademicAppRatio float64 `json:"avg_academic_app_ratio"` // 0..1
	DaysWithData        int     `json:"days_with_data"`
}

// UsageAggregator scans a trailing window of daily usage records and
// averages them. Partial windows are expected: means divide by the number
// of records found, never by the window length.
type UsageAggregator struct {
	records      repositories.UsageRecordRepository
	windowDays   int
	includeToday bool
	now          func() time.Time
}

func NewUsageAggregator(records repositories.UsageRecordRepository, windowDays int, includeToday bool) *UsageAggregator {
	if windowDays <= 0 {
		windowDays = 14
	}
	return &UsageAggregator{
		records:      records,
		windowDays:   windowDays,
		includeToday: includeToday,
		now:          time.Now,
	}
}

// Window returns the inclusive [from, to] day range relative to ref (UTC).
// The window ends yesterday unless the aggregator was configured to
// include the current day.
func (a *UsageAggregator) Window(ref time.Time) (time.Time, time.Time) {
	end := models.DayKey(ref)
	if !a.includeToday {
		end = end.AddDate(0, 0, -1)
	}
	start := end.AddDate(0, 0, -(a.windowDays - 1))
	return start, end
}

// Aggregate computes the averaged metrics for a student's trailing window.
// An empty window is not an error: all metrics come back 0.
func (a *UsageAggregator) Aggregate(ctx context.Context, studentID string) (*UsageMetrics, error) {
	from, to := a.Window(a.now())

	records, err := a.records.GetByStudentInRange(ctx, studentID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to read usage window: %w", err)
	}

	return AggregateUsage(records), nil
}

// AggregateUsage averages a set of daily records. Record order does not
// matter. The academic-app ratio for one day divides the academic app
// minutes by the summed duration of all app entries that day; days whose
// entries sum to zero contribute a ratio of 0. (Dividing by the day's
// screenTime instead would weight the ratio differently whenever app
// entries do not cover the full screen total.)
func AggregateUsage(records []*models.UsageRecord) *UsageMetrics {
	metrics := &UsageMetrics{}
	if len(records) == 0 {
		return metrics
	}

	var screenSum, nightSum, ratioSum float64
	for _, rec := range records {
		screenSum += float64(rec.ScreenTime)
		nightSum += float64(rec.NightUsage)
		ratioSum += dayAcademicRatio(rec.AppsUsed)
	}

	n := float64(len(records))
	metrics.AvgScreenTime = screenSum / n
	metrics.AvgNightUsage = nightSum / n
	metrics.AvgAcademicAppRatio = ratioSum / n
	metrics.DaysWithData = len(records)

	return metrics
}

func dayAcademicRatio(apps []models.AppUsage) float64 {
	var total, academic int
	for _, app := range apps {
		total += app.DurationMinutes
		if IsAcademicApp(app.AppName) {
			academic += app.DurationMinutes
		}
	}
	if total <= 0 {
		return 0
	}
	return float64(academic) / float64(total)
}
