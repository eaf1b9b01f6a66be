package events

import (
	"time"
)

// EventType represents different types of wellness events
type EventType string

const (
	// Recommendation events
	EventRecommendationGenerated EventType = "recommendation.generated"
	EventRecommendationRefreshed EventType = "recommendation.batch_refreshed"

	// Telemetry events
	EventUsageRecorded EventType = "usage.recorded"
)

// WellnessEvent is the base event structure for all events this service emits
type WellnessEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// RecommendationGeneratedEvent is published after a recommendation has been
// computed and persisted for a student.
type RecommendationGeneratedEvent struct {
	StudentID           string    `json:"student_id"`
	Title               string    `json:"title"`
	CurrentMark         float64   `json:"current_mark"`
	AvgScreenTime       float64   `json:"avg_screen_time"`
	AvgNightUsage       float64   `json:"avg_night_usage"`
	AvgAcademicAppRatio float64   `json:"avg_academic_app_ratio"`
	GeneratedAt         time.Time `json:"generated_at"`
}

// RecommendationRefreshedEvent summarizes one batch sweep over the roster.
type RecommendationRefreshedEvent struct {
	TotalStudents int       `json:"total_students"`
	Succeeded     int       `json:"succeeded"`
	Failed        int       `json:"failed"`
	CompletedAt   time.Time `json:"completed_at"`
}

// UsageRecordedEvent is published when a daily usage record is ingested.
type UsageRecordedEvent struct {
	StudentID  string    `json:"student_id"`
	Date       time.Time `json:"date"`
	ScreenTime int       `json:"screen_time"`
	NightUsage int       `json:"night_usage"`
	AppCount   int       `json:"app_count"`
}
