package models

import (
	"time"

	"gorm.io/datatypes"
)

// MainRecommendation is the single prioritized recommendation selected by
// the rule cascade.
type MainRecommendation struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Reason          string   `json:"reason"`
	ActionableSteps []string `json:"actionable_steps"`
}

// ExtraTip is one static supplementary tip. Tips do not depend on the
// student's metrics.
type ExtraTip struct {
	Title string `json:"title"`
	Tip   string `json:"tip"`
	Icon  string `json:"icon"`
}

// Recommendation is the persisted result of one engine run. Exactly one row
// exists per student; recomputation replaces it in place with a fresh
// GeneratedAt.
type Recommendation struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	StudentID string `json:"student_id" gorm:"uniqueIndex;not null;size:50"`

	// Snapshot metrics
	CurrentMark       float64 `json:"current_mark"`
	CurrentStudyHours float64 `json:"current_study_hours"`
	CurrentFocusLevel float64 `json:"current_focus_level"`

	// Usage window metrics (zero-valued when the window had no records)
	AvgScreenTime       float64 `json:"avg_screen_time"`
	AvgNightUsage       float64 `json:"avg_night_usage"`
	AvgAcademicAppRatio float64 `json:"avg_academic_app_ratio"`

	MainRecommendation datatypes.JSONType[MainRecommendation] `json:"main_recommendation" gorm:"type:jsonb"`
	ExtraTips          datatypes.JSONSlice[ExtraTip]          `json:"extra_tips" gorm:"type:jsonb"`

	GeneratedAt time.Time `json:"generated_at" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}

// NewMainRecommendationJSON wraps a MainRecommendation for jsonb storage.
func NewMainRecommendationJSON(m MainRecommendation) datatypes.JSONType[MainRecommendation] {
	return datatypes.NewJSONType(m)
}

// NewExtraTipsJSON wraps the tip list for jsonb storage.
func NewExtraTipsJSON(tips []ExtraTip) datatypes.JSONSlice[ExtraTip] {
	return datatypes.NewJSONSlice(tips)
}
