package models

import (
	"time"

	"gorm.io/datatypes"
)

// AppUsage is a single app entry within a daily usage record.
type AppUsage struct {
	AppName         string `json:"appName"`
	DurationMinutes int    `json:"durationMinutes"`
}

// UsageRecord is one day of device telemetry for a student. Day granularity
// only: Date is stored as UTC midnight and at most one record per
// (student, day) is expected - the unique index enforces the hygiene the
// aggregator relies on.
type UsageRecord struct {
	ID         uint                          `json:"id" gorm:"primaryKey"`
	StudentID  string                        `json:"student_id" gorm:"not null;size:50;uniqueIndex:idx_usage_student_date" validate:"required"`
	Date       time.Time                     `json:"date" gorm:"not null;uniqueIndex:idx_usage_student_date" validate:"required"`
	ScreenTime int                           `json:"screen_time" gorm:"not null" validate:"min=0"` // total minutes that day
	NightUsage int                           `json:"night_usage" gorm:"not null" validate:"min=0"` // minutes inside the night window
	AppsUsed   datatypes.JSONSlice[AppUsage] `json:"apps_used" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
}

func (UsageRecord) TableName() string {
	return "usage_records"
}

// NewAppsUsedJSON wraps the app entries for jsonb storage.
func NewAppsUsedJSON(apps []AppUsage) datatypes.JSONSlice[AppUsage] {
	return datatypes.NewJSONSlice(apps)
}

// DayKey normalizes a timestamp to its UTC calendar day.
func DayKey(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
