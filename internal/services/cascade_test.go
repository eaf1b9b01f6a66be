package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// healthyMetrics returns a MetricSet that triggers no cascade rule.
func healthyMetrics() MetricSet {
	return MetricSet{
		CurrentMark:         85,
		CurrentStudyHours:   3,
		CurrentFocusLevel:   8,
		AvgScreenTime:       200,
		AvgNightUsage:       60,
		AvgAcademicAppRatio: 0.5,
	}
}

func TestSelectRecommendation_UrgentMarkWinsOverEverything(t *testing.T) {
	// Every rule's condition holds; the mark rule has highest priority.
	m := MetricSet{
		CurrentMark:         40,
		CurrentStudyHours:   0,
		CurrentFocusLevel:   1,
		AvgScreenTime:       500,
		AvgNightUsage:       300,
		AvgAcademicAppRatio: 0.1,
	}

	rec := SelectRecommendation(m)

	assert.Equal(t, "Urgent Academic Improvement Needed", rec.Title)
	assert.Contains(t, rec.Reason, "40.0")
	assert.Len(t, rec.ActionableSteps, 5)
}

func TestSelectRecommendation_MarkBoundaries(t *testing.T) {
	m := healthyMetrics()

	// Exactly 50 is not urgent but still below 70.
	m.CurrentMark = 50
	assert.Equal(t, "Boost Your Academic Performance", SelectRecommendation(m).Title)

	m.CurrentMark = 49.9
	assert.Equal(t, "Urgent Academic Improvement Needed", SelectRecommendation(m).Title)

	// Exactly 70 clears both mark tiers.
	m.CurrentMark = 70
	assert.Equal(t, "Maintain Your Excellent Progress", SelectRecommendation(m).Title)
}

func TestSelectRecommendation_FocusBeforeStudyHours(t *testing.T) {
	m := healthyMetrics()
	m.CurrentFocusLevel = 3
	m.CurrentStudyHours = 1

	rec := SelectRecommendation(m)

	assert.Equal(t, "Enhance Your Focus and Concentration", rec.Title)
	assert.Contains(t, rec.Reason, "3.0")
}

func TestSelectRecommendation_StudyHours(t *testing.T) {
	m := healthyMetrics()
	m.CurrentStudyHours = 1.5

	rec := SelectRecommendation(m)

	assert.Equal(t, "Increase Your Daily Study Time", rec.Title)
	assert.Contains(t, rec.Reason, "1.5")

	// Exactly 2 hours is enough.
	m.CurrentStudyHours = 2
	assert.Equal(t, "Maintain Your Excellent Progress", SelectRecommendation(m).Title)
}

func TestSelectRecommendation_ScreenTimeBoundary(t *testing.T) {
	m := healthyMetrics()

	// Exactly 360 does not trigger; strictly above does.
	m.AvgScreenTime = 360
	assert.Equal(t, "Maintain Your Excellent Progress", SelectRecommendation(m).Title)

	m.AvgScreenTime = 360.1
	assert.Equal(t, "Optimize Your Digital Wellness", SelectRecommendation(m).Title)
}

func TestSelectRecommendation_NightUsage(t *testing.T) {
	m := healthyMetrics()
	m.AvgNightUsage = 180

	rec := SelectRecommendation(m)

	assert.Equal(t, "Improve Your Sleep Quality", rec.Title)
	assert.Contains(t, rec.Reason, "180.0")

	m.AvgNightUsage = 120
	assert.Equal(t, "Maintain Your Excellent Progress", SelectRecommendation(m).Title)
}

func TestSelectRecommendation_AcademicRatio(t *testing.T) {
	m := healthyMetrics()
	m.AvgAcademicAppRatio = 0.1

	rec := SelectRecommendation(m)

	assert.Equal(t, "Leverage Technology for Learning", rec.Title)
	// Reason reports a percentage.
	assert.Contains(t, rec.Reason, "10.0")

	// Exactly 0.3 clears the rule.
	m.AvgAcademicAppRatio = 0.3
	assert.Equal(t, "Maintain Your Excellent Progress", SelectRecommendation(m).Title)
}

func TestSelectRecommendation_EmptyWindowFallsToRatioRule(t *testing.T) {
	// A student with good academics but no usage data in the window gets
	// zeroed usage metrics, so the ratio rule fires before the default.
	m := healthyMetrics()
	m.AvgScreenTime = 0
	m.AvgNightUsage = 0
	m.AvgAcademicAppRatio = 0

	rec := SelectRecommendation(m)

	assert.Equal(t, "Leverage Technology for Learning", rec.Title)
}

func TestSelectRecommendation_Deterministic(t *testing.T) {
	m := MetricSet{CurrentMark: 45, AvgScreenTime: 500}

	first := SelectRecommendation(m)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, SelectRecommendation(m))
	}
	assert.Contains(t, first.Reason, "45.0")
}

func TestSelectRecommendation_DefaultBranch(t *testing.T) {
	rec := SelectRecommendation(healthyMetrics())

	assert.Equal(t, "Maintain Your Excellent Progress", rec.Title)
	assert.Contains(t, rec.Reason, "85.0")
	assert.Len(t, rec.ActionableSteps, 5)
}

func TestExtraTips_StaticContent(t *testing.T) {
	tips := ExtraTips()

	assert.Len(t, tips, 5)
	assert.Equal(t, "Stay Hydrated", tips[0].Title)
	assert.Equal(t, "water_drop", tips[0].Icon)
	for _, tip := range tips {
		assert.NotEmpty(t, tip.Title)
		assert.NotEmpty(t, tip.Tip)
		assert.NotEmpty(t, tip.Icon)
	}

	// Identical on every call.
	assert.Equal(t, tips, ExtraTips())
}
