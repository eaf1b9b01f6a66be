package services

import (
	"fmt"

	"github.com/SAP-F-2025/wellness-service/internal/models"
)

// MetricSet is the full input to the recommendation selector: three
// academic metrics from the snapshot and three usage metrics from the
// trailing window. All six are plain numbers; anything missing or
// malformed upstream has already been normalized to 0.
type MetricSet struct {
	CurrentMark       float64 `json:"current_mark"`
	CurrentStudyHours float64 `json:"current_study_hours"`
	CurrentFocusLevel float64 `json:"current_focus_level"`

	AvgScreenTime       float64 `json:"avg_screen_time"`
	AvgNightUsage       float64 `json:"avg_night_usage"`
	AvgAcademicAppRatio float64 `json:"avg_academic_app_ratio"`
}

// recommendationRule pairs a predicate with the template it produces.
// Rules are evaluated in order; the first match wins.
type recommendationRule struct {
	matches func(m MetricSet) bool
	build   func(m MetricSet) models.MainRecommendation
}

// Selection thresholds. Strict comparisons throughout: a mark of exactly
// 50 falls through to the next tier, screen time of exactly 360 does not
// trigger the digital wellness branch.
const (
	urgentMarkThreshold       = 50.0
	lowMarkThreshold          = 70.0
	lowFocusThreshold         = 5.0
	lowStudyHoursThreshold    = 2.0
	highScreenTimeThreshold   = 360.0 // minutes/day
	highNightUsageThreshold   = 120.0 // minutes/day
	lowAcademicRatioThreshold = 0.3
)

var recommendationRules = []recommendationRule{
	{
		matches: func(m MetricSet) bool { return m.CurrentMark < urgentMarkThreshold },
		build: func(m MetricSet) models.MainRecommendation {
			return models.MainRecommendation{
				Title:       "Urgent Academic Improvement Needed",
				Description: "Your current academic performance needs immediate attention. A structured recovery plan now will make the biggest difference.",
				Reason:      fmt.Sprintf("Your overall mark is %.1f, which is below the passing threshold of 50.", m.CurrentMark),
				ActionableSteps: []string{
					"Meet with your teachers this week to identify the subjects that need the most work",
					"Set up a fixed daily study schedule of at least 2 hours",
					"Start with the fundamentals of each weak subject before attempting advanced topics",
					"Ask a classmate, tutor, or family member to check your progress every few days",
					"Remove distractions from your study space, especially your phone",
				},
			}
		},
	},
	{
		matches: func(m MetricSet) bool { return m.CurrentMark < lowMarkThreshold },
		build: func(m MetricSet) models.MainRecommendation {
			return models.MainRecommendation{
				Title:       "Boost Your Academic Performance",
				Description: "You are passing, but there is clear room to raise your marks with a few consistent habits.",
				Reason:      fmt.Sprintf("Your overall mark is %.1f, leaving room for improvement before the 70 mark.", m.CurrentMark),
				ActionableSteps: []string{
					"Review your notes within 24 hours of each class to lock in what you learned",
					"Practice past papers or exercises for your two weakest subjects each week",
					"Join or form a small study group with classmates",
					"Ask questions in class whenever something is unclear instead of noting it for later",
					"Track your marks per subject so you can see which efforts pay off",
				},
			}
		},
	},
	{
		matches: func(m MetricSet) bool { return m.CurrentFocusLevel < lowFocusThreshold },
		build: func(m MetricSet) models.MainRecommendation {
			return models.MainRecommendation{
				Title:       "Enhance Your Focus and Concentration",
				Description: "Your marks are solid, but your reported focus level is holding you back from studying efficiently.",
				Reason:      fmt.Sprintf("Your focus level is %.1f out of 10, below the healthy threshold of 5.", m.CurrentFocusLevel),
				ActionableSteps: []string{
					"Use the Pomodoro technique: 25 minutes of focused work, then a 5 minute break",
					"Study in a quiet space and put your phone in another room",
					"Do one subject at a time instead of switching between tasks",
					"Get at least 8 hours of sleep; focus drops sharply when you are tired",
					"Take a short walk or stretch before long study sessions",
				},
			}
		},
	},
	{
		matches: func(m MetricSet) bool { return m.CurrentStudyHours < lowStudyHoursThreshold },
		build: func(m MetricSet) models.MainRecommendation {
			return models.MainRecommendation{
				Title:       "Increase Your Daily Study Time",
				Description: "Your focus and marks are fine, but your daily study time is below what sustained progress needs.",
				Reason:      fmt.Sprintf("You study %.1f hours per day, below the recommended minimum of 2 hours.", m.CurrentStudyHours),
				ActionableSteps: []string{
					"Block two fixed hours in your daily timetable for study, same time every day",
					"Split the time across subjects so no subject goes untouched for more than two days",
					"Start with the hardest subject while your energy is highest",
					"Use a simple log to record the hours you actually studied each day",
					"Increase gradually: add 15 minutes per week until you reach a comfortable routine",
				},
			}
		},
	},
	{
		matches: func(m MetricSet) bool { return m.AvgScreenTime > highScreenTimeThreshold },
		build: func(m MetricSet) models.MainRecommendation {
			return models.MainRecommendation{
				Title:       "Optimize Your Digital Wellness",
				Description: "Your academics look healthy, but your daily screen time is high enough to crowd out rest and study.",
				Reason:      fmt.Sprintf("Your average screen time is %.1f minutes per day, above the recommended maximum of 360.", m.AvgScreenTime),
				ActionableSteps: []string{
					"Set app timers for your most used entertainment apps",
					"Replace 30 minutes of scrolling with a non-screen activity you enjoy",
					"Keep your phone out of reach during study sessions",
					"Turn off non-essential notifications to reduce pick-ups",
					"Plan one screen-free block of at least an hour every day",
				},
			}
		},
	},
	{
		matches: func(m MetricSet) bool { return m.AvgNightUsage > highNightUsageThreshold },
		build: func(m MetricSet) models.MainRecommendation {
			return models.MainRecommendation{
				Title:       "Improve Your Sleep Quality",
				Description: "Late-night device use is eating into your sleep, and sleep is the foundation of both focus and memory.",
				Reason:      fmt.Sprintf("Your average night-time usage is %.1f minutes, above the recommended maximum of 120.", m.AvgNightUsage),
				ActionableSteps: []string{
					"Stop using your phone at least 30 minutes before bed",
					"Charge your phone outside your bedroom overnight",
					"Enable night mode or a wind-down routine after 21:00",
					"Keep a consistent bedtime, including weekends",
					"Replace late-night scrolling with reading or listening to calm music",
				},
			}
		},
	},
	{
		matches: func(m MetricSet) bool { return m.AvgAcademicAppRatio < lowAcademicRatioThreshold },
		build: func(m MetricSet) models.MainRecommendation {
			return models.MainRecommendation{
				Title:       "Leverage Technology for Learning",
				Description: "Your habits are healthy overall, but very little of your device time goes to learning apps - your phone could be working for you.",
				Reason:      fmt.Sprintf("Only %.1f%% of your app time goes to educational apps, below the suggested 30%%.", m.AvgAcademicAppRatio*100),
				ActionableSteps: []string{
					"Install one learning app for a subject you want to improve, such as Khan Academy",
					"Swap 20 minutes of entertainment time for an educational video each day",
					"Use Google Classroom or Docs to organize your notes and assignments",
					"Follow channels or podcasts related to your favorite subject",
					"Review your weekly app usage and aim to raise the educational share a little each week",
				},
			}
		},
	},
}

// defaultRecommendation is returned when no cascade rule fires.
func defaultRecommendation(m MetricSet) models.MainRecommendation {
	return models.MainRecommendation{
		Title:       "Maintain Your Excellent Progress",
		Description: "Your academic performance and digital habits are all in a healthy range. Keep doing what works.",
		Reason: fmt.Sprintf("Your overall mark is %.1f, your focus and study routine are on track, and your device usage is balanced.",
			m.CurrentMark),
		ActionableSteps: []string{
			"Keep your current study schedule; consistency is what got you here",
			"Periodically review your goals and set a slightly more ambitious target",
			"Share your study techniques with classmates who are struggling",
			"Try one new learning method this month to keep things fresh",
			"Protect your sleep and downtime; balance is part of performance",
		},
	}
}

// SelectRecommendation evaluates the rule cascade in priority order and
// returns exactly one recommendation: the first rule whose condition
// holds, or the default when none do. Pure function of its inputs.
func SelectRecommendation(m MetricSet) models.MainRecommendation {
	for _, rule := range recommendationRules {
		if rule.matches(m) {
			return rule.build(m)
		}
	}
	return defaultRecommendation(m)
}

// ExtraTips returns the static supplementary tips. Identical for every
// student, independent of metrics.
func ExtraTips() []models.ExtraTip {
	return []models.ExtraTip{
		{
			Title: "Stay Hydrated",
			Tip:   "Drink water regularly while studying; even mild dehydration reduces concentration.",
			Icon:  "water_drop",
		},
		{
			Title: "Take Regular Breaks",
			Tip:   "Short breaks every 25-30 minutes keep your mind fresh and improve retention.",
			Icon:  "schedule",
		},
		{
			Title: "Sleep Well",
			Tip:   "Aim for 8 hours of sleep; your brain consolidates what you learned while you rest.",
			Icon:  "bedtime",
		},
		{
			Title: "Exercise Daily",
			Tip:   "Even 20 minutes of physical activity boosts mood, energy, and focus.",
			Icon:  "directions_run",
		},
		{
			Title: "Eat Brain Food",
			Tip:   "Fruits, nuts, and whole grains give steadier energy than sugary snacks.",
			Icon:  "restaurant",
		},
	}
}
