package validator

import (
	"github.com/SAP-F-2025/wellness-service/internal/errors"
	"github.com/SAP-F-2025/wellness-service/internal/models"
)

// BusinessValidator checks domain rules that struct tags cannot express.
type BusinessValidator struct{}

// NewBusinessValidator creates a new business validator
func NewBusinessValidator() *BusinessValidator {
	return &BusinessValidator{}
}

// Validate dispatches to the rule set matching the value's type.
func (v *BusinessValidator) Validate(s interface{}) ValidationErrors {
	switch val := s.(type) {
	case *models.UsageRecord:
		return v.ValidateUsageRecord(val)
	case *models.AcademicRecord:
		return v.ValidateAcademicRecord(val)
	default:
		return nil
	}
}

// ValidateUsageRecord enforces consistency between the daily totals.
func (v *BusinessValidator) ValidateUsageRecord(rec *models.UsageRecord) ValidationErrors {
	var errs ValidationErrors

	if rec.NightUsage > rec.ScreenTime {
		errs = append(errs, *errors.NewValidationErrorWithRule(
			"night_usage", "cannot exceed total screen time", "usage_consistency", rec.NightUsage))
	}

	for _, app := range rec.AppsUsed {
		if app.DurationMinutes < 0 {
			errs = append(errs, *errors.NewValidationErrorWithRule(
				"apps_used", "app duration cannot be negative", "usage_consistency", app.AppName))
		}
	}

	return errs
}

// ValidateAcademicRecord enforces mark ranges on the subject breakdown.
// StudyHours and FocusLevel are deliberately not validated here: they are
// free-form strings normalized to 0 at read time.
func (v *BusinessValidator) ValidateAcademicRecord(rec *models.AcademicRecord) ValidationErrors {
	var errs ValidationErrors

	for _, subject := range rec.Subjects {
		if subject.Mark < 0 || subject.Mark > 100 {
			errs = append(errs, *errors.NewValidationErrorWithRule(
				"subjects", "subject mark must be between 0 and 100", "overall_mark", subject.Name))
		}
	}

	return errs
}
