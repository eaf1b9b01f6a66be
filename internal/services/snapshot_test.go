package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestSnapshotReader_NormalizesFreeFormFields(t *testing.T) {
	records := new(MockAcademicRecordRepository)
	reader := NewSnapshotReader(records)
	ctx := context.Background()

	tests := []struct {
		name       string
		studyHours string
		focusLevel string
		wantHours  float64
		wantFocus  float64
	}{
		{"numeric strings", "2.5", "7", 2.5, 7},
		{"empty strings", "", "", 0, 0},
		{"unparseable strings", "two hours", "high", 0, 0},
		{"padded strings", " 3 ", "\t8\n", 3, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records.ExpectedCalls = nil
			records.On("GetLatestByStudent", mock.Anything, "STU001").
				Return(academicRecord("STU001", 75, tt.studyHours, tt.focusLevel), nil)

			snap, err := reader.Latest(ctx, "STU001")

			assert.NoError(t, err)
			assert.Equal(t, 75.0, snap.OverallMark)
			assert.Equal(t, tt.wantHours, snap.StudyHours)
			assert.Equal(t, tt.wantFocus, snap.FocusLevel)
		})
	}
}

func TestSnapshotReader_NoRecords(t *testing.T) {
	records := new(MockAcademicRecordRepository)
	reader := NewSnapshotReader(records)

	records.On("GetLatestByStudent", mock.Anything, "STU009").
		Return(nil, gorm.ErrRecordNotFound)

	snap, err := reader.Latest(context.Background(), "STU009")

	assert.Nil(t, snap)
	assert.ErrorIs(t, err, ErrNoAcademicData)
}
