package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studentlife/copilot/internal/app/models"
	"github.com/studentlife/copilot/internal/pkg/apperrors"
	"github.com/studentlife/copilot/internal/store"
)

func TestSnapshot_AggregatesAcrossDomains(t *testing.T) {
	st := newTestStore(store.Data{
		Students: []models.Student{testStudent("st-1", "Alex Rivera", 3.4)},
		Enrollments: []models.Enrollment{
			{ID: "e-1", StudentID: "st-1", CourseID: "c-1", Grade: 88, Attendance: 95},
			{ID: "e-2", StudentID: "st-1", CourseID: "c-2", Grade: 72, Attendance: 80},
		},
		WellbeingLogs: []models.WellbeingLog{
			{ID: "w-1", StudentID: "st-1", MoodScore: 2, SleepHours: 4},
			{ID: "w-2", StudentID: "st-1", MoodScore: 4, SleepHours: 8},
		},
		Problems: []models.CodingProblem{
			{ID: "p-1", Solved: true},
			{ID: "p-2", Solved: false},
			{ID: "p-3", Solved: true},
		},
		Finance: []models.FinanceEntry{
			{ID: "f-1", Amount: 400},
			{ID: "f-2", Amount: 100.5},
		},
	})

	snap, err := NewAggregationService(st).Snapshot(context.Background(), "st-1")
	require.NoError(t, err)

	assert.Equal(t, "Alex Rivera", snap.StudentName)
	assert.InDelta(t, 87.5, snap.Academic.AvgAttendance, 0.001)
	assert.Equal(t, 72, snap.Academic.LowestGrade)
	assert.Equal(t, 2, snap.Coding.SolvedProblems)
	assert.InDelta(t, 500.5, snap.Finance.TotalSpent, 0.001)
	assert.InDelta(t, 3.0, snap.Wellness.AvgMood, 0.001)
	assert.InDelta(t, 6.0, snap.Wellness.AvgSleep, 0.001)
	assert.Len(t, snap.Wellness.Logs, 2)
}

func TestSnapshot_RecentWindowLimitsAverages(t *testing.T) {
	// Logs are stored newest first; only the first three feed the averages.
	st := newTestStore(store.Data{
		Students: []models.Student{testStudent("st-1", "Alex", 3.0)},
		WellbeingLogs: []models.WellbeingLog{
			{StudentID: "st-1", MoodScore: 1, SleepHours: 4},
			{StudentID: "st-1", MoodScore: 2, SleepHours: 5},
			{StudentID: "st-1", MoodScore: 3, SleepHours: 6},
			{StudentID: "st-1", MoodScore: 5, SleepHours: 9},
		},
	})

	snap, err := NewAggregationService(st).Snapshot(context.Background(), "st-1")
	require.NoError(t, err)

	assert.InDelta(t, 2.0, snap.Wellness.AvgMood, 0.001)
	assert.InDelta(t, 5.0, snap.Wellness.AvgSleep, 0.001)
	// The full series still rides along for the caller.
	assert.Len(t, snap.Wellness.Logs, 4)
}

func TestSnapshot_NoEnrollmentsUsesDefaults(t *testing.T) {
	st := newTestStore(store.Data{
		Students: []models.Student{testStudent("st-1", "Alex", 3.0)},
	})

	snap, err := NewAggregationService(st).Snapshot(context.Background(), "st-1")
	require.NoError(t, err)

	assert.InDelta(t, 95.0, snap.Academic.AvgAttendance, 0.001)
	assert.Equal(t, 85, snap.Academic.LowestGrade)
	// No logs: averages stay zero instead of NaN.
	assert.Zero(t, snap.Wellness.AvgMood)
	assert.Zero(t, snap.Wellness.AvgSleep)
}

func TestSnapshot_UnknownStudent(t *testing.T) {
	st := newTestStore(store.Data{})
	_, err := NewAggregationService(st).Snapshot(context.Background(), "nope")
	require.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
