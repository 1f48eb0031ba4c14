package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studentlife/copilot/internal/ai"
	"github.com/studentlife/copilot/internal/app/models"
	"github.com/studentlife/copilot/internal/pkg/apperrors"
	"github.com/studentlife/copilot/internal/store"
)

func newFacultyService(st *store.Store) *FacultyService {
	agg := NewAggregationService(st)
	cls := NewFallbackClassifier(
		NewRemoteClassifier(ai.Disabled()), NewLocalHeuristicClassifier(), time.Second, nopLogger)
	return NewFacultyService(st, agg, cls, nopLogger)
}

func TestAtRiskStudents_FiltersAndSorts(t *testing.T) {
	st := newTestStore(store.Data{
		Students: []models.Student{
			testStudent("st-1", "Alex", 3.4),
			testStudent("st-2", "Priya", 3.8),
			testStudent("st-3", "Jordan", 2.4),
			testStudent("st-4", "Mike", 2.9),
		},
		Assessments: []models.RiskAssessment{
			{StudentID: "st-2", OverallRisk: models.RiskLow},
			{StudentID: "st-3", OverallRisk: models.RiskHigh},
			{StudentID: "st-4", OverallRisk: models.RiskMedium},
		},
	})
	svc := newFacultyService(st)

	out := svc.AtRiskStudents(context.Background())
	require.Len(t, out, 2)
	assert.Equal(t, "st-3", out[0].Student.ID)
	assert.Equal(t, "st-4", out[1].Student.ID)
}

func TestAcademicRisk_ClassifiesWithoutPersisting(t *testing.T) {
	st := newTestStore(store.Data{
		Students: []models.Student{testStudent("st-1", "Jordan", 2.4)},
	})
	svc := newFacultyService(st)

	result, err := svc.AcademicRisk(context.Background(), "st-1")
	require.NoError(t, err)
	assert.Equal(t, string(models.RiskHigh), result.Label)
	assert.NotEmpty(t, result.Rationale)
	assert.NotEmpty(t, result.SuggestedAction)

	_, ok := st.Assessment("st-1")
	assert.False(t, ok)

	_, err = svc.AcademicRisk(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestCourseRoster(t *testing.T) {
	st := newTestStore(store.Data{
		Students: []models.Student{testStudent("st-1", "Alex", 3.4), testStudent("st-2", "Priya", 3.8)},
		Courses:  []models.Course{{ID: "crs-1", Name: "Data Structures", InstructorID: "fa-1"}},
		Enrollments: []models.Enrollment{
			{ID: "e-1", StudentID: "st-1", CourseID: "crs-1"},
			{ID: "e-2", StudentID: "st-2", CourseID: "crs-1"},
		},
	})
	svc := newFacultyService(st)

	roster, err := svc.CourseRoster(context.Background(), "crs-1")
	require.NoError(t, err)
	assert.Len(t, roster, 2)

	_, err = svc.CourseRoster(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestFacultyCourses(t *testing.T) {
	st := newTestStore(store.Data{
		Faculty: []models.Faculty{{User: models.User{ID: "fa-1", Name: "Dr. Johnson", Role: models.RoleFaculty}}},
		Courses: []models.Course{
			{ID: "crs-1", InstructorID: "fa-1"},
			{ID: "crs-2", InstructorID: "fa-2"},
		},
	})
	svc := newFacultyService(st)

	courses, err := svc.FacultyCourses(context.Background(), "fa-1")
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "crs-1", courses[0].ID)

	directory := svc.Directory(context.Background())
	require.Len(t, directory, 1)
	assert.Equal(t, "fa-1", directory[0].ID)

	_, err = svc.FacultyCourses(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestAssessRisk_LowGPAStudent(t *testing.T) {
	st := newTestStore(store.Data{
		Students: []models.Student{testStudent("st-3", "Jordan", 2.4)},
		Enrollments: []models.Enrollment{
			{ID: "e-1", StudentID: "st-3", CourseID: "crs-1", Grade: 60, Attendance: 70},
		},
		WellbeingLogs: []models.WellbeingLog{
			{StudentID: "st-3", MoodScore: 4, SleepHours: 8},
		},
	})
	svc := newFacultyService(st)

	assessment, err := svc.AssessRisk(context.Background(), "st-3")
	require.NoError(t, err)

	assert.Equal(t, models.RiskHigh, assessment.OverallRisk)
	assert.Equal(t, models.RiskHigh, assessment.Factors.Academic)
	assert.Equal(t, models.RiskMedium, assessment.Factors.Attendance)
	assert.Equal(t, models.RiskLow, assessment.Factors.Wellbeing)
	assert.Equal(t, models.InterventionPending, assessment.InterventionStatus)
	assert.Equal(t, "GPA has dropped below 2.5 (currently 2.4) and attendance is irregular.", assessment.Details)

	saved, ok := st.Assessment("st-3")
	require.True(t, ok)
	assert.Equal(t, assessment, saved)
}

func TestAssessRisk_CarriesInterventionStatus(t *testing.T) {
	st := newTestStore(store.Data{
		Students: []models.Student{testStudent("st-4", "Mike", 2.9)},
		Assessments: []models.RiskAssessment{
			{StudentID: "st-4", OverallRisk: models.RiskMedium, InterventionStatus: models.InterventionActive},
		},
	})
	svc := newFacultyService(st)

	assessment, err := svc.AssessRisk(context.Background(), "st-4")
	require.NoError(t, err)
	// Reassessment overwrites the verdict but keeps the follow-up state.
	assert.Equal(t, models.InterventionActive, assessment.InterventionStatus)
}

func TestAssessRisk_WellbeingDrivesOverall(t *testing.T) {
	st := newTestStore(store.Data{
		Students: []models.Student{testStudent("st-1", "Alex", 3.6)},
		Enrollments: []models.Enrollment{
			{ID: "e-1", StudentID: "st-1", CourseID: "crs-1", Grade: 90, Attendance: 95},
		},
		WellbeingLogs: []models.WellbeingLog{
			{StudentID: "st-1", MoodScore: 1, SleepHours: 4},
		},
	})
	svc := newFacultyService(st)

	assessment, err := svc.AssessRisk(context.Background(), "st-1")
	require.NoError(t, err)
	assert.Equal(t, models.RiskLow, assessment.Factors.Academic)
	assert.Equal(t, models.RiskHigh, assessment.Factors.Wellbeing)
	assert.Equal(t, models.RiskHigh, assessment.OverallRisk)
}

func TestUpdateInterventionStatus(t *testing.T) {
	st := newTestStore(store.Data{
		Assessments: []models.RiskAssessment{
			{StudentID: "st-3", OverallRisk: models.RiskHigh, InterventionStatus: models.InterventionPending},
		},
	})
	svc := newFacultyService(st)

	a, err := svc.UpdateInterventionStatus(context.Background(), "st-3", models.InterventionActive)
	require.NoError(t, err)
	assert.Equal(t, models.InterventionActive, a.InterventionStatus)

	_, err = svc.UpdateInterventionStatus(context.Background(), "st-3", "escalated")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.UpdateInterventionStatus(context.Background(), "missing", models.InterventionResolved)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
