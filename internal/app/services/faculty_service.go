package services

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/studentlife/copilot/internal/app/models"
	"github.com/studentlife/copilot/internal/pkg/apperrors"
	"github.com/studentlife/copilot/internal/store"
)

// AtRiskStudent pairs a student with their current risk assessment for
// the faculty dashboard.
type AtRiskStudent struct {
	Student    models.Student        `json:"student"`
	Assessment models.RiskAssessment `json:"assessment"`
}

// FacultyService serves the faculty dashboard: at-risk rosters, course
// lookups, and risk reassessment.
type FacultyService struct {
	store       *store.Store
	aggregation *AggregationService
	classifier  Classifier
	logger      zerolog.Logger
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(st *store.Store, agg *AggregationService, cls Classifier, lgr zerolog.Logger) *FacultyService {
	return &FacultyService{store: st, aggregation: agg, classifier: cls, logger: lgr}
}

// AtRiskStudents returns students whose current assessment is above
// Low, with High risk sorted to the top.
func (s *FacultyService) AtRiskStudents(ctx context.Context) []AtRiskStudent {
	var out []AtRiskStudent
	for _, student := range s.store.Students() {
		assessment, ok := s.store.Assessment(student.ID)
		if !ok || assessment.OverallRisk == models.RiskLow {
			continue
		}
		out = append(out, AtRiskStudent{Student: student, Assessment: assessment})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return riskRank(out[i].Assessment.OverallRisk) > riskRank(out[j].Assessment.OverallRisk)
	})
	return out
}

func riskRank(level models.RiskLevel) int {
	switch level {
	case models.RiskHigh:
		return 2
	case models.RiskMedium:
		return 1
	default:
		return 0
	}
}

// Directory returns all faculty members.
func (s *FacultyService) Directory(ctx context.Context) []models.Faculty {
	return s.store.FacultyMembers()
}

// CourseRoster returns the students enrolled in a course.
func (s *FacultyService) CourseRoster(ctx context.Context, courseID string) ([]models.Student, error) {
	if _, err := s.store.CourseByID(courseID); err != nil {
		return nil, err
	}

	var roster []models.Student
	for _, e := range s.store.EnrollmentsByCourse(courseID) {
		student, err := s.store.StudentByID(e.StudentID)
		if err != nil {
			continue
		}
		roster = append(roster, student)
	}
	return roster, nil
}

// FacultyCourses returns the courses taught by one faculty member.
func (s *FacultyService) FacultyCourses(ctx context.Context, facultyID string) ([]models.Course, error) {
	if _, err := s.store.FacultyByID(facultyID); err != nil {
		return nil, err
	}
	return s.store.CoursesByInstructor(facultyID), nil
}

// AssessRisk recomputes a student's risk assessment from their current
// snapshot and overwrites the stored one. The intervention status of an
// existing assessment is carried over; a brand-new assessment starts
// pending.
func (s *FacultyService) AssessRisk(ctx context.Context, studentID string) (models.RiskAssessment, error) {
	student, err := s.store.StudentByID(studentID)
	if err != nil {
		return models.RiskAssessment{}, err
	}

	snap, err := s.aggregation.Snapshot(ctx, studentID)
	if err != nil {
		return models.RiskAssessment{}, err
	}

	academic, err := s.classifier.ClassifyAcademicRisk(ctx, AcademicInput{
		GPA:        student.GPA,
		Attendance: snap.Academic.AvgAttendance,
	})
	if err != nil {
		return models.RiskAssessment{}, err
	}

	wellbeing, err := s.classifier.ClassifyWellbeing(ctx, snap)
	if err != nil {
		return models.RiskAssessment{}, err
	}

	factors := models.RiskFactors{
		Academic:   academic.Severity,
		Attendance: attendanceRisk(snap.Academic.AvgAttendance),
		Wellbeing:  wellbeing.Severity,
	}

	assessment := models.RiskAssessment{
		StudentID:          studentID,
		OverallRisk:        overallRisk(factors),
		Factors:            factors,
		Details:            academic.Rationale,
		InterventionStatus: models.InterventionPending,
	}
	if previous, ok := s.store.Assessment(studentID); ok {
		assessment.InterventionStatus = previous.InterventionStatus
	}

	s.store.SaveAssessment(assessment)
	s.logger.Info().
		Str("studentId", studentID).
		Str("overallRisk", string(assessment.OverallRisk)).
		Msg("risk assessment updated")
	return assessment, nil
}

// AcademicRisk classifies one student's dropout risk from their current
// snapshot without recording an assessment.
func (s *FacultyService) AcademicRisk(ctx context.Context, studentID string) (Classification, error) {
	student, err := s.store.StudentByID(studentID)
	if err != nil {
		return Classification{}, err
	}

	snap, err := s.aggregation.Snapshot(ctx, studentID)
	if err != nil {
		return Classification{}, err
	}

	return s.classifier.ClassifyAcademicRisk(ctx, AcademicInput{
		GPA:        student.GPA,
		Attendance: snap.Academic.AvgAttendance,
	})
}

func attendanceRisk(avgAttendance float64) models.RiskLevel {
	switch {
	case avgAttendance < 60:
		return models.RiskHigh
	case avgAttendance < attendanceMediumBelow:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

// overallRisk is the worst of the per-domain factors.
func overallRisk(f models.RiskFactors) models.RiskLevel {
	worst := f.Academic
	for _, level := range []models.RiskLevel{f.Attendance, f.Wellbeing} {
		if riskRank(level) > riskRank(worst) {
			worst = level
		}
	}
	return worst
}

// UpdateInterventionStatus moves the follow-up state on a student's
// current assessment.
func (s *FacultyService) UpdateInterventionStatus(ctx context.Context, studentID string, status models.InterventionStatus) (models.RiskAssessment, error) {
	switch status {
	case models.InterventionPending, models.InterventionActive, models.InterventionResolved:
	default:
		return models.RiskAssessment{}, apperrors.NewValidationError("unknown intervention status")
	}
	return s.store.SetInterventionStatus(studentID, status)
}
