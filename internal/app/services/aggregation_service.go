package services

import (
	"context"

	"github.com/studentlife/copilot/internal/app/models"
	"github.com/studentlife/copilot/internal/store"
)

// Demo defaults used when a student has no enrollments yet, so the
// snapshot never divides by zero and the classifiers always have input.
const (
	defaultAvgAttendance = 95.0
	defaultLowestGrade   = 85
)

// recentLogWindow is how many of the newest wellbeing logs feed the
// mood and sleep averages.
const recentLogWindow = 3

// AggregationService reads across the store's collections to produce a
// holistic snapshot for one student. It never mutates anything.
type AggregationService struct {
	store *store.Store
}

// NewAggregationService creates a new aggregation service instance
func NewAggregationService(st *store.Store) *AggregationService {
	return &AggregationService{store: st}
}

// Snapshot computes the cross-domain metrics for a student. The only
// failure mode is an unknown student id.
func (s *AggregationService) Snapshot(ctx context.Context, studentID string) (models.HolisticSnapshot, error) {
	student, err := s.store.StudentByID(studentID)
	if err != nil {
		return models.HolisticSnapshot{}, err
	}

	snap := models.HolisticSnapshot{StudentName: student.Name}
	snap.Academic = s.academicSummary(studentID)
	snap.Coding = s.codingSummary()
	snap.Finance = s.financeSummary()
	snap.Wellness = s.wellnessSummary(studentID)
	return snap, nil
}

func (s *AggregationService) academicSummary(studentID string) models.AcademicSummary {
	enrollments := s.store.EnrollmentsByStudent(studentID)
	if len(enrollments) == 0 {
		return models.AcademicSummary{
			AvgAttendance: defaultAvgAttendance,
			LowestGrade:   defaultLowestGrade,
		}
	}

	total := 0
	lowest := enrollments[0].Grade
	for _, e := range enrollments {
		total += e.Attendance
		if e.Grade < lowest {
			lowest = e.Grade
		}
	}
	return models.AcademicSummary{
		AvgAttendance: float64(total) / float64(len(enrollments)),
		LowestGrade:   lowest,
	}
}

func (s *AggregationService) codingSummary() models.CodingSummary {
	// The problem set is a global demo collection, not per-student.
	solved := 0
	for _, p := range s.store.Problems() {
		if p.Solved {
			solved++
		}
	}
	return models.CodingSummary{SolvedProblems: solved}
}

func (s *AggregationService) financeSummary() models.FinanceSummary {
	var total float64
	for _, e := range s.store.FinanceEntries() {
		total += e.Amount
	}
	return models.FinanceSummary{TotalSpent: total}
}

func (s *AggregationService) wellnessSummary(studentID string) models.WellnessSummary {
	logs := s.store.WellbeingLogs(studentID)

	recent := logs
	if len(recent) > recentLogWindow {
		recent = recent[:recentLogWindow]
	}

	var moodSum, sleepSum float64
	for _, l := range recent {
		moodSum += float64(l.MoodScore)
		sleepSum += l.SleepHours
	}

	// Divisor defaults to 1 when there are no logs, leaving both
	// averages at zero rather than NaN.
	n := float64(len(recent))
	if n == 0 {
		n = 1
	}

	return models.WellnessSummary{
		AvgMood:  moodSum / n,
		AvgSleep: sleepSum / n,
		Logs:     logs,
	}
}
