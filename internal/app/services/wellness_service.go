package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/studentlife/copilot/internal/ai"
	"github.com/studentlife/copilot/internal/app/models"
	"github.com/studentlife/copilot/internal/pkg/apperrors"
	"github.com/studentlife/copilot/internal/store"
)

// WellnessService handles wellbeing logs, counseling appointments, and
// the AI-backed support surfaces of the wellness screen.
type WellnessService struct {
	store       *store.Store
	aggregation *AggregationService
	classifier  Classifier
	client      ai.Client
	logger      zerolog.Logger
}

// NewWellnessService creates a new wellness service instance
func NewWellnessService(st *store.Store, agg *AggregationService, cls Classifier, client ai.Client, lgr zerolog.Logger) *WellnessService {
	return &WellnessService{
		store:       st,
		aggregation: agg,
		classifier:  cls,
		client:      client,
		logger:      lgr,
	}
}

// AddLog validates and records a wellbeing log entry. Missing id and
// timestamp are filled deterministically from the store's generators.
func (s *WellnessService) AddLog(ctx context.Context, log models.WellbeingLog) (models.WellbeingLog, error) {
	if _, err := s.store.StudentByID(log.StudentID); err != nil {
		return models.WellbeingLog{}, err
	}
	if log.MoodScore < 1 || log.MoodScore > 5 {
		return models.WellbeingLog{}, apperrors.NewValidationError("mood score must be between 1 and 5")
	}
	if log.StressLevel < 1 || log.StressLevel > 10 {
		return models.WellbeingLog{}, apperrors.NewValidationError("stress level must be between 1 and 10")
	}
	if log.SleepHours < 0 {
		return models.WellbeingLog{}, apperrors.NewValidationError("sleep hours cannot be negative")
	}

	return s.store.AddWellbeingLog(log), nil
}

// RecentLogs returns a student's wellbeing series, most recent first.
func (s *WellnessService) RecentLogs(ctx context.Context, studentID string) ([]models.WellbeingLog, error) {
	if _, err := s.store.StudentByID(studentID); err != nil {
		return nil, err
	}
	return s.store.WellbeingLogs(studentID), nil
}

// Counselors returns the counselor directory with current availability.
func (s *WellnessService) Counselors(ctx context.Context) []models.Counselor {
	return s.store.Counselors()
}

// BookAppointment books a counselor slot for a student. The slot must
// still be available: booking consumes it, and a second attempt on the
// same slot fails with ErrSlotTaken.
func (s *WellnessService) BookAppointment(ctx context.Context, counselorID, studentID, slot string) (models.Appointment, error) {
	if _, err := s.store.StudentByID(studentID); err != nil {
		return models.Appointment{}, err
	}
	if strings.TrimSpace(slot) == "" {
		return models.Appointment{}, apperrors.NewValidationError("slot cannot be empty")
	}

	appt := models.Appointment{
		ID:          s.store.NewID(),
		CounselorID: counselorID,
		StudentID:   studentID,
		Date:        s.store.Now().Format("2006-01-02"),
		Time:        slot,
		MeetLink:    meetLink(s.store.NewID()),
		Status:      models.AppointmentScheduled,
	}

	booked, err := s.store.BookSlot(counselorID, slot, appt)
	if err != nil {
		return models.Appointment{}, err
	}

	s.logger.Info().
		Str("counselorId", counselorID).
		Str("studentId", studentID).
		Str("slot", slot).
		Msg("appointment booked")
	return booked, nil
}

// meetLink derives a meeting-link placeholder from a generated id.
func meetLink(id string) string {
	compact := strings.ReplaceAll(id, "-", "")
	if len(compact) < 10 {
		compact = compact + "0000000000"
	}
	return fmt.Sprintf("https://meet.google.com/%s-%s-%s", compact[:3], compact[3:7], compact[7:10])
}

// Appointments returns all booked appointments.
func (s *WellnessService) Appointments(ctx context.Context) []models.Appointment {
	return s.store.Appointments()
}

// WellbeingStatus aggregates the student's snapshot and classifies it.
// The result is always available: upstream problems resolve through the
// classifier's local heuristic.
func (s *WellnessService) WellbeingStatus(ctx context.Context, studentID string) (models.HolisticSnapshot, Classification, error) {
	snap, err := s.aggregation.Snapshot(ctx, studentID)
	if err != nil {
		return models.HolisticSnapshot{}, Classification{}, err
	}

	result, err := s.classifier.ClassifyWellbeing(ctx, snap)
	if err != nil {
		return models.HolisticSnapshot{}, Classification{}, err
	}
	return snap, result, nil
}

// moodFallbacks are the canned supportive responses used when the
// gateway cannot be reached.
var moodFallbacks = map[string]string{
	"Sad":      "I'm sorry you're feeling down. Maybe take a short walk or listen to your favorite song?",
	"Stressed": "It sounds like a lot is on your plate. Remember to take deep breaths. You've got this.",
	"Happy":    "That's wonderful! Hold onto this feeling. What made your day special?",
	"Anxious":  "Anxiety can be tough. Try the 5-4-3-2-1 grounding technique: name 5 things you see, 4 you feel...",
}

const defaultMoodSupport = "I'm here for you. Take a deep breath and keep going."

// MoodSupport returns a short supportive response for a reported mood.
func (s *WellnessService) MoodSupport(ctx context.Context, mood string) string {
	prompt := fmt.Sprintf(`The student user reported feeling %q.
Provide a 2-sentence supportive, empathetic, and non-medical response.
Suggest a tiny actionable step.`, mood)

	text, err := s.client.Generate(ctx, prompt, ai.FormatText)
	if err != nil || strings.TrimSpace(text) == "" {
		if canned, ok := moodFallbacks[mood]; ok {
			return canned
		}
		return defaultMoodSupport
	}
	return strings.TrimSpace(text)
}

const journalFallback = "Thank you for sharing. Writing is a powerful tool for clarity. How did that make you feel?"

// JournalReflection returns an empathetic reflection on a journal entry.
func (s *WellnessService) JournalReflection(ctx context.Context, entry string) (string, error) {
	if strings.TrimSpace(entry) == "" {
		return "", apperrors.NewValidationError("journal entry cannot be empty")
	}

	prompt := fmt.Sprintf(`You are an empathetic, non-judgmental AI journaling companion for a student.
The student wrote: %q

Respond in a way that validates their feelings, asks a gentle reflective question, or offers a grounding technique.
Do NOT diagnose. Keep it under 50 words.`, entry)

	text, err := s.client.Generate(ctx, prompt, ai.FormatText)
	if err != nil || strings.TrimSpace(text) == "" {
		return journalFallback, nil
	}
	return strings.TrimSpace(text), nil
}
