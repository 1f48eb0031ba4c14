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

func newWellnessService(st *store.Store, client ai.Client) *WellnessService {
	agg := NewAggregationService(st)
	cls := NewFallbackClassifier(NewRemoteClassifier(client), NewLocalHeuristicClassifier(), time.Second, nopLogger)
	return NewWellnessService(st, agg, cls, client, nopLogger)
}

func TestAddLog_RoundTrip(t *testing.T) {
	st := newTestStore(store.Data{Students: []models.Student{testStudent("st-1", "Alex", 3.4)}})
	svc := newWellnessService(st, ai.Disabled())

	log, err := svc.AddLog(context.Background(), models.WellbeingLog{
		StudentID: "st-1", MoodScore: 3, StressLevel: 6, SleepHours: 7.5, Notes: "long day",
	})
	require.NoError(t, err)
	assert.Equal(t, "id-1", log.ID)
	assert.Equal(t, fixedTime, log.Timestamp)

	logs, err := svc.RecentLogs(context.Background(), "st-1")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "long day", logs[0].Notes)
}

func TestAddLog_Validation(t *testing.T) {
	st := newTestStore(store.Data{Students: []models.Student{testStudent("st-1", "Alex", 3.4)}})
	svc := newWellnessService(st, ai.Disabled())

	cases := []models.WellbeingLog{
		{StudentID: "st-1", MoodScore: 0, StressLevel: 5, SleepHours: 7},
		{StudentID: "st-1", MoodScore: 6, StressLevel: 5, SleepHours: 7},
		{StudentID: "st-1", MoodScore: 3, StressLevel: 0, SleepHours: 7},
		{StudentID: "st-1", MoodScore: 3, StressLevel: 11, SleepHours: 7},
		{StudentID: "st-1", MoodScore: 3, StressLevel: 5, SleepHours: -1},
	}
	for _, c := range cases {
		_, err := svc.AddLog(context.Background(), c)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	}

	// Nothing was recorded.
	logs, err := svc.RecentLogs(context.Background(), "st-1")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestAddLog_UnknownStudent(t *testing.T) {
	st := newTestStore(store.Data{})
	svc := newWellnessService(st, ai.Disabled())

	_, err := svc.AddLog(context.Background(), models.WellbeingLog{StudentID: "nope", MoodScore: 3, StressLevel: 5})
	require.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestBookAppointment_ConsumesSlot(t *testing.T) {
	st := newTestStore(store.Data{
		Students: []models.Student{testStudent("st-1", "Alex", 3.4)},
		Counselors: []models.Counselor{
			{ID: "dr-1", Name: "Dr. Sarah", AvailableSlots: []string{"10:00 AM", "2:00 PM"}},
		},
	})
	svc := newWellnessService(st, ai.Disabled())

	appt, err := svc.BookAppointment(context.Background(), "dr-1", "st-1", "10:00 AM")
	require.NoError(t, err)
	assert.Equal(t, "dr-1", appt.CounselorID)
	assert.Equal(t, "st-1", appt.StudentID)
	assert.Equal(t, "2025-03-10", appt.Date)
	assert.Equal(t, "10:00 AM", appt.Time)
	assert.Equal(t, models.AppointmentScheduled, appt.Status)
	assert.Contains(t, appt.MeetLink, "https://meet.google.com/")

	// Second booking on the same slot loses.
	_, err = svc.BookAppointment(context.Background(), "dr-1", "st-1", "10:00 AM")
	require.ErrorIs(t, err, apperrors.ErrSlotTaken)

	counselors := svc.Counselors(context.Background())
	require.Len(t, counselors, 1)
	assert.Equal(t, []string{"2:00 PM"}, counselors[0].AvailableSlots)
	assert.Len(t, svc.Appointments(context.Background()), 1)
}

func TestBookAppointment_EmptySlot(t *testing.T) {
	st := newTestStore(store.Data{Students: []models.Student{testStudent("st-1", "Alex", 3.4)}})
	svc := newWellnessService(st, ai.Disabled())

	_, err := svc.BookAppointment(context.Background(), "dr-1", "st-1", "  ")
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestWellbeingStatus_LocalHeuristicWhenDisabled(t *testing.T) {
	st := newTestStore(store.Data{
		Students: []models.Student{testStudent("st-1", "Alex", 3.4)},
		WellbeingLogs: []models.WellbeingLog{
			{StudentID: "st-1", MoodScore: 2, SleepHours: 4},
		},
	})
	svc := newWellnessService(st, ai.Disabled())

	snap, status, err := svc.WellbeingStatus(context.Background(), "st-1")
	require.NoError(t, err)
	assert.Equal(t, "Alex", snap.StudentName)
	assert.Equal(t, "At Risk", status.Label)
	assert.Equal(t, "orange", status.Color)
}

func TestMoodSupport_CannedFallbacks(t *testing.T) {
	st := newTestStore(store.Data{})
	svc := newWellnessService(st, ai.Disabled())

	assert.Equal(t,
		"I'm sorry you're feeling down. Maybe take a short walk or listen to your favorite song?",
		svc.MoodSupport(context.Background(), "Sad"))
	assert.Equal(t,
		"That's wonderful! Hold onto this feeling. What made your day special?",
		svc.MoodSupport(context.Background(), "Happy"))
	assert.Equal(t,
		"I'm here for you. Take a deep breath and keep going.",
		svc.MoodSupport(context.Background(), "Confused"))
}

func TestMoodSupport_UsesGatewayReply(t *testing.T) {
	st := newTestStore(store.Data{})
	svc := newWellnessService(st, &stubClient{reply: "  You are doing great.  "})

	assert.Equal(t, "You are doing great.", svc.MoodSupport(context.Background(), "Happy"))
}

func TestJournalReflection_FallbackAndValidation(t *testing.T) {
	st := newTestStore(store.Data{})
	svc := newWellnessService(st, ai.Disabled())

	_, err := svc.JournalReflection(context.Background(), "   ")
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	text, err := svc.JournalReflection(context.Background(), "Today was hard.")
	require.NoError(t, err)
	assert.Equal(t, "Thank you for sharing. Writing is a powerful tool for clarity. How did that make you feel?", text)
}
