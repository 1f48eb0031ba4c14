package dto

import "github.com/studentlife/copilot/internal/app/models"

// --- Request DTOs ---

// CreateWellbeingLogRequest represents a new wellbeing check-in
type CreateWellbeingLogRequest struct {
	StudentID   string   `json:"studentId" binding:"required"`
	MoodScore   int      `json:"moodScore" binding:"required,min=1,max=5"`
	StressLevel int      `json:"stressLevel" binding:"required,min=1,max=10"`
	SleepHours  float64  `json:"sleepHours" binding:"min=0"`
	Notes       string   `json:"notes"`
	Tags        []string `json:"tags"`
}

// BookAppointmentRequest represents a counseling booking attempt
type BookAppointmentRequest struct {
	CounselorID string `json:"counselorId" binding:"required"`
	StudentID   string `json:"studentId" binding:"required"`
	Slot        string `json:"slot" binding:"required"`
}

// MoodSupportRequest asks for a supportive message for the given mood
type MoodSupportRequest struct {
	Mood string `json:"mood" binding:"required"`
}

// JournalReflectionRequest asks for a reflection on a journal entry
type JournalReflectionRequest struct {
	Entry string `json:"entry" binding:"required"`
}

// --- Response DTOs ---

// WellbeingStatusData pairs a status classification with the snapshot
// it was derived from.
type WellbeingStatusData struct {
	Status   WellbeingClassification `json:"status"`
	Snapshot models.HolisticSnapshot `json:"snapshot"`
}

// WellbeingClassification mirrors the wellbeing check output shape.
type WellbeingClassification struct {
	Status string `json:"status"`
	Advice string `json:"advice"`
	Color  string `json:"color"`
}

// MoodSupportResponse carries the supportive message
type MoodSupportResponse struct {
	Message string `json:"message"`
}

// JournalReflectionResponse carries the reflection text
type JournalReflectionResponse struct {
	Reflection string `json:"reflection"`
}
