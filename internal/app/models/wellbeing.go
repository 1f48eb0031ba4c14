package models

import "time"

// WellbeingLog is one entry in a student's append-only wellbeing time
// series. MoodScore is 1-5, StressLevel 1-10, SleepHours non-negative.
type WellbeingLog struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"studentId"`
	Timestamp   time.Time `json:"timestamp"`
	MoodScore   int       `json:"moodScore"`
	StressLevel int       `json:"stressLevel"`
	SleepHours  float64   `json:"sleepHours"`
	Notes       string    `json:"notes,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
}

// RiskAssessment is the current assessment for a student. It is
// overwritten on reassessment, not versioned.
type RiskAssessment struct {
	StudentID          string             `json:"studentId"`
	OverallRisk        RiskLevel          `json:"overallRisk"`
	Factors            RiskFactors        `json:"factors"`
	Details            string             `json:"details"`
	InterventionStatus InterventionStatus `json:"interventionStatus"`
}

// RiskFactors breaks the overall risk down per domain.
type RiskFactors struct {
	Academic   RiskLevel `json:"academic"`
	Attendance RiskLevel `json:"attendance"`
	Wellbeing  RiskLevel `json:"wellbeing"`
}
