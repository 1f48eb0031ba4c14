package models

// HolisticSnapshot is the aggregated cross-domain view of one student at
// a point in time. It is what the classifiers consume, either locally or
// serialized into a prompt for the AI gateway.
type HolisticSnapshot struct {
	StudentName string          `json:"studentName"`
	Academic    AcademicSummary `json:"academic"`
	Coding      CodingSummary   `json:"coding"`
	Finance     FinanceSummary  `json:"finance"`
	Wellness    WellnessSummary `json:"wellness"`
}

// AcademicSummary condenses the student's enrollments.
type AcademicSummary struct {
	AvgAttendance float64 `json:"avgAttendance"`
	LowestGrade   int     `json:"lowestGrade"`
}

// CodingSummary condenses coding activity (a grind/stress indicator).
type CodingSummary struct {
	SolvedProblems int `json:"solvedProblems"`
}

// FinanceSummary condenses the session spending ledger.
type FinanceSummary struct {
	TotalSpent float64 `json:"totalSpent"`
}

// WellnessSummary condenses the most recent wellbeing logs.
type WellnessSummary struct {
	AvgMood  float64        `json:"avgMood"`
	AvgSleep float64        `json:"avgSleep"`
	Logs     []WellbeingLog `json:"logs"`
}
