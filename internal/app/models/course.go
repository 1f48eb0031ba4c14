package models

// Course represents a taught course. InstructorID is a weak reference to
// a Faculty record (lookup only, never ownership).
type Course struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Credits      int    `json:"credits"`
	InstructorID string `json:"instructorId"`
	Schedule     string `json:"schedule"`
}

// Enrollment links a student to a course and carries the per-course
// performance figures the aggregation reads. Grade and attendance are
// percentages in [0,100].
type Enrollment struct {
	ID                 string `json:"id"`
	StudentID          string `json:"studentId"`
	CourseID           string `json:"courseId"`
	Grade              int    `json:"grade"`
	Attendance         int    `json:"attendance"`
	LastSubmissionDate string `json:"lastSubmissionDate,omitempty"`
}
