package models

// User defines the base identity shared by students and faculty.
// Role is fixed at creation; there are no role transitions.
type User struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   RoleType `json:"role"`
	Avatar string   `json:"avatar"`
}

// Student extends User with academic and gamification fields.
type Student struct {
	User
	Major        string   `json:"major"`
	Year         int      `json:"year"`
	GPA          float64  `json:"gpa"`
	DepartmentID string   `json:"departmentId"`
	XP           int      `json:"xp"`
	Level        int      `json:"level"`
	BadgeIDs     []string `json:"badges"`
}

// Faculty extends User with teaching assignments. Courses are referenced
// by ID only; the course records themselves live in their own collection.
type Faculty struct {
	User
	Department string   `json:"department"`
	CourseIDs  []string `json:"coursesTaught"`
}
