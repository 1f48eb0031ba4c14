// Package seed provides the fixed demo dataset the application starts
// with. Everything here is volatile: the store is rebuilt from these
// values on every process start.
package seed

import (
	"time"

	"github.com/studentlife/copilot/internal/app/models"
	"github.com/studentlife/copilot/internal/store"
)

// Data returns the initial demo dataset.
func Data() store.Data {
	now := time.Now()

	return store.Data{
		Students: []models.Student{
			{
				User: models.User{
					ID: "st-12345", Name: "Alex Rivera", Email: "alex.rivera@sut.edu",
					Role: models.RoleStudent, Avatar: "https://picsum.photos/200",
				},
				Major: "Computer Science", Year: 3, GPA: 3.4, DepartmentID: "dep-cs",
				XP: 1250, Level: 5, BadgeIDs: []string{"streak_master"},
			},
			{
				User: models.User{
					ID: "st-23456", Name: "Priya Patel", Email: "priya.patel@sut.edu",
					Role: models.RoleStudent, Avatar: "https://i.pravatar.cc/150?u=priya",
				},
				Major: "Computer Science", Year: 3, GPA: 3.8, DepartmentID: "dep-cs",
				XP: 1400, Level: 6, BadgeIDs: []string{"streak_master", "algo_expert"},
			},
			{
				User: models.User{
					ID: "st-34567", Name: "Jordan Smith", Email: "jordan.smith@sut.edu",
					Role: models.RoleStudent, Avatar: "https://i.pravatar.cc/150?u=jordan",
				},
				Major: "Psychology", Year: 2, GPA: 2.4, DepartmentID: "dep-psy",
				XP: 1100, Level: 4, BadgeIDs: []string{},
			},
			{
				User: models.User{
					ID: "st-45678", Name: "Mike Chen", Email: "mike.chen@sut.edu",
					Role: models.RoleStudent, Avatar: "https://i.pravatar.cc/150?u=mike",
				},
				Major: "Data Science", Year: 4, GPA: 2.9, DepartmentID: "dep-cs",
				XP: 900, Level: 4, BadgeIDs: []string{},
			},
		},

		Faculty: []models.Faculty{
			{
				User: models.User{
					ID: "fa-1001", Name: "Prof. Emily Johnson", Email: "e.johnson@sut.edu",
					Role: models.RoleFaculty, Avatar: "https://i.pravatar.cc/150?u=johnson",
				},
				Department: "Mathematics",
				CourseIDs:  []string{"crs-la"},
			},
			{
				User: models.User{
					ID: "fa-1002", Name: "Prof. Daniel Miller", Email: "d.miller@sut.edu",
					Role: models.RoleFaculty, Avatar: "https://i.pravatar.cc/150?u=miller",
				},
				Department: "Computer Science",
				CourseIDs:  []string{"crs-ds", "crs-web", "crs-ethics"},
			},
		},

		Courses: []models.Course{
			{ID: "crs-ds", Code: "CS201", Name: "Data Structures", Credits: 4, InstructorID: "fa-1002", Schedule: "Mon/Wed 10:00 AM"},
			{ID: "crs-la", Code: "MATH204", Name: "Linear Algebra", Credits: 3, InstructorID: "fa-1001", Schedule: "Tue/Thu 9:00 AM"},
			{ID: "crs-web", Code: "CS310", Name: "Web Development", Credits: 3, InstructorID: "fa-1002", Schedule: "Mon/Wed 2:00 PM"},
			{ID: "crs-ethics", Code: "CS350", Name: "Ethics in AI", Credits: 2, InstructorID: "fa-1002", Schedule: "Fri 11:00 AM"},
		},

		Enrollments: []models.Enrollment{
			{ID: "enr-1", StudentID: "st-12345", CourseID: "crs-ds", Grade: 88, Attendance: 95},
			{ID: "enr-2", StudentID: "st-12345", CourseID: "crs-la", Grade: 72, Attendance: 80},
			{ID: "enr-3", StudentID: "st-12345", CourseID: "crs-web", Grade: 94, Attendance: 100},
			{ID: "enr-4", StudentID: "st-12345", CourseID: "crs-ethics", Grade: 85, Attendance: 90},
			{ID: "enr-5", StudentID: "st-23456", CourseID: "crs-ds", Grade: 96, Attendance: 98},
			{ID: "enr-6", StudentID: "st-23456", CourseID: "crs-web", Grade: 91, Attendance: 95},
			{ID: "enr-7", StudentID: "st-34567", CourseID: "crs-la", Grade: 58, Attendance: 62},
			{ID: "enr-8", StudentID: "st-34567", CourseID: "crs-ethics", Grade: 70, Attendance: 75},
			{ID: "enr-9", StudentID: "st-45678", CourseID: "crs-ds", Grade: 74, Attendance: 71},
		},

		WellbeingLogs: []models.WellbeingLog{
			// Most recent first, matching the store's ordering convention.
			{ID: "wl-3", StudentID: "st-12345", Timestamp: now.Add(-24 * time.Hour), MoodScore: 2, StressLevel: 8, SleepHours: 4, Notes: "Stressed about exams", Tags: []string{"exam"}},
			{ID: "wl-2", StudentID: "st-12345", Timestamp: now.Add(-48 * time.Hour), MoodScore: 3, StressLevel: 6, SleepHours: 6, Notes: "Tired from study", Tags: []string{"tired"}},
			{ID: "wl-1", StudentID: "st-12345", Timestamp: now.Add(-72 * time.Hour), MoodScore: 4, StressLevel: 3, SleepHours: 7, Notes: "Feeling good"},
		},

		Counselors: []models.Counselor{
			{
				ID: "dr-sarah", Name: "Dr. Sarah Jenkins", Specialty: "Academic Stress & Burnout",
				Avatar:         "https://i.pravatar.cc/150?u=sarah",
				AvailableSlots: []string{"Mon 10:00 AM", "Tue 2:00 PM", "Wed 11:00 AM"},
			},
			{
				ID: "mr-david", Name: "Mr. David Chen", Specialty: "Career Anxiety & Motivation",
				Avatar:         "https://i.pravatar.cc/150?u=david",
				AvailableSlots: []string{"Mon 3:00 PM", "Thu 10:00 AM", "Fri 1:00 PM"},
			},
		},

		Posts: []models.ForumPost{
			{
				ID: "p1", Author: "Sarah Jenkins", AuthorAvatar: "https://i.pravatar.cc/150?u=a042581f4e29026704d",
				Category:  models.ForumAcademics,
				Content:   "Has anyone taken Prof. Miller for Advanced Algos? Is the textbook mandatory?",
				Timestamp: now.Add(-2 * time.Hour), Likes: 5,
				Replies: []models.ForumReply{
					{ID: "r1", Author: "Mike Chen", Content: "Yes, he uses questions directly from the book for quizzes.", Timestamp: now.Add(-1 * time.Hour)},
				},
			},
			{
				ID: "p2", Author: "David Okonjo", AuthorAvatar: "https://i.pravatar.cc/150?u=a042581f4e29026024d",
				Category:  models.ForumCareer,
				Content:   "Just bombed my first technical interview. Feeling pretty low. Any tips for bouncing back?",
				Timestamp: now.Add(-5 * time.Hour), Likes: 12,
				Replies: []models.ForumReply{},
			},
		},

		Contacts: []models.ChatContact{
			{ID: "c1", Name: "Priya Patel", Avatar: "https://i.pravatar.cc/150?u=priya", Status: models.ContactOnline, Major: "Computer Science"},
			{ID: "c2", Name: "Jordan Smith", Avatar: "https://i.pravatar.cc/150?u=jordan", Status: models.ContactOffline, Major: "Psychology"},
			{ID: "c3", Name: "Mike Chen", Avatar: "https://i.pravatar.cc/150?u=mike", Status: models.ContactOnline, Major: "Data Science"},
		},

		Chats: map[string][]models.ChatMessage{
			"c1": {
				{ID: "m1", SenderID: "c1", Text: "Hey, are you going to the hackathon?", Timestamp: now.Add(-30 * time.Minute), IsMe: false},
				{ID: "m2", SenderID: "st-12345", Text: "Yeah, I think so! Do you have a team?", Timestamp: now.Add(-25 * time.Minute), IsMe: true},
			},
			"c2": {},
			"c3": {},
		},

		Milestones: []models.CareerMilestone{
			{ID: "cm-1", StudentID: "st-12345", Title: "Upload Resume for AI Parsing", Category: models.MilestoneProject, Status: models.MilestoneCompleted},
			{ID: "cm-2", StudentID: "st-12345", Title: "Complete \"System Design\" Module", Category: models.MilestoneSkill, Status: models.MilestoneInProgress},
			{ID: "cm-3", StudentID: "st-12345", Title: "Mock Interview: Behavioral", Category: models.MilestoneSkill, Status: models.MilestoneTodo},
			{ID: "cm-4", StudentID: "st-12345", Title: "Apply to 5 Summer Internships", Category: models.MilestoneInternship, Status: models.MilestoneTodo},
		},

		Problems: []models.CodingProblem{
			{ID: "cp1", Title: "Binary Tree Level Order Traversal", Difficulty: models.DifficultyMedium, Topic: "Trees", Solved: false},
			{ID: "cp2", Title: "Climbing Stairs", Difficulty: models.DifficultyEasy, Topic: "DP", Solved: true},
			{ID: "cp3", Title: "Number of Islands", Difficulty: models.DifficultyMedium, Topic: "Graphs", Solved: false},
			{ID: "cp4", Title: "Two Sum", Difficulty: models.DifficultyEasy, Topic: "Arrays", Solved: true},
			{ID: "cp5", Title: "Merge K Sorted Lists", Difficulty: models.DifficultyHard, Topic: "Linked Lists", Solved: false},
		},

		Badges: []models.Badge{
			{ID: "streak_master", Name: "Streak Master", Icon: "🔥", Description: "Maintain a 7-day coding streak", Unlocked: true},
			{ID: "algo_expert", Name: "Algo Expert", Icon: "🧠", Description: "Solve 50 Hard problems", Unlocked: false},
			{ID: "bug_hunter", Name: "Bug Hunter", Icon: "🐞", Description: "Submit 10 successful test cases", Unlocked: false},
			{ID: "community_hero", Name: "Community Hero", Icon: "🤝", Description: "Get 50 likes on the forum", Unlocked: false},
		},

		Leaderboard: []models.LeaderboardEntry{
			{Name: "Priya Patel", XP: 1400, Avatar: "https://i.pravatar.cc/150?u=priya"},
			{Name: "Alex Rivera", XP: 1250, Avatar: "https://picsum.photos/200"},
			{Name: "Jordan Smith", XP: 1100, Avatar: "https://i.pravatar.cc/150?u=jordan"},
		},

		Finance: []models.FinanceEntry{
			{ID: "fin-1", Category: "Food", Amount: 400, Date: now.AddDate(0, 0, -20).Format("2006-01-02")},
			{ID: "fin-2", Category: "Transport", Amount: 100, Date: now.AddDate(0, 0, -14).Format("2006-01-02")},
			{ID: "fin-3", Category: "Books", Amount: 150, Date: now.AddDate(0, 0, -7).Format("2006-01-02")},
			{ID: "fin-4", Category: "Entertainment", Amount: 80, Date: now.AddDate(0, 0, -2).Format("2006-01-02")},
		},

		Assessments: []models.RiskAssessment{
			{
				StudentID: "st-34567", OverallRisk: models.RiskHigh,
				Factors:            models.RiskFactors{Academic: models.RiskHigh, Attendance: models.RiskHigh, Wellbeing: models.RiskMedium},
				Details:            "GPA has dropped below 2.5 and attendance is irregular.",
				InterventionStatus: models.InterventionPending,
			},
			{
				StudentID: "st-45678", OverallRisk: models.RiskMedium,
				Factors:            models.RiskFactors{Academic: models.RiskMedium, Attendance: models.RiskMedium, Wellbeing: models.RiskLow},
				Details:            "Attendance has fallen below 80% in major courses.",
				InterventionStatus: models.InterventionActive,
			},
			{
				StudentID: "st-23456", OverallRisk: models.RiskLow,
				Factors:            models.RiskFactors{Academic: models.RiskLow, Attendance: models.RiskLow, Wellbeing: models.RiskLow},
				Details:            "Student is performing well across all metrics.",
				InterventionStatus: models.InterventionResolved,
			},
		},
	}
}
