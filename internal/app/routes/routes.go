package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studentlife/copilot/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	wellnessController *controllers.WellnessController,
	communityController *controllers.CommunityController,
	chatController *controllers.ChatController,
	careerController *controllers.CareerController,
	progressController *controllers.ProgressController,
	facultyController *controllers.FacultyController,
) {
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// Student routes
	students := v1.Group("/students")
	{
		students.GET("", studentController.GetStudents)
		students.GET("/:id", studentController.GetStudent)
		students.GET("/:id/snapshot", studentController.GetSnapshot)
	}

	// Course catalog
	v1.GET("/courses", studentController.GetCourseCatalog)

	// Wellness routes
	wellness := v1.Group("/wellness")
	{
		wellness.GET("/logs/:studentId", wellnessController.GetLogs)
		wellness.POST("/logs", wellnessController.CreateLog)
		wellness.GET("/counselors", wellnessController.GetCounselors)
		wellness.GET("/appointments", wellnessController.GetAppointments)
		wellness.POST("/appointments", wellnessController.BookAppointment)
		wellness.GET("/status/:studentId", wellnessController.GetWellbeingStatus)
		wellness.POST("/mood-support", wellnessController.MoodSupport)
		wellness.POST("/journal", wellnessController.JournalReflection)
	}

	// Community forum routes
	community := v1.Group("/community")
	{
		community.GET("/posts", communityController.GetPosts)
		community.POST("/posts", communityController.CreatePost)
		community.POST("/posts/:id/like", communityController.LikePost)
		community.POST("/posts/:id/replies", communityController.CreateReply)
	}

	// Chat routes
	chat := v1.Group("/chat")
	{
		chat.GET("/contacts", chatController.GetContacts)
		chat.GET("/:contactId/messages", chatController.GetHistory)
		chat.POST("/:contactId/messages", chatController.SendMessage)
	}

	// Career routes
	career := v1.Group("/career")
	{
		career.GET("/milestones/:id", careerController.GetMilestones)
		career.PATCH("/milestones/:id", careerController.UpdateMilestone)
		career.POST("/roadmap", careerController.GenerateRoadmap)
		career.POST("/skill-tip", careerController.GetSkillTip)
	}

	// Coding progress and gamification routes
	progress := v1.Group("/progress")
	{
		progress.GET("/problems", progressController.GetProblems)
		progress.POST("/problems/:id/solve", progressController.MarkSolved)
		progress.GET("/badges", progressController.GetBadges)
		progress.GET("/leaderboard", progressController.GetLeaderboard)
		progress.GET("/insight", progressController.GetQuickInsight)
	}

	// Finance ledger routes
	finance := v1.Group("/finance")
	{
		finance.GET("/entries", progressController.GetFinance)
		finance.POST("/entries", progressController.AddFinanceEntry)
	}

	// Faculty dashboard routes
	faculty := v1.Group("/faculty")
	{
		faculty.GET("", facultyController.GetDirectory)
		faculty.GET("/at-risk", facultyController.GetAtRiskStudents)
		faculty.GET("/risk/:studentId", facultyController.GetAcademicRisk)
		faculty.GET("/:id/courses", facultyController.GetCourses)
		faculty.GET("/courses/:courseId/roster", facultyController.GetRoster)
		faculty.POST("/assessments/:studentId", facultyController.AssessRisk)
		faculty.PATCH("/assessments/:studentId/intervention", facultyController.UpdateIntervention)
	}
}
