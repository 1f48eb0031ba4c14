package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studentlife/copilot/internal/app/models"
	"github.com/studentlife/copilot/internal/app/models/dto"
	"github.com/studentlife/copilot/internal/app/services"
	"github.com/studentlife/copilot/internal/middleware"
)

// FacultyController handles the faculty-facing risk dashboard
type FacultyController struct {
	facultyService *services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService *services.FacultyService) *FacultyController {
	return &FacultyController{facultyService: facultyService}
}

// GetAtRiskStudents handles listing students flagged at risk
// @Summary Get at-risk students
// @Description Lists students with Medium or High assessments, highest risk first
// @Tags faculty
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /faculty/at-risk [get]
func (c *FacultyController) GetAtRiskStudents(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.facultyService.AtRiskStudents(ctx), "At-risk students retrieved successfully"))
}

// GetDirectory handles listing all faculty members
// @Summary Get the faculty directory
// @Tags faculty
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /faculty [get]
func (c *FacultyController) GetDirectory(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.facultyService.Directory(ctx), "Faculty retrieved successfully"))
}

// GetCourses handles listing a faculty member's courses
// @Summary Get a faculty member's courses
// @Tags faculty
// @Produce json
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /faculty/{id}/courses [get]
func (c *FacultyController) GetCourses(ctx *gin.Context) {
	courses, err := c.facultyService.FacultyCourses(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses, "Courses retrieved successfully"))
}

// GetRoster handles listing students enrolled in a course
// @Summary Get a course roster
// @Tags faculty
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /faculty/courses/{courseId}/roster [get]
func (c *FacultyController) GetRoster(ctx *gin.Context) {
	roster, err := c.facultyService.CourseRoster(ctx, ctx.Param("courseId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(roster, "Roster retrieved successfully"))
}

// AssessRisk handles running a fresh risk assessment for a student
// @Summary Assess a student's risk
// @Description Re-runs classification and overwrites the stored assessment
// @Tags faculty
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /faculty/assessments/{studentId} [post]
func (c *FacultyController) AssessRisk(ctx *gin.Context) {
	assessment, err := c.facultyService.AssessRisk(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(assessment, "Assessment completed"))
}

// GetAcademicRisk handles a quick dropout-risk check for one student
// @Summary Check a student's academic risk
// @Description Classifies without recording an assessment
// @Tags faculty
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.AcademicRiskResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /faculty/risk/{studentId} [get]
func (c *FacultyController) GetAcademicRisk(ctx *gin.Context) {
	result, err := c.facultyService.AcademicRisk(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.AcademicRiskResponse{
		RiskLevel:    result.Label,
		Reason:       result.Rationale,
		Intervention: result.SuggestedAction,
	}, "Risk classification completed"))
}

// UpdateIntervention handles moving an assessment through follow-up
// @Summary Update intervention status
// @Tags faculty
// @Accept json
// @Produce json
// @Param studentId path string true "Student ID"
// @Param request body dto.UpdateInterventionRequest true "New status"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /faculty/assessments/{studentId}/intervention [patch]
func (c *FacultyController) UpdateIntervention(ctx *gin.Context) {
	var req dto.UpdateInterventionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	assessment, err := c.facultyService.UpdateInterventionStatus(ctx, ctx.Param("studentId"), models.InterventionStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(assessment, "Intervention status updated"))
}
