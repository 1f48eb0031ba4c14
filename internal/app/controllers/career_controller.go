package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studentlife/copilot/internal/app/models"
	"github.com/studentlife/copilot/internal/app/models/dto"
	"github.com/studentlife/copilot/internal/app/services"
	"github.com/studentlife/copilot/internal/middleware"
)

// CareerController handles milestone and roadmap endpoints
type CareerController struct {
	careerService *services.CareerService
}

// NewCareerController creates a new CareerController
func NewCareerController(careerService *services.CareerService) *CareerController {
	return &CareerController{careerService: careerService}
}

// GetMilestones handles retrieving a student's milestones
// @Summary Get career milestones
// @Tags career
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /career/milestones/{studentId} [get]
func (c *CareerController) GetMilestones(ctx *gin.Context) {
	milestones, err := c.careerService.Milestones(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(milestones, "Milestones retrieved successfully"))
}

// UpdateMilestone handles a milestone status transition
// @Summary Update milestone status
// @Description Completed milestones never move back to an earlier status
// @Tags career
// @Accept json
// @Produce json
// @Param id path string true "Milestone ID"
// @Param request body dto.UpdateMilestoneRequest true "New status"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /career/milestones/{id} [patch]
func (c *CareerController) UpdateMilestone(ctx *gin.Context) {
	var req dto.UpdateMilestoneRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	milestone, err := c.careerService.UpdateMilestoneStatus(ctx, ctx.Param("id"), models.MilestoneStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(milestone, "Milestone updated successfully"))
}

// GenerateRoadmap handles roadmap generation for an interest area
// @Summary Generate a career roadmap
// @Description Generates roadmap steps and persists them as skill milestones
// @Tags career
// @Accept json
// @Produce json
// @Param request body dto.RoadmapRequest true "Interest area"
// @Success 201 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /career/roadmap [post]
func (c *CareerController) GenerateRoadmap(ctx *gin.Context) {
	var req dto.RoadmapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	milestones, err := c.careerService.Roadmap(ctx, req.StudentID, req.Interest)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(milestones, "Roadmap generated successfully"))
}

// GetSkillTip handles the skill practice suggestion
// @Summary Get a skill practice tip
// @Tags career
// @Accept json
// @Produce json
// @Param request body dto.SkillTipRequest true "Skill name"
// @Success 200 {object} dto.APIResponse{data=dto.SkillTipResponse}
// @Router /career/skill-tip [post]
func (c *CareerController) GetSkillTip(ctx *gin.Context) {
	var req dto.SkillTipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	tip, err := c.careerService.SkillTip(ctx, req.Skill)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SkillTipResponse{Tip: tip}, "Tip generated"))
}
