package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studentlife/copilot/internal/app/models"
	"github.com/studentlife/copilot/internal/app/models/dto"
	"github.com/studentlife/copilot/internal/app/services"
	"github.com/studentlife/copilot/internal/middleware"
)

// ProgressController handles coding practice, gamification and the
// finance ledger
type ProgressController struct {
	progressService *services.ProgressService
}

// NewProgressController creates a new ProgressController
func NewProgressController(progressService *services.ProgressService) *ProgressController {
	return &ProgressController{progressService: progressService}
}

// GetProblems handles retrieving the practice problem set
// @Summary Get coding problems
// @Tags progress
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /progress/problems [get]
func (c *ProgressController) GetProblems(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.progressService.Problems(ctx), "Problems retrieved successfully"))
}

// MarkSolved handles flagging a problem solved
// @Summary Mark a problem solved
// @Description Awards XP by difficulty; re-solving is a no-op for XP
// @Tags progress
// @Accept json
// @Produce json
// @Param id path string true "Problem ID"
// @Param request body dto.MarkSolvedRequest true "Student"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /progress/problems/{id}/solve [post]
func (c *ProgressController) MarkSolved(ctx *gin.Context) {
	var req dto.MarkSolvedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	problem, err := c.progressService.MarkSolved(ctx, ctx.Param("id"), req.StudentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(problem, "Problem marked solved"))
}

// GetBadges handles retrieving the badge catalog
// @Summary Get badges
// @Tags progress
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /progress/badges [get]
func (c *ProgressController) GetBadges(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.progressService.Badges(ctx), "Badges retrieved successfully"))
}

// GetLeaderboard handles retrieving the XP leaderboard
// @Summary Get leaderboard
// @Tags progress
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /progress/leaderboard [get]
func (c *ProgressController) GetLeaderboard(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.progressService.Leaderboard(ctx), "Leaderboard retrieved successfully"))
}

// GetFinance handles retrieving the spending ledger
// @Summary Get finance ledger
// @Tags finance
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.FinanceSummaryResponse}
// @Router /finance/entries [get]
func (c *ProgressController) GetFinance(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FinanceSummaryResponse{
		Entries:    c.progressService.FinanceEntries(ctx),
		TotalSpent: c.progressService.TotalSpent(ctx),
	}, "Finance entries retrieved successfully"))
}

// AddFinanceEntry handles appending a spending record
// @Summary Add a finance entry
// @Tags finance
// @Accept json
// @Produce json
// @Param request body dto.CreateFinanceEntryRequest true "Entry data"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /finance/entries [post]
func (c *ProgressController) AddFinanceEntry(ctx *gin.Context) {
	var req dto.CreateFinanceEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	entry, err := c.progressService.AddFinanceEntry(ctx, models.FinanceEntry{
		Category: req.Category,
		Amount:   req.Amount,
		Date:     req.Date,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(entry, "Entry added successfully"))
}

// GetQuickInsight handles the dashboard productivity tip
// @Summary Get a quick insight
// @Tags progress
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.QuickInsightResponse}
// @Router /progress/insight [get]
func (c *ProgressController) GetQuickInsight(ctx *gin.Context) {
	tip := c.progressService.QuickInsight(ctx)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.QuickInsightResponse{Tip: tip}, "Insight generated"))
}
