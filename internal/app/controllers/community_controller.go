package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studentlife/copilot/internal/app/models"
	"github.com/studentlife/copilot/internal/app/models/dto"
	"github.com/studentlife/copilot/internal/app/services"
	"github.com/studentlife/copilot/internal/middleware"
)

// CommunityController handles forum related operations
type CommunityController struct {
	communityService *services.CommunityService
}

// NewCommunityController creates a new CommunityController
func NewCommunityController(communityService *services.CommunityService) *CommunityController {
	return &CommunityController{communityService: communityService}
}

// GetPosts handles retrieving all forum posts
// @Summary Get forum posts
// @Tags community
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /community/posts [get]
func (c *CommunityController) GetPosts(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.communityService.Posts(ctx), "Posts retrieved successfully"))
}

// CreatePost handles submitting a new forum post
// @Summary Create a forum post
// @Description Submits the post through the moderation gate before publishing
// @Tags community
// @Accept json
// @Produce json
// @Param request body dto.CreatePostRequest true "Post data"
// @Success 201 {object} dto.APIResponse
// @Failure 422 {object} dto.APIResponse{error=dto.ErrorDetail} "Rejected by moderation"
// @Router /community/posts [post]
func (c *CommunityController) CreatePost(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	post, err := c.communityService.SubmitPost(ctx, req.Author, req.Avatar, models.ForumCategory(req.Category), req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(post, "Post created successfully"))
}

// LikePost handles liking a post
// @Summary Like a forum post
// @Tags community
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /community/posts/{id}/like [post]
func (c *CommunityController) LikePost(ctx *gin.Context) {
	post, err := c.communityService.LikePost(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(post, "Post liked"))
}

// CreateReply handles replying to a post
// @Summary Reply to a forum post
// @Tags community
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body dto.CreateReplyRequest true "Reply data"
// @Success 201 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /community/posts/{id}/replies [post]
func (c *CommunityController) CreateReply(ctx *gin.Context) {
	var req dto.CreateReplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	reply, err := c.communityService.AddReply(ctx, ctx.Param("id"), req.Author, req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(reply, "Reply added successfully"))
}
