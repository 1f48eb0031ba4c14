package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studentlife/copilot/internal/app/models/dto"
	"github.com/studentlife/copilot/internal/app/services"
	"github.com/studentlife/copilot/internal/middleware"
)

// ChatController handles direct message endpoints
type ChatController struct {
	chatService *services.ChatService
}

// NewChatController creates a new ChatController
func NewChatController(chatService *services.ChatService) *ChatController {
	return &ChatController{chatService: chatService}
}

// GetContacts handles retrieving the contact list
// @Summary Get chat contacts
// @Tags chat
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /chat/contacts [get]
func (c *ChatController) GetContacts(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.chatService.Contacts(ctx), "Contacts retrieved successfully"))
}

// GetHistory handles retrieving a conversation
// @Summary Get conversation history
// @Tags chat
// @Produce json
// @Param contactId path string true "Contact ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /chat/{contactId}/messages [get]
func (c *ChatController) GetHistory(ctx *gin.Context) {
	messages, err := c.chatService.History(ctx, ctx.Param("contactId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(messages, "Messages retrieved successfully"))
}

// SendMessage handles sending a message to a contact
// @Summary Send a chat message
// @Description Appends the message immediately; moderation runs after the
// fact and redacts flagged messages in place
// @Tags chat
// @Accept json
// @Produce json
// @Param contactId path string true "Contact ID"
// @Param request body dto.SendMessageRequest true "Message data"
// @Success 201 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /chat/{contactId}/messages [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	message, err := c.chatService.SendMessage(ctx, ctx.Param("contactId"), req.SenderID, req.Text)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(message, "Message sent"))
}
