package dto

// SendMessageRequest represents an outgoing chat message
type SendMessageRequest struct {
	SenderID string `json:"senderId" binding:"required"`
	Text     string `json:"text" binding:"required"`
}
