package dto

// --- Request DTOs ---

// CreatePostRequest represents forum post submission data
type CreatePostRequest struct {
	Author   string `json:"author" binding:"required"`
	Avatar   string `json:"avatar"`
	Category string `json:"category" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

// CreateReplyRequest represents a reply to an existing post
type CreateReplyRequest struct {
	Author  string `json:"author" binding:"required"`
	Content string `json:"content" binding:"required"`
}
