package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/studentlife/copilot/internal/app/models"
	"github.com/studentlife/copilot/internal/pkg/apperrors"
	"github.com/studentlife/copilot/internal/store"
)

// CommunityService handles the forum: listing, submission behind the
// moderation gate, likes, and replies.
type CommunityService struct {
	store     *store.Store
	moderator Moderator
	logger    zerolog.Logger
}

// NewCommunityService creates a new community service instance
func NewCommunityService(st *store.Store, mod Moderator, lgr zerolog.Logger) *CommunityService {
	return &CommunityService{store: st, moderator: mod, logger: lgr}
}

func validForumCategory(c models.ForumCategory) bool {
	switch c {
	case models.ForumAcademics, models.ForumCareer, models.ForumWellness, models.ForumGeneral:
		return true
	}
	return false
}

// Posts returns all forum posts, most recent first.
func (s *CommunityService) Posts(ctx context.Context) []models.ForumPost {
	return s.store.Posts()
}

// SubmitPost runs the moderation gate and appends the post only when
// the check reports safe. On rejection the store is untouched and the
// reason is surfaced verbatim to the caller.
func (s *CommunityService) SubmitPost(ctx context.Context, author, avatar string, category models.ForumCategory, content string) (models.ForumPost, error) {
	if strings.TrimSpace(content) == "" {
		return models.ForumPost{}, apperrors.NewValidationError("post content cannot be empty")
	}
	if strings.TrimSpace(author) == "" {
		return models.ForumPost{}, apperrors.NewValidationError("post author cannot be empty")
	}
	if !validForumCategory(category) {
		return models.ForumPost{}, apperrors.NewValidationError("unknown forum category")
	}

	verdict := s.moderator.Check(ctx, content)
	if !verdict.Safe {
		s.logger.Info().Str("author", author).Str("reason", verdict.Reason).Msg("forum post rejected by moderation")
		return models.ForumPost{}, apperrors.NewModerationError(verdict.Reason)
	}

	post := s.store.AddPost(models.ForumPost{
		Author:       author,
		AuthorAvatar: avatar,
		Category:     category,
		Content:      content,
	})
	return post, nil
}

// LikePost increments a post's like counter. There is no per-user
// de-duplication; repeated likes keep counting.
func (s *CommunityService) LikePost(ctx context.Context, postID string) (models.ForumPost, error) {
	return s.store.LikePost(postID)
}

// AddReply appends a reply under its parent post.
func (s *CommunityService) AddReply(ctx context.Context, postID, author, content string) (models.ForumReply, error) {
	if strings.TrimSpace(content) == "" {
		return models.ForumReply{}, apperrors.NewValidationError("reply content cannot be empty")
	}
	if strings.TrimSpace(author) == "" {
		return models.ForumReply{}, apperrors.NewValidationError("reply author cannot be empty")
	}
	return s.store.AddReply(postID, models.ForumReply{Author: author, Content: content})
}
