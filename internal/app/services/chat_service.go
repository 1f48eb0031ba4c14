package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/studentlife/copilot/internal/app/models"
	"github.com/studentlife/copilot/internal/pkg/apperrors"
	"github.com/studentlife/copilot/internal/store"
)

// redactionNotice replaces a message's text when post-hoc moderation
// flags it. The message record itself is kept.
const redactionNotice = "[message removed by moderation]"

// ChatService handles direct-message conversations. Sends are
// optimistic: the message is visible immediately and re-validated by
// the moderation gate afterwards, off the request path.
type ChatService struct {
	store     *store.Store
	moderator Moderator
	logger    zerolog.Logger

	// dispatch runs the post-send moderation pass. The default runs it
	// on its own goroutine; tests swap in a synchronous runner.
	dispatch func(fn func())
}

// NewChatService creates a new chat service instance
func NewChatService(st *store.Store, mod Moderator, lgr zerolog.Logger) *ChatService {
	return &ChatService{
		store:     st,
		moderator: mod,
		logger:    lgr,
		dispatch:  func(fn func()) { go fn() },
	}
}

// SetDispatch overrides how the post-send moderation pass is scheduled.
// Intended for tests that need the pass to finish before asserting.
func (s *ChatService) SetDispatch(dispatch func(fn func())) {
	s.dispatch = dispatch
}

// Contacts returns the chat contact list.
func (s *ChatService) Contacts(ctx context.Context) []models.ChatContact {
	return s.store.Contacts()
}

// History returns one conversation in chronological order.
func (s *ChatService) History(ctx context.Context, contactID string) ([]models.ChatMessage, error) {
	return s.store.Messages(contactID)
}

// SendMessage appends the message immediately, then schedules the
// moderation re-check. A message found unsafe has its text replaced in
// place with a redaction notice; it is never deleted, so conversation
// ordering is preserved.
func (s *ChatService) SendMessage(ctx context.Context, contactID, senderID, text string) (models.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return models.ChatMessage{}, apperrors.NewValidationError("message text cannot be empty")
	}

	msg, err := s.store.AppendMessage(contactID, models.ChatMessage{
		SenderID: senderID,
		Text:     text,
		IsMe:     true,
	})
	if err != nil {
		return models.ChatMessage{}, err
	}

	s.dispatch(func() {
		// The request context is gone by the time this runs.
		verdict := s.moderator.Check(context.Background(), text)
		if verdict.Safe {
			return
		}
		if err := s.store.RedactMessage(contactID, msg.ID, redactionNotice); err != nil {
			s.logger.Error().Err(err).Str("messageId", msg.ID).Msg("failed to redact flagged message")
			return
		}
		s.logger.Info().
			Str("contactId", contactID).
			Str("messageId", msg.ID).
			Str("reason", verdict.Reason).
			Msg("chat message redacted after moderation")
	})

	return msg, nil
}
