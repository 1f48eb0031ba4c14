package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/studentlife/copilot/internal/ai"
)

// ModerationVerdict is the outcome of a safety check.
type ModerationVerdict struct {
	Safe   bool
	Reason string
}

// Moderator is the safety-check gate applied to user-submitted text,
// either before persisting (forum posts) or after the fact (chat
// redaction).
type Moderator interface {
	Check(ctx context.Context, text string) ModerationVerdict
}

// ModerationService checks content against the AI gateway and falls
// back to a deterministic keyword screen when the gateway is
// unavailable. The check itself never errors; a failed upstream call
// degrades to the local screen, not to an open gate.
type ModerationService struct {
	client ai.Client
	logger zerolog.Logger
}

// NewModerationService creates a new moderation service instance
func NewModerationService(client ai.Client, lgr zerolog.Logger) *ModerationService {
	return &ModerationService{client: client, logger: lgr}
}

// blockedTerms is the local screen's denylist. Deliberately small: it
// exists so the gate has deterministic behavior without the gateway,
// not to be a real moderation system.
var blockedTerms = []string{
	"idiot",
	"loser",
	"stupid",
	"shut up",
	"hate you",
}

type moderationReply struct {
	Safe   bool   `json:"safe"`
	Reason string `json:"reason,omitempty"`
}

// Check runs the safety gate on one piece of text.
func (s *ModerationService) Check(ctx context.Context, text string) ModerationVerdict {
	prompt := fmt.Sprintf(`You are a content safety checker for a student community forum.
Evaluate the following text for harassment, hate speech, or self-harm risk:
%q

Return strictly JSON: { "safe": true|false, "reason": "string" }`, text)

	raw, err := s.client.Generate(ctx, prompt, ai.FormatJSON)
	if err != nil {
		s.logger.Debug().Err(err).Msg("moderation gateway unavailable, using local screen")
		return s.localScreen(text)
	}

	var reply moderationReply
	if err := json.Unmarshal([]byte(ai.CleanJSON(raw)), &reply); err != nil {
		s.logger.Warn().Err(err).Msg("unparseable moderation reply, using local screen")
		return s.localScreen(text)
	}

	if !reply.Safe && reply.Reason == "" {
		reply.Reason = "Content flagged by the safety check."
	}
	return ModerationVerdict{Safe: reply.Safe, Reason: reply.Reason}
}

func (s *ModerationService) localScreen(text string) ModerationVerdict {
	lowered := strings.ToLower(text)
	for _, term := range blockedTerms {
		if strings.Contains(lowered, term) {
			return ModerationVerdict{
				Safe:   false,
				Reason: "Content contains language that violates community guidelines.",
			}
		}
	}
	return ModerationVerdict{Safe: true}
}
