package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/studentlife/copilot/internal/pkg/apperrors"
)

func TestModeration_GatewayVerdictWins(t *testing.T) {
	client := &stubClient{reply: `{"safe":false,"reason":"Harassment detected."}`}
	m := NewModerationService(client, nopLogger)

	verdict := m.Check(context.Background(), "totally friendly text")
	assert.False(t, verdict.Safe)
	assert.Equal(t, "Harassment detected.", verdict.Reason)
}

func TestModeration_GatewaySafePassesThrough(t *testing.T) {
	client := &stubClient{reply: `{"safe":true}`}
	m := NewModerationService(client, nopLogger)

	verdict := m.Check(context.Background(), "you idiot")
	// The gateway said safe, so the local denylist never runs.
	assert.True(t, verdict.Safe)
}

func TestModeration_OutageFallsBackToDenylist(t *testing.T) {
	client := &stubClient{err: apperrors.ErrUpstreamUnavailable}
	m := NewModerationService(client, nopLogger)

	verdict := m.Check(context.Background(), "You are such an IDIOT")
	assert.False(t, verdict.Safe)
	assert.Equal(t, "Content contains language that violates community guidelines.", verdict.Reason)

	verdict = m.Check(context.Background(), "Anyone up for a study group?")
	assert.True(t, verdict.Safe)
}

func TestModeration_GarbageReplyFallsBackToDenylist(t *testing.T) {
	client := &stubClient{reply: "not json at all"}
	m := NewModerationService(client, nopLogger)

	verdict := m.Check(context.Background(), "shut up already")
	assert.False(t, verdict.Safe)
}

func TestModeration_UnsafeWithoutReasonGetsDefault(t *testing.T) {
	client := &stubClient{reply: `{"safe":false}`}
	m := NewModerationService(client, nopLogger)

	verdict := m.Check(context.Background(), "anything")
	assert.False(t, verdict.Safe)
	assert.Equal(t, "Content flagged by the safety check.", verdict.Reason)
}
