// Package ai wraps the external generative-text API behind a small
// gateway interface. The rest of the application only depends on the
// Generate contract; every caller composes a deterministic fallback for
// when the gateway is disabled, slow, or returns garbage.
package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/studentlife/copilot/internal/pkg/apperrors"
)

// Format selects the expected response shape.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Client is the gateway contract. Generate returns the raw model text;
// callers parse JSON replies themselves and fall back on any error.
type Client interface {
	Generate(ctx context.Context, prompt string, format Format) (string, error)
}

// Disabled returns a client that always reports the upstream as
// unavailable. Wiring it in forces every AI-backed feature onto its
// local heuristic path, which is the default demo configuration.
func Disabled() Client {
	return disabledClient{}
}

type disabledClient struct{}

func (disabledClient) Generate(context.Context, string, Format) (string, error) {
	return "", apperrors.ErrUpstreamUnavailable
}

// Config carries the gateway connection settings.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Option customizes the Gemini client.
type Option func(*GeminiClient)

// WithTransport replaces the underlying HTTP transport, for tests.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *GeminiClient) { c.http.SetTransport(rt) }
}

// GeminiClient talks to a Gemini-style generateContent endpoint.
type GeminiClient struct {
	http  *resty.Client
	model string
	key   string
}

// NewGeminiClient builds a gateway client. The request timeout bounds
// the worst-case latency of the AI path; on expiry callers fall back to
// their local heuristics.
func NewGeminiClient(cfg Config, opts ...Option) (*GeminiClient, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("ai: base url required")
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, errors.New("ai: model required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	client := &GeminiClient{
		http: resty.New().
			SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json"),
		model: cfg.Model,
		key:   cfg.APIKey,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate sends the prompt and returns the first candidate's text.
// Transport errors, non-2xx replies, and empty candidate lists all map
// to ErrUpstreamUnavailable so callers have a single failure to match.
func (c *GeminiClient) Generate(ctx context.Context, prompt string, format Format) (string, error) {
	body := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	if format == FormatJSON {
		body.GenerationConfig = &generationConfig{ResponseMimeType: "application/json"}
	}

	var result generateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.key).
		SetBody(body).
		SetResult(&result).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.model))
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: status %d", apperrors.ErrUpstreamUnavailable, resp.StatusCode())
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response", apperrors.ErrUpstreamUnavailable)
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}

// CleanJSON strips markdown code fences models like to wrap JSON in.
func CleanJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
