// Package nutrition condenses raw OCR text from nutrition labels into a
// short per-serving summary using an OpenAI-compatible chat completion API.
package nutrition

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// ErrNotConfigured is returned when no API key was provided; callers keep the
// raw label text and move on.
var ErrNotConfigured = errors.New("nutrition summarizer not configured")

const systemPrompt = "You summarize nutrition label text into one short, plain line."

const promptTemplate = `Analyze the following nutrition information extracted from a label and
produce a short, clear per-serving summary. Include only the key figures:
calories, protein, carbohydrates, fat, sugar and sodium. If the text is
incomplete, mention only what is available.
Format: "Per serving: X calories, Xg protein, Xg carbohydrates, Xg fat, Xg sugar, Xmg sodium"

Extracted text:
%s`

// Summarizer turns raw label text into a one-line summary.
type Summarizer struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// New creates a Summarizer. It returns nil when apiKey is empty, which
// callers treat as the feature being disabled.
func New(apiKey, baseURL, model string, logger *zap.Logger) *Summarizer {
	if apiKey == "" {
		return nil
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &Summarizer{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		logger: logger,
	}
}

// Summarize produces the one-line summary for the given extracted label
// text. Failures are returned to the caller, who keeps the raw text.
func (s *Summarizer) Summarize(ctx context.Context, extractedText string) (string, error) {
	if s == nil {
		return "", ErrNotConfigured
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(promptTemplate, extractedText)},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("nutrition summarization failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response from summarization model")
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	s.logger.Debug("Nutrition label summarized", zap.Int("input_len", len(extractedText)))
	return summary, nil
}
