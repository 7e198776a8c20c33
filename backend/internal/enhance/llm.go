package enhance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	apperrors "stylize-engine/backend/pkg/errors"
	"stylize-engine/backend/pkg/logger"
)

// LLM is a plain chat-completion client for an OpenAI-compatible endpoint (LiteLLM).
type LLM struct {
	client     *openai.Client
	model      string
	maxRetries int
	backoff    time.Duration
	logger     *zap.Logger
}

// NewLLM creates a client for baseURL. LiteLLM accepts any key, so an empty key gets a placeholder.
func NewLLM(baseURL, apiKey, modelID string) *LLM {
	if apiKey == "" {
		apiKey = "dummy-key"
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = strings.TrimRight(baseURL, "/") + "/v1"

	return &LLM{
		client:     openai.NewClientWithConfig(config),
		model:      modelID,
		maxRetries: 3,
		backoff:    time.Second,
		logger:     logger.Get(),
	}
}

// Model returns the model identifier requests are sent to.
func (l *LLM) Model() string {
	return l.model
}

// Complete sends one system + user exchange and returns the first choice's text.
func (l *LLM) Complete(ctx context.Context, systemPrompt, userMsg string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: l.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMsg},
		},
		Temperature: 0.7,
	}

	var (
		resp openai.ChatCompletionResponse
		err  error
	)
	for attempt := 0; attempt < l.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * l.backoff
			l.logger.Warn("Retrying LLM request",
				zap.Int("attempt", attempt+1),
				zap.Duration("backoff", backoff),
			)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		resp, err = l.client.CreateChatCompletion(ctx, req)
		if err == nil {
			break
		}
		l.logger.Error("LLM request failed",
			zap.Error(err),
			zap.Int("attempt", attempt+1),
			zap.String("model", l.model),
		)
	}
	if err != nil {
		return "", apperrors.NewEnhanceFailed(l.model, fmt.Errorf("failed after %d attempts: %w", l.maxRetries, err))
	}

	if len(resp.Choices) == 0 {
		return "", apperrors.NewEnhanceFailed(l.model, fmt.Errorf("no choices in LLM response"))
	}
	return resp.Choices[0].Message.Content, nil
}
