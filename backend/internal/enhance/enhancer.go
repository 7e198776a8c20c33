package enhance

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"stylize-engine/backend/pkg/logger"
	"stylize-engine/backend/pkg/metrics"
)

// systemPrompt steers the rewrite towards edits that keep the person recognizable.
const systemPrompt = `You rewrite short photo-editing requests into one clear image-editing instruction.
Rules:
- Keep the same person: never change face shape, skin tone, age, hairline or identity.
- Describe only what should change (style, lighting, background, colors, mood).
- One continuous photograph. Never ask for grids, collages, split screens or multiple panels.
- Plain prose, at most 60 words, no lists, no quotes, no preamble.
Reply with the rewritten instruction only.`

// Completer is the LLM call the enhancer needs. *LLM satisfies it.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userMsg string) (string, error)
	Model() string
}

// Enhancer rewrites free-text prompts. It never fails a generation: any LLM problem
// returns the original prompt.
type Enhancer struct {
	llm    Completer
	logger *zap.Logger
}

// NewEnhancer creates a new prompt enhancer
func NewEnhancer(llm Completer) *Enhancer {
	return &Enhancer{
		llm:    llm,
		logger: logger.Get(),
	}
}

// Enhance returns an improved prompt, or the original when enhancement is unavailable.
func (e *Enhancer) Enhance(ctx context.Context, userPrompt string) (string, error) {
	userPrompt = strings.TrimSpace(userPrompt)
	if userPrompt == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}
	if e == nil || e.llm == nil {
		return userPrompt, nil
	}

	model := e.llm.Model()
	e.logger.Debug("Enhancing prompt",
		zap.String("original", truncateString(userPrompt, 50)),
	)

	enhanced, err := e.llm.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		metrics.EnhanceCallsTotal.WithLabelValues(model, "error").Inc()
		e.logger.Warn("Failed to enhance prompt, using original", zap.Error(err))
		return userPrompt, nil
	}

	enhanced = cleanResponse(enhanced)
	if enhanced == "" {
		metrics.EnhanceCallsTotal.WithLabelValues(model, "empty").Inc()
		e.logger.Warn("Empty enhancement response, using original")
		return userPrompt, nil
	}

	metrics.EnhanceCallsTotal.WithLabelValues(model, "ok").Inc()
	e.logger.Debug("Prompt enhanced successfully",
		zap.String("enhanced", truncateString(enhanced, 50)),
	)
	return enhanced, nil
}

// cleanResponse strips wrapping quotes and whitespace models tend to add.
func cleanResponse(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "\"'`")
	return strings.TrimSpace(s)
}

// truncateString truncates a string for logging without splitting a rune
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
