// Package openai implements the draft generator on the OpenAI chat
// completions API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/heartmarshall/wordassist-backend/internal/adapter/provider"
	"github.com/heartmarshall/wordassist-backend/internal/config"
	"github.com/heartmarshall/wordassist-backend/internal/domain"
	"github.com/heartmarshall/wordassist-backend/internal/metrics"
)

const name = "openai"

// Generator produces summaries and snippets through chat completions.
// Calls are not retried.
type Generator struct {
	client    *goopenai.Client
	model     string
	maxTokens int
	timeout   time.Duration
}

// New creates a generator from configuration.
func New(cfg config.GeneratorConfig) *Generator {
	clientCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Generator{
		client:    goopenai.NewClientWithConfig(clientCfg),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
	}
}

// Name identifies the backend in metrics and logs.
func (g *Generator) Name() string { return name }

// Summarize returns a very short explanation of word.
func (g *Generator) Summarize(ctx context.Context, word, details string) (string, error) {
	return g.complete(ctx, metrics.KindSummary, provider.SummarySystem, provider.SummaryPrompt(word, details))
}

// Snippet returns raw model output, normally one fenced code block.
func (g *Generator) Snippet(ctx context.Context, word, details, tagName string) (string, error) {
	return g.complete(ctx, metrics.KindSnippet, provider.SnippetSystem, provider.SnippetPrompt(word, details, tagName))
}

func (g *Generator) complete(ctx context.Context, kind, system, prompt string) (_ string, err error) {
	started := time.Now()
	defer func() { metrics.ObserveGeneration(name, kind, started, err) }()

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:     g.model,
		MaxTokens: g.maxTokens,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: system},
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", wrapError(kind, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s: empty completion: %w", kind, domain.ErrGenerationFailed)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("%s: empty completion: %w", kind, domain.ErrGenerationFailed)
	}
	return text, nil
}

// wrapError keeps the API status in the message and marks every failure
// as a generation failure.
func wrapError(kind string, err error) error {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s: openai api error %d: %s: %w", kind, apiErr.HTTPStatusCode, apiErr.Message, domain.ErrGenerationFailed)
	}

	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("%s: openai request error %d: %w", kind, reqErr.HTTPStatusCode, domain.ErrGenerationFailed)
	}

	return fmt.Errorf("%s: %w: %w", kind, domain.ErrGenerationFailed, err)
}
