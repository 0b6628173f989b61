// Package anthropic implements the draft generator on the Anthropic
// Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/wordassist-backend/internal/adapter/provider"
	"github.com/heartmarshall/wordassist-backend/internal/config"
	"github.com/heartmarshall/wordassist-backend/internal/domain"
	"github.com/heartmarshall/wordassist-backend/internal/metrics"
)

const name = "anthropic"

// Generator produces summaries and snippets through Claude messages.
// SDK retries are disabled so a failure surfaces immediately.
type Generator struct {
	client    sdk.Client
	model     sdk.Model
	maxTokens int64
	timeout   time.Duration
}

// New creates a generator from configuration.
func New(cfg config.GeneratorConfig) *Generator {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Generator{
		client:    sdk.NewClient(opts...),
		model:     sdk.Model(cfg.Model),
		maxTokens: int64(cfg.MaxTokens),
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

	msg, err := g.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     g.model,
		MaxTokens: g.maxTokens,
		System:    []sdk.TextBlockParam{{Text: system}},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		var apiErr *sdk.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%s: anthropic api error %d: %w", kind, apiErr.StatusCode, domain.ErrGenerationFailed)
		}
		return "", fmt.Errorf("%s: %w: %w", kind, domain.ErrGenerationFailed, err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("%s: empty response: %w", kind, domain.ErrGenerationFailed)
	}
	return text, nil
}
