package app

import (
	"context"

	"github.com/heartmarshall/wordassist-backend/internal/adapter/provider"
	"github.com/heartmarshall/wordassist-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/wordassist-backend/internal/adapter/provider/openai"
	"github.com/heartmarshall/wordassist-backend/internal/config"
)

type contentGenerator interface {
	Summarize(ctx context.Context, word, details string) (string, error)
	Snippet(ctx context.Context, word, details, tagName string) (string, error)
	Name() string
}

// newGenerator picks the backend named by the configured provider. With
// generation disabled, drafts asking for content fail and manual entry
// keeps working.
func newGenerator(cfg config.GeneratorConfig) contentGenerator {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return openai.New(cfg)
	case config.ProviderAnthropic:
		return anthropic.New(cfg)
	default:
		return provider.Disabled{}
	}
}
