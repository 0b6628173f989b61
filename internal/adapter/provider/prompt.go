// Package provider holds what the draft generator backends share: the
// prompts sent for each kind of generated content and the disabled
// backend.
package provider

import (
	"context"
	"fmt"

	"github.com/heartmarshall/wordassist-backend/internal/domain"
)

// System roles for the two generation kinds.
const (
	SummarySystem = "あなたは要点を簡潔に伝える教育アシスタントです。"
	SnippetSystem = "あなたは優秀なプログラミング教師です。"
)

// SummaryPrompt asks for an explanation a learner can grasp at a glance.
// The 30 character target is a request to the model, not enforced.
func SummaryPrompt(word, details string) string {
	return fmt.Sprintf(`以下のワードに対して、学習者が一目で理解できるような超簡潔な説明を作ってください（30文字以内）。
ワード: %s
説明: %s
`, word, details)
}

// SnippetPrompt asks for a single practical snippet in the tag's language,
// returned as a fenced Markdown code block.
func SnippetPrompt(word, details, tagName string) string {
	return fmt.Sprintf(`以下のワードに関連した実用的なコードを1つだけ提案してください。
ワード: %s
説明: %s
タグ: %s
上記に関連する%s言語のコードを1つ提案してください。Markdown形式でコードのみを表示してください。
`, word, details, tagName, tagName)
}

// Disabled is the generator used when no backend is configured. Every
// call fails, so drafts can still be requested with both assists off.
type Disabled struct{}

func (Disabled) Summarize(context.Context, string, string) (string, error) {
	return "", fmt.Errorf("summary: generation disabled: %w", domain.ErrGenerationFailed)
}

func (Disabled) Snippet(context.Context, string, string, string) (string, error) {
	return "", fmt.Errorf("snippet: generation disabled: %w", domain.ErrGenerationFailed)
}

// Name identifies the backend in metrics and logs.
func (Disabled) Name() string { return "disabled" }
