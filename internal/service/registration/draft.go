package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/wordassist-backend/internal/domain"
)

// RequestDraft validates the input, optionally generates a summary and a
// code snippet, and stores the result as a draft owned by the caller.
// Nothing is written to the entries table. If any requested generation
// fails, no draft is stored and the error wraps ErrGenerationFailed.
func (s *Service) RequestDraft(ctx context.Context, id domain.Identity, input DraftInput) (*domain.Draft, error) {
	if err := requireIdentity(id); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tag, err := s.resolveTag(ctx, input.TagID)
	if err != nil {
		return nil, err
	}

	d := domain.Draft{
		Token:     uuid.NewString(),
		UserID:    id.UserID,
		Word:      domain.NormalizeWord(input.Word),
		Details:   input.Details,
		TagID:     tag.ID,
		TagName:   tag.Name,
		CreatedAt: s.now(),
	}

	g, gctx := errgroup.WithContext(ctx)
	if input.WantSummary {
		g.Go(func() error {
			summary, err := s.gen.Summarize(gctx, d.Word, d.Details)
			if err != nil {
				return fmt.Errorf("summarize: %w", err)
			}
			d.Summary = summary
			return nil
		})
	}
	if input.WantCode {
		g.Go(func() error {
			raw, err := s.gen.Snippet(gctx, d.Word, d.Details, tag.Name)
			if err != nil {
				return fmt.Errorf("snippet: %w", err)
			}
			d.CodeLanguage, d.Code = ExtractCodeAndLanguage(raw)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.WarnContext(ctx, "draft generation failed",
			slog.String("user_id", id.UserID.String()),
			slog.String("word", d.Word),
			slog.String("error", err.Error()),
		)
		if !errors.Is(err, domain.ErrGenerationFailed) {
			err = fmt.Errorf("%w: %w", domain.ErrGenerationFailed, err)
		}
		return nil, err
	}

	if err := s.drafts.Save(ctx, d); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}

	s.log.InfoContext(ctx, "draft created",
		slog.String("user_id", id.UserID.String()),
		slog.String("word", d.Word),
		slog.Int64("tag_id", d.TagID),
		slog.Bool("summary", input.WantSummary),
		slog.Bool("code", input.WantCode),
	)

	return &d, nil
}

// GetDraft returns one of the caller's pending drafts.
func (s *Service) GetDraft(ctx context.Context, id domain.Identity, token string) (*domain.Draft, error) {
	if err := requireIdentity(id); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, domain.NewValidationError("draft_token", "required")
	}
	return s.drafts.Get(ctx, id.UserID, token)
}

// AbandonDraft discards one of the caller's pending drafts.
func (s *Service) AbandonDraft(ctx context.Context, id domain.Identity, token string) error {
	if err := requireIdentity(id); err != nil {
		return err
	}
	if token == "" {
		return domain.NewValidationError("draft_token", "required")
	}
	if err := s.drafts.Delete(ctx, id.UserID, token); err != nil {
		return fmt.Errorf("abandon draft: %w", err)
	}
	return nil
}
