package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordassist-backend/internal/domain"
)

// Get returns a committed entry joined with its tag name.
func (s *Service) Get(ctx context.Context, id domain.Identity, entryID int64) (*domain.Entry, error) {
	if err := requireIdentity(id); err != nil {
		return nil, err
	}
	return s.entries.GetByID(ctx, entryID)
}

// Edit replaces the word, details and tag of an entry and optionally its
// generated content. The uniqueness check ignores the entry itself.
// created_at is never touched.
func (s *Service) Edit(ctx context.Context, id domain.Identity, entryID int64, input EditInput) (*domain.Entry, error) {
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

	word := domain.NormalizeWord(input.Word)

	var updated *domain.Entry
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.entries.GetByID(txCtx, entryID)
		if err != nil {
			return fmt.Errorf("get entry: %w", err)
		}

		if err := s.guard(txCtx, word, tag.ID, &entryID); err != nil {
			return err
		}

		next := *current
		next.Word = word
		next.Details = input.Details
		next.TagID = tag.ID
		if input.Summary != nil {
			next.Summary = *input.Summary
		}
		if input.Code != nil {
			next.Code = *input.Code
		}
		if input.CodeLanguage != nil {
			next.CodeLanguage = *input.CodeLanguage
		}
		next.CodeLanguage = codeLanguage(next.Code, next.CodeLanguage)
		next.UpdatedAt = s.now()

		var updateErr error
		updated, updateErr = s.entries.Update(txCtx, &next)
		if updateErr != nil {
			return fmt.Errorf("update entry: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			s.log.InfoContext(ctx, "duplicate entry rejected on edit",
				slog.Int64("entry_id", entryID),
				slog.String("word", word),
				slog.Int64("tag_id", tag.ID),
			)
		}
		return nil, err
	}

	updated.TagName = tag.Name

	s.log.InfoContext(ctx, "entry updated",
		slog.String("user_id", id.UserID.String()),
		slog.Int64("entry_id", entryID),
	)

	return updated, nil
}

// Delete hard-deletes an entry. A missing entry yields ErrNotFound.
func (s *Service) Delete(ctx context.Context, id domain.Identity, entryID int64) error {
	if err := requireIdentity(id); err != nil {
		return err
	}

	if err := s.entries.Delete(ctx, entryID); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry deleted",
		slog.String("user_id", id.UserID.String()),
		slog.Int64("entry_id", entryID),
	)
	return nil
}
