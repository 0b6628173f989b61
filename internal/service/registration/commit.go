package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordassist-backend/internal/domain"
)

// Commit persists a confirmed entry, either from one of the caller's
// drafts or from manually entered fields. The duplicate check and the
// insert run in one transaction. On ErrDuplicateEntry the draft is kept
// so the caller can fix the word and resubmit.
func (s *Service) Commit(ctx context.Context, id domain.Identity, input CommitInput) (*domain.Entry, error) {
	if err := requireIdentity(id); err != nil {
		return nil, err
	}

	if input.DraftToken != "" {
		d, err := s.drafts.Get(ctx, id.UserID, input.DraftToken)
		if err != nil {
			return nil, fmt.Errorf("resolve draft: %w", err)
		}
		input = input.merge(d)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	tag, err := s.resolveTag(ctx, input.TagID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	createdBy := id.UserID
	entry := &domain.Entry{
		Word:         domain.NormalizeWord(input.Word),
		Details:      input.Details,
		TagID:        tag.ID,
		Summary:      input.Summary,
		Code:         input.Code,
		CodeLanguage: codeLanguage(input.Code, input.CodeLanguage),
		CreatedBy:    &createdBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var created *domain.Entry
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.guard(txCtx, entry.Word, entry.TagID, nil); err != nil {
			return err
		}

		var createErr error
		created, createErr = s.entries.Create(txCtx, entry)
		if createErr != nil {
			return fmt.Errorf("create entry: %w", createErr)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			s.log.InfoContext(ctx, "duplicate entry rejected",
				slog.String("user_id", id.UserID.String()),
				slog.String("word", entry.Word),
				slog.Int64("tag_id", entry.TagID),
			)
		}
		return nil, err
	}

	created.TagName = tag.Name

	if input.DraftToken != "" {
		if err := s.drafts.Delete(ctx, id.UserID, input.DraftToken); err != nil {
			// The entry is committed; a stale draft expires on its own.
			s.log.WarnContext(ctx, "delete committed draft",
				slog.String("draft_token", input.DraftToken),
				slog.String("error", err.Error()),
			)
		}
	}

	s.log.InfoContext(ctx, "entry committed",
		slog.String("user_id", id.UserID.String()),
		slog.Int64("entry_id", created.ID),
		slog.String("word", created.Word),
		slog.Int64("tag_id", created.TagID),
	)

	return created, nil
}

// codeLanguage defaults the language of a non-empty code body to plaintext.
func codeLanguage(code, language string) string {
	if code != "" && language == "" {
		return domain.DefaultCodeLanguage
	}
	return language
}
